// Package logger builds the zap logger SortBench writes diagnostics to.
// Diagnostics default to stderr at warn level, keeping stdout for the report.
package logger

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dbsmedya/sortbench/internal/config"
)

// Logger is a sugared zap logger that can carry benchmark context
// (sorter, input size, run number) on every entry.
type Logger struct {
	*zap.SugaredLogger
}

// New builds a Logger from cfg. Output "stderr" (or empty) and "stdout"
// select the process streams. Any other value is a file opened for append.
func New(cfg *config.LoggingConfig) (*Logger, error) {
	w, err := openOutput(cfg.Output)
	if err != nil {
		return nil, err
	}
	return NewWithWriter(cfg, w), nil
}

// NewWithWriter builds a Logger writing to w. cfg.Output is ignored.
func NewWithWriter(cfg *config.LoggingConfig, w io.Writer) *Logger {
	core := zapcore.NewCore(newEncoder(cfg.Format), zapcore.AddSync(w), parseLevel(cfg.Level))
	return wrap(zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)))
}

// NewDefault returns a warn-level text Logger on stderr.
func NewDefault() *Logger {
	return NewWithWriter(&config.LoggingConfig{Level: "warn", Format: "text"}, os.Stderr)
}

// NewNop returns a Logger that discards everything.
func NewNop() *Logger {
	return wrap(zap.NewNop())
}

func wrap(base *zap.Logger) *Logger {
	return &Logger{SugaredLogger: base.Sugar()}
}

// parseLevel accepts zap level names in any case. Empty or unknown
// names mean warn.
func parseLevel(level string) zapcore.Level {
	level = strings.TrimSpace(level)
	if level == "" {
		return zapcore.WarnLevel
	}
	l, err := zapcore.ParseLevel(level)
	if err != nil {
		return zapcore.WarnLevel
	}
	return l
}

func newEncoder(format string) zapcore.Encoder {
	ec := zap.NewProductionEncoderConfig()
	ec.TimeKey = "time"
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	// Run timings are easier to read as "1.2ms" than as float seconds.
	ec.EncodeDuration = zapcore.StringDurationEncoder

	if strings.EqualFold(format, "json") {
		return zapcore.NewJSONEncoder(ec)
	}
	ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(ec)
}

func openOutput(output string) (io.Writer, error) {
	switch strings.ToLower(strings.TrimSpace(output)) {
	case "", "stderr":
		return os.Stderr, nil
	case "stdout":
		return os.Stdout, nil
	}
	f, err := os.OpenFile(output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

// WithSorter tags entries with the sorter being measured.
func (l *Logger) WithSorter(name string) *Logger {
	return l.with("sorter", name)
}

// WithSize tags entries with the dataset size.
func (l *Logger) WithSize(size int) *Logger {
	return l.with("size", size)
}

// WithRun tags entries with the 1-based run number.
func (l *Logger) WithRun(run int) *Logger {
	return l.with("run", run)
}

// WithFields tags entries with arbitrary fields, added in key order.
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]interface{}, 0, len(fields)*2)
	for _, k := range keys {
		args = append(args, k, fields[k])
	}
	return l.with(args...)
}

func (l *Logger) with(args ...interface{}) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.With(args...)}
}
