// Package benchmark coordinates data generation, timing and result collection
// across a list of input sizes.
package benchmark

import (
	"context"
	"fmt"
	"time"

	"github.com/dbsmedya/sortbench/internal/config"
	"github.com/dbsmedya/sortbench/internal/generator"
	"github.com/dbsmedya/sortbench/internal/harness"
	"github.com/dbsmedya/sortbench/internal/logger"
	"github.com/dbsmedya/sortbench/internal/record"
	"github.com/dbsmedya/sortbench/internal/report"
	"github.com/dbsmedya/sortbench/internal/sorting"
)

// Summary describes a completed (or interrupted) benchmark.
type Summary struct {
	Results     *report.Results
	StartedAt   time.Time
	CompletedAt time.Time
	Duration    time.Duration
	Sizes       int // sizes fully measured
	Interrupted bool
}

// Runner measures every selected sorter for each input size. For every size
// it generates one dataset and times all sorters on copies of it.
type Runner struct {
	key       record.Key
	sorters   []sorting.Sorter
	generator *generator.Generator
	harness   *harness.Harness
	logger    *logger.Logger
}

// NewRunner resolves the configured key and sorters against registry.
func NewRunner(cfg *config.Config, registry *sorting.Registry, log *logger.Logger) (*Runner, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}
	if registry == nil {
		registry = sorting.DefaultRegistry()
	}
	if log == nil {
		log = logger.NewDefault()
	}

	key, err := record.KeyByName(cfg.Benchmark.Key)
	if err != nil {
		return nil, err
	}

	sorters, err := registry.Select(cfg.Benchmark.Sorters)
	if err != nil {
		return nil, err
	}

	return &Runner{
		key:       key,
		sorters:   sorters,
		generator: generator.New(cfg.Generator),
		harness:   harness.New(cfg.Benchmark.Runs, cfg.Benchmark.Verify, log),
		logger:    log,
	}, nil
}

// Sorters returns the sorters this runner measures, in report order.
func (r *Runner) Sorters() []sorting.Sorter {
	return r.sorters
}

// Key returns the field records are sorted by.
func (r *Runner) Key() record.Key {
	return r.key
}

// Execute measures each size in order. progress may be nil.
//
// When ctx is cancelled the sizes measured so far are returned with
// Interrupted set and a nil error. Any other failure aborts the run.
func (r *Runner) Execute(ctx context.Context, sizes []int, progress *report.Progress) (*Summary, error) {
	if ctx == nil {
		return nil, fmt.Errorf("context is nil")
	}

	summary := &Summary{
		Results:   report.NewResults(r.sorters, r.key.Name, r.harness.Runs()),
		StartedAt: time.Now(),
	}
	defer func() {
		summary.CompletedAt = time.Now()
		summary.Duration = summary.CompletedAt.Sub(summary.StartedAt)
	}()

	r.logger.Infow("Starting benchmark",
		"sizes", sizes,
		"key", r.key.Name,
		"runs", r.harness.Runs(),
		"sorters", len(r.sorters),
	)

	for _, size := range sizes {
		if progress != nil {
			progress.Step(size)
		}

		measurements, err := r.measureSize(ctx, size)
		if err != nil {
			if ctx.Err() != nil {
				r.logger.Warnw("Benchmark interrupted", "completed_sizes", summary.Sizes)
				summary.Interrupted = true
				return summary, nil
			}
			return summary, err
		}

		summary.Results.Add(size, measurements...)
		summary.Sizes++
	}

	r.logger.Infow("Benchmark complete", "sizes", summary.Sizes)
	return summary, nil
}

func (r *Runner) measureSize(ctx context.Context, size int) ([]harness.Measurement, error) {
	data := r.generator.Generate(size)
	r.logger.WithSize(size).Debugw("Generated dataset", "records", len(data))

	measurements := make([]harness.Measurement, 0, len(r.sorters))
	for _, s := range r.sorters {
		m, err := r.harness.Measure(ctx, s, data, r.key)
		if err != nil {
			return nil, fmt.Errorf("size %d: %w", size, err)
		}
		measurements = append(measurements, m)
	}
	return measurements, nil
}
