package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

// DefaultFile is the config file looked up when --config is not given.
const DefaultFile = "sortbench.yaml"

// Load reads configuration from the specified file path.
// It supports YAML files and performs environment variable substitution.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return LoadFromViper(v)
}

// LoadOptional behaves like Load, except that a missing file yields
// DefaultConfig instead of an error.
func LoadOptional(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	return Load(configPath)
}

// LoadFromViper creates a Config from an existing Viper instance.
// Useful for testing or when Viper is configured externally.
func LoadFromViper(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()
	defaults := DefaultConfig()

	// List fields are decoded onto nil so a shorter list in the file
	// replaces the default instead of being merged into it.
	cfg.Benchmark.Sorters = nil
	cfg.Generator.FirstNames = nil
	cfg.Generator.LastNames = nil

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if len(cfg.Benchmark.Sorters) == 0 {
		cfg.Benchmark.Sorters = defaults.Benchmark.Sorters
	}
	if len(cfg.Generator.FirstNames) == 0 {
		cfg.Generator.FirstNames = defaults.Generator.FirstNames
	}
	if len(cfg.Generator.LastNames) == 0 {
		cfg.Generator.LastNames = defaults.Generator.LastNames
	}

	substituteEnvVars(cfg)
	return cfg, nil
}

// envVarPattern matches ${VAR_NAME} or $VAR_NAME patterns
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

// substituteEnvVars replaces ${VAR_NAME} patterns with environment variable values.
func substituteEnvVars(cfg *Config) {
	cfg.Benchmark.Key = expandEnvVar(cfg.Benchmark.Key)
	cfg.Logging.Output = expandEnvVar(cfg.Logging.Output)
}

// expandEnvVar expands environment variables in the format ${VAR} or $VAR.
func expandEnvVar(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		var varName string
		if strings.HasPrefix(match, "${") {
			varName = match[2 : len(match)-1]
		} else {
			varName = match[1:]
		}

		if value, exists := os.LookupEnv(varName); exists {
			return value
		}
		// Return original if env var not found
		return match
	})
}

// Overrides holds CLI flag values. Zero values leave the config untouched.
type Overrides struct {
	LogLevel  string
	LogFormat string
	Runs      int
	Key       string
	Sorters   []string
	Sizes     []int
	Seed      int64
	Verify    bool
	NoColor   bool
}

// ApplyOverrides applies CLI flag overrides to the configuration.
// Only non-zero/non-empty values are applied.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.LogLevel != "" {
		c.Logging.Level = o.LogLevel
	}
	if o.LogFormat != "" {
		c.Logging.Format = o.LogFormat
	}
	if o.Runs > 0 {
		c.Benchmark.Runs = o.Runs
	}
	if o.Key != "" {
		c.Benchmark.Key = o.Key
	}
	if len(o.Sorters) > 0 {
		c.Benchmark.Sorters = o.Sorters
	}
	if len(o.Sizes) > 0 {
		c.Benchmark.Sizes = o.Sizes
	}
	if o.Seed != 0 {
		c.Generator.Seed = o.Seed
	}
	if o.Verify {
		c.Benchmark.Verify = true
	}
	if o.NoColor {
		c.Output.Color = false
	}
}
