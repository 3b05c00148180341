// Package config provides configuration structures and loading for SortBench.
package config

var defaultSizes = [...]int{1, 10, 20, 50, 100, 200, 500, 1000}

// DefaultSizes returns the input sizes used when the user enters none.
// Every call returns a fresh slice.
func DefaultSizes() []int {
	sizes := make([]int, len(defaultSizes))
	copy(sizes, defaultSizes[:])
	return sizes
}

// Config represents the complete application configuration.
type Config struct {
	Benchmark BenchmarkConfig `yaml:"benchmark" mapstructure:"benchmark"`
	Generator GeneratorConfig `yaml:"generator" mapstructure:"generator"`
	Output    OutputConfig    `yaml:"output" mapstructure:"output"`
	Logging   LoggingConfig   `yaml:"logging" mapstructure:"logging"`
}

// BenchmarkConfig controls what is measured and how often.
type BenchmarkConfig struct {
	Runs    int      `yaml:"runs" mapstructure:"runs"`       // timed runs averaged per sorter and size
	Key     string   `yaml:"key" mapstructure:"key"`         // id, name or score
	Sorters []string `yaml:"sorters" mapstructure:"sorters"` // empty means all registered sorters
	Sizes   []int    `yaml:"sizes" mapstructure:"sizes"`     // empty means prompt the user
	Verify  bool     `yaml:"verify" mapstructure:"verify"`   // check every run's output
}

// GeneratorConfig represents the value ranges of generated records.
type GeneratorConfig struct {
	Seed       int64    `yaml:"seed" mapstructure:"seed"` // 0 means seeded from the clock
	IDMin      int64    `yaml:"id_min" mapstructure:"id_min"`
	IDMax      int64    `yaml:"id_max" mapstructure:"id_max"`
	ScoreMin   float64  `yaml:"score_min" mapstructure:"score_min"`
	ScoreMax   float64  `yaml:"score_max" mapstructure:"score_max"`
	FirstNames []string `yaml:"first_names" mapstructure:"first_names"`
	LastNames  []string `yaml:"last_names" mapstructure:"last_names"`
}

// OutputConfig represents report rendering settings.
type OutputConfig struct {
	Color    bool `yaml:"color" mapstructure:"color"`
	Progress bool `yaml:"progress" mapstructure:"progress"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Benchmark: BenchmarkConfig{
			Runs:    3,
			Key:     "id",
			Sorters: []string{"quicksort", "mergesort"},
		},
		Generator: GeneratorConfig{
			IDMin:      10000000,
			IDMax:      99999999,
			ScoreMin:   2.0,
			ScoreMax:   4.0,
			FirstNames: []string{"Andi", "Budi", "Citra", "Deni", "Eka"},
			LastNames:  []string{"Pratama", "Wijaya", "Sari", "Putra", "Dewi"},
		},
		Output: OutputConfig{
			Color:    true,
			Progress: true,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
			Output: "stderr",
		},
	}
}

// Sizes returns the configured input sizes, or nil when the user should be prompted.
func (c *Config) Sizes() []int {
	if len(c.Benchmark.Sizes) == 0 {
		return nil
	}
	out := make([]int, len(c.Benchmark.Sizes))
	copy(out, c.Benchmark.Sizes)
	return out
}
