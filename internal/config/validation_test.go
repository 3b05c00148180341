package config

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantField string
	}{
		{"zero runs", func(c *Config) { c.Benchmark.Runs = 0 }, "benchmark.runs"},
		{"unknown key", func(c *Config) { c.Benchmark.Key = "nim" }, "benchmark.key"},
		{"negative size", func(c *Config) { c.Benchmark.Sizes = []int{10, -1} }, "benchmark.sizes[1]"},
		{"id range inverted", func(c *Config) { c.Generator.IDMin = 100; c.Generator.IDMax = 1 }, "generator.id_min"},
		{"negative id_min", func(c *Config) { c.Generator.IDMin = -1 }, "generator.id_min"},
		{"score range inverted", func(c *Config) { c.Generator.ScoreMin = 4; c.Generator.ScoreMax = 2 }, "generator.score_min"},
		{"no first names", func(c *Config) { c.Generator.FirstNames = nil }, "generator.first_names"},
		{"no last names", func(c *Config) { c.Generator.LastNames = nil }, "generator.last_names"},
		{"bad log level", func(c *Config) { c.Logging.Level = "trace" }, "logging.level"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}

			var verrs ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected ValidationErrors, got %T", err)
			}
			found := false
			for _, e := range verrs {
				if e.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("expected error on field %s, got %v", tt.wantField, verrs)
			}
		})
	}
}

func TestValidateKeyCaseInsensitive(t *testing.T) {
	for _, key := range []string{"Score", " score ", "\tID\n", "NAME"} {
		cfg := DefaultConfig()
		cfg.Benchmark.Key = key
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected key %q to be valid: %v", key, err)
		}
	}
}

func TestValidateFullIDRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Generator.IDMin = 0
	cfg.Generator.IDMax = math.MaxInt64
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected the full non-negative id range to be valid: %v", err)
	}
}

func TestValidateAggregatesErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Benchmark.Runs = -1
	cfg.Logging.Format = "xml"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}

	verrs := err.(ValidationErrors)
	if len(verrs) != 2 {
		t.Errorf("expected 2 errors, got %d", len(verrs))
	}
	msg := err.Error()
	if !strings.HasPrefix(msg, "validation failed:") {
		t.Errorf("unexpected message: %s", msg)
	}
	if !strings.Contains(msg, "benchmark.runs") || !strings.Contains(msg, "logging.format") {
		t.Errorf("message should list every field: %s", msg)
	}
}

func TestValidationErrorsEmpty(t *testing.T) {
	var e ValidationErrors
	if e.Error() != "" {
		t.Errorf("expected empty message, got %q", e.Error())
	}
}
