package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate checks the configuration for required fields and valid values.
// Sorter and key names are resolved later by their registries.
func (c *Config) Validate() error {
	var errors ValidationErrors

	errors = append(errors, c.validateBenchmark()...)
	errors = append(errors, c.validateGenerator()...)
	errors = append(errors, c.validateLogging()...)

	if len(errors) > 0 {
		return errors
	}
	return nil
}

func (c *Config) validateBenchmark() ValidationErrors {
	var errors ValidationErrors

	if c.Benchmark.Runs <= 0 {
		errors = append(errors, ValidationError{
			Field:   "benchmark.runs",
			Message: "runs must be positive",
		})
	}

	validKeys := map[string]bool{"id": true, "name": true, "score": true}
	if !validKeys[strings.ToLower(strings.TrimSpace(c.Benchmark.Key))] {
		errors = append(errors, ValidationError{
			Field:   "benchmark.key",
			Message: "key must be 'id', 'name', or 'score'",
		})
	}

	for i, size := range c.Benchmark.Sizes {
		if size < 0 {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("benchmark.sizes[%d]", i),
				Message: "size cannot be negative",
			})
		}
	}

	return errors
}

func (c *Config) validateGenerator() ValidationErrors {
	var errors ValidationErrors
	g := c.Generator

	if g.IDMin < 0 || g.IDMin > g.IDMax {
		errors = append(errors, ValidationError{
			Field:   "generator.id_min",
			Message: "id_min must be non-negative and not greater than id_max",
		})
	}

	if g.ScoreMin > g.ScoreMax {
		errors = append(errors, ValidationError{
			Field:   "generator.score_min",
			Message: "score_min cannot be greater than score_max",
		})
	}

	if len(g.FirstNames) == 0 {
		errors = append(errors, ValidationError{
			Field:   "generator.first_names",
			Message: "at least one first name is required",
		})
	}

	if len(g.LastNames) == 0 {
		errors = append(errors, ValidationError{
			Field:   "generator.last_names",
			Message: "at least one last name is required",
		})
	}

	return errors
}

func (c *Config) validateLogging() ValidationErrors {
	var errors ValidationErrors

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "": true}
	if !validLevels[c.Logging.Level] {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Message: "level must be 'debug', 'info', 'warn', or 'error'",
		})
	}

	validFormats := map[string]bool{"json": true, "text": true, "": true}
	if !validFormats[c.Logging.Format] {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Message: "format must be 'json' or 'text'",
		})
	}

	return errors
}
