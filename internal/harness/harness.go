// Package harness times sorters over copies of a dataset.
package harness

import (
	"context"
	"fmt"
	"time"

	"github.com/dbsmedya/sortbench/internal/logger"
	"github.com/dbsmedya/sortbench/internal/record"
	"github.com/dbsmedya/sortbench/internal/sorting"
)

// DefaultRuns is the number of timed runs averaged when none is given.
const DefaultRuns = 3

// Measurement holds the timings of one sorter on one dataset.
type Measurement struct {
	Sorter string
	Size   int
	Runs   []time.Duration
	Mean   time.Duration
	Min    time.Duration
	Max    time.Duration
}

// Harness runs sorters repeatedly and averages their wall-clock time.
type Harness struct {
	runs   int
	verify bool
	logger *logger.Logger
}

// New creates a Harness. runs <= 0 selects DefaultRuns. When verify is set,
// every run's output is checked with Verify.
func New(runs int, verify bool, log *logger.Logger) *Harness {
	if runs <= 0 {
		runs = DefaultRuns
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Harness{
		runs:   runs,
		verify: verify,
		logger: log,
	}
}

// Runs returns the number of timed runs per measurement.
func (h *Harness) Runs() int {
	return h.runs
}

// Measure times s on data sorted by key. Each run sorts its own copy of data,
// so data is never modified. The context is checked before every run.
func (h *Harness) Measure(ctx context.Context, s sorting.Sorter, data []record.Record, key record.Key) (Measurement, error) {
	m := Measurement{
		Sorter: s.Name,
		Size:   len(data),
		Runs:   make([]time.Duration, 0, h.runs),
	}
	log := h.logger.WithSorter(s.Name).WithSize(len(data))

	var total time.Duration
	for i := 0; i < h.runs; i++ {
		if err := ctx.Err(); err != nil {
			return m, err
		}

		dataCopy := record.Clone(data)
		start := time.Now()
		sorted := s.Sort(dataCopy, key)
		elapsed := time.Since(start)

		if h.verify {
			if err := Verify(data, sorted, key); err != nil {
				return m, fmt.Errorf("%s run %d: %w", s.Name, i+1, err)
			}
		}

		log.WithRun(i+1).Debugw("Run complete", "elapsed", elapsed)

		m.Runs = append(m.Runs, elapsed)
		total += elapsed
		if i == 0 || elapsed < m.Min {
			m.Min = elapsed
		}
		if elapsed > m.Max {
			m.Max = elapsed
		}
	}

	m.Mean = total / time.Duration(h.runs)
	log.Infow("Measured sorter", "mean", m.Mean, "min", m.Min, "max", m.Max)
	return m, nil
}

// MeasureTime runs sortFn runs times, each on a fresh copy of data, and
// returns the mean elapsed time. runs <= 0 selects DefaultRuns.
func MeasureTime(sortFn sorting.Func, data []record.Record, key record.Key, runs int) time.Duration {
	h := New(runs, false, nil)
	m, _ := h.Measure(context.Background(), sorting.Sorter{Name: "anonymous", Sort: sortFn}, data, key)
	return m.Mean
}
