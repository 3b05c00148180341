// Package report renders benchmark progress and result tables.
package report

import (
	"time"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/dbsmedya/sortbench/internal/harness"
	"github.com/dbsmedya/sortbench/internal/sorting"
)

// Column is one sorter column of the result table.
type Column struct {
	Name  string
	Title string
}

// Row holds the mean time of every sorter for one input size.
type Row struct {
	Size  int
	Times *orderedmap.OrderedMap[string, time.Duration] // sorter name -> mean
}

// Mean returns the mean recorded for sorter, if any.
func (r Row) Mean(sorter string) (time.Duration, bool) {
	return r.Times.Get(sorter)
}

// Results collects rows in measurement order.
type Results struct {
	Key     string
	Runs    int
	Columns []Column
	Rows    []Row
}

// NewResults creates an empty result set with one column per sorter.
func NewResults(sorters []sorting.Sorter, key string, runs int) *Results {
	cols := make([]Column, len(sorters))
	for i, s := range sorters {
		cols[i] = Column{Name: s.Name, Title: s.Title}
	}
	return &Results{Key: key, Runs: runs, Columns: cols}
}

// Add appends a row for size. Measurements for sorters without a column
// are ignored; columns without a measurement are left empty.
func (r *Results) Add(size int, measurements ...harness.Measurement) {
	byName := make(map[string]time.Duration, len(measurements))
	for _, m := range measurements {
		byName[m.Sorter] = m.Mean
	}

	times := orderedmap.NewOrderedMap[string, time.Duration]()
	for _, c := range r.Columns {
		if d, ok := byName[c.Name]; ok {
			times.Set(c.Name, d)
		}
	}
	r.Rows = append(r.Rows, Row{Size: size, Times: times})
}

// Len returns the number of rows.
func (r *Results) Len() int {
	return len(r.Rows)
}
