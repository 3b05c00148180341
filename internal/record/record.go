// Package record contains the student record type shared by the generator,
// the sorters and the timing harness.
package record

import "fmt"

// Record is a single generated student record.
type Record struct {
	ID    int64   // 8-digit student number
	Name  string  // "<first> <last>"
	Score float64 // grade point average, two decimals
}

func (r Record) String() string {
	return fmt.Sprintf("%d %s %.2f", r.ID, r.Name, r.Score)
}

// Clone returns a copy of records backed by a new array.
// A nil input yields an empty, non-nil slice.
func Clone(records []Record) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	return out
}

// IDs extracts the ID of every record, preserving order.
func IDs(records []Record) []int64 {
	ids := make([]int64, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}
	return ids
}
