// Package sorting implements the comparison sorts measured by sortbench.
//
// Both sorters build new slices at every level of recursion instead of
// working in place. Inputs of length zero or one are returned as is.
package sorting

import "github.com/dbsmedya/sortbench/internal/record"

// Quicksort orders records non-decreasingly by key using a three-way
// partition around the middle element.
//
// Records equal to the pivot are kept in encounter order, so equal keys
// come out in input order. Callers should not rely on that; only Mergesort
// is documented as stable.
func Quicksort(records []record.Record, key record.Key) []record.Record {
	if len(records) <= 1 {
		return records
	}

	pivot := records[len(records)/2]
	var left, middle, right []record.Record
	for _, r := range records {
		switch c := key.Compare(r, pivot); {
		case c < 0:
			left = append(left, r)
		case c == 0:
			middle = append(middle, r)
		default:
			right = append(right, r)
		}
	}

	result := make([]record.Record, 0, len(records))
	result = append(result, Quicksort(left, key)...)
	result = append(result, middle...)
	result = append(result, Quicksort(right, key)...)
	return result
}
