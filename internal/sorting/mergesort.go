package sorting

import "github.com/dbsmedya/sortbench/internal/record"

// Mergesort orders records non-decreasingly by key with a top-down merge
// sort. It is stable.
func Mergesort(records []record.Record, key record.Key) []record.Record {
	if len(records) <= 1 {
		return records
	}

	mid := len(records) / 2
	left := Mergesort(records[:mid], key)
	right := Mergesort(records[mid:], key)
	return Merge(left, right, key)
}

// Merge combines two slices already sorted by key. On ties the element from
// left is taken first.
func Merge(left, right []record.Record, key record.Key) []record.Record {
	result := make([]record.Record, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if key.Compare(left[i], right[j]) <= 0 {
			result = append(result, left[i])
			i++
		} else {
			result = append(result, right[j])
			j++
		}
	}
	result = append(result, left[i:]...)
	result = append(result, right[j:]...)
	return result
}
