package record

import (
	"cmp"
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKey is returned when a field name does not map to a Key.
var ErrUnknownKey = errors.New("unknown sort key")

// Key orders records by one field.
// Compare returns a negative number when a sorts before b, zero when the
// field values are equal and a positive number otherwise.
type Key struct {
	Name    string
	Compare func(a, b Record) int
}

var (
	// ByID orders records by student number.
	ByID = Key{Name: "id", Compare: func(a, b Record) int { return cmp.Compare(a.ID, b.ID) }}
	// ByName orders records lexically by name.
	ByName = Key{Name: "name", Compare: func(a, b Record) int { return strings.Compare(a.Name, b.Name) }}
	// ByScore orders records by score.
	ByScore = Key{Name: "score", Compare: func(a, b Record) int { return cmp.Compare(a.Score, b.Score) }}
)

// Keys lists every predefined key in display order.
func Keys() []Key {
	return []Key{ByID, ByName, ByScore}
}

// KeyByName resolves a field name (case-insensitive) to its Key.
func KeyByName(name string) (Key, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, k := range Keys() {
		if k.Name == n {
			return k, nil
		}
	}
	return Key{}, fmt.Errorf("%w: %q (valid: id, name, score)", ErrUnknownKey, name)
}

// IsSorted reports whether records are non-decreasing under k.
func (k Key) IsSorted(records []Record) bool {
	for i := 1; i < len(records); i++ {
		if k.Compare(records[i-1], records[i]) > 0 {
			return false
		}
	}
	return true
}
