package sorting

import (
	"errors"
	"fmt"
	"strings"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/dbsmedya/sortbench/internal/record"
)

// Func is the signature shared by every sorter. Implementations return the
// records ordered by key and may return the input slice itself when it holds
// fewer than two records.
type Func func(records []record.Record, key record.Key) []record.Record

// Sorter names a sorting function.
type Sorter struct {
	Name  string // flag/config name, e.g. "quicksort"
	Title string // column title used in reports
	Sort  Func
}

// ErrUnknownSorter is returned when a sorter name is not registered.
var ErrUnknownSorter = errors.New("unknown sorter")

// Registry holds sorters in registration order.
type Registry struct {
	sorters *orderedmap.OrderedMap[string, Sorter]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{sorters: orderedmap.NewOrderedMap[string, Sorter]()}
}

// DefaultRegistry returns a registry with quicksort and mergesort, in that order.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(Sorter{Name: "quicksort", Title: "Quicksort", Sort: Quicksort})
	r.Register(Sorter{Name: "mergesort", Title: "Mergesort", Sort: Mergesort})
	return r
}

// Register adds s, replacing an existing sorter of the same name in place.
func (r *Registry) Register(s Sorter) {
	r.sorters.Set(strings.ToLower(s.Name), s)
}

// Lookup returns the sorter registered under name.
func (r *Registry) Lookup(name string) (Sorter, error) {
	s, ok := r.sorters.Get(strings.ToLower(strings.TrimSpace(name)))
	if !ok {
		return Sorter{}, fmt.Errorf("%w: %q (available: %s)",
			ErrUnknownSorter, name, strings.Join(r.Names(), ", "))
	}
	return s, nil
}

// Names returns registered sorter names in registration order.
func (r *Registry) Names() []string {
	return r.sorters.Keys()
}

// All returns every registered sorter in registration order.
func (r *Registry) All() []Sorter {
	out := make([]Sorter, 0, r.sorters.Len())
	for el := r.sorters.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value)
	}
	return out
}

// Select resolves names to sorters. The result follows registration order
// regardless of the order of names, and duplicates are collapsed.
// An empty names list selects every sorter.
func (r *Registry) Select(names []string) ([]Sorter, error) {
	if len(names) == 0 {
		return r.All(), nil
	}

	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		s, err := r.Lookup(n)
		if err != nil {
			return nil, err
		}
		wanted[s.Name] = true
	}

	var out []Sorter
	for _, s := range r.All() {
		if wanted[s.Name] {
			out = append(out, s)
		}
	}
	return out, nil
}
