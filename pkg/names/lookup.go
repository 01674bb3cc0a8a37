package names

import (
	"maps"
	"slices"

	"golang.org/x/text/cases"
)

// Lookup is a read-only name table that resolves keys exactly first and
// then by Unicode case folding.
type Lookup struct {
	exact  map[string]string
	folded map[string]string
}

// NewLookup builds a Lookup from names in order, skipping anything in exclude.
// When two names fold to the same key the later one wins.
func NewLookup(names []string, exclude ...string) *Lookup {
	exact := BuildLookupTable(names, exclude...)
	folded := make(map[string]string, len(exact))
	for _, name := range names {
		if _, ok := exact[name]; !ok {
			continue
		}
		folded[fold(name)] = name
	}
	return &Lookup{exact: exact, folded: folded}
}

// Resolve returns the canonical name for key.
func (l *Lookup) Resolve(key string) (string, bool) {
	if name, ok := l.exact[key]; ok {
		return name, true
	}
	name, ok := l.folded[fold(key)]
	return name, ok
}

// Contains reports whether key is an exact member of the table.
func (l *Lookup) Contains(key string) bool {
	_, ok := l.exact[key]
	return ok
}

// Len returns the number of exact entries.
func (l *Lookup) Len() int {
	return len(l.exact)
}

// Table returns a copy of the exact name-to-name table.
func (l *Lookup) Table() map[string]string {
	return maps.Clone(l.exact)
}

// Keys returns the exact keys in sorted order.
func (l *Lookup) Keys() []string {
	return slices.Sorted(maps.Keys(l.exact))
}

// Casers carry state, so a fresh one is made per call.
func fold(s string) string {
	return cases.Fold().String(s)
}
