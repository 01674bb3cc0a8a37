package names

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
)

// ErrInvalidRange is matched by every InvalidRangeError via errors.Is.
var ErrInvalidRange = errors.New("invalid index range")

// InvalidRangeError is returned by DeriveByIndexRange when End < Start.
type InvalidRangeError struct {
	Prefix string
	Start  int
	End    int
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid index range for prefix %q: end %d is before start %d", e.Prefix, e.End, e.Start)
}

func (e *InvalidRangeError) Is(target error) bool {
	return target == ErrInvalidRange
}

// Category is a named, ordered list of asset identifiers.
type Category struct {
	Name  string   `json:"name" yaml:"name"`
	Items []string `json:"items" yaml:"items"`
}

// NewCategory copies items so later changes to the caller's slice don't leak in.
func NewCategory(name string, items []string) Category {
	return Category{Name: name, Items: slices.Clone(items)}
}

// Len returns the number of items in the category.
func (c Category) Len() int {
	return len(c.Items)
}

// Clone returns a deep copy of the category.
func (c Category) Clone() Category {
	return Category{Name: c.Name, Items: slices.Clone(c.Items)}
}

// DeriveByPrefix returns prefix+label for every label, in input order.
func DeriveByPrefix(prefix string, labels []string) []string {
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		out = append(out, prefix+l)
	}
	return out
}

// DeriveByIndexRange returns prefix+i for i from start to end inclusive.
func DeriveByIndexRange(prefix string, start, end int) ([]string, error) {
	if end < start {
		return nil, &InvalidRangeError{Prefix: prefix, Start: start, End: end}
	}
	out := make([]string, 0, end-start+1)
	for i := start; i <= end; i++ {
		out = append(out, prefix+strconv.Itoa(i))
	}
	return out, nil
}

// MustDeriveByIndexRange is like DeriveByIndexRange but panics on a bad range.
// It is meant for package-level initialization of fixed data.
func MustDeriveByIndexRange(prefix string, start, end int) []string {
	out, err := DeriveByIndexRange(prefix, start, end)
	if err != nil {
		panic(err)
	}
	return out
}

// BuildAggregate concatenates the items of each category in the given order.
// Duplicates are kept.
func BuildAggregate(categories ...Category) []string {
	total := 0
	for _, c := range categories {
		total += len(c.Items)
	}
	out := make([]string, 0, total)
	for _, c := range categories {
		out = append(out, c.Items...)
	}
	return out
}

// BuildLookupTable maps every name not in exclude to itself.
// Names are inserted in order, so a later duplicate overwrites an earlier one.
func BuildLookupTable(names []string, exclude ...string) map[string]string {
	skip := make(map[string]struct{}, len(exclude))
	for _, e := range exclude {
		skip[e] = struct{}{}
	}

	table := make(map[string]string, len(names))
	for _, name := range names {
		if _, ok := skip[name]; ok {
			continue
		}
		table[name] = name
	}
	return table
}
