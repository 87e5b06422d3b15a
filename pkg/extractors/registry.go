package extractors

import (
	"slices"
	"sort"

	"github.com/pyhub-apps/pdfcolors-golang/pkg/color"
)

// Usage is a distinct color and the number of times it was set.
type Usage struct {
	color.Color
	Count int
}

// Registry deduplicates colors and counts how often each one is used.
// The first Color recorded for a key is kept as the canonical entry. The
// registry owns its operand slices: Record stores a copy and every accessor
// hands out copies.
type Registry struct {
	index   map[color.Key]int
	entries []Usage
	total   int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		index: make(map[color.Key]int),
	}
}

// Record counts one use of c.
func (r *Registry) Record(c color.Color) {
	key := c.Key()
	if i, ok := r.index[key]; ok {
		r.entries[i].Count++
	} else {
		r.index[key] = len(r.entries)
		c.Value = slices.Clone(c.Value)
		r.entries = append(r.entries, Usage{Color: c, Count: 1})
	}
	r.total++
}

// Total returns the number of Record calls.
func (r *Registry) Total() int {
	return r.total
}

// Len returns the number of distinct colors.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Lookup returns the usage recorded for key.
func (r *Registry) Lookup(key color.Key) (Usage, bool) {
	i, ok := r.index[key]
	if !ok {
		return Usage{}, false
	}
	return r.entries[i].clone(), true
}

// Colors returns the distinct colors in first-seen order.
func (r *Registry) Colors() []Usage {
	out := make([]Usage, len(r.entries))
	for i, u := range r.entries {
		out[i] = u.clone()
	}
	return out
}

// Ranked returns the distinct colors by descending count. Colors with equal
// counts keep their first-seen order.
func (r *Registry) Ranked() []Usage {
	out := r.Colors()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

func (u Usage) clone() Usage {
	u.Value = slices.Clone(u.Value)
	return u
}
