package quotient

import (
	"sort"
	"strings"

	"github.com/vbraun/torsion-cup-product/simplex"
)

// Class is an immutable equivalence class of simplices. A Class is a cell:
// its key is the sorted list of member keys, so two classes are the same
// cell exactly when they contain the same simplices.
type Class struct {
	members map[string]simplex.Simplex
	key     string
}

func newClass(members map[string]simplex.Simplex) *Class {
	keys := make([]string, 0, len(members))
	for key := range members {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return &Class{members: members, key: strings.Join(keys, "&")}
}

// singleton returns the class containing only s.
func singleton(s simplex.Simplex) *Class {
	return newClass(map[string]simplex.Simplex{s.Key(): s})
}

// Key implements cells.Cell: the sorted member keys joined with '&'.
func (c *Class) Key() string { return c.key }

// Len returns the number of member simplices.
func (c *Class) Len() int { return len(c.members) }

// Has reports whether the simplex with the given ordered key is a member.
func (c *Class) Has(key string) bool {
	_, ok := c.members[key]
	return ok
}

// Members returns the member simplices sorted by key.
func (c *Class) Members() []simplex.Simplex {
	out := make([]simplex.Simplex, 0, len(c.members))
	for _, s := range c.members {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out
}
