package solver

import (
	"github.com/samber/lo"
)

// MatchSet holds every word a query can build, without order or duplicates.
type MatchSet map[string]struct{}

// Add inserts word into the set.
func (m MatchSet) Add(word string) {
	m[word] = struct{}{}
}

func (m MatchSet) Has(word string) bool {
	_, ok := m[word]
	return ok
}

// Words returns the set's members in no particular order.
func (m MatchSet) Words() []string {
	return lo.Keys(map[string]struct{}(m))
}

// Matcher finds every dictionary word constructible from a query.
// Each implementation is bound to the dictionary structure it searches.
type Matcher interface {
	Match(q Query) MatchSet
}
