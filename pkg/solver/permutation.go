package solver

import (
	"slices"

	"github.com/bastiangx/jumble/pkg/dictionary"
)

// PermutationMatcher enumerates arrangements of the query letters of every
// length from MinWordLength up and keeps those found in a flat dictionary.
// Cost grows factorially with query length, so it only suits short queries.
type PermutationMatcher struct {
	dict  *dictionary.Flat
	prune bool
}

// NewPermutationMatcher binds a matcher to dict. With prune set, an
// arrangement is abandoned once no dictionary word starts with it.
func NewPermutationMatcher(dict *dictionary.Flat, prune bool) *PermutationMatcher {
	return &PermutationMatcher{dict: dict, prune: prune}
}

// Match returns every dictionary word that is an arrangement of two or more
// query letters.
func (m *PermutationMatcher) Match(q Query) MatchSet {
	matches := make(MatchSet)
	if q.TooShort() {
		return matches
	}

	// Sorted letters let arrange skip repeated letters at the same position,
	// so each distinct string is produced exactly once.
	letters := []byte(q.Letters())
	slices.Sort(letters)

	used := make([]bool, len(letters))
	prefix := make([]byte, 0, len(letters))
	m.arrange(letters, used, prefix, matches)
	return matches
}

func (m *PermutationMatcher) arrange(letters []byte, used []bool, prefix []byte, matches MatchSet) {
	for i, c := range letters {
		if used[i] {
			continue
		}
		// identical letters are taken in index order only
		if i > 0 && letters[i-1] == c && !used[i-1] {
			continue
		}

		candidate := append(prefix, c)
		word := string(candidate)
		if len(candidate) >= MinWordLength && m.dict.Contains(word) {
			matches.Add(word)
		}
		if len(candidate) == len(letters) {
			continue
		}
		if m.prune && !m.dict.HasPrefix(word) {
			continue
		}

		used[i] = true
		m.arrange(letters, used, candidate, matches)
		used[i] = false
	}
}
