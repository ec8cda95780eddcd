package solver

import (
	"github.com/bastiangx/jumble/pkg/dictionary"
)

// SignatureMatcher filters a signature-grouped dictionary down to groups
// whose letters all occur in the query, then checks letter multiplicity
// word by word. Its cost tracks dictionary size, not query length.
type SignatureMatcher struct {
	dict *dictionary.Grouped
}

func NewSignatureMatcher(dict *dictionary.Grouped) *SignatureMatcher {
	return &SignatureMatcher{dict: dict}
}

// Match returns every grouped word of two or more letters that the query
// letters can build.
func (m *SignatureMatcher) Match(q Query) MatchSet {
	matches := make(MatchSet)
	if q.TooShort() {
		return matches
	}

	outside := q.Signature().Complement()
	m.dict.Visit(func(sig dictionary.Signature, words []string) {
		if sig.Overlaps(outside) {
			return
		}
		letters := sig.Letters()
		for _, word := range words {
			if len(word) < MinWordLength {
				continue
			}
			if withinCounts(word, letters, q) {
				matches.Add(word)
			}
		}
	})
	return matches
}

// withinCounts reports whether no letter occurs in word more often than in q.
func withinCounts(word string, letters []byte, q Query) bool {
	for _, c := range letters {
		if countByte(word, c) > q.Count(c) {
			return false
		}
	}
	return true
}

func countByte(s string, c byte) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			n++
		}
	}
	return n
}
