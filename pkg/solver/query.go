package solver

import (
	"strings"

	"github.com/bastiangx/jumble/pkg/dictionary"
)

// MinWordLength is the shortest word a query can produce.
const MinWordLength = 2

// Query is a normalized bag of letters: lowercase a-z only, repeats kept.
type Query struct {
	letters string
	counts  [len(dictionary.Alphabet)]int
	sig     dictionary.Signature
}

// NewQuery lowercases raw and drops everything that is not a letter a-z.
func NewQuery(raw string) Query {
	lower := strings.ToLower(raw)
	var b strings.Builder
	b.Grow(len(lower))

	var q Query
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if c < 'a' || c > 'z' {
			continue
		}
		b.WriteByte(c)
		q.counts[c-'a']++
	}
	q.letters = b.String()
	q.sig = dictionary.SignatureOf(q.letters)
	return q
}

// Letters returns the normalized letters in input order.
func (q Query) Letters() string {
	return q.letters
}

func (q Query) Len() int {
	return len(q.letters)
}

// Count returns how many times letter c occurs in the query.
func (q Query) Count(c byte) int {
	if c < 'a' || c > 'z' {
		return 0
	}
	return q.counts[c-'a']
}

// Signature is the set of distinct letters in the query.
func (q Query) Signature() dictionary.Signature {
	return q.sig
}

// Allows reports whether word uses no letter more often than the query does.
func (q Query) Allows(word string) bool {
	var used [len(dictionary.Alphabet)]int
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c < 'a' || c > 'z' {
			return false
		}
		used[c-'a']++
		if used[c-'a'] > q.counts[c-'a'] {
			return false
		}
	}
	return true
}

// TooShort reports whether the query cannot form any word.
func (q Query) TooShort() bool {
	return len(q.letters) < MinWordLength
}

func (q Query) String() string {
	return q.letters
}
