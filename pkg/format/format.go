// Package format orders match sets and writes them out.
package format

import (
	"bufio"
	"fmt"
	"io"
	"sort"
)

// NoMatches is printed in place of an empty result list.
const NoMatches = "No words found"

// Order returns a new slice holding words longest first, ties broken
// alphabetically. words is left untouched.
func Order(words []string) []string {
	ordered := make([]string, len(words))
	copy(ordered, words)

	// alphabetical first, then a stable length sort so it dominates
	sort.Strings(ordered)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i]) > len(ordered[j])
	})
	return ordered
}

// Limit truncates words to at most n entries; n <= 0 keeps everything.
func Limit(words []string, n int) []string {
	if n <= 0 || len(words) <= n {
		return words
	}
	return words[:n]
}

// Write prints one word per line, or NoMatches when words is empty.
func Write(w io.Writer, words []string) error {
	bw := bufio.NewWriter(w)
	if len(words) == 0 {
		if _, err := fmt.Fprintln(bw, NoMatches); err != nil {
			return err
		}
		return bw.Flush()
	}
	for _, word := range words {
		if _, err := fmt.Fprintln(bw, word); err != nil {
			return err
		}
	}
	return bw.Flush()
}
