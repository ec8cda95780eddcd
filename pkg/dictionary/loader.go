// Package dictionary loads word lists into the two lookup structures the
// solver matches against: a flat membership set and a signature-grouped index.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// ErrSourceUnavailable is returned when a word list cannot be opened, read
// or decoded as UTF-8.
var ErrSourceUnavailable = errors.New("dictionary source unavailable")

// maxLineSize bounds a single word list line.
const maxLineSize = 1 << 20

// Flat is a set of words with O(1) membership and a prefix index.
type Flat struct {
	words map[string]struct{}
	trie  *patricia.Trie
}

// Grouped maps each signature to the words sharing it, in load order.
type Grouped struct {
	groups map[Signature][]string
	order  []Signature
	total  int
}

// Stats describes a loaded dictionary.
type Stats struct {
	Words  int
	Groups int
}

// LoadFlat reads one word per line from r into a Flat set.
// Duplicate lines collapse into one entry.
func LoadFlat(r io.Reader) (*Flat, error) {
	flat := &Flat{
		words: make(map[string]struct{}),
		trie:  patricia.NewTrie(),
	}
	err := scanWords(r, func(word string) {
		if _, seen := flat.words[word]; seen {
			return
		}
		flat.words[word] = struct{}{}
		flat.trie.Insert(patricia.Prefix(word), true)
	})
	if err != nil {
		return nil, err
	}
	log.Debugf("Flat dictionary loaded: %d words", len(flat.words))
	return flat, nil
}

// LoadGrouped reads one word per line from r, appending each word to the
// group keyed by its signature.
func LoadGrouped(r io.Reader) (*Grouped, error) {
	grouped := &Grouped{groups: make(map[Signature][]string)}
	err := scanWords(r, func(word string) {
		sig := SignatureOf(word)
		words, ok := grouped.groups[sig]
		if !ok {
			grouped.order = append(grouped.order, sig)
		}
		grouped.groups[sig] = append(words, word)
		grouped.total++
	})
	if err != nil {
		return nil, err
	}
	log.Debugf("Grouped dictionary loaded: %d words in %d groups", grouped.total, len(grouped.order))
	return grouped, nil
}

// LoadFlatFile opens filename, loads it with LoadFlat and closes it.
func LoadFlatFile(filename string) (*Flat, error) {
	src, err := Open(filename)
	if err != nil {
		return nil, err
	}
	defer src.Close()
	flat, err := LoadFlat(src)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", filename, err)
	}
	return flat, nil
}

// LoadGroupedFile opens filename, loads it with LoadGrouped and closes it.
func LoadGroupedFile(filename string) (*Grouped, error) {
	src, err := Open(filename)
	if err != nil {
		return nil, err
	}
	defer src.Close()
	grouped, err := LoadGrouped(src)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", filename, err)
	}
	return grouped, nil
}

// scanWords calls add for every trimmed, non-empty line of r.
// A line that is not valid UTF-8 fails the whole load.
func scanWords(r io.Reader, add func(word string)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	n := 0
	for scanner.Scan() {
		n++
		if !utf8.Valid(scanner.Bytes()) {
			return fmt.Errorf("%w: line %d of word list is not valid UTF-8", ErrSourceUnavailable, n)
		}
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		add(word)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	return nil
}

// Contains reports whether word is in the set.
func (f *Flat) Contains(word string) bool {
	_, ok := f.words[word]
	return ok
}

// HasPrefix reports whether any word in the set starts with prefix.
func (f *Flat) HasPrefix(prefix string) bool {
	return f.trie.MatchSubtree(patricia.Prefix(prefix))
}

// Len returns the number of distinct words.
func (f *Flat) Len() int {
	return len(f.words)
}

func (f *Flat) Stats() Stats {
	return Stats{Words: len(f.words)}
}

// Words returns the words sharing sig, or nil.
func (g *Grouped) Words(sig Signature) []string {
	return g.groups[sig]
}

// Visit calls fn for every group in the order its first word was loaded.
func (g *Grouped) Visit(fn func(sig Signature, words []string)) {
	for _, sig := range g.order {
		fn(sig, g.groups[sig])
	}
}

// Len returns the number of words across all groups.
func (g *Grouped) Len() int {
	return g.total
}

func (g *Grouped) Stats() Stats {
	return Stats{Words: g.total, Groups: len(g.order)}
}
