package dictionary

import "math/bits"

// Alphabet is the fixed set of letters a query or word may be built from.
const Alphabet = "abcdefghijklmnopqrstuvwxyz"

// Signature is the set of distinct letters in a word, one bit per letter of
// Alphabet. Words holding any byte outside a-z also carry the Foreign bit.
type Signature uint32

// Foreign marks a word containing at least one byte outside Alphabet.
// No query ever carries it, so such words can never be constructed.
const Foreign Signature = 1 << len(Alphabet)

// FullAlphabet has every letter bit set and nothing else.
const FullAlphabet Signature = Foreign - 1

// SignatureOf returns the distinct-letter set of word.
func SignatureOf(word string) Signature {
	var sig Signature
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c < 'a' || c > 'z' {
			sig |= Foreign
			continue
		}
		sig |= 1 << (c - 'a')
	}
	return sig
}

// Complement is every Alphabet letter absent from s, plus Foreign.
func (s Signature) Complement() Signature {
	return (FullAlphabet &^ s) | Foreign
}

// SubsetOf reports whether every letter of s is also in other.
func (s Signature) SubsetOf(other Signature) bool {
	return s&^other == 0
}

// Overlaps reports whether s and other share any bit.
func (s Signature) Overlaps(other Signature) bool {
	return s&other != 0
}

// Has reports whether letter c is in s.
func (s Signature) Has(c byte) bool {
	if c < 'a' || c > 'z' {
		return s&Foreign != 0
	}
	return s&(1<<(c-'a')) != 0
}

// Len is the number of distinct letters in s, not counting Foreign.
func (s Signature) Len() int {
	return bits.OnesCount32(uint32(s & FullAlphabet))
}

// Letters lists the letters of s in alphabetical order.
func (s Signature) Letters() []byte {
	letters := make([]byte, 0, s.Len())
	for i := 0; i < len(Alphabet); i++ {
		if s&(1<<i) != 0 {
			letters = append(letters, Alphabet[i])
		}
	}
	return letters
}

func (s Signature) String() string {
	str := string(s.Letters())
	if s&Foreign != 0 {
		str += "?"
	}
	return str
}
