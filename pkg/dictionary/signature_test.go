package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignatureOf(t *testing.T) {
	testCases := []struct {
		word        string
		letters     string
		foreign     bool
		description string
	}{
		{"", "", false, "Empty word"},
		{"cat", "act", false, "Distinct letters"},
		{"bee", "be", false, "Repeats collapse"},
		{"mississippi", "imps", false, "Many repeats"},
		{"don't", "dnot", true, "Apostrophe"},
		{"Cat", "at", true, "Uppercase is foreign"},
		{"zyx", "xyz", false, "Alphabet edge"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			sig := SignatureOf(tc.word)
			assert.Equal(t, tc.letters, string(sig.Letters()))
			assert.Equal(t, len(tc.letters), sig.Len())
			assert.Equal(t, tc.foreign, sig&Foreign != 0)
		})
	}
}

func TestSignatureSetOps(t *testing.T) {
	query := SignatureOf("tacos")

	assert.True(t, SignatureOf("cat").SubsetOf(query))
	assert.True(t, SignatureOf("coast").SubsetOf(query))
	assert.False(t, SignatureOf("cats!").SubsetOf(query))
	assert.False(t, SignatureOf("dog").SubsetOf(query))

	complement := query.Complement()
	assert.False(t, SignatureOf("costa").Overlaps(complement))
	assert.True(t, SignatureOf("dog").Overlaps(complement))
	assert.True(t, SignatureOf("o'ca").Overlaps(complement), "foreign bytes always hit the complement")
	assert.Equal(t, len(Alphabet)-query.Len(), complement.Len())

	assert.True(t, query.Has('s'))
	assert.False(t, query.Has('z'))
	assert.False(t, query.Has('-'))
	assert.Equal(t, "acost", query.String())
	assert.Equal(t, "dnot?", SignatureOf("don't").String())
}
