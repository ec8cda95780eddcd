package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelect(t *testing.T) {
	testCases := []struct {
		length    int
		threshold int
		expected  Strategy
	}{
		{0, DefaultThreshold, Permutation},
		{2, DefaultThreshold, Permutation},
		{8, DefaultThreshold, Permutation},
		{9, DefaultThreshold, Signature},
		{15, DefaultThreshold, Signature},
		{3, 3, Signature},
		{2, 3, Permutation},
		{0, 0, Signature},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, Select(tc.length, tc.threshold), "length=%d threshold=%d", tc.length, tc.threshold)
	}
}

func TestResolve(t *testing.T) {
	assert.Equal(t, Permutation, Resolve(Permutation, 20, DefaultThreshold))
	assert.Equal(t, Signature, Resolve(Signature, 2, DefaultThreshold))
	assert.Equal(t, Signature, Resolve(Auto, 12, DefaultThreshold))
}

func TestParseStrategy(t *testing.T) {
	testCases := []struct {
		input    string
		expected Strategy
		wantErr  bool
	}{
		{"", Auto, false},
		{"auto", Auto, false},
		{"Permutation", Permutation, false},
		{"perm", Permutation, false},
		{" signature ", Signature, false},
		{"sig", Signature, false},
		{"brute", Auto, true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseStrategy(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, got)
			assert.Equal(t, got, mustParse(t, got.String()))
		})
	}
}

func mustParse(t *testing.T, name string) Strategy {
	t.Helper()
	s, err := ParseStrategy(name)
	assert.NoError(t, err)
	return s
}

func TestQuery(t *testing.T) {
	q := NewQuery("He11o, World!")
	assert.Equal(t, "heoworld", q.Letters())
	assert.Equal(t, 8, q.Len())
	assert.Equal(t, 2, q.Count('o'))
	assert.Equal(t, 0, q.Count('z'))
	assert.Equal(t, 0, q.Count('!'))
	assert.Equal(t, "dehlorw", q.Signature().String())

	assert.True(t, q.Allows("hero"))
	assert.True(t, q.Allows("wood"))
	assert.False(t, q.Allows("hello"), "one l in query")
	assert.False(t, q.Allows("he!"))
	assert.False(t, q.TooShort())
	assert.True(t, NewQuery("x").TooShort())
}
