package core_test

import (
	"testing"

	"github.com/aretw0/chaise/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevision_Ordering(t *testing.T) {
	r1 := core.NewRevision("1-1234")

	r2 := r1.Clone()
	assert.True(t, r1.Equal(r2))
	assert.True(t, r1 == r2)
	assert.True(t, r1.LessOrEqual(r2))
	assert.False(t, r1.Less(r2))
	assert.True(t, r2.LessOrEqual(r1))
	assert.False(t, r2.Less(r1))

	r2 = core.NewRevision("2-1234")
	assert.False(t, r1.Equal(r2))
	assert.True(t, r1.LessOrEqual(r2))
	assert.True(t, r1.Less(r2))
	assert.False(t, r2.LessOrEqual(r1))
	assert.False(t, r2.Less(r1))
}

// Ordering is byte-wise: generation 10 sorts before generation 2.
func TestRevision_LexicographicNotNumeric(t *testing.T) {
	ten := core.NewRevision("10-aaa")
	two := core.NewRevision("2-bbb")

	assert.True(t, ten.Less(two))
	assert.Equal(t, -1, ten.Compare(two))
	assert.Equal(t, 1, two.Compare(ten))

	g10, ok := ten.Generation()
	require.True(t, ok)
	g2, ok := two.Generation()
	require.True(t, ok)
	assert.Greater(t, g10, g2, "generation parsing disagrees with Compare on purpose")
}

func TestRevision_CompareMatchesStrings(t *testing.T) {
	tokens := []string{"", "1-a", "1-b", "10-a", "2-a", "2-a ", "Z", "a", "é"}
	for _, a := range tokens {
		for _, b := range tokens {
			ra, rb := core.NewRevision(a), core.NewRevision(b)
			assert.Equal(t, a == b, ra.Equal(rb), "equal %q %q", a, b)
			assert.Equal(t, a < b, ra.Less(rb), "less %q %q", a, b)
			assert.Equal(t, a <= b, ra.LessOrEqual(rb), "less-or-equal %q %q", a, b)
		}
	}
}

func TestRevision_StringRoundTrip(t *testing.T) {
	for _, s := range []string{"1-967a00dff5e02add41819138abb3284d", "x", "3-ü ", "  "} {
		assert.Equal(t, s, core.NewRevision(s).String())
	}
}

func TestRevision_CloneIsIndependent(t *testing.T) {
	orig := core.NewRevision("4-abcdef")
	clone := orig.Clone()

	orig = core.NewRevision("9-zzz")

	assert.Equal(t, "4-abcdef", clone.String())
	assert.True(t, clone.Less(orig))
	assert.False(t, clone.Equal(orig))
}

func TestRevision_IsZero(t *testing.T) {
	assert.True(t, core.Revision{}.IsZero())
	assert.True(t, core.NewRevision("").IsZero())
	assert.False(t, core.NewRevision("1-a").IsZero())
}

func TestRevision_Generation(t *testing.T) {
	tests := []struct {
		token string
		gen   int
		ok    bool
	}{
		{"1-abc", 1, true},
		{"42-abc", 42, true},
		{"abc", 0, false},
		{"x-abc", 0, false},
		{"-abc", 0, false},
		{"", 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.token, func(t *testing.T) {
			gen, ok := core.NewRevision(tc.token).Generation()
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.gen, gen)
		})
	}
}

func TestRevision_Text(t *testing.T) {
	var rev core.Revision
	require.NoError(t, rev.UnmarshalText([]byte("7-cafe")))
	assert.Equal(t, "7-cafe", rev.String())

	text, err := rev.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "7-cafe", string(text))
}
