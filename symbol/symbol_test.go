package symbol

import (
	"testing"

	"github.com/jsphweid/voicegen/quality"
	"github.com/stretchr/testify/assert"
)

func TestParsesCommonSymbols(t *testing.T) {
	assert := assert.New(t)

	sym, err := Parse("Dm9")
	assert.NoError(err)
	assert.Equal("D", sym.Root)
	assert.Equal("m9", sym.Suffix)
	assert.Equal(quality.MinorSeventh.AddMaj9(), sym.Quality)
	assert.Equal("", sym.Bass)

	sym, err = Parse("G13/G")
	assert.NoError(err)
	assert.Equal("G", sym.Root)
	assert.Equal("13", sym.Suffix)
	assert.Equal(quality.DominantSeventh.AddMaj13(), sym.Quality)
	assert.Equal("G", sym.Bass)

	sym, err = Parse("Bb7")
	assert.NoError(err)
	assert.Equal("Bb", sym.Root)
	assert.Equal(quality.DominantSeventh, sym.Quality)

	sym, err = Parse("C#m7b5")
	assert.NoError(err)
	assert.Equal("C#", sym.Root)
	assert.Equal(quality.Diminished.AddMin7(), sym.Quality)

	sym, err = Parse("F")
	assert.NoError(err)
	assert.Equal("F", sym.Root)
	assert.Equal(quality.Major, sym.Quality)
}

func TestParseRejectsBadSymbols(t *testing.T) {
	assert := assert.New(t)

	for _, bad := range []string{"", "H7", "Cfoo", "Dm9/H", "/G"} {
		_, err := Parse(bad)
		assert.Error(err, "expected error for %q", bad)
	}
}

func TestSymbolRoundTripsToText(t *testing.T) {
	assert := assert.New(t)

	for _, text := range []string{"Dm9", "G13/G", "Bb7", "C", "F#m7b5"} {
		sym, err := Parse(text)
		assert.NoError(err)
		assert.Equal(text, sym.String())
	}
}

func TestDetectNamesTriadsAndSevenths(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		midis []int
		want  string
	}{
		{[]int{60, 64, 67}, "C"},
		{[]int{60, 63, 67}, "Cm"},
		{[]int{62, 65, 69, 72}, "Dm7"},
		{[]int{55, 59, 62, 65}, "G7"},
		{[]int{60, 64, 67, 71}, "Cmaj7"},
		{[]int{60, 63, 66}, "Cdim"},
		{[]int{60, 65, 67}, "Csus4"},
	}
	for _, c := range cases {
		sym, ok := Detect(c.midis)
		assert.True(ok, "no match for %v", c.midis)
		assert.Equal(c.want, sym.String(), "for %v", c.midis)
	}
}

func TestDetectPrefersTheBassAsRoot(t *testing.T) {
	assert := assert.New(t)

	// A-C-E-G reads as Am7 from the A bass, not C6
	sym, ok := Detect([]int{57, 60, 64, 67})
	assert.True(ok)
	assert.Equal("Am7", sym.String())

	// same classes over a C bass read as C6
	sym, ok = Detect([]int{48, 57, 60, 64, 67})
	assert.True(ok)
	assert.Equal("C6", sym.String())
}

func TestDetectGivesUpOnNonsense(t *testing.T) {
	assert := assert.New(t)

	_, ok := Detect([]int{60, 61, 62, 63})
	assert.False(ok)

	_, ok = Detect(nil)
	assert.False(ok)
}

func TestSuffixesAreSortedAndComplete(t *testing.T) {
	assert := assert.New(t)

	suffixes := Suffixes()
	assert.Len(suffixes, len(suffixQualities))
	for i := 1; i < len(suffixes); i++ {
		assert.Less(suffixes[i-1], suffixes[i])
	}
	assert.Contains(suffixes, "m9")
	assert.Contains(suffixes, "")
}
