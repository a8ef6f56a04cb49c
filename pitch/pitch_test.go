package pitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsesPlainAndAccidentalSpellings(t *testing.T) {
	assert := assert.New(t)

	cases := map[string]int{
		"C4":   60,
		"C0":   12,
		"A4":   69,
		"F#3":  54,
		"Bb5":  82,
		"C##4": 62,
		"Ebb2": 38,
		"G9":   127,
	}
	for name, midi := range cases {
		p, err := Parse(name)
		assert.NoError(err)
		assert.Equal(midi, p.Midi, "midi for %v", name)
		assert.Equal(name, p.Name)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	assert := assert.New(t)

	for _, bad := range []string{"", "H4", "C", "C#", "4", "Cx4", "b4"} {
		_, err := Parse(bad)
		assert.Error(err, "expected error for %q", bad)
	}
}

func TestSpellUsesSharps(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C4", Spell(60))
	assert.Equal("C#4", Spell(61))
	assert.Equal("A#3", Spell(58))
	assert.Equal("B3", Spell(59))
}

func TestTransposeReturnsNewValue(t *testing.T) {
	assert := assert.New(t)

	p := MustParse("C4")
	up := p.Transpose(7)
	assert.Equal(60, p.Midi)
	assert.Equal(67, up.Midi)
	assert.Equal("G4", up.Name)
}

func TestTransposeInterval(t *testing.T) {
	assert := assert.New(t)

	c4 := MustParse("C4")
	assert.Equal(64, c4.TransposeInterval("M3").Midi)
	assert.Equal(63, c4.TransposeInterval("m3").Midi)
	assert.Equal(67, c4.TransposeInterval("P5").Midi)
	assert.Equal(74, c4.TransposeInterval("M9").Midi)
	assert.Equal(81, c4.TransposeInterval("M13").Midi)
}

func TestParseClass(t *testing.T) {
	assert := assert.New(t)

	for name, want := range map[string]int{"C": 0, "F#": 6, "Bb": 10, "Cb": 11, "B#": 0} {
		got, err := ParseClass(name)
		assert.NoError(err)
		assert.Equal(want, got, "class for %v", name)
	}

	_, err := ParseClass("Hm")
	assert.Error(err)
}
