package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntervalTables(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("M3", ThirdMajor.Interval())
	assert.Equal("m3", ThirdMinor.Interval())
	assert.Equal("P4", ThirdSus4.Interval())
	assert.Equal("M2", ThirdSus2.Interval())

	assert.Equal("P5", FifthPerfect.Interval())
	assert.Equal("d5", FifthDiminished.Interval())
	assert.Equal("A5", FifthAugmented.Interval())

	assert.Equal("M6", UpperSixth.Interval())
	assert.Equal("m7", UpperDominantSeventh.Interval())
	assert.Equal("M7", UpperMajorSeventh.Interval())
	assert.Equal("d7", UpperDiminishedSeventh.Interval())

	assert.Equal("M9", MajorNinth.Interval())
	assert.Equal("m9", MinorNinth.Interval())
	assert.Equal("A9", SharpNinth.Interval())
	assert.Equal("P11", Eleventh.Interval())
	assert.Equal("A11", SharpEleventh.Interval())
	assert.Equal("m13", MinorThirteenth.Interval())
	assert.Equal("M13", MajorThirteenth.Interval())
}

func TestDominantAndMinorSeventhAreTheSameTone(t *testing.T) {
	assert.Equal(t, UpperDominantSeventh, UpperMinorSeventh)
}

func TestCombinatorsDoNotMutate(t *testing.T) {
	assert := assert.New(t)

	base := Minor
	withSeventh := base.AddMin7()
	withNinth := withSeventh.AddMaj9()

	_, hasUpper := base.UpperQuality()
	assert.False(hasUpper)
	assert.Empty(base.Harmonies())

	upper, ok := withSeventh.UpperQuality()
	assert.True(ok)
	assert.Equal(UpperDominantSeventh, upper)
	assert.Empty(withSeventh.Harmonies())

	assert.Equal([]Harmony{MajorNinth}, withNinth.Harmonies())
}

func TestHarmoniesAreASet(t *testing.T) {
	assert := assert.New(t)

	ct := Major.AddMaj9().AddMaj9().WithHarmonies(MajorNinth, Eleventh)
	assert.Equal([]Harmony{MajorNinth, Eleventh}, ct.Harmonies())
	assert.True(ct.HasHarmony(MajorNinth))
	assert.False(ct.HasHarmony(MinorNinth))
}

func TestHarmoniesOrderIsStable(t *testing.T) {
	assert := assert.New(t)

	a := Major.WithHarmonies(MajorThirteenth, MinorNinth, Eleventh)
	b := Major.WithHarmonies(Eleventh, MajorThirteenth, MinorNinth)
	assert.Equal(a.Harmonies(), b.Harmonies())
	assert.Equal([]Harmony{MinorNinth, Eleventh, MajorThirteenth}, a.Harmonies())
}

func TestNamedQualities(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(ThirdMinor, Diminished.ThirdQuality())
	assert.Equal(FifthDiminished, Diminished.FifthQuality())
	assert.Equal(ThirdSus4, Sus4Seventh.ThirdQuality())

	upper, ok := MinorSeventh.UpperQuality()
	assert.True(ok)
	assert.Equal(UpperDominantSeventh, upper)

	upper, ok = DiminishedSeventh.UpperQuality()
	assert.True(ok)
	assert.Equal(UpperDiminishedSeventh, upper)
}
