// Package quality models abstract chord qualities: the third, fifth and
// upper (sixth/seventh) tone qualities plus any harmonic extensions.
// A ChordType is an immutable description of a chord's color that is
// independent of any root; combinators return new values and never
// mutate the receiver.
package quality

// Third is the quality of the chord's third slot.
type Third int

const (
	ThirdMajor Third = iota
	ThirdMinor
	ThirdSus4
	ThirdSus2
)

var thirdIntervals = map[Third]string{
	ThirdMajor: "M3",
	ThirdMinor: "m3",
	ThirdSus4:  "P4",
	ThirdSus2:  "M2",
}

// Interval returns the named interval of the third above the root.
func (t Third) Interval() string {
	return thirdIntervals[t]
}

// Fifth is the quality of the chord's fifth.
type Fifth int

const (
	FifthPerfect Fifth = iota
	FifthDiminished
	FifthAugmented
)

var fifthIntervals = map[Fifth]string{
	FifthPerfect:    "P5",
	FifthDiminished: "d5",
	FifthAugmented:  "A5",
}

func (f Fifth) Interval() string {
	return fifthIntervals[f]
}

// Upper is the quality of the sixth or seventh tone, if any.
//
// A dominant seventh and a minor seventh are the same tone a minor
// seventh above the root; the data model cannot tell them apart, so
// UpperMinorSeventh is an alias for UpperDominantSeventh rather than a
// separate variant.
type Upper int

const (
	UpperNone Upper = iota
	UpperSixth
	UpperDominantSeventh
	UpperMajorSeventh
	UpperDiminishedSeventh

	UpperMinorSeventh = UpperDominantSeventh
)

var upperIntervals = map[Upper]string{
	UpperSixth:             "M6",
	UpperDominantSeventh:   "m7",
	UpperMajorSeventh:      "M7",
	UpperDiminishedSeventh: "d7",
}

func (u Upper) Interval() string {
	return upperIntervals[u]
}

// Harmony is a harmonic extension in the 9th/11th/13th family.
type Harmony int

const (
	MinorNinth Harmony = iota
	MajorNinth
	SharpNinth
	Eleventh
	SharpEleventh
	MinorThirteenth
	MajorThirteenth

	numHarmonies
)

var harmonyIntervals = map[Harmony]string{
	MinorNinth:      "m9",
	MajorNinth:      "M9",
	SharpNinth:      "A9",
	Eleventh:        "P11",
	SharpEleventh:   "A11",
	MinorThirteenth: "m13",
	MajorThirteenth: "M13",
}

func (h Harmony) Interval() string {
	return harmonyIntervals[h]
}

// ChordType describes a chord quality. The zero value is a plain major
// triad. No validation is done on combinations: asking for both a 9th
// and a b9th is the caller's business.
type ChordType struct {
	third     Third
	fifth     Fifth
	upper     Upper
	harmonies uint // bitset over Harmony
}

// New makes a triad descriptor from third and fifth qualities.
func New(third Third, fifth Fifth) ChordType {
	return ChordType{third: third, fifth: fifth}
}

func (c ChordType) ThirdQuality() Third {
	return c.third
}

func (c ChordType) FifthQuality() Fifth {
	return c.fifth
}

// UpperQuality returns the sixth/seventh quality and whether one is set.
func (c ChordType) UpperQuality() (Upper, bool) {
	return c.upper, c.upper != UpperNone
}

// Harmonies lists the harmonic extensions in a fixed enum order, so
// downstream candidate ordering is stable.
func (c ChordType) Harmonies() []Harmony {
	var res []Harmony
	for h := Harmony(0); h < numHarmonies; h++ {
		if c.harmonies&(1<<uint(h)) != 0 {
			res = append(res, h)
		}
	}
	return res
}

// HasHarmony reports membership in the extension set.
func (c ChordType) HasHarmony(h Harmony) bool {
	return c.harmonies&(1<<uint(h)) != 0
}

// WithHarmonies returns a copy with the given extensions added to the
// set. Duplicates are absorbed.
func (c ChordType) WithHarmonies(harmonies ...Harmony) ChordType {
	res := c
	for _, h := range harmonies {
		res.harmonies |= 1 << uint(h)
	}
	return res
}

// WithUpperQuality returns a copy with the sixth/seventh quality
// replaced.
func (c ChordType) WithUpperQuality(u Upper) ChordType {
	res := c
	res.upper = u
	return res
}

func (c ChordType) AddDom7() ChordType {
	return c.WithUpperQuality(UpperDominantSeventh)
}

func (c ChordType) AddMaj7() ChordType {
	return c.WithUpperQuality(UpperMajorSeventh)
}

func (c ChordType) AddMin7() ChordType {
	return c.AddDom7()
}

func (c ChordType) AddDim7() ChordType {
	return c.WithUpperQuality(UpperDiminishedSeventh)
}

func (c ChordType) AddSixth() ChordType {
	return c.WithUpperQuality(UpperSixth)
}

func (c ChordType) AddMin9() ChordType {
	return c.WithHarmonies(MinorNinth)
}

func (c ChordType) AddMaj9() ChordType {
	return c.WithHarmonies(MajorNinth)
}

func (c ChordType) AddS9() ChordType {
	return c.WithHarmonies(SharpNinth)
}

func (c ChordType) Add11() ChordType {
	return c.WithHarmonies(Eleventh)
}

func (c ChordType) AddS11() ChordType {
	return c.WithHarmonies(SharpEleventh)
}

func (c ChordType) AddMin13() ChordType {
	return c.WithHarmonies(MinorThirteenth)
}

func (c ChordType) AddMaj13() ChordType {
	return c.WithHarmonies(MajorThirteenth)
}

// Named qualities for the common chords.
var (
	Major      = New(ThirdMajor, FifthPerfect)
	Minor      = New(ThirdMinor, FifthPerfect)
	Diminished = New(ThirdMinor, FifthDiminished)
	Augmented  = New(ThirdMajor, FifthAugmented)
	Sus2       = New(ThirdSus2, FifthPerfect)
	Sus4       = New(ThirdSus4, FifthPerfect)

	MajorSeventh      = Major.AddMaj7()
	MinorSeventh      = Minor.AddMin7()
	DiminishedSeventh = Diminished.AddDim7()
	DominantSeventh   = Major.AddDom7()
	Sus4Seventh       = Sus4.AddDom7()
)
