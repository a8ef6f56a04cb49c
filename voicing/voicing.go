// Package voicing turns an abstract chord quality into concrete pitches
// placed near an anchor: candidate selection by importance, octave
// normalization, closed position, and best-inversion search by mean
// absolute deviation.
package voicing

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jsphweid/voicegen/pitch"
	"github.com/jsphweid/voicegen/quality"
	"github.com/jsphweid/voicegen/util"
	"gonum.org/v1/gonum/stat"
)

// ErrTooFewNotes rejects voicing requests for fewer than two notes.
var ErrTooFewNotes = errors.New("not really a chord with only one or no notes")

// Chord is an ordered collection of pitches. Duplicate pitch values are
// allowed and never deduplicated. A Chord is built fresh per call and
// shares no state.
type Chord struct {
	Pitches []pitch.Pitch
}

// NewChord makes a chord from pitches as given, without sorting.
func NewChord(pitches ...pitch.Pitch) Chord {
	return Chord{Pitches: pitches}
}

// Len returns the number of pitches.
func (c Chord) Len() int {
	return len(c.Pitches)
}

// Sort reorders the pitches ascending by value.
func (c *Chord) Sort() {
	sort.SliceStable(c.Pitches, func(i, j int) bool {
		return c.Pitches[i].Midi < c.Pitches[j].Midi
	})
}

// Transpose returns a new chord with every pitch moved by the signed
// semitone count.
func (c Chord) Transpose(semitones int) Chord {
	res := make([]pitch.Pitch, len(c.Pitches))
	for i, p := range c.Pitches {
		res[i] = p.Transpose(semitones)
	}
	return Chord{Pitches: res}
}

// Add inserts a pitch and re-sorts ascending.
func (c *Chord) Add(p pitch.Pitch) {
	c.Pitches = append(c.Pitches, p)
	c.Sort()
}

// Names returns the spellings of the pitches in order.
func (c Chord) Names() []string {
	res := make([]string, len(c.Pitches))
	for i, p := range c.Pitches {
		res[i] = p.Name
	}
	return res
}

// Midis returns the raw pitch values in order.
func (c Chord) Midis() []int {
	res := make([]int, len(c.Pitches))
	for i, p := range c.Pitches {
		res[i] = p.Midi
	}
	return res
}

func (c Chord) String() string {
	return fmt.Sprintf("%v", c.Names())
}

// MeanDistance is the signed mean of pitch distances from ref.
func MeanDistance(c Chord, ref pitch.Pitch) float64 {
	dists := make([]float64, len(c.Pitches))
	for i, p := range c.Pitches {
		dists[i] = float64(p.Midi - ref.Midi)
	}
	return stat.Mean(dists, nil)
}

// MeanAbsDeviation is the mean of absolute pitch distances from ref,
// summed in pitch order so the result is reproducible.
func MeanAbsDeviation(c Chord, ref pitch.Pitch) float64 {
	devs := make([]float64, len(c.Pitches))
	for i, p := range c.Pitches {
		d := float64(p.Midi - ref.Midi)
		if d < 0 {
			d = -d
		}
		devs[i] = d
	}
	return stat.Mean(devs, nil)
}

// MoveChordNear shifts the whole chord by octaves until the signed mean
// distance to ref is within 12 semitones. Idempotent once in the band.
func MoveChordNear(c Chord, ref pitch.Pitch) Chord {
	if len(c.Pitches) == 0 {
		return c
	}
	for {
		dist := MeanDistance(c, ref)
		if dist >= -12 && dist <= 12 {
			return c
		}
		if dist < 0 {
			c = c.Transpose(12)
		} else {
			c = c.Transpose(-12)
		}
	}
}

// MovePitchNear shifts a single pitch by octaves until it lies within 6
// semitones of ref. Idempotent once in the band.
func MovePitchNear(p pitch.Pitch, ref pitch.Pitch) pitch.Pitch {
	for {
		dist := p.Midi - ref.Midi
		if util.Abs(dist) <= 6 {
			return p
		}
		if dist < 0 {
			p = p.Transpose(12)
		} else {
			p = p.Transpose(-12)
		}
	}
}

// ClosedPosition compacts the chord: the lowest pitch stays put and
// every other pitch is folded down by octaves into the octave above it,
// then the result is sorted ascending. Pitch classes are preserved.
// When several foldings tie for span this rule is the one requiring no
// shift of the lowest pitch, which keeps the result deterministic.
func ClosedPosition(c Chord) Chord {
	if len(c.Pitches) == 0 {
		return c
	}
	low := c.Pitches[0].Midi
	for _, p := range c.Pitches {
		if p.Midi < low {
			low = p.Midi
		}
	}
	res := make([]pitch.Pitch, len(c.Pitches))
	for i, p := range c.Pitches {
		for p.Midi-low >= 12 {
			p = p.Transpose(-12)
		}
		res[i] = p
	}
	out := Chord{Pitches: res}
	out.Sort()
	return out
}

// AllInversions returns every rotation of the chord, N chords for N
// pitches, starting with the chord itself. Each step drops the current
// highest pitch an octave so it becomes the new lowest.
func AllInversions(c Chord) []Chord {
	n := len(c.Pitches)
	out := make([]Chord, 0, n)
	cur := c
	for i := 0; i < n; i++ {
		out = append(out, cur)
		sorted := append([]pitch.Pitch(nil), cur.Pitches...)
		next := Chord{Pitches: sorted}
		next.Sort()
		top := next.Pitches[len(next.Pitches)-1].Transpose(-12)
		rest := next.Pitches[:len(next.Pitches)-1]
		next = Chord{Pitches: append([]pitch.Pitch{top}, rest...)}
		next.Sort()
		cur = next
	}
	return out
}

// candidate couples a chord tone with its importance weight. Insertion
// order is the tie-break among equal weights, so trimming is stable.
type candidate struct {
	weight int
	p      pitch.Pitch
}

const (
	weightFifth   = 1
	weightRoot    = 3
	weightHarmony = 7
	weightThird   = 9
	weightUpper   = 9
)

// Options tune GenerateClosedChord. MaxNotes is required and must be at
// least 2; the textual Request layer supplies the usual default of 5
// when a caller leaves it out.
type Options struct {
	Anchor   *pitch.Pitch // nil means the default anchor, C4
	MaxNotes int
	Bass     *pitch.Pitch // nil means no separate bass note
	OmitRoot bool
}

// DefaultAnchor is where voicings land when no anchor is given.
var DefaultAnchor = pitch.MustParse("C4")

// DefaultMaxNotes bounds the voicing size when none is given.
const DefaultMaxNotes = 5

// GenerateClosedChord realizes the chord quality as a closed voicing
// near the anchor. Candidate tones are trimmed least-essential-first
// (fifth, then root, then extensions, then third/seventh) down to
// MaxNotes, the survivors are packed into closed position, and the
// rotation with the smallest mean absolute deviation from the anchor
// wins. A bass note, if given, is normalized an octave below the anchor
// and inserted last.
func GenerateClosedChord(ct quality.ChordType, root pitch.Pitch, opts Options) (Chord, error) {
	anchor := DefaultAnchor
	if opts.Anchor != nil {
		anchor = *opts.Anchor
	}
	maxNotes := opts.MaxNotes
	if maxNotes < 2 {
		return Chord{}, fmt.Errorf("%w: max notes %d", ErrTooFewNotes, maxNotes)
	}

	var cands []candidate
	cands = append(cands, candidate{weightThird, root.TransposeInterval(ct.ThirdQuality().Interval())})
	for _, h := range ct.Harmonies() {
		cands = append(cands, candidate{weightHarmony, root.TransposeInterval(h.Interval())})
	}
	cands = append(cands, candidate{weightFifth, root.TransposeInterval(ct.FifthQuality().Interval())})
	if !opts.OmitRoot {
		cands = append(cands, candidate{weightRoot, root})
	}
	if upper, ok := ct.UpperQuality(); ok {
		cands = append(cands, candidate{weightUpper, root.TransposeInterval(upper.Interval())})
	}

	// stable sort keeps insertion order within a weight, then the
	// least essential candidates fall off the front
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].weight < cands[j].weight
	})
	if len(cands) > maxNotes {
		cands = cands[len(cands)-maxNotes:]
	}

	base := Chord{}
	for _, cand := range cands {
		base.Pitches = append(base.Pitches, cand.p)
	}
	base.Sort()

	base = MoveChordNear(base, anchor)
	base = ClosedPosition(base)

	best := Chord{}
	bestScore := 0.0
	for i, inv := range AllInversions(base) {
		inv = MoveChordNear(inv, anchor)
		score := MeanAbsDeviation(inv, anchor)
		if i == 0 || score < bestScore {
			best = inv
			bestScore = score
		}
	}

	if opts.Bass != nil {
		bass := MovePitchNear(*opts.Bass, anchor.Transpose(-12))
		best.Add(bass)
	}

	return best, nil
}

// Request is the textual form of a voicing call, as it arrives from the
// CLI, YAML documents and the HTTP API. Empty strings take defaults.
type Request struct {
	Root     string
	Anchor   string
	MaxNotes int
	Bass     string
	OmitRoot bool
}

// Generate resolves the textual pitches in req and calls
// GenerateClosedChord. Malformed spellings surface as parse errors.
func Generate(ct quality.ChordType, req Request) (Chord, error) {
	root, err := pitch.Parse(req.Root)
	if err != nil {
		return Chord{}, err
	}
	if req.MaxNotes == 0 {
		req.MaxNotes = DefaultMaxNotes
	}
	opts := Options{MaxNotes: req.MaxNotes, OmitRoot: req.OmitRoot}
	if req.Anchor != "" {
		anchor, err := pitch.Parse(req.Anchor)
		if err != nil {
			return Chord{}, err
		}
		opts.Anchor = &anchor
	}
	if req.Bass != "" {
		bass, err := pitch.Parse(req.Bass)
		if err != nil {
			return Chord{}, err
		}
		opts.Bass = &bass
	}
	return GenerateClosedChord(ct, root, opts)
}
