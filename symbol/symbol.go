// Package symbol reads and writes chord-symbol text like "Dm9" or
// "G13/G": a root pitch class, a quality suffix, and an optional slash
// bass.
package symbol

import (
	"fmt"
	"strings"

	"github.com/jsphweid/voicegen/pitch"
	"github.com/jsphweid/voicegen/quality"
	"github.com/jsphweid/voicegen/util"
)

// Symbol is a parsed chord symbol. Root and Bass are pitch-class names
// without octaves; Bass is empty when no slash bass was written.
type Symbol struct {
	Root    string
	Suffix  string
	Quality quality.ChordType
	Bass    string
}

// suffixes in detection order: richer qualities are tried before the
// plain ones so a seventh chord is never reported as its bare triad
var suffixOrder = []string{
	"maj13", "maj9", "maj7",
	"m13", "m11", "m9", "m7b5", "m7", "m6", "m",
	"dim7", "dim", "aug",
	"7sus4", "sus2", "sus4",
	"7b9", "7#9", "13", "11", "9", "7", "6",
	"",
}

var suffixQualities = map[string]quality.ChordType{
	"":      quality.Major,
	"m":     quality.Minor,
	"dim":   quality.Diminished,
	"aug":   quality.Augmented,
	"sus2":  quality.Sus2,
	"sus4":  quality.Sus4,
	"6":     quality.Major.AddSixth(),
	"m6":    quality.Minor.AddSixth(),
	"7":     quality.DominantSeventh,
	"maj7":  quality.MajorSeventh,
	"m7":    quality.MinorSeventh,
	"m7b5":  quality.Diminished.AddMin7(),
	"dim7":  quality.DiminishedSeventh,
	"7sus4": quality.Sus4Seventh,
	"9":     quality.DominantSeventh.AddMaj9(),
	"maj9":  quality.MajorSeventh.AddMaj9(),
	"m9":    quality.MinorSeventh.AddMaj9(),
	"7b9":   quality.DominantSeventh.AddMin9(),
	"7#9":   quality.DominantSeventh.AddS9(),
	"11":    quality.DominantSeventh.AddMaj9().Add11(),
	"m11":   quality.MinorSeventh.AddMaj9().Add11(),
	"13":    quality.DominantSeventh.AddMaj13(),
	"maj13": quality.MajorSeventh.AddMaj9().AddMaj13(),
	"m13":   quality.MinorSeventh.AddMaj9().AddMin13(),
}

// Suffixes lists every known quality suffix, sorted.
func Suffixes() []string {
	return util.GetKeysSorted(suffixQualities)
}

// Parse reads a chord symbol. The root is a letter A..G with optional
// accidentals, the suffix one of the known qualities, and an optional
// "/X" names a separate bass pitch class.
func Parse(s string) (Symbol, error) {
	body := s
	bass := ""
	if i := strings.IndexByte(s, '/'); i >= 0 {
		body = s[:i]
		bass = s[i+1:]
		if _, err := pitch.ParseClass(bass); err != nil {
			return Symbol{}, fmt.Errorf("bad chord symbol %q: %v", s, err)
		}
	}
	if body == "" {
		return Symbol{}, fmt.Errorf("bad chord symbol %q: empty", s)
	}

	rootLen := 1
	for rootLen < len(body) && (body[rootLen] == '#' || body[rootLen] == 'b') {
		// "b" could start a "b5"-style suffix but none of the known
		// suffixes begin with it, so greedy accidentals are safe
		rootLen++
	}
	root := body[:rootLen]
	if _, err := pitch.ParseClass(root); err != nil {
		return Symbol{}, fmt.Errorf("bad chord symbol %q: %v", s, err)
	}
	suffix := body[rootLen:]
	ct, ok := suffixQualities[suffix]
	if !ok {
		return Symbol{}, fmt.Errorf("bad chord symbol %q: unknown quality %q", s, suffix)
	}
	return Symbol{Root: root, Suffix: suffix, Quality: ct, Bass: bass}, nil
}

// String renders the symbol back to text.
func (s Symbol) String() string {
	out := s.Root + s.Suffix
	if s.Bass != "" {
		out += "/" + s.Bass
	}
	return out
}

// classSet builds the pitch-class set a quality spells above a root
// class.
func classSet(root int, ct quality.ChordType) map[int]bool {
	set := map[int]bool{root: true}
	add := func(name string) {
		semis, ok := pitch.IntervalSemitones(name)
		if ok {
			set[(root+semis)%12] = true
		}
	}
	add(ct.ThirdQuality().Interval())
	add(ct.FifthQuality().Interval())
	if upper, ok := ct.UpperQuality(); ok {
		add(upper.Interval())
	}
	for _, h := range ct.Harmonies() {
		add(h.Interval())
	}
	return set
}

func sameSet(a, b map[int]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}

// Detect names the chord formed by the given pitches, trying the lowest
// sounding note as the root first and then the remaining pitch classes
// upward. Returns false when no known quality matches exactly.
func Detect(midis []int) (Symbol, bool) {
	if len(midis) == 0 {
		return Symbol{}, false
	}
	lowest := midis[0]
	held := make(map[int]bool)
	for _, m := range midis {
		if m < lowest {
			lowest = m
		}
		held[((m%12)+12)%12] = true
	}

	var roots []int
	seen := map[int]bool{}
	for off := 0; off < 12; off++ {
		pc := (((lowest + off) % 12) + 12) % 12
		if held[pc] && !seen[pc] {
			roots = append(roots, pc)
			seen[pc] = true
		}
	}

	for _, root := range roots {
		for _, suffix := range suffixOrder {
			ct := suffixQualities[suffix]
			if sameSet(classSet(root, ct), held) {
				return Symbol{
					Root:    pitch.ClassName(root),
					Suffix:  suffix,
					Quality: ct,
				}, true
			}
		}
	}
	return Symbol{}, false
}
