package pitch

import (
	"fmt"
	"strconv"
)

// Pitch is an absolute pitch at semitone resolution. Midi follows the
// usual convention where C4 == 60. Values are immutable: every
// transposition returns a new Pitch.
type Pitch struct {
	Midi int
	Name string
}

var sharpNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var letterSteps = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// interval names as used by the quality tables, semitones from the root
var intervals = map[string]int{
	"P1":  0,
	"m2":  1,
	"M2":  2,
	"m3":  3,
	"M3":  4,
	"P4":  5,
	"d5":  6,
	"P5":  7,
	"A5":  8,
	"M6":  9,
	"d7":  9,
	"m7":  10,
	"M7":  11,
	"P8":  12,
	"m9":  13,
	"M9":  14,
	"A9":  15,
	"P11": 17,
	"A11": 18,
	"m13": 20,
	"M13": 21,
}

// New makes a Pitch from a raw MIDI value, spelled with sharps.
func New(midi int) Pitch {
	return Pitch{Midi: midi, Name: Spell(midi)}
}

// Spell renders a MIDI value as a sharp-spelled name like "F#3".
func Spell(midi int) string {
	pc := ((midi % 12) + 12) % 12
	octave := midi/12 - 1
	if midi < 0 && midi%12 != 0 {
		octave -= 1
	}
	return fmt.Sprintf("%s%d", sharpNames[pc], octave)
}

// Parse resolves a spelling like "C4", "Eb3" or "F#-1" into a Pitch.
// Multiple accidentals are allowed ("C##4"). The original spelling is
// kept as the Name.
func Parse(s string) (Pitch, error) {
	if s == "" {
		return Pitch{}, fmt.Errorf("empty pitch name")
	}
	step, ok := letterSteps[s[0]]
	if !ok {
		return Pitch{}, fmt.Errorf("invalid pitch name: %v", s)
	}
	rest := s[1:]
	alter := 0
	for len(rest) > 0 {
		if rest[0] == '#' {
			alter += 1
		} else if rest[0] == 'b' {
			alter -= 1
		} else {
			break
		}
		rest = rest[1:]
	}
	octave, err := strconv.Atoi(rest)
	if err != nil {
		return Pitch{}, fmt.Errorf("invalid pitch name: %v", s)
	}
	midi := (octave+1)*12 + step + alter
	return Pitch{Midi: midi, Name: s}, nil
}

// MustParse is Parse for spellings known good at compile time.
func MustParse(s string) Pitch {
	p, err := Parse(s)
	if err != nil {
		panic(err.Error())
	}
	return p
}

// ParseClass resolves a bare pitch class like "C" or "Bb" (no octave)
// to its semitone offset from C.
func ParseClass(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty pitch class")
	}
	step, ok := letterSteps[s[0]]
	if !ok {
		return 0, fmt.Errorf("invalid pitch class: %v", s)
	}
	for _, c := range s[1:] {
		switch c {
		case '#':
			step += 1
		case 'b':
			step -= 1
		default:
			return 0, fmt.Errorf("invalid pitch class: %v", s)
		}
	}
	return ((step % 12) + 12) % 12, nil
}

// Class returns the pitch class, 0..11 with C == 0.
func (p Pitch) Class() int {
	return ((p.Midi % 12) + 12) % 12
}

// Transpose moves the pitch by a signed number of semitones.
func (p Pitch) Transpose(semitones int) Pitch {
	return New(p.Midi + semitones)
}

// TransposeInterval moves the pitch up by a named interval. The name
// must come from the interval table; anything else is a programming
// error, not a runtime condition.
func (p Pitch) TransposeInterval(name string) Pitch {
	semis, ok := intervals[name]
	if !ok {
		panic("unknown interval: " + name)
	}
	return p.Transpose(semis)
}

// IntervalSemitones resolves a named interval to its semitone count.
func IntervalSemitones(name string) (int, bool) {
	semis, ok := intervals[name]
	return semis, ok
}

func (p Pitch) String() string {
	return p.Name
}

// ClassName returns the sharp-spelled pitch class name without octave,
// e.g. "F#" for any F sharp.
func ClassName(class int) string {
	return sharpNames[((class%12)+12)%12]
}
