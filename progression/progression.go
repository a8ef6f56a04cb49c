// Package progression loads chord progressions from YAML documents and
// realizes them into closed voicings.
package progression

import (
	"fmt"
	"os"

	"github.com/jsphweid/voicegen/symbol"
	"github.com/jsphweid/voicegen/voicing"
	"gopkg.in/yaml.v3"
)

// Doc is a progression document. Chords are symbols like "Dm9/D"; a
// slash bass becomes the separately placed bass note of the voicing.
type Doc struct {
	Anchor   string   `yaml:"anchor"`
	MaxNotes int      `yaml:"max_notes"`
	OmitRoot bool     `yaml:"omit_root"`
	Chords   []string `yaml:"chords"`
}

// RootOctave is the octave chord-symbol roots are pinned to before
// voicing. The voicing algorithm re-registers everything around the
// anchor, so only the pitch class of the root really matters.
const RootOctave = 4

// Load reads and parses a progression document from disk.
func Load(path string) (Doc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Doc{}, fmt.Errorf("could not read progression: %w", err)
	}
	var doc Doc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Doc{}, fmt.Errorf("could not parse progression: %w", err)
	}
	if len(doc.Chords) == 0 {
		return Doc{}, fmt.Errorf("progression has no chords")
	}
	return doc, nil
}

// Entry pairs a parsed symbol with its realized voicing.
type Entry struct {
	Symbol symbol.Symbol
	Chord  voicing.Chord
}

// Realize voices every chord in the document, in order.
func (d Doc) Realize() ([]Entry, error) {
	res := make([]Entry, 0, len(d.Chords))
	for _, text := range d.Chords {
		sym, err := symbol.Parse(text)
		if err != nil {
			return nil, err
		}
		req := voicing.Request{
			Root:     fmt.Sprintf("%s%d", sym.Root, RootOctave),
			Anchor:   d.Anchor,
			MaxNotes: d.MaxNotes,
			OmitRoot: d.OmitRoot,
		}
		if sym.Bass != "" {
			req.Bass = fmt.Sprintf("%s%d", sym.Bass, RootOctave)
		}
		chord, err := voicing.Generate(sym.Quality, req)
		if err != nil {
			return nil, fmt.Errorf("could not voice %v: %w", sym, err)
		}
		res = append(res, Entry{Symbol: sym, Chord: chord})
	}
	return res, nil
}
