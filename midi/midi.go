package midi

import (
	"fmt"
	"os"

	"github.com/jsphweid/voicegen/constants"
	"github.com/jsphweid/voicegen/voicing"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Render lays out a sequence of voiced chords as a single-track
// standard MIDI file, one whole-note block chord per entry. Pitches
// must fit the 0-127 key range, extreme anchors can push them out.
func Render(chords []voicing.Chord) (*smf.SMF, error) {
	var res smf.SMF
	res.TimeFormat = smf.MetricTicks(constants.TicksPerQuarter)

	var track smf.Track
	track.Add(0, smf.MetaTempo(120))
	for _, c := range chords {
		for _, p := range c.Pitches {
			if p.Midi < 0 || p.Midi > 127 {
				return nil, fmt.Errorf("pitch %v (%v) is outside the midi key range", p.Name, p.Midi)
			}
		}
		for _, p := range c.Pitches {
			track.Add(0, midi.NoteOn(0, uint8(p.Midi), constants.DefaultVelocity))
		}
		for i, p := range c.Pitches {
			var delta uint32
			if i == 0 {
				delta = constants.WholeNoteTicks
			}
			track.Add(delta, midi.NoteOff(0, uint8(p.Midi)))
		}
	}
	track.Close(0)
	res.Tracks = append(res.Tracks, track)
	return &res, nil
}

// WriteFile renders the chords and writes the MIDI file at path.
func WriteFile(path string, chords []voicing.Chord) error {
	s, err := Render(chords)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create midi file... %s", err.Error())
	}
	defer f.Close()

	if _, err := s.WriteTo(f); err != nil {
		return fmt.Errorf("could not write midi file... %s", err.Error())
	}
	return nil
}
