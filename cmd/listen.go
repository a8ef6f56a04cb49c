package cmd

import (
	"fmt"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/voicegen/progression"
	"github.com/jsphweid/voicegen/symbol"
	"github.com/jsphweid/voicegen/util"
	"github.com/jsphweid/voicegen/voicing"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

func init() {
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Names chords played live",
	Long:  `Listens on the first MIDI input port, names whatever chord is held and re-voices it as a closed chord.`,
	Run: func(cmd *cobra.Command, args []string) {
		listen()
	},
}

// describeHeld names the held notes and re-voices the detected quality
// as a closed chord near the default anchor. Fewer than two notes is
// not worth reporting.
func describeHeld(midis []int) (string, bool) {
	if len(midis) < 2 {
		return "", false
	}
	sym, ok := symbol.Detect(midis)
	if !ok {
		return fmt.Sprintf("? %v", midis), true
	}
	chord, err := voicing.Generate(sym.Quality, voicing.Request{
		Root: fmt.Sprintf("%s%d", sym.Root, progression.RootOctave),
	})
	if err != nil {
		return fmt.Sprintf("%v %v", sym, midis), true
	}
	return fmt.Sprintf("%v %v -> %v", sym, midis, chord.Names()), true
}

func reportHeld(onNotes map[uint8]bool) {
	keys := util.GetKeysSorted(onNotes)
	midis := make([]int, len(keys))
	for i, k := range keys {
		midis[i] = int(k)
	}
	if line, ok := describeHeld(midis); ok {
		fmt.Println(line)
	}
}

func listen() {
	defer gomidi.CloseDriver()
	in, err := gomidi.InPort(0)
	if err != nil {
		fmt.Println("can't find a midi input port")
		return
	}

	onNotes := make(map[uint8]bool)

	// wait for the chord to settle before naming it
	settled := debounce.New(75 * time.Millisecond)

	stop, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			onNotes[key] = true
			settled(func() { reportHeld(onNotes) })
		case msg.GetNoteEnd(&ch, &key):
			delete(onNotes, key)
			settled(func() { reportHeld(onNotes) })
		default:
			// ignore
		}
	})

	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	time.Sleep(time.Second * 5000) // lol
	stop()
}
