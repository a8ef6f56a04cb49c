package cmd

import (
	"fmt"

	"github.com/jsphweid/voicegen/midi"
	"github.com/jsphweid/voicegen/pitch"
	"github.com/jsphweid/voicegen/quality"
	"github.com/jsphweid/voicegen/voicing"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(demoCmd)
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Writes a ii-V-I demo",
	Long:  `Voices a ii-V-I progression in C and writes it to iiVI.mid.`,
	Run: func(cmd *cobra.Command, args []string) {
		demo()
	},
}

func demoChord(ct quality.ChordType, root string) voicing.Chord {
	rootPitch := pitch.MustParse(root)
	bass := rootPitch
	chord, err := voicing.GenerateClosedChord(ct, rootPitch, voicing.Options{
		MaxNotes: voicing.DefaultMaxNotes,
		OmitRoot: true,
		Bass:     &bass,
	})
	if err != nil {
		panic(err.Error())
	}
	return chord
}

func demo() {
	ii := demoChord(quality.MinorSeventh.AddMaj9(), "D4")
	V := demoChord(quality.DominantSeventh.AddMaj13(), "G4")
	tonic := demoChord(quality.MajorSeventh.AddMaj9(), "C4")

	fmt.Printf("ii: %v\n", ii.Names())
	fmt.Printf("V: %v\n", V.Names())
	fmt.Printf("I: %v\n", tonic.Names())

	if err := midi.WriteFile("iiVI.mid", []voicing.Chord{ii, V, tonic}); err != nil {
		panic(err.Error())
	}
	fmt.Println("wrote iiVI.mid")
}
