package cmd

import (
	"fmt"

	"github.com/jsphweid/voicegen/midi"
	"github.com/jsphweid/voicegen/progression"
	"github.com/jsphweid/voicegen/voicing"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render <progression.yaml> <out.mid>",
	Short: "Renders a progression to MIDI",
	Long:  `Voices every chord in a YAML progression document and writes a MIDI file.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		render(args[0], args[1])
	},
}

func render(inPath string, outPath string) {
	doc, err := progression.Load(inPath)
	if err != nil {
		panic(err.Error())
	}
	entries, err := doc.Realize()
	if err != nil {
		panic(err.Error())
	}

	var chords []voicing.Chord
	for _, e := range entries {
		fmt.Printf("%v: %v\n", e.Symbol, e.Chord.Names())
		chords = append(chords, e.Chord)
	}
	if err := midi.WriteFile(outPath, chords); err != nil {
		panic(err.Error())
	}
	fmt.Printf("wrote %v\n", outPath)
}
