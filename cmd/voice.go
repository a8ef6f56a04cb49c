package cmd

import (
	"fmt"

	"github.com/jsphweid/voicegen/progression"
	"github.com/jsphweid/voicegen/symbol"
	"github.com/jsphweid/voicegen/voicing"
	"github.com/spf13/cobra"
)

var (
	voiceAnchor   string
	voiceMaxNotes int
	voiceBass     string
	voiceOmitRoot bool
)

func init() {
	voiceCmd.Flags().StringVar(&voiceAnchor, "anchor", "C4", "pitch the voicing is placed near")
	voiceCmd.Flags().IntVar(&voiceMaxNotes, "max-notes", voicing.DefaultMaxNotes, "maximum number of notes")
	voiceCmd.Flags().StringVar(&voiceBass, "bass", "", "bass pitch like D3 (a slash bass in the symbol wins)")
	voiceCmd.Flags().BoolVar(&voiceOmitRoot, "omit-root", false, "leave the root out of the voicing")
	rootCmd.AddCommand(voiceCmd)
}

var voiceCmd = &cobra.Command{
	Use:   "voice <symbol>",
	Short: "Voices a chord symbol",
	Long:  `Voices a chord symbol like Dm9 or G13/G as a closed chord near the anchor.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		voice(args[0])
	},
}

func voiceSymbol(text string) (symbol.Symbol, voicing.Chord, error) {
	sym, err := symbol.Parse(text)
	if err != nil {
		return symbol.Symbol{}, voicing.Chord{}, err
	}
	req := voicing.Request{
		Root:     fmt.Sprintf("%s%d", sym.Root, progression.RootOctave),
		Anchor:   voiceAnchor,
		MaxNotes: voiceMaxNotes,
		OmitRoot: voiceOmitRoot,
	}
	if sym.Bass != "" {
		req.Bass = fmt.Sprintf("%s%d", sym.Bass, progression.RootOctave)
	} else if voiceBass != "" {
		req.Bass = voiceBass
	}
	chord, err := voicing.Generate(sym.Quality, req)
	if err != nil {
		return symbol.Symbol{}, voicing.Chord{}, err
	}
	return sym, chord, nil
}

func voice(text string) {
	sym, chord, err := voiceSymbol(text)
	if err != nil {
		panic(err.Error())
	}
	fmt.Printf("%v: %v %v\n", sym, chord.Names(), chord.Midis())
}
