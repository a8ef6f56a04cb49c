package cmd

import (
	"fmt"

	"github.com/jsphweid/voicegen/voicing"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(invertCmd)
}

var invertCmd = &cobra.Command{
	Use:   "invert <symbol>",
	Short: "Prints all inversions",
	Long:  `Prints every rotation of a chord symbol's closed voicing.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		invert(args[0])
	},
}

func invert(text string) {
	_, chord, err := voiceSymbol(text)
	if err != nil {
		panic(err.Error())
	}
	for i, inv := range voicing.AllInversions(chord) {
		fmt.Printf("inversion %v: %v\n", i, inv.Names())
	}
}
