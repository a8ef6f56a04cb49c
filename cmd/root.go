package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "voicegen",
	Short: "Closed chord voicing generator",
	Long:  `Generates closed-position voicings for chord symbols and renders them to MIDI.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
