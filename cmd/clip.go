package cmd

import (
	"fmt"

	"github.com/jsphweid/chordex/midi"
	"github.com/spf13/cobra"
)

var (
	clipAt    uint32
	clipNotes int
)

func init() {
	clipCmd.Flags().Uint32Var(&clipAt, "at", 0, "start of the excerpt in ms, as printed by detect")
	clipCmd.Flags().IntVarP(&clipNotes, "notes", "n", 10, "note on/off events to keep per track, 0 for all")
	rootCmd.AddCommand(clipCmd)
}

var clipCmd = &cobra.Command{
	Use:   "clip IN.mid OUT.mid",
	Short: "Cuts a short excerpt out of a MIDI file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := midi.ReadMidiFile(args[0])
		if err != nil {
			return err
		}
		excerpt := midi.Excerpt(s, int64(clipAt)*1000, clipNotes)
		if err := excerpt.WriteFile(args[1]); err != nil {
			return fmt.Errorf("could not write %v: %w", args[1], err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%vms of %v -> %v\n", clipAt, args[0], args[1])
		return nil
	},
}
