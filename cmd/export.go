package cmd

import (
	"fmt"
	"strconv"

	"github.com/jsphweid/chordex/midi"
	"github.com/jsphweid/chordex/progression"
	"github.com/spf13/cobra"
)

var (
	exportType     string
	exportSevenths bool
	exportTempo    int
	exportBeats    int
	exportOctave   int
)

func init() {
	exportCmd.Flags().StringVarP(&exportType, "type", "t", "", "scale type (defaults to the key's mode)")
	exportCmd.Flags().BoolVarP(&exportSevenths, "sevenths", "s", false, "use seventh chords")
	exportCmd.Flags().IntVar(&exportTempo, "tempo", 0, "beats per minute")
	exportCmd.Flags().IntVar(&exportBeats, "beats", 0, "beats per measure")
	exportCmd.Flags().IntVar(&exportOctave, "octave", 3, "octave of the lowest note")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:     "export OUT.mid KEY DEGREES...",
	Short:   "Writes a diatonic progression to a MIDI file",
	Example: "  chordex export pop.mid C 1 5 6 4\n  chordex export jazz.mid Bb 2 5 1 --sevenths",
	Args:    cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, key := args[0], args[1]
		var degrees []int
		for _, a := range args[2:] {
			d, err := strconv.Atoi(a)
			if err != nil {
				return fmt.Errorf("degree %q is not a number", a)
			}
			degrees = append(degrees, d)
		}

		scaleType, err := scaleTypeFor(key, exportType)
		if err != nil {
			return err
		}
		p, err := progression.FromDegrees(key, scaleType, degrees, exportSevenths)
		if err != nil {
			return err
		}
		if exportTempo > 0 {
			p.Tempo = exportTempo
		}
		if exportBeats > 0 {
			p.BeatsPerMeasure = exportBeats
		}

		opts := midi.DefaultExportOptions()
		opts.Octave = exportOctave
		if err := midi.WriteProgressionFile(out, p, opts); err != nil {
			return err
		}
		for _, c := range p.Chords {
			fmt.Fprintf(cmd.OutOrStdout(), "%v ", c.Symbol)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "-> %v\n", out)
		return nil
	},
}
