package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/midi"
	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/util"
	"github.com/spf13/cobra"
)

var (
	detectMax int
	detectKey string
)

func init() {
	detectCmd.Flags().IntVarP(&detectMax, "max", "n", 0, "max files to read, 0 for all")
	detectCmd.Flags().StringVarP(&detectKey, "key", "k", "C", "key used to spell note names")
	rootCmd.AddCommand(detectCmd)
}

var detectCmd = &cobra.Command{
	Use:   "detect PATH",
	Short: "Names the chords of a MIDI file or of every MIDI file under a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := util.GatherAllMidiPaths(args[0], detectMax)
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			return fmt.Errorf("no midi files found in %v", args[0])
		}

		var res []model.DetectedChord
		for _, path := range paths {
			found, err := detectChords(path, detectKey)
			if err != nil {
				slog.Warn("skipping file", "path", path, "err", err)
				continue
			}
			res = append(res, found...)
		}
		return output(cmd, res, func(w io.Writer) {
			for _, d := range res {
				symbol := d.Symbol
				if symbol == "" {
					symbol = "?"
				}
				fmt.Fprintf(w, "%v %8vms  %-10s %v\n", d.File, d.Offset, symbol, strings.Join(d.Notes, " "))
			}
		})
	},
}

// detectChords reads path and names every change of sounding keys. Repeats
// of the same key set are reported once.
func detectChords(path, keyContext string) ([]model.DetectedChord, error) {
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		return nil, err
	}
	events, err := chord.GetChords(s)
	if err != nil {
		return nil, err
	}

	var res []model.DetectedChord
	var prev string
	for _, e := range events {
		key := chord.CreateChordKey(e.Notes)
		if key == prev {
			continue
		}
		prev = key

		keys := make([]int, len(e.Notes))
		for i, k := range e.Notes {
			keys[i] = int(k)
		}
		d := model.DetectedChord{
			File:   path,
			Offset: e.Offset,
			Keys:   keys,
			Notes:  chord.NoteNames(e.Notes, keyContext),
		}
		candidates, err := chord.AnalyzeKeys(e.Notes, keyContext, chord.WithLimit(1))
		if err != nil {
			return nil, err
		}
		if len(candidates) > 0 {
			d.Symbol = candidates[0].Symbol
			d.Score = candidates[0].Score
		}
		res = append(res, d)
	}
	return res, nil
}
