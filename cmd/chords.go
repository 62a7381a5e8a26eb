package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/chordex/diatonic"
	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/pitch"
	"github.com/jsphweid/chordex/scale"
	"github.com/spf13/cobra"
)

var (
	chordsType string
	chordsMode string
)

func init() {
	chordsCmd.Flags().StringVarP(&chordsType, "type", "t", "", "scale type (defaults to the key's mode)")
	chordsCmd.Flags().StringVarP(&chordsMode, "mode", "m", diatonic.KindTriads, "triads, sevenths or secondary")
	rootCmd.AddCommand(chordsCmd)
}

var chordsCmd = &cobra.Command{
	Use:     "chords KEY",
	Short:   "Lists the diatonic chords of a key",
	Example: "  chordex chords G\n  chordex chords Am --mode sevenths --type harmonicMinor",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := chordsFor(args[0], chordsType, chordsMode)
		if err != nil {
			return err
		}
		return output(cmd, res, func(w io.Writer) {
			for _, c := range res.Chords {
				fmt.Fprintf(w, "%-8s %-10s %v\n", c.RomanNumeral, c.Symbol, strings.Join(c.Notes, " "))
			}
		})
	},
}

// scaleTypeFor falls back to the natural major or minor scale of key and
// rejects unknown types.
func scaleTypeFor(key, scaleType string) (string, error) {
	k, err := pitch.ParseKey(key)
	if err != nil {
		return "", err
	}
	if scaleType == "" {
		return k.Mode(), nil
	}
	if err := scale.Validate(scaleType); err != nil {
		return "", err
	}
	return scaleType, nil
}

func chordsFor(key, scaleType, mode string) (model.ChordsResponse, error) {
	scaleType, err := scaleTypeFor(key, scaleType)
	if err != nil {
		return model.ChordsResponse{}, err
	}
	if mode == "" {
		mode = diatonic.KindTriads
	}
	chords, err := diatonic.Generate(key, scaleType, mode)
	if err != nil {
		return model.ChordsResponse{}, err
	}
	return model.ChordsResponse{Key: key, Type: scaleType, Mode: mode, Chords: chords}, nil
}
