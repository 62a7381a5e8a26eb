package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/progression"
	"github.com/jsphweid/chordex/scale"
	"github.com/spf13/cobra"
)

var nashvilleType string

func init() {
	nashvilleCmd.Flags().StringVarP(&nashvilleType, "type", "t", "", "scale type (defaults to the key's mode)")
	rootCmd.AddCommand(nashvilleCmd)
}

var nashvilleCmd = &cobra.Command{
	Use:     "nashville KEY [CHORDS...]",
	Short:   "Writes chords as Nashville numbers",
	Example: "  chordex nashville G G C D Em",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		symbols := splitNotes(args[1:])
		res, err := nashvilleFor(args[0], nashvilleType, symbols)
		if err != nil {
			return err
		}
		return output(cmd, res, func(w io.Writer) {
			if len(symbols) == 0 {
				fmt.Fprintln(w, strings.Join(res.Numbers, " "))
				return
			}
			fmt.Fprintln(w, strings.Join(res.Chords, " "))
		})
	},
}

func nashvilleFor(key, scaleType string, symbols []string) (model.NashvilleResponse, error) {
	scaleType, err := scaleTypeFor(key, scaleType)
	if err != nil {
		return model.NashvilleResponse{}, err
	}
	numbers, err := progression.NashvilleNumbers(key, scaleType)
	if err != nil {
		return model.NashvilleResponse{}, err
	}
	res := model.NashvilleResponse{Key: key, Numbers: numbers}
	if len(symbols) == 0 {
		return res, nil
	}

	notes, err := scale.ForKey(key, scaleType)
	if err != nil {
		return model.NashvilleResponse{}, err
	}
	res.Symbols = symbols
	res.Chords = make([]string, len(symbols))
	for i, s := range symbols {
		res.Chords[i] = progression.NashvilleSymbol(notes, s)
	}
	return res, nil
}
