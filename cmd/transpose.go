package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/progression"
	"github.com/spf13/cobra"
)

var transposeKey string

func init() {
	transposeCmd.Flags().StringVarP(&transposeKey, "key", "k", "", "key of the progression, transposed along")
	rootCmd.AddCommand(transposeCmd)
}

var transposeCmd = &cobra.Command{
	Use:   "transpose SEMITONES SYMBOLS...",
	Short: "Transposes chord symbols",
	Long: `Transposes chord symbols by SEMITONES. Separate negative amounts from
the flags with --, e.g. chordex transpose -- -2 C Am F G`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		semitones, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("semitones must be a number: %w", err)
		}
		p := model.Progression{Key: transposeKey}
		for _, s := range splitNotes(args[1:]) {
			p.Chords = append(p.Chords, model.ProgressionChord{Symbol: s})
		}

		res := progression.Transpose(p, semitones)
		return output(cmd, res, func(w io.Writer) {
			symbols := make([]string, len(res.Chords))
			for i, c := range res.Chords {
				symbols[i] = c.Symbol
			}
			if res.Key != "" {
				fmt.Fprintf(w, "key %v: ", res.Key)
			}
			fmt.Fprintln(w, strings.Join(symbols, " "))
		})
	},
}
