package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/constants"
	"github.com/jsphweid/chordex/model"
	"github.com/spf13/cobra"
)

var (
	analyzeRoot    string
	analyzeLimit   int
	analyzeLenient bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeRoot, "root", "r", "", "only try this root")
	analyzeCmd.Flags().IntVarP(&analyzeLimit, "limit", "l", constants.DefaultMaxResults, "max candidates, 0 for all")
	analyzeCmd.Flags().BoolVar(&analyzeLenient, "lenient", false, "read unknown note names as C")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:     "analyze NOTES...",
	Short:   "Names the chord formed by a set of notes",
	Example: "  chordex analyze E G C\n  chordex analyze C,Eb,G,Bb --root C",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit := analyzeLimit
		if limit == 0 {
			limit = -1
		}
		res, err := analyze(model.AnalyzeRequestBody{
			Notes:   splitNotes(args),
			Root:    analyzeRoot,
			Limit:   limit,
			Lenient: analyzeLenient,
		})
		if err != nil {
			return err
		}
		return output(cmd, res, func(w io.Writer) {
			printCandidates(w, res.Candidates)
		})
	},
}

// splitNotes accepts "C E G" as well as "C,E,G".
func splitNotes(args []string) []string {
	var res []string
	for _, a := range args {
		for _, n := range strings.FieldsFunc(a, func(r rune) bool { return r == ',' || r == ' ' }) {
			res = append(res, n)
		}
	}
	return res
}

// analyze maps a request onto chord.Analyze. A limit of 0 keeps the default,
// a negative one keeps every candidate.
func analyze(body model.AnalyzeRequestBody) (model.AnalyzeResponse, error) {
	var opts []chord.Option
	if body.Root != "" {
		opts = append(opts, chord.WithRoot(body.Root))
	}
	if body.Limit != 0 {
		opts = append(opts, chord.WithLimit(body.Limit))
	}
	if body.Lenient || constants.GetLenientNotes() {
		opts = append(opts, chord.Lenient())
	}
	candidates, err := chord.Analyze(body.Notes, opts...)
	if err != nil {
		return model.AnalyzeResponse{}, err
	}
	return model.AnalyzeResponse{Notes: body.Notes, Candidates: candidates}, nil
}

func printCandidates(w io.Writer, candidates []model.ChordCandidate) {
	if len(candidates) == 0 {
		fmt.Fprintln(w, "no chord found")
		return
	}
	for _, c := range candidates {
		fmt.Fprintf(w, "%-10s %.2f  %-18s %s\n", c.Symbol, c.Score, c.Template, strings.Join(c.Notes, " "))
	}
}
