package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/chordex/scale"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(circleCmd)
}

var circleCmd = &cobra.Command{
	Use:   "circle",
	Short: "Prints the circle of fifths",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		keys := scale.CircleOfFifths()
		return output(cmd, keys, func(w io.Writer) {
			for _, k := range keys {
				acc := "-"
				switch {
				case k.Accidentals > 0:
					acc = fmt.Sprintf("%v♯", k.Accidentals)
				case k.Accidentals < 0:
					acc = fmt.Sprintf("%v♭", -k.Accidentals)
				}
				fmt.Fprintf(w, "%-8s %-10s %v\n", k.Major, k.Minor, acc)
			}
		})
	},
}
