package cmd

import (
	"fmt"
	"strconv"

	"github.com/jsphweid/chordex/diatonic"
	"github.com/jsphweid/chordex/pitch"
	"github.com/spf13/cobra"
)

var (
	romanMode string
	romanKey  string
)

func init() {
	romanCmd.Flags().StringVarP(&romanMode, "mode", "m", pitch.Major, "major or minor")
	romanCmd.Flags().StringVarP(&romanKey, "key", "k", "C", "key root, a minor key forces minor numerals")
	rootCmd.AddCommand(romanCmd)
}

var romanCmd = &cobra.Command{
	Use:   "roman DEGREE",
	Short: "Prints the Roman numeral of a scale degree (1-7)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		degree, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("degree must be a number: %w", err)
		}
		numeral := diatonic.RomanNumeral(degree-1, romanMode, romanKey)
		fmt.Fprintln(cmd.OutOrStdout(), numeral)
		return nil
	},
}
