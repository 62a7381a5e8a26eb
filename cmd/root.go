package cmd

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"github.com/jsphweid/chordex/constants"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "chordex",
	Short: "Chord recognition and music theory toolkit",
	Long: `chordex names chords from notes, builds scales and diatonic chords,
transposes progressions and reads or writes MIDI.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogger()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print results as JSON")
}

func initLogger() {
	level := constants.GetLogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// output prints v as JSON when --json is set, otherwise calls text.
func output(cmd *cobra.Command, v any, text func(w io.Writer)) error {
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), v)
	}
	text(cmd.OutOrStdout())
	return nil
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
