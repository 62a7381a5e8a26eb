package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/constants"
	"github.com/jsphweid/chordex/midi"
	"github.com/jsphweid/chordex/model"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
)

var (
	listenPort int
	listenKey  string
	listenList bool
)

func init() {
	listenCmd.Flags().IntVarP(&listenPort, "port", "p", constants.GetMidiPort(), "midi input port number")
	listenCmd.Flags().StringVarP(&listenKey, "key", "k", "C", "key used to spell note names")
	listenCmd.Flags().BoolVar(&listenList, "list", false, "list input ports and exit")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Names chords played on a MIDI keyboard",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		defer gomidi.CloseDriver()
		if listenList {
			for _, in := range gomidi.GetInPorts() {
				fmt.Fprintf(cmd.OutOrStdout(), "%v: %v\n", in.Number(), in.String())
			}
			return nil
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		w := cmd.OutOrStdout()
		return midi.Listen(ctx, listenPort, listenConfig(listenKey), func(evt model.LiveEvent) {
			if len(evt.Candidates) == 0 {
				fmt.Fprintf(w, "%-10s %v\n", "-", strings.Join(evt.Notes, " "))
				return
			}
			fmt.Fprintf(w, "%-10s %v\n", evt.Candidates[0].Symbol, strings.Join(evt.Notes, " "))
		})
	},
}

func listenConfig(keyContext string) midi.ListenConfig {
	cfg := midi.ListenConfig{
		Debounce:   constants.GetDebounce(),
		KeyContext: keyContext,
	}
	if constants.GetLenientNotes() {
		cfg.Options = append(cfg.Options, chord.Lenient())
	}
	return cfg
}

// listenInBackground feeds the chords played on port into events until ctx
// is done.
func listenInBackground(ctx context.Context, port int, events chan<- model.LiveEvent) {
	go func() {
		err := midi.Listen(ctx, port, listenConfig("C"), func(evt model.LiveEvent) {
			select {
			case events <- evt:
			case <-ctx.Done():
			}
		})
		if err != nil {
			slog.Error("midi listener stopped", "port", port, "err", err)
		}
	}()
}
