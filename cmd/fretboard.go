package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/instrument"
	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/scale"
	"github.com/spf13/cobra"
)

type fretboardParams struct {
	Instrument string
	Key        string
	ScaleType  string
	Chord      string
	Frets      int
}

var (
	fretParams   fretboardParams
	fretPosition int
)

var (
	cellStyle      = lipgloss.NewStyle().Width(5)
	chordRootStyle = cellStyle.Copy().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "124", Dark: "203"})
	chordToneStyle = cellStyle.Copy().Foreground(lipgloss.AdaptiveColor{Light: "166", Dark: "215"})
	keyRootStyle   = cellStyle.Copy().Bold(true)
	offScaleStyle  = cellStyle.Copy().Faint(true)
)

func init() {
	fretboardCmd.Flags().StringVarP(&fretParams.Instrument, "instrument", "i", "guitar", "one of "+strings.Join(instrument.Names(), ", "))
	fretboardCmd.Flags().StringVarP(&fretParams.Key, "key", "k", "", "key whose scale is marked")
	fretboardCmd.Flags().StringVarP(&fretParams.ScaleType, "type", "t", "major", "scale type")
	fretboardCmd.Flags().StringVarP(&fretParams.Chord, "chord", "c", "", "chord symbol to mark, e.g. Am7")
	fretboardCmd.Flags().IntVarP(&fretParams.Frets, "frets", "f", 0, "frets to show (defaults to the instrument's)")
	fretboardCmd.Flags().IntVarP(&fretPosition, "position", "p", 0, "only show hand position 1-12")
	rootCmd.AddCommand(fretboardCmd)
}

var fretboardCmd = &cobra.Command{
	Use:   "fretboard",
	Short: "Maps a scale or chord onto an instrument's neck",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := fretboardFor(fretParams)
		if err != nil {
			return err
		}
		frets := []int{}
		if fretPosition != 0 {
			positions := instrument.Positions()
			if fretPosition < 1 || fretPosition > len(positions) {
				return fmt.Errorf("position must be between 1 and %v", len(positions))
			}
			frets = positions[fretPosition-1].Frets
		}
		return output(cmd, res, func(w io.Writer) {
			printFretboard(w, res, frets)
		})
	},
}

func fretboardFor(p fretboardParams) (model.FretboardResponse, error) {
	inst, err := instrument.Lookup(p.Instrument)
	if err != nil {
		return model.FretboardResponse{}, err
	}
	frets := p.Frets
	if frets <= 0 {
		frets = inst.Frets
	}
	if frets > inst.Frets {
		return model.FretboardResponse{}, fmt.Errorf("%w: %v has %v", instrument.ErrTooManyFrets, inst.Name, inst.Frets)
	}

	overlay := instrument.Overlay{Key: p.Key}
	if p.Key != "" {
		if err := scale.Validate(p.ScaleType); err != nil {
			return model.FretboardResponse{}, err
		}
		overlay.ScaleNotes, err = scale.ForKey(p.Key, p.ScaleType)
		if err != nil {
			return model.FretboardResponse{}, err
		}
	}
	if p.Chord != "" {
		sym, err := chord.ParseSymbol(p.Chord)
		if err != nil {
			return model.FretboardResponse{}, err
		}
		overlay.ChordRoot = sym.Root
		overlay.ChordNotes, err = chord.SpellSymbol(p.Chord)
		if err != nil {
			return model.FretboardResponse{}, err
		}
	}

	cells, err := instrument.Fretboard(inst.Strings, frets, overlay)
	if err != nil {
		return model.FretboardResponse{}, err
	}
	return model.FretboardResponse{
		Instrument: inst.Name,
		Tuning:     inst.Strings,
		Frets:      frets,
		Cells:      cells,
	}, nil
}

func styleFor(c model.FretCell) lipgloss.Style {
	switch {
	case c.IsChordRoot:
		return chordRootStyle
	case c.InChord:
		return chordToneStyle
	case c.IsKeyRoot:
		return keyRootStyle
	case c.InScale:
		return cellStyle
	}
	return offScaleStyle
}

func cellLabel(c model.FretCell) string {
	switch {
	case c.IsChordRoot:
		return "(" + c.Note + ")"
	case c.InChord:
		return "*" + c.Note
	case c.IsKeyRoot:
		return "[" + c.Note + "]"
	case c.InScale:
		return c.Note
	}
	return "·"
}

// printFretboard draws the highest string on top, like tab. An empty frets
// shows the whole neck.
func printFretboard(w io.Writer, res model.FretboardResponse, frets []int) {
	if len(frets) == 0 {
		for f := 0; f <= res.Frets; f++ {
			frets = append(frets, f)
		}
	}

	fmt.Fprintf(w, "%-3s", "")
	for _, f := range frets {
		fmt.Fprintf(w, "%-5v", f)
	}
	fmt.Fprintln(w)
	for s := len(res.Cells) - 1; s >= 0; s-- {
		row := res.Cells[s]
		fmt.Fprintf(w, "%-3s", res.Tuning[s])
		for _, f := range frets {
			if f < len(row) {
				fmt.Fprint(w, styleFor(row[f]).Render(cellLabel(row[f])))
			}
		}
		fmt.Fprintln(w)
	}
}
