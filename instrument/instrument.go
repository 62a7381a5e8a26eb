package instrument

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/pitch"
	"github.com/jsphweid/chordex/scale"
	"github.com/jsphweid/chordex/util"
)

var ErrUnknownInstrument = errors.New("unknown instrument")
var ErrTooManyFrets = errors.New("too many frets")

// MaxFrets bounds any fretboard layout.
const MaxFrets = 36

const (
	Fretted = "fretted"
	Bowed   = "bowed"
)

type Instrument struct {
	Name string
	Type string
	// low string first
	Strings []string
	Frets   int
}

var catalog = map[string]Instrument{
	"guitar":  {Name: "Guitar", Type: Fretted, Strings: []string{"E", "A", "D", "G", "B", "E"}, Frets: 24},
	"bass":    {Name: "Bass Guitar", Type: Fretted, Strings: []string{"E", "A", "D", "G"}, Frets: 24},
	"ukulele": {Name: "Ukulele", Type: Fretted, Strings: []string{"G", "C", "E", "A"}, Frets: 15},
	// positions rather than frets
	"violin": {Name: "Violin", Type: Bowed, Strings: []string{"G", "D", "A", "E"}, Frets: 20},
}

func Names() []string {
	return util.GetKeysSorted(catalog)
}

func Lookup(name string) (Instrument, error) {
	i, ok := catalog[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Instrument{}, fmt.Errorf("%w: %q", ErrUnknownInstrument, name)
	}
	i.Strings = append([]string(nil), i.Strings...)
	return i, nil
}

type Position struct {
	Label string
	Frets []int
}

var numerals = []string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X", "XI", "XII"}

// Positions are the twelve five-fret hand positions, the first one starting
// on the open strings.
func Positions() []Position {
	res := make([]Position, len(numerals))
	for i, n := range numerals {
		res[i] = Position{Label: "Position " + n, Frets: []int{i, i + 1, i + 2, i + 3, i + 4}}
	}
	return res
}

func NoteAt(openString string, fret int, keyContext string) (string, error) {
	s, err := pitch.NoteToSemitone(openString)
	if err != nil {
		return "", err
	}
	return pitch.SemitoneToNote(s+fret, keyContext), nil
}

type Cell = model.FretCell

// Overlay marks notes on the fretboard. Every field is optional.
type Overlay struct {
	Key        string
	ScaleNotes []string
	ChordNotes []string
	ChordRoot  string
}

// Fretboard lays out frets 0..frets for every string of tuning, one row per
// string in tuning order.
func Fretboard(tuning []string, frets int, o Overlay) ([][]Cell, error) {
	if frets < 0 {
		return nil, fmt.Errorf("negative fret count %v", frets)
	}
	if frets > MaxFrets {
		return nil, fmt.Errorf("%w: %v, at most %v", ErrTooManyFrets, frets, MaxFrets)
	}
	keyContext := "C"
	keyRoot := ""
	if o.Key != "" {
		k, err := pitch.ParseKey(o.Key)
		if err != nil {
			return nil, err
		}
		keyContext = k.String()
		keyRoot = k.Root
	}

	res := make([][]Cell, len(tuning))
	for s, open := range tuning {
		row := make([]Cell, frets+1)
		for f := 0; f <= frets; f++ {
			note, err := NoteAt(open, f, keyContext)
			if err != nil {
				return nil, fmt.Errorf("string %v: %w", s+1, err)
			}
			row[f] = Cell{
				String:      s,
				Fret:        f,
				Note:        note,
				InScale:     scale.Contains(o.ScaleNotes, note),
				IsKeyRoot:   keyRoot != "" && pitch.SameClass(keyRoot, note),
				InChord:     chord.Contains(o.ChordNotes, note),
				IsChordRoot: o.ChordRoot != "" && chord.IsRoot(o.ChordRoot, note),
			}
		}
		res[s] = row
	}
	return res, nil
}
