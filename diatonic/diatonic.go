// Package diatonic builds the chords of a scale: triads and sevenths stacked
// in scale steps, plus secondary dominants.
//
// Thirds are counted in scale indexes, not semitones, which is only
// meaningful for seven-note scales. Other lengths still produce chords
// (indexes wrap mod n) and an empty scale produces none.
package diatonic

import (
	"errors"
	"fmt"

	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/pitch"
	"github.com/jsphweid/chordex/scale"
)

var ErrUnknownKind = errors.New("unknown chord kind")

const (
	KindTriads    = "triads"
	KindSevenths  = "sevenths"
	KindSecondary = "secondary"
)

var majorNumerals = []string{"I", "ii", "iii", "IV", "V", "vi", "vii°"}
var minorNumerals = []string{"i", "ii°", "♭III", "iv", "v", "♭VI", "♭VII"}

// RomanNumeral labels scale degree (0-based) in mode. keyRoot carrying the
// minor marker ("Am") forces the minor table. Degrees outside the table fall
// back to the tonic.
func RomanNumeral(degree int, mode string, keyRoot string) string {
	numerals := majorNumerals
	if mode == pitch.Minor || pitch.IsMinorKey(keyRoot) {
		numerals = minorNumerals
	}
	if degree < 0 || degree >= len(numerals) {
		return numerals[0]
	}
	return numerals[degree]
}

func stack(scaleNotes []string, i int, steps ...int) []string {
	n := len(scaleNotes)
	res := []string{scaleNotes[i]}
	for _, s := range steps {
		res = append(res, scaleNotes[(i+s)%n])
	}
	return res
}

func checkNotes(notes []string) error {
	for _, n := range notes {
		if _, err := pitch.NoteToSemitone(n); err != nil {
			return err
		}
	}
	return nil
}

// Triads stacks scale[i], scale[i+2] and scale[i+4] on every degree.
func Triads(scaleNotes []string, keyRoot string) ([]model.Chord, error) {
	if err := checkNotes(scaleNotes); err != nil {
		return nil, err
	}
	res := make([]model.Chord, 0, len(scaleNotes))
	for i := range scaleNotes {
		notes := stack(scaleNotes, i, 2, 4)
		symbol, err := TriadSymbol(notes[0], notes[1], notes[2])
		if err != nil {
			return nil, err
		}
		res = append(res, model.Chord{
			Symbol:       symbol,
			Root:         notes[0],
			Notes:        notes,
			ScaleDegree:  i + 1,
			RomanNumeral: RomanNumeral(i, pitch.Major, keyRoot),
			Degrees:      []string{"1", "3", "5"},
		})
	}
	return res, nil
}

// Sevenths adds scale[i+6] to every triad.
func Sevenths(scaleNotes []string, keyRoot string) ([]model.Chord, error) {
	if err := checkNotes(scaleNotes); err != nil {
		return nil, err
	}
	res := make([]model.Chord, 0, len(scaleNotes))
	for i := range scaleNotes {
		notes := stack(scaleNotes, i, 2, 4, 6)
		symbol, err := SeventhSymbol(notes[0], notes[1], notes[2], notes[3])
		if err != nil {
			return nil, err
		}
		res = append(res, model.Chord{
			Symbol:       symbol,
			Root:         notes[0],
			Notes:        notes,
			ScaleDegree:  i + 1,
			RomanNumeral: RomanNumeral(i, pitch.Major, keyRoot) + "7",
			Degrees:      []string{"1", "3", "5", "7"},
		})
	}
	return res, nil
}

// SecondaryDominants builds V7 of every degree but the tonic. The dominant
// root sits a perfect fifth above the target and everything is spelled in
// keyRoot's context.
func SecondaryDominants(keyRoot string, scaleNotes []string) ([]model.Chord, error) {
	if err := checkNotes(scaleNotes); err != nil {
		return nil, err
	}
	res := []model.Chord{}
	for i, target := range scaleNotes {
		if i == 0 {
			continue
		}
		t, _ := pitch.NoteToSemitone(target)
		root := t + 7
		notes := []string{
			pitch.SemitoneToNote(root, keyRoot),
			pitch.SemitoneToNote(root+4, keyRoot),
			pitch.SemitoneToNote(root+7, keyRoot),
			pitch.SemitoneToNote(root+10, keyRoot),
		}
		res = append(res, model.Chord{
			Symbol:       notes[0] + "7",
			Root:         notes[0],
			Notes:        notes,
			ScaleDegree:  i + 1,
			RomanNumeral: "V7/" + RomanNumeral(i, pitch.Major, keyRoot),
			Degrees:      []string{"1", "3", "5", "♭7"},
			Target:       target,
		})
	}
	return res, nil
}

// Generate builds the scale of key and then the chords of kind
// ("triads", "sevenths" or "secondary").
func Generate(key, scaleType, kind string) ([]model.Chord, error) {
	notes, err := scale.ForKey(key, scaleType)
	if err != nil {
		return nil, err
	}
	switch kind {
	case KindTriads, "":
		return Triads(notes, key)
	case KindSevenths:
		return Sevenths(notes, key)
	case KindSecondary:
		return SecondaryDominants(key, notes)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}
