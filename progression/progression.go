package progression

import (
	"errors"
	"fmt"

	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/constants"
	"github.com/jsphweid/chordex/diatonic"
	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/scale"
)

var ErrBadDegree = errors.New("scale degree out of range")

func newProgression(key string) model.Progression {
	return model.Progression{
		Key:             key,
		Tempo:           constants.DefaultTempo,
		BeatsPerMeasure: constants.DefaultBeats,
		Chords:          []model.ProgressionChord{},
	}
}

// FromDegrees builds a progression of diatonic chords from 1-based scale
// degrees, e.g. 1 5 6 4.
func FromDegrees(key, scaleType string, degrees []int, sevenths bool) (model.Progression, error) {
	if err := scale.Validate(scaleType); err != nil {
		return model.Progression{}, err
	}
	kind := diatonic.KindTriads
	if sevenths {
		kind = diatonic.KindSevenths
	}
	chords, err := diatonic.Generate(key, scaleType, kind)
	if err != nil {
		return model.Progression{}, err
	}

	p := newProgression(key)
	for _, d := range degrees {
		if d < 1 || d > len(chords) {
			return model.Progression{}, fmt.Errorf("%w: %v (scale has %v)", ErrBadDegree, d, len(chords))
		}
		p.Chords = append(p.Chords, model.ProgressionChordFrom(chords[d-1]))
	}
	return p, nil
}

// FromSymbols spells every chord symbol. Roman numerals are left empty.
func FromSymbols(key string, symbols []string) (model.Progression, error) {
	p := newProgression(key)
	for _, s := range symbols {
		notes, err := chord.SpellSymbol(s)
		if err != nil {
			return model.Progression{}, err
		}
		p.Chords = append(p.Chords, model.ProgressionChord{Symbol: s, Notes: notes})
	}
	return p, nil
}
