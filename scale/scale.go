package scale

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jsphweid/chordex/pitch"
)

var ErrUnknownType = errors.New("unknown scale type")

// Pattern is a strictly increasing list of semitone offsets starting at 0.
type Pattern = []int

var patterns = map[string]Pattern{
	"major":               {0, 2, 4, 5, 7, 9, 11},
	"minor":               {0, 2, 3, 5, 7, 8, 10},
	"harmonicMinor":       {0, 2, 3, 5, 7, 8, 11},
	"melodicMinor":        {0, 2, 3, 5, 7, 9, 11},
	"majorPentatonic":     {0, 2, 4, 7, 9},
	"minorPentatonic":     {0, 3, 5, 7, 10},
	"wholeTone":           {0, 2, 4, 6, 8, 10},
	"halfWholeDiminished": {0, 1, 3, 4, 6, 7, 9, 10},
	"wholeHalfDiminished": {0, 2, 3, 5, 6, 8, 9, 11},
	"dorian":              {0, 2, 3, 5, 7, 9, 10},
	"mixolydian":          {0, 2, 4, 5, 7, 9, 10},
	"lydian":              {0, 2, 4, 6, 7, 9, 11},
	"phrygian":            {0, 1, 3, 5, 7, 8, 10},
	"locrian":             {0, 1, 3, 5, 6, 8, 10},
}

var displayNames = map[string]string{
	"major":               "Major",
	"minor":               "Natural Minor",
	"harmonicMinor":       "Harmonic Minor",
	"melodicMinor":        "Melodic Minor",
	"majorPentatonic":     "Major Pentatonic",
	"minorPentatonic":     "Minor Pentatonic",
	"wholeTone":           "Whole Tone",
	"halfWholeDiminished": "Half-Whole Diminished",
	"wholeHalfDiminished": "Whole-Half Diminished",
	"dorian":              "Dorian",
	"mixolydian":          "Mixolydian",
	"lydian":              "Lydian",
	"phrygian":            "Phrygian",
	"locrian":             "Locrian",
}

// Lookup returns a copy of the pattern registered as scaleType.
func Lookup(scaleType string) (Pattern, bool) {
	p, ok := patterns[scaleType]
	if !ok {
		return nil, false
	}
	return append(Pattern(nil), p...), true
}

// Validate returns ErrUnknownType for anything Lookup does not know.
func Validate(scaleType string) error {
	if _, ok := patterns[scaleType]; !ok {
		return fmt.Errorf("%w %q", ErrUnknownType, scaleType)
	}
	return nil
}

// Types lists every known scale type in alphabetical order.
func Types() []string {
	res := make([]string, 0, len(patterns))
	for name := range patterns {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}

// DisplayName is the human readable name of scaleType, or scaleType itself.
func DisplayName(scaleType string) string {
	if name, ok := displayNames[scaleType]; ok {
		return name
	}
	return scaleType
}

// Generate spells the scale of scaleType starting on root, using root as the
// key context. An unknown scale type gives an empty scale, not an error.
func Generate(root, scaleType string) ([]string, error) {
	rootSemitone, err := pitch.NoteToSemitone(root)
	if err != nil {
		return nil, err
	}
	return spell(rootSemitone, scaleType, root), nil
}

// ForKey generates the scale of a key name such as "Dm". The root is resolved
// without the minor marker but the whole key picks the spelling, so D minor
// gets B♭ rather than A♯.
func ForKey(key, scaleType string) ([]string, error) {
	k, err := pitch.ParseKey(key)
	if err != nil {
		return nil, err
	}
	return spell(k.Semitone, scaleType, k.String()), nil
}

func spell(rootSemitone int, scaleType, keyContext string) []string {
	p, ok := patterns[scaleType]
	if !ok {
		return []string{}
	}
	res := make([]string, len(p))
	for i, offset := range p {
		res[i] = pitch.SemitoneToNote(rootSemitone+offset, keyContext)
	}
	return res
}

// Contains reports whether note's pitch class is in scaleNotes.
func Contains(scaleNotes []string, note string) bool {
	for _, n := range scaleNotes {
		if pitch.SameClass(n, note) {
			return true
		}
	}
	return false
}
