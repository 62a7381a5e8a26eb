package chord

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownTemplate = errors.New("unknown chord template")

// Template describes a chord quality by its intervals above an assumed root.
type Template struct {
	Name      string
	Intervals []int
	Symbol    string
	Type      string

	// lower is more common and wins ties
	Priority float64

	// minimum fraction of Intervals that must be present
	CompletenessThreshold float64

	// any of these present disqualifies the template
	ExcludeIf []int
}

var templates = []Template{
	{Name: "power", Intervals: []int{0, 7}, Priority: 0.5, Symbol: "5", Type: "power", CompletenessThreshold: 0.4, ExcludeIf: []int{3, 4}},
	{Name: "major", Intervals: []int{0, 4, 7}, Priority: 1, Symbol: "", Type: "triad", CompletenessThreshold: 0.4},
	{Name: "minor", Intervals: []int{0, 3, 7}, Priority: 1, Symbol: "m", Type: "triad", CompletenessThreshold: 0.4},
	{Name: "diminished", Intervals: []int{0, 3, 6}, Priority: 1, Symbol: "°", Type: "triad", CompletenessThreshold: 0.4},
	{Name: "augmented", Intervals: []int{0, 4, 8}, Priority: 1, Symbol: "+", Type: "triad", CompletenessThreshold: 0.4},
	{Name: "sus2", Intervals: []int{0, 2, 7}, Priority: 1.5, Symbol: "sus2", Type: "suspended", CompletenessThreshold: 0.4, ExcludeIf: []int{3, 4}},
	{Name: "sus4", Intervals: []int{0, 5, 7}, Priority: 1.5, Symbol: "sus4", Type: "suspended", CompletenessThreshold: 0.4, ExcludeIf: []int{3, 4}},
	{Name: "6", Intervals: []int{0, 4, 7, 9}, Priority: 2, Symbol: "6", Type: "sixth", CompletenessThreshold: 0.4},
	{Name: "m6", Intervals: []int{0, 3, 7, 9}, Priority: 2, Symbol: "m6", Type: "sixth", CompletenessThreshold: 0.4},
	{Name: "add9", Intervals: []int{0, 4, 7, 2}, Priority: 2, Symbol: "add9", Type: "added", CompletenessThreshold: 0.4, ExcludeIf: []int{10, 11}},
	{Name: "madd9", Intervals: []int{0, 3, 7, 2}, Priority: 2, Symbol: "madd9", Type: "added", CompletenessThreshold: 0.4, ExcludeIf: []int{10, 11}},
	{Name: "6/9", Intervals: []int{0, 4, 7, 9, 2}, Priority: 2.5, Symbol: "6/9", Type: "sixth", CompletenessThreshold: 0.4},
	{Name: "major7", Intervals: []int{0, 4, 7, 11}, Priority: 3, Symbol: "maj7", Type: "seventh", CompletenessThreshold: 0.4},
	{Name: "minor7", Intervals: []int{0, 3, 7, 10}, Priority: 3, Symbol: "m7", Type: "seventh", CompletenessThreshold: 0.4},
	{Name: "dominant7", Intervals: []int{0, 4, 7, 10}, Priority: 3, Symbol: "7", Type: "seventh", CompletenessThreshold: 0.4},
	{Name: "minorMajor7", Intervals: []int{0, 3, 7, 11}, Priority: 3, Symbol: "mMaj7", Type: "seventh", CompletenessThreshold: 0.4},
	{Name: "halfDiminished7", Intervals: []int{0, 3, 6, 10}, Priority: 3, Symbol: "m7♭5", Type: "seventh", CompletenessThreshold: 0.4},
	{Name: "diminished7", Intervals: []int{0, 3, 6, 9}, Priority: 3, Symbol: "°7", Type: "seventh", CompletenessThreshold: 0.4},
	{Name: "augmented7", Intervals: []int{0, 4, 8, 10}, Priority: 3, Symbol: "7+", Type: "seventh", CompletenessThreshold: 0.4},
	{Name: "9", Intervals: []int{0, 4, 7, 10, 2}, Priority: 4, Symbol: "9", Type: "ninth", CompletenessThreshold: 0.4},
	{Name: "major9", Intervals: []int{0, 4, 7, 11, 2}, Priority: 4, Symbol: "maj9", Type: "ninth", CompletenessThreshold: 0.4},
	{Name: "minor9", Intervals: []int{0, 3, 7, 10, 2}, Priority: 4, Symbol: "m9", Type: "ninth", CompletenessThreshold: 0.4},
	{Name: "7b9", Intervals: []int{0, 4, 7, 10, 1}, Priority: 5, Symbol: "7♭9", Type: "altered", CompletenessThreshold: 0.4},
	{Name: "7#9", Intervals: []int{0, 4, 7, 10, 3}, Priority: 5, Symbol: "7♯9", Type: "altered", CompletenessThreshold: 0.4},
	{Name: "7b5", Intervals: []int{0, 4, 6, 10}, Priority: 5, Symbol: "7♭5", Type: "altered", CompletenessThreshold: 0.4},
	{Name: "7#5", Intervals: []int{0, 4, 8, 10}, Priority: 5, Symbol: "7♯5", Type: "altered", CompletenessThreshold: 0.4},
}

// common spellings of suffixes that differ from the catalog symbols
var symbolAliases = map[string]string{
	"maj":  "",
	"M":    "",
	"min":  "m",
	"-":    "m",
	"dim":  "°",
	"o":    "°",
	"aug":  "+",
	"dim7": "°7",
	"o7":   "°7",
	"M7":   "maj7",
	"ø":    "m7♭5",
	"ø7":   "m7♭5",
	"-7":   "m7",
	"min7": "m7",
}

func (t Template) clone() Template {
	t.Intervals = append([]int(nil), t.Intervals...)
	t.ExcludeIf = append([]int(nil), t.ExcludeIf...)
	return t
}

// Catalog returns a copy of every template in catalog order.
func Catalog() []Template {
	res := make([]Template, len(templates))
	for i, t := range templates {
		res[i] = t.clone()
	}
	return res
}

// Lookup finds a template by name ("major7", "sus4", ...).
func Lookup(name string) (Template, error) {
	for _, t := range templates {
		if t.Name == name {
			return t.clone(), nil
		}
	}
	return Template{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
}

func asciiAccidentals(s string) string {
	s = strings.ReplaceAll(s, "♯", "#")
	return strings.ReplaceAll(s, "♭", "b")
}

// LookupSymbol finds a template by its display suffix. ASCII accidentals and
// a few common alternative spellings ("dim", "aug", "M7") are accepted.
func LookupSymbol(suffix string) (Template, error) {
	if alias, ok := symbolAliases[suffix]; ok {
		suffix = alias
	}
	want := asciiAccidentals(suffix)
	for _, t := range templates {
		if asciiAccidentals(t.Symbol) == want {
			return t.clone(), nil
		}
	}
	return Template{}, fmt.Errorf("%w: suffix %q", ErrUnknownTemplate, suffix)
}
