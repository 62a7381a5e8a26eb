package model

type ProgressionChord struct {
	Symbol       string   `json:"symbol"`
	RomanNumeral string   `json:"roman_numeral,omitempty"`
	Notes        []string `json:"notes"`
}

// Progression is owned by the caller; engine functions return new values
// instead of editing one in place.
type Progression struct {
	Key             string             `json:"key,omitempty"`
	Tempo           int                `json:"tempo,omitempty"`
	BeatsPerMeasure int                `json:"beats_per_measure,omitempty"`
	Chords          []ProgressionChord `json:"chords"`
}

func ProgressionChordFrom(c Chord) ProgressionChord {
	return ProgressionChord{
		Symbol:       c.Symbol,
		RomanNumeral: c.RomanNumeral,
		Notes:        append([]string(nil), c.Notes...),
	}
}
