package model

// Notes are MIDI key numbers.
type Notes = []uint8

// ChordCandidate is one (root, template) match produced by the recognizer.
type ChordCandidate struct {
	Symbol      string   `json:"symbol"`
	Score       float64  `json:"score"`
	Priority    float64  `json:"priority"`
	Type        string   `json:"type"`
	Template    string   `json:"template"`
	Intervals   []int    `json:"intervals"`
	Notes       []string `json:"notes"`
	Root        string   `json:"root"`
	BassNote    string   `json:"bass_note"`
	IsInversion bool     `json:"is_inversion"`
}

// Chord is a chord built from a scale (diatonic or borrowed).
type Chord struct {
	Symbol       string   `json:"symbol"`
	Root         string   `json:"root"`
	Notes        []string `json:"notes"`
	ScaleDegree  int      `json:"scale_degree,omitempty"`
	RomanNumeral string   `json:"roman_numeral"`
	Degrees      []string `json:"degrees"`

	// NOTE: only set on secondary dominants
	Target string `json:"target,omitempty"`
}

// ChordEvent is the set of keys sounding at one point of a MIDI file.
type ChordEvent struct {
	// millis
	Offset uint32
	Notes  Notes
}
