package model

// DetectedChord is a chord found in a MIDI file.
type DetectedChord struct {
	File   string   `json:"file"`
	Offset uint32   `json:"offset_ms"`
	Keys   []int    `json:"keys"`
	Notes  []string `json:"notes"`
	Symbol string   `json:"symbol,omitempty"`
	Score  float64  `json:"score,omitempty"`
}
