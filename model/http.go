package model

type AnalyzeRequestBody struct {
	Notes   []string `json:"notes"`
	Root    string   `json:"root,omitempty"`
	Limit   int      `json:"limit,omitempty"`
	Lenient bool     `json:"lenient,omitempty"`
}

type AnalyzeResponse struct {
	Notes      []string         `json:"notes"`
	Candidates []ChordCandidate `json:"candidates"`
}

type ScaleResponse struct {
	Root  string   `json:"root"`
	Type  string   `json:"type"`
	Name  string   `json:"name"`
	Notes []string `json:"notes"`
}

type ChordsResponse struct {
	Key    string  `json:"key"`
	Type   string  `json:"type"`
	Mode   string  `json:"mode"`
	Chords []Chord `json:"chords"`
}

type TransposeRequestBody struct {
	Semitones   int         `json:"semitones"`
	Progression Progression `json:"progression"`
}

// NashvilleResponse has one number in Chords for every entry of Symbols.
type NashvilleResponse struct {
	Key     string   `json:"key"`
	Numbers []string `json:"numbers"`
	Symbols []string `json:"symbols,omitempty"`
	Chords  []string `json:"chords,omitempty"`
}

type KeyInfo struct {
	Major       string `json:"major"`
	Minor       string `json:"minor"`
	Accidentals int    `json:"accidentals"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
