package model

type FretCell struct {
	String      int    `json:"string"`
	Fret        int    `json:"fret"`
	Note        string `json:"note"`
	InScale     bool   `json:"in_scale"`
	IsKeyRoot   bool   `json:"is_key_root"`
	InChord     bool   `json:"in_chord"`
	IsChordRoot bool   `json:"is_chord_root"`
}

type FretboardResponse struct {
	Instrument string       `json:"instrument"`
	Tuning     []string     `json:"tuning"`
	Frets      int          `json:"frets"`
	Cells      [][]FretCell `json:"cells"`
}
