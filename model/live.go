package model

import "time"

// LiveEvent is pushed to live clients every time the held keys settle.
type LiveEvent struct {
	At         time.Time        `json:"at"`
	Keys       []int            `json:"keys"`
	Notes      []string         `json:"notes"`
	Candidates []ChordCandidate `json:"candidates"`
}
