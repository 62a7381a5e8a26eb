package scale

import (
	"strings"

	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/pitch"
)

var majorCircle = []string{"C", "G", "D", "A", "E", "B", "F♯/G♭", "D♭", "A♭", "E♭", "B♭", "F"}
var minorCircle = []string{"Am", "Em", "Bm", "F♯m", "C♯m", "G♯m", "D♯m/E♭m", "B♭m", "Fm", "Cm", "Gm", "Dm"}

// sharps (+) or flats (-) of the major key on each pitch class
var majorSignatures = [12]int{0, -5, 2, -3, 4, -1, 6, 1, -4, 3, -2, 5}

// CircleOfFifths returns the twelve major keys in fifths order, each paired
// with its relative minor.
func CircleOfFifths() []model.KeyInfo {
	res := make([]model.KeyInfo, len(majorCircle))
	for i := range majorCircle {
		res[i] = model.KeyInfo{
			Major:       majorCircle[i],
			Minor:       minorCircle[i],
			Accidentals: majorSignatures[pitch.NoteToSemitoneLenient(majorCircle[i])],
		}
	}
	return res
}

// KeySignature returns the number of sharps (positive) or flats (negative) of
// key. The root's own accidental decides between enharmonic keys, so C♯ has
// seven sharps and G♭ six flats.
func KeySignature(key string) (int, error) {
	k, err := pitch.ParseKey(key)
	if err != nil {
		return 0, err
	}
	major := k.Semitone
	if k.Minor {
		major = (major + 3) % 12
	}
	sig := majorSignatures[major]
	root := pitch.Normalize(k.Root)
	switch {
	case strings.Contains(root, "#") && sig < 0:
		sig += 12
	case strings.Contains(root, "b") && sig > 0:
		sig -= 12
	}
	return sig, nil
}

// RelativeMinor of a major key, e.g. "F" -> "Dm".
func RelativeMinor(majorKey string) (string, error) {
	k, err := pitch.ParseKey(majorKey)
	if err != nil {
		return "", err
	}
	return pitch.SemitoneToNote(k.Semitone-3, k.String()) + "m", nil
}

// RelativeMajor of a minor key, e.g. "Cm" -> "E♭".
func RelativeMajor(minorKey string) (string, error) {
	k, err := pitch.ParseKey(minorKey)
	if err != nil {
		return "", err
	}
	return pitch.SemitoneToNote(k.Semitone+3, k.String()), nil
}
