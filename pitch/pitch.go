// Package pitch converts between note names and pitch classes.
//
// A pitch class is an int in [0,11] with 0 = C. Note names may use ♯/# and
// ♭/b accidentals or a dual spelling such as "F♯/G♭"; every accepted name maps
// to exactly one pitch class.
package pitch

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/jsphweid/chordex/util"
)

var ErrInvalidNote = errors.New("invalid note name")
var ErrOutOfRange = errors.New("note out of MIDI range")

var sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var flatNames = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

// display spellings
var sharpSpelling = [12]string{"C", "C♯", "D", "D♯", "E", "F", "F♯", "G", "G♯", "A", "A♯", "B"}
var flatSpelling = [12]string{"C", "D♭", "D", "E♭", "E", "F", "G♭", "G", "A♭", "A", "B♭", "B"}

// keys (majors and minors) whose notes are spelled with flats
var flatKeys = map[string]bool{
	"F": true, "Bb": true, "Eb": true, "Ab": true, "Db": true, "Gb": true, "Cb": true,
	"Dm": true, "Gm": true, "Cm": true, "Fm": true, "Bbm": true, "Ebm": true, "Abm": true,
}

var degreeLabels = [12]string{"1", "♭2", "2", "♭3", "3", "4", "♭5", "5", "♯5", "6", "♭7", "7"}

// Normalize trims name and rewrites ♯ and ♭ as # and b.
func Normalize(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, "♯", "#")
	return strings.ReplaceAll(name, "♭", "b")
}

func lookup(name string) (int, bool) {
	for i, n := range sharpNames {
		if n == name {
			return i, true
		}
	}
	for i, n := range flatNames {
		if n == name {
			return i, true
		}
	}
	return 0, false
}

// NoteToSemitone returns the pitch class of name. For a dual spelling only
// the part before the slash is considered.
func NoteToSemitone(name string) (int, error) {
	clean := Normalize(name)
	if i, ok := lookup(clean); ok {
		return i, nil
	}
	if first, _, found := strings.Cut(clean, "/"); found {
		if i, ok := lookup(strings.TrimSpace(first)); ok {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidNote, name)
}

// NoteToSemitoneLenient is NoteToSemitone that resolves unknown names to C.
func NoteToSemitoneLenient(name string) int {
	i, err := NoteToSemitone(name)
	if err != nil {
		return 0
	}
	return i
}

// IsValid reports whether name is a recognized note name.
func IsValid(name string) bool {
	_, err := NoteToSemitone(name)
	return err == nil
}

// IsFlatKey reports whether notes in keyContext are spelled with flats.
func IsFlatKey(keyContext string) bool {
	k := Normalize(keyContext)
	if first, _, found := strings.Cut(k, "/"); found {
		k = strings.TrimSpace(first)
	}
	return flatKeys[k]
}

// SemitoneToNote spells a pitch class for keyContext. Any int is accepted and
// reduced mod 12.
func SemitoneToNote(semitone int, keyContext string) string {
	s := util.Mod(semitone, 12)
	if IsFlatKey(keyContext) {
		return flatSpelling[s]
	}
	return sharpSpelling[s]
}

// SameClass reports whether a and b are valid names of the same pitch class.
func SameClass(a, b string) bool {
	sa, err := NoteToSemitone(a)
	if err != nil {
		return false
	}
	sb, err := NoteToSemitone(b)
	if err != nil {
		return false
	}
	return sa == sb
}

// Interval is the ascending distance in semitones from root to note.
func Interval(root, note string) (int, error) {
	r, err := NoteToSemitone(root)
	if err != nil {
		return 0, err
	}
	n, err := NoteToSemitone(note)
	if err != nil {
		return 0, err
	}
	return util.Mod(n-r, 12), nil
}

// DegreeLabel names the interval from root to note ("1", "♭3", "5", ...).
func DegreeLabel(note, root string) (string, error) {
	i, err := Interval(root, note)
	if err != nil {
		return "?", err
	}
	return degreeLabels[i], nil
}

// Frequency is the equal-tempered frequency of name in octave, A4 = 440 Hz.
func Frequency(name string, octave int) (float64, error) {
	s, err := NoteToSemitone(name)
	if err != nil {
		return 0, err
	}
	fromA4 := s - 9 + (octave-4)*12
	return 440 * math.Pow(2, float64(fromA4)/12), nil
}

// ToMIDI returns the MIDI key of name in octave, where C4 = 60.
func ToMIDI(name string, octave int) (uint8, error) {
	s, err := NoteToSemitone(name)
	if err != nil {
		return 0, err
	}
	key := (octave+1)*12 + s
	if key < 0 || key > 127 {
		return 0, fmt.Errorf("%w: %v%v", ErrOutOfRange, name, octave)
	}
	return uint8(key), nil
}

// FromMIDI spells the pitch class of a MIDI key for keyContext.
func FromMIDI(key uint8, keyContext string) string {
	return SemitoneToNote(int(key), keyContext)
}

// Octave of a MIDI key, C4 = 60.
func Octave(key uint8) int {
	return int(key)/12 - 1
}
