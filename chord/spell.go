package chord

import (
	"fmt"
	"regexp"

	"github.com/jsphweid/chordex/pitch"
)

var symbolRegex = regexp.MustCompile(`^([A-G][♯#♭b]?)(.*)$`)

// Symbol is a parsed chord symbol such as "Am7/G".
type Symbol struct {
	Root     string
	Template Template
	Bass     string
}

// ParseSymbol splits a chord symbol into root, quality and optional slash
// bass. "6/9" is read as a quality, not as a slash chord.
func ParseSymbol(symbol string) (Symbol, error) {
	m := symbolRegex.FindStringSubmatch(symbol)
	if m == nil {
		return Symbol{}, fmt.Errorf("%w: %q", pitch.ErrInvalidNote, symbol)
	}
	root, rest := m[1], m[2]

	if t, err := LookupSymbol(rest); err == nil {
		return Symbol{Root: root, Template: t}, nil
	}

	for i := len(rest) - 1; i >= 0; i-- {
		if rest[i] != '/' {
			continue
		}
		bass := rest[i+1:]
		if !pitch.IsValid(bass) {
			break
		}
		t, err := LookupSymbol(rest[:i])
		if err != nil {
			return Symbol{}, err
		}
		return Symbol{Root: root, Template: t, Bass: bass}, nil
	}
	t, err := LookupSymbol(rest)
	if err != nil {
		return Symbol{}, err
	}
	return Symbol{Root: root, Template: t}, nil
}

// Spell lists the notes of templateName built on root, spelled in root's key
// context.
func Spell(root, templateName string) ([]string, error) {
	t, err := Lookup(templateName)
	if err != nil {
		return nil, err
	}
	return spell(root, t)
}

// SpellSymbol lists the notes of a chord symbol, slash bass first when given.
func SpellSymbol(symbol string) ([]string, error) {
	s, err := ParseSymbol(symbol)
	if err != nil {
		return nil, err
	}
	notes, err := spell(s.Root, s.Template)
	if err != nil {
		return nil, err
	}
	if s.Bass == "" {
		return notes, nil
	}
	res := []string{s.Bass}
	for _, n := range notes {
		if !pitch.SameClass(n, s.Bass) {
			res = append(res, n)
		}
	}
	return res, nil
}

func spell(root string, t Template) ([]string, error) {
	r, err := pitch.NoteToSemitone(root)
	if err != nil {
		return nil, err
	}
	res := make([]string, len(t.Intervals))
	for i, interval := range t.Intervals {
		res[i] = pitch.SemitoneToNote(r+interval, root)
	}
	return res, nil
}

// Contains reports whether note's pitch class is one of chordNotes.
func Contains(chordNotes []string, note string) bool {
	for _, n := range chordNotes {
		if pitch.SameClass(n, note) {
			return true
		}
	}
	return false
}

// IsRoot reports whether note is the same pitch class as chordRoot.
func IsRoot(chordRoot, note string) bool {
	return pitch.SameClass(chordRoot, note)
}
