package progression

import (
	"regexp"

	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/pitch"
	"github.com/jsphweid/chordex/util"
)

var sharpTable = [12]string{"C", "C♯", "D", "D♯", "E", "F", "F♯", "G", "G♯", "A", "A♯", "B"}
var flatTable = [12]string{"C", "D♭", "D", "E♭", "E", "F", "G♭", "G", "A♭", "A", "B♭", "B"}

var rootRegex = regexp.MustCompile(`^([A-G][♯#♭b]?)(.*)$`)

func tableIndex(note string) int {
	clean := pitch.Normalize(note)
	for i := range sharpTable {
		if pitch.Normalize(sharpTable[i]) == clean || pitch.Normalize(flatTable[i]) == clean {
			return i
		}
	}
	return -1
}

// TransposeNote moves note by semitones (negative goes down) and spells the
// result with sharps. Names it does not know are returned unchanged.
func TransposeNote(note string, semitones int) string {
	i := tableIndex(note)
	if i == -1 {
		return note
	}
	return sharpTable[util.Mod(i+semitones, 12)]
}

// TransposeSymbol moves only the leading root of a chord symbol; the quality
// suffix is kept as is.
func TransposeSymbol(symbol string, semitones int) string {
	m := rootRegex.FindStringSubmatch(symbol)
	if m == nil {
		return symbol
	}
	return TransposeNote(m[1], semitones) + m[2]
}

// Transpose returns a copy of p moved by semitones. Symbols, notes and the
// key change; Roman numerals do not.
func Transpose(p model.Progression, semitones int) model.Progression {
	res := p
	if p.Key != "" {
		res.Key = TransposeSymbol(p.Key, semitones)
	}
	res.Chords = make([]model.ProgressionChord, len(p.Chords))
	for i, c := range p.Chords {
		moved := c
		if c.Symbol != "" {
			moved.Symbol = TransposeSymbol(c.Symbol, semitones)
		}
		if c.Notes != nil {
			moved.Notes = make([]string, len(c.Notes))
			for j, n := range c.Notes {
				moved.Notes[j] = TransposeNote(n, semitones)
			}
		}
		res.Chords[i] = moved
	}
	return res
}
