package progression

import (
	"regexp"
	"strconv"

	"github.com/jsphweid/chordex/scale"
)

var accidentals = regexp.MustCompile(`[♯#♭b]`)

func letter(note string) string {
	return accidentals.ReplaceAllString(note, "")
}

// NashvilleNumbers is "1".."n" for the scale of key.
func NashvilleNumbers(key, scaleType string) ([]string, error) {
	notes, err := scale.ForKey(key, scaleType)
	if err != nil {
		return nil, err
	}
	res := make([]string, len(notes))
	for i := range notes {
		res[i] = strconv.Itoa(i + 1)
	}
	return res, nil
}

// NashvilleNumber finds chordRoot in scaleNotes by letter, ignoring
// accidentals, and returns its 1-based position or "?".
func NashvilleNumber(scaleNotes []string, chordRoot string) string {
	want := letter(chordRoot)
	for i, n := range scaleNotes {
		if letter(n) == want {
			return strconv.Itoa(i + 1)
		}
	}
	return "?"
}

// NashvilleSymbol rewrites a chord symbol with its number, keeping the
// quality suffix: "Am7" in C major is "6m7".
func NashvilleSymbol(scaleNotes []string, symbol string) string {
	m := rootRegex.FindStringSubmatch(symbol)
	if m == nil {
		return "?"
	}
	return NashvilleNumber(scaleNotes, m[1]) + m[2]
}
