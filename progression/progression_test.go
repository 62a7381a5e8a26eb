package progression

import (
	"testing"

	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/pitch"
	"github.com/jsphweid/chordex/scale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransposeNote(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("D", TransposeNote("C", 2))
	assert.Equal("C", TransposeNote("B", 1))
	assert.Equal("B", TransposeNote("C", -1))
	assert.Equal("D♯", TransposeNote("D♭", 2))
	assert.Equal("D♯", TransposeNote("Eb", 0))
	assert.Equal("F♯", TransposeNote("C", 30))
	assert.Equal("H", TransposeNote("H", 3))
}

func TestTransposeSymbol(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("Cm7", TransposeSymbol("Am7", 3))
	assert.Equal("F♯maj7", TransposeSymbol("Fmaj7", 1))
	// only the leading root moves
	assert.Equal("D/E", TransposeSymbol("C/E", 2))
	assert.Equal("N.C.", TransposeSymbol("N.C.", 2))
}

func TestTransposeKeepsShape(t *testing.T) {
	p := model.Progression{
		Key:   "C",
		Tempo: 100,
		Chords: []model.ProgressionChord{
			{Symbol: "C", RomanNumeral: "I", Notes: []string{"C", "E", "G"}},
			{Symbol: "Am7", RomanNumeral: "vi7", Notes: []string{"A", "C", "E", "G"}},
			{Symbol: "G7sus4", RomanNumeral: "V"},
		},
	}
	moved := Transpose(p, 2)

	assert := assert.New(t)
	require.Len(t, moved.Chords, len(p.Chords))
	assert.Equal("D", moved.Key)
	assert.Equal(100, moved.Tempo)
	assert.Equal("D", moved.Chords[0].Symbol)
	assert.Equal("Bm7", moved.Chords[1].Symbol)
	assert.Equal("A7sus4", moved.Chords[2].Symbol)
	assert.Equal([]string{"B", "D", "F♯", "A"}, moved.Chords[1].Notes)
	assert.Equal("vi7", moved.Chords[1].RomanNumeral)
	assert.Nil(moved.Chords[2].Notes)

	// input untouched
	assert.Equal("C", p.Key)
	assert.Equal("Am7", p.Chords[1].Symbol)
	assert.Equal([]string{"A", "C", "E", "G"}, p.Chords[1].Notes)
}

func TestTransposeRoundTrip(t *testing.T) {
	p := model.Progression{Chords: []model.ProgressionChord{{Symbol: "E♭m"}, {Symbol: "G♯7"}}}
	back := Transpose(Transpose(p, 5), -5)
	assert.Equal(t, "D♯m", back.Chords[0].Symbol)
	assert.Equal(t, "G♯7", back.Chords[1].Symbol)
}

func TestNashvilleNumbers(t *testing.T) {
	nums, err := NashvilleNumbers("C", "major")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7"}, nums)

	nums, err = NashvilleNumbers("C", "majorPentatonic")
	require.NoError(t, err)
	assert.Len(t, nums, 5)

	_, err = NashvilleNumbers("Q", "major")
	assert.ErrorIs(t, err, pitch.ErrInvalidNote)
}

func TestNashvilleNumber(t *testing.T) {
	cMajor := []string{"C", "D", "E", "F", "G", "A", "B"}
	fMajor := []string{"F", "G", "A", "B♭", "C", "D", "E"}

	assert := assert.New(t)
	assert.Equal("5", NashvilleNumber(cMajor, "G"))
	assert.Equal("4", NashvilleNumber(fMajor, "Bb"))
	// accidentals are ignored when matching
	assert.Equal("4", NashvilleNumber(cMajor, "F♯"))
	assert.Equal("?", NashvilleNumber(cMajor, "X"))
	assert.Equal("?", NashvilleNumber([]string{"C", "D", "E", "G", "A"}, "F"))
}

func TestNashvilleSymbol(t *testing.T) {
	cMajor := []string{"C", "D", "E", "F", "G", "A", "B"}
	assert.Equal(t, "6m7", NashvilleSymbol(cMajor, "Am7"))
	assert.Equal(t, "1", NashvilleSymbol(cMajor, "C"))
	assert.Equal(t, "?", NashvilleSymbol(cMajor, "N.C."))
}

func TestFromDegrees(t *testing.T) {
	p, err := FromDegrees("C", "major", []int{1, 5, 6, 4}, false)
	require.NoError(t, err)

	assert := assert.New(t)
	require.Len(t, p.Chords, 4)
	assert.Equal("C", p.Key)
	assert.Equal(120, p.Tempo)
	assert.Equal(4, p.BeatsPerMeasure)
	assert.Equal("G", p.Chords[1].Symbol)
	assert.Equal("V", p.Chords[1].RomanNumeral)
	assert.Equal("Am", p.Chords[2].Symbol)
	assert.Equal([]string{"F", "A", "C"}, p.Chords[3].Notes)

	p, err = FromDegrees("C", "major", []int{2, 5, 1}, true)
	require.NoError(t, err)
	assert.Equal("Dm7", p.Chords[0].Symbol)
	assert.Equal("G7", p.Chords[1].Symbol)
	assert.Equal("Cmaj7", p.Chords[2].Symbol)

	_, err = FromDegrees("C", "major", []int{8}, false)
	assert.ErrorIs(err, ErrBadDegree)
	_, err = FromDegrees("C", "major", []int{0}, false)
	assert.ErrorIs(err, ErrBadDegree)

	_, err = FromDegrees("C", "bogus", []int{1}, false)
	assert.ErrorIs(err, scale.ErrUnknownType)
	assert.NotErrorIs(err, ErrBadDegree)
}

func TestFromSymbols(t *testing.T) {
	p, err := FromSymbols("C", []string{"Cmaj7", "Am", "F/C"})
	require.NoError(t, err)
	require.Len(t, p.Chords, 3)
	assert.Equal(t, []string{"C", "E", "G", "B"}, p.Chords[0].Notes)
	assert.Equal(t, []string{"A", "C", "E"}, p.Chords[1].Notes)
	assert.Equal(t, []string{"C", "F", "A"}, p.Chords[2].Notes)

	_, err = FromSymbols("C", []string{"Cwhatever"})
	assert.Error(t, err)
}
