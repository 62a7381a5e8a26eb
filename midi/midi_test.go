package midi

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/pitch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func progression() model.Progression {
	return model.Progression{
		Key:   "C",
		Tempo: 120,
		Chords: []model.ProgressionChord{
			{Symbol: "C", Notes: []string{"C", "E", "G"}},
			{Symbol: "Am"},
			{Symbol: "G7", Notes: []string{"G", "B", "D", "F"}},
		},
	}
}

// reparse writes s out and reads it back, the way files come in
func reparse(t *testing.T, s *smf.SMF) *smf.SMF {
	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	require.NoError(t, err)
	parsed, err := smf.ReadFrom(&buf)
	require.NoError(t, err)
	return parsed
}

func TestVoice(t *testing.T) {
	keys, err := Voice([]string{"C", "E", "G"}, 3)
	require.NoError(t, err)
	assert.Equal(t, []uint8{48, 52, 55}, keys)

	// members below the root move up an octave
	keys, err = Voice([]string{"G", "B", "D", "F"}, 3)
	require.NoError(t, err)
	assert.Equal(t, []uint8{55, 59, 62, 65}, keys)

	keys, err = Voice([]string{"E", "C", "G"}, 3)
	require.NoError(t, err)
	assert.Equal(t, []uint8{52, 60, 67}, keys)

	_, err = Voice([]string{"C", "X"}, 3)
	assert.ErrorIs(t, err, pitch.ErrInvalidNote)

	_, err = Voice([]string{"G", "C"}, 9)
	assert.ErrorIs(t, err, pitch.ErrOutOfRange)
}

func TestWriteProgressionRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteProgression(&buf, progression(), DefaultExportOptions()))

	s, err := smf.ReadFrom(&buf)
	require.NoError(t, err)

	chords, err := chord.GetChords(s)
	require.NoError(t, err)
	require.Len(t, chords, 3)

	assert := assert.New(t)
	// 4/4 at 120 bpm is two seconds per measure
	assert.Equal(model.ChordEvent{Offset: 0, Notes: []uint8{48, 52, 55}}, chords[0])
	assert.Equal(model.ChordEvent{Offset: 2000, Notes: []uint8{57, 60, 64}}, chords[1])
	assert.Equal(model.ChordEvent{Offset: 4000, Notes: []uint8{55, 59, 62, 65}}, chords[2])

	res, err := chord.AnalyzeKeys(chords[2].Notes, "C")
	require.NoError(t, err)
	assert.Equal("G7", res[0].Symbol)
}

func TestRestMeasures(t *testing.T) {
	p := model.Progression{
		Tempo:           60,
		BeatsPerMeasure: 3,
		Chords: []model.ProgressionChord{
			{},
			{Notes: []string{"F", "A", "C"}},
		},
	}
	s, err := BuildSMF(p, DefaultExportOptions())
	require.NoError(t, err)

	chords, err := chord.GetChords(reparse(t, s))
	require.NoError(t, err)
	require.Len(t, chords, 1)
	assert.Equal(t, uint32(3000), chords[0].Offset)
}

func TestBuildSMFReportsBadChords(t *testing.T) {
	p := model.Progression{Chords: []model.ProgressionChord{{Symbol: "Cwhat"}}}
	_, err := BuildSMF(p, DefaultExportOptions())
	assert.ErrorIs(t, err, chord.ErrUnknownTemplate)
}

func TestWriteAndReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.mid")
	require.NoError(t, WriteProgressionFile(path, progression(), DefaultExportOptions()))

	s, err := ReadMidiFile(path)
	require.NoError(t, err)
	assert.Len(t, s.Tracks, 1)
}

func TestReadMidiFileErrors(t *testing.T) {
	_, err := ReadMidiFile(filepath.Join(t.TempDir(), "missing.mid"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	junk := filepath.Join(t.TempDir(), "junk.mid")
	require.NoError(t, os.WriteFile(junk, []byte("not a midi file"), 0o644))
	_, err = ReadMidiFile(junk)
	assert.Error(t, err)
}

func TestTracker(t *testing.T) {
	tr := NewTracker()
	assert := assert.New(t)

	assert.True(tr.Handle(gomidi.NoteOn(0, 67, 100)))
	assert.True(tr.Handle(gomidi.NoteOn(0, 60, 100)))
	assert.True(tr.Handle(gomidi.NoteOn(0, 64, 100)))
	assert.False(tr.Handle(gomidi.ControlChange(0, 64, 127)))
	assert.Equal([]uint8{60, 64, 67}, tr.Held())

	evt, err := tr.Event("C")
	require.NoError(t, err)
	assert.Equal([]int{60, 64, 67}, evt.Keys)
	assert.Equal([]string{"C", "E", "G"}, evt.Notes)
	assert.Equal("C", evt.Candidates[0].Symbol)

	// note on with zero velocity ends the note
	assert.True(tr.Handle(gomidi.NoteOn(0, 60, 0)))
	assert.True(tr.Handle(gomidi.NoteOff(0, 64)))
	assert.Equal([]uint8{67}, tr.Held())

	evt, err = tr.Event("C")
	require.NoError(t, err)
	assert.Empty(evt.Candidates)
}

func TestExcerpt(t *testing.T) {
	s, err := BuildSMF(progression(), DefaultExportOptions())
	require.NoError(t, err)

	// from the second measure on
	chords, err := chord.GetChords(reparse(t, Excerpt(reparse(t, s), 2_000_000, 0)))
	require.NoError(t, err)
	require.Len(t, chords, 2)
	assert.Equal(t, model.ChordEvent{Offset: 0, Notes: []uint8{57, 60, 64}}, chords[0])
	assert.Equal(t, uint32(2000), chords[1].Offset)
}

func TestExcerptReleasesHeldNotes(t *testing.T) {
	s, err := BuildSMF(progression(), DefaultExportOptions())
	require.NoError(t, err)

	// three note offs of C then the three note ons of Am
	parsed := reparse(t, Excerpt(reparse(t, s), 2_000_000, 6))

	chords, err := chord.GetChords(parsed)
	require.NoError(t, err)
	require.Len(t, chords, 1)
	assert.Equal(t, []uint8{57, 60, 64}, chords[0].Notes)

	var ons, offs int
	for _, evt := range parsed.Tracks[0] {
		var ch, key, vel uint8
		switch {
		case evt.Message.GetNoteStart(&ch, &key, &vel):
			ons++
		case evt.Message.GetNoteEnd(&ch, &key):
			offs++
		}
	}
	assert.Equal(t, 3, ons)
	assert.Equal(t, 6, offs)
}
