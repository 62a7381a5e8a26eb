package chord

import (
	"fmt"
	"sort"

	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/pitch"
	"github.com/jsphweid/chordex/util"
	"gitlab.com/gomidi/midi/v2/smf"
)

type reducedEvent struct {
	// microseconds
	Offset    int64
	IsNoteOff bool
	Note      uint8
}

// CreateChordKey is a canonical "60-64-67" key for a set of MIDI keys. The
// input is left untouched.
func CreateChordKey(notes []uint8) string {
	sorted := append([]uint8(nil), notes...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})
	var res string
	for i, note := range sorted {
		res += fmt.Sprintf("%v", note)
		if i < len(sorted)-1 {
			res += "-"
		}
	}
	return res
}

func getChord(pressed map[uint8]int64, offset int64) model.ChordEvent {
	notes := util.GetKeys(pressed)
	sort.Slice(notes, func(i, j int) bool {
		return notes[i] < notes[j]
	})

	// millis
	return model.ChordEvent{Offset: uint32(offset / 1000), Notes: notes}
}

// GetChords returns the keys sounding after every note on/off timestamp of s,
// in time order. Empty snapshots are dropped.
func GetChords(s *smf.SMF) (chords []model.ChordEvent, err error) {
	// gomidi can panic on malformed tracks
	defer func() {
		if r := recover(); r != nil {
			chords = nil
			err = fmt.Errorf("could not extract chords: %v", r)
		}
	}()

	var reducedEvents []reducedEvent
	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, reducedEvent{
					Offset:    s.TimeAt(absTicks),
					IsNoteOff: velocity == 0,
					Note:      key,
				})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, reducedEvent{
					Offset:    s.TimeAt(absTicks),
					IsNoteOff: true,
					Note:      key,
				})
			}
		}
	}

	// prioritize smaller offset values then note off
	sort.SliceStable(reducedEvents, func(i, j int) bool {
		if reducedEvents[i].Offset != reducedEvents[j].Offset {
			return reducedEvents[i].Offset < reducedEvents[j].Offset
		}
		return reducedEvents[i].IsNoteOff && !reducedEvents[j].IsNoteOff
	})

	timestampToChords := make(map[int64]model.ChordEvent)
	pressed := make(map[uint8]int64)
	for _, evt := range reducedEvents {
		if evt.IsNoteOff {
			delete(pressed, evt.Note)
		} else {
			pressed[evt.Note] = evt.Offset
		}
		timestampToChords[evt.Offset] = getChord(pressed, evt.Offset)
	}

	for _, offset := range util.GetKeysSorted(timestampToChords) {
		c := timestampToChords[offset]
		if len(c.Notes) > 0 {
			chords = append(chords, c)
		}
	}
	return chords, nil
}

// NoteNames spells MIDI keys as distinct note names from lowest to highest,
// so the lowest key becomes the bass note.
func NoteNames(keys []uint8, keyContext string) []string {
	sorted := append([]uint8(nil), keys...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})
	names := make([]string, 0, len(sorted))
	for _, k := range sorted {
		names = append(names, pitch.FromMIDI(k, keyContext))
	}
	return util.Uniq(names)
}

// AnalyzeKeys is Analyze for a set of held MIDI keys.
func AnalyzeKeys(keys []uint8, keyContext string, opts ...Option) ([]model.ChordCandidate, error) {
	return Analyze(NoteNames(keys, keyContext), opts...)
}
