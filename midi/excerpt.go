package midi

import (
	"sort"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Excerpt copies s from fromMicros on, keeping at most maxNotes note on/off
// events per track. Other events (tempo, meter, program) are kept and pulled
// to the start. Notes still held at the cut are released.
func Excerpt(s *smf.SMF, fromMicros int64, maxNotes int) *smf.SMF {
	res := smf.New()
	res.TimeFormat = s.TimeFormat

	for _, track := range s.Tracks {
		var newTrack smf.Track
		var absTicks int64
		var numNotes int
		started := false
		held := make(map[uint8]uint8)

		// the first event past the cut starts the excerpt
		add := func(evt smf.Event) {
			delta := evt.Delta
			if !started {
				delta = 0
			}
			started = true
			newTrack.Add(delta, evt.Message)
		}

	TrackEventLoop:
		for _, evt := range track {
			absTicks += int64(evt.Delta)
			before := s.TimeAt(absTicks) < fromMicros
			var ch, key, vel uint8
			switch {
			case evt.Message.Is(smf.MetaEndOfTrackMsg):
				break TrackEventLoop
			case evt.Message.GetNoteStart(&ch, &key, &vel):
				if before {
					continue
				}
				add(evt)
				held[key] = ch
				numNotes++
			case evt.Message.GetNoteEnd(&ch, &key):
				if before {
					continue
				}
				add(evt)
				delete(held, key)
				numNotes++
			case before:
				newTrack.Add(0, evt.Message)
			default:
				add(evt)
			}
			if maxNotes > 0 && numNotes >= maxNotes {
				break
			}
		}

		keys := make([]uint8, 0, len(held))
		for k := range held {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			return keys[i] < keys[j]
		})
		for i, k := range keys {
			delta := uint32(0)
			if i == 0 {
				delta = ticksPerQuarter
			}
			newTrack.Add(delta, gomidi.NoteOff(held[k], k))
		}
		newTrack.Close(0)
		res.Tracks = append(res.Tracks, newTrack)
	}
	return res
}
