package midi

import (
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/constants"
	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/pitch"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const ticksPerQuarter = 960

type ExportOptions struct {
	// octave of every chord's lowest note, C4 = 60
	Octave   int
	Velocity uint8
	Channel  uint8
}

func DefaultExportOptions() ExportOptions {
	return ExportOptions{
		Octave:   3,
		Velocity: constants.DefaultVelocity,
		Channel:  constants.DefaultMidiChannel,
	}
}

// Voice turns note names into ascending MIDI keys: the first note sits in
// octave and every later one is the next key above the previous.
func Voice(notes []string, octave int) ([]uint8, error) {
	res := make([]uint8, 0, len(notes))
	for _, n := range notes {
		key, err := pitch.ToMIDI(n, octave)
		if err != nil {
			return nil, err
		}
		k := int(key)
		if len(res) > 0 {
			for k <= int(res[len(res)-1]) {
				k += 12
			}
		}
		if k > 127 {
			return nil, fmt.Errorf("%w: %v is above the MIDI range", pitch.ErrOutOfRange, n)
		}
		res = append(res, uint8(k))
	}
	return res, nil
}

func chordNotes(c model.ProgressionChord) ([]string, error) {
	if len(c.Notes) > 0 || c.Symbol == "" {
		return c.Notes, nil
	}
	return chord.SpellSymbol(c.Symbol)
}

// BuildSMF renders p as a single track: tempo and meter first, then every
// chord held for one measure. Chords without notes are spelled from their
// symbol; a chord with neither is a measure of rest.
func BuildSMF(p model.Progression, opts ExportOptions) (*smf.SMF, error) {
	tempo := p.Tempo
	if tempo <= 0 {
		tempo = constants.DefaultTempo
	}
	beats := p.BeatsPerMeasure
	if beats <= 0 {
		beats = constants.DefaultBeats
	}
	measure := uint32(beats * ticksPerQuarter)

	var tr smf.Track
	tr.Add(0, smf.MetaMeter(uint8(beats), 4))
	tr.Add(0, smf.MetaTempo(float64(tempo)))

	var rest uint32
	for i, c := range p.Chords {
		notes, err := chordNotes(c)
		if err != nil {
			return nil, fmt.Errorf("chord %v: %w", i+1, err)
		}
		keys, err := Voice(notes, opts.Octave)
		if err != nil {
			return nil, fmt.Errorf("chord %v: %w", i+1, err)
		}
		if len(keys) == 0 {
			rest += measure
			continue
		}

		for j, k := range keys {
			delta := uint32(0)
			if j == 0 {
				delta = rest
			}
			tr.Add(delta, gomidi.NoteOn(opts.Channel, k, opts.Velocity))
		}
		for j, k := range keys {
			delta := uint32(0)
			if j == 0 {
				delta = measure
			}
			tr.Add(delta, gomidi.NoteOff(opts.Channel, k))
		}
		rest = 0
	}
	tr.Close(rest)

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(ticksPerQuarter)
	if err := s.Add(tr); err != nil {
		return nil, err
	}
	return s, nil
}

func WriteProgression(w io.Writer, p model.Progression, opts ExportOptions) error {
	s, err := BuildSMF(p, opts)
	if err != nil {
		return err
	}
	_, err = s.WriteTo(w)
	return err
}

func WriteProgressionFile(path string, p model.Progression, opts ExportOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %v: %w", path, err)
	}
	defer f.Close()

	if err := WriteProgression(f, p, opts); err != nil {
		return err
	}
	return f.Close()
}
