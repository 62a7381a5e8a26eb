package midi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/model"
	gomidi "gitlab.com/gomidi/midi/v2"
)

var ErrNoInputPort = errors.New("no midi input port")

type ListenConfig struct {
	Debounce   time.Duration
	KeyContext string
	Options    []chord.Option
}

// Tracker holds the keys currently pressed. It is safe for concurrent use.
type Tracker struct {
	mu   sync.Mutex
	held map[uint8]bool
}

func NewTracker() *Tracker {
	return &Tracker{held: make(map[uint8]bool)}
}

func (t *Tracker) Press(key uint8) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.held[key] = true
}

func (t *Tracker) Release(key uint8) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.held, key)
}

// Held returns the pressed keys in ascending order.
func (t *Tracker) Held() []uint8 {
	t.mu.Lock()
	defer t.mu.Unlock()
	keys := make([]uint8, 0, len(t.held))
	for k := range t.held {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

// Handle applies a note on/off message and reports whether the held keys
// changed.
func (t *Tracker) Handle(msg gomidi.Message) bool {
	var ch, key, vel uint8
	switch {
	case msg.GetNoteStart(&ch, &key, &vel):
		t.Press(key)
	case msg.GetNoteEnd(&ch, &key):
		t.Release(key)
	default:
		return false
	}
	return true
}

// Event analyzes the held keys.
func (t *Tracker) Event(keyContext string, opts ...chord.Option) (model.LiveEvent, error) {
	held := t.Held()
	keys := make([]int, len(held))
	for i, k := range held {
		keys[i] = int(k)
	}
	candidates, err := chord.AnalyzeKeys(held, keyContext, opts...)
	if err != nil {
		return model.LiveEvent{}, err
	}
	return model.LiveEvent{
		At:         time.Now(),
		Keys:       keys,
		Notes:      chord.NoteNames(held, keyContext),
		Candidates: candidates,
	}, nil
}

// Listen analyzes what is played on input port until ctx is done. onChord is
// called once the held keys have been stable for cfg.Debounce. A MIDI driver
// must be registered by the caller.
func Listen(ctx context.Context, port int, cfg ListenConfig, onChord func(model.LiveEvent)) error {
	in, err := gomidi.InPort(port)
	if err != nil {
		return fmt.Errorf("%w %v: %v", ErrNoInputPort, port, err)
	}
	slog.Info("listening for midi", "port", in.String())

	keyContext := cfg.KeyContext
	if keyContext == "" {
		keyContext = "C"
	}
	tracker := NewTracker()
	debounced := debounce.New(cfg.Debounce)

	stop, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
		if !tracker.Handle(msg) {
			return
		}
		debounced(func() {
			evt, err := tracker.Event(keyContext, cfg.Options...)
			if err != nil {
				slog.Error("could not analyze held keys", "err", err)
				return
			}
			if len(evt.Candidates) > 0 {
				slog.Debug("chord", "symbol", evt.Candidates[0].Symbol, "notes", evt.Notes)
			}
			onChord(evt)
		})
	}, gomidi.UseSysEx())
	if err != nil {
		return fmt.Errorf("could not listen on port %v: %w", port, err)
	}

	<-ctx.Done()
	stop()
	slog.Info("stopped listening for midi", "port", in.String())
	return nil
}
