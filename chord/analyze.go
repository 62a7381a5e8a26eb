package chord

import (
	"math"
	"sort"
	"strings"

	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/pitch"
	"github.com/jsphweid/chordex/util"
)

// MaxResults is how many candidates Analyze keeps by default.
const MaxResults = 7

// scores closer than this count as a tie and fall back to priority
const scoreEpsilon = 0.01

type options struct {
	root    string
	limit   int
	lenient bool
}

type Option func(*options)

// WithRoot only tries root instead of every input note.
func WithRoot(root string) Option {
	return func(o *options) {
		o.root = root
	}
}

// WithLimit keeps at most n candidates; n <= 0 keeps all of them.
func WithLimit(n int) Option {
	return func(o *options) {
		o.limit = n
	}
}

// Lenient resolves unrecognized note names to C instead of failing.
func Lenient() Option {
	return func(o *options) {
		o.lenient = true
	}
}

type inputNote struct {
	name     string
	semitone int
}

// displayName drops the second half of a dual spelling.
func displayName(note string) string {
	note = strings.TrimSpace(note)
	if first, _, found := strings.Cut(note, "/"); found {
		return strings.TrimSpace(first)
	}
	return note
}

func (o options) resolve(note string) (inputNote, error) {
	if o.lenient {
		return inputNote{displayName(note), pitch.NoteToSemitoneLenient(note)}, nil
	}
	s, err := pitch.NoteToSemitone(note)
	if err != nil {
		return inputNote{}, err
	}
	return inputNote{displayName(note), s}, nil
}

func intervalSet(notes []inputNote, root int) []int {
	res := make([]int, 0, len(notes))
	for _, n := range notes {
		res = append(res, util.Mod(n.semitone-root, 12))
	}
	res = util.Uniq(res)
	sort.Ints(res)
	return res
}

// Analyze names the chords the given notes could form. notes[0] is the bass
// note used to label inversions. Every distinct note (by pitch class) is tried
// as a root unless WithRoot is given; candidates come back best first.
//
// Fewer than two distinct notes, or no template fitting, gives an empty
// result. Unrecognized note names fail with pitch.ErrInvalidNote unless
// Lenient is set.
func Analyze(notes []string, opts ...Option) ([]model.ChordCandidate, error) {
	o := options{limit: MaxResults}
	for _, opt := range opts {
		opt(&o)
	}

	var inputs []inputNote
	seen := make(map[int]bool)
	for _, note := range notes {
		n, err := o.resolve(note)
		if err != nil {
			return nil, err
		}
		if seen[n.semitone] {
			continue
		}
		seen[n.semitone] = true
		inputs = append(inputs, n)
	}

	res := []model.ChordCandidate{}
	if len(inputs) < 2 {
		return res, nil
	}
	bass := inputs[0]

	roots := inputs
	if o.root != "" {
		r, err := o.resolve(o.root)
		if err != nil {
			return nil, err
		}
		roots = []inputNote{r}
	}

	for _, root := range roots {
		intervals := intervalSet(inputs, root.semitone)
		isInversion := root.semitone != bass.semitone && seen[root.semitone]
		for _, t := range templates {
			score := Score(intervals, t)
			if score <= 0 {
				continue
			}
			res = append(res, newCandidate(root, bass, t, score, isInversion))
		}
	}

	RankSort(res)
	if o.limit > 0 && len(res) > o.limit {
		res = res[:o.limit]
	}
	return res, nil
}

func newCandidate(root, bass inputNote, t Template, score float64, isInversion bool) model.ChordCandidate {
	notes := make([]string, len(t.Intervals))
	for i, interval := range t.Intervals {
		notes[i] = pitch.SemitoneToNote(root.semitone+interval, root.name)
	}
	symbol := root.name + t.Symbol
	if isInversion {
		symbol += "/" + bass.name
	}
	return model.ChordCandidate{
		Symbol:      symbol,
		Score:       score,
		Priority:    t.Priority,
		Type:        t.Type,
		Template:    t.Name,
		Intervals:   append([]int(nil), t.Intervals...),
		Notes:       notes,
		Root:        root.name,
		BassNote:    bass.name,
		IsInversion: isInversion,
	}
}

// RankSort orders candidates by score, breaking near ties by priority. Equal
// candidates keep their relative order.
func RankSort(candidates []model.ChordCandidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if math.Abs(a.Score-b.Score) < scoreEpsilon {
			return a.Priority < b.Priority
		}
		return a.Score > b.Score
	})
}
