package chord

import "github.com/jsphweid/chordex/util"

const (
	extraNotePenalty   = 0.1
	missingNotePenalty = 0.15
	exactMatchBonus    = 0.2
	maxScore           = 1.0
)

// Score rates how well a set of distinct intervals (relative to a candidate
// root) fits t. Zero means the template does not qualify.
func Score(intervals []int, t Template) float64 {
	present := make(map[int]bool, len(intervals))
	for _, i := range intervals {
		present[i] = true
	}

	for _, excluded := range t.ExcludeIf {
		if present[excluded] {
			return 0
		}
	}

	var matchCount int
	for _, required := range t.Intervals {
		if present[required] {
			matchCount++
		}
	}
	completeness := float64(matchCount) / float64(len(t.Intervals))
	if completeness < t.CompletenessThreshold {
		return 0
	}

	extraNotes := len(present) - len(t.Intervals)
	missingNotes := len(t.Intervals) - matchCount

	score := completeness -
		util.Max(0, float64(extraNotes)*extraNotePenalty) -
		float64(missingNotes)*missingNotePenalty
	if missingNotes == 0 && extraNotes == 0 {
		score += exactMatchBonus
	}

	return util.Min(maxScore, util.Max(0, score))
}
