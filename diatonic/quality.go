package diatonic

import "github.com/jsphweid/chordex/pitch"

func intervalsFrom(root string, notes ...string) ([]int, error) {
	res := make([]int, len(notes))
	for i, n := range notes {
		interval, err := pitch.Interval(root, n)
		if err != nil {
			return nil, err
		}
		res[i] = interval
	}
	return res, nil
}

func triadSuffix(third, fifth int) string {
	switch {
	case third == 4 && fifth == 7:
		return ""
	case third == 3 && fifth == 7:
		return "m"
	case third == 3 && fifth == 6:
		return "°"
	case third == 4 && fifth == 8:
		return "+"
	}
	// anything else reads as major
	return ""
}

// TriadSymbol names a triad from the semitones between its members.
func TriadSymbol(root, third, fifth string) (string, error) {
	i, err := intervalsFrom(root, third, fifth)
	if err != nil {
		return "", err
	}
	return root + triadSuffix(i[0], i[1]), nil
}

// SeventhSymbol layers the seventh's interval on top of the triad quality.
func SeventhSymbol(root, third, fifth, seventh string) (string, error) {
	i, err := intervalsFrom(root, third, fifth, seventh)
	if err != nil {
		return "", err
	}
	triad := triadSuffix(i[0], i[1])
	switch i[2] {
	case 11:
		switch triad {
		case "":
			return root + "maj7", nil
		case "m":
			return root + "mMaj7", nil
		}
	case 10:
		switch triad {
		case "":
			return root + "7", nil
		case "m":
			return root + "m7", nil
		case "°":
			return root + "m7♭5", nil
		}
	case 9:
		return root + "°7", nil
	}
	return root + triad + "7", nil
}
