package pitch

import "strings"

const (
	Major = "major"
	Minor = "minor"
)

// Key is a tonic plus a major/minor flag. Minor keys are written with a
// trailing "m" ("Am", "F♯m").
type Key struct {
	Name     string
	Root     string
	Semitone int
	Minor    bool
}

// ParseKey strips the minor marker and resolves the root. For dual spellings
// such as "D♯m/E♭m" the first spelling wins.
func ParseKey(name string) (Key, error) {
	clean := strings.TrimSpace(name)
	if first, _, found := strings.Cut(clean, "/"); found {
		clean = strings.TrimSpace(first)
	}
	root := clean
	minor := false
	if len(clean) > 1 && strings.HasSuffix(clean, "m") {
		root = strings.TrimSuffix(clean, "m")
		minor = true
	}
	s, err := NoteToSemitone(root)
	if err != nil {
		return Key{}, err
	}
	return Key{Name: name, Root: root, Semitone: s, Minor: minor}, nil
}

// IsMinorKey reports whether name carries the minor marker.
func IsMinorKey(name string) bool {
	k, err := ParseKey(name)
	return err == nil && k.Minor
}

func (k Key) Mode() string {
	if k.Minor {
		return Minor
	}
	return Major
}

func (k Key) String() string {
	if k.Minor {
		return k.Root + "m"
	}
	return k.Root
}
