package constants

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultPort        = 8080
	DefaultDebounce    = 80 * time.Millisecond
	DefaultMaxResults  = 7
	DefaultTempo       = 120
	DefaultBeats       = 4
	DefaultVelocity    = 90
	DefaultFretCount   = 24
	DefaultMidiChannel = 0
)

func GetPort() int {
	return getInt("CHORDEX_PORT", DefaultPort)
}

func GetMidiPort() int {
	return getInt("CHORDEX_MIDI_PORT", 0)
}

func GetCorsOrigins() []string {
	raw := os.Getenv("CHORDEX_CORS_ORIGINS")
	if raw == "" {
		return []string{"*"}
	}
	var res []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			res = append(res, origin)
		}
	}
	return res
}

func GetDebounce() time.Duration {
	ms := getInt("CHORDEX_DEBOUNCE_MS", int(DefaultDebounce/time.Millisecond))
	return time.Duration(ms) * time.Millisecond
}

// GetLenientNotes reports whether unknown note names should silently resolve
// to C instead of failing.
func GetLenientNotes() bool {
	v, err := strconv.ParseBool(os.Getenv("CHORDEX_LENIENT_NOTES"))
	return err == nil && v
}

func GetLogLevel() slog.Level {
	switch strings.ToLower(os.Getenv("CHORDEX_LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func getInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
