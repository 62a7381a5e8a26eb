package constants

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	t.Setenv("CHORDEX_PORT", "")
	t.Setenv("CHORDEX_DEBOUNCE_MS", "")
	t.Setenv("CHORDEX_CORS_ORIGINS", "")
	t.Setenv("CHORDEX_LENIENT_NOTES", "")
	t.Setenv("CHORDEX_LOG_LEVEL", "")

	assert := assert.New(t)
	assert.Equal(DefaultPort, GetPort())
	assert.Equal(DefaultDebounce, GetDebounce())
	assert.Equal([]string{"*"}, GetCorsOrigins())
	assert.False(GetLenientNotes())
	assert.Equal(slog.LevelInfo, GetLogLevel())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CHORDEX_PORT", "9000")
	t.Setenv("CHORDEX_DEBOUNCE_MS", "25")
	t.Setenv("CHORDEX_CORS_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("CHORDEX_LENIENT_NOTES", "true")
	t.Setenv("CHORDEX_LOG_LEVEL", "DEBUG")

	assert := assert.New(t)
	assert.Equal(9000, GetPort())
	assert.Equal(25*time.Millisecond, GetDebounce())
	assert.Equal([]string{"http://a.test", "http://b.test"}, GetCorsOrigins())
	assert.True(GetLenientNotes())
	assert.Equal(slog.LevelDebug, GetLogLevel())
}

func TestBadIntFallsBack(t *testing.T) {
	t.Setenv("CHORDEX_PORT", "eighty")
	assert.Equal(t, DefaultPort, GetPort())
}
