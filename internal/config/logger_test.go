package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	uu := map[string]struct {
		level string
		want  slog.Level
		err   bool
	}{
		"debug": {level: "debug", want: slog.LevelDebug},
		"upper": {level: "WARN", want: slog.LevelWarn},
		"space": {level: " error ", want: slog.LevelError},
		"bad":   {level: "loud", want: slog.LevelInfo, err: true},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			l, err := ParseLevel(u.level)
			if u.err {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, u.want, l)
		})
	}
}

func TestNewLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tabula.log")

	log, closer, err := NewLogger("warn", path)
	require.NoError(t, err)
	log.Info("skipped")
	log.Warn("kept", "story", "reddit")
	require.NoError(t, closer.Close())

	bb, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(bb), "skipped")
	assert.Contains(t, string(bb), "msg=kept story=reddit")
}

func TestNewLogger_Discard(t *testing.T) {
	log, closer, err := NewLogger("info", "")
	require.NoError(t, err)
	log.Info("nowhere")
	assert.NoError(t, closer.Close())

	_, _, err = NewLogger("loud", "")
	assert.Error(t, err)
}
