package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/online-bookstore/internal/infrastructure/config"
)

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	_, closeFn, err := New(config.LogConfig{Level: "warn", Format: "json", Output: path})
	require.NoError(t, err)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	log.Info().Msg("ignored")
	log.Warn().Str("book", "Go").Msg("kept")
	closeFn()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "ignored")
	assert.Contains(t, string(data), `"book":"Go"`)
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	l, closeFn, err := New(config.LogConfig{Level: "verbose", Output: "stderr"})
	require.NoError(t, err)
	defer closeFn()
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	assert.Equal(t, zerolog.InfoLevel, l.GetLevel())
}
