package logutils

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_writesToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "campusmart.log")

	logger, closer, err := New("info", file)
	require.NoError(t, err)

	logger.Info().Str("component", "test").Msg("hello")
	logger.Debug().Msg("filtered")
	closer()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
	assert.Contains(t, string(data), `"component":"test"`)
	assert.NotContains(t, string(data), "filtered")
}

func TestNew_appends(t *testing.T) {
	file := filepath.Join(t.TempDir(), "campusmart.log")

	for _, msg := range []string{"first", "second"} {
		logger, closer, err := New("debug", file)
		require.NoError(t, err)
		logger.Info().Msg(msg)
		closer()
	}

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first")
	assert.Contains(t, string(data), "second")
}

func TestNew_invalidLevel(t *testing.T) {
	_, closer, err := New("loud", "")
	require.Error(t, err)
	assert.NotNil(t, closer)
}

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, zerolog.WarnLevel)

	logger.Info().Msg("quiet")
	logger.Warn().Msg("loud")

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
	assert.Contains(t, buf.String(), `"time"`)
}
