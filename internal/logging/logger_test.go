package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToGivenWriter(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info")
	require.NotNil(t, log)

	log.Info().Str("k", "v").Msg("test message")
	assert.Contains(t, buf.String(), "test message")
	assert.Contains(t, buf.String(), `"k":"v"`)
}

func TestNewNilWriterDefaultsToStderr(t *testing.T) {
	// nil writer should not panic; it falls back to a console writer
	log := New(nil, "info")
	require.NotNil(t, log)
}

func TestSubTagsSubsystem(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "debug")

	log.Sub("stream").Info().Msg("sub message")
	assert.Contains(t, buf.String(), "sub message")
	assert.Contains(t, buf.String(), "stream")

	buf.Reset()
	log.Sub("session").Sub("prompt").Info().Msg("deep")
	assert.Contains(t, buf.String(), "prompt")
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "warn")

	log.Debug().Msg("debug msg")
	log.Info().Msg("info msg")
	assert.Empty(t, buf.String(), "debug and info should be filtered at warn level")

	log.Warn().Msg("warn msg")
	log.Error().Msg("error msg")
	assert.Contains(t, buf.String(), "warn msg")
	assert.Contains(t, buf.String(), "error msg")
}

func TestSilentDisablesEverything(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "silent")

	log.Debug().Msg("x")
	log.Info().Msg("x")
	log.Warn().Msg("x")
	log.Error().Msg("x")
	assert.Empty(t, buf.String())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"silent", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"unknown", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.input))
		})
	}
}
