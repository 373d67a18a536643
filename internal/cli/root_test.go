package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags clears the package-level flag state the root command binds to.
func resetFlags(t *testing.T) {
	t.Helper()
	cfgFile = ""
	logLevel = ""
	t.Setenv("BOTLINE_LOG_LEVEL", "")
	t.Cleanup(func() {
		cfgFile = ""
		logLevel = ""
	})
}

func writeHomeConfig(t *testing.T, content string) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("BOTLINE_HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(content), 0o600))
}

func TestLogLevelFromConfigFile(t *testing.T) {
	resetFlags(t)
	writeHomeConfig(t, `
logging:
  level: debug
`)

	cmd := newRootCmd()
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, zerolog.DebugLevel, log.Zerolog().GetLevel())
}

func TestLogLevelFlagOverridesConfig(t *testing.T) {
	resetFlags(t)
	writeHomeConfig(t, `
logging:
  level: debug
`)

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--log-level", "error", "version"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, zerolog.ErrorLevel, log.Zerolog().GetLevel())
}

func TestLogLevelDefaultsToInfo(t *testing.T) {
	resetFlags(t)
	t.Setenv("BOTLINE_HOME", t.TempDir())

	cmd := newRootCmd()
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, zerolog.InfoLevel, log.Zerolog().GetLevel())
}
