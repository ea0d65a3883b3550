package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configVars = []string{"OPERATOR_GUI_COMMAND", "OPERATOR_GUI_PAGE", "OPERATOR_GUI_LOG_LEVEL"}

// clearConfigEnv unsets every config variable for the test; t.Setenv
// restores the previous values afterwards.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, k := range configVars {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "operator-cli", cfg.Command)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, NewPaths(InstallRoot()).Page, cfg.PagePath)
}

func TestLoadConfig_Env(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("OPERATOR_GUI_COMMAND", "/opt/bin/opctl")
	t.Setenv("OPERATOR_GUI_PAGE", "/srv/ui/index.html")
	t.Setenv("OPERATOR_GUI_LOG_LEVEL", "debug")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "/opt/bin/opctl", cfg.Command)
	assert.Equal(t, "/srv/ui/index.html", cfg.PagePath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.Port, "port is never taken from the environment")
}

func TestLoadConfig_DotEnvDoesNotOverride(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("OPERATOR_GUI_LOG_LEVEL", "warn")

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(
		"OPERATOR_GUI_COMMAND=/usr/libexec/operator-cli\nOPERATOR_GUI_LOG_LEVEL=debug\n"), 0644))

	cfg, err := LoadConfig(envFile)
	require.NoError(t, err)
	assert.Equal(t, "/usr/libexec/operator-cli", cfg.Command)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfig_MissingDotEnv(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
	assert.Equal(t, "operator-cli", cfg.Command)
}
