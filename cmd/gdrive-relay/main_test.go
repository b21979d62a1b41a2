package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("CREDS_FILE", "env.json")

	f := &flags{}
	cmd := newRootCmd(f)
	require.NoError(t, cmd.ParseFlags([]string{"--port", "9100", "--creds", "flag.json", "--env-file", filepath.Join(t.TempDir(), "missing.env")}))

	cfg := loadConfig(cmd, f)
	assert.Equal(t, "9100", cfg.Port)
	assert.Equal(t, "flag.json", cfg.CredsFile)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CLIENT_ID", "")
	os.Unsetenv("CLIENT_ID")
	os.Unsetenv("PORT")
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("CLIENT_ID=from-dotenv\nPORT=7000\n"), 0o600))

	f := &flags{}
	cmd := newRootCmd(f)
	require.NoError(t, cmd.ParseFlags([]string{"--env-file", envFile}))

	cfg := loadConfig(cmd, f)
	assert.Equal(t, "from-dotenv", cfg.ClientID)
	assert.Equal(t, "7000", cfg.Port)
}

func TestLoadCredentials_MalformedFileFallsBack(t *testing.T) {
	t.Setenv("CLIENT_ID", "client")
	credsFile := filepath.Join(t.TempDir(), "creds.json")
	require.NoError(t, os.WriteFile(credsFile, []byte("not json"), 0o600))

	f := &flags{}
	cmd := newRootCmd(f)
	require.NoError(t, cmd.ParseFlags([]string{"--creds", credsFile, "--env-file", filepath.Join(t.TempDir(), "missing.env")}))

	creds := loadCredentials(loadConfig(cmd, f))
	assert.False(t, creds.HasToken())
	assert.Equal(t, "client", creds.ClientID)
}
