package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadConfigWithoutEnvFile(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DB_HOST", "db.internal")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "db/migrations", cfg.DB.MigrationsPath)
	assert.Equal(t, "db.internal", cfg.DB.Host)
}

func TestLoadConfigReadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	env := "APP_PORT=9090\nDB_NAME=clinic\nAUTH_SECRET=s3cret\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "clinic", cfg.DB.Name)
	assert.Equal(t, "s3cret", cfg.Auth.Secret)
}
