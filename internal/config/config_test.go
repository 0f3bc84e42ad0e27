package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateHome points the user config directory at a temp dir.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("AppData", filepath.Join(home, "AppData"))
	return home
}

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("db", "", "")
	fs.String("format", "text", "")
	return fs
}

func TestDefaultDatabasePath(t *testing.T) {
	home := isolateHome(t)

	path, err := DefaultDatabasePath()
	require.NoError(t, err)

	assert.Equal(t, DatabaseFile, filepath.Base(path))
	assert.Equal(t, AppName, filepath.Base(filepath.Dir(path)))
	assert.True(t, filepath.IsAbs(path))
	rel, err := filepath.Rel(home, path)
	require.NoError(t, err)
	assert.NotContains(t, rel, "..", "data dir must live under the user's home")
}

func TestLoad_Defaults(t *testing.T) {
	isolateHome(t)

	cfg, err := Load("", nil)
	require.NoError(t, err)

	def, err := Default()
	require.NoError(t, err)
	assert.Equal(t, def, cfg)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.Format)
}

func TestLoad_DataDirConfigFile(t *testing.T) {
	isolateHome(t)

	dir, err := DataDir()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("log_level: debug\nformat: json\n"), 0o644))

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.Format)
}

func TestLoad_ExplicitFile(t *testing.T) {
	isolateHome(t)

	file := filepath.Join(t.TempDir(), "shelf.yaml")
	db := filepath.Join(t.TempDir(), "custom.sqlite")
	require.NoError(t, os.WriteFile(file, []byte("database: "+db+"\n"), 0o644))

	cfg, err := Load(file, nil)
	require.NoError(t, err)
	assert.Equal(t, db, cfg.Database)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	isolateHome(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestLoad_MalformedFile(t *testing.T) {
	isolateHome(t)

	file := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(file, []byte("format: [unclosed\n"), 0o644))

	_, err := Load(file, nil)
	require.Error(t, err)
}

func TestLoad_FlagsOverrideFile(t *testing.T) {
	isolateHome(t)

	file := filepath.Join(t.TempDir(), "shelf.yaml")
	require.NoError(t, os.WriteFile(file, []byte("database: /from/file.sqlite\nformat: json\n"), 0o644))

	flags := testFlags()
	require.NoError(t, flags.Parse([]string{"--db", "/from/flag.sqlite"}))

	cfg, err := Load(file, flags)
	require.NoError(t, err)
	assert.Equal(t, "/from/flag.sqlite", cfg.Database)
	assert.Equal(t, "json", cfg.Format, "unset flag must not override the file")
}

func TestEnsureDir(t *testing.T) {
	base := t.TempDir()
	cfg := &Config{Database: filepath.Join(base, "nested", "dir", DatabaseFile)}

	require.NoError(t, cfg.EnsureDir())

	info, err := os.Stat(filepath.Join(base, "nested", "dir"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
