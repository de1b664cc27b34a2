package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.Equal(t, "quickdeck", cfg.AppName)
	require.Equal(t, "https://github.com/quickdeck/quickdeck.git", cfg.RepoURL)
	require.Equal(t, "quickdeck.sh", cfg.EntryPoint)
	require.Equal(t, "/usr/local/bin", cfg.BinDir)
	require.Equal(t, "/usr/local/bin/quickdeck", cfg.ShortcutPath())
}

func TestLoadEmptyPath(t *testing.T) {
	t.Parallel()

	require.Equal(t, Default(), Load(""))
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	require.Equal(t, Default(), Load(filepath.Join(t.TempDir(), "absent.yaml")))
}

func TestLoadOverrides(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "install.yaml")
	content := "repo_url: https://git.example.com/mirror/quickdeck.git\nbranch: stable\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg := Load(path)
	require.Equal(t, "https://git.example.com/mirror/quickdeck.git", cfg.RepoURL)
	require.Equal(t, "stable", cfg.Branch)
	// Keys absent from the file keep their defaults.
	require.Equal(t, "quickdeck", cfg.AppName)
	require.Equal(t, "quickdeck.sh", cfg.EntryPoint)
}

func TestLoadMalformedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "install.yaml")
	require.NoError(t, os.WriteFile(path, []byte("repo_url: [not: closed"), 0644))

	require.Equal(t, Default(), Load(path))
}

func TestLoadBlanksFallBackToDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "install.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app_name: \"\"\nbin_dir: \"\"\n"), 0644))

	cfg := Load(path)
	require.Equal(t, "quickdeck", cfg.AppName)
	require.Equal(t, "/usr/local/bin", cfg.BinDir)
}
