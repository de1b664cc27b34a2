package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"quickdeck-installer/internal/logger"
)

// Install describes where quickdeck comes from and where its global shortcut
// lands. Everything here has a hard-coded default; a config file only exists
// so that forks and mirrors can point the installer elsewhere.
type Install struct {
	AppName    string `yaml:"app_name"`    // Command name, also the global shortcut name
	RepoURL    string `yaml:"repo_url"`    // Git repository the source tree is cloned from
	Branch     string `yaml:"branch"`      // Branch to clone; empty means the remote default
	EntryPoint string `yaml:"entry_point"` // Main executable file at the root of the clone
	BinDir     string `yaml:"bin_dir"`     // Global bin directory receiving the symlink
}

// Default returns the built-in install description for the upstream
// quickdeck distribution.
func Default() Install {
	return Install{
		AppName:    "quickdeck",
		RepoURL:    "https://github.com/quickdeck/quickdeck.git",
		Branch:     "",
		EntryPoint: "quickdeck.sh",
		BinDir:     "/usr/local/bin",
	}
}

// ShortcutPath is the full path of the global symlink for this install.
func (i Install) ShortcutPath() string {
	return filepath.Join(i.BinDir, i.AppName)
}

// Load returns the defaults overlaid with the YAML file at path. An empty
// path means defaults only. A missing or unreadable file is not an error:
// the installer works out of the box without any configuration, so we log
// and fall back to the defaults.
func Load(path string) Install {
	cfg := Default()
	if path == "" {
		return cfg
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("[WARN] Cannot read config %s, using defaults: %v\n", path, err)
		return cfg
	}

	// Unmarshal over the defaults so absent keys keep their built-in values.
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		logger.Warn("[WARN] Ignoring malformed config %s: %v\n", path, err)
		return Default()
	}

	// Empty strings in the file would break path construction downstream.
	def := Default()
	if cfg.AppName == "" {
		cfg.AppName = def.AppName
	}
	if cfg.RepoURL == "" {
		cfg.RepoURL = def.RepoURL
	}
	if cfg.EntryPoint == "" {
		cfg.EntryPoint = def.EntryPoint
	}
	if cfg.BinDir == "" {
		cfg.BinDir = def.BinDir
	}

	logger.Debug("[DEBUG] Loaded install config from %s: %+v\n", path, cfg)
	return cfg
}
