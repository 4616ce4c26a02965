// Package config loads the repo-level feature_store.yaml that scopes a
// reconciliation run: the project identity, the provider, and where the
// registry and online store live.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vk/featstore/internal/fsutil"
)

// FileName is the repo config file expected at the top of the repo root.
const FileName = "feature_store.yaml"

// OnlineStore configures where the local provider keeps online state.
type OnlineStore struct {
	Path string `yaml:"path"`
}

// OfflineStore configures which batch data sources the store can serve.
type OfflineStore struct {
	Type string `yaml:"type"`
}

// Repo is the parsed feature_store.yaml.
type Repo struct {
	Project      string       `yaml:"project"`
	Provider     string       `yaml:"provider"`
	RegistryPath string       `yaml:"registry"`
	OnlineStore  OnlineStore  `yaml:"online_store"`
	OfflineStore OfflineStore `yaml:"offline_store"`

	// Root is the canonical repo root the config was loaded from. Relative
	// paths in the config resolve against it.
	Root string `yaml:"-"`
}

// Load reads feature_store.yaml at the top of root and applies defaults for
// omitted settings. A missing config file means root is not an initialized
// feature repository, which is an error before anything else runs.
func Load(root string) (*Repo, error) {
	rootAbs, err := fsutil.Canonicalize(root)
	if err != nil {
		return nil, fmt.Errorf("resolving repo root %s: %w", root, err)
	}

	path := filepath.Join(rootAbs, FileName)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("no %s found at %s: not an initialized feature repository", FileName, rootAbs)
	}
	if err != nil {
		return nil, err
	}

	var cfg Repo
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", FileName, err)
	}

	if cfg.Provider == "" {
		cfg.Provider = "local"
	}
	if cfg.RegistryPath == "" {
		cfg.RegistryPath = filepath.Join("data", "registry.yaml")
	}
	if cfg.OnlineStore.Path == "" {
		cfg.OnlineStore.Path = filepath.Join("data", "online_store.db")
	}
	if cfg.OfflineStore.Type == "" {
		cfg.OfflineStore.Type = "file"
	}
	cfg.Root = rootAbs

	return &cfg, nil
}

// ResolvePath resolves a config-relative path against the repo root.
// Absolute paths pass through unchanged.
func (r *Repo) ResolvePath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(r.Root, path)
}
