package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/featstore/internal/testutil"
)

func TestLoad_FullConfig(t *testing.T) {
	t.Parallel()

	root := testutil.WriteRepo(t, map[string]string{
		FileName: `project: rides
provider: local
registry: state/registry.yaml
online_store:
  path: state/online.db
offline_store:
  type: file
`,
	})

	cfg, err := Load(root)
	require.NoError(t, err)

	assert.Equal(t, "rides", cfg.Project)
	assert.Equal(t, "local", cfg.Provider)
	assert.Equal(t, filepath.Join("state", "registry.yaml"), cfg.RegistryPath)
	assert.Equal(t, filepath.Join("state", "online.db"), cfg.OnlineStore.Path)
	assert.Equal(t, "file", cfg.OfflineStore.Type)
	assert.NotEmpty(t, cfg.Root)
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	root := testutil.WriteRepo(t, map[string]string{
		FileName: "project: rides\n",
	})

	cfg, err := Load(root)
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Provider)
	assert.Equal(t, filepath.Join("data", "registry.yaml"), cfg.RegistryPath)
	assert.Equal(t, filepath.Join("data", "online_store.db"), cfg.OnlineStore.Path)
	assert.Equal(t, "file", cfg.OfflineStore.Type)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not an initialized feature repository")
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()

	root := testutil.WriteRepo(t, map[string]string{
		FileName: "project: [unclosed\n",
	})

	_, err := Load(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid "+FileName)
}

func TestResolvePath(t *testing.T) {
	t.Parallel()

	root := testutil.WriteRepo(t, map[string]string{FileName: "project: rides\n"})
	cfg, err := Load(root)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(cfg.Root, "data", "x.db"), cfg.ResolvePath(filepath.Join("data", "x.db")))

	abs := filepath.Join(string(filepath.Separator), "elsewhere", "x.db")
	assert.Equal(t, abs, cfg.ResolvePath(abs))
}
