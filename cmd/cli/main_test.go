package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/featstore/internal/cli"
)

func writeFixtureRepo(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	files := map[string]string{
		"feature_store.yaml": "project: rides\nprovider: local\n",
		"definitions.hcl": `
entity "user" {
  join_key = "user_id"
}

feature_view "driver_stats" {
  batch_source {
    type = "file"
    path = "data/stats.parquet"
  }
}
`,
		"data/stats.parquet": "x",
	}
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	err := run(&out, io.Discard, args)
	return text.StripEscape(out.String()), err
}

func TestRun_NoArgumentsPrintsUsage(t *testing.T) {
	t.Parallel()

	out, err := runCLI(t)

	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "featstore")
}

func TestRun_UnknownCommandFailsWithExitCode(t *testing.T) {
	t.Parallel()

	_, err := runCLI(t, "deploy")

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

func TestRun_UninitializedRepositoryFails(t *testing.T) {
	t.Parallel()

	_, err := runCLI(t, "apply", t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not an initialized feature repository")
}

func TestRun_ApplyDumpTeardownLifecycle(t *testing.T) {
	t.Parallel()

	root := writeFixtureRepo(t)

	// apply: registers the declared objects and provisions the local store.
	out, err := runCLI(t, "apply", root)
	require.NoError(t, err)
	assert.Contains(t, out, "Registered entity user")
	assert.Contains(t, out, "Registered feature view driver_stats")
	assert.Contains(t, out, "Deploying infrastructure for driver_stats")
	assert.FileExists(t, filepath.Join(root, "data", "registry.yaml"))
	assert.FileExists(t, filepath.Join(root, "data", "online_store.db"))

	// registry-dump: the persisted objects come back.
	out, err = runCLI(t, "registry-dump", root)
	require.NoError(t, err)
	assert.Contains(t, out, "Warning: registry-dump is for debugging only")
	assert.Contains(t, out, "driver_stats")
	assert.Contains(t, out, "user")

	// teardown: everything goes away.
	out, err = runCLI(t, "teardown", root)
	require.NoError(t, err)
	assert.Contains(t, out, "Removed all objects and infrastructure for project rides")

	out, err = runCLI(t, "registry-dump", root)
	require.NoError(t, err)
	assert.NotContains(t, out, "driver_stats")
}

func TestRun_SkipSourceValidationFlagReachesTheRun(t *testing.T) {
	t.Parallel()

	root := writeFixtureRepo(t)
	require.NoError(t, os.Remove(filepath.Join(root, "data", "stats.parquet")))

	_, err := runCLI(t, "apply", root)
	require.Error(t, err, "a missing source file must fail the default run")

	out, err := runCLI(t, "-skip-source-validation", "apply", root)
	require.NoError(t, err)
	assert.Contains(t, out, "Registered feature view driver_stats")
}
