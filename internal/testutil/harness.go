// Package testutil provides fixture helpers shared by the package tests: a
// temp-dir repo writer and a quiet logging context.
package testutil

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/featstore/internal/ctxlog"
)

// WriteRepo materialises a fixture feature repo in a temp dir and returns
// its root. Keys of files are paths relative to the root; intermediate
// directories are created as needed.
func WriteRepo(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

// Context returns a context carrying a logger that swallows output, so test
// logs stay readable.
func Context() context.Context {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return ctxlog.WithLogger(context.Background(), logger)
}
