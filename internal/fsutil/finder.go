// Package fsutil provides the filesystem primitives the repo scanner builds
// on: recursive definition-file discovery and canonical path normalization.
package fsutil

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// FindFilesByExtension recursively searches root for all regular files whose
// name ends with the given extension and returns their full paths in walk
// order. Callers that need determinism sort the result after normalization.
func FindFilesByExtension(root string, extension string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), extension) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// Canonicalize resolves path to its canonical absolute form, following
// symlinks, so that paths arriving from different origins (ignore expansion,
// tree walks, user input) compare equal. The path must exist.
func Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
