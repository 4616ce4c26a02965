// Package ignore implements the ignore-spec filter: parsing the optional
// .featstoreignore file at the repo root and expanding its glob patterns
// into the concrete set of excluded definition files.
package ignore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"github.com/vk/featstore/internal/fsutil"
)

// SpecFileName is the name of the ignore-spec file at the repo root.
const SpecFileName = ".featstoreignore"

// ReadSpec reads the ignore-spec file at the top of root and returns its
// patterns. Text after the first '#' on a line is a comment; blank lines are
// skipped. An absent file yields an empty pattern list.
func ReadSpec(root string) ([]string, error) {
	data, err := os.ReadFile(filepath.Join(root, SpecFileName))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", SpecFileName, err)
	}

	var patterns []string
	for _, line := range strings.Split(string(data), "\n") {
		if i := strings.Index(line, "#"); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line != "" {
			patterns = append(patterns, line)
		}
	}
	return patterns, nil
}

// Files expands the given patterns against root and returns the canonical
// absolute path of every file they exclude. A pattern matching a directory
// excludes every file with the given extension transitively under it. A
// pattern matching nothing is not an error.
func Files(root string, patterns []string, extension string) (map[string]struct{}, error) {
	excluded := make(map[string]struct{})
	if len(patterns) == 0 {
		return excluded, nil
	}

	globs := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
		}
		globs = append(globs, g)
	}

	// One walk over the tree; every entry's root-relative path is matched
	// against every pattern.
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		matched := false
		for _, g := range globs {
			if g.Match(rel) {
				matched = true
				break
			}
		}
		if !matched {
			return nil
		}

		if d.IsDir() {
			sub, err := fsutil.FindFilesByExtension(path, extension)
			if err != nil {
				return err
			}
			for _, f := range sub {
				canon, err := fsutil.Canonicalize(f)
				if err != nil {
					return err
				}
				excluded[canon] = struct{}{}
			}
			// Files below this directory are already excluded, but keep
			// walking: a sibling pattern may match paths the extension
			// filter skipped.
			return nil
		}

		canon, err := fsutil.Canonicalize(path)
		if err != nil {
			return err
		}
		excluded[canon] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return excluded, nil
}
