package repo

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vk/featstore/internal/ctxlog"
	"github.com/vk/featstore/internal/fsutil"
	"github.com/vk/featstore/internal/ignore"
)

// Extension is the suffix that marks a file as a definition file.
const Extension = ".hcl"

// Scan enumerates every definition file under root, subtracts the files
// excluded by the ignore spec, and returns the remainder as canonical
// absolute paths in sorted order. The order is semantically irrelevant but
// load-bearing for reproducible logs and tests.
func Scan(ctx context.Context, root string) ([]string, error) {
	logger := ctxlog.FromContext(ctx)

	rootAbs, err := fsutil.Canonicalize(root)
	if err != nil {
		return nil, fmt.Errorf("resolving repo root %s: %w", root, err)
	}

	patterns, err := ignore.ReadSpec(rootAbs)
	if err != nil {
		return nil, err
	}
	excluded, err := ignore.Files(rootAbs, patterns, Extension)
	if err != nil {
		return nil, err
	}

	candidates, err := fsutil.FindFilesByExtension(rootAbs, Extension)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", rootAbs, err)
	}

	seen := make(map[string]struct{}, len(candidates))
	files := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		canon, err := fsutil.Canonicalize(candidate)
		if err != nil {
			return nil, err
		}
		if _, ok := excluded[canon]; ok {
			continue
		}
		if _, ok := seen[canon]; ok {
			continue
		}
		seen[canon] = struct{}{}
		files = append(files, canon)
	}
	sort.Strings(files)

	logger.Debug("definition files scanned", "root", rootAbs, "found", len(candidates), "ignored", len(excluded), "kept", len(files))
	return files, nil
}

// ModuleID derives the namespaced module identifier for a definition file:
// its path relative to root with the extension stripped and path separators
// replaced by dots. It is used to attribute discovery failures to a file.
func ModuleID(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)
	rel = strings.TrimSuffix(rel, Extension)
	rel = strings.TrimPrefix(rel, "./")
	return strings.ReplaceAll(rel, "/", ".")
}
