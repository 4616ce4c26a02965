// Package source validates declared batch data sources against the offline
// store configuration. Validation runs before any mutation: the first
// failing source aborts the whole run.
package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vk/featstore/internal/config"
	"github.com/vk/featstore/internal/ctxlog"
	"github.com/vk/featstore/internal/model"
)

// ValidationError reports a batch source the configured offline store cannot
// serve.
type ValidationError struct {
	View   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid batch source on feature view %q: %s", e.View, e.Reason)
}

// Validate checks the batch source of every declared feature view. Feature
// tables are exempt: only feature-view sources feed the offline store's
// materialization path.
func Validate(ctx context.Context, cfg *config.Repo, repo *model.ParsedRepo) error {
	logger := ctxlog.FromContext(ctx)

	for _, name := range model.Names(repo.FeatureViews) {
		src := repo.FeatureViews[name].BatchSource()
		if src == nil {
			return &ValidationError{View: name, Reason: "no batch_source declared"}
		}
		if src.Type != cfg.OfflineStore.Type {
			return &ValidationError{
				View:   name,
				Reason: fmt.Sprintf("source type %q is not served by offline store type %q", src.Type, cfg.OfflineStore.Type),
			}
		}
		if src.Type == "file" {
			if src.Path == "" {
				return &ValidationError{View: name, Reason: "file source has no path"}
			}
			path := src.Path
			if !filepath.IsAbs(path) {
				path = filepath.Join(cfg.Root, path)
			}
			if _, err := os.Stat(path); err != nil {
				return &ValidationError{View: name, Reason: fmt.Sprintf("source path %s: %v", src.Path, err)}
			}
		}
		logger.Debug("batch source validated", "feature_view", name, "type", src.Type)
	}
	return nil
}
