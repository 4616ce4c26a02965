// Package apply implements the apply coordinator: it gates on the project
// naming rule, validates declared batch sources, reconciles the declared
// repo against the registry, submits the combined plan as one non-partial
// apply, and reports per-object outcomes.
package apply

import (
	"context"
	"io"

	"github.com/vk/featstore/internal/config"
	"github.com/vk/featstore/internal/ctxlog"
	"github.com/vk/featstore/internal/names"
	"github.com/vk/featstore/internal/reconcile"
	"github.com/vk/featstore/internal/repo"
	"github.com/vk/featstore/internal/source"
	"github.com/vk/featstore/internal/store"
)

// Options tune one apply invocation.
type Options struct {
	// SkipSourceValidation suppresses batch-source validation against the
	// offline store configuration.
	SkipSourceValidation bool
}

// Total runs the full discovery-diff-apply loop for the repo rooted at
// cfg.Root and writes the human-readable report to out. Either the complete
// computed plan is submitted to the store in one call, or nothing is.
func Total(ctx context.Context, cfg *config.Repo, st *store.FeatureStore, out io.Writer, opts Options) error {
	logger := ctxlog.FromContext(ctx)

	// The name gate runs before anything touches the registry or the
	// filesystem beyond the config that got us here.
	if !names.IsValid(cfg.Project) {
		return &names.InvalidNameError{Subject: "project", Name: cfg.Project}
	}

	parsed, err := repo.Parse(ctx, cfg.Root)
	if err != nil {
		return err
	}

	if opts.SkipSourceValidation {
		logger.Debug("batch source validation suppressed")
	} else if err := source.Validate(ctx, cfg, parsed); err != nil {
		return err
	}

	plan, err := reconcile.Build(ctx, st.Registry(), cfg.Project, parsed)
	if err != nil {
		return err
	}

	toApply := plan.ToApply()
	toDelete := plan.ToDelete()
	if err := st.Apply(ctx, toApply, toDelete, false); err != nil {
		return err
	}

	report(out, parsed, plan)

	logger.Info("apply finished",
		"project", cfg.Project,
		"registered", len(toApply),
		"deleted", len(toDelete),
	)
	return nil
}
