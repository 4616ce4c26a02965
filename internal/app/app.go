// Package app wires one CLI invocation together: the logger, the repo
// config, the feature store, and the dispatch to the requested command.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/featstore/internal/apply"
	"github.com/vk/featstore/internal/config"
	"github.com/vk/featstore/internal/ctxlog"
	"github.com/vk/featstore/internal/store"
)

// Commands the binary understands.
const (
	CommandApply        = "apply"
	CommandTeardown     = "teardown"
	CommandRegistryDump = "registry-dump"
)

// Config holds one invocation's settings as parsed from the command line.
type Config struct {
	Command              string
	RepoPath             string
	SkipSourceValidation bool
	LogFormat            string
	LogLevel             string
}

// App encapsulates the dependencies of one invocation. The report surface
// (outW) and the log stream are deliberately separate writers.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	cfg    *config.Repo
	store  *store.FeatureStore
}

// New loads the repo config for appCfg.RepoPath and wires a fully
// initialized App around it.
func New(outW, logW io.Writer, appCfg *Config) (*App, error) {
	logger := newLogger(appCfg.LogLevel, appCfg.LogFormat, logW)

	repoCfg, err := config.Load(appCfg.RepoPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("repo config loaded", "root", repoCfg.Root, "project", repoCfg.Project, "provider", repoCfg.Provider)

	st, err := store.New(repoCfg)
	if err != nil {
		return nil, err
	}

	return &App{outW: outW, logger: logger, cfg: repoCfg, store: st}, nil
}

// Store returns the wired feature store. Primarily for tests.
func (a *App) Store() *store.FeatureStore { return a.store }

// Run dispatches the requested command. Every failure propagates to the
// caller; exit-code translation happens at the CLI edge.
func (a *App) Run(ctx context.Context, appCfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	switch appCfg.Command {
	case CommandApply:
		return apply.Total(ctx, a.cfg, a.store, a.outW, apply.Options{
			SkipSourceValidation: appCfg.SkipSourceValidation,
		})
	case CommandTeardown:
		if err := a.store.Teardown(ctx); err != nil {
			return err
		}
		fmt.Fprintf(a.outW, "Removed all objects and infrastructure for project %s\n", a.cfg.Project)
		return nil
	case CommandRegistryDump:
		return a.registryDump(ctx)
	default:
		return fmt.Errorf("unknown command %q", appCfg.Command)
	}
}
