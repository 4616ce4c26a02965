// Package store exposes the feature store facade the apply coordinator
// talks to: one non-partial apply call covering registry and infrastructure
// state, plus teardown. The facade owns the wiring from repo config to
// concrete collaborators.
package store

import (
	"context"
	"fmt"

	"github.com/vk/featstore/internal/config"
	"github.com/vk/featstore/internal/ctxlog"
	"github.com/vk/featstore/internal/infra"
	"github.com/vk/featstore/internal/model"
	"github.com/vk/featstore/internal/registry"
)

// FeatureStore composes the registry and the infrastructure provisioner for
// one project.
type FeatureStore struct {
	cfg      *config.Repo
	registry registry.Store
	infra    infra.Provisioner
}

// New wires a feature store from the repo config. The provider name selects
// the infrastructure backend.
func New(cfg *config.Repo) (*FeatureStore, error) {
	var prov infra.Provisioner
	switch cfg.Provider {
	case "local":
		prov = infra.NewLocal(cfg.ResolvePath(cfg.OnlineStore.Path))
	case "noop":
		prov = infra.Noop{}
	default:
		return nil, fmt.Errorf("unknown provider %q in %s", cfg.Provider, config.FileName)
	}

	reg := registry.NewFileStore(cfg.ResolvePath(cfg.RegistryPath))
	return NewWith(cfg, reg, prov), nil
}

// NewWith assembles a feature store from explicit collaborators. Tests and
// the fixture harness use this to substitute in-memory implementations.
func NewWith(cfg *config.Repo, reg registry.Store, prov infra.Provisioner) *FeatureStore {
	return &FeatureStore{cfg: cfg, registry: reg, infra: prov}
}

// Project returns the project the store is scoped to.
func (s *FeatureStore) Project() string { return s.cfg.Project }

// Registry exposes the registry collaborator for listing and debugging.
func (s *FeatureStore) Registry() registry.Store { return s.registry }

// Apply submits the complete keep/delete plan as one transaction: the
// registry is reconciled first, then infrastructure for every table-backed
// object in the plan. No local retry or partial rollback happens here; a
// failure surfaces unmodified.
func (s *FeatureStore) Apply(ctx context.Context, toApply []model.Object, toDelete []registry.Object, partial bool) error {
	applyObjs := make([]registry.Object, 0, len(toApply))
	for _, obj := range toApply {
		applyObjs = append(applyObjs, registry.FromDeclared(obj))
	}

	if err := s.registry.Apply(ctx, s.cfg.Project, applyObjs, toDelete, partial); err != nil {
		return fmt.Errorf("registry apply failed: %w", err)
	}

	deploy := DeployNames(toApply)
	remove := RemoveNames(toDelete)
	if err := s.infra.Update(ctx, s.cfg.Project, deploy, remove); err != nil {
		return fmt.Errorf("infrastructure update failed: %w", err)
	}

	ctxlog.FromContext(ctx).Debug("apply transaction committed",
		"project", s.cfg.Project,
		"registered", len(applyObjs),
		"deleted", len(toDelete),
		"infra_deployed", len(deploy),
		"infra_removed", len(remove),
	)
	return nil
}

// Teardown removes every registered object and all provisioned
// infrastructure for the project.
func (s *FeatureStore) Teardown(ctx context.Context) error {
	if err := s.infra.Teardown(ctx, s.cfg.Project); err != nil {
		return fmt.Errorf("infrastructure teardown failed: %w", err)
	}
	if err := s.registry.Teardown(ctx, s.cfg.Project); err != nil {
		return fmt.Errorf("registry teardown failed: %w", err)
	}
	return nil
}

// DeployNames selects, in plan order, the names of the declared objects that
// need backing infrastructure: feature views and feature tables. Request
// feature views and entities never qualify.
func DeployNames(toApply []model.Object) []string {
	var out []string
	for _, obj := range toApply {
		if _, ok := obj.(model.TableBacked); ok {
			out = append(out, obj.Name())
		}
	}
	return out
}

// RemoveNames selects, in plan order, the names of the persisted objects
// whose infrastructure goes away with them.
func RemoveNames(toDelete []registry.Object) []string {
	var out []string
	for _, obj := range toDelete {
		if obj.Kind == model.KindFeatureView || obj.Kind == model.KindFeatureTable {
			out = append(out, obj.Name)
		}
	}
	return out
}
