// Package reconcile computes, independently per object kind, the keep and
// delete sets that converge persisted registry state to the declared repo
// snapshot.
//
// Matching is purely by name within a kind: a declared object is always kept
// (re-applied, even when unchanged, so the collaborator can re-validate and
// normalize it), and a persisted object with no declared counterpart is
// deleted. No content-based change detection happens here; in-place
// modification is the collaborator's concern.
package reconcile

import (
	"context"
	"sort"

	"github.com/vk/featstore/internal/ctxlog"
	"github.com/vk/featstore/internal/model"
	"github.com/vk/featstore/internal/registry"
)

// Plan is the per-kind reconciliation outcome for one run. It is ephemeral:
// built, merged, submitted, discarded.
type Plan struct {
	Keep   map[model.Kind][]model.Object
	Delete map[model.Kind][]registry.Object
}

// Build lists each kind from the registry, diffs it against the declared
// snapshot, and returns the combined plan. Kinds are reconciled
// independently; all keep and delete lists come back sorted by name.
func Build(ctx context.Context, reg registry.Store, project string, repo *model.ParsedRepo) (*Plan, error) {
	logger := ctxlog.FromContext(ctx)
	plan := &Plan{
		Keep:   make(map[model.Kind][]model.Object),
		Delete: make(map[model.Kind][]registry.Object),
	}

	if err := tagEntities(ctx, reg, project, repo, plan); err != nil {
		return nil, err
	}
	if err := tagFeatureViews(ctx, reg, project, repo, plan); err != nil {
		return nil, err
	}
	if err := tagOnDemandFeatureViews(ctx, reg, project, repo, plan); err != nil {
		return nil, err
	}
	if err := tagFeatureTables(ctx, reg, project, repo, plan); err != nil {
		return nil, err
	}
	if err := tagFeatureServices(ctx, reg, project, repo, plan); err != nil {
		return nil, err
	}

	logger.Debug("reconciliation plan built",
		"project", project,
		"to_apply", len(plan.ToApply()),
		"to_delete", len(plan.ToDelete()),
	)
	return plan, nil
}

// tagEntities keeps every declared entity and deletes every persisted entity
// with no declared counterpart, except the reserved dummy entity, which is
// an internal placeholder and survives unconditionally.
func tagEntities(ctx context.Context, reg registry.Store, project string, repo *model.ParsedRepo, plan *Plan) error {
	persisted, err := reg.ListEntities(ctx, project)
	if err != nil {
		return err
	}

	plan.Keep[model.KindEntity] = keepSet(repo.Entities)

	var toDelete []registry.Object
	for _, obj := range persisted {
		if obj.Name == model.DummyEntityName {
			continue
		}
		if _, declared := repo.Entities[obj.Name]; !declared {
			toDelete = append(toDelete, obj)
		}
	}
	plan.Delete[model.KindEntity] = sortedByName(toDelete)
	return nil
}

// tagFeatureViews keeps every declared feature view plus every declared
// request feature view: request feature views share the feature-view
// registration surface, but they never participate in the name-set that
// persisted feature views are diffed against.
func tagFeatureViews(ctx context.Context, reg registry.Store, project string, repo *model.ParsedRepo, plan *Plan) error {
	persisted, err := reg.ListFeatureViews(ctx, project)
	if err != nil {
		return err
	}

	keep := keepSet(repo.FeatureViews)
	for _, name := range model.Names(repo.RequestFeatureViews) {
		keep = append(keep, repo.RequestFeatureViews[name])
	}
	sort.Slice(keep, func(i, j int) bool { return keep[i].Name() < keep[j].Name() })
	plan.Keep[model.KindFeatureView] = keep

	var toDelete []registry.Object
	for _, obj := range persisted {
		if _, declared := repo.FeatureViews[obj.Name]; !declared {
			toDelete = append(toDelete, obj)
		}
	}
	plan.Delete[model.KindFeatureView] = sortedByName(toDelete)
	return nil
}

func tagOnDemandFeatureViews(ctx context.Context, reg registry.Store, project string, repo *model.ParsedRepo, plan *Plan) error {
	persisted, err := reg.ListOnDemandFeatureViews(ctx, project)
	if err != nil {
		return err
	}

	plan.Keep[model.KindOnDemandFeatureView] = keepSet(repo.OnDemandFeatureViews)

	var toDelete []registry.Object
	for _, obj := range persisted {
		if _, declared := repo.OnDemandFeatureViews[obj.Name]; !declared {
			toDelete = append(toDelete, obj)
		}
	}
	plan.Delete[model.KindOnDemandFeatureView] = sortedByName(toDelete)
	return nil
}

func tagFeatureTables(ctx context.Context, reg registry.Store, project string, repo *model.ParsedRepo, plan *Plan) error {
	persisted, err := reg.ListFeatureTables(ctx, project)
	if err != nil {
		return err
	}

	plan.Keep[model.KindFeatureTable] = keepSet(repo.FeatureTables)

	var toDelete []registry.Object
	for _, obj := range persisted {
		if _, declared := repo.FeatureTables[obj.Name]; !declared {
			toDelete = append(toDelete, obj)
		}
	}
	plan.Delete[model.KindFeatureTable] = sortedByName(toDelete)
	return nil
}

func tagFeatureServices(ctx context.Context, reg registry.Store, project string, repo *model.ParsedRepo, plan *Plan) error {
	persisted, err := reg.ListFeatureServices(ctx, project)
	if err != nil {
		return err
	}

	plan.Keep[model.KindFeatureService] = keepSet(repo.FeatureServices)

	var toDelete []registry.Object
	for _, obj := range persisted {
		if _, declared := repo.FeatureServices[obj.Name]; !declared {
			toDelete = append(toDelete, obj)
		}
	}
	plan.Delete[model.KindFeatureService] = sortedByName(toDelete)
	return nil
}

// ToApply merges the keep-sets into one flat list in the fixed kind order:
// entities, feature views, feature services, on-demand feature views,
// feature tables.
func (p *Plan) ToApply() []model.Object {
	var out []model.Object
	for _, kind := range model.ApplyOrder {
		out = append(out, p.Keep[kind]...)
	}
	return out
}

// ToDelete merges the delete-sets into one flat list in the same kind order
// as ToApply.
func (p *Plan) ToDelete() []registry.Object {
	var out []registry.Object
	for _, kind := range model.ApplyOrder {
		out = append(out, p.Delete[kind]...)
	}
	return out
}

// keepSet flattens a declared collection into a name-sorted object list.
func keepSet[T model.Object](m map[string]T) []model.Object {
	names := model.Names(m)
	out := make([]model.Object, 0, len(names))
	for _, name := range names {
		out = append(out, m[name])
	}
	return out
}

func sortedByName(objs []registry.Object) []registry.Object {
	sort.Slice(objs, func(i, j int) bool { return objs[i].Name < objs[j].Name })
	return objs
}
