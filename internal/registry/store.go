package registry

import (
	"context"

	"github.com/vk/featstore/internal/model"
)

// Store is the registry collaborator contract. Listings are read-only
// snapshots scoped to a project; all mutation goes through Apply.
//
// Request feature views have no listing of their own: they are registered
// through the feature-view keep-set and only surface again via Dump and
// Teardown.
type Store interface {
	ListEntities(ctx context.Context, project string) ([]Object, error)
	ListFeatureViews(ctx context.Context, project string) ([]Object, error)
	ListOnDemandFeatureViews(ctx context.Context, project string) ([]Object, error)
	ListFeatureTables(ctx context.Context, project string) ([]Object, error)
	ListFeatureServices(ctx context.Context, project string) ([]Object, error)

	// Apply reconciles the project's persisted state in one call. With
	// partial=false the two lists describe the complete desired state: every
	// previously-registered object of a reconciled kind that is absent from
	// toApply must already be present in toDelete, so the store never infers
	// deletions on its own. Objects in toApply replace any persisted object
	// with the same (kind, name).
	Apply(ctx context.Context, project string, toApply, toDelete []Object, partial bool) error

	// Teardown removes every object registered for the project.
	Teardown(ctx context.Context, project string) error

	// Dump returns the full persisted state for the project in deterministic
	// order. Debugging surface only.
	Dump(ctx context.Context, project string) ([]Object, error)
}

// reconcileObjects applies the keep/delete lists to an existing snapshot and
// returns the new snapshot in deterministic order. Shared by both store
// implementations so they cannot drift.
func reconcileObjects(existing, toApply, toDelete []Object) []Object {
	type identity struct {
		kind model.Kind
		name string
	}

	deleted := make(map[identity]struct{}, len(toDelete))
	for _, obj := range toDelete {
		deleted[identity{obj.Kind, obj.Name}] = struct{}{}
	}
	applied := make(map[identity]struct{}, len(toApply))
	for _, obj := range toApply {
		applied[identity{obj.Kind, obj.Name}] = struct{}{}
	}

	next := make([]Object, 0, len(existing)+len(toApply))
	for _, obj := range existing {
		id := identity{obj.Kind, obj.Name}
		if _, ok := deleted[id]; ok {
			continue
		}
		if _, ok := applied[id]; ok {
			// Replaced below by the freshly-applied object.
			continue
		}
		next = append(next, obj)
	}
	next = append(next, toApply...)
	sortObjects(next)
	return next
}
