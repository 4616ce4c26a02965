package registry

import (
	"context"
	"sync"

	"github.com/vk/featstore/internal/model"
)

// Memory is an ephemeral registry holding the same contract as FileStore in
// a mutex-guarded map. It backs the tests and the fixture harness; nothing
// survives the process.
type Memory struct {
	mu       sync.Mutex
	projects map[string][]Object
}

// NewMemory returns an empty in-memory registry.
func NewMemory() *Memory {
	return &Memory{projects: make(map[string][]Object)}
}

func (m *Memory) list(project string, kind model.Kind) ([]Object, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []Object
	for _, obj := range m.projects[project] {
		if obj.Kind == kind {
			out = append(out, obj)
		}
	}
	return out, nil
}

// ListEntities returns the persisted entities for the project.
func (m *Memory) ListEntities(_ context.Context, project string) ([]Object, error) {
	return m.list(project, model.KindEntity)
}

// ListFeatureViews returns the persisted feature views for the project.
func (m *Memory) ListFeatureViews(_ context.Context, project string) ([]Object, error) {
	return m.list(project, model.KindFeatureView)
}

// ListOnDemandFeatureViews returns the persisted on-demand feature views for
// the project.
func (m *Memory) ListOnDemandFeatureViews(_ context.Context, project string) ([]Object, error) {
	return m.list(project, model.KindOnDemandFeatureView)
}

// ListFeatureTables returns the persisted feature tables for the project.
func (m *Memory) ListFeatureTables(_ context.Context, project string) ([]Object, error) {
	return m.list(project, model.KindFeatureTable)
}

// ListFeatureServices returns the persisted feature services for the project.
func (m *Memory) ListFeatureServices(_ context.Context, project string) ([]Object, error) {
	return m.list(project, model.KindFeatureService)
}

// Apply reconciles the project's snapshot with the keep/delete lists.
func (m *Memory) Apply(_ context.Context, project string, toApply, toDelete []Object, partial bool) error {
	_ = partial

	m.mu.Lock()
	defer m.mu.Unlock()

	m.projects[project] = reconcileObjects(m.projects[project], toApply, toDelete)
	return nil
}

// Teardown removes every object registered for the project.
func (m *Memory) Teardown(_ context.Context, project string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.projects, project)
	return nil
}

// Dump returns the project's full persisted state in deterministic order.
func (m *Memory) Dump(_ context.Context, project string) ([]Object, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	objs := append([]Object(nil), m.projects[project]...)
	sortObjects(objs)
	return objs, nil
}

// Seed registers objects directly, bypassing Apply. Test setup only.
func (m *Memory) Seed(project string, objs ...Object) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.projects[project] = reconcileObjects(m.projects[project], objs, nil)
}

var _ Store = (*Memory)(nil)
