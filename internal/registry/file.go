package registry

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/vk/featstore/internal/model"
)

// FileStore persists the registry as a single YAML document. Writes go
// through a temp file in the same directory followed by a rename, so a
// reader never observes a half-written snapshot.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// fileSnapshot is the on-disk document: one object list per project.
type fileSnapshot struct {
	Projects map[string][]Object `yaml:"projects"`
}

// NewFileStore returns a registry backed by the YAML file at path. The file
// is created on first apply; a missing file reads as an empty registry.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) load() (*fileSnapshot, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return &fileSnapshot{Projects: make(map[string][]Object)}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading registry %s: %w", s.path, err)
	}

	var snap fileSnapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("corrupt registry %s: %w", s.path, err)
	}
	if snap.Projects == nil {
		snap.Projects = make(map[string][]Object)
	}
	return &snap, nil
}

func (s *FileStore) save(snap *fileSnapshot) error {
	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encoding registry: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".registry-*.yaml")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("writing registry %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStore) list(project string, kind model.Kind) ([]Object, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load()
	if err != nil {
		return nil, err
	}
	var out []Object
	for _, obj := range snap.Projects[project] {
		if obj.Kind == kind {
			out = append(out, obj)
		}
	}
	return out, nil
}

// ListEntities returns the persisted entities for the project.
func (s *FileStore) ListEntities(_ context.Context, project string) ([]Object, error) {
	return s.list(project, model.KindEntity)
}

// ListFeatureViews returns the persisted feature views for the project.
func (s *FileStore) ListFeatureViews(_ context.Context, project string) ([]Object, error) {
	return s.list(project, model.KindFeatureView)
}

// ListOnDemandFeatureViews returns the persisted on-demand feature views for
// the project.
func (s *FileStore) ListOnDemandFeatureViews(_ context.Context, project string) ([]Object, error) {
	return s.list(project, model.KindOnDemandFeatureView)
}

// ListFeatureTables returns the persisted feature tables for the project.
func (s *FileStore) ListFeatureTables(_ context.Context, project string) ([]Object, error) {
	return s.list(project, model.KindFeatureTable)
}

// ListFeatureServices returns the persisted feature services for the project.
func (s *FileStore) ListFeatureServices(_ context.Context, project string) ([]Object, error) {
	return s.list(project, model.KindFeatureService)
}

// Apply reconciles the project's snapshot with the keep/delete lists and
// persists the result atomically.
func (s *FileStore) Apply(_ context.Context, project string, toApply, toDelete []Object, partial bool) error {
	_ = partial // both modes replace by identity; deletions are never inferred

	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load()
	if err != nil {
		return err
	}
	snap.Projects[project] = reconcileObjects(snap.Projects[project], toApply, toDelete)
	return s.save(snap)
}

// Teardown removes every object registered for the project.
func (s *FileStore) Teardown(_ context.Context, project string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load()
	if err != nil {
		return err
	}
	delete(snap.Projects, project)
	return s.save(snap)
}

// Dump returns the project's full persisted state in deterministic order.
func (s *FileStore) Dump(_ context.Context, project string) ([]Object, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load()
	if err != nil {
		return nil, err
	}
	objs := append([]Object(nil), snap.Projects[project]...)
	sortObjects(objs)
	return objs, nil
}

var _ Store = (*FileStore)(nil)
