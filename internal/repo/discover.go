package repo

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/featstore/internal/ctxlog"
	"github.com/vk/featstore/internal/fsutil"
	"github.com/vk/featstore/internal/model"
	"github.com/vk/featstore/internal/schema"
)

// DiscoverError reports a definition module that failed to load, or that
// declared a name already claimed within its kind. Either way the whole
// discovery pass is aborted: a partially-declared repo is unsafe to
// reconcile against.
type DiscoverError struct {
	Module string
	Err    error
}

func (e *DiscoverError) Error() string {
	return fmt.Sprintf("definition module %s: %v", e.Module, e.Err)
}

func (e *DiscoverError) Unwrap() error { return e.Err }

// declKey is the identity an object claims during discovery.
type declKey struct {
	kind model.Kind
	name string
}

// Parse scans root and loads every definition file, in scan order, into a
// fresh ParsedRepo. One shared parser serves the whole pass, so each file
// contributes its declarations exactly once. Two blocks of the same kind
// claiming one name are rejected even when their bodies are identical.
func Parse(ctx context.Context, root string) (*model.ParsedRepo, error) {
	logger := ctxlog.FromContext(ctx)

	rootAbs, err := fsutil.Canonicalize(root)
	if err != nil {
		return nil, fmt.Errorf("resolving repo root %s: %w", root, err)
	}

	files, err := Scan(ctx, rootAbs)
	if err != nil {
		return nil, err
	}

	parsed := model.NewParsedRepo()
	parser := hclparse.NewParser()
	declaredBy := make(map[declKey]string)

	for _, file := range files {
		moduleID := ModuleID(rootAbs, file)
		if err := loadFile(parser, file, moduleID, parsed, declaredBy); err != nil {
			return nil, err
		}
		logger.Debug("definitions loaded", "module", moduleID)
	}

	logger.Debug("discovery pass finished",
		"modules", len(files),
		"entities", len(parsed.Entities),
		"feature_views", len(parsed.FeatureViews),
		"on_demand_feature_views", len(parsed.OnDemandFeatureViews),
		"request_feature_views", len(parsed.RequestFeatureViews),
		"feature_tables", len(parsed.FeatureTables),
		"feature_services", len(parsed.FeatureServices),
	)
	return parsed, nil
}

// loadFile parses one definition file and folds its declarations into parsed.
func loadFile(parser *hclparse.Parser, path, moduleID string, parsed *model.ParsedRepo, declaredBy map[declKey]string) error {
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return &DiscoverError{Module: moduleID, Err: diags}
	}

	var f schema.File
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &f); diags.HasErrors() {
		return &DiscoverError{Module: moduleID, Err: diags}
	}

	claim := func(kind model.Kind, name string) error {
		key := declKey{kind: kind, name: name}
		if prev, ok := declaredBy[key]; ok {
			return &DiscoverError{
				Module: moduleID,
				Err:    fmt.Errorf("duplicate %s %q: already declared in module %s", kind, name, prev),
			}
		}
		declaredBy[key] = moduleID
		return nil
	}

	for _, b := range f.Entities {
		if err := claim(model.KindEntity, b.Name); err != nil {
			return err
		}
		attrs, err := bodyAttributes(b.Body)
		if err != nil {
			return &DiscoverError{Module: moduleID, Err: err}
		}
		parsed.Entities[b.Name] = model.NewEntity(b.Name, attrs)
	}
	for _, b := range f.FeatureViews {
		if err := claim(model.KindFeatureView, b.Name); err != nil {
			return err
		}
		attrs, err := bodyAttributes(b.Body)
		if err != nil {
			return &DiscoverError{Module: moduleID, Err: err}
		}
		parsed.FeatureViews[b.Name] = model.NewFeatureView(b.Name, batchSource(b.BatchSource), attrs)
	}
	for _, b := range f.OnDemandFeatureViews {
		if err := claim(model.KindOnDemandFeatureView, b.Name); err != nil {
			return err
		}
		attrs, err := bodyAttributes(b.Body)
		if err != nil {
			return &DiscoverError{Module: moduleID, Err: err}
		}
		parsed.OnDemandFeatureViews[b.Name] = model.NewOnDemandFeatureView(b.Name, attrs)
	}
	for _, b := range f.RequestFeatureViews {
		if err := claim(model.KindRequestFeatureView, b.Name); err != nil {
			return err
		}
		attrs, err := bodyAttributes(b.Body)
		if err != nil {
			return &DiscoverError{Module: moduleID, Err: err}
		}
		parsed.RequestFeatureViews[b.Name] = model.NewRequestFeatureView(b.Name, attrs)
	}
	for _, b := range f.FeatureTables {
		if err := claim(model.KindFeatureTable, b.Name); err != nil {
			return err
		}
		attrs, err := bodyAttributes(b.Body)
		if err != nil {
			return &DiscoverError{Module: moduleID, Err: err}
		}
		parsed.FeatureTables[b.Name] = model.NewFeatureTable(b.Name, batchSource(b.BatchSource), attrs)
	}
	for _, b := range f.FeatureServices {
		if err := claim(model.KindFeatureService, b.Name); err != nil {
			return err
		}
		attrs, err := bodyAttributes(b.Body)
		if err != nil {
			return &DiscoverError{Module: moduleID, Err: err}
		}
		parsed.FeatureServices[b.Name] = model.NewFeatureService(b.Name, attrs)
	}

	return nil
}

// batchSource translates the HCL batch_source block into the model form.
func batchSource(b *schema.BatchSource) *model.BatchSource {
	if b == nil {
		return nil
	}
	return &model.BatchSource{Type: b.Type, Path: b.Path}
}
