package registry

import (
	"sort"

	"github.com/vk/featstore/internal/model"
)

// Object is one persisted definition: its kind, its name, and the opaque
// payload it was registered with. Identity, for reconciliation purposes, is
// (Kind, Name).
type Object struct {
	Kind       model.Kind     `yaml:"kind"`
	Name       string         `yaml:"name"`
	Attributes map[string]any `yaml:"attributes,omitempty"`
}

// FromDeclared converts a declared descriptor into its persisted form. A
// declared batch source is folded into the payload so it survives the round
// trip through the registry.
func FromDeclared(obj model.Object) Object {
	attrs := obj.Attributes()

	var source *model.BatchSource
	switch o := obj.(type) {
	case *model.FeatureView:
		source = o.BatchSource()
	case *model.FeatureTable:
		source = o.BatchSource()
	}
	if source != nil {
		merged := make(map[string]any, len(attrs)+1)
		for k, v := range attrs {
			merged[k] = v
		}
		merged["batch_source"] = map[string]any{"type": source.Type, "path": source.Path}
		attrs = merged
	}

	return Object{Kind: obj.Kind(), Name: obj.Name(), Attributes: attrs}
}

// kindRank orders kinds the way apply merges them, with the kinds that have
// no listing at the end. Used only to keep persisted snapshots deterministic.
func kindRank(k model.Kind) int {
	for i, kind := range model.ApplyOrder {
		if kind == k {
			return i
		}
	}
	return len(model.ApplyOrder)
}

// sortObjects orders a snapshot by kind rank, then name.
func sortObjects(objs []Object) {
	sort.Slice(objs, func(i, j int) bool {
		ri, rj := kindRank(objs[i].Kind), kindRank(objs[j].Kind)
		if ri != rj {
			return ri < rj
		}
		if objs[i].Kind != objs[j].Kind {
			return objs[i].Kind < objs[j].Kind
		}
		return objs[i].Name < objs[j].Name
	})
}
