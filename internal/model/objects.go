package model

// Object is the identity every declared definition exposes to the
// reconciliation loop. Matching against persisted state is purely by
// (kind, name); kind-specific payloads stay opaque behind it.
type Object interface {
	Kind() Kind
	Name() string
	Attributes() map[string]any
}

// BaseFeatureView marks the descriptors that share the feature-view
// registration surface: ordinary feature views and request feature views.
// Request feature views join the feature-view keep-set through this
// capability without ever being diffed under their own name-set.
type BaseFeatureView interface {
	Object
	baseFeatureView()
}

// TableBacked marks the descriptors that require backing infrastructure:
// feature views and feature tables. Entities never satisfy this.
type TableBacked interface {
	Object
	tableBacked()
}

// BatchSource describes the batch data source backing a feature view or
// feature table.
type BatchSource struct {
	Type string
	Path string
}

// common carries the identity and opaque payload shared by all descriptors.
type common struct {
	name  string
	attrs map[string]any
}

func (c common) Name() string               { return c.name }
func (c common) Attributes() map[string]any { return c.attrs }

// Entity is a declared entity definition.
type Entity struct{ common }

// NewEntity builds an entity descriptor.
func NewEntity(name string, attrs map[string]any) *Entity {
	return &Entity{common{name: name, attrs: attrs}}
}

func (*Entity) Kind() Kind { return KindEntity }

// FeatureView is a declared feature view definition.
type FeatureView struct {
	common
	source *BatchSource
}

// NewFeatureView builds a feature view descriptor. source may be nil; the
// source validation step rejects that before any mutation happens.
func NewFeatureView(name string, source *BatchSource, attrs map[string]any) *FeatureView {
	return &FeatureView{common: common{name: name, attrs: attrs}, source: source}
}

func (*FeatureView) Kind() Kind { return KindFeatureView }

// BatchSource returns the declared batch source, or nil when none was given.
func (v *FeatureView) BatchSource() *BatchSource { return v.source }

func (*FeatureView) baseFeatureView() {}
func (*FeatureView) tableBacked()     {}

// OnDemandFeatureView is a declared on-demand feature view definition.
type OnDemandFeatureView struct{ common }

// NewOnDemandFeatureView builds an on-demand feature view descriptor.
func NewOnDemandFeatureView(name string, attrs map[string]any) *OnDemandFeatureView {
	return &OnDemandFeatureView{common{name: name, attrs: attrs}}
}

func (*OnDemandFeatureView) Kind() Kind { return KindOnDemandFeatureView }

// RequestFeatureView is a declared request feature view definition.
type RequestFeatureView struct{ common }

// NewRequestFeatureView builds a request feature view descriptor.
func NewRequestFeatureView(name string, attrs map[string]any) *RequestFeatureView {
	return &RequestFeatureView{common{name: name, attrs: attrs}}
}

func (*RequestFeatureView) Kind() Kind { return KindRequestFeatureView }

func (*RequestFeatureView) baseFeatureView() {}

// FeatureTable is a declared feature table definition.
type FeatureTable struct {
	common
	source *BatchSource
}

// NewFeatureTable builds a feature table descriptor.
func NewFeatureTable(name string, source *BatchSource, attrs map[string]any) *FeatureTable {
	return &FeatureTable{common: common{name: name, attrs: attrs}, source: source}
}

func (*FeatureTable) Kind() Kind { return KindFeatureTable }

// BatchSource returns the declared batch source, or nil when none was given.
func (t *FeatureTable) BatchSource() *BatchSource { return t.source }

func (*FeatureTable) tableBacked() {}

// FeatureService is a declared feature service definition.
type FeatureService struct{ common }

// NewFeatureService builds a feature service descriptor.
func NewFeatureService(name string, attrs map[string]any) *FeatureService {
	return &FeatureService{common{name: name, attrs: attrs}}
}

func (*FeatureService) Kind() Kind { return KindFeatureService }

// Capability membership is part of the model's contract; keep it pinned.
var (
	_ TableBacked     = (*FeatureView)(nil)
	_ TableBacked     = (*FeatureTable)(nil)
	_ BaseFeatureView = (*FeatureView)(nil)
	_ BaseFeatureView = (*RequestFeatureView)(nil)
)
