// Package schema defines the HCL shapes of the six declarable object kinds.
// A definition file is a plain list of these blocks; the block type is the
// object's kind and the single label is its name. Everything the engine does
// not read stays in the remain body and is carried through as an opaque
// attribute payload.
package schema

import "github.com/hashicorp/hcl/v2"

// BatchSource is the data-source block on feature views and feature tables.
type BatchSource struct {
	Type string   `hcl:"type"`
	Path string   `hcl:"path,optional"`
	Body hcl.Body `hcl:",remain"`
}

// Entity declares an entity.
type Entity struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

// FeatureView declares a feature view backed by a batch data source.
type FeatureView struct {
	Name        string       `hcl:"name,label"`
	BatchSource *BatchSource `hcl:"batch_source,block"`
	Body        hcl.Body     `hcl:",remain"`
}

// OnDemandFeatureView declares an on-demand feature view.
type OnDemandFeatureView struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

// RequestFeatureView declares a request feature view.
type RequestFeatureView struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

// FeatureTable declares a feature table backed by a batch data source.
type FeatureTable struct {
	Name        string       `hcl:"name,label"`
	BatchSource *BatchSource `hcl:"batch_source,block"`
	Body        hcl.Body     `hcl:",remain"`
}

// FeatureService declares a feature service.
type FeatureService struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

// File is the top-level structure of one definition file. The remain body
// makes unrecognized top-level constructs a non-event rather than an error.
type File struct {
	Entities             []*Entity              `hcl:"entity,block"`
	FeatureViews         []*FeatureView         `hcl:"feature_view,block"`
	OnDemandFeatureViews []*OnDemandFeatureView `hcl:"on_demand_feature_view,block"`
	RequestFeatureViews  []*RequestFeatureView  `hcl:"request_feature_view,block"`
	FeatureTables        []*FeatureTable        `hcl:"feature_table,block"`
	FeatureServices      []*FeatureService      `hcl:"feature_service,block"`
	Body                 hcl.Body               `hcl:",remain"`
}
