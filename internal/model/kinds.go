package model

// Kind identifies one of the six declarable object kinds. Its value is the
// HCL block type used to declare objects of that kind.
type Kind string

const (
	KindEntity              Kind = "entity"
	KindFeatureView         Kind = "feature_view"
	KindOnDemandFeatureView Kind = "on_demand_feature_view"
	KindRequestFeatureView  Kind = "request_feature_view"
	KindFeatureTable        Kind = "feature_table"
	KindFeatureService      Kind = "feature_service"
)

// String returns the human-readable form used in reports and errors.
func (k Kind) String() string {
	switch k {
	case KindEntity:
		return "entity"
	case KindFeatureView:
		return "feature view"
	case KindOnDemandFeatureView:
		return "on demand feature view"
	case KindRequestFeatureView:
		return "request feature view"
	case KindFeatureTable:
		return "feature table"
	case KindFeatureService:
		return "feature service"
	}
	return string(k)
}

// ApplyOrder is the fixed kind order used when the per-kind keep and delete
// sets are merged into the flat lists submitted to the store.
var ApplyOrder = []Kind{
	KindEntity,
	KindFeatureView,
	KindFeatureService,
	KindOnDemandFeatureView,
	KindFeatureTable,
}

// DummyEntityName is the reserved name of the internal placeholder entity.
// A persisted entity with this name is never deleted, declared or not.
const DummyEntityName = "__dummy"
