// Package model defines the format-agnostic object model of a feature
// repository: the six declarable object kinds, their descriptors, and the
// ParsedRepo snapshot produced by one discovery pass.
//
// Descriptors are opaque to the reconciliation loop beyond their identity
// (kind, name) and the two capability surfaces it cares about: whether an
// object shares the feature-view registration surface (BaseFeatureView) and
// whether it requires backing infrastructure (TableBacked). Everything else
// a definition declares is carried through unmodified as an attribute
// payload.
package model
