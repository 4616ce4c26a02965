package model

import "sort"

// ParsedRepo is the immutable snapshot of one discovery pass over a feature
// repository: one name-keyed collection per kind. It is built fresh on every
// invocation; nothing is cached across runs.
type ParsedRepo struct {
	Entities             map[string]*Entity
	FeatureViews         map[string]*FeatureView
	OnDemandFeatureViews map[string]*OnDemandFeatureView
	RequestFeatureViews  map[string]*RequestFeatureView
	FeatureTables        map[string]*FeatureTable
	FeatureServices      map[string]*FeatureService
}

// NewParsedRepo returns an empty snapshot ready to be populated by discovery.
func NewParsedRepo() *ParsedRepo {
	return &ParsedRepo{
		Entities:             make(map[string]*Entity),
		FeatureViews:         make(map[string]*FeatureView),
		OnDemandFeatureViews: make(map[string]*OnDemandFeatureView),
		RequestFeatureViews:  make(map[string]*RequestFeatureView),
		FeatureTables:        make(map[string]*FeatureTable),
		FeatureServices:      make(map[string]*FeatureService),
	}
}

// Names returns the keys of a descriptor collection in sorted order. All
// iteration over ParsedRepo collections goes through this so downstream
// output stays deterministic.
func Names[T Object](m map[string]T) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
