package repo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/featstore/internal/model"
	"github.com/vk/featstore/internal/testutil"
)

const allKindsHCL = `
entity "driver" {
  join_key = "driver_id"
}

feature_view "driver_stats" {
  entities = ["driver"]
  batch_source {
    type = "file"
    path = "data/stats.parquet"
  }
}

on_demand_feature_view "conv_rate_plus" {
  sources = ["driver_stats"]
}

request_feature_view "request_ctx" {
  schema = { val_to_add = "int64" }
}

feature_table "legacy_stats" {
  batch_source {
    type = "file"
    path = "data/legacy.parquet"
  }
}

feature_service "ranking_v1" {
  features = ["driver_stats"]
}
`

func TestParse_AllSixKinds(t *testing.T) {
	t.Parallel()

	root := testutil.WriteRepo(t, map[string]string{"definitions.hcl": allKindsHCL})

	parsed, err := Parse(testutil.Context(), root)
	require.NoError(t, err)

	require.Contains(t, parsed.Entities, "driver")
	require.Contains(t, parsed.FeatureViews, "driver_stats")
	require.Contains(t, parsed.OnDemandFeatureViews, "conv_rate_plus")
	require.Contains(t, parsed.RequestFeatureViews, "request_ctx")
	require.Contains(t, parsed.FeatureTables, "legacy_stats")
	require.Contains(t, parsed.FeatureServices, "ranking_v1")

	view := parsed.FeatureViews["driver_stats"]
	require.NotNil(t, view.BatchSource())
	assert.Equal(t, "file", view.BatchSource().Type)
	assert.Equal(t, "data/stats.parquet", view.BatchSource().Path)

	// Opaque attributes survive as plain Go values.
	assert.Equal(t, "driver_id", parsed.Entities["driver"].Attributes()["join_key"])
	assert.Equal(t, []any{"driver"}, view.Attributes()["entities"])
}

func TestParse_SpreadAcrossFiles(t *testing.T) {
	t.Parallel()

	root := testutil.WriteRepo(t, map[string]string{
		"entities.hcl":       `entity "driver" {}` + "\n" + `entity "user" {}`,
		"views/ranking.hcl":  `feature_service "ranking" {}`,
		"views/training.hcl": `feature_service "training" {}`,
	})

	parsed, err := Parse(testutil.Context(), root)
	require.NoError(t, err)

	assert.Len(t, parsed.Entities, 2)
	assert.Len(t, parsed.FeatureServices, 2)
}

func TestParse_SyntaxErrorIsFatalAndNamesTheModule(t *testing.T) {
	t.Parallel()

	root := testutil.WriteRepo(t, map[string]string{
		"good.hcl":       `entity "driver" {}`,
		"broken/bad.hcl": `entity "driver" {`, // unclosed block
	})

	_, err := Parse(testutil.Context(), root)
	require.Error(t, err)

	var discoverErr *DiscoverError
	require.True(t, errors.As(err, &discoverErr), "discovery failures carry the offending module")
	assert.Equal(t, "broken.bad", discoverErr.Module)
}

func TestParse_DuplicateNameWithinKindIsRejected(t *testing.T) {
	t.Parallel()

	root := testutil.WriteRepo(t, map[string]string{
		"a.hcl": `entity "driver" { join_key = "x" }`,
		"b.hcl": `entity "driver" { join_key = "x" }`,
	})

	_, err := Parse(testutil.Context(), root)
	require.Error(t, err)

	var discoverErr *DiscoverError
	require.True(t, errors.As(err, &discoverErr))
	assert.Equal(t, "b", discoverErr.Module, "the later declaration in scan order is the offender")
	assert.Contains(t, err.Error(), `duplicate entity "driver"`)
	assert.Contains(t, err.Error(), "already declared in module a")
}

func TestParse_SameNameAcrossKindsIsFine(t *testing.T) {
	t.Parallel()

	root := testutil.WriteRepo(t, map[string]string{
		"defs.hcl": `
entity "driver" {}
feature_service "driver" {}
`,
	})

	parsed, err := Parse(testutil.Context(), root)
	require.NoError(t, err)
	assert.Contains(t, parsed.Entities, "driver")
	assert.Contains(t, parsed.FeatureServices, "driver")
}

func TestParse_UnrecognizedTopLevelBlocksAreIgnored(t *testing.T) {
	t.Parallel()

	root := testutil.WriteRepo(t, map[string]string{
		"defs.hcl": `
entity "driver" {}

widget "unrelated" {
  knob = 3
}
`,
	})

	parsed, err := Parse(testutil.Context(), root)
	require.NoError(t, err)
	assert.Contains(t, parsed.Entities, "driver")
}

func TestParse_EmptyRepo(t *testing.T) {
	t.Parallel()

	parsed, err := Parse(testutil.Context(), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, parsed.Entities)
	assert.Empty(t, parsed.FeatureViews)
}

func TestParse_CapabilityMembership(t *testing.T) {
	t.Parallel()

	root := testutil.WriteRepo(t, map[string]string{"defs.hcl": allKindsHCL})

	parsed, err := Parse(testutil.Context(), root)
	require.NoError(t, err)

	var asObject model.Object = parsed.FeatureViews["driver_stats"]
	_, tableBacked := asObject.(model.TableBacked)
	assert.True(t, tableBacked, "feature views require backing infrastructure")

	asObject = parsed.RequestFeatureViews["request_ctx"]
	_, tableBacked = asObject.(model.TableBacked)
	assert.False(t, tableBacked, "request feature views carry no infrastructure")
	_, baseView := asObject.(model.BaseFeatureView)
	assert.True(t, baseView, "request feature views share the feature-view surface")
}
