package apply

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/vk/featstore/internal/model"
	"github.com/vk/featstore/internal/reconcile"
)

// highlight renders object names the way the rest of the line is not.
var highlight = text.Colors{text.Bold, text.FgGreen}

// deleteOrder and registerOrder fix the kind grouping of the report lines.
// Deletions and registrations group differently; both orders are part of the
// output contract the tests pin down.
var (
	deleteOrder = []model.Kind{
		model.KindEntity,
		model.KindFeatureView,
		model.KindOnDemandFeatureView,
		model.KindFeatureTable,
		model.KindFeatureService,
	}
	registerOrder = []model.Kind{
		model.KindEntity,
		model.KindFeatureView,
		model.KindOnDemandFeatureView,
		model.KindFeatureService,
		model.KindFeatureTable,
	}
)

// report writes the human-readable outcome lines: one per deleted object,
// one per registered object, grouped kind-then-action, then infrastructure
// deploy and removal notices for every table-backed object.
func report(out io.Writer, parsed *model.ParsedRepo, plan *reconcile.Plan) {
	for _, kind := range deleteOrder {
		for _, obj := range plan.Delete[kind] {
			fmt.Fprintf(out, "Deleted %s %s from registry\n", kind, highlight.Sprint(obj.Name))
		}
	}

	for _, kind := range registerOrder {
		for _, obj := range plan.Keep[kind] {
			// Request feature views ride in the feature-view keep-set and
			// are reported under that group's label.
			fmt.Fprintf(out, "Registered %s %s\n", kind, highlight.Sprint(obj.Name()))
		}
	}

	// Infrastructure notices: declared feature tables plus the kept ordinary
	// feature views need deployment; deleted feature views and feature
	// tables need removal. Entities never appear here.
	for _, name := range model.Names(parsed.FeatureTables) {
		fmt.Fprintf(out, "Deploying infrastructure for %s\n", highlight.Sprint(name))
	}
	for _, obj := range plan.Keep[model.KindFeatureView] {
		if _, ok := obj.(model.TableBacked); !ok {
			continue
		}
		fmt.Fprintf(out, "Deploying infrastructure for %s\n", highlight.Sprint(obj.Name()))
	}
	for _, obj := range plan.Delete[model.KindFeatureView] {
		fmt.Fprintf(out, "Removing infrastructure for %s\n", highlight.Sprint(obj.Name))
	}
	for _, obj := range plan.Delete[model.KindFeatureTable] {
		fmt.Fprintf(out, "Removing infrastructure for %s\n", highlight.Sprint(obj.Name))
	}
}
