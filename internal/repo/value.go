package repo

import (
	"fmt"
	"math/big"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

// bodyAttributes evaluates the attributes left over after schema decoding
// and lowers them into plain Go values, so descriptor payloads round-trip
// through the registry without dragging HCL types along. Attributes must be
// literal; there is no evaluation context for definitions to reference.
func bodyAttributes(body hcl.Body) (map[string]any, error) {
	if body == nil {
		return nil, nil
	}

	var attrs hcl.Attributes
	if syntaxBody, ok := body.(*hclsyntax.Body); ok {
		// Read attributes directly so unrecognized nested blocks are
		// ignored rather than rejected.
		attrs = make(hcl.Attributes, len(syntaxBody.Attributes))
		for name, attr := range syntaxBody.Attributes {
			attrs[name] = attr.AsHCLAttribute()
		}
	} else {
		var diags hcl.Diagnostics
		attrs, diags = body.JustAttributes()
		if diags.HasErrors() {
			return nil, diags
		}
	}

	if len(attrs) == 0 {
		return nil, nil
	}

	out := make(map[string]any, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("attribute %q: %w", name, diags)
		}
		gv, err := goValue(val)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", name, err)
		}
		out[name] = gv
	}
	return out, nil
}

// goValue lowers an evaluated cty value into plain Go data.
func goValue(v cty.Value) (any, error) {
	if v.IsNull() {
		return nil, nil
	}
	t := v.Type()
	switch {
	case t == cty.String:
		return v.AsString(), nil
	case t == cty.Bool:
		return v.True(), nil
	case t == cty.Number:
		bf := v.AsBigFloat()
		if i, acc := bf.Int64(); acc == big.Exact {
			return i, nil
		}
		f, _ := bf.Float64()
		return f, nil
	case t.IsTupleType() || t.IsListType() || t.IsSetType():
		var out []any
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			gv, err := goValue(ev)
			if err != nil {
				return nil, err
			}
			out = append(out, gv)
		}
		return out, nil
	case t.IsObjectType() || t.IsMapType():
		out := make(map[string]any)
		for it := v.ElementIterator(); it.Next(); {
			kv, ev := it.Element()
			gv, err := goValue(ev)
			if err != nil {
				return nil, err
			}
			out[kv.AsString()] = gv
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported value type %s", t.FriendlyName())
}
