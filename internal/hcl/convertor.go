package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/mathgrid/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// decodeOverrides evaluates the `overrides` attribute, which must be an object
// or map of non-negative whole numbers keyed by node identifier.
func decodeOverrides(ctx context.Context, expr hcl.Expression) (map[string]uint64, error) {
	if expr == nil {
		return nil, nil
	}
	logger := ctxlog.FromContext(ctx)

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.IsWhollyKnown() {
		return nil, fmt.Errorf("overrides must be known at load time")
	}

	ty := val.Type()
	if !ty.IsObjectType() && !ty.IsMapType() {
		return nil, fmt.Errorf("overrides must be an object of numbers, got %s", ty.FriendlyName())
	}

	overrides := make(map[string]uint64, val.LengthInt())
	for it := val.ElementIterator(); it.Next(); {
		key, elem := it.Element()
		id := key.AsString()

		num, err := convert.Convert(elem, cty.Number)
		if err != nil {
			return nil, fmt.Errorf("override %q: cannot convert %s to number: %w", id, elem.Type().FriendlyName(), err)
		}
		if num.IsNull() {
			return nil, fmt.Errorf("override %q: value cannot be null", id)
		}

		if !num.AsBigFloat().IsInt() {
			return nil, fmt.Errorf("override %q: value must be a whole number", id)
		}

		var v uint64
		if err := gocty.FromCtyValue(num, &v); err != nil {
			return nil, fmt.Errorf("override %q: %w", id, err)
		}
		logger.Debug("Decoded override.", "id", id, "value", v)
		overrides[id] = v
	}
	return overrides, nil
}
