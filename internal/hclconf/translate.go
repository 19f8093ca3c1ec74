package hclconf

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/meshsweep/internal/sweep"
	"github.com/zclconf/go-cty/cty"
)

// translateSweep converts a decoded sweep block into the model, evaluating
// the param range expressions down to integers.
func translateSweep(block *sweepBlock) (*sweep.Sweep, error) {
	s := &sweep.Sweep{
		Name:       block.Name,
		Geometries: block.Geometries,
		Output:     block.Output,
		Echo:       block.Echo,
	}

	for _, pb := range block.Params {
		p, err := translateParam(pb)
		if err != nil {
			return nil, fmt.Errorf("sweep %q: %w", block.Name, err)
		}
		s.Params = append(s.Params, p)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// translateParam resolves a param block into either an explicit value list
// or an inclusive min/max range. Exactly one of the two forms is required.
func translateParam(pb *paramBlock) (sweep.Param, error) {
	p := sweep.Param{Name: pb.Name}

	hasValues := exprPresent(pb.Values)
	hasMin := exprPresent(pb.Min)
	hasMax := exprPresent(pb.Max)

	switch {
	case hasValues && (hasMin || hasMax):
		return p, fmt.Errorf("param %q: values and min/max are mutually exclusive", pb.Name)
	case hasValues:
		vals, err := intsFromExpr(pb.Values)
		if err != nil {
			return p, fmt.Errorf("param %q: values: %w", pb.Name, err)
		}
		if len(vals) == 0 {
			return p, fmt.Errorf("param %q: values list is empty", pb.Name)
		}
		p.Values = vals
	case hasMin && hasMax:
		var err error
		if p.Min, err = intFromExpr(pb.Min); err != nil {
			return p, fmt.Errorf("param %q: min: %w", pb.Name, err)
		}
		if p.Max, err = intFromExpr(pb.Max); err != nil {
			return p, fmt.Errorf("param %q: max: %w", pb.Name, err)
		}
	default:
		return p, fmt.Errorf("param %q: either values or both min and max are required", pb.Name)
	}

	return p, nil
}

// exprPresent reports whether an optional expression attribute was set in
// the source file. gohcl fills absent optional expression fields with a
// synthesized expression that evaluates to a cty null, so a nil check is
// not enough; an attribute explicitly assigned null counts as absent too.
func exprPresent(expr hcl.Expression) bool {
	if expr == nil {
		return false
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		// Malformed counts as present so translation reports the real error.
		return true
	}
	return !val.IsNull()
}

// intFromExpr statically evaluates an expression to a whole number.
func intFromExpr(expr hcl.Expression) (int, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return 0, diags
	}
	return intFromCty(val)
}

// intsFromExpr statically evaluates an expression to a list of whole numbers.
func intsFromExpr(expr hcl.Expression) ([]int, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if !val.CanIterateElements() {
		return nil, fmt.Errorf("expected a list of numbers, got %s", val.Type().FriendlyName())
	}

	var out []int
	for it := val.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		n, err := intFromCty(elem)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// intFromCty narrows a cty value to an int, rejecting non-numbers and
// fractional values.
func intFromCty(val cty.Value) (int, error) {
	if val.Type() != cty.Number {
		return 0, fmt.Errorf("expected a number, got %s", val.Type().FriendlyName())
	}
	bf := val.AsBigFloat()
	if !bf.IsInt() {
		return 0, fmt.Errorf("expected a whole number, got %s", bf.String())
	}
	n, _ := bf.Int64()
	return int(n), nil
}
