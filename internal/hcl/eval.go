package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/gocty"
)

// dataDirVar is the variable through which data_dir is visible to the other
// dataset attributes.
const dataDirVar = "data_dir"

// evalContext returns the context dataset and server attributes are
// evaluated in.
func (l *Loader) evalContext(vars map[string]cty.Value) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: vars,
		Functions: map[string]function.Function{
			"env": l.envFunc(),
		},
	}
}

// envFunc implements env(name) and env(name, fallback). An unset variable
// yields the fallback, or an empty string when none is given.
func (l *Loader) envFunc() function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "name", Type: cty.String},
		},
		VarParam: &function.Parameter{Name: "fallback", Type: cty.String},
		Type:     function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			if len(args) > 2 {
				return cty.NilVal, fmt.Errorf("env takes at most one fallback, got %d", len(args)-1)
			}
			if v, ok := l.lookupEnv(args[0].AsString()); ok {
				return cty.StringVal(v), nil
			}
			if len(args) == 2 {
				return args[1], nil
			}
			return cty.StringVal(""), nil
		},
	})
}

// isExprDefined reports whether an optional attribute was written in the
// source. The decoder fills omitted optional attributes with a synthetic
// null expression, so a nil check alone is not enough.
func isExprDefined(expr hcl.Expression) bool {
	if expr == nil {
		return false
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		// References and function calls fail without a context, so they
		// were written by the user.
		return true
	}
	return !val.IsNull()
}

// checkNoSelfReference rejects an attribute whose expression reads the
// variable the attribute itself defines.
func checkNoSelfReference(expr hcl.Expression, name string) error {
	if !isExprDefined(expr) {
		return nil
	}
	for _, tr := range expr.Variables() {
		if tr.RootName() == name {
			return fmt.Errorf("%s: %q cannot refer to itself", tr.SourceRange(), name)
		}
	}
	return nil
}

// evalString evaluates an optional string attribute. ok is false when the
// attribute is absent or null.
func evalString(expr hcl.Expression, evalCtx *hcl.EvalContext, name string) (s string, ok bool, err error) {
	if !isExprDefined(expr) {
		return "", false, nil
	}
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return "", false, fmt.Errorf("failed to evaluate %q: %w", name, diags)
	}
	if val.IsNull() {
		return "", false, nil
	}
	val, err = convert.Convert(val, cty.String)
	if err != nil {
		return "", false, fmt.Errorf("%s: %q must be a string: %w", expr.Range(), name, err)
	}
	if !val.IsWhollyKnown() {
		return "", false, fmt.Errorf("%s: %q has no known value", expr.Range(), name)
	}
	return val.AsString(), true, nil
}

// evalInt evaluates an optional whole-number attribute. Strings holding a
// number are accepted so that ports can come from env().
func evalInt(expr hcl.Expression, evalCtx *hcl.EvalContext, name string) (n int, ok bool, err error) {
	if !isExprDefined(expr) {
		return 0, false, nil
	}
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return 0, false, fmt.Errorf("failed to evaluate %q: %w", name, diags)
	}
	if val.IsNull() {
		return 0, false, nil
	}
	val, err = convert.Convert(val, cty.Number)
	if err != nil {
		return 0, false, fmt.Errorf("%s: %q must be a number: %w", expr.Range(), name, err)
	}
	if err := gocty.FromCtyValue(val, &n); err != nil {
		return 0, false, fmt.Errorf("%s: %q must be a whole number: %w", expr.Range(), name, err)
	}
	return n, true, nil
}
