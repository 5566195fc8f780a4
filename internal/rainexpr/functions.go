package rainexpr

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsyntax"
)

// ErrUnknownFunction is returned for calls to functions outside the allowed set.
var ErrUnknownFunction = errors.New("unknown function in rain expression")

// FunctionNames returns the names of the callable functions, sorted.
func FunctionNames() []string {
	names := make([]string, 0, len(functions))
	for n := range functions {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// calledFunctions walks the syntax tree and collects every function name
// called anywhere in it.
func calledFunctions(expr hclsyntax.Expression, found map[string]struct{}) {
	if expr == nil {
		return
	}
	switch e := expr.(type) {
	case *hclsyntax.FunctionCallExpr:
		found[e.Name] = struct{}{}
		for _, arg := range e.Args {
			calledFunctions(arg, found)
		}
	case *hclsyntax.BinaryOpExpr:
		calledFunctions(e.LHS, found)
		calledFunctions(e.RHS, found)
	case *hclsyntax.ConditionalExpr:
		calledFunctions(e.Condition, found)
		calledFunctions(e.TrueResult, found)
		calledFunctions(e.FalseResult, found)
	case *hclsyntax.UnaryOpExpr:
		calledFunctions(e.Val, found)
	case *hclsyntax.ParenthesesExpr:
		calledFunctions(e.Expression, found)
	case *hclsyntax.TemplateExpr:
		for _, part := range e.Parts {
			calledFunctions(part, found)
		}
	case *hclsyntax.TemplateWrapExpr:
		calledFunctions(e.Wrapped, found)
	case *hclsyntax.TupleConsExpr:
		for _, item := range e.Exprs {
			calledFunctions(item, found)
		}
	case *hclsyntax.IndexExpr:
		calledFunctions(e.Collection, found)
		calledFunctions(e.Key, found)
	}
}

// checkFunctions rejects calls to functions that are not available. Only
// native syntax expressions can be inspected; others fail at evaluation.
func (e *Expr) checkFunctions() error {
	syntaxExpr, ok := e.expr.(hclsyntax.Expression)
	if !ok {
		return nil
	}

	found := make(map[string]struct{})
	calledFunctions(syntaxExpr, found)

	var unknown []string
	for name := range found {
		if _, ok := functions[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return fmt.Errorf("%w: %s (available: %s)", ErrUnknownFunction, strings.Join(unknown, ", "), strings.Join(FunctionNames(), ", "))
}
