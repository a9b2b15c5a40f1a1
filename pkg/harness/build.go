package harness

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/vic/lazylam/pkg/church"
	"github.com/vic/lazylam/pkg/lambda"
)

// Build turns a structured description into a term:
//
//	4                          numeral #4
//	PLUS                       library combinator, or a variable bound by an enclosing lambda
//	[PLUS, 4, 3]               left-nested application
//	{var: x}                   variable, even if unbound
//	{lambda: x, body: ...}     abstraction; lambda may also list several parameters
//	TRUE, FALSE                the Church booleans
//
// YAML reads unquoted true/false in any case as booleans, so TRUE and FALSE
// always denote the library booleans. Only string names are looked up among
// bound parameters; a parameter that should shadow them must be quoted ("TRUE").
func Build(expr any) (lambda.Term, error) {
	return build(expr, nil)
}

func build(expr any, bound []string) (lambda.Term, error) {
	switch e := expr.(type) {
	case int:
		if e < 0 {
			return nil, fmt.Errorf("negative numeral %d", e)
		}
		return church.Church(e), nil
	case bool:
		if e {
			return church.True, nil
		}
		return church.False, nil
	case string:
		if slices.Contains(bound, e) {
			return lambda.V(e), nil
		}
		if t, ok := church.Lookup(e); ok {
			return t, nil
		}
		return nil, fmt.Errorf("unknown name %q", e)
	case []any:
		if len(e) == 0 {
			return nil, fmt.Errorf("empty application")
		}
		terms := make([]lambda.Term, len(e))
		for i, item := range e {
			t, err := build(item, bound)
			if err != nil {
				return nil, err
			}
			terms[i] = t
		}
		return lambda.Apply(terms[0], terms[1:]...), nil
	case map[string]any:
		return buildMap(e, bound)
	default:
		return nil, fmt.Errorf("unsupported expr %v (%T)", expr, expr)
	}
}

func buildMap(e map[string]any, bound []string) (lambda.Term, error) {
	if name, ok := e["var"]; ok {
		s, isString := name.(string)
		if !isString || len(e) != 1 {
			return nil, fmt.Errorf("var must be a lone name, got %v", e)
		}
		return lambda.V(s), nil
	}

	params, ok := e["lambda"]
	body, hasBody := e["body"]
	if !ok || !hasBody || len(e) != 2 {
		return nil, fmt.Errorf("expected {lambda, body} or {var}, got %v", e)
	}
	names, err := paramNames(params)
	if err != nil {
		return nil, err
	}
	inner, err := build(body, append(bound[:len(bound):len(bound)], names...))
	if err != nil {
		return nil, err
	}
	return lambda.Lams(names, inner), nil
}

func paramNames(params any) ([]string, error) {
	switch p := params.(type) {
	case string:
		return []string{p}, nil
	case []any:
		names := make([]string, 0, len(p))
		for _, item := range p {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("lambda parameter must be a name, got %v", item)
			}
			names = append(names, s)
		}
		if len(names) == 0 {
			return nil, fmt.Errorf("lambda without parameters")
		}
		return names, nil
	default:
		return nil, fmt.Errorf("lambda parameter must be a name, got %v", params)
	}
}
