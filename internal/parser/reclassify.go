package parser

import (
	"github.com/jacobjonsson/packet/internal/errors"
	"github.com/jacobjonsson/packet/pkg/ast"
)

// This file converts already-parsed expression subtrees into binding
// subtrees. The parser reaches for it at the two sites where a downstream
// token retroactively disambiguates a production:
//
//   - [a, b, c] is an array expression, but [a, b, c] = d makes it the
//     target of a destructuring assignment, whose left side is a binding.
//   - (a, b, c) is a sequence expression, but (a, b, c) => {} makes it an
//     arrow-function parameter list, whose entries are bindings.
//
// Looking ahead for the = or => instead would require scanning past
// arbitrarily nested parentheses, so like other parsers we assume an
// expression and convert after the fact. Not every expression has a
// binding shape; conversion failures surface as errors. On an assignment
// the caller falls back to keeping the expression (obj.x = y stays an
// ordinary assignment); on an arrow parameter list the failure is a fatal
// syntax error.
//
// The conversion is pure: it never reports to the sink and never touches
// the token stream.

// reclassifyWithDefault converts an expression into a binding plus an
// optional initializer. An assignment with the plain = operator splits
// into (target, initializer); anything else converts directly.
func reclassifyWithDefault(expr ast.Expression) (ast.Binding, ast.Expression, error) {
	if assign, ok := expr.(*ast.AssignmentExpression); ok && assign.Op == ast.AssignPlain {
		if assign.Binding != nil {
			return assign.Binding, assign.Right, nil
		}
		binding, err := reclassifyExpression(assign.Expr)
		if err != nil {
			return nil, nil, err
		}
		return binding, assign.Right, nil
	}

	binding, err := reclassifyExpression(expr)
	if err != nil {
		return nil, nil, err
	}
	return binding, nil, nil
}

// reclassifyExpression converts an expression into a binding.
func reclassifyExpression(expr ast.Expression) (ast.Binding, error) {
	switch e := expr.(type) {
	case *ast.Identifier:
		return e, nil

	case *ast.ArrayExpression:
		return reclassifyArray(e)

	case *ast.ObjectExpression:
		return reclassifyObject(e)

	default:
		return nil, errors.New(errors.InvalidBindingTarget, expr.Span())
	}
}

// reclassifyArray converts an array expression: holes stay holes, spread
// elements become rest items (terminal position only), assignment elements
// split into a target with a default.
func reclassifyArray(arr *ast.ArrayExpression) (*ast.ArrayBinding, error) {
	binding := &ast.ArrayBinding{}
	binding.SetSpan(arr.Span())

	for i, item := range arr.Items {
		if item == nil {
			binding.Items = append(binding.Items, nil)
			continue
		}

		if item.Spread {
			if i != len(arr.Items)-1 {
				return nil, errors.New(errors.InvalidBindingTarget, item.Expression.Span())
			}
			target, err := reclassifyExpression(item.Expression)
			if err != nil {
				return nil, err
			}
			binding.Items = append(binding.Items, &ast.ArrayBindingItem{Binding: target, Rest: true})
			continue
		}

		target, def, err := reclassifyWithDefault(item.Expression)
		if err != nil {
			return nil, err
		}
		binding.Items = append(binding.Items, &ast.ArrayBindingItem{Binding: target, Default: def})
	}
	return binding, nil
}

// reclassifyObject converts an object expression. Method and accessor
// properties have no binding shape; a spread property converts only when
// its value is a plain identifier.
func reclassifyObject(obj *ast.ObjectExpression) (*ast.ObjectBinding, error) {
	binding := &ast.ObjectBinding{}
	binding.SetSpan(obj.Span())

	for _, member := range obj.Properties {
		switch prop := member.(type) {
		case *ast.SpreadProperty:
			name, ok := prop.Value.(*ast.Identifier)
			if !ok {
				return nil, errors.New(errors.InvalidBindingTarget, prop.Span())
			}
			rest := &ast.RestBinding{Name: name}
			rest.SetSpan(prop.Span())
			binding.Properties = append(binding.Properties, rest)

		case *ast.ShorthandProperty:
			shorthand := &ast.ShorthandBinding{Name: prop.Name}
			shorthand.SetSpan(prop.Span())
			binding.Properties = append(binding.Properties, shorthand)

		case *ast.Property:
			target, def, err := reclassifyWithDefault(prop.Value)
			if err != nil {
				return nil, err
			}
			converted := &ast.PropertyBinding{Key: prop.Key, Binding: target, Default: def}
			converted.SetSpan(prop.Span())
			binding.Properties = append(binding.Properties, converted)

		default:
			// Methods and accessors.
			return nil, errors.New(errors.InvalidBindingTarget, member.Span())
		}
	}
	return binding, nil
}
