// Package jsparser adapts a standards-conformant ECMAScript parser to
// the ESTree-shaped trees the rest of the module works with.
//
// The adapter is a thin front-end over github.com/t14raptor/go-fast:
// it tunnels the @/# sigil extension through the parser, wraps the
// input according to the requested fragment shape, and converts the
// upstream tree, preserving the byte offsets the parser populates.
package jsparser

import (
	"fmt"

	"github.com/t14raptor/go-fast/parser"

	"github.com/sahilmob/code-red/ast"
)

// ParseError represents a syntax error reported by the underlying
// parser. The upstream message is carried verbatim.
type ParseError struct {
	Message string
}

// Error returns the upstream parser's message.
func (e *ParseError) Error() string {
	return e.Message
}

// ParseStatements parses src as a statement list and returns the body.
func ParseStatements(src string) ([]ast.Stmt, error) {
	prog, err := parseFile(tunnelSigils(src), 0)
	if err != nil {
		return nil, err
	}
	return prog.Body, nil
}

// ParseExpression parses src as a single expression.
// The input is parenthesized so that object literals and similar
// statement-ambiguous forms parse in expression context.
func ParseExpression(src string) (ast.Expr, error) {
	wrapped := "(" + tunnelSigils(src) + "\n)"
	prog, err := parseFile(wrapped, 1)
	if err != nil {
		return nil, err
	}
	if len(prog.Body) != 1 {
		return nil, &ParseError{Message: "expected a single expression"}
	}
	es, ok := prog.Body[0].(*ast.ExpressionStatement)
	if !ok {
		return nil, &ParseError{Message: fmt.Sprintf("expected an expression, got %s", prog.Body[0].Type())}
	}
	return es.Expression, nil
}

// ParseProperty parses src as a single object property.
// The input is wrapped in an object literal and the sole property of the
// result is returned.
func ParseProperty(src string) (*ast.Property, error) {
	wrapped := "({" + tunnelSigils(src) + "\n})"
	prog, err := parseFile(wrapped, 2)
	if err != nil {
		return nil, err
	}
	if len(prog.Body) != 1 {
		return nil, &ParseError{Message: "expected a single property"}
	}
	es, ok := prog.Body[0].(*ast.ExpressionStatement)
	if !ok {
		return nil, &ParseError{Message: "expected a single property"}
	}
	obj, ok := es.Expression.(*ast.ObjectExpression)
	if !ok || len(obj.Properties) != 1 {
		return nil, &ParseError{Message: "expected a single property"}
	}
	prop, ok := obj.Properties[0].(*ast.Property)
	if !ok {
		return nil, &ParseError{Message: fmt.Sprintf("expected a property, got %s", obj.Properties[0].Type())}
	}
	return prop, nil
}

// parseFile invokes the upstream parser and converts its tree.
// off is subtracted from every byte offset so wrapped inputs keep
// offsets relative to the caller's source.
func parseFile(src string, off int) (*ast.Program, error) {
	upstream, err := parser.ParseFile(src)
	if err != nil {
		return nil, &ParseError{Message: err.Error()}
	}
	c := &converter{off: off}
	prog := &ast.Program{
		Body:       c.stmts(upstream.Body),
		SourceType: "script",
	}
	if c.err != nil {
		return nil, c.err
	}
	return prog, nil
}
