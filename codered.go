package codered

import (
	"github.com/sahilmob/code-red/ast"
	"github.com/sahilmob/code-red/internal/printer"
	"github.com/sahilmob/code-red/internal/template"
	"github.com/sahilmob/code-red/sourcemap"
)

// Version is the code-red version string.
const Version = "0.1.0"

// B builds a block fragment: an ordered list of statements.
// chunks are the N+1 pieces of template text around the N hole values.
//
// Example:
//
//	stmts, err := codered.B([]string{"a = b + c; d = e + f;"})
//
// With holes:
//
//	stmts, err := codered.B([]string{"a++; ", " b++"}, cond)
func B(chunks []string, values ...any) ([]ast.Stmt, error) {
	stmts, err := template.Statements(chunks, values)
	if err != nil {
		return nil, convertError(err)
	}
	return stmts, nil
}

// X builds a single-expression fragment.
//
// Example:
//
//	expr, err := codered.X([]string{"console.log(", ")"}, answer)
func X(chunks []string, values ...any) (ast.Expr, error) {
	expr, err := template.Expression(chunks, values)
	if err != nil {
		return nil, convertError(err)
	}
	return expr, nil
}

// P builds a single object-property fragment, suitable for splicing
// into an object literal or pattern.
//
// Example:
//
//	prop, err := codered.P([]string{"answer: 42"})
func P(chunks []string, values ...any) (*ast.Property, error) {
	prop, err := template.Property(chunks, values)
	if err != nil {
		return nil, convertError(err)
	}
	return prop, nil
}

// MustB is like B but panics if the template cannot be built.
// It simplifies initialization of global fragments.
func MustB(chunks []string, values ...any) []ast.Stmt {
	stmts, err := B(chunks, values...)
	if err != nil {
		panic(err)
	}
	return stmts
}

// MustX is like X but panics if the template cannot be built.
func MustX(chunks []string, values ...any) ast.Expr {
	expr, err := X(chunks, values...)
	if err != nil {
		panic(err)
	}
	return expr
}

// MustP is like P but panics if the template cannot be built.
func MustP(chunks []string, values ...any) *ast.Property {
	prop, err := P(chunks, values...)
	if err != nil {
		panic(err)
	}
	return prop
}

// Result holds the output of a Print call.
type Result struct {
	Code string
	Map  *sourcemap.Map
}

// Print renders a fragment to JavaScript source text together with its
// source map. node may be an expression, a statement, or a *ast.Program
// wrapping a statement list.
//
// If options is nil, defaults are used.
func Print(node ast.Node, options *PrintOptions) (*Result, error) {
	if options == nil {
		options = &PrintOptions{}
	}
	options.applyDefaults()

	res, err := printer.Print(node, printer.Options{
		SourceMapSource:  options.SourceMapSource,
		SourceMapContent: options.SourceMapContent,
		EncodeMappings:   *options.EncodeMappings,
		GetName:          options.GetName,
	})
	if err != nil {
		return nil, convertError(err)
	}
	return &Result{Code: res.Code, Map: res.Map}, nil
}
