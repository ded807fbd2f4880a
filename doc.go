// Package codered provides programmatic construction and printing of
// JavaScript ASTs.
//
// code-red is a code-generation toolkit: AST fragments are assembled
// from source-like templates with embedded holes, composed freely, and
// serialized back to formatted source text together with a source map
// that preserves the original locations of embedded nodes.
//
// # Quick Start
//
// Build fragments with the three template entry points:
//
//	stmts, err := codered.B([]string{"const answer = 42;"})
//	expr, err := codered.X([]string{"console.log(", ")"}, value)
//	prop, err := codered.P([]string{"answer: ", ""}, value)
//
// Fragments are themselves valid hole values, so templates compose:
//
//	body, _ := codered.B([]string{"", " return x * 2;"}, guard)
//	fn, _ := codered.X([]string{"function double(x) { ", " }"}, body)
//
// # Printing
//
// Print renders any fragment and emits a Source Map Revision 3 document
// alongside the code:
//
//	result, err := codered.Print(fn, &codered.PrintOptions{
//	    SourceMapSource: "input.js",
//	})
//	// result.Code, result.Map
//
// # Holes
//
// A hole value may be an AST node, a list of nodes (flattened into the
// surrounding list), a string (an identifier, or text when the hole sits
// inside a string literal), a number (a literal), or false/nil, which
// removes the enclosing element entirely.
//
// # Sigils
//
// Identifiers starting with '@' or '#' are accepted throughout template
// inputs and preserved in the tree. They mark deferred references for
// external rewriters; Print rejects any that remain.
//
// # Error Handling
//
// Errors are returned as specific types for detailed handling:
//   - [ParseError]: syntax errors in template source
//   - [TemplateError]: a hole value that does not fit its position
//   - [UnhandledSigilError]: a sigil identifier reached Print
//   - [UnhandledTypeError]: an unknown node variant reached Print
//
// # Thread Safety
//
// The package holds no shared mutable state. A single AST may be shared
// by concurrent Print calls as long as no caller mutates it; Print
// treats the tree as read-only.
package codered
