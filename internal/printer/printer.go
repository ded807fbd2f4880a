// Package printer emits JavaScript source text from an AST, producing a
// source map alongside the code.
//
// The printer treats the tree as read-only, keeps all state on a single
// printer value local to one Print call, and performs no I/O.
package printer

import (
	"fmt"
	"strings"

	"github.com/sahilmob/code-red/ast"
	"github.com/sahilmob/code-red/sourcemap"
)

// Options configures one Print call.
type Options struct {
	// SourceMapSource is recorded as sources[0] of the emitted map.
	// Empty means no source file is recorded.
	SourceMapSource string

	// SourceMapContent is stored verbatim in sourcesContent[0].
	SourceMapContent string

	// EncodeMappings selects VLQ-encoded mappings (true) or the decoded
	// segment arrays (false).
	EncodeMappings bool

	// GetName is applied to identifier names in binding and reference
	// position before emitting. When the result differs from the original
	// name, the mapping segment records the original so source-map
	// consumers can recover it. Nil means identity.
	GetName func(name string) string
}

// Result is the output of a Print call.
type Result struct {
	Code string
	Map  *sourcemap.Map
}

// UnhandledSigilError reports a sigil identifier that survived to print
// time. Sigils are a contract with external rewriters; reaching the
// printer with one is always a caller bug.
type UnhandledSigilError struct {
	Name string // including the leading '@' or '#'
}

func (e *UnhandledSigilError) Error() string {
	return fmt.Sprintf("Unhandled sigil %s", e.Name)
}

// UnhandledTypeError reports a node variant the printer does not know.
type UnhandledTypeError struct {
	TypeName string
}

func (e *UnhandledTypeError) Error() string {
	return fmt.Sprintf("Unhandled type %s", e.TypeName)
}

// Print renders node and returns the generated code with its source map.
// node may be any statement, expression or a *ast.Program.
func Print(node ast.Node, opts Options) (*Result, error) {
	p := &printer{getName: opts.GetName}

	switch n := node.(type) {
	case *ast.Program:
		p.stmtList(n.Body)
	case ast.Stmt:
		p.stmtList([]ast.Stmt{n})
	case ast.Expr:
		p.expr(n, precLowest)
	default:
		p.fail(&UnhandledTypeError{TypeName: node.Type()})
	}

	if p.err != nil {
		return nil, p.err
	}
	return &Result{
		Code: p.out.String(),
		Map:  p.smap.Map(opts.SourceMapSource, opts.SourceMapContent, opts.EncodeMappings),
	}, nil
}

// printer holds the generation state of a single Print call.
type printer struct {
	out    strings.Builder
	line   int // current generated line, 0-indexed
	col    int // current generated column, 0-indexed
	indent int
	smap   sourcemap.Builder

	getName func(string) string
	err     error // sticky; once set, all emission stops
}

func (p *printer) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

// write appends text to the output, tracking line and column.
func (p *printer) write(s string) {
	if p.err != nil {
		return
	}
	p.out.WriteString(s)
	for {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			p.col += len(s)
			return
		}
		p.line++
		p.col = 0
		s = s[i+1:]
	}
}

// newline starts a fresh output line at the current indentation.
func (p *printer) newline() {
	p.write("\n")
	for i := 0; i < p.indent; i++ {
		p.write("\t")
	}
}

// enter pushes a start mapping for nodes carrying an original location.
func (p *printer) enter(n ast.Node) {
	if p.err != nil {
		return
	}
	loc := n.Base().Loc
	if loc == nil || !loc.Start.IsValid() {
		return
	}
	p.smap.AddMapping(p.line, p.col, loc.Start.Line-1, loc.Start.Column)
}

// exit pushes an end mapping after the node's text has been emitted, so
// the mapped range of an embedded node is delimited on both sides.
func (p *printer) exit(n ast.Node) {
	if p.err != nil {
		return
	}
	loc := n.Base().Loc
	if loc == nil || !loc.End.IsValid() {
		return
	}
	p.smap.AddMapping(p.line, p.col, loc.End.Line-1, loc.End.Column)
}

// -----------------------------------------------------------------------------
// Comments
// -----------------------------------------------------------------------------

func (p *printer) leadingComments(n ast.Node) {
	for _, c := range n.Base().LeadingComments {
		p.comment(c)
		p.newline()
	}
}

func (p *printer) trailingComments(n ast.Node) {
	for _, c := range n.Base().TrailingComments {
		if strings.Contains(c.Text, "\n") {
			// Multi-line trailing comments read as leading for the next
			// statement; put them on their own lines.
			p.newline()
			p.comment(c)
			continue
		}
		p.write(" ")
		p.comment(c)
	}
}

func (p *printer) comment(c ast.Comment) {
	if c.Block {
		p.write("/*" + c.Text + "*/")
	} else {
		p.write("//" + c.Text)
	}
}

// -----------------------------------------------------------------------------
// Statements
// -----------------------------------------------------------------------------

// stmtList prints statements one per line at the current indentation.
func (p *printer) stmtList(list []ast.Stmt) {
	for i, s := range list {
		if i > 0 {
			p.newline()
		}
		p.leadingComments(s)
		p.stmt(s)
		p.trailingComments(s)
	}
}

func (p *printer) stmt(s ast.Stmt) {
	if p.err != nil {
		return
	}
	p.enter(s)
	defer p.exit(s)

	switch n := s.(type) {
	case *ast.ExpressionStatement:
		if startsWithForbiddenToken(n.Expression) {
			p.write("(")
			p.expr(n.Expression, precLowest)
			p.write(")")
		} else {
			p.expr(n.Expression, precLowest)
		}
		p.write(";")

	case *ast.BlockStatement:
		p.block(n)

	case *ast.EmptyStatement:
		p.write(";")

	case *ast.DebuggerStatement:
		p.write("debugger;")

	case *ast.VariableDeclaration:
		p.varDecl(n)
		p.write(";")

	case *ast.FunctionDeclaration:
		p.functionHead(n.Async, n.Generator, n.ID, n.Params)
		p.write(" ")
		p.block(n.Body)

	case *ast.ClassDeclaration:
		p.class(n.ID, n.SuperClass, n.Body)

	case *ast.IfStatement:
		p.write("if (")
		p.expr(n.Test, precLowest)
		p.write(") ")
		p.nestedStmt(n.Consequent)
		if n.Alternate != nil {
			if _, ok := n.Consequent.(*ast.BlockStatement); ok {
				p.write(" else ")
			} else {
				p.newline()
				p.write("else ")
			}
			p.nestedStmt(n.Alternate)
		}

	case *ast.SwitchStatement:
		p.write("switch (")
		p.expr(n.Discriminant, precLowest)
		p.write(") {")
		p.indent++
		for _, c := range n.Cases {
			p.newline()
			if c.Test != nil {
				p.write("case ")
				p.expr(c.Test, precLowest)
				p.write(":")
			} else {
				p.write("default:")
			}
			p.indent++
			if len(c.Consequent) > 0 {
				p.newline()
				p.stmtList(c.Consequent)
			}
			p.indent--
		}
		p.indent--
		p.newline()
		p.write("}")

	case *ast.ReturnStatement:
		p.write("return")
		if n.Argument != nil {
			p.write(" ")
			p.expr(n.Argument, precLowest)
		}
		p.write(";")

	case *ast.BreakStatement:
		p.write("break")
		if n.Label != nil {
			p.write(" ")
			p.identifier(n.Label, false)
		}
		p.write(";")

	case *ast.ContinueStatement:
		p.write("continue")
		if n.Label != nil {
			p.write(" ")
			p.identifier(n.Label, false)
		}
		p.write(";")

	case *ast.LabeledStatement:
		p.identifier(n.Label, false)
		p.write(": ")
		p.stmt(n.Body)

	case *ast.ThrowStatement:
		p.write("throw ")
		p.expr(n.Argument, precLowest)
		p.write(";")

	case *ast.TryStatement:
		p.write("try ")
		p.block(n.Block)
		if n.Handler != nil {
			p.write(" catch ")
			if n.Handler.Param != nil {
				p.write("(")
				p.pattern(n.Handler.Param)
				p.write(") ")
			}
			p.block(n.Handler.Body)
		}
		if n.Finalizer != nil {
			p.write(" finally ")
			p.block(n.Finalizer)
		}

	case *ast.WithStatement:
		p.write("with (")
		p.expr(n.Object, precLowest)
		p.write(") ")
		p.nestedStmt(n.Body)

	case *ast.ForStatement:
		p.write("for (")
		switch init := n.Init.(type) {
		case nil:
		case *ast.VariableDeclaration:
			p.varDecl(init)
		case ast.Expr:
			p.forInitExpr(init)
		default:
			p.fail(&UnhandledTypeError{TypeName: n.Init.Type()})
		}
		p.write("; ")
		if n.Test != nil {
			p.expr(n.Test, precLowest)
		}
		p.write("; ")
		if n.Update != nil {
			p.expr(n.Update, precLowest)
		}
		p.write(") ")
		p.nestedStmt(n.Body)

	case *ast.ForInStatement:
		p.forHead("in", n.Left, n.Right, false)
		p.nestedStmt(n.Body)

	case *ast.ForOfStatement:
		p.forHead("of", n.Left, n.Right, n.Await)
		p.nestedStmt(n.Body)

	case *ast.WhileStatement:
		p.write("while (")
		p.expr(n.Test, precLowest)
		p.write(") ")
		p.nestedStmt(n.Body)

	case *ast.DoWhileStatement:
		p.write("do ")
		p.nestedStmt(n.Body)
		p.write(" while (")
		p.expr(n.Test, precLowest)
		p.write(");")

	case *ast.ImportDeclaration:
		p.importDecl(n)

	case *ast.ExportNamedDeclaration:
		p.exportNamed(n)

	case *ast.ExportDefaultDeclaration:
		p.write("export default ")
		switch d := n.Declaration.(type) {
		case ast.Stmt:
			p.stmt(d)
		case ast.Expr:
			p.expr(d, precAssign)
			p.write(";")
		default:
			p.fail(&UnhandledTypeError{TypeName: n.Declaration.Type()})
		}

	case *ast.ExportAllDeclaration:
		p.write("export * ")
		if n.Exported != nil {
			p.write("as ")
			p.identifier(n.Exported, false)
			p.write(" ")
		}
		p.write("from ")
		p.expr(n.Source, precLowest)
		p.write(";")

	default:
		p.fail(&UnhandledTypeError{TypeName: s.Type()})
	}
}

// nestedStmt prints the body of a control statement on the same line as
// its head, whether the body is a block or a single statement.
func (p *printer) nestedStmt(s ast.Stmt) {
	if b, ok := s.(*ast.BlockStatement); ok {
		p.block(b)
		return
	}
	if _, ok := s.(*ast.IfStatement); ok {
		// else-if chains stay on the same line
		p.stmt(s)
		return
	}
	p.stmt(s)
}

func (p *printer) block(b *ast.BlockStatement) {
	p.enter(b)
	defer p.exit(b)
	if len(b.Body) == 0 {
		p.write("{}")
		return
	}
	p.write("{")
	p.indent++
	p.newline()
	p.stmtList(b.Body)
	p.indent--
	p.newline()
	p.write("}")
}

func (p *printer) varDecl(n *ast.VariableDeclaration) {
	p.enter(n)
	defer p.exit(n)
	p.write(n.Kind)
	p.write(" ")
	for i, d := range n.Declarations {
		if i > 0 {
			p.write(", ")
		}
		p.enter(d)
		p.pattern(d.ID)
		if d.Init != nil {
			p.write(" = ")
			p.expr(d.Init, precAssign)
		}
		p.exit(d)
	}
}

// forHead prints "for ([await] left in/of right) ".
func (p *printer) forHead(op string, left ast.Node, right ast.Expr, await bool) {
	p.write("for ")
	if await {
		p.write("await ")
	}
	p.write("(")
	switch l := left.(type) {
	case *ast.VariableDeclaration:
		p.varDecl(l)
	case ast.Pattern:
		p.pattern(l)
	default:
		p.fail(&UnhandledTypeError{TypeName: left.Type()})
	}
	p.write(" " + op + " ")
	p.expr(right, precLowest)
	p.write(") ")
}

// forInitExpr prints a for-loop init expression, parenthesizing the whole
// expression when it contains an `in` operator anywhere outside nested
// function, arrow or class bodies.
func (p *printer) forInitExpr(e ast.Expr) {
	if containsIn(e) {
		p.write("(")
		p.expr(e, precLowest)
		p.write(")")
		return
	}
	p.expr(e, precLowest)
}

func containsIn(e ast.Expr) bool {
	found := false
	ast.Walk(e, func(n ast.Node) bool {
		switch v := n.(type) {
		case *ast.BinaryExpression:
			if v.Operator == "in" {
				found = true
				return false
			}
		case *ast.FunctionExpression, *ast.ArrowFunctionExpression, *ast.ClassExpression:
			return false
		}
		return !found
	})
	return found
}

// -----------------------------------------------------------------------------
// Modules
// -----------------------------------------------------------------------------

func (p *printer) importDecl(n *ast.ImportDeclaration) {
	p.write("import ")
	if len(n.Specifiers) > 0 {
		named := false
		first := true
		for _, spec := range n.Specifiers {
			switch s := spec.(type) {
			case *ast.ImportDefaultSpecifier:
				if !first {
					p.write(", ")
				}
				p.identifier(s.Local, false)
			case *ast.ImportNamespaceSpecifier:
				if !first {
					p.write(", ")
				}
				p.write("* as ")
				p.identifier(s.Local, false)
			case *ast.ImportSpecifier:
				if !named {
					if !first {
						p.write(", ")
					}
					p.write("{ ")
					named = true
				} else {
					p.write(", ")
				}
				p.moduleName(s.Imported)
				if s.Local != nil && localNameDiffers(s.Imported, s.Local) {
					p.write(" as ")
					p.identifier(s.Local, false)
				}
			default:
				p.fail(&UnhandledTypeError{TypeName: spec.Type()})
			}
			first = false
		}
		if named {
			p.write(" }")
		}
		p.write(" from ")
	}
	p.expr(n.Source, precLowest)
	p.write(";")
}

func (p *printer) exportNamed(n *ast.ExportNamedDeclaration) {
	p.write("export ")
	if n.Declaration != nil {
		p.stmt(n.Declaration)
		return
	}
	p.write("{ ")
	for i, s := range n.Specifiers {
		if i > 0 {
			p.write(", ")
		}
		p.moduleName(s.Local)
		if namesDiffer(s.Local, s.Exported) {
			p.write(" as ")
			p.moduleName(s.Exported)
		}
	}
	p.write(" }")
	if n.Source != nil {
		p.write(" from ")
		p.expr(n.Source, precLowest)
	}
	p.write(";")
}

// moduleName prints an import/export name, which is an identifier or a
// string literal. Mangling never applies to module names.
func (p *printer) moduleName(n ast.Node) {
	switch v := n.(type) {
	case *ast.Identifier:
		p.identifier(v, false)
	case *ast.Literal:
		p.expr(v, precLowest)
	default:
		p.fail(&UnhandledTypeError{TypeName: n.Type()})
	}
}

func localNameDiffers(imported ast.Node, local *ast.Identifier) bool {
	id, ok := imported.(*ast.Identifier)
	return !ok || id.Name != local.Name
}

func namesDiffer(a, b ast.Node) bool {
	ai, aok := a.(*ast.Identifier)
	bi, bok := b.(*ast.Identifier)
	if aok && bok {
		return ai.Name != bi.Name
	}
	return b != nil
}
