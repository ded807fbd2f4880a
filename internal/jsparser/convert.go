package jsparser

import (
	"fmt"
	"strings"

	fastast "github.com/t14raptor/go-fast/ast"

	"github.com/sahilmob/code-red/ast"
)

// converter lowers the upstream go-fast tree into the ESTree-shaped ast
// package. Offsets are carried over (minus the wrapping offset); the
// upstream parser does not attach line/column locations, so converted
// nodes carry no Loc and therefore produce no source-map segments.
type converter struct {
	off int
	err error
}

func (c *converter) failf(format string, args ...any) {
	if c.err == nil {
		c.err = &ParseError{Message: fmt.Sprintf(format, args...)}
	}
}

func (c *converter) base(n fastast.Node) ast.BaseNode {
	start := int(n.Idx0()) - c.off
	end := int(n.Idx1()) - c.off
	if start < 0 {
		start = 0
	}
	if end < start {
		end = start
	}
	return ast.BaseNode{Start: start, End: end}
}

// -----------------------------------------------------------------------------
// Statements
// -----------------------------------------------------------------------------

func (c *converter) stmts(list fastast.Statements) []ast.Stmt {
	out := make([]ast.Stmt, 0, len(list))
	for _, s := range list {
		if converted := c.stmt(s.Stmt); converted != nil {
			out = append(out, converted)
		}
	}
	return out
}

func (c *converter) stmt(s fastast.Stmt) ast.Stmt {
	if s == nil || c.err != nil {
		return nil
	}
	switch n := s.(type) {
	case *fastast.ExpressionStatement:
		out := &ast.ExpressionStatement{BaseNode: c.base(n), Expression: c.exprPtr(n.Expression)}
		if n.Comment != "" {
			out.LeadingComments = []ast.Comment{{Text: n.Comment}}
		}
		return out

	case *fastast.BlockStatement:
		return &ast.BlockStatement{BaseNode: c.base(n), Body: c.stmts(n.List)}

	case *fastast.EmptyStatement:
		return &ast.EmptyStatement{BaseNode: c.base(n)}

	case *fastast.DebuggerStatement:
		return &ast.DebuggerStatement{BaseNode: c.base(n)}

	case *fastast.IfStatement:
		out := &ast.IfStatement{
			BaseNode:   c.base(n),
			Test:       c.exprPtr(n.Test),
			Consequent: c.stmtPtr(n.Consequent),
		}
		if n.Alternate != nil {
			out.Alternate = c.stmtPtr(n.Alternate)
		}
		return out

	case *fastast.DoWhileStatement:
		return &ast.DoWhileStatement{
			BaseNode: c.base(n),
			Body:     c.stmtPtr(n.Body),
			Test:     c.exprPtr(n.Test),
		}

	case *fastast.WhileStatement:
		return &ast.WhileStatement{
			BaseNode: c.base(n),
			Test:     c.exprPtr(n.Test),
			Body:     c.stmtPtr(n.Body),
		}

	case *fastast.WithStatement:
		return &ast.WithStatement{
			BaseNode: c.base(n),
			Object:   c.exprPtr(n.Object),
			Body:     c.stmtPtr(n.Body),
		}

	case *fastast.ReturnStatement:
		out := &ast.ReturnStatement{BaseNode: c.base(n)}
		if n.Argument != nil {
			out.Argument = c.exprPtr(n.Argument)
		}
		return out

	case *fastast.ThrowStatement:
		return &ast.ThrowStatement{BaseNode: c.base(n), Argument: c.exprPtr(n.Argument)}

	case *fastast.BranchStatement:
		var label *ast.Identifier
		if n.Label != nil {
			label = c.identifier(n.Label)
		}
		if n.Token.String() == "continue" {
			return &ast.ContinueStatement{BaseNode: c.base(n), Label: label}
		}
		return &ast.BreakStatement{BaseNode: c.base(n), Label: label}

	case *fastast.LabelledStatement:
		return &ast.LabeledStatement{
			BaseNode: c.base(n),
			Label:    c.identifier(n.Label),
			Body:     c.stmtPtr(n.Statement),
		}

	case *fastast.SwitchStatement:
		out := &ast.SwitchStatement{
			BaseNode:     c.base(n),
			Discriminant: c.exprPtr(n.Discriminant),
		}
		for i := range n.Body {
			cs := &n.Body[i]
			converted := &ast.SwitchCase{
				BaseNode:   c.base(cs),
				Consequent: c.stmts(cs.Consequent),
			}
			if cs.Test != nil {
				converted.Test = c.exprPtr(cs.Test)
			}
			out.Cases = append(out.Cases, converted)
		}
		return out

	case *fastast.TryStatement:
		out := &ast.TryStatement{BaseNode: c.base(n), Block: c.blockStmt(n.Body)}
		if n.Catch != nil {
			handler := &ast.CatchClause{
				BaseNode: c.base(n.Catch),
				Body:     c.blockStmt(n.Catch.Body),
			}
			if n.Catch.Parameter != nil {
				handler.Param = c.bindingTarget(*n.Catch.Parameter)
			}
			out.Handler = handler
		}
		if n.Finally != nil {
			out.Finalizer = c.blockStmt(n.Finally)
		}
		return out

	case *fastast.VariableStatement:
		return &ast.VariableDeclaration{
			BaseNode:     c.base(n),
			Kind:         "var",
			Declarations: c.declarators(n.List),
		}

	case *fastast.LexicalDeclaration:
		return &ast.VariableDeclaration{
			BaseNode:     c.base(n),
			Kind:         n.Token.String(),
			Declarations: c.declarators(n.List),
		}

	case *fastast.ForStatement:
		out := &ast.ForStatement{BaseNode: c.base(n), Body: c.stmtPtr(n.Body)}
		if n.Initializer != nil {
			out.Init = c.forInit(*n.Initializer)
		}
		if n.Test != nil {
			out.Test = c.exprPtr(n.Test)
		}
		if n.Update != nil {
			out.Update = c.exprPtr(n.Update)
		}
		return out

	case *fastast.ForInStatement:
		return &ast.ForInStatement{
			BaseNode: c.base(n),
			Left:     c.forInto(n.Into),
			Right:    c.exprPtr(n.Source),
			Body:     c.stmtPtr(n.Body),
		}

	case *fastast.ForOfStatement:
		return &ast.ForOfStatement{
			BaseNode: c.base(n),
			Left:     c.forInto(n.Into),
			Right:    c.exprPtr(n.Source),
			Body:     c.stmtPtr(n.Body),
		}

	case *fastast.FunctionDeclaration:
		fn := c.functionLiteral(n.Function)
		return &ast.FunctionDeclaration{
			BaseNode:  fn.BaseNode,
			ID:        fn.ID,
			Params:    fn.Params,
			Body:      fn.Body,
			Generator: fn.Generator,
			Async:     fn.Async,
		}

	case *fastast.ClassDeclaration:
		cls := c.classLiteral(n.Class)
		return &ast.ClassDeclaration{
			BaseNode:   cls.BaseNode,
			ID:         cls.ID,
			SuperClass: cls.SuperClass,
			Body:       cls.Body,
		}

	case *fastast.BadStatement:
		c.failf("malformed statement")
		return nil

	default:
		c.failf("cannot convert statement %T", s)
		return nil
	}
}

func (c *converter) stmtPtr(s *fastast.Statement) ast.Stmt {
	if s == nil {
		return nil
	}
	return c.stmt(s.Stmt)
}

func (c *converter) blockStmt(b *fastast.BlockStatement) *ast.BlockStatement {
	if b == nil {
		return nil
	}
	return &ast.BlockStatement{BaseNode: c.base(b), Body: c.stmts(b.List)}
}

func (c *converter) forInit(init fastast.ForLoopInitializer) ast.Node {
	switch n := init.(type) {
	case *fastast.ForLoopInitializerExpression:
		return c.exprPtr(n.Expression)
	case *fastast.ForLoopInitializerVarDeclList:
		return &ast.VariableDeclaration{
			BaseNode:     c.base(n),
			Kind:         "var",
			Declarations: c.declarators(n.List),
		}
	case *fastast.ForLoopInitializerLexicalDecl:
		return &ast.VariableDeclaration{
			BaseNode:     c.base(&n.LexicalDeclaration),
			Kind:         n.LexicalDeclaration.Token.String(),
			Declarations: c.declarators(n.LexicalDeclaration.List),
		}
	default:
		c.failf("cannot convert for-loop initializer %T", init)
		return nil
	}
}

func (c *converter) forInto(into *fastast.ForInto) ast.Node {
	if into == nil {
		return nil
	}
	switch n := (*into).(type) {
	case *fastast.ForIntoVar:
		return &ast.VariableDeclaration{
			BaseNode:     c.base(n),
			Kind:         "var",
			Declarations: []*ast.VariableDeclarator{c.declarator(n.Binding)},
		}
	case *fastast.ForDeclaration:
		kind := "let"
		if n.IsConst {
			kind = "const"
		}
		return &ast.VariableDeclaration{
			BaseNode: c.base(n),
			Kind:     kind,
			Declarations: []*ast.VariableDeclarator{{
				BaseNode: c.base(n),
				ID:       c.bindingTarget(n.Target),
			}},
		}
	case *fastast.ForIntoExpression:
		expr := c.exprPtr(n.Expression)
		if pat, ok := expr.(ast.Pattern); ok {
			return pat
		}
		return expr
	default:
		c.failf("cannot convert loop target %T", *into)
		return nil
	}
}

func (c *converter) declarators(list fastast.VariableDeclarators) []*ast.VariableDeclarator {
	out := make([]*ast.VariableDeclarator, 0, len(list))
	for _, d := range list {
		out = append(out, c.declarator(d))
	}
	return out
}

func (c *converter) declarator(d *fastast.VariableDeclarator) *ast.VariableDeclarator {
	out := &ast.VariableDeclarator{
		BaseNode: c.base(d),
		ID:       c.bindingTarget(d.Target),
	}
	if d.Initializer != nil {
		out.Init = c.exprPtr(d.Initializer)
	}
	return out
}

// -----------------------------------------------------------------------------
// Expressions
// -----------------------------------------------------------------------------

func (c *converter) exprPtr(e *fastast.Expression) ast.Expr {
	if e == nil {
		return nil
	}
	return c.expr(e.Expr)
}

func (c *converter) expr(e fastast.Expr) ast.Expr {
	if e == nil || c.err != nil {
		return nil
	}
	switch n := e.(type) {
	case *fastast.Identifier:
		return c.identifier(n)

	case *fastast.PrivateIdentifier:
		id := c.identifier(n.Identifier)
		id.Name = "#" + strings.TrimPrefix(id.Name, "#")
		return id

	case *fastast.NumberLiteral:
		return &ast.Literal{BaseNode: c.base(n), Value: n.Value, Raw: n.Literal}

	case *fastast.StringLiteral:
		return &ast.Literal{BaseNode: c.base(n), Value: string(n.Value), Raw: n.Literal}

	case *fastast.BooleanLiteral:
		return &ast.Literal{BaseNode: c.base(n), Value: n.Value, Raw: n.Literal}

	case *fastast.NullLiteral:
		return &ast.Literal{BaseNode: c.base(n), Value: nil, Raw: n.Literal}

	case *fastast.RegExpLiteral:
		return &ast.Literal{
			BaseNode: c.base(n),
			Raw:      n.Literal,
			Regex:    &ast.RegexValue{Pattern: n.Pattern, Flags: n.Flags},
		}

	case *fastast.TemplateLiteral:
		return c.templateLiteral(n)

	case *fastast.ThisExpression:
		return &ast.ThisExpression{BaseNode: c.base(n)}

	case *fastast.SuperExpression:
		return &ast.Super{BaseNode: c.base(n)}

	case *fastast.MetaProperty:
		return &ast.MetaProperty{
			BaseNode: c.base(n),
			Meta:     c.identifier(n.Meta),
			Property: c.identifier(n.Property),
		}

	case *fastast.ArrayLiteral:
		out := &ast.ArrayExpression{BaseNode: c.base(n)}
		for i := range n.Value {
			out.Elements = append(out.Elements, c.exprOrNil(&n.Value[i]))
		}
		return out

	case *fastast.ObjectLiteral:
		out := &ast.ObjectExpression{BaseNode: c.base(n)}
		for _, prop := range n.Value {
			if converted := c.property(prop, false); converted != nil {
				out.Properties = append(out.Properties, converted)
			}
		}
		return out

	case *fastast.SpreadElement:
		return &ast.SpreadElement{BaseNode: c.base(n), Argument: c.expr(n.Expression.Expr)}

	case *fastast.UnaryExpression:
		op := n.Operator.String()
		if op == "++" || op == "--" {
			return &ast.UpdateExpression{
				BaseNode: c.base(n),
				Operator: op,
				Argument: c.exprPtr(n.Operand),
				Prefix:   !n.Postfix,
			}
		}
		return &ast.UnaryExpression{
			BaseNode: c.base(n),
			Operator: op,
			Argument: c.exprPtr(n.Operand),
		}

	case *fastast.BinaryExpression:
		op := n.Operator.String()
		if op == "&&" || op == "||" || op == "??" {
			return &ast.LogicalExpression{
				BaseNode: c.base(n),
				Operator: op,
				Left:     c.exprPtr(n.Left),
				Right:    c.exprPtr(n.Right),
			}
		}
		return &ast.BinaryExpression{
			BaseNode: c.base(n),
			Operator: op,
			Left:     c.exprPtr(n.Left),
			Right:    c.exprPtr(n.Right),
		}

	case *fastast.AssignExpression:
		return &ast.AssignmentExpression{
			BaseNode: c.base(n),
			Operator: assignOperator(n.Operator.String()),
			Left:     c.assignTarget(n.Left),
			Right:    c.exprPtr(n.Right),
		}

	case *fastast.ConditionalExpression:
		return &ast.ConditionalExpression{
			BaseNode:   c.base(n),
			Test:       c.exprPtr(n.Test),
			Consequent: c.exprPtr(n.Consequent),
			Alternate:  c.exprPtr(n.Alternate),
		}

	case *fastast.SequenceExpression:
		out := &ast.SequenceExpression{BaseNode: c.base(n)}
		for i := range n.Sequence {
			out.Expressions = append(out.Expressions, c.expr(n.Sequence[i].Expr))
		}
		return out

	case *fastast.CallExpression:
		out := &ast.CallExpression{
			BaseNode: c.base(n),
			Callee:   c.exprPtr(n.Callee),
		}
		out.Arguments = c.exprList(n.ArgumentList)
		return out

	case *fastast.NewExpression:
		out := &ast.NewExpression{
			BaseNode: c.base(n),
			Callee:   c.exprPtr(n.Callee),
		}
		if n.ArgumentList != nil {
			out.Arguments = c.exprList(n.ArgumentList)
		}
		return out

	case *fastast.DotExpression:
		return &ast.MemberExpression{
			BaseNode: c.base(n),
			Object:   c.exprPtr(n.Left),
			Property: c.identifier(&n.Identifier),
		}

	case *fastast.PrivateDotExpression:
		prop := c.identifier(n.Identifier.Identifier)
		prop.Name = "#" + strings.TrimPrefix(prop.Name, "#")
		return &ast.MemberExpression{
			BaseNode: c.base(n),
			Object:   c.exprPtr(n.Left),
			Property: prop,
		}

	case *fastast.BracketExpression:
		return &ast.MemberExpression{
			BaseNode: c.base(n),
			Object:   c.exprPtr(n.Left),
			Property: c.exprPtr(n.Member),
			Computed: true,
		}

	case *fastast.MemberExpression:
		prop := c.exprPtr(n.Property)
		_, dotted := prop.(*ast.Identifier)
		return &ast.MemberExpression{
			BaseNode: c.base(n),
			Object:   c.exprPtr(n.Object),
			Property: prop,
			Computed: !dotted,
		}

	case *fastast.OptionalChain:
		return &ast.ChainExpression{BaseNode: c.base(n), Expression: c.exprPtr(n.Base)}

	case *fastast.Optional:
		inner := c.exprPtr(n.Expr)
		switch v := inner.(type) {
		case *ast.MemberExpression:
			v.Optional = true
		case *ast.CallExpression:
			v.Optional = true
		}
		return inner

	case *fastast.FunctionLiteral:
		return c.functionLiteral(n)

	case *fastast.ArrowFunctionLiteral:
		out := &ast.ArrowFunctionExpression{
			BaseNode: c.base(n),
			Params:   c.params(n.ParameterList),
			Async:    n.Async,
		}
		switch body := n.Body.(type) {
		case *fastast.BlockStatement:
			out.Body = c.blockStmt(body)
		case *fastast.ExpressionBody:
			out.Body = c.expr(body.Expression.Expr)
		default:
			c.failf("cannot convert arrow body %T", n.Body)
		}
		return out

	case *fastast.ClassLiteral:
		return c.classLiteral(n)

	case *fastast.YieldExpression:
		out := &ast.YieldExpression{BaseNode: c.base(n), Delegate: n.Delegate}
		if n.Argument != nil {
			out.Argument = c.exprPtr(n.Argument)
		}
		return out

	case *fastast.AwaitExpression:
		return &ast.AwaitExpression{BaseNode: c.base(n), Argument: c.exprPtr(n.Argument)}

	case *fastast.ObjectPattern:
		return c.objectPattern(n)

	case *fastast.ArrayPattern:
		return c.arrayPattern(n)

	case *fastast.PropertyShort:
		if p := c.property(n, false); p != nil {
			return p.(*ast.Property)
		}
		return nil

	case *fastast.PropertyKeyed:
		if p := c.property(n, false); p != nil {
			return p.(*ast.Property)
		}
		return nil

	case *fastast.InvalidExpression:
		c.failf("malformed expression")
		return nil

	default:
		c.failf("cannot convert expression %T", e)
		return nil
	}
}

// exprOrNil keeps array elisions as nil elements.
func (c *converter) exprOrNil(e *fastast.Expression) ast.Expr {
	if e == nil || e.Expr == nil {
		return nil
	}
	return c.expr(e.Expr)
}

func (c *converter) exprList(list fastast.Expressions) []ast.Expr {
	out := make([]ast.Expr, 0, len(list))
	for i := range list {
		out = append(out, c.expr(list[i].Expr))
	}
	return out
}

func (c *converter) identifier(id *fastast.Identifier) *ast.Identifier {
	if id == nil {
		return nil
	}
	return &ast.Identifier{BaseNode: c.base(id), Name: restoreName(string(id.Name))}
}

func (c *converter) templateLiteral(n *fastast.TemplateLiteral) ast.Expr {
	tmpl := &ast.TemplateLiteral{BaseNode: c.base(n)}
	for i := range n.Elements {
		el := &n.Elements[i]
		tmpl.Quasis = append(tmpl.Quasis, &ast.TemplateElement{
			BaseNode: c.base(el),
			Value:    ast.TemplateValue{Raw: el.Literal, Cooked: string(el.Parsed)},
			Tail:     i == len(n.Elements)-1,
		})
	}
	for i := range n.Expressions {
		tmpl.Expressions = append(tmpl.Expressions, c.expr(n.Expressions[i].Expr))
	}
	if n.Tag != nil {
		return &ast.TaggedTemplateExpression{
			BaseNode: c.base(n),
			Tag:      c.exprPtr(n.Tag),
			Quasi:    tmpl,
		}
	}
	return tmpl
}

func (c *converter) functionLiteral(n *fastast.FunctionLiteral) *ast.FunctionExpression {
	if n == nil {
		return nil
	}
	out := &ast.FunctionExpression{
		BaseNode:  c.base(n),
		Params:    c.params(n.ParameterList),
		Body:      c.blockStmt(n.Body),
		Generator: n.Generator,
		Async:     n.Async,
	}
	if n.Name != nil {
		out.ID = c.identifier(n.Name)
	}
	return out
}

func (c *converter) classLiteral(n *fastast.ClassLiteral) *ast.ClassExpression {
	if n == nil {
		return nil
	}
	out := &ast.ClassExpression{
		BaseNode: c.base(n),
		Body:     &ast.ClassBody{BaseNode: c.base(n)},
	}
	if n.Name != nil {
		out.ID = c.identifier(n.Name)
	}
	if n.SuperClass != nil {
		out.SuperClass = c.exprPtr(n.SuperClass)
	}
	for _, el := range n.Body {
		if converted := c.classElement(el); converted != nil {
			out.Body.Body = append(out.Body.Body, converted)
		}
	}
	return out
}

func (c *converter) classElement(el fastast.ClassElement) ast.Node {
	switch n := el.(type) {
	case *fastast.FieldDefinition:
		out := &ast.PropertyDefinition{
			BaseNode: c.base(n),
			Key:      c.exprPtr(n.Key),
			Computed: n.Computed,
			Static:   n.Static,
		}
		if n.Initializer != nil {
			out.Value = c.exprPtr(n.Initializer)
		}
		return out

	case *fastast.MethodDefinition:
		key := c.exprPtr(n.Key)
		kind := string(n.Kind)
		if kind == "" || kind == "value" || kind == "method" {
			kind = "method"
			if !n.Computed && isNamed(key, "constructor") {
				kind = "constructor"
			}
		}
		return &ast.MethodDefinition{
			BaseNode: c.base(n),
			Key:      key,
			Value:    c.functionLiteral(n.Body),
			Kind:     kind,
			Computed: n.Computed,
			Static:   n.Static,
		}

	case *fastast.ClassStaticBlock:
		return &ast.StaticBlock{
			BaseNode: c.base(n),
			Body:     c.stmts(n.Block.List),
		}

	default:
		c.failf("cannot convert class element %T", el)
		return nil
	}
}

func isNamed(key ast.Expr, name string) bool {
	switch k := key.(type) {
	case *ast.Identifier:
		return k.Name == name
	case *ast.Literal:
		s, ok := k.Value.(string)
		return ok && s == name
	}
	return false
}

// -----------------------------------------------------------------------------
// Properties
// -----------------------------------------------------------------------------

// property converts an object literal or pattern entry. inPattern
// selects binding-pattern conversion of the value position.
func (c *converter) property(prop fastast.Property, inPattern bool) ast.Node {
	switch n := prop.(type) {
	case *fastast.PropertyShort:
		key := c.identifier(n.Name)
		out := &ast.Property{
			BaseNode:  c.base(n),
			Key:       key,
			Value:     key,
			Kind:      "init",
			Shorthand: true,
		}
		if n.Initializer != nil {
			out.Value = &ast.AssignmentPattern{
				BaseNode: c.base(n),
				Left:     key,
				Right:    c.exprPtr(n.Initializer),
			}
		}
		return out

	case *fastast.PropertyKeyed:
		out := &ast.Property{
			BaseNode: c.base(n),
			Key:      c.propertyKey(n.Key, n.Computed),
			Computed: n.Computed,
		}
		switch n.Kind {
		case fastast.PropertyKindGet:
			out.Kind = "get"
		case fastast.PropertyKindSet:
			out.Kind = "set"
		case fastast.PropertyKindMethod:
			out.Kind = "init"
			out.Method = true
		default:
			out.Kind = "init"
		}
		if inPattern && out.Kind == "init" && !out.Method {
			out.Value = c.patternExpr(n.Value.Expr)
		} else {
			out.Value = c.exprPtr(n.Value)
		}
		return out

	case *fastast.SpreadElement:
		return &ast.SpreadElement{BaseNode: c.base(n), Argument: c.expr(n.Expression.Expr)}

	default:
		c.failf("cannot convert property %T", prop)
		return nil
	}
}

// propertyKey converts an object key. The upstream parser renders bare
// identifier keys as string literals whose raw text carries no quotes;
// those come back as identifiers.
func (c *converter) propertyKey(key *fastast.Expression, computed bool) ast.Expr {
	if key == nil {
		return nil
	}
	if !computed {
		if s, ok := key.Expr.(*fastast.StringLiteral); ok {
			raw := s.Literal
			if raw != "" && raw[0] != '"' && raw[0] != '\'' {
				return &ast.Identifier{BaseNode: c.base(s), Name: restoreName(string(s.Value))}
			}
		}
	}
	return c.expr(key.Expr)
}

// -----------------------------------------------------------------------------
// Patterns
// -----------------------------------------------------------------------------

func (c *converter) params(list fastast.ParameterList) []ast.Pattern {
	out := make([]ast.Pattern, 0, len(list.List))
	for _, d := range list.List {
		pat := c.bindingTarget(d.Target)
		if d.Initializer != nil {
			pat = &ast.AssignmentPattern{
				BaseNode: c.base(d),
				Left:     pat,
				Right:    c.exprPtr(d.Initializer),
			}
		}
		out = append(out, pat)
	}
	if list.Rest != nil {
		out = append(out, &ast.RestElement{
			BaseNode: c.base(list.Rest),
			Argument: c.patternExpr(list.Rest),
		})
	}
	return out
}

func (c *converter) bindingTarget(bt fastast.BindingTarget) ast.Pattern {
	if bt == nil {
		return nil
	}
	return c.patternExpr(bt)
}

// patternExpr converts an expression appearing in binding position.
func (c *converter) patternExpr(e fastast.Expr) ast.Pattern {
	if e == nil || c.err != nil {
		return nil
	}
	switch n := e.(type) {
	case *fastast.Identifier:
		return c.identifier(n)

	case *fastast.ObjectPattern:
		return c.objectPattern(n)

	case *fastast.ArrayPattern:
		return c.arrayPattern(n)

	case *fastast.AssignExpression:
		return &ast.AssignmentPattern{
			BaseNode: c.base(n),
			Left:     c.patternExprPtr(n.Left),
			Right:    c.exprPtr(n.Right),
		}

	case *fastast.SpreadElement:
		return &ast.RestElement{
			BaseNode: c.base(n),
			Argument: c.patternExpr(n.Expression.Expr),
		}

	default:
		converted := c.expr(e)
		if pat, ok := converted.(ast.Pattern); ok {
			return pat
		}
		c.failf("cannot convert %T to a binding target", e)
		return nil
	}
}

func (c *converter) patternExprPtr(e *fastast.Expression) ast.Pattern {
	if e == nil {
		return nil
	}
	return c.patternExpr(e.Expr)
}

func (c *converter) objectPattern(n *fastast.ObjectPattern) *ast.ObjectPattern {
	out := &ast.ObjectPattern{BaseNode: c.base(n)}
	for _, prop := range n.Properties {
		if converted := c.property(prop, true); converted != nil {
			out.Properties = append(out.Properties, converted)
		}
	}
	if n.Rest != nil {
		out.Properties = append(out.Properties, &ast.RestElement{
			BaseNode: c.base(n.Rest),
			Argument: c.patternExpr(n.Rest),
		})
	}
	return out
}

func (c *converter) arrayPattern(n *fastast.ArrayPattern) *ast.ArrayPattern {
	out := &ast.ArrayPattern{BaseNode: c.base(n)}
	for i := range n.Elements {
		el := &n.Elements[i]
		if el.Expr == nil {
			out.Elements = append(out.Elements, nil)
			continue
		}
		out.Elements = append(out.Elements, c.patternExpr(el.Expr))
	}
	if n.Rest != nil {
		out.Elements = append(out.Elements, &ast.RestElement{
			BaseNode: c.base(n.Rest),
			Argument: c.patternExprPtr(n.Rest),
		})
	}
	return out
}

// assignTarget converts the left side of an assignment, preferring the
// pattern form for destructuring targets.
func (c *converter) assignTarget(e *fastast.Expression) ast.Node {
	if e == nil {
		return nil
	}
	switch e.Expr.(type) {
	case *fastast.ObjectPattern, *fastast.ArrayPattern:
		return c.patternExpr(e.Expr)
	}
	return c.expr(e.Expr)
}

// assignOperator normalizes the upstream operator token: the parser
// reports the base operator of compound assignments.
func assignOperator(op string) string {
	switch {
	case op == "=":
		return "="
	case strings.HasSuffix(op, "="):
		return op
	default:
		return op + "="
	}
}
