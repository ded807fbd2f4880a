package template

import (
	"strconv"
	"strings"

	"github.com/sahilmob/code-red/ast"
)

// subst performs the post-parse substitution walk. Children are
// addressed through their parent's field so that list splicing, element
// removal and whole-statement removal are uniform edits.
type subst struct {
	holes []any
	err   error
}

func (s *subst) fail(err *Error) {
	if s.err == nil {
		s.err = err
	}
}

// hole returns the value of a placeholder identifier, if e is one.
func (s *subst) hole(e ast.Expr) (any, bool) {
	id, ok := e.(*ast.Identifier)
	if !ok {
		return nil, false
	}
	idx, ok := holeIndex(id.Name)
	if !ok {
		return nil, false
	}
	if idx >= len(s.holes) {
		s.fail(errorf("placeholder %s has no hole value", id.Name))
		return nil, false
	}
	return s.holes[idx], true
}

// -----------------------------------------------------------------------------
// Coercions
// -----------------------------------------------------------------------------

// coerceExpr converts a hole value for an expression position.
func (s *subst) coerceExpr(v any) ast.Expr {
	switch x := v.(type) {
	case ast.Expr:
		return x
	case string:
		return &ast.Identifier{Name: x}
	case int:
		return numberLiteral(float64(x))
	case int64:
		return numberLiteral(float64(x))
	case float64:
		return numberLiteral(x)
	case *ast.ExpressionStatement:
		return x.Expression
	default:
		s.fail(errorf("cannot use %s as an expression", describe(v)))
		return nil
	}
}

// coerceIdent converts a hole value for a strict identifier position
// (function names, labels, non-computed keys).
func (s *subst) coerceIdent(v any) *ast.Identifier {
	switch x := v.(type) {
	case *ast.Identifier:
		return x
	case string:
		return &ast.Identifier{Name: x}
	default:
		s.fail(errorf("cannot use %s as an identifier", describe(v)))
		return nil
	}
}

// coercePattern converts a hole value for a binding position.
func (s *subst) coercePattern(v any) ast.Pattern {
	switch x := v.(type) {
	case ast.Pattern:
		return x
	case string:
		return &ast.Identifier{Name: x}
	default:
		s.fail(errorf("cannot use %s as a binding target", describe(v)))
		return nil
	}
}

// coerceStmts converts a hole value for a statement-list position.
func (s *subst) coerceStmts(v any) []ast.Stmt {
	switch x := v.(type) {
	case ast.Stmt:
		return []ast.Stmt{x}
	case []ast.Stmt:
		return x
	case ast.Expr:
		return []ast.Stmt{&ast.ExpressionStatement{Expression: x}}
	case string:
		return []ast.Stmt{&ast.ExpressionStatement{Expression: &ast.Identifier{Name: x}}}
	case []any:
		var out []ast.Stmt
		for _, el := range x {
			if isFalsy(el) {
				continue
			}
			out = append(out, s.coerceStmts(el)...)
		}
		return out
	default:
		s.fail(errorf("cannot use %s as a statement", describe(v)))
		return nil
	}
}

func numberLiteral(v float64) *ast.Literal {
	raw := strconv.FormatFloat(v, 'f', -1, 64)
	if v == float64(int64(v)) {
		raw = strconv.FormatInt(int64(v), 10)
	}
	return &ast.Literal{Value: v, Raw: raw}
}

func describe(v any) string {
	switch x := v.(type) {
	case nil:
		return "a null value"
	case bool:
		return "a boolean"
	case ast.Node:
		return "a " + x.Type() + " node"
	case string:
		return "a string"
	case int, int64, float64:
		return "a number"
	default:
		return "an unsupported value"
	}
}

// holeText renders a hole value spliced into string or template text.
func (s *subst) holeText(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return numberLiteral(x).Raw
	default:
		s.fail(errorf("cannot splice %s into a string literal", describe(v)))
		return ""
	}
}

// replaceText splices hole values into literal text containing
// placeholder tokens.
func (s *subst) replaceText(text string) string {
	for {
		i := strings.Index(text, holePrefix)
		if i < 0 {
			return text
		}
		j := i + len(holePrefix)
		for j < len(text) && text[j] >= '0' && text[j] <= '9' {
			j++
		}
		idx, ok := holeIndex(text[i:j])
		if !ok || idx >= len(s.holes) {
			s.fail(errorf("placeholder %s has no hole value", text[i:j]))
			return text
		}
		text = text[:i] + s.holeText(s.holes[idx]) + text[j:]
		if s.err != nil {
			return text
		}
	}
}

// -----------------------------------------------------------------------------
// Statement walk
// -----------------------------------------------------------------------------

func (s *subst) stmtList(list []ast.Stmt) []ast.Stmt {
	out := make([]ast.Stmt, 0, len(list))
	for _, st := range list {
		if s.err != nil {
			return out
		}
		if es, ok := st.(*ast.ExpressionStatement); ok {
			if v, isHole := s.hole(es.Expression); isHole {
				if isFalsy(v) {
					continue
				}
				out = append(out, s.coerceStmts(v)...)
				continue
			}
		}
		s.stmt(st)
		out = append(out, st)
	}
	return out
}

func (s *subst) stmt(st ast.Stmt) {
	if st == nil || s.err != nil {
		return
	}
	switch n := st.(type) {
	case *ast.ExpressionStatement:
		n.Expression = s.expr(n.Expression)

	case *ast.BlockStatement:
		n.Body = s.stmtList(n.Body)

	case *ast.EmptyStatement, *ast.DebuggerStatement:

	case *ast.IfStatement:
		n.Test = s.expr(n.Test)
		n.Consequent = s.substStmt(n.Consequent)
		if n.Alternate != nil {
			n.Alternate = s.substStmt(n.Alternate)
		}

	case *ast.SwitchStatement:
		n.Discriminant = s.expr(n.Discriminant)
		for _, cs := range n.Cases {
			if cs.Test != nil {
				cs.Test = s.expr(cs.Test)
			}
			cs.Consequent = s.stmtList(cs.Consequent)
		}

	case *ast.ReturnStatement:
		if n.Argument != nil {
			n.Argument = s.expr(n.Argument)
		}

	case *ast.BreakStatement:
		if n.Label != nil {
			n.Label = s.identOnly(n.Label)
		}

	case *ast.ContinueStatement:
		if n.Label != nil {
			n.Label = s.identOnly(n.Label)
		}

	case *ast.LabeledStatement:
		n.Label = s.identOnly(n.Label)
		n.Body = s.substStmt(n.Body)

	case *ast.ThrowStatement:
		n.Argument = s.expr(n.Argument)

	case *ast.TryStatement:
		s.stmt(n.Block)
		if n.Handler != nil {
			if n.Handler.Param != nil {
				n.Handler.Param = s.pattern(n.Handler.Param)
			}
			s.stmt(n.Handler.Body)
		}
		if n.Finalizer != nil {
			s.stmt(n.Finalizer)
		}

	case *ast.WithStatement:
		n.Object = s.expr(n.Object)
		n.Body = s.substStmt(n.Body)

	case *ast.ForStatement:
		switch init := n.Init.(type) {
		case nil:
		case *ast.VariableDeclaration:
			s.stmt(init)
		case ast.Expr:
			n.Init = s.expr(init)
		}
		if n.Test != nil {
			n.Test = s.expr(n.Test)
		}
		if n.Update != nil {
			n.Update = s.expr(n.Update)
		}
		n.Body = s.substStmt(n.Body)

	case *ast.ForInStatement:
		n.Left = s.forTarget(n.Left)
		n.Right = s.expr(n.Right)
		n.Body = s.substStmt(n.Body)

	case *ast.ForOfStatement:
		n.Left = s.forTarget(n.Left)
		n.Right = s.expr(n.Right)
		n.Body = s.substStmt(n.Body)

	case *ast.WhileStatement:
		n.Test = s.expr(n.Test)
		n.Body = s.substStmt(n.Body)

	case *ast.DoWhileStatement:
		n.Body = s.substStmt(n.Body)
		n.Test = s.expr(n.Test)

	case *ast.VariableDeclaration:
		for _, d := range n.Declarations {
			d.ID = s.pattern(d.ID)
			if d.Init != nil {
				d.Init = s.expr(d.Init)
			}
		}

	case *ast.FunctionDeclaration:
		if n.ID != nil {
			n.ID = s.identOnly(n.ID)
		}
		n.Params = s.patternList(n.Params)
		s.stmt(n.Body)

	case *ast.ClassDeclaration:
		if n.ID != nil {
			n.ID = s.identOnly(n.ID)
		}
		if n.SuperClass != nil {
			n.SuperClass = s.expr(n.SuperClass)
		}
		s.classBody(n.Body)

	default:
		// Modules and other statement forms carry no parseable holes.
	}
}

// substStmt rewrites a single nested statement position. A falsy hole
// here removes the statement by replacing it with an empty one.
func (s *subst) substStmt(st ast.Stmt) ast.Stmt {
	if es, ok := st.(*ast.ExpressionStatement); ok {
		if v, isHole := s.hole(es.Expression); isHole {
			if isFalsy(v) {
				return &ast.EmptyStatement{}
			}
			stmts := s.coerceStmts(v)
			if len(stmts) == 1 {
				return stmts[0]
			}
			return &ast.BlockStatement{Body: stmts}
		}
	}
	s.stmt(st)
	return st
}

func (s *subst) forTarget(left ast.Node) ast.Node {
	switch l := left.(type) {
	case *ast.VariableDeclaration:
		s.stmt(l)
		return l
	case ast.Pattern:
		return s.pattern(l)
	default:
		return left
	}
}

// -----------------------------------------------------------------------------
// Expression walk
// -----------------------------------------------------------------------------

// expr rewrites a scalar expression position.
func (s *subst) expr(e ast.Expr) ast.Expr {
	if e == nil || s.err != nil {
		return e
	}
	if v, isHole := s.hole(e); isHole {
		if isFalsy(v) {
			s.fail(errorf("falsy hole value in a position with no enclosing element"))
			return nil
		}
		return s.coerceExpr(v)
	}

	switch n := e.(type) {
	case *ast.Identifier:
		n.Name = s.replaceText(n.Name)

	case *ast.PrivateIdentifier:

	case *ast.Literal:
		if str, ok := n.Value.(string); ok && strings.Contains(str, holePrefix) {
			n.Value = s.replaceText(str)
			n.Raw = ""
		}

	case *ast.TemplateLiteral:
		s.templateLiteral(n)

	case *ast.TaggedTemplateExpression:
		n.Tag = s.expr(n.Tag)
		s.templateLiteral(n.Quasi)

	case *ast.ThisExpression, *ast.Super, *ast.MetaProperty:

	case *ast.ArrayExpression:
		n.Elements = s.exprList(n.Elements)

	case *ast.ObjectExpression:
		n.Properties = s.props(n.Properties)

	case *ast.SpreadElement:
		n.Argument = s.expr(n.Argument)

	case *ast.UnaryExpression:
		n.Argument = s.expr(n.Argument)

	case *ast.UpdateExpression:
		n.Argument = s.expr(n.Argument)

	case *ast.BinaryExpression:
		n.Left = s.expr(n.Left)
		n.Right = s.expr(n.Right)

	case *ast.LogicalExpression:
		n.Left = s.expr(n.Left)
		n.Right = s.expr(n.Right)

	case *ast.AssignmentExpression:
		switch left := n.Left.(type) {
		case ast.Expr:
			n.Left = s.expr(left)
		case ast.Pattern:
			n.Left = s.pattern(left)
		}
		n.Right = s.expr(n.Right)

	case *ast.ConditionalExpression:
		n.Test = s.expr(n.Test)
		n.Consequent = s.expr(n.Consequent)
		n.Alternate = s.expr(n.Alternate)

	case *ast.SequenceExpression:
		n.Expressions = s.exprList(n.Expressions)

	case *ast.YieldExpression:
		if n.Argument != nil {
			n.Argument = s.expr(n.Argument)
		}

	case *ast.AwaitExpression:
		n.Argument = s.expr(n.Argument)

	case *ast.MemberExpression:
		n.Object = s.expr(n.Object)
		n.Property = s.memberProperty(n.Property, n.Computed)

	case *ast.CallExpression:
		n.Callee = s.expr(n.Callee)
		n.Arguments = s.exprList(n.Arguments)

	case *ast.NewExpression:
		n.Callee = s.expr(n.Callee)
		if n.Arguments != nil {
			n.Arguments = s.exprList(n.Arguments)
		}

	case *ast.ChainExpression:
		n.Expression = s.expr(n.Expression)

	case *ast.FunctionExpression:
		if n.ID != nil {
			n.ID = s.identOnly(n.ID)
		}
		n.Params = s.patternList(n.Params)
		s.stmt(n.Body)

	case *ast.ArrowFunctionExpression:
		n.Params = s.patternList(n.Params)
		switch body := n.Body.(type) {
		case *ast.BlockStatement:
			s.stmt(body)
		case ast.Expr:
			n.Body = s.expr(body)
		}

	case *ast.ClassExpression:
		if n.ID != nil {
			n.ID = s.identOnly(n.ID)
		}
		if n.SuperClass != nil {
			n.SuperClass = s.expr(n.SuperClass)
		}
		s.classBody(n.Body)

	case *ast.Property:
		s.property(n)

	case *ast.ObjectPattern, *ast.ArrayPattern:
		return s.pattern(n.(ast.Pattern))
	}
	return e
}

// memberProperty handles the property position of member expressions:
// a string hole in non-computed position names the member.
func (s *subst) memberProperty(prop ast.Expr, computed bool) ast.Expr {
	if v, isHole := s.hole(prop); isHole {
		if !computed {
			return s.coerceIdent(v)
		}
		if isFalsy(v) {
			s.fail(errorf("falsy hole value in a position with no enclosing element"))
			return nil
		}
		return s.coerceExpr(v)
	}
	return s.expr(prop)
}

// exprList rewrites a list-typed expression position: arrays splice,
// falsy holes remove their element.
func (s *subst) exprList(list []ast.Expr) []ast.Expr {
	out := make([]ast.Expr, 0, len(list))
	for _, e := range list {
		if s.err != nil {
			return out
		}
		if e == nil {
			out = append(out, nil)
			continue
		}
		v, isHole := s.hole(e)
		if !isHole {
			out = append(out, s.expr(e))
			continue
		}
		if isFalsy(v) {
			continue
		}
		switch x := v.(type) {
		case []ast.Expr:
			out = append(out, x...)
		case []ast.Stmt:
			s.fail(errorf("cannot use statements in an expression list"))
		case []any:
			for _, el := range x {
				if isFalsy(el) {
					continue
				}
				out = append(out, s.coerceExpr(el))
			}
		default:
			out = append(out, s.coerceExpr(v))
		}
	}
	return out
}

func (s *subst) templateLiteral(n *ast.TemplateLiteral) {
	for _, q := range n.Quasis {
		if strings.Contains(q.Value.Cooked, holePrefix) || strings.Contains(q.Value.Raw, holePrefix) {
			cooked := q.Value.Cooked
			if cooked == "" {
				cooked = q.Value.Raw
			}
			q.Value.Cooked = s.replaceText(cooked)
			q.Value.Raw = ""
		}
	}
	for i, e := range n.Expressions {
		n.Expressions[i] = s.expr(e)
	}
}

// -----------------------------------------------------------------------------
// Properties
// -----------------------------------------------------------------------------

// props rewrites the entry list of an object literal or pattern.
func (s *subst) props(list []ast.Node) []ast.Node {
	out := make([]ast.Node, 0, len(list))
	for _, entry := range list {
		if s.err != nil {
			return out
		}
		prop, ok := entry.(*ast.Property)
		if !ok {
			switch other := entry.(type) {
			case *ast.SpreadElement:
				other.Argument = s.expr(other.Argument)
			case *ast.RestElement:
				other.Argument = s.pattern(other.Argument)
			}
			out = append(out, entry)
			continue
		}

		// A shorthand placeholder stands for whole properties.
		if prop.Shorthand {
			if keyExpr, isExpr := prop.Value.(ast.Expr); isExpr {
				if v, isHole := s.hole(keyExpr); isHole {
					if isFalsy(v) {
						continue
					}
					out = append(out, s.coerceProps(v)...)
					continue
				}
			}
		}

		// A falsy placeholder in value position removes the property.
		if valExpr, isExpr := prop.Value.(ast.Expr); isExpr {
			if v, isHole := s.hole(valExpr); isHole && isFalsy(v) {
				continue
			}
		}

		s.property(prop)
		out = append(out, prop)
	}
	return out
}

// coerceProps converts a hole value standing for one or more object
// entries.
func (s *subst) coerceProps(v any) []ast.Node {
	switch x := v.(type) {
	case *ast.Property:
		return []ast.Node{x}
	case *ast.SpreadElement:
		return []ast.Node{x}
	case *ast.Identifier:
		return []ast.Node{shorthand(x)}
	case string:
		return []ast.Node{shorthand(&ast.Identifier{Name: x})}
	case []*ast.Property:
		out := make([]ast.Node, 0, len(x))
		for _, p := range x {
			out = append(out, p)
		}
		return out
	case []ast.Node:
		return x
	case []any:
		var out []ast.Node
		for _, el := range x {
			if isFalsy(el) {
				continue
			}
			out = append(out, s.coerceProps(el)...)
		}
		return out
	default:
		s.fail(errorf("cannot use %s as an object property", describe(v)))
		return nil
	}
}

func shorthand(id *ast.Identifier) *ast.Property {
	return &ast.Property{Key: id, Value: id, Kind: "init", Shorthand: true}
}

func (s *subst) property(prop *ast.Property) {
	if prop.Computed {
		prop.Key = s.expr(prop.Key)
	} else if keyHole, isHole := s.hole(prop.Key); isHole {
		prop.Key = s.coerceIdent(keyHole)
	} else {
		prop.Key = s.expr(prop.Key)
	}
	switch v := prop.Value.(type) {
	case ast.Expr:
		prop.Value = s.expr(v)
	case ast.Pattern:
		prop.Value = s.pattern(v)
	}
}

// -----------------------------------------------------------------------------
// Patterns
// -----------------------------------------------------------------------------

func (s *subst) pattern(p ast.Pattern) ast.Pattern {
	if p == nil || s.err != nil {
		return p
	}
	if id, ok := p.(*ast.Identifier); ok {
		if idx, isHole := holeIndex(id.Name); isHole {
			if idx >= len(s.holes) {
				s.fail(errorf("placeholder %s has no hole value", id.Name))
				return nil
			}
			return s.coercePattern(s.holes[idx])
		}
		id.Name = s.replaceText(id.Name)
		return id
	}
	switch n := p.(type) {
	case *ast.MemberExpression:
		s.expr(n)

	case *ast.ObjectPattern:
		n.Properties = s.props(n.Properties)

	case *ast.ArrayPattern:
		out := make([]ast.Pattern, 0, len(n.Elements))
		for _, el := range n.Elements {
			if el == nil {
				out = append(out, nil)
				continue
			}
			if id, ok := el.(*ast.Identifier); ok {
				if idx, isHole := holeIndex(id.Name); isHole {
					if idx < len(s.holes) && isFalsy(s.holes[idx]) {
						continue
					}
				}
			}
			out = append(out, s.pattern(el))
		}
		n.Elements = out

	case *ast.AssignmentPattern:
		n.Left = s.pattern(n.Left)
		n.Right = s.expr(n.Right)

	case *ast.RestElement:
		n.Argument = s.pattern(n.Argument)
	}
	return p
}

func (s *subst) patternList(params []ast.Pattern) []ast.Pattern {
	out := make([]ast.Pattern, 0, len(params))
	for _, p := range params {
		if s.err != nil {
			return out
		}
		if id, ok := p.(*ast.Identifier); ok {
			if idx, isHole := holeIndex(id.Name); isHole {
				if idx >= len(s.holes) {
					s.fail(errorf("placeholder %s has no hole value", id.Name))
					return out
				}
				v := s.holes[idx]
				if isFalsy(v) {
					continue
				}
				switch x := v.(type) {
				case []ast.Pattern:
					out = append(out, x...)
				case []any:
					for _, el := range x {
						if isFalsy(el) {
							continue
						}
						out = append(out, s.coercePattern(el))
					}
				default:
					out = append(out, s.coercePattern(v))
				}
				continue
			}
		}
		out = append(out, s.pattern(p))
	}
	return out
}

// identOnly handles strict identifier positions.
func (s *subst) identOnly(id *ast.Identifier) *ast.Identifier {
	if idx, isHole := holeIndex(id.Name); isHole {
		if idx >= len(s.holes) {
			s.fail(errorf("placeholder %s has no hole value", id.Name))
			return id
		}
		return s.coerceIdent(s.holes[idx])
	}
	id.Name = s.replaceText(id.Name)
	return id
}

// -----------------------------------------------------------------------------
// Classes
// -----------------------------------------------------------------------------

func (s *subst) classBody(body *ast.ClassBody) {
	if body == nil {
		return
	}
	for _, el := range body.Body {
		switch n := el.(type) {
		case *ast.MethodDefinition:
			if n.Computed {
				n.Key = s.expr(n.Key)
			}
			if n.Value != nil {
				n.Value.Params = s.patternList(n.Value.Params)
				s.stmt(n.Value.Body)
			}
		case *ast.PropertyDefinition:
			if n.Computed {
				n.Key = s.expr(n.Key)
			}
			if n.Value != nil {
				n.Value = s.expr(n.Value)
			}
		case *ast.StaticBlock:
			n.Body = s.stmtList(n.Body)
		}
	}
}
