package printer

import (
	"strconv"
	"strings"

	"github.com/sahilmob/code-red/ast"
)

// expr prints an expression, wrapping it in parentheses when its own
// precedence is too loose for the position it appears in.
func (p *printer) expr(e ast.Expr, min prec) {
	if p.err != nil || e == nil {
		return
	}
	if len(e.Base().LeadingComments) > 0 {
		for _, c := range e.Base().LeadingComments {
			p.comment(c)
			if !c.Block {
				p.newline()
			} else {
				p.write(" ")
			}
		}
	}
	wrap := exprPrec(e) < min
	if wrap {
		p.write("(")
	}

	switch n := e.(type) {
	case *ast.Identifier:
		p.identifier(n, true)

	case *ast.PrivateIdentifier:
		// Private names reach here only in member/in positions; they obey
		// the same sigil contract as '#'-prefixed identifiers.
		p.fail(&UnhandledSigilError{Name: "#" + n.Name})

	case *ast.Literal:
		p.enter(n)
		p.write(literalText(n))
		p.exit(n)

	case *ast.TemplateLiteral:
		p.templateLiteral(n)

	case *ast.TaggedTemplateExpression:
		p.enter(n)
		p.expr(n.Tag, precCall)
		p.templateLiteral(n.Quasi)
		p.exit(n)

	case *ast.ThisExpression:
		p.enter(n)
		p.write("this")
		p.exit(n)

	case *ast.Super:
		p.write("super")

	case *ast.MetaProperty:
		p.identifier(n.Meta, false)
		p.write(".")
		p.identifier(n.Property, false)

	case *ast.ArrayExpression:
		p.enter(n)
		p.write("[")
		for i, el := range n.Elements {
			if i > 0 {
				p.write(", ")
			}
			if el == nil {
				continue
			}
			p.expr(el, precAssign)
		}
		p.write("]")
		p.exit(n)

	case *ast.ObjectExpression:
		p.enter(n)
		if len(n.Properties) == 0 {
			p.write("{}")
		} else {
			p.write("{ ")
			for i, prop := range n.Properties {
				if i > 0 {
					p.write(", ")
				}
				p.objectEntry(prop)
			}
			p.write(" }")
		}
		p.exit(n)

	case *ast.Property:
		p.property(n, false)

	case *ast.SpreadElement:
		p.write("...")
		p.expr(n.Argument, precAssign)

	case *ast.UnaryExpression:
		p.enter(n)
		p.write(n.Operator)
		if isWordOperator(n.Operator) || needsOperandSpace(n.Operator, n.Argument) {
			p.write(" ")
		}
		p.expr(n.Argument, precPrefix)
		p.exit(n)

	case *ast.UpdateExpression:
		p.enter(n)
		if n.Prefix {
			p.write(n.Operator)
			p.expr(n.Argument, precPrefix)
		} else {
			p.expr(n.Argument, precPostfix)
			p.write(n.Operator)
		}
		p.exit(n)

	case *ast.BinaryExpression:
		p.binary(n, n.Operator, n.Left, n.Right)

	case *ast.LogicalExpression:
		p.logical(n)

	case *ast.AssignmentExpression:
		p.enter(n)
		switch left := n.Left.(type) {
		case ast.Expr:
			p.expr(left, precCall)
		case ast.Pattern:
			p.pattern(left)
		default:
			p.fail(&UnhandledTypeError{TypeName: n.Left.Type()})
		}
		p.write(" " + n.Operator + " ")
		p.expr(n.Right, precAssign)
		p.exit(n)

	case *ast.ConditionalExpression:
		p.enter(n)
		p.expr(n.Test, precNullishCoalescing)
		p.write(" ? ")
		p.expr(n.Consequent, precAssign)
		p.write(" : ")
		p.expr(n.Alternate, precAssign)
		p.exit(n)

	case *ast.SequenceExpression:
		p.enter(n)
		for i, x := range n.Expressions {
			if i > 0 {
				p.write(", ")
			}
			p.expr(x, precAssign)
		}
		p.exit(n)

	case *ast.YieldExpression:
		p.enter(n)
		p.write("yield")
		if n.Delegate {
			p.write("*")
		}
		if n.Argument != nil {
			p.write(" ")
			p.expr(n.Argument, precAssign)
		}
		p.exit(n)

	case *ast.AwaitExpression:
		p.enter(n)
		p.write("await ")
		p.expr(n.Argument, precPrefix)
		p.exit(n)

	case *ast.MemberExpression:
		p.member(n)

	case *ast.CallExpression:
		p.enter(n)
		p.expr(n.Callee, precCall)
		if n.Optional {
			p.write("?.")
		}
		p.argList(n.Arguments)
		p.exit(n)

	case *ast.NewExpression:
		p.enter(n)
		p.write("new ")
		p.expr(n.Callee, precCall)
		if n.Arguments != nil {
			p.argList(n.Arguments)
		}
		p.exit(n)

	case *ast.ChainExpression:
		p.expr(n.Expression, min)

	case *ast.FunctionExpression:
		p.enter(n)
		p.functionHead(n.Async, n.Generator, n.ID, n.Params)
		p.write(" ")
		p.block(n.Body)
		p.exit(n)

	case *ast.ArrowFunctionExpression:
		p.enter(n)
		if n.Async {
			p.write("async ")
		}
		p.paramList(n.Params)
		p.write(" => ")
		switch body := n.Body.(type) {
		case *ast.BlockStatement:
			p.block(body)
		case ast.Expr:
			if startsWithForbiddenToken(body) {
				p.write("(")
				p.expr(body, precLowest)
				p.write(")")
			} else {
				p.expr(body, precAssign)
			}
		default:
			p.fail(&UnhandledTypeError{TypeName: n.Body.Type()})
		}
		p.exit(n)

	case *ast.ClassExpression:
		p.enter(n)
		p.class(n.ID, n.SuperClass, n.Body)
		p.exit(n)

	case *ast.ObjectPattern, *ast.ArrayPattern:
		p.pattern(n.(ast.Pattern))

	default:
		p.fail(&UnhandledTypeError{TypeName: e.Type()})
	}

	if wrap {
		p.write(")")
	}
}

// identifier emits an identifier, failing on sigils and applying the
// mangling hook when the identifier names a binding or reference.
func (p *printer) identifier(id *ast.Identifier, mangle bool) {
	if p.err != nil {
		return
	}
	name := id.Name
	if strings.HasPrefix(name, "@") || strings.HasPrefix(name, "#") {
		p.fail(&UnhandledSigilError{Name: name})
		return
	}
	emitted := name
	if mangle && p.getName != nil {
		emitted = p.getName(name)
	}
	if loc := id.Loc; loc != nil && loc.Start.IsValid() {
		if emitted != name {
			p.smap.AddNamedMapping(p.line, p.col, loc.Start.Line-1, loc.Start.Column, name)
		} else {
			p.smap.AddMapping(p.line, p.col, loc.Start.Line-1, loc.Start.Column)
		}
	}
	p.write(emitted)
	p.exit(id)
}

// binary prints a binary operator application with associativity-aware
// child precedence bounds.
func (p *printer) binary(n ast.Expr, op string, left, right ast.Expr) {
	level, ok := binaryPrec[op]
	if !ok {
		p.fail(&UnhandledTypeError{TypeName: n.Type()})
		return
	}
	leftMin, rightMin := level, level+1
	if rightAssociative(op) {
		leftMin, rightMin = level+1, level
	}
	p.enter(n)
	if op == "**" && needsExponentBaseParens(left) {
		p.write("(")
		p.expr(left, precLowest)
		p.write(")")
	} else {
		p.expr(left, leftMin)
	}
	p.write(" " + op + " ")
	p.expr(right, rightMin)
	p.exit(n)
}

// needsExponentBaseParens reports whether the left operand of ** must be
// parenthesized: the base of an ExponentiationExpression is an
// UpdateExpression production, so a bare unary or await operand is a
// syntax error (-a ** b does not parse).
func needsExponentBaseParens(left ast.Expr) bool {
	switch left.(type) {
	case *ast.UnaryExpression, *ast.AwaitExpression:
		return true
	}
	return false
}

// logical prints &&, || and ??. Mixing ?? with && or || requires
// parentheses regardless of precedence.
func (p *printer) logical(n *ast.LogicalExpression) {
	level := binaryPrec[n.Operator]
	leftMin, rightMin := level, level+1
	p.enter(n)
	p.logicalChild(n.Operator, n.Left, leftMin)
	p.write(" " + n.Operator + " ")
	p.logicalChild(n.Operator, n.Right, rightMin)
	p.exit(n)
}

func (p *printer) logicalChild(parentOp string, child ast.Expr, min prec) {
	if c, ok := child.(*ast.LogicalExpression); ok {
		mixed := (parentOp == "??") != (c.Operator == "??")
		if mixed {
			p.write("(")
			p.expr(child, precLowest)
			p.write(")")
			return
		}
	}
	p.expr(child, min)
}

// member prints obj.prop / obj[prop] / obj?.prop.
func (p *printer) member(n *ast.MemberExpression) {
	p.enter(n)
	objMin := precCall
	if needsMemberObjectParens(n.Object) {
		objMin = precPrimary + 1 // force parentheses
	}
	p.expr(n.Object, objMin)
	if n.Computed {
		if n.Optional {
			p.write("?.")
		}
		p.write("[")
		p.expr(n.Property, precLowest)
		p.write("]")
	} else {
		if n.Optional {
			p.write("?.")
		} else {
			p.write(".")
		}
		switch prop := n.Property.(type) {
		case *ast.Identifier:
			p.identifier(prop, false)
		case *ast.PrivateIdentifier:
			p.fail(&UnhandledSigilError{Name: "#" + prop.Name})
		default:
			p.fail(&UnhandledTypeError{TypeName: n.Property.Type()})
		}
	}
	p.exit(n)
}

// needsMemberObjectParens reports whether the object of a member access
// must be parenthesized even though its precedence would not demand it
// (number literals and new without arguments).
func needsMemberObjectParens(obj ast.Expr) bool {
	switch o := obj.(type) {
	case *ast.Literal:
		if _, ok := o.Value.(float64); ok {
			return !strings.ContainsAny(literalText(o), ".eExX")
		}
		if _, ok := o.Value.(int); ok {
			return true
		}
	case *ast.NewExpression:
		return o.Arguments == nil
	}
	return false
}

func (p *printer) argList(args []ast.Expr) {
	p.write("(")
	for i, a := range args {
		if i > 0 {
			p.write(", ")
		}
		p.expr(a, precAssign)
	}
	p.write(")")
}

// -----------------------------------------------------------------------------
// Functions and classes
// -----------------------------------------------------------------------------

func (p *printer) functionHead(async, generator bool, id *ast.Identifier, params []ast.Pattern) {
	if async {
		p.write("async ")
	}
	p.write("function")
	if generator {
		p.write("*")
	}
	if id != nil {
		p.write(" ")
		p.identifier(id, true)
	}
	p.paramList(params)
}

func (p *printer) paramList(params []ast.Pattern) {
	p.write("(")
	for i, param := range params {
		if i > 0 {
			p.write(", ")
		}
		p.pattern(param)
	}
	p.write(")")
}

func (p *printer) class(id *ast.Identifier, superClass ast.Expr, body *ast.ClassBody) {
	p.write("class")
	if id != nil {
		p.write(" ")
		p.identifier(id, true)
	}
	if superClass != nil {
		p.write(" extends ")
		p.expr(superClass, precCall)
	}
	p.write(" ")
	if body == nil || len(body.Body) == 0 {
		p.write("{}")
		return
	}
	p.write("{")
	p.indent++
	for _, el := range body.Body {
		p.newline()
		p.classElement(el)
	}
	p.indent--
	p.newline()
	p.write("}")
}

func (p *printer) classElement(el ast.Node) {
	switch n := el.(type) {
	case *ast.MethodDefinition:
		if n.Static {
			p.write("static ")
		}
		switch n.Kind {
		case "get":
			p.write("get ")
		case "set":
			p.write("set ")
		}
		fn := n.Value
		if fn.Async {
			p.write("async ")
		}
		if fn.Generator {
			p.write("*")
		}
		p.propertyKey(n.Key, n.Computed)
		p.paramList(fn.Params)
		p.write(" ")
		p.block(fn.Body)

	case *ast.PropertyDefinition:
		if n.Static {
			p.write("static ")
		}
		p.propertyKey(n.Key, n.Computed)
		if n.Value != nil {
			p.write(" = ")
			p.expr(n.Value, precAssign)
		}
		p.write(";")

	case *ast.StaticBlock:
		p.write("static {")
		p.indent++
		p.newline()
		p.stmtList(n.Body)
		p.indent--
		p.newline()
		p.write("}")

	default:
		p.fail(&UnhandledTypeError{TypeName: el.Type()})
	}
}

// -----------------------------------------------------------------------------
// Object entries and patterns
// -----------------------------------------------------------------------------

func (p *printer) objectEntry(n ast.Node) {
	switch e := n.(type) {
	case *ast.Property:
		p.property(e, false)
	case *ast.SpreadElement:
		p.write("...")
		p.expr(e.Argument, precAssign)
	default:
		p.fail(&UnhandledTypeError{TypeName: n.Type()})
	}
}

// property prints a single object entry; pattern selects binding-pattern
// semantics for the value position.
func (p *printer) property(n *ast.Property, pattern bool) {
	p.enter(n)
	defer p.exit(n)

	if n.Shorthand {
		switch v := n.Value.(type) {
		case *ast.Identifier:
			p.identifier(v, false)
			return
		case *ast.AssignmentPattern:
			p.pattern(v)
			return
		}
	}

	if n.Kind == "get" || n.Kind == "set" {
		p.write(n.Kind + " ")
		fn, ok := n.Value.(*ast.FunctionExpression)
		if !ok {
			p.fail(&UnhandledTypeError{TypeName: n.Value.Type()})
			return
		}
		p.propertyKey(n.Key, n.Computed)
		p.paramList(fn.Params)
		p.write(" ")
		p.block(fn.Body)
		return
	}

	if n.Method {
		fn, ok := n.Value.(*ast.FunctionExpression)
		if !ok {
			p.fail(&UnhandledTypeError{TypeName: n.Value.Type()})
			return
		}
		if fn.Async {
			p.write("async ")
		}
		if fn.Generator {
			p.write("*")
		}
		p.propertyKey(n.Key, n.Computed)
		p.paramList(fn.Params)
		p.write(" ")
		p.block(fn.Body)
		return
	}

	p.propertyKey(n.Key, n.Computed)
	p.write(": ")
	switch v := n.Value.(type) {
	case ast.Expr:
		if pattern {
			if pat, ok := n.Value.(ast.Pattern); ok {
				p.pattern(pat)
				return
			}
		}
		p.expr(v, precAssign)
	case ast.Pattern:
		p.pattern(v)
	default:
		p.fail(&UnhandledTypeError{TypeName: n.Value.Type()})
	}
}

// propertyKey prints an object or class member key. The mangling hook
// never applies to non-computed keys.
func (p *printer) propertyKey(key ast.Expr, computed bool) {
	if computed {
		p.write("[")
		p.expr(key, precAssign)
		p.write("]")
		return
	}
	switch k := key.(type) {
	case *ast.Identifier:
		p.identifier(k, false)
	case *ast.PrivateIdentifier:
		p.fail(&UnhandledSigilError{Name: "#" + k.Name})
	case *ast.Literal:
		p.enter(k)
		p.write(literalText(k))
		p.exit(k)
	default:
		p.fail(&UnhandledTypeError{TypeName: key.Type()})
	}
}

// pattern prints a binding target.
func (p *printer) pattern(pat ast.Pattern) {
	if p.err != nil {
		return
	}
	switch n := pat.(type) {
	case *ast.Identifier:
		p.identifier(n, true)

	case *ast.MemberExpression:
		p.member(n)

	case *ast.ObjectPattern:
		if len(n.Properties) == 0 {
			p.write("{}")
			return
		}
		p.write("{ ")
		for i, prop := range n.Properties {
			if i > 0 {
				p.write(", ")
			}
			switch e := prop.(type) {
			case *ast.Property:
				p.property(e, true)
			case *ast.RestElement:
				p.write("...")
				p.pattern(e.Argument)
			default:
				p.fail(&UnhandledTypeError{TypeName: prop.Type()})
			}
		}
		p.write(" }")

	case *ast.ArrayPattern:
		p.write("[")
		for i, el := range n.Elements {
			if i > 0 {
				p.write(", ")
			}
			if el == nil {
				continue
			}
			p.pattern(el)
		}
		p.write("]")

	case *ast.AssignmentPattern:
		p.pattern(n.Left)
		p.write(" = ")
		p.expr(n.Right, precAssign)

	case *ast.RestElement:
		p.write("...")
		p.pattern(n.Argument)

	default:
		p.fail(&UnhandledTypeError{TypeName: pat.Type()})
	}
}

// -----------------------------------------------------------------------------
// Literals and templates
// -----------------------------------------------------------------------------

// literalText renders a literal: raw text verbatim when present,
// otherwise a canonical form of the value.
func literalText(n *ast.Literal) string {
	if n.Raw != "" {
		return n.Raw
	}
	if n.Regex != nil {
		return "/" + n.Regex.Pattern + "/" + n.Regex.Flags
	}
	switch v := n.Value.(type) {
	case nil:
		return "null"
	case bool:
		if v {
			return "true"
		}
		return "false"
	case string:
		return quoteString(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return jsNumber(v)
	default:
		return quoteString(stringify(v))
	}
}

func stringify(v any) string {
	type stringer interface{ String() string }
	if s, ok := v.(stringer); ok {
		return s.String()
	}
	return ""
}

// jsNumber formats a float the way JavaScript renders numbers.
func jsNumber(v float64) string {
	if v == float64(int64(v)) && v < 1e15 && v > -1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	s := strconv.FormatFloat(v, 'g', -1, 64)
	// Go writes 1e+10 where JavaScript writes 10000000000 or 1e10.
	return strings.Replace(s, "e+", "e", 1)
}

// quoteString renders a single-quoted string literal with standard
// escapes for control characters.
func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\'':
			b.WriteString(`\'`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\v':
			b.WriteString(`\v`)
		case 0:
			b.WriteString(`\0`)
		default:
			if r < 0x20 {
				b.WriteString(`\x`)
				if r < 0x10 {
					b.WriteByte('0')
				}
				b.WriteString(strconv.FormatInt(int64(r), 16))
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('\'')
	return b.String()
}

func (p *printer) templateLiteral(n *ast.TemplateLiteral) {
	p.enter(n)
	p.write("`")
	for i, q := range n.Quasis {
		text := q.Value.Raw
		if text == "" && q.Value.Cooked != "" {
			text = escapeTemplateText(q.Value.Cooked)
		}
		p.write(text)
		if i < len(n.Expressions) {
			p.write("${")
			p.expr(n.Expressions[i], precLowest)
			p.write("}")
		}
	}
	p.write("`")
	p.exit(n)
}

// escapeTemplateText escapes backticks and ${ in cooked quasi text.
func escapeTemplateText(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "`", "\\`")
	s = strings.ReplaceAll(s, "${", "\\${")
	return s
}

// -----------------------------------------------------------------------------
// Small predicates
// -----------------------------------------------------------------------------

func isWordOperator(op string) bool {
	switch op {
	case "typeof", "void", "delete":
		return true
	}
	return false
}

// needsOperandSpace keeps -(-x) and +(+x) from fusing into -- and ++.
func needsOperandSpace(op string, arg ast.Expr) bool {
	switch a := arg.(type) {
	case *ast.UnaryExpression:
		return a.Operator == op
	case *ast.UpdateExpression:
		return a.Prefix && strings.HasPrefix(a.Operator, op)
	}
	return false
}

// startsWithForbiddenToken reports whether an expression, emitted at the
// start of a statement (or arrow body), would begin with a token that
// changes how the statement parses: '{', function, class, or let[.
func startsWithForbiddenToken(e ast.Expr) bool {
	for {
		switch n := e.(type) {
		case *ast.ObjectExpression, *ast.ObjectPattern,
			*ast.FunctionExpression, *ast.ClassExpression:
			return true
		case *ast.AssignmentExpression:
			left, ok := n.Left.(ast.Expr)
			if !ok {
				if _, isObj := n.Left.(*ast.ObjectPattern); isObj {
					return true
				}
				return false
			}
			e = left
		case *ast.BinaryExpression:
			e = n.Left
		case *ast.LogicalExpression:
			e = n.Left
		case *ast.ConditionalExpression:
			e = n.Test
		case *ast.SequenceExpression:
			if len(n.Expressions) == 0 {
				return false
			}
			e = n.Expressions[0]
		case *ast.MemberExpression:
			if id, ok := n.Object.(*ast.Identifier); ok && n.Computed && id.Name == "let" {
				return true
			}
			e = n.Object
		case *ast.CallExpression:
			e = n.Callee
		case *ast.TaggedTemplateExpression:
			e = n.Tag
		case *ast.UpdateExpression:
			if n.Prefix {
				return false
			}
			e = n.Argument
		default:
			return false
		}
	}
}
