package template_test

import (
	"errors"
	"testing"

	"github.com/sahilmob/code-red/ast"
	"github.com/sahilmob/code-red/internal/jsparser"
	"github.com/sahilmob/code-red/internal/template"
)

func mustStatements(t *testing.T, chunks []string, values ...any) []ast.Stmt {
	t.Helper()
	stmts, err := template.Statements(chunks, values)
	if err != nil {
		t.Fatalf("Statements(%q) error = %v", chunks, err)
	}
	return stmts
}

func mustExpression(t *testing.T, chunks []string, values ...any) ast.Expr {
	t.Helper()
	expr, err := template.Expression(chunks, values)
	if err != nil {
		t.Fatalf("Expression(%q) error = %v", chunks, err)
	}
	return expr
}

func mustProperty(t *testing.T, chunks []string, values ...any) *ast.Property {
	t.Helper()
	prop, err := template.Property(chunks, values)
	if err != nil {
		t.Fatalf("Property(%q) error = %v", chunks, err)
	}
	return prop
}

// TestStatementsPlain parses a hole-free block.
func TestStatementsPlain(t *testing.T) {
	stmts := mustStatements(t, []string{"a = b + c; d = e + f;"})
	if len(stmts) != 2 {
		t.Fatalf("statement count = %d, want 2", len(stmts))
	}
	for i, s := range stmts {
		es, ok := s.(*ast.ExpressionStatement)
		if !ok {
			t.Fatalf("stmt[%d] = %T, want *ExpressionStatement", i, s)
		}
		assign, ok := es.Expression.(*ast.AssignmentExpression)
		if !ok {
			t.Fatalf("stmt[%d] expr = %T, want *AssignmentExpression", i, es.Expression)
		}
		if _, ok := assign.Right.(*ast.BinaryExpression); !ok {
			t.Errorf("stmt[%d] rhs = %T, want *BinaryExpression", i, assign.Right)
		}
	}
}

// TestFalsyStatementElision removes the statement containing the hole.
func TestFalsyStatementElision(t *testing.T) {
	stmts := mustStatements(t, []string{"a++; ", " b++"}, false)
	if len(stmts) != 2 {
		t.Fatalf("statement count = %d, want 2", len(stmts))
	}
}

// TestStitchStatementBoundary keeps placeholders statement-terminated
// even when the next chunk starts a new statement with no semicolon or
// line break of its own.
func TestStitchStatementBoundary(t *testing.T) {
	tests := []struct {
		name   string
		chunks []string
		value  any
		count  int
	}{
		{"falsy between statements", []string{"a++; ", " b++"}, false, 2},
		{"node between statements", []string{"a(); ", " b()"},
			&ast.ExpressionStatement{Expression: &ast.Identifier{Name: "mid"}}, 3},
		{"hole before closing semicolon", []string{"let x = ", ";"},
			&ast.Literal{Value: 1.0, Raw: "1"}, 1},
		{"hole before return terminator", []string{"function f() { return ", "; }"},
			&ast.Identifier{Name: "v"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmts := mustStatements(t, tt.chunks, tt.value)
			if len(stmts) != tt.count {
				t.Fatalf("statement count = %d, want %d", len(stmts), tt.count)
			}
		})
	}
}

// TestStatementHoleKinds checks each admissible kind at statement level.
func TestStatementHoleKinds(t *testing.T) {
	ret := &ast.ReturnStatement{}
	stmts := mustStatements(t, []string{"before(); ", ""}, ret)
	if len(stmts) != 2 {
		t.Fatalf("statement count = %d, want 2", len(stmts))
	}
	if stmts[1] != ast.Stmt(ret) {
		t.Errorf("stmt[1] = %T, want the supplied return statement", stmts[1])
	}

	// A statement array splices.
	extra := []ast.Stmt{
		&ast.ExpressionStatement{Expression: &ast.Identifier{Name: "x"}},
		&ast.ExpressionStatement{Expression: &ast.Identifier{Name: "y"}},
	}
	stmts = mustStatements(t, []string{"a(); ", " b();"}, extra)
	if len(stmts) != 4 {
		t.Fatalf("statement count = %d, want 4", len(stmts))
	}

	// An expression hole stays wrapped in its statement.
	call := &ast.CallExpression{Callee: &ast.Identifier{Name: "f"}}
	stmts = mustStatements(t, []string{"", ";"}, call)
	if len(stmts) != 1 {
		t.Fatalf("statement count = %d, want 1", len(stmts))
	}
	es, ok := stmts[0].(*ast.ExpressionStatement)
	if !ok || es.Expression != ast.Expr(call) {
		t.Errorf("stmt[0] does not wrap the supplied call")
	}
}

// TestExpressionArrayFlattening splices array holes into list positions.
func TestExpressionArrayFlattening(t *testing.T) {
	a := mustExpression(t, []string{"a"})
	b := mustExpression(t, []string{"b"})
	c := mustExpression(t, []string{"c"})

	arr := mustExpression(t, []string{"[", "]"}, []ast.Expr{a, b, c})
	lit, ok := arr.(*ast.ArrayExpression)
	if !ok {
		t.Fatalf("result = %T, want *ArrayExpression", arr)
	}
	if len(lit.Elements) != 3 {
		t.Fatalf("element count = %d, want 3", len(lit.Elements))
	}
	names := []string{"a", "b", "c"}
	for i, el := range lit.Elements {
		id, ok := el.(*ast.Identifier)
		if !ok || id.Name != names[i] {
			t.Errorf("element[%d] = %v, want identifier %q", i, el, names[i])
		}
	}
}

// TestCallArgumentFlattening splices arrays into argument lists.
func TestCallArgumentFlattening(t *testing.T) {
	args := []ast.Expr{
		&ast.Identifier{Name: "x"},
		&ast.Literal{Value: 2.0, Raw: "2"},
	}
	expr := mustExpression(t, []string{"f(", ")"}, args)
	call, ok := expr.(*ast.CallExpression)
	if !ok {
		t.Fatalf("result = %T, want *CallExpression", expr)
	}
	if len(call.Arguments) != 2 {
		t.Fatalf("arg count = %d, want 2", len(call.Arguments))
	}
}

// TestExpressionCoercions checks string and number coercion.
func TestExpressionCoercions(t *testing.T) {
	expr := mustExpression(t, []string{"", " + 1"}, "count")
	bin := expr.(*ast.BinaryExpression)
	if id, ok := bin.Left.(*ast.Identifier); !ok || id.Name != "count" {
		t.Errorf("left = %v, want identifier count", bin.Left)
	}

	expr = mustExpression(t, []string{"x * ", ""}, 42)
	bin = expr.(*ast.BinaryExpression)
	lit, ok := bin.Right.(*ast.Literal)
	if !ok || lit.Value.(float64) != 42 {
		t.Errorf("right = %v, want literal 42", bin.Right)
	}
	if lit.Raw != "42" {
		t.Errorf("raw = %q, want 42", lit.Raw)
	}
}

// TestStringHoleInsideStringLiteral replaces the literal's text content.
func TestStringHoleInsideStringLiteral(t *testing.T) {
	expr := mustExpression(t, []string{"'hello, ", "!'"}, "world")
	lit, ok := expr.(*ast.Literal)
	if !ok {
		t.Fatalf("result = %T, want *Literal", expr)
	}
	if lit.Value != "hello, world!" {
		t.Errorf("value = %q, want %q", lit.Value, "hello, world!")
	}
}

// TestIdentifierNameSplicing builds identifier names around holes.
func TestIdentifierNameSplicing(t *testing.T) {
	expr := mustExpression(t, []string{"get_", ""}, "title")
	id, ok := expr.(*ast.Identifier)
	if !ok {
		t.Fatalf("result = %T, want *Identifier", expr)
	}
	if id.Name != "get_title" {
		t.Errorf("name = %q, want get_title", id.Name)
	}
}

// TestNodeHoleReplacesIdentifier swaps arbitrary nodes into identifier
// slots.
func TestNodeHoleReplacesIdentifier(t *testing.T) {
	member := &ast.MemberExpression{
		Object:   &ast.Identifier{Name: "obj"},
		Property: &ast.Identifier{Name: "key"},
	}
	expr := mustExpression(t, []string{"", "(1)"}, member)
	call, ok := expr.(*ast.CallExpression)
	if !ok {
		t.Fatalf("result = %T, want *CallExpression", expr)
	}
	if call.Callee != ast.Expr(member) {
		t.Errorf("callee = %T, want the supplied member expression", call.Callee)
	}
}

// TestPropertyFlattening splices property arrays into object literals.
func TestPropertyFlattening(t *testing.T) {
	props := []*ast.Property{
		mustProperty(t, []string{"a"}),
		mustProperty(t, []string{"b"}),
		mustProperty(t, []string{"c"}),
	}
	expr := mustExpression(t, []string{"{", "}"}, props)
	obj, ok := expr.(*ast.ObjectExpression)
	if !ok {
		t.Fatalf("result = %T, want *ObjectExpression", expr)
	}
	if len(obj.Properties) != 3 {
		t.Fatalf("property count = %d, want 3", len(obj.Properties))
	}
	for i, want := range []string{"a", "b", "c"} {
		prop := obj.Properties[i].(*ast.Property)
		if !prop.Shorthand {
			t.Errorf("prop[%d] not shorthand", i)
		}
		if id, ok := prop.Key.(*ast.Identifier); !ok || id.Name != want {
			t.Errorf("prop[%d] key = %v, want %q", i, prop.Key, want)
		}
	}
}

// TestFalsyPropertyRemoval removes the whole property when its value
// hole is falsy.
func TestFalsyPropertyRemoval(t *testing.T) {
	expr := mustExpression(t, []string{"{ a: 1, b: ", " }"}, false)
	obj, ok := expr.(*ast.ObjectExpression)
	if !ok {
		t.Fatalf("result = %T, want *ObjectExpression", expr)
	}
	if len(obj.Properties) != 1 {
		t.Fatalf("property count = %d, want 1", len(obj.Properties))
	}
	prop := obj.Properties[0].(*ast.Property)
	if id, ok := prop.Key.(*ast.Identifier); !ok || id.Name != "a" {
		t.Errorf("remaining key = %v, want a", prop.Key)
	}
}

// TestFalsyListElision reduces list length by exactly one per hole.
func TestFalsyListElision(t *testing.T) {
	expr := mustExpression(t, []string{"[1, ", ", 3]"}, nil)
	arr := expr.(*ast.ArrayExpression)
	if len(arr.Elements) != 2 {
		t.Fatalf("element count = %d, want 2", len(arr.Elements))
	}
}

// TestPropertyEntryPoint builds a property with a value hole.
func TestPropertyEntryPoint(t *testing.T) {
	prop := mustProperty(t, []string{"answer: ", ""}, 42)
	if id, ok := prop.Key.(*ast.Identifier); !ok || id.Name != "answer" {
		t.Errorf("key = %v, want answer", prop.Key)
	}
	lit, ok := prop.Value.(*ast.Literal)
	if !ok || lit.Value.(float64) != 42 {
		t.Errorf("value = %v, want literal 42", prop.Value)
	}
}

// TestNoPlaceholderSurvives ensures substitution leaves no placeholder
// identifiers behind.
func TestNoPlaceholderSurvives(t *testing.T) {
	stmts := mustStatements(t,
		[]string{"function f(", ") { return ", "; } ", ""},
		"x",
		&ast.BinaryExpression{
			Operator: "*",
			Left:     &ast.Identifier{Name: "x"},
			Right:    &ast.Literal{Value: 2.0, Raw: "2"},
		},
		[]ast.Stmt{&ast.ExpressionStatement{Expression: &ast.CallExpression{
			Callee: &ast.Identifier{Name: "f"},
		}}},
	)
	for _, s := range stmts {
		ast.Walk(s, func(n ast.Node) bool {
			if id, ok := n.(*ast.Identifier); ok {
				if len(id.Name) >= 7 && id.Name[:7] == "___hole" {
					t.Errorf("placeholder %s survived substitution", id.Name)
				}
			}
			return true
		})
	}
}

// TestTemplateErrorOnBadKind rejects unsupported hole kinds in typed
// positions.
func TestTemplateErrorOnBadKind(t *testing.T) {
	_, err := template.Expression([]string{"function ", "() {}"}, 42)
	if err == nil {
		t.Fatal("Expression() succeeded, want TemplateError")
	}
	var te *template.Error
	if !errors.As(err, &te) {
		t.Fatalf("error = %T, want *template.Error", err)
	}
}

// TestParseErrorPropagates surfaces the parser's message.
func TestParseErrorPropagates(t *testing.T) {
	_, err := template.Expression([]string{"this is broken"}, nil)
	if err == nil {
		t.Fatal("Expression() succeeded, want ParseError")
	}
	var pe *jsparser.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %T, want *jsparser.ParseError", err)
	}
	if pe.Message == "" {
		t.Error("ParseError carries no message")
	}
}

// TestSigilsPreserved keeps sigil identifiers intact through parsing and
// substitution.
func TestSigilsPreserved(t *testing.T) {
	stmts := mustStatements(t, []string{"let foo = @bar; #tag(foo);"})
	var names []string
	for _, s := range stmts {
		ast.Walk(s, func(n ast.Node) bool {
			if id, ok := n.(*ast.Identifier); ok {
				if id.Name[0] == '@' || id.Name[0] == '#' {
					names = append(names, id.Name)
				}
			}
			return true
		})
	}
	if len(names) != 2 || names[0] != "@bar" || names[1] != "#tag" {
		t.Errorf("sigils = %v, want [@bar #tag]", names)
	}
}

// TestFragmentComposition feeds one template's output into another.
func TestFragmentComposition(t *testing.T) {
	inner := mustExpression(t, []string{"a + b"})
	outer := mustExpression(t, []string{"f(", ")"}, inner)
	call := outer.(*ast.CallExpression)
	if len(call.Arguments) != 1 || call.Arguments[0] != ast.Expr(inner) {
		t.Error("inner fragment was not grafted verbatim")
	}
}
