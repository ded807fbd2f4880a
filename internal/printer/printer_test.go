package printer_test

import (
	"errors"
	"testing"

	"github.com/sahilmob/code-red/ast"
	"github.com/sahilmob/code-red/internal/printer"
	"github.com/sahilmob/code-red/internal/testutil"
)

func mustPrint(t *testing.T, node ast.Node) string {
	t.Helper()
	res, err := printer.Print(node, printer.Options{EncodeMappings: true})
	if err != nil {
		t.Fatalf("Print() error = %v", err)
	}
	return res.Code
}

func ident(name string) *ast.Identifier {
	return &ast.Identifier{Name: name}
}

func num(v float64, raw string) *ast.Literal {
	return &ast.Literal{Value: v, Raw: raw}
}

// TestPrintExpressions covers the expression variants and their
// canonical surface syntax.
func TestPrintExpressions(t *testing.T) {
	tests := []struct {
		name string
		node ast.Expr
		want string
	}{
		{
			"identifier",
			ident("foo"),
			"foo",
		},
		{
			"binary",
			&ast.BinaryExpression{Operator: "+", Left: ident("a"), Right: ident("b")},
			"a + b",
		},
		{
			"nested binary with parens",
			&ast.BinaryExpression{
				Operator: "*",
				Left:     &ast.BinaryExpression{Operator: "+", Left: ident("a"), Right: ident("b")},
				Right:    ident("c"),
			},
			"(a + b) * c",
		},
		{
			"no redundant parens",
			&ast.BinaryExpression{
				Operator: "+",
				Left:     &ast.BinaryExpression{Operator: "*", Left: ident("a"), Right: ident("b")},
				Right:    ident("c"),
			},
			"a * b + c",
		},
		{
			"right associativity",
			&ast.BinaryExpression{
				Operator: "-",
				Left:     ident("a"),
				Right:    &ast.BinaryExpression{Operator: "-", Left: ident("b"), Right: ident("c")},
			},
			"a - (b - c)",
		},
		{
			"exponentiation right assoc",
			&ast.BinaryExpression{
				Operator: "**",
				Left:     ident("a"),
				Right:    &ast.BinaryExpression{Operator: "**", Left: ident("b"), Right: ident("c")},
			},
			"a ** b ** c",
		},
		{
			"unary base of exponentiation needs parens",
			&ast.BinaryExpression{
				Operator: "**",
				Left:     &ast.UnaryExpression{Operator: "-", Argument: ident("a")},
				Right:    ident("b"),
			},
			"(-a) ** b",
		},
		{
			"await base of exponentiation needs parens",
			&ast.BinaryExpression{
				Operator: "**",
				Left:     &ast.AwaitExpression{Argument: ident("a")},
				Right:    ident("b"),
			},
			"(await a) ** b",
		},
		{
			"update base of exponentiation stays bare",
			&ast.BinaryExpression{
				Operator: "**",
				Left:     &ast.UpdateExpression{Operator: "++", Argument: ident("a")},
				Right:    ident("b"),
			},
			"a++ ** b",
		},
		{
			"logical mixing needs parens",
			&ast.LogicalExpression{
				Operator: "??",
				Left:     &ast.LogicalExpression{Operator: "||", Left: ident("a"), Right: ident("b")},
				Right:    ident("c"),
			},
			"(a || b) ?? c",
		},
		{
			"conditional",
			&ast.ConditionalExpression{Test: ident("a"), Consequent: ident("b"), Alternate: ident("c")},
			"a ? b : c",
		},
		{
			"assignment",
			&ast.AssignmentExpression{Operator: "=", Left: ident("a"), Right: num(1, "1")},
			"a = 1",
		},
		{
			"sequence",
			&ast.SequenceExpression{Expressions: []ast.Expr{ident("a"), ident("b")}},
			"a, b",
		},
		{
			"call with member callee",
			&ast.CallExpression{
				Callee: &ast.MemberExpression{
					Object:   ident("console"),
					Property: ident("log"),
				},
				Arguments: []ast.Expr{num(42, "42")},
			},
			"console.log(42)",
		},
		{
			"computed member",
			&ast.MemberExpression{Object: ident("a"), Property: ident("b"), Computed: true},
			"a[b]",
		},
		{
			"member of call",
			&ast.MemberExpression{
				Object:   &ast.CallExpression{Callee: ident("f")},
				Property: ident("x"),
			},
			"f().x",
		},
		{
			"member of number literal",
			&ast.MemberExpression{Object: num(42, "42"), Property: ident("toString")},
			"(42).toString",
		},
		{
			"new without arguments",
			&ast.NewExpression{Callee: ident("Foo")},
			"new Foo",
		},
		{
			"new with arguments",
			&ast.NewExpression{Callee: ident("Foo"), Arguments: []ast.Expr{ident("a")}},
			"new Foo(a)",
		},
		{
			"unary word operator",
			&ast.UnaryExpression{Operator: "typeof", Argument: ident("x")},
			"typeof x",
		},
		{
			"double negation spaced",
			&ast.UnaryExpression{
				Operator: "-",
				Argument: &ast.UnaryExpression{Operator: "-", Argument: ident("x")},
			},
			"- -x",
		},
		{
			"update postfix",
			&ast.UpdateExpression{Operator: "++", Argument: ident("i")},
			"i++",
		},
		{
			"update prefix",
			&ast.UpdateExpression{Operator: "--", Argument: ident("i"), Prefix: true},
			"--i",
		},
		{
			"array",
			&ast.ArrayExpression{Elements: []ast.Expr{ident("a"), ident("b"), ident("c")}},
			"[a, b, c]",
		},
		{
			"array with elision",
			&ast.ArrayExpression{Elements: []ast.Expr{ident("a"), nil, ident("b")}},
			"[a, , b]",
		},
		{
			"object",
			&ast.ObjectExpression{Properties: []ast.Node{
				&ast.Property{Key: ident("a"), Value: num(1, "1"), Kind: "init"},
				&ast.Property{Key: ident("b"), Value: ident("b"), Kind: "init", Shorthand: true},
			}},
			"{ a: 1, b }",
		},
		{
			"object spread",
			&ast.ObjectExpression{Properties: []ast.Node{
				&ast.SpreadElement{Argument: ident("rest")},
			}},
			"{ ...rest }",
		},
		{
			"string literal canonical quoting",
			&ast.Literal{Value: "it's\n"},
			`'it\'s\n'`,
		},
		{
			"raw literal wins",
			&ast.Literal{Value: "x", Raw: `"x"`},
			`"x"`,
		},
		{
			"template literal",
			&ast.TemplateLiteral{
				Quasis: []*ast.TemplateElement{
					{Value: ast.TemplateValue{Cooked: "hello "}},
					{Value: ast.TemplateValue{Cooked: "!"}, Tail: true},
				},
				Expressions: []ast.Expr{ident("name")},
			},
			"`hello ${name}!`",
		},
		{
			"template escapes backtick and dollar-brace",
			&ast.TemplateLiteral{
				Quasis: []*ast.TemplateElement{
					{Value: ast.TemplateValue{Cooked: "a`b${c"}, Tail: true},
				},
			},
			"`a\\`b\\${c`",
		},
		{
			"arrow with object body",
			&ast.ArrowFunctionExpression{
				Params: []ast.Pattern{ident("x")},
				Body:   &ast.ObjectExpression{},
			},
			"(x) => ({})",
		},
		{
			"arrow with block body",
			&ast.ArrowFunctionExpression{
				Params: []ast.Pattern{},
				Body:   &ast.BlockStatement{},
			},
			"() => {}",
		},
		{
			"optional chain",
			&ast.ChainExpression{Expression: &ast.MemberExpression{
				Object:   ident("a"),
				Property: ident("b"),
				Optional: true,
			}},
			"a?.b",
		},
		{
			"await",
			&ast.AwaitExpression{Argument: &ast.CallExpression{Callee: ident("f")}},
			"await f()",
		},
		{
			"spread in call",
			&ast.CallExpression{
				Callee:    ident("f"),
				Arguments: []ast.Expr{&ast.SpreadElement{Argument: ident("xs")}},
			},
			"f(...xs)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustPrint(t, tt.node)
			if got != tt.want {
				t.Errorf("Print() mismatch:\n%s", testutil.Diff(tt.want, got))
			}
		})
	}
}

// TestPrintStatements covers statement-level syntax, terminators and
// tab indentation.
func TestPrintStatements(t *testing.T) {
	tests := []struct {
		name string
		node ast.Stmt
		want string
	}{
		{
			"expression statement",
			&ast.ExpressionStatement{Expression: &ast.AssignmentExpression{
				Operator: "=", Left: ident("a"), Right: ident("b"),
			}},
			"a = b;",
		},
		{
			"object expression statement is parenthesized",
			&ast.ExpressionStatement{Expression: &ast.ObjectExpression{}},
			"({});",
		},
		{
			"variable declaration",
			&ast.VariableDeclaration{Kind: "let", Declarations: []*ast.VariableDeclarator{
				{ID: ident("x"), Init: num(1, "1")},
				{ID: ident("y")},
			}},
			"let x = 1, y;",
		},
		{
			"if else",
			&ast.IfStatement{
				Test: ident("a"),
				Consequent: &ast.BlockStatement{Body: []ast.Stmt{
					&ast.ExpressionStatement{Expression: &ast.CallExpression{Callee: ident("x")}},
				}},
				Alternate: &ast.BlockStatement{Body: []ast.Stmt{
					&ast.ExpressionStatement{Expression: &ast.CallExpression{Callee: ident("y")}},
				}},
			},
			"if (a) {\n\tx();\n} else {\n\ty();\n}",
		},
		{
			"for loop",
			&ast.ForStatement{
				Init: &ast.VariableDeclaration{Kind: "let", Declarations: []*ast.VariableDeclarator{
					{ID: ident("i"), Init: num(0, "0")},
				}},
				Test:   &ast.BinaryExpression{Operator: "<", Left: ident("i"), Right: num(10, "10")},
				Update: &ast.UpdateExpression{Operator: "++", Argument: ident("i")},
				Body:   &ast.BlockStatement{},
			},
			"for (let i = 0; i < 10; i++) {}",
		},
		{
			"for-of",
			&ast.ForOfStatement{
				Left: &ast.VariableDeclaration{Kind: "const", Declarations: []*ast.VariableDeclarator{
					{ID: ident("x")},
				}},
				Right: ident("xs"),
				Body:  &ast.BlockStatement{},
			},
			"for (const x of xs) {}",
		},
		{
			"while",
			&ast.WhileStatement{Test: ident("a"), Body: &ast.BlockStatement{}},
			"while (a) {}",
		},
		{
			"do-while",
			&ast.DoWhileStatement{Body: &ast.BlockStatement{}, Test: ident("a")},
			"do {} while (a);",
		},
		{
			"return with value",
			&ast.ReturnStatement{Argument: ident("x")},
			"return x;",
		},
		{
			"throw",
			&ast.ThrowStatement{Argument: &ast.NewExpression{
				Callee:    ident("Error"),
				Arguments: []ast.Expr{&ast.Literal{Value: "boom"}},
			}},
			"throw new Error('boom');",
		},
		{
			"try-catch-finally",
			&ast.TryStatement{
				Block:     &ast.BlockStatement{},
				Handler:   &ast.CatchClause{Param: ident("e"), Body: &ast.BlockStatement{}},
				Finalizer: &ast.BlockStatement{},
			},
			"try {} catch (e) {} finally {}",
		},
		{
			"labeled break",
			&ast.LabeledStatement{
				Label: ident("outer"),
				Body: &ast.BlockStatement{Body: []ast.Stmt{
					&ast.BreakStatement{Label: ident("outer")},
				}},
			},
			"outer: {\n\tbreak outer;\n}",
		},
		{
			"switch",
			&ast.SwitchStatement{
				Discriminant: ident("x"),
				Cases: []*ast.SwitchCase{
					{Test: num(1, "1"), Consequent: []ast.Stmt{&ast.BreakStatement{}}},
					{Consequent: []ast.Stmt{&ast.ExpressionStatement{
						Expression: &ast.CallExpression{Callee: ident("f")},
					}}},
				},
			},
			"switch (x) {\n\tcase 1:\n\t\tbreak;\n\tdefault:\n\t\tf();\n}",
		},
		{
			"function declaration",
			&ast.FunctionDeclaration{
				ID:     ident("add"),
				Params: []ast.Pattern{ident("a"), ident("b")},
				Body: &ast.BlockStatement{Body: []ast.Stmt{
					&ast.ReturnStatement{Argument: &ast.BinaryExpression{
						Operator: "+", Left: ident("a"), Right: ident("b"),
					}},
				}},
			},
			"function add(a, b) {\n\treturn a + b;\n}",
		},
		{
			"class declaration",
			&ast.ClassDeclaration{
				ID:         ident("A"),
				SuperClass: ident("B"),
				Body: &ast.ClassBody{Body: []ast.Node{
					&ast.MethodDefinition{
						Key:   ident("constructor"),
						Kind:  "constructor",
						Value: &ast.FunctionExpression{Body: &ast.BlockStatement{}},
					},
					&ast.PropertyDefinition{Key: ident("x"), Value: num(1, "1")},
				}},
			},
			"class A extends B {\n\tconstructor() {}\n\tx = 1;\n}",
		},
		{
			"import",
			&ast.ImportDeclaration{
				Specifiers: []ast.Node{
					&ast.ImportDefaultSpecifier{Local: ident("d")},
					&ast.ImportSpecifier{Imported: ident("a"), Local: ident("a")},
					&ast.ImportSpecifier{Imported: ident("b"), Local: ident("c")},
				},
				Source: &ast.Literal{Value: "mod"},
			},
			"import d, { a, b as c } from 'mod';",
		},
		{
			"export named",
			&ast.ExportNamedDeclaration{
				Specifiers: []*ast.ExportSpecifier{
					{Local: ident("a"), Exported: ident("a")},
					{Local: ident("b"), Exported: ident("x")},
				},
			},
			"export { a, b as x };",
		},
		{
			"destructuring declaration",
			&ast.VariableDeclaration{Kind: "const", Declarations: []*ast.VariableDeclarator{{
				ID: &ast.ObjectPattern{Properties: []ast.Node{
					&ast.Property{Key: ident("a"), Value: ident("a"), Kind: "init", Shorthand: true},
					&ast.RestElement{Argument: ident("rest")},
				}},
				Init: ident("obj"),
			}}},
			"const { a, ...rest } = obj;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustPrint(t, tt.node)
			if got != tt.want {
				t.Errorf("Print() mismatch:\n%s", testutil.Diff(tt.want, got))
			}
		})
	}
}

// TestPrintProgram joins statements on separate lines.
func TestPrintProgram(t *testing.T) {
	prog := &ast.Program{Body: []ast.Stmt{
		&ast.ExpressionStatement{Expression: &ast.UpdateExpression{Operator: "++", Argument: ident("a")}},
		&ast.ExpressionStatement{Expression: &ast.UpdateExpression{Operator: "++", Argument: ident("b")}},
	}}
	got := mustPrint(t, prog)
	want := "a++;\nb++;"
	if got != want {
		t.Errorf("Print() mismatch:\n%s", testutil.Diff(want, got))
	}
}

// TestUnhandledSigil verifies sigils are rejected at print time.
func TestUnhandledSigil(t *testing.T) {
	tests := []struct {
		name string
		node ast.Node
		want string
	}{
		{"at sigil", ident("@bar"), "Unhandled sigil @bar"},
		{"hash sigil", ident("#secret"), "Unhandled sigil #secret"},
		{
			"sigil in member property",
			&ast.MemberExpression{Object: ident("a"), Property: ident("@b")},
			"Unhandled sigil @b",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := printer.Print(tt.node, printer.Options{})
			if err == nil {
				t.Fatal("Print() succeeded, want sigil error")
			}
			var sigil *printer.UnhandledSigilError
			if !errors.As(err, &sigil) {
				t.Fatalf("error = %T, want *UnhandledSigilError", err)
			}
			if err.Error() != tt.want {
				t.Errorf("message = %q, want %q", err.Error(), tt.want)
			}
		})
	}
}

// TestGetName applies the mangling hook and records original names.
func TestGetName(t *testing.T) {
	id := ident("answer")
	id.Loc = &ast.SourceLocation{
		Start: ast.Position{Line: 3, Column: 4},
		End:   ast.Position{Line: 3, Column: 10},
	}
	res, err := printer.Print(id, printer.Options{
		SourceMapSource: "in.js",
		GetName: func(name string) string {
			return "a"
		},
	})
	if err != nil {
		t.Fatalf("Print() error = %v", err)
	}
	if res.Code != "a" {
		t.Errorf("Code = %q, want %q", res.Code, "a")
	}
	if len(res.Map.Names) != 1 || res.Map.Names[0] != "answer" {
		t.Errorf("Names = %v, want [answer]", res.Map.Names)
	}
}

// TestGetNameSkipsPropertyKeys leaves non-computed member property names alone.
func TestGetNameSkipsPropertyKeys(t *testing.T) {
	node := &ast.MemberExpression{Object: ident("obj"), Property: ident("key")}
	res, err := printer.Print(node, printer.Options{
		GetName: func(name string) string { return name + "_m" },
	})
	if err != nil {
		t.Fatalf("Print() error = %v", err)
	}
	if res.Code != "obj_m.key" {
		t.Errorf("Code = %q, want %q", res.Code, "obj_m.key")
	}
}

// TestMappingsFromLoc verifies embedded-node location mapping, including
// the end-of-node segment.
func TestMappingsFromLoc(t *testing.T) {
	answer := num(42, "42")
	answer.Loc = &ast.SourceLocation{
		Start: ast.Position{Line: 10, Column: 5},
		End:   ast.Position{Line: 10, Column: 7},
	}
	node := &ast.CallExpression{
		Callee:    &ast.MemberExpression{Object: ident("console"), Property: ident("log")},
		Arguments: []ast.Expr{answer},
	}
	res, err := printer.Print(node, printer.Options{
		SourceMapSource: "input.js",
		EncodeMappings:  true,
	})
	if err != nil {
		t.Fatalf("Print() error = %v", err)
	}
	if res.Code != "console.log(42)" {
		t.Fatalf("Code = %q, want %q", res.Code, "console.log(42)")
	}
	if res.Map.Mappings != "YASK,EAAE" {
		t.Errorf("Mappings = %q, want %q", res.Map.Mappings, "YASK,EAAE")
	}
}

// TestMappingsMonotonic checks generated positions never go backwards.
func TestMappingsMonotonic(t *testing.T) {
	loc := func(line, col int) *ast.SourceLocation {
		return &ast.SourceLocation{Start: ast.Position{Line: line, Column: col}}
	}
	a := ident("a")
	a.Loc = loc(1, 0)
	b := ident("b")
	b.Loc = loc(2, 4)
	node := &ast.BinaryExpression{Operator: "+", Left: a, Right: b}

	res, err := printer.Print(node, printer.Options{SourceMapSource: "x.js"})
	if err != nil {
		t.Fatalf("Print() error = %v", err)
	}
	for _, line := range res.Map.Decoded {
		prev := -1
		for _, seg := range line {
			if seg[0] < prev {
				t.Fatalf("generated columns not monotonic: %v", line)
			}
			prev = seg[0]
		}
	}
}

// TestUnknownType reports the offending node type.
func TestUnknownType(t *testing.T) {
	_, err := printer.Print(&ast.TemplateElement{}, printer.Options{})
	if err == nil {
		t.Fatal("Print() succeeded, want error")
	}
	var unhandled *printer.UnhandledTypeError
	if !errors.As(err, &unhandled) {
		t.Fatalf("error = %T, want *UnhandledTypeError", err)
	}
	if unhandled.TypeName != "TemplateElement" {
		t.Errorf("TypeName = %q, want %q", unhandled.TypeName, "TemplateElement")
	}
}

// TestLeadingComments prints comments above their statement.
func TestLeadingComments(t *testing.T) {
	stmt := &ast.ExpressionStatement{Expression: &ast.CallExpression{Callee: ident("f")}}
	stmt.LeadingComments = []ast.Comment{{Text: " setup"}}
	got := mustPrint(t, stmt)
	want := "// setup\nf();"
	if got != want {
		t.Errorf("Print() mismatch:\n%s", testutil.Diff(want, got))
	}
}
