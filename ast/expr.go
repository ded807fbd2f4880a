package ast

// -----------------------------------------------------------------------------
// Atoms
// -----------------------------------------------------------------------------

// Identifier represents an identifier reference or binding.
// Names beginning with '@' or '#' are sigil identifiers: they are legal
// throughout the tree but must be rewritten away before printing.
type Identifier struct {
	BaseNode
	Name string
}

// PrivateIdentifier represents a class private name (#x in member position).
type PrivateIdentifier struct {
	BaseNode
	Name string // without the leading '#'
}

// RegexValue carries the pattern and flags of a regular expression literal.
type RegexValue struct {
	Pattern string
	Flags   string
}

// Literal represents any literal value: string, number, boolean, null,
// or a regular expression.
// When Raw is non-empty the printer emits it verbatim; otherwise a
// canonical rendering of Value is produced.
type Literal struct {
	BaseNode
	Value any        // string, float64, int, bool, or nil
	Raw   string     // original source text, if known
	Regex *RegexValue // set for regex literals
}

// TemplateValue is the text of one quasi of a template literal.
type TemplateValue struct {
	Raw    string // source text, backslash escapes intact
	Cooked string // interpreted value
}

// TemplateElement is a single quasi of a template literal.
type TemplateElement struct {
	BaseNode
	Value TemplateValue
	Tail  bool // true for the final quasi
}

// TemplateLiteral represents `text ${expr} text`.
// len(Quasis) == len(Expressions)+1 always holds.
type TemplateLiteral struct {
	BaseNode
	Quasis      []*TemplateElement
	Expressions []Expr
}

// TaggedTemplateExpression represents tag`...`.
type TaggedTemplateExpression struct {
	BaseNode
	Tag   Expr
	Quasi *TemplateLiteral
}

// ThisExpression represents the this keyword.
type ThisExpression struct {
	BaseNode
}

// Super represents the super keyword in calls and member accesses.
type Super struct {
	BaseNode
}

// MetaProperty represents new.target or import.meta.
type MetaProperty struct {
	BaseNode
	Meta     *Identifier
	Property *Identifier
}

// -----------------------------------------------------------------------------
// Composites
// -----------------------------------------------------------------------------

// ArrayExpression represents [a, b, c]. A nil element is an elision.
type ArrayExpression struct {
	BaseNode
	Elements []Expr
}

// ObjectExpression represents { ... }. Entries are *Property or
// *SpreadElement nodes.
type ObjectExpression struct {
	BaseNode
	Properties []Node
}

// Property is a single key/value entry of an object literal or pattern.
type Property struct {
	BaseNode
	Key       Expr
	Value     Node   // Expr in literals, Pattern in patterns
	Kind      string // "init", "get" or "set"
	Method    bool
	Shorthand bool
	Computed  bool
}

// SpreadElement represents ...expr in arrays, calls and objects.
type SpreadElement struct {
	BaseNode
	Argument Expr
}

// -----------------------------------------------------------------------------
// Operations
// -----------------------------------------------------------------------------

// UnaryExpression represents a prefix operator application: !x, -x,
// typeof x, void x, delete x, ~x, +x.
type UnaryExpression struct {
	BaseNode
	Operator string
	Argument Expr
}

// UpdateExpression represents ++x, --x, x++ and x--.
type UpdateExpression struct {
	BaseNode
	Operator string // "++" or "--"
	Argument Expr
	Prefix   bool
}

// BinaryExpression represents a binary operation with a non-logical
// operator (+, -, ==, instanceof, in, ...).
type BinaryExpression struct {
	BaseNode
	Operator string
	Left     Expr
	Right    Expr
}

// LogicalExpression represents &&, || and ??.
type LogicalExpression struct {
	BaseNode
	Operator string
	Left     Expr
	Right    Expr
}

// AssignmentExpression represents x = y and the compound forms (+=, ??=, ...).
// Left is a Node because both expressions (member targets) and patterns
// (destructuring) are valid targets.
type AssignmentExpression struct {
	BaseNode
	Operator string
	Left     Node
	Right    Expr
}

// ConditionalExpression represents test ? consequent : alternate.
type ConditionalExpression struct {
	BaseNode
	Test       Expr
	Consequent Expr
	Alternate  Expr
}

// SequenceExpression represents (a, b, c).
type SequenceExpression struct {
	BaseNode
	Expressions []Expr
}

// YieldExpression represents yield and yield* inside generators.
type YieldExpression struct {
	BaseNode
	Argument Expr // may be nil
	Delegate bool // true for yield*
}

// AwaitExpression represents await expr.
type AwaitExpression struct {
	BaseNode
	Argument Expr
}

// -----------------------------------------------------------------------------
// Access and calls
// -----------------------------------------------------------------------------

// MemberExpression represents obj.prop and obj[prop].
type MemberExpression struct {
	BaseNode
	Object   Expr
	Property Expr // Identifier or PrivateIdentifier when !Computed
	Computed bool
	Optional bool // obj?.prop
}

// CallExpression represents callee(args).
type CallExpression struct {
	BaseNode
	Callee    Expr
	Arguments []Expr
	Optional  bool // callee?.(args)
}

// NewExpression represents new callee(args). A nil Arguments slice means
// the parenthesis-free form (new Foo).
type NewExpression struct {
	BaseNode
	Callee    Expr
	Arguments []Expr
}

// ChainExpression wraps the outermost member/call of an optional chain.
type ChainExpression struct {
	BaseNode
	Expression Expr
}

// -----------------------------------------------------------------------------
// Closures
// -----------------------------------------------------------------------------

// FunctionExpression represents function [name](params) { body }.
type FunctionExpression struct {
	BaseNode
	ID        *Identifier // may be nil
	Params    []Pattern
	Body      *BlockStatement
	Generator bool
	Async     bool
}

// ArrowFunctionExpression represents (params) => body. Body is either a
// *BlockStatement or an Expr (concise form).
type ArrowFunctionExpression struct {
	BaseNode
	Params []Pattern
	Body   Node
	Async  bool
}

// ClassExpression represents a class used as a value.
type ClassExpression struct {
	BaseNode
	ID         *Identifier // may be nil
	SuperClass Expr        // may be nil
	Body       *ClassBody
}

// -----------------------------------------------------------------------------
// Patterns
// -----------------------------------------------------------------------------

// ObjectPattern represents { a, b: c } as a binding target. Entries are
// *Property or *RestElement nodes.
type ObjectPattern struct {
	BaseNode
	Properties []Node
}

// ArrayPattern represents [a, , b] as a binding target.
// A nil element is an elision.
type ArrayPattern struct {
	BaseNode
	Elements []Pattern
}

// AssignmentPattern represents a default value: param = expr.
type AssignmentPattern struct {
	BaseNode
	Left  Pattern
	Right Expr
}

// RestElement represents ...rest in parameter lists and patterns.
type RestElement struct {
	BaseNode
	Argument Pattern
}

// -----------------------------------------------------------------------------
// Type tags
// -----------------------------------------------------------------------------

func (*Identifier) Type() string               { return "Identifier" }
func (*PrivateIdentifier) Type() string        { return "PrivateIdentifier" }
func (*Literal) Type() string                  { return "Literal" }
func (*TemplateElement) Type() string          { return "TemplateElement" }
func (*TemplateLiteral) Type() string          { return "TemplateLiteral" }
func (*TaggedTemplateExpression) Type() string { return "TaggedTemplateExpression" }
func (*ThisExpression) Type() string           { return "ThisExpression" }
func (*Super) Type() string                    { return "Super" }
func (*MetaProperty) Type() string             { return "MetaProperty" }
func (*ArrayExpression) Type() string          { return "ArrayExpression" }
func (*ObjectExpression) Type() string         { return "ObjectExpression" }
func (*Property) Type() string                 { return "Property" }
func (*SpreadElement) Type() string            { return "SpreadElement" }
func (*UnaryExpression) Type() string          { return "UnaryExpression" }
func (*UpdateExpression) Type() string         { return "UpdateExpression" }
func (*BinaryExpression) Type() string         { return "BinaryExpression" }
func (*LogicalExpression) Type() string        { return "LogicalExpression" }
func (*AssignmentExpression) Type() string     { return "AssignmentExpression" }
func (*ConditionalExpression) Type() string    { return "ConditionalExpression" }
func (*SequenceExpression) Type() string       { return "SequenceExpression" }
func (*YieldExpression) Type() string          { return "YieldExpression" }
func (*AwaitExpression) Type() string          { return "AwaitExpression" }
func (*MemberExpression) Type() string         { return "MemberExpression" }
func (*CallExpression) Type() string           { return "CallExpression" }
func (*NewExpression) Type() string            { return "NewExpression" }
func (*ChainExpression) Type() string          { return "ChainExpression" }
func (*FunctionExpression) Type() string       { return "FunctionExpression" }
func (*ArrowFunctionExpression) Type() string  { return "ArrowFunctionExpression" }
func (*ClassExpression) Type() string          { return "ClassExpression" }
func (*ObjectPattern) Type() string            { return "ObjectPattern" }
func (*ArrayPattern) Type() string             { return "ArrayPattern" }
func (*AssignmentPattern) Type() string        { return "AssignmentPattern" }
func (*RestElement) Type() string              { return "RestElement" }

// -----------------------------------------------------------------------------
// Interface markers
// -----------------------------------------------------------------------------

func (*Identifier) exprNode()               {}
func (*PrivateIdentifier) exprNode()        {}
func (*Literal) exprNode()                  {}
func (*TemplateLiteral) exprNode()          {}
func (*TaggedTemplateExpression) exprNode() {}
func (*ThisExpression) exprNode()           {}
func (*Super) exprNode()                    {}
func (*MetaProperty) exprNode()             {}
func (*ArrayExpression) exprNode()          {}
func (*ObjectExpression) exprNode()         {}
func (*Property) exprNode()                 {}
func (*SpreadElement) exprNode()            {}
func (*UnaryExpression) exprNode()          {}
func (*UpdateExpression) exprNode()         {}
func (*BinaryExpression) exprNode()         {}
func (*LogicalExpression) exprNode()        {}
func (*AssignmentExpression) exprNode()     {}
func (*ConditionalExpression) exprNode()    {}
func (*SequenceExpression) exprNode()       {}
func (*YieldExpression) exprNode()          {}
func (*AwaitExpression) exprNode()          {}
func (*MemberExpression) exprNode()         {}
func (*CallExpression) exprNode()           {}
func (*NewExpression) exprNode()            {}
func (*ChainExpression) exprNode()          {}
func (*FunctionExpression) exprNode()       {}
func (*ArrowFunctionExpression) exprNode()  {}
func (*ClassExpression) exprNode()          {}
func (*ObjectPattern) exprNode()            {}
func (*ArrayPattern) exprNode()             {}

func (*Identifier) patternNode()        {}
func (*MemberExpression) patternNode()  {}
func (*ObjectPattern) patternNode()     {}
func (*ArrayPattern) patternNode()      {}
func (*AssignmentPattern) patternNode() {}
func (*RestElement) patternNode()       {}

// -----------------------------------------------------------------------------
// Compile-time checks
// -----------------------------------------------------------------------------

var (
	_ Expr = (*Identifier)(nil)
	_ Expr = (*PrivateIdentifier)(nil)
	_ Expr = (*Literal)(nil)
	_ Expr = (*TemplateLiteral)(nil)
	_ Expr = (*TaggedTemplateExpression)(nil)
	_ Expr = (*ThisExpression)(nil)
	_ Expr = (*Super)(nil)
	_ Expr = (*MetaProperty)(nil)
	_ Expr = (*ArrayExpression)(nil)
	_ Expr = (*ObjectExpression)(nil)
	_ Expr = (*Property)(nil)
	_ Expr = (*SpreadElement)(nil)
	_ Expr = (*UnaryExpression)(nil)
	_ Expr = (*UpdateExpression)(nil)
	_ Expr = (*BinaryExpression)(nil)
	_ Expr = (*LogicalExpression)(nil)
	_ Expr = (*AssignmentExpression)(nil)
	_ Expr = (*ConditionalExpression)(nil)
	_ Expr = (*SequenceExpression)(nil)
	_ Expr = (*YieldExpression)(nil)
	_ Expr = (*AwaitExpression)(nil)
	_ Expr = (*MemberExpression)(nil)
	_ Expr = (*CallExpression)(nil)
	_ Expr = (*NewExpression)(nil)
	_ Expr = (*ChainExpression)(nil)
	_ Expr = (*FunctionExpression)(nil)
	_ Expr = (*ArrowFunctionExpression)(nil)
	_ Expr = (*ClassExpression)(nil)

	_ Pattern = (*Identifier)(nil)
	_ Pattern = (*MemberExpression)(nil)
	_ Pattern = (*ObjectPattern)(nil)
	_ Pattern = (*ArrayPattern)(nil)
	_ Pattern = (*AssignmentPattern)(nil)
	_ Pattern = (*RestElement)(nil)
)
