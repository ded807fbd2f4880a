package ast

// -----------------------------------------------------------------------------
// Declarations
// -----------------------------------------------------------------------------

// VariableDeclaration represents var/let/const with one or more declarators.
// It appears both at statement level and as the Init/Left of for-loops.
type VariableDeclaration struct {
	BaseNode
	Kind         string // "var", "let" or "const"
	Declarations []*VariableDeclarator
}

// VariableDeclarator is one binding of a VariableDeclaration.
type VariableDeclarator struct {
	BaseNode
	ID   Pattern
	Init Expr // may be nil
}

// FunctionDeclaration represents function name(params) { body } at
// statement level.
type FunctionDeclaration struct {
	BaseNode
	ID        *Identifier
	Params    []Pattern
	Body      *BlockStatement
	Generator bool
	Async     bool
}

// ClassDeclaration represents class Name [extends Super] { body } at
// statement level.
type ClassDeclaration struct {
	BaseNode
	ID         *Identifier
	SuperClass Expr // may be nil
	Body       *ClassBody
}

// -----------------------------------------------------------------------------
// Classes
// -----------------------------------------------------------------------------

// ClassBody holds the elements of a class: *MethodDefinition,
// *PropertyDefinition and *StaticBlock nodes.
type ClassBody struct {
	BaseNode
	Body []Node
}

// MethodDefinition is a method, getter, setter or constructor.
type MethodDefinition struct {
	BaseNode
	Key      Expr
	Value    *FunctionExpression
	Kind     string // "constructor", "method", "get" or "set"
	Computed bool
	Static   bool
}

// PropertyDefinition is a class field, optionally with an initializer.
type PropertyDefinition struct {
	BaseNode
	Key      Expr
	Value    Expr // may be nil
	Computed bool
	Static   bool
}

// StaticBlock is a static { ... } initializer block.
type StaticBlock struct {
	BaseNode
	Body []Stmt
}

// -----------------------------------------------------------------------------
// Modules
// -----------------------------------------------------------------------------

// ImportDeclaration represents import ... from 'source'.
// Specifiers holds *ImportSpecifier, *ImportDefaultSpecifier and
// *ImportNamespaceSpecifier nodes.
type ImportDeclaration struct {
	BaseNode
	Specifiers []Node
	Source     *Literal
}

// ImportSpecifier represents { imported [as local] }.
type ImportSpecifier struct {
	BaseNode
	Imported Node // *Identifier or string *Literal
	Local    *Identifier
}

// ImportDefaultSpecifier represents the default import binding.
type ImportDefaultSpecifier struct {
	BaseNode
	Local *Identifier
}

// ImportNamespaceSpecifier represents * as local.
type ImportNamespaceSpecifier struct {
	BaseNode
	Local *Identifier
}

// ExportNamedDeclaration represents export { ... } [from 'source'] or
// export <declaration>.
type ExportNamedDeclaration struct {
	BaseNode
	Declaration Stmt // may be nil
	Specifiers  []*ExportSpecifier
	Source      *Literal // may be nil
}

// ExportSpecifier represents local [as exported].
type ExportSpecifier struct {
	BaseNode
	Local    Node // *Identifier or string *Literal
	Exported Node
}

// ExportDefaultDeclaration represents export default <declaration|expr>.
type ExportDefaultDeclaration struct {
	BaseNode
	Declaration Node
}

// ExportAllDeclaration represents export * [as exported] from 'source'.
type ExportAllDeclaration struct {
	BaseNode
	Exported *Identifier // may be nil
	Source   *Literal
}

// -----------------------------------------------------------------------------
// Top level
// -----------------------------------------------------------------------------

// Program is the root of a complete tree.
type Program struct {
	BaseNode
	Body       []Stmt
	SourceType string // "script" or "module"
}

// -----------------------------------------------------------------------------
// Type tags
// -----------------------------------------------------------------------------

func (*VariableDeclaration) Type() string      { return "VariableDeclaration" }
func (*VariableDeclarator) Type() string       { return "VariableDeclarator" }
func (*FunctionDeclaration) Type() string      { return "FunctionDeclaration" }
func (*ClassDeclaration) Type() string         { return "ClassDeclaration" }
func (*ClassBody) Type() string                { return "ClassBody" }
func (*MethodDefinition) Type() string         { return "MethodDefinition" }
func (*PropertyDefinition) Type() string       { return "PropertyDefinition" }
func (*StaticBlock) Type() string              { return "StaticBlock" }
func (*ImportDeclaration) Type() string        { return "ImportDeclaration" }
func (*ImportSpecifier) Type() string          { return "ImportSpecifier" }
func (*ImportDefaultSpecifier) Type() string   { return "ImportDefaultSpecifier" }
func (*ImportNamespaceSpecifier) Type() string { return "ImportNamespaceSpecifier" }
func (*ExportNamedDeclaration) Type() string   { return "ExportNamedDeclaration" }
func (*ExportSpecifier) Type() string          { return "ExportSpecifier" }
func (*ExportDefaultDeclaration) Type() string { return "ExportDefaultDeclaration" }
func (*ExportAllDeclaration) Type() string     { return "ExportAllDeclaration" }
func (*Program) Type() string                  { return "Program" }

// -----------------------------------------------------------------------------
// Interface markers
// -----------------------------------------------------------------------------

func (*VariableDeclaration) stmtNode()      {}
func (*FunctionDeclaration) stmtNode()      {}
func (*ClassDeclaration) stmtNode()         {}
func (*ImportDeclaration) stmtNode()        {}
func (*ExportNamedDeclaration) stmtNode()   {}
func (*ExportDefaultDeclaration) stmtNode() {}
func (*ExportAllDeclaration) stmtNode()     {}

// -----------------------------------------------------------------------------
// Compile-time checks
// -----------------------------------------------------------------------------

var (
	_ Stmt = (*VariableDeclaration)(nil)
	_ Stmt = (*FunctionDeclaration)(nil)
	_ Stmt = (*ClassDeclaration)(nil)
	_ Stmt = (*ImportDeclaration)(nil)
	_ Stmt = (*ExportNamedDeclaration)(nil)
	_ Stmt = (*ExportDefaultDeclaration)(nil)
	_ Stmt = (*ExportAllDeclaration)(nil)

	_ Node = (*VariableDeclarator)(nil)
	_ Node = (*ClassBody)(nil)
	_ Node = (*MethodDefinition)(nil)
	_ Node = (*PropertyDefinition)(nil)
	_ Node = (*StaticBlock)(nil)
	_ Node = (*Program)(nil)
)
