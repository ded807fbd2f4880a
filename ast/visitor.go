package ast

// Walk traverses an AST in depth-first pre-order.
// For each node, it calls fn(node). If fn returns false,
// the children of that node are not visited.
//
// Example: count all identifiers
//
//	count := 0
//	ast.Walk(root, func(n ast.Node) bool {
//	    if _, ok := n.(*ast.Identifier); ok {
//	        count++
//	    }
//	    return true // continue traversal
//	})
func Walk(node Node, fn func(Node) bool) {
	inspect(node, nil, func(n, _ Node) bool { return fn(n) })
}

// Inspect traverses an AST with parent tracking.
// For each node, it calls fn(node, parent). The parent is nil for the
// root node. If fn returns false, the children are not visited.
func Inspect(node Node, fn func(node, parent Node) bool) {
	inspect(node, nil, fn)
}

// WalkFunc is a convenience type for walk callbacks.
type WalkFunc func(Node) bool

// InspectFunc is a convenience type for inspect callbacks.
type InspectFunc func(node, parent Node) bool

func isNil(n Node) bool {
	if n == nil {
		return true
	}
	switch v := n.(type) {
	case *Identifier:
		return v == nil
	case *Literal:
		return v == nil
	case *BlockStatement:
		return v == nil
	case *TemplateLiteral:
		return v == nil
	case *ClassBody:
		return v == nil
	case *CatchClause:
		return v == nil
	case *FunctionExpression:
		return v == nil
	}
	return false
}

func inspect(node, parent Node, fn func(node, parent Node) bool) {
	if isNil(node) || !fn(node, parent) {
		return
	}

	visit := func(child Node) {
		if !isNil(child) {
			inspect(child, node, fn)
		}
	}

	switch n := node.(type) {
	case *Program:
		for _, s := range n.Body {
			visit(s)
		}

	// Atoms (no children)
	case *Identifier, *PrivateIdentifier, *Literal, *TemplateElement,
		*ThisExpression, *Super, *EmptyStatement, *DebuggerStatement:

	case *MetaProperty:
		visit(n.Meta)
		visit(n.Property)

	case *TemplateLiteral:
		for i := range n.Quasis {
			visit(n.Quasis[i])
		}
		for _, e := range n.Expressions {
			visit(e)
		}

	case *TaggedTemplateExpression:
		visit(n.Tag)
		visit(n.Quasi)

	// Composites
	case *ArrayExpression:
		for _, e := range n.Elements {
			visit(e)
		}

	case *ObjectExpression:
		for _, p := range n.Properties {
			visit(p)
		}

	case *Property:
		visit(n.Key)
		visit(n.Value)

	case *SpreadElement:
		visit(n.Argument)

	// Operations
	case *UnaryExpression:
		visit(n.Argument)

	case *UpdateExpression:
		visit(n.Argument)

	case *BinaryExpression:
		visit(n.Left)
		visit(n.Right)

	case *LogicalExpression:
		visit(n.Left)
		visit(n.Right)

	case *AssignmentExpression:
		visit(n.Left)
		visit(n.Right)

	case *ConditionalExpression:
		visit(n.Test)
		visit(n.Consequent)
		visit(n.Alternate)

	case *SequenceExpression:
		for _, e := range n.Expressions {
			visit(e)
		}

	case *YieldExpression:
		visit(n.Argument)

	case *AwaitExpression:
		visit(n.Argument)

	// Access and calls
	case *MemberExpression:
		visit(n.Object)
		visit(n.Property)

	case *CallExpression:
		visit(n.Callee)
		for _, a := range n.Arguments {
			visit(a)
		}

	case *NewExpression:
		visit(n.Callee)
		for _, a := range n.Arguments {
			visit(a)
		}

	case *ChainExpression:
		visit(n.Expression)

	// Closures
	case *FunctionExpression:
		visit(n.ID)
		for _, p := range n.Params {
			visit(p)
		}
		visit(n.Body)

	case *ArrowFunctionExpression:
		for _, p := range n.Params {
			visit(p)
		}
		visit(n.Body)

	case *ClassExpression:
		visit(n.ID)
		visit(n.SuperClass)
		visit(n.Body)

	// Patterns
	case *ObjectPattern:
		for _, p := range n.Properties {
			visit(p)
		}

	case *ArrayPattern:
		for _, e := range n.Elements {
			visit(e)
		}

	case *AssignmentPattern:
		visit(n.Left)
		visit(n.Right)

	case *RestElement:
		visit(n.Argument)

	// Statements
	case *ExpressionStatement:
		visit(n.Expression)

	case *BlockStatement:
		for _, s := range n.Body {
			visit(s)
		}

	case *IfStatement:
		visit(n.Test)
		visit(n.Consequent)
		visit(n.Alternate)

	case *SwitchStatement:
		visit(n.Discriminant)
		for _, c := range n.Cases {
			visit(c)
		}

	case *SwitchCase:
		visit(n.Test)
		for _, s := range n.Consequent {
			visit(s)
		}

	case *ReturnStatement:
		visit(n.Argument)

	case *BreakStatement:
		visit(n.Label)

	case *ContinueStatement:
		visit(n.Label)

	case *LabeledStatement:
		visit(n.Label)
		visit(n.Body)

	case *ThrowStatement:
		visit(n.Argument)

	case *TryStatement:
		visit(n.Block)
		visit(n.Handler)
		visit(n.Finalizer)

	case *CatchClause:
		visit(n.Param)
		visit(n.Body)

	case *WithStatement:
		visit(n.Object)
		visit(n.Body)

	case *ForStatement:
		visit(n.Init)
		visit(n.Test)
		visit(n.Update)
		visit(n.Body)

	case *ForInStatement:
		visit(n.Left)
		visit(n.Right)
		visit(n.Body)

	case *ForOfStatement:
		visit(n.Left)
		visit(n.Right)
		visit(n.Body)

	case *WhileStatement:
		visit(n.Test)
		visit(n.Body)

	case *DoWhileStatement:
		visit(n.Body)
		visit(n.Test)

	// Declarations
	case *VariableDeclaration:
		for _, d := range n.Declarations {
			visit(d)
		}

	case *VariableDeclarator:
		visit(n.ID)
		visit(n.Init)

	case *FunctionDeclaration:
		visit(n.ID)
		for _, p := range n.Params {
			visit(p)
		}
		visit(n.Body)

	case *ClassDeclaration:
		visit(n.ID)
		visit(n.SuperClass)
		visit(n.Body)

	case *ClassBody:
		for _, e := range n.Body {
			visit(e)
		}

	case *MethodDefinition:
		visit(n.Key)
		visit(n.Value)

	case *PropertyDefinition:
		visit(n.Key)
		visit(n.Value)

	case *StaticBlock:
		for _, s := range n.Body {
			visit(s)
		}

	// Modules
	case *ImportDeclaration:
		for _, s := range n.Specifiers {
			visit(s)
		}
		visit(n.Source)

	case *ImportSpecifier:
		visit(n.Imported)
		visit(n.Local)

	case *ImportDefaultSpecifier:
		visit(n.Local)

	case *ImportNamespaceSpecifier:
		visit(n.Local)

	case *ExportNamedDeclaration:
		visit(n.Declaration)
		for _, s := range n.Specifiers {
			visit(s)
		}
		visit(n.Source)

	case *ExportSpecifier:
		visit(n.Local)
		visit(n.Exported)

	case *ExportDefaultDeclaration:
		visit(n.Declaration)

	case *ExportAllDeclaration:
		visit(n.Exported)
		visit(n.Source)
	}
}
