package printer

import "github.com/sahilmob/code-red/ast"

// prec encodes the ECMAScript operator precedence levels used to decide
// parenthesization. Higher binds tighter.
type prec int

const (
	precLowest prec = iota
	precComma
	precSpread
	precYield
	precAssign
	precConditional
	precNullishCoalescing
	precLogicalOr
	precLogicalAnd
	precBitwiseOr
	precBitwiseXor
	precBitwiseAnd
	precEquality
	precCompare
	precShift
	precAdd
	precMultiply
	precExponentiation
	precPrefix
	precPostfix
	precNew
	precCall
	precPrimary
)

// binaryPrec maps binary and logical operator text to its level.
var binaryPrec = map[string]prec{
	"??": precNullishCoalescing,
	"||": precLogicalOr,
	"&&": precLogicalAnd,
	"|":  precBitwiseOr,
	"^":  precBitwiseXor,
	"&":  precBitwiseAnd,

	"==":  precEquality,
	"!=":  precEquality,
	"===": precEquality,
	"!==": precEquality,

	"<":          precCompare,
	">":          precCompare,
	"<=":         precCompare,
	">=":         precCompare,
	"in":         precCompare,
	"instanceof": precCompare,

	"<<":  precShift,
	">>":  precShift,
	">>>": precShift,

	"+": precAdd,
	"-": precAdd,

	"*": precMultiply,
	"/": precMultiply,
	"%": precMultiply,

	"**": precExponentiation,
}

// rightAssociative reports whether a binary operator groups to the right.
func rightAssociative(op string) bool {
	return op == "**"
}

// exprPrec returns the precedence level the expression produces on its
// own, i.e. the loosest context it can be emitted into without parens.
func exprPrec(e ast.Expr) prec {
	switch n := e.(type) {
	case *ast.SequenceExpression:
		return precComma
	case *ast.YieldExpression, *ast.ArrowFunctionExpression:
		return precYield
	case *ast.AssignmentExpression:
		return precAssign
	case *ast.ConditionalExpression:
		return precConditional
	case *ast.BinaryExpression:
		if p, ok := binaryPrec[n.Operator]; ok {
			return p
		}
		return precLowest
	case *ast.LogicalExpression:
		if p, ok := binaryPrec[n.Operator]; ok {
			return p
		}
		return precLowest
	case *ast.UnaryExpression, *ast.AwaitExpression:
		return precPrefix
	case *ast.UpdateExpression:
		if n.Prefix {
			return precPrefix
		}
		return precPostfix
	case *ast.NewExpression:
		if n.Arguments == nil {
			return precNew
		}
		return precCall
	case *ast.CallExpression:
		return precCall
	case *ast.MemberExpression, *ast.TaggedTemplateExpression, *ast.ChainExpression:
		return precCall
	default:
		// Identifiers, literals, templates, this/super, array and object
		// literals, functions and classes are primary expressions.
		return precPrimary
	}
}
