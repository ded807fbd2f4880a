// Package template implements the hole-filling engine behind the b/x/p
// entry points.
//
// A template arrives as N+1 string chunks around N hole values. The
// chunks are stitched around generated placeholder identifiers, the
// result is parsed, and a substitution walk grafts the hole values into
// the parsed tree with type-directed coercions, list flattening and
// falsy elision.
package template

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/sahilmob/code-red/ast"
	"github.com/sahilmob/code-red/internal/jsparser"
)

// holePrefix starts every placeholder identifier. It shares the parser
// adapter's reserved "___" namespace, disjoint from reasonable user
// identifiers.
const holePrefix = "___hole"

// Error reports a hole value whose kind does not fit its position.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func errorf(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// Statements builds a statement-list fragment.
func Statements(chunks []string, values []any) ([]ast.Stmt, error) {
	src, err := stitch(chunks, values)
	if err != nil {
		return nil, err
	}
	stmts, err := jsparser.ParseStatements(src)
	if err != nil {
		return nil, err
	}
	s := &subst{holes: values}
	stmts = s.stmtList(stmts)
	if s.err != nil {
		return nil, s.err
	}
	return stmts, nil
}

// Expression builds a single-expression fragment.
func Expression(chunks []string, values []any) (ast.Expr, error) {
	src, err := stitch(chunks, values)
	if err != nil {
		return nil, err
	}
	expr, err := jsparser.ParseExpression(src)
	if err != nil {
		return nil, err
	}
	s := &subst{holes: values}
	expr = s.expr(expr)
	if s.err != nil {
		return nil, s.err
	}
	if expr == nil {
		return nil, errorf("template produced no expression")
	}
	return expr, nil
}

// Property builds a single object-property fragment.
func Property(chunks []string, values []any) (*ast.Property, error) {
	src, err := stitch(chunks, values)
	if err != nil {
		return nil, err
	}
	prop, err := jsparser.ParseProperty(src)
	if err != nil {
		return nil, err
	}
	s := &subst{holes: values}
	out := s.props([]ast.Node{prop})
	if s.err != nil {
		return nil, s.err
	}
	if len(out) != 1 {
		return nil, errorf("template produced %d properties, expected 1", len(out))
	}
	result, ok := out[0].(*ast.Property)
	if !ok {
		return nil, errorf("template produced a %s, expected a property", out[0].Type())
	}
	return result, nil
}

// stitch joins the chunks around one placeholder identifier per hole.
//
// A placeholder in code position is followed by a line terminator so the
// placeholder token is statement-terminated under Automatic Semicolon
// Insertion no matter what the next chunk starts with ("a++; ___hole0
// b++" would not parse; "a++; ___hole0\n b++" does). Placeholders inside
// string or template text must stay inline.
func stitch(chunks []string, values []any) (string, error) {
	if len(chunks) != len(values)+1 {
		return "", errorf("template has %d chunks for %d values, expected %d",
			len(chunks), len(values), len(values)+1)
	}
	var b strings.Builder
	var st chunkScanner
	for i, chunk := range chunks {
		b.WriteString(chunk)
		st.scan(chunk)
		if i < len(values) {
			b.WriteString(holePrefix)
			b.WriteString(strconv.Itoa(i))
			if st.inCode() && needsStatementBreak(chunks[i+1]) {
				b.WriteByte('\n')
			}
		}
	}
	return b.String(), nil
}

// needsStatementBreak reports whether a line terminator must follow a
// code-position placeholder so it cannot fuse with the next chunk's
// first token. The break is skipped when the chunk continues the
// placeholder's own identifier (name splicing), and when its first
// meaningful character can only continue the enclosing construct, where
// an implicit semicolon could instead split one statement in two.
func needsStatementBreak(next string) bool {
	if startsWithIdentChar(next) {
		return false
	}
	for i := 0; i < len(next); i++ {
		switch next[i] {
		case ' ', '\t', '\n', '\r':
			continue
		case ';', ',', ')', ']', '}', ':':
			return false
		default:
			return true
		}
	}
	return true
}

func startsWithIdentChar(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return c == '_' || c == '$' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// chunkScanner tracks the lexical context of the template text across
// chunk boundaries: whether the current insertion point sits in code or
// inside a string literal, template text, or comment.
type chunkScanner struct {
	state  int
	braces int
	// Brace depths at which an enclosing template substitution was
	// entered; closing back to that depth resumes the template text.
	tmplStack []int
}

const (
	scanCode = iota
	scanSingle
	scanDouble
	scanBacktick
	scanLineComment
	scanBlockComment
)

func (cs *chunkScanner) inCode() bool {
	return cs.state == scanCode
}

func (cs *chunkScanner) scan(src string) {
	for i := 0; i < len(src); {
		ch := src[i]

		switch cs.state {
		case scanSingle, scanDouble:
			quote := byte('\'')
			if cs.state == scanDouble {
				quote = '"'
			}
			if ch == '\\' && i+1 < len(src) {
				i += 2
				continue
			}
			if ch == quote || ch == '\n' {
				cs.state = scanCode
			}

		case scanBacktick:
			if ch == '\\' && i+1 < len(src) {
				i += 2
				continue
			}
			if ch == '`' {
				cs.state = scanCode
			} else if ch == '$' && i+1 < len(src) && src[i+1] == '{' {
				cs.tmplStack = append(cs.tmplStack, cs.braces)
				cs.state = scanCode
				i += 2
				continue
			}

		case scanLineComment:
			if ch == '\n' {
				cs.state = scanCode
			}

		case scanBlockComment:
			if ch == '*' && i+1 < len(src) && src[i+1] == '/' {
				cs.state = scanCode
				i += 2
				continue
			}

		case scanCode:
			switch ch {
			case '\'':
				cs.state = scanSingle
			case '"':
				cs.state = scanDouble
			case '`':
				cs.state = scanBacktick
			case '{':
				cs.braces++
			case '}':
				if n := len(cs.tmplStack); n > 0 && cs.braces == cs.tmplStack[n-1] {
					cs.tmplStack = cs.tmplStack[:n-1]
					cs.state = scanBacktick
				} else if cs.braces > 0 {
					cs.braces--
				}
			case '/':
				if i+1 < len(src) {
					switch src[i+1] {
					case '/':
						cs.state = scanLineComment
						i += 2
						continue
					case '*':
						cs.state = scanBlockComment
						i += 2
						continue
					}
				}
			}
		}

		i++
	}
}

// holeIndex recognizes a placeholder identifier name, returning its hole
// index.
func holeIndex(name string) (int, bool) {
	rest, ok := strings.CutPrefix(name, holePrefix)
	if !ok || rest == "" {
		return 0, false
	}
	idx, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return idx, true
}

// isFalsy reports whether a hole value requests elision of its enclosing
// element: false, nil, or a nil typed node.
func isFalsy(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case bool:
		return !x
	case ast.Node:
		rv := reflect.ValueOf(x)
		return rv.Kind() == reflect.Pointer && rv.IsNil()
	}
	return false
}
