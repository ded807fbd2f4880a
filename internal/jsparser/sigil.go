package jsparser

import (
	"strings"

	"github.com/coregx/coregex"
)

// Sigil identifiers (@name, #name) are not valid JavaScript, so they are
// tunneled through the underlying parser as identifiers with a reserved
// prefix and restored in the converted tree. The prefixes live in a
// namespace no reasonable template uses; they are reserved either way.
const (
	sigilAtPrefix   = "___sigil_at_"
	sigilHashPrefix = "___sigil_hash_"
)

// sigilIdent matches a sigil character followed by an identifier.
var sigilIdent = mustCompile(`^[@#][A-Za-z_$][A-Za-z0-9_$]*`)

func mustCompile(pattern string) *coregex.Regexp {
	re, err := coregex.Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// tunnelSigils rewrites @name and #name identifiers so the source can be
// handed to a standard ECMAScript parser. String literals, template
// literal text and comments are left untouched; code inside template
// substitutions is rewritten.
func tunnelSigils(src string) string {
	if !strings.ContainsAny(src, "@#") {
		return src
	}

	var b strings.Builder
	b.Grow(len(src))

	const (
		code = iota
		single
		double
		backtick
		lineComment
		blockComment
	)
	state := code
	braces := 0
	// Brace depths at which an enclosing template substitution was
	// entered; closing back to that depth resumes the template text.
	var tmplStack []int

	for i := 0; i < len(src); {
		ch := src[i]

		switch state {
		case single, double:
			quote := byte('\'')
			if state == double {
				quote = '"'
			}
			if ch == '\\' && i+1 < len(src) {
				b.WriteByte(ch)
				b.WriteByte(src[i+1])
				i += 2
				continue
			}
			if ch == quote || ch == '\n' {
				state = code
			}

		case backtick:
			if ch == '\\' && i+1 < len(src) {
				b.WriteByte(ch)
				b.WriteByte(src[i+1])
				i += 2
				continue
			}
			if ch == '`' {
				state = code
			} else if ch == '$' && i+1 < len(src) && src[i+1] == '{' {
				tmplStack = append(tmplStack, braces)
				state = code
				b.WriteString("${")
				i += 2
				continue
			}

		case lineComment:
			if ch == '\n' {
				state = code
			}

		case blockComment:
			if ch == '*' && i+1 < len(src) && src[i+1] == '/' {
				b.WriteString("*/")
				i += 2
				state = code
				continue
			}

		case code:
			switch ch {
			case '\'':
				state = single
			case '"':
				state = double
			case '`':
				state = backtick
			case '{':
				braces++
			case '}':
				if n := len(tmplStack); n > 0 && braces == tmplStack[n-1] {
					tmplStack = tmplStack[:n-1]
					state = backtick
				} else if braces > 0 {
					braces--
				}
			case '/':
				if i+1 < len(src) {
					switch src[i+1] {
					case '/':
						state = lineComment
						b.WriteString("//")
						i += 2
						continue
					case '*':
						state = blockComment
						b.WriteString("/*")
						i += 2
						continue
					}
				}
			case '@', '#':
				if m := sigilIdent.FindStringIndex(src[i:]); m != nil && m[0] == 0 {
					name := src[i+1 : i+m[1]]
					if ch == '@' {
						b.WriteString(sigilAtPrefix)
					} else {
						b.WriteString(sigilHashPrefix)
					}
					b.WriteString(name)
					i += m[1]
					continue
				}
			}
		}

		b.WriteByte(ch)
		i++
	}
	return b.String()
}

// restoreName maps a tunneled identifier name back to its sigil form.
func restoreName(name string) string {
	if rest, ok := strings.CutPrefix(name, sigilAtPrefix); ok {
		return "@" + rest
	}
	if rest, ok := strings.CutPrefix(name, sigilHashPrefix); ok {
		return "#" + rest
	}
	return name
}
