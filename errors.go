package codered

import (
	"errors"
	"fmt"

	"github.com/sahilmob/code-red/internal/jsparser"
	"github.com/sahilmob/code-red/internal/printer"
	"github.com/sahilmob/code-red/internal/template"
)

// ParseError represents a syntax error in a template's source text.
// The underlying parser's message is carried verbatim.
type ParseError struct {
	Message string // Error description from the parser
}

func (e *ParseError) Error() string {
	return e.Message
}

// TemplateError represents a hole value whose kind does not fit the
// position it was supplied for (e.g. a number where a binding target is
// required).
type TemplateError struct {
	Message string // Error description
}

func (e *TemplateError) Error() string {
	return e.Message
}

// UnhandledSigilError is returned by Print when a sigil identifier
// (@name or #name) is still present in the tree. Sigils are a contract
// with external rewriters and must be rewritten before printing.
type UnhandledSigilError struct {
	Name string // Sigil name including the leading '@' or '#'
}

func (e *UnhandledSigilError) Error() string {
	return fmt.Sprintf("Unhandled sigil %s", e.Name)
}

// UnhandledTypeError is returned by Print for a node variant the
// printer does not know.
type UnhandledTypeError struct {
	TypeName string // The offending node's Type()
}

func (e *UnhandledTypeError) Error() string {
	return fmt.Sprintf("Unhandled type %s", e.TypeName)
}

// IsUnhandledSigil reports whether err is an UnhandledSigilError and
// returns the offending name. Returns (name, true) on match.
func IsUnhandledSigil(err error) (string, bool) {
	var e *UnhandledSigilError
	if errors.As(err, &e) {
		return e.Name, true
	}
	return "", false
}

// convertError maps internal error types to the public kinds.
func convertError(err error) error {
	if err == nil {
		return nil
	}
	var pe *jsparser.ParseError
	if errors.As(err, &pe) {
		return &ParseError{Message: pe.Message}
	}
	var te *template.Error
	if errors.As(err, &te) {
		return &TemplateError{Message: te.Message}
	}
	var se *printer.UnhandledSigilError
	if errors.As(err, &se) {
		return &UnhandledSigilError{Name: se.Name}
	}
	var ue *printer.UnhandledTypeError
	if errors.As(err, &ue) {
		return &UnhandledTypeError{TypeName: ue.TypeName}
	}
	return err
}
