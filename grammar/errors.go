package grammar

import (
	"errors"
	"fmt"
)

// Error kinds for malformed expressions. Clients should test for them
// with errors.Is.
var (
	// ErrStackUnderflow flags a pop from an empty symbol stack.
	ErrStackUnderflow = errors.New("symbol stack underflow")
	// ErrUnbalancedParentheses flags a ')' without '(' or vice versa.
	ErrUnbalancedParentheses = errors.New("unbalanced parentheses")
	// ErrInvalidCharacter flags a character which is not part of the expression alphabet.
	ErrInvalidCharacter = errors.New("invalid character")
	// ErrMalformedOperand flags an operand which is not a valid decimal number.
	ErrMalformedOperand = errors.New("malformed operand")
)

// SyntaxError is the error type for malformed expressions.
//
// Err is one of the error kinds of this package. Pos is the byte position
// within the original expression (not the delimited one), or -1 if
// the error has been detected at the end of input.
type SyntaxError struct {
	Err   error
	Pos   int
	Char  rune
	cause error
}

// NewSyntaxError creates a syntax error of kind err, located at pos.
// cause is an optional underlying error kind.
func NewSyntaxError(err error, pos int, ch rune, cause error) *SyntaxError {
	return &SyntaxError{
		Err:   err,
		Pos:   pos,
		Char:  ch,
		cause: cause,
	}
}

func (e *SyntaxError) Error() string {
	var msg string
	switch {
	case e.Pos < 0:
		msg = fmt.Sprintf("%s at end of expression", e.Err.Error())
	case e.Char != 0:
		msg = fmt.Sprintf("%s %q at position %d", e.Err.Error(), e.Char, e.Pos)
	default:
		msg = fmt.Sprintf("%s at position %d", e.Err.Error(), e.Pos)
	}
	if e.cause != nil {
		msg += " (" + e.cause.Error() + ")"
	}
	return msg
}

// Unwrap returns the error kind.
func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Is matches the error kind as well as the underlying cause, if any.
// An unbalanced ')' is therefore both ErrUnbalancedParentheses and
// ErrStackUnderflow.
func (e *SyntaxError) Is(target error) bool {
	if target == e.Err {
		return true
	}
	return e.cause != nil && errors.Is(e.cause, target)
}
