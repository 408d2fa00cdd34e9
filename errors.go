package postfix

import "github.com/npillmayer/postfix/grammar"

// Error kinds of malformed expressions. Errors returned by Convert are of
// type *SyntaxError and may be tested with errors.Is.
var (
	ErrStackUnderflow        = grammar.ErrStackUnderflow
	ErrUnbalancedParentheses = grammar.ErrUnbalancedParentheses
	ErrInvalidCharacter      = grammar.ErrInvalidCharacter
	ErrMalformedOperand      = grammar.ErrMalformedOperand
)

// SyntaxError is the error type for malformed expressions.
type SyntaxError = grammar.SyntaxError
