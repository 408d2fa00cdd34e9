package postfix

import (
	"fmt"
	"strings"

	"github.com/npillmayer/postfix/grammar"
	"github.com/npillmayer/postfix/reassembly"
	"github.com/npillmayer/postfix/yard"
)

// OutputMode determines how a conversion result is rendered.
type OutputMode int8

// Output modes
const (
	TokenList    OutputMode = iota // tokens only
	JoinedString                   // tokens joined without separator
	SpacedString                   // tokens joined by a single blank
)

func (m OutputMode) String() string {
	switch m {
	case TokenList:
		return "tokens"
	case JoinedString:
		return "joined"
	case SpacedString:
		return "spaced"
	}
	return fmt.Sprintf("<illegal output mode: %d>", m)
}

// ParseOutputMode gets an output mode from a string, as returned by
// OutputMode.String. There is no default: an empty string is rejected like
// any other unknown mode.
func ParseOutputMode(s string) (OutputMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tokens", "list":
		return TokenList, nil
	case "joined":
		return JoinedString, nil
	case "spaced":
		return SpacedString, nil
	}
	return TokenList, fmt.Errorf("unknown output mode: %q", s)
}

// Result is the outcome of a conversion.
//
// Tokens are always present, operands as multi-character strings and
// operators as single characters, in postfix order. Text holds the joined
// form for output modes JoinedString and SpacedString and is empty for
// TokenList.
type Result struct {
	Mode   OutputMode
	Tokens []string
	Text   string
}

func (r Result) String() string {
	if r.Mode == TokenList {
		return "[" + strings.Join(r.Tokens, " ") + "]"
	}
	return r.Text
}

// Converter converts a single infix expression to postfix notation.
// It holds no mutable state.
type Converter struct {
	expression string
	mode       OutputMode
}

// New creates a converter for an expression.
func New(expression string, mode OutputMode) *Converter {
	return &Converter{
		expression: expression,
		mode:       mode,
	}
}

// Expression returns the infix expression of this converter.
func (c *Converter) Expression() string {
	return c.expression
}

// Mode returns the output mode of this converter.
func (c *Converter) Mode() OutputMode {
	return c.mode
}

// Convert runs the conversion pipeline. Malformed expressions result in an
// error of type *SyntaxError. An empty expression is not an error and
// yields an empty result.
func (c *Converter) Convert() (Result, error) {
	r := Result{Mode: c.mode}
	tokens, err := convert(c.expression)
	if err != nil {
		return r, err
	}
	r.Tokens = reassembly.Strings(tokens)
	switch c.mode {
	case JoinedString:
		r.Text = reassembly.Join(tokens, "")
	case SpacedString:
		r.Text = reassembly.Join(tokens, " ")
	}
	return r, nil
}

// Convert converts an infix expression to a list of postfix tokens.
func Convert(expression string) ([]string, error) {
	r, err := New(expression, TokenList).Convert()
	if err != nil {
		return nil, err
	}
	return r.Tokens, nil
}

// ConvertTokens converts an infix expression to typed postfix tokens.
func ConvertTokens(expression string) ([]reassembly.Token, error) {
	return convert(expression)
}

func convert(expression string) ([]reassembly.Token, error) {
	delimited, err := grammar.InsertDelimiters(expression)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("delimited expression = %q", delimited)
	atoms, err := yard.Run(delimited)
	if err != nil {
		return nil, err
	}
	return reassembly.Reassemble(atoms)
}
