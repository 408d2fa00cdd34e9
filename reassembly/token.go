package reassembly

import (
	"fmt"
	"strings"
)

// Kind is the kind of a postfix token.
type Kind int8

// Tokens are either operands or operators.
const (
	Operand Kind = iota
	Operator
)

func (k Kind) String() string {
	switch k {
	case Operand:
		return "operand"
	case Operator:
		return "operator"
	}
	return fmt.Sprintf("<illegal token kind: %d>", k)
}

// Token is a fully reassembled operand or a single operator.
type Token struct {
	Kind   Kind
	Lexeme string
}

func (t Token) String() string {
	return t.Lexeme
}

// Strings returns the lexemes of a sequence of tokens.
func Strings(tokens []Token) []string {
	s := make([]string, len(tokens))
	for i, t := range tokens {
		s[i] = t.Lexeme
	}
	return s
}

// Join concatenates the lexemes of tokens, separated by sep.
//
// Joining without a separator is ambiguous as soon as two operands follow
// each other ("2 3 +" becomes "23+"); use a blank for human readable output.
func Join(tokens []Token, sep string) string {
	return strings.Join(Strings(tokens), sep)
}
