package reassembly

import (
	"strings"

	"github.com/npillmayer/postfix/grammar"
	"github.com/shopspring/decimal"
)

// Reassemble turns a postfix sequence of atoms into tokens.
// Every maximal run of numeric atoms becomes a single operand token, every
// operator becomes a token of its own, boundary markers are dropped.
//
// A boundary marker always terminates a run, therefore the digits of two
// distinct operands are never merged. An operand which is not a valid
// decimal number results in an error of kind grammar.ErrMalformedOperand.
func Reassemble(atoms []grammar.Atom) ([]Token, error) {
	tokens := make([]Token, 0, len(atoms)/2+1)
	var buf strings.Builder
	start := 0 // position of the first atom in buf
	flush := func() error {
		if buf.Len() == 0 {
			return nil
		}
		lexeme := buf.String()
		buf.Reset()
		if !isOperand(lexeme) {
			tracer().Debugf("malformed operand %q at %d", lexeme, start)
			return grammar.NewSyntaxError(grammar.ErrMalformedOperand, start, 0, nil)
		}
		tokens = append(tokens, Token{Kind: Operand, Lexeme: lexeme})
		return nil
	}
	for _, a := range atoms {
		if IsNumericFragment(string(a.R)) {
			if buf.Len() == 0 {
				start = a.Pos
			}
			buf.WriteRune(a.R)
			continue
		}
		if err := flush(); err != nil {
			return nil, err
		}
		switch a.Class {
		case grammar.BoundaryAtom:
			// separation only
		case grammar.OperatorAtom:
			tokens = append(tokens, Token{Kind: Operator, Lexeme: string(a.R)})
		default:
			return nil, grammar.NewSyntaxError(grammar.ErrInvalidCharacter, a.Pos, a.R, nil)
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	tracer().Debugf("reassembled %d atoms into %d tokens", len(atoms), len(tokens))
	return tokens, nil
}

// IsNumericFragment is a predicate: does s, consisting of digits and
// decimal points only, parse as a non-negative decimal number? A single
// decimal point counts as a numeric fragment as well.
func IsNumericFragment(s string) bool {
	if s == "" || strings.Trim(s, "0123456789.") != "" {
		return false
	}
	if s == "." {
		return true
	}
	_, err := decimal.NewFromString(s)
	return err == nil
}

// isOperand checks a reassembled operand. In contrast to single fragments,
// a lone decimal point is not a number.
func isOperand(s string) bool {
	return s != "." && IsNumericFragment(s)
}
