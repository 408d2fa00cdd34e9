package grammar

import (
	"strings"
	"sync"
	"unicode/utf8"

	lex "github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types of the delimiter lexer
const (
	tokNumber int = iota
	tokPoint
	tokOperator
	tokParen
	tokTrailingPoint
)

var tokenNames = []string{"NUMBER", "POINT", "OPERATOR", "PAREN", "TRAILING_POINT"}

var lexerOnce sync.Once // monitors one-time compilation of the lexer
var operandLexer *lex.Lexer
var lexerError error

// lexer returns the compiled lexmachine lexer for expressions. The DFA is
// compiled once and is read-only afterwards; every call to InsertDelimiters
// creates its own scanner.
func lexer() (*lex.Lexer, error) {
	lexerOnce.Do(func() {
		tracer().Debugf("compiling expression lexer")
		l := lex.NewLexer()
		l.Add([]byte(`[0-9]+(\.[0-9]+)?`), makeToken(tokNumber)) // maximal operand
		l.Add([]byte(`\.`), makeToken(tokPoint))                 // stray decimal point
		l.Add([]byte(`[0-9]+(\.[0-9]+)?\.`), trailingPoint())    // "3." or "1.2."
		l.Add([]byte(`[\+\-\*/]`), makeToken(tokOperator))
		l.Add([]byte(`\(|\)`), makeToken(tokParen))
		if lexerError = l.Compile(); lexerError != nil {
			tracer().Errorf("cannot compile expression lexer: %v", lexerError)
			return
		}
		operandLexer = l
	})
	return operandLexer, lexerError
}

func makeToken(id int) lex.Action {
	return func(s *lex.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

// trailingPoint rejects a decimal point directly following an operand.
// Without a marker after it, the point would be glued to the next operand.
func trailingPoint() lex.Action {
	return func(s *lex.Scanner, m *machines.Match) (interface{}, error) {
		pos := m.TC + len(m.Bytes) - 1
		tracer().Debugf("decimal point without fraction at %d", pos)
		return nil, NewSyntaxError(ErrMalformedOperand, pos, '.', nil)
	}
}

// InsertDelimiters returns a copy of expr with a BoundaryMarker inserted
// right after every maximal operand, i.e. every match of
//
//     [0-9]+(\.[0-9]+)?
//
// Matches are non-overlapping and the longest match wins, so "12.34" is a
// single operand. An operand at the end of expr receives a trailing marker
// as well.
//
// Characters outside the expression alphabet result in an error of kind
// ErrInvalidCharacter. A decimal point directly following an operand, as in
// "3.*4", results in an error of kind ErrMalformedOperand. An empty
// expression yields an empty string.
func InsertDelimiters(expr string) (string, error) {
	if expr == "" {
		return "", nil
	}
	l, err := lexer()
	if err != nil {
		return "", err
	}
	scanner, err := l.Scanner([]byte(expr))
	if err != nil {
		return "", err
	}
	var out strings.Builder
	out.Grow(len(expr) + len(expr)/2)
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if ui, isUnconsumed := err.(*machines.UnconsumedInput); isUnconsumed {
			r, _ := utf8.DecodeRuneInString(expr[ui.StartTC:])
			tracer().Debugf("unconsumed input at %d: %#U", ui.StartTC, r)
			return "", NewSyntaxError(ErrInvalidCharacter, ui.StartTC, r, nil)
		} else if err != nil {
			return "", err
		}
		token := tok.(*lex.Token)
		out.Write(token.Lexeme)
		if token.Type == tokNumber {
			out.WriteRune(BoundaryMarker)
		}
		tracer().Debugf("delimiter lexer accepting %s %q", tokenNames[token.Type], token.Lexeme)
	}
	return out.String(), nil
}
