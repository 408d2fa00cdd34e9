package grammar

import "fmt"

// BoundaryMarker terminates every operand in a delimited expression.
// Whitespace is not part of the expression alphabet, so a blank in a
// delimited expression is always a marker.
const BoundaryMarker = ' '

// AtomClass is the lexical category of a single character.
type AtomClass int8

// Classes of atoms
const (
	InvalidAtom AtomClass = iota
	DigitAtom
	PointAtom // decimal point
	BoundaryAtom
	OperatorAtom
	OpenParenAtom
	CloseParenAtom
)

func (c AtomClass) String() string {
	switch c {
	case InvalidAtom:
		return "<invalid>"
	case DigitAtom:
		return "digit"
	case PointAtom:
		return "point"
	case BoundaryAtom:
		return "boundary"
	case OperatorAtom:
		return "operator"
	case OpenParenAtom:
		return "("
	case CloseParenAtom:
		return ")"
	}
	return fmt.Sprintf("<illegal atom class: %d>", c)
}

// Atom is a single classified character of a delimited expression.
// Pos is the byte position of the character in the original expression;
// boundary markers carry the position of the character following them.
type Atom struct {
	R     rune
	Class AtomClass
	Pos   int
}

// MakeAtom classifies r and wraps it into an atom.
func MakeAtom(r rune, pos int) Atom {
	return Atom{R: r, Class: Classify(r), Pos: pos}
}

// IsNumeric is a predicate: is this atom a digit or a decimal point?
func (a Atom) IsNumeric() bool {
	return a.Class == DigitAtom || a.Class == PointAtom
}

func (a Atom) String() string {
	return string(a.R)
}

// Classify returns the atom class of a character.
func Classify(r rune) AtomClass {
	switch {
	case r >= '0' && r <= '9':
		return DigitAtom
	case r == '.':
		return PointAtom
	case r == BoundaryMarker:
		return BoundaryAtom
	}
	switch r {
	case '+', '-', '*', '/':
		return OperatorAtom
	case '(':
		return OpenParenAtom
	case ')':
		return CloseParenAtom
	}
	return InvalidAtom
}

// precedence levels of binary operators. All operators are left-associative.
var precedence = map[rune]int{
	'+': 0,
	'-': 0,
	'*': 1,
	'/': 1,
}

// Precedence returns the precedence level of operator op, and false if
// op is not an operator.
func Precedence(op rune) (int, bool) {
	p, ok := precedence[op]
	return p, ok
}
