package yard

import (
	"errors"
	"fmt"

	"github.com/npillmayer/postfix/grammar"
)

// ErrEngineDone flags an attempt to feed an engine which already has finished.
var ErrEngineDone = errors.New("shunting-yard engine is done")

// State is the state of an engine.
type State int8

// An engine is either scanning input or done. Done is terminal.
const (
	Scanning State = iota
	Done
)

func (s State) String() string {
	switch s {
	case Scanning:
		return "scanning"
	case Done:
		return "done"
	}
	return fmt.Sprintf("<illegal state: %d>", s)
}

// Engine is a shunting-yard state machine. It is fed one character of a
// delimited expression at a time with Step and completed with Finish.
//
// An engine is not safe for concurrent use; create one per expression.
type Engine struct {
	stack   symbolStack    // operators and '('
	output  []grammar.Atom // append-only output sequence
	state   State          // scanning or done
	markers int            // number of boundary markers seen so far
}

// NewEngine creates an engine in state Scanning, with an empty stack and
// an empty output sequence.
func NewEngine() *Engine {
	return &Engine{
		stack:  newSymbolStack(),
		output: make([]grammar.Atom, 0, 16),
		state:  Scanning,
	}
}

// Run converts a delimited infix expression into a sequence of atoms in
// postfix order. Operands are still split into single-character atoms,
// separated by boundary markers.
//
// Run checks parentheses only. It does not check operator/operand arity:
// "2(3)" yields 2 3 and "2+" yields 2 +, both without an error.
//
// Errors are of type *grammar.SyntaxError. Their positions refer to the
// expression before delimiters had been inserted.
func Run(delimited string) ([]grammar.Atom, error) {
	e := NewEngine()
	for at, r := range delimited {
		if err := e.Step(r, at); err != nil {
			return nil, err
		}
	}
	return e.Finish()
}

// State returns the current state of the engine.
func (e *Engine) State() State {
	return e.state
}

// Output returns the output sequence produced so far. Clients must not
// modify it.
func (e *Engine) Output() []grammar.Atom {
	return e.output
}

// StackDepth returns the number of symbols currently held on the stack.
func (e *Engine) StackDepth() int {
	return e.stack.Size()
}

// Step processes a single character r, located at byte position at of the
// delimited expression.
func (e *Engine) Step(r rune, at int) error {
	if e.state == Done {
		return ErrEngineDone
	}
	atom := grammar.MakeAtom(r, at-e.markers)
	switch atom.Class {
	case grammar.DigitAtom, grammar.PointAtom:
		e.emit(atom)
	case grammar.BoundaryAtom:
		e.markers++
		e.emit(atom)
	case grammar.OperatorAtom:
		e.pushOperator(atom)
	case grammar.OpenParenAtom:
		e.stack.Push(atom)
	case grammar.CloseParenAtom:
		return e.closeParen(atom)
	default:
		tracer().Debugf("invalid character %#U at %d", r, atom.Pos)
		return grammar.NewSyntaxError(grammar.ErrInvalidCharacter, atom.Pos, r, nil)
	}
	return nil
}

// Finish drains the stack into the output sequence and moves the engine
// to state Done. An opening parenthesis left on the stack is an error.
func (e *Engine) Finish() ([]grammar.Atom, error) {
	if e.state == Done {
		return e.output, nil
	}
	for {
		tos, ok := e.stack.Pop()
		if !ok {
			break
		}
		if tos.Class == grammar.OpenParenAtom {
			tracer().Debugf("unmatched '(' at %d", tos.Pos)
			return nil, grammar.NewSyntaxError(grammar.ErrUnbalancedParentheses, tos.Pos, tos.R, nil)
		}
		e.emit(tos)
	}
	e.state = Done
	tracer().Debugf("shunting-yard done, %d atoms", len(e.output))
	return e.output, nil
}

func (e *Engine) emit(atom grammar.Atom) {
	e.output = append(e.output, atom)
}

// pushOperator pops every operator of higher or equal precedence off the
// stack before pushing op. Equal precedence pops as well, which makes all
// operators left-associative.
func (e *Engine) pushOperator(op grammar.Atom) {
	prec, _ := grammar.Precedence(op.R)
	for {
		tos, ok := e.stack.Top()
		if !ok || tos.Class == grammar.OpenParenAtom {
			break
		}
		if p, _ := grammar.Precedence(tos.R); prec > p {
			break
		}
		e.stack.Pop()
		e.emit(tos)
	}
	e.stack.Push(op)
}

// closeParen pops operators into the output up to the matching '(', which
// is discarded.
func (e *Engine) closeParen(paren grammar.Atom) error {
	for {
		tos, ok := e.stack.Pop()
		if !ok {
			tracer().Debugf("unmatched ')' at %d", paren.Pos)
			return grammar.NewSyntaxError(grammar.ErrUnbalancedParentheses, paren.Pos, paren.R,
				grammar.ErrStackUnderflow)
		}
		if tos.Class == grammar.OpenParenAtom {
			return nil
		}
		e.emit(tos)
	}
}
