package yard

import (
	"github.com/emirpasic/gods/stacks/linkedliststack"
	"github.com/npillmayer/postfix/grammar"
)

// symbolStack holds operators and opening parentheses. It never holds
// digits, closing parentheses or boundary markers.
type symbolStack struct {
	stack *linkedliststack.Stack
}

func newSymbolStack() symbolStack {
	return symbolStack{stack: linkedliststack.New()}
}

// Top returns the top of stack, or false if the stack is empty.
func (s symbolStack) Top() (grammar.Atom, bool) {
	tos, ok := s.stack.Peek()
	if !ok {
		return grammar.Atom{}, false
	}
	return tos.(grammar.Atom), true
}

// Pop removes and returns the top of stack, or false if the stack is empty.
func (s symbolStack) Pop() (grammar.Atom, bool) {
	tos, ok := s.stack.Pop()
	if !ok {
		return grammar.Atom{}, false
	}
	return tos.(grammar.Atom), true
}

func (s symbolStack) Push(a grammar.Atom) {
	s.stack.Push(a)
}

func (s symbolStack) Size() int {
	return s.stack.Size()
}
