/*
Package grammar knows about the lexical structure of arithmetic infix expressions.

Expressions consist of numeric operands, the four binary operators
'+', '-', '*', '/' and parentheses. Operands may be multi-digit and may
carry a single decimal point, e.g. "12.5".

Conversion to postfix processes an expression one character at a time.
To keep multi-character operands intact, InsertDelimiters places a boundary
marker right after every operand before conversion starts:

	12.5+3   ⟹   "12.5 +3 "

Every character of a delimited expression is then classified as an Atom.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'postfix.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("postfix.grammar")
}
