/*
Package yard implements Dijkstra's shunting-yard algorithm for delimited
infix expressions.

The engine consumes a delimited expression (see grammar.InsertDelimiters)
strictly left to right, one character at a time. Operators and opening
parentheses are held on a symbol stack; numeric atoms and boundary markers
are copied to the output sequence as they come in. The result is a sequence
of atoms in postfix order, with operands still split into single characters.
Package reassembly glues them back together.

Every call to Run operates on its own engine, so concurrent conversions
share no mutable state at all.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package yard

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'postfix.yard'
func tracer() tracing.Trace {
	return tracing.Select("postfix.yard")
}
