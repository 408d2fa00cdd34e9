/*
Package reassembly merges the single-character atoms of a postfix sequence
back into tokens.

The shunting-yard engine emits operands one digit at a time. Boundary
markers, inserted before conversion, tell where one operand ends and the
next one begins:

	1 2 . 5 ␣ 3 ␣ +   ⟹   [12.5] [3] [+]

Reassembly is a single left-to-right pass with an accumulation buffer.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package reassembly

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'postfix.reassembly'
func tracer() tracing.Trace {
	return tracing.Select("postfix.reassembly")
}
