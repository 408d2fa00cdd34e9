/*
Package postfix converts arithmetic infix expressions to postfix notation
(Reverse Polish notation).

Expressions consist of numeric operands, the binary operators '+', '-', '*',
'/' and parentheses. Operands may span multiple digits and may carry a
decimal point. Conversion runs as a pipeline of three stages:

	"12.5+3"  ──InsertDelimiters──▶  "12.5 +3 "
	          ──shunting-yard────▶  1 2 . 5 ␣ 3 ␣ +
	          ──Reassemble───────▶  [12.5 3 +]

Usage:

	tokens, err := postfix.Convert("(2+3)*4")   // [2 3 + 4 *]

	c := postfix.New("8-3-2", postfix.SpacedString)
	r, err := c.Convert()                         // r.Text = "8 3 - 2 -"

A Converter holds no mutable state. Every call to Convert works on its own
stack and output sequence, so a converter may be used from multiple
goroutines at once.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package postfix

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'postfix'.
func tracer() tracing.Trace {
	return tracing.Select("postfix")
}
