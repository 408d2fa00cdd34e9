package cli

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/postfix"
	"github.com/npillmayer/postfix/postfix/ui/termui"
	"github.com/npillmayer/postfix/reassembly"
)

// Formatter formats conversion results and delegates everything else to
// the default formatter.
type Formatter struct {
	termui.DefaultFormatter
}

// Format writes item to w.
func (f Formatter) Format(item interface{}, w io.Writer) (bool, error) {
	tracer().Debugf("cli.Format called for item %T", item)
	switch t := item.(type) {
	case postfix.Result:
		if t.Mode == postfix.TokenList {
			return f.DefaultFormatter.Format(t.Tokens, w)
		}
		return f.DefaultFormatter.Format(t.Text, w)
	}
	return f.DefaultFormatter.Format(item, w)
}

// --- Token tables ----------------------------------------------------------

func tokensAsTable(expr string, tokens []reassembly.Token) table.Writer {
	tw := table.NewWriter()
	tw.SetTitle("Postfix of %s", expr)
	tw.AppendHeader(table.Row{"#", "token", "kind"})
	for i, tok := range tokens {
		tw.AppendRow(table.Row{i + 1, tok.Lexeme, tok.Kind.String()})
	}
	tw.SetStyle(table.StyleLight)
	return tw
}
