package postfix_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/npillmayer/postfix"
	"github.com/npillmayer/postfix/reassembly"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestConvert(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "postfix")
	defer teardown()
	//
	for i, x := range []struct {
		infix  string
		tokens []string
	}{
		{infix: "", tokens: []string{}},
		{infix: "42", tokens: []string{"42"}},
		{infix: "2+3*4", tokens: []string{"2", "3", "4", "*", "+"}},
		{infix: "(2+3)*4", tokens: []string{"2", "3", "+", "4", "*"}},
		{infix: "8-3-2", tokens: []string{"8", "3", "-", "2", "-"}},
		{infix: "12.5+3", tokens: []string{"12.5", "3", "+"}},
		{infix: "100/(25-0.5*10)", tokens: []string{"100", "25", "0.5", "10", "*", "-", "/"}},
		{infix: "((7))", tokens: []string{"7"}},
	} {
		tokens, err := postfix.Convert(x.infix)
		if err != nil {
			t.Errorf("test %d: unexpected error for %q: %v", i, x.infix, err)
			continue
		}
		if !equal(tokens, x.tokens) {
			t.Errorf("test %d: expected %q to convert to %v, is %v", i, x.infix, x.tokens, tokens)
		}
	}
}

func TestOutputModes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "postfix")
	defer teardown()
	//
	for i, x := range []struct {
		mode postfix.OutputMode
		text string
		str  string
	}{
		{mode: postfix.TokenList, text: "", str: "[12.5 3 + 4 *]"},
		{mode: postfix.JoinedString, text: "12.53+4*", str: "12.53+4*"},
		{mode: postfix.SpacedString, text: "12.5 3 + 4 *", str: "12.5 3 + 4 *"},
	} {
		c := postfix.New("(12.5+3)*4", x.mode)
		r, err := c.Convert()
		if err != nil {
			t.Fatal(err)
		}
		if r.Text != x.text || r.String() != x.str {
			t.Errorf("test %d: mode %s rendered as %q / %q", i, x.mode, r.Text, r.String())
		}
		if len(r.Tokens) != 5 {
			t.Errorf("test %d: expected tokens to be present in every mode", i)
		}
	}
}

func TestParseOutputMode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "postfix")
	defer teardown()
	//
	for _, m := range []postfix.OutputMode{postfix.TokenList, postfix.JoinedString, postfix.SpacedString} {
		if p, err := postfix.ParseOutputMode(m.String()); err != nil || p != m {
			t.Errorf("output mode %s does not survive parsing: %v, %v", m, p, err)
		}
	}
	for _, s := range []string{"fancy", "", " "} {
		if _, err := postfix.ParseOutputMode(s); err == nil {
			t.Errorf("expected output mode %q to be rejected", s)
		}
	}
}

func TestConvertErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "postfix")
	defer teardown()
	//
	for i, x := range []struct {
		infix string
		kind  error
		pos   int
	}{
		{infix: "(2+3", kind: postfix.ErrUnbalancedParentheses, pos: 0},
		{infix: "2+3)", kind: postfix.ErrUnbalancedParentheses, pos: 3},
		{infix: "2+3)", kind: postfix.ErrStackUnderflow, pos: 3},
		{infix: ")2", kind: postfix.ErrStackUnderflow, pos: 0},
		{infix: "12.5+x", kind: postfix.ErrInvalidCharacter, pos: 5},
		{infix: "2 + 3", kind: postfix.ErrInvalidCharacter, pos: 1},
		{infix: "1+.", kind: postfix.ErrMalformedOperand, pos: 2},
		{infix: "3.*4", kind: postfix.ErrMalformedOperand, pos: 1},
		{infix: "1.+2", kind: postfix.ErrMalformedOperand, pos: 1},
	} {
		c := postfix.New(x.infix, postfix.SpacedString)
		r, err := c.Convert()
		if !errors.Is(err, x.kind) {
			t.Errorf("test %d: expected error %v for %q, have %v", i, x.kind, x.infix, err)
			continue
		}
		if r.Tokens != nil || r.Text != "" {
			t.Errorf("test %d: expected empty result on error, have %v", i, r)
		}
		var serr *postfix.SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("test %d: expected a syntax error, have %T", i, err)
		} else if serr.Pos != x.pos {
			t.Errorf("test %d: expected error at position %d, is at %d", i, x.pos, serr.Pos)
		}
	}
}

func TestConvertTokens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "postfix")
	defer teardown()
	//
	tokens, err := postfix.ConvertTokens("3.25*(1+1)")
	if err != nil {
		t.Fatal(err)
	}
	kinds := []reassembly.Kind{
		reassembly.Operand, reassembly.Operand, reassembly.Operand,
		reassembly.Operator, reassembly.Operator,
	}
	if len(tokens) != len(kinds) {
		t.Fatalf("expected %d tokens, have %v", len(kinds), tokens)
	}
	for i, k := range kinds {
		if tokens[i].Kind != k {
			t.Errorf("expected token #%d %q to be an %s", i, tokens[i].Lexeme, k)
		}
	}
}

func TestConvertConcurrently(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "postfix")
	defer teardown()
	//
	c := postfix.New("(1.5+2.5)*3-4/2", postfix.SpacedString)
	expect := "1.5 2.5 + 3 * 4 2 / -"
	var wg sync.WaitGroup
	results := make(chan string, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r, err := c.Convert()
			if err != nil {
				results <- err.Error()
				return
			}
			results <- r.Text
		}()
	}
	wg.Wait()
	close(results)
	for text := range results {
		if text != expect {
			t.Errorf("concurrent conversion produced %q, expected %q", text, expect)
		}
	}
}

// --- Helpers ---------------------------------------------------------------

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
