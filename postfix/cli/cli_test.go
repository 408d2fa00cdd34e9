package cli

import (
	"bytes"
	"errors"
	"runtime"
	"strings"
	"testing"

	"github.com/npillmayer/postfix"
	"github.com/npillmayer/postfix/reassembly"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSessionConvert(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "postfix.cli")
	defer teardown()
	//
	sess := &session{settings: currentSettings()}
	for i, x := range []struct {
		line, output string
	}{
		{line: "(12.5+3)*4", output: "▶ 12.5 3 + 4 *\n"},
		{line: "output tokens", output: "▶ output mode tokens, table false\n"},
		{line: "2+3", output: "▶ [2, 3, +]\n"},
		{line: "output joined", output: "▶ output mode joined, table false\n"},
		{line: "8-3-2", output: "▶ 83-2-\n"},
	} {
		var out, errout bytes.Buffer
		if err := sess.eval(x.line, &out, &errout); err != nil {
			t.Errorf("test %d: unexpected error for %q: %v", i, x.line, err)
			continue
		}
		if out.String() != x.output {
			t.Errorf("test %d: expected output %q, have %q", i, x.output, out.String())
		}
		if errout.Len() != 0 {
			t.Errorf("test %d: unexpected error output %q", i, errout.String())
		}
	}
}

func TestSessionErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "postfix.cli")
	defer teardown()
	//
	sess := &session{settings: currentSettings()}
	var out, errout bytes.Buffer
	err := sess.eval("2+3)", &out, &errout)
	if !errors.Is(err, postfix.ErrUnbalancedParentheses) {
		t.Errorf("expected unbalanced parentheses, have %v", err)
	}
	if out.Len() != 0 || !strings.Contains(errout.String(), "unbalanced parentheses") {
		t.Errorf("expected error message on error output, have %q / %q", out.String(), errout.String())
	}
	errout.Reset()
	err = sess.eval("output fancy", &out, &errout)
	if !errors.Is(err, errUnknownSetting) {
		t.Errorf("expected unknown setting error, have %v", err)
	}
	if sess.settings.mode != postfix.SpacedString {
		t.Errorf("settings must not change on error")
	}
}

func TestSessionTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "postfix.cli")
	defer teardown()
	//
	sess := &session{settings: currentSettings()}
	var out, errout bytes.Buffer
	if err := sess.eval("output table", &out, &errout); err != nil {
		t.Fatal(err)
	}
	out.Reset()
	if err := sess.eval("10*0.5", &out, &errout); err != nil {
		t.Fatal(err)
	}
	tab := out.String()
	t.Logf("\n%s", tab)
	for _, s := range []string{"10", "0.5", "*", "operand", "operator"} {
		if !strings.Contains(tab, s) {
			t.Errorf("expected table to contain %q", s)
		}
	}
}

func TestTokenTableKinds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "postfix.cli")
	defer teardown()
	//
	tokens := []reassembly.Token{
		{Kind: reassembly.Operand, Lexeme: "."},
		{Kind: reassembly.Operand, Lexeme: "5"},
		{Kind: reassembly.Operator, Lexeme: "-"},
	}
	tab := tokensAsTable("x", tokens).Render()
	t.Logf("\n%s", tab)
	if n := strings.Count(tab, "operand"); n != 2 {
		t.Errorf("expected 2 operand rows, have %d", n)
	}
	if n := strings.Count(tab, "operator"); n != 1 {
		t.Errorf("expected 1 operator row, have %d", n)
	}
}

func TestAppPaths(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "postfix.cli")
	defer teardown()
	//
	paths, err := DefaultAppPaths("Postfix")
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	if paths.ConfigDir() == "" || paths.LogDir() == "" {
		t.Errorf("expected config and log directories to be set")
	}
	if runtime.GOOS == "linux" && !strings.HasSuffix(paths.ConfigDir(), "postfix") {
		t.Errorf("expected lower-case config directory on linux, have %q", paths.ConfigDir())
	}
}
