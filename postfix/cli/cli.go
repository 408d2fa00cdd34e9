package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/postfix"
	"github.com/npillmayer/postfix/postfix/ui/termui"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "postfix [expression ...]",
	Short: "Convert arithmetic infix expressions to postfix notation",
	Long: `Welcome to Postfix V0.1

Postfix converts arithmetic expressions from infix notation to postfix notation
(Reverse Polish notation). Expressions consist of numbers, the operators
+ - * / and parentheses, without any whitespace, e.g. "(12.5+3)*4".

Postfix converts the expressions given as arguments. If run without arguments
or with flag -i, it will prompt for expressions in a terminal REPL.

`,
	Args: cobra.ArbitraryArgs,
	Run:  runPostfixCmd,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called exactly once by main().
func Execute() {
	if rootCmd.ExecuteContext(SignalContext) != nil {
		Exit(2)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	// persistent flags which will be global for the application
	rootCmd.PersistentFlags().BoolP("interactive", "i", false, "Force run in interactive mode")
	rootCmd.PersistentFlags().String("logfile", "stderr", "URL of log output location")
	rootCmd.PersistentFlags().StringP("mode", "m", "spaced", "Output mode: tokens | joined | spaced")
	rootCmd.PersistentFlags().BoolP("table", "t", false, "Print tokens as a table")
}

func runPostfixCmd(cmd *cobra.Command, args []string) {
	interactive := Configuration != nil && Configuration.Bool("interactive")
	if len(args) == 0 || interactive {
		runPostfixCmdIntpr(cmd, args)
		return
	}
	sess := &session{settings: currentSettings()}
	failed := 0
	for _, expr := range args {
		if err := sess.eval(expr, cmd.OutOrStdout(), cmd.ErrOrStderr()); err != nil {
			failed++
		}
	}
	if failed > 0 {
		tracer().Infof("%d of %d expressions could not be converted", failed, len(args))
		Exit(1)
	}
}

func runPostfixCmdIntpr(cmd *cobra.Command, args []string) {
	tracing.Infof("postfix interpreter called")
	repl, err := termui.NewBaseREPL("postfix", "0.1", outputCompleter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot start REPL: %v\n", err)
		Exit(1)
	}
	intp := &postfixIntpr{
		BaseREPL: repl,
		session:  &session{settings: currentSettings()},
	}
	intp.Interpreter = intp
	intp.Helper = func(w io.Writer) {
		io.WriteString(w, `
postfix will interpret the following statements:

  <expression>                       : convert an infix expression, e.g. (1+2)*3
  output tokens|joined|spaced        : set the output mode
  output table|plain                 : print tokens as a table or not

`)
	}
	stdout, stderr := intp.Outputs()
	for _, expr := range args { // with -i, arguments are converted before prompting
		intp.eval(expr, stdout, stderr)
	}
	intp.Prompt()
	Exit(0)
}

var outputCompleter = readline.PcItem("output",
	readline.PcItem("tokens"),
	readline.PcItem("joined"),
	readline.PcItem("spaced"),
	readline.PcItem("table"),
	readline.PcItem("plain"),
)

type postfixIntpr struct {
	*termui.BaseREPL
	*session
}

func (intp *postfixIntpr) InterpretCommand(command string) {
	command = strings.Trim(command, "\x00")
	stdout, stderr := intp.Outputs()
	intp.eval(command, stdout, stderr)
}

// --- Session ---------------------------------------------------------------

// errUnknownSetting flags an 'output' statement with a wrong argument.
var errUnknownSetting = errors.New("unknown output setting")

// session interprets statements, i.e. output settings or expressions.
type session struct {
	settings settings
}

// eval interprets a single statement and writes the outcome to out or,
// for errors, to errout.
func (sess *session) eval(line string, out, errout io.Writer) error {
	f := Formatter{}
	line = strings.TrimSpace(line)
	if words := strings.Fields(line); len(words) > 0 && words[0] == "output" {
		if err := sess.set(words[1:]); err != nil {
			f.Format(err, errout)
			return err
		}
		f.Format(fmt.Sprintf("output mode %s, table %v", sess.settings.mode, sess.settings.table), out)
		return nil
	}
	tracer().Debugf("converting %q", line)
	if sess.settings.table {
		tokens, err := postfix.ConvertTokens(line)
		if err != nil {
			f.Format(err, errout)
			return err
		}
		_, err = f.Format(tokensAsTable(line, tokens), out)
		return err
	}
	r, err := postfix.New(line, sess.settings.mode).Convert()
	if err != nil {
		f.Format(err, errout)
		return err
	}
	_, err = f.Format(r, out)
	return err
}

func (sess *session) set(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: expected one of tokens, joined, spaced, table, plain", errUnknownSetting)
	}
	switch args[0] {
	case "table":
		sess.settings.table = true
	case "plain":
		sess.settings.table = false
	default:
		m, err := postfix.ParseOutputMode(args[0])
		if err != nil {
			return fmt.Errorf("%w: %s", errUnknownSetting, args[0])
		}
		sess.settings.mode = m
	}
	return nil
}
