package kscript

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bobappleyard/readline"
)

// Prompt is the REPL's input prompt (§6).
const Prompt = ">> "

// Repl runs the interactive prompt (§4.7): each input line is compiled
// and evaluated immediately against one shared Unit so that variable
// bindings persist across lines, the way Interpreter.Repl in the
// teacher drives github.com/bobappleyard/readline. Errors are caught
// per line and printed with the "Syntax error:" prefix (§7); the loop
// only ends on EOF.
func Repl(out io.Writer) {
	u := NewUnit()
	u.Stdout = out
	u.Interactive = true

	readline.Completer = func(query, ctx string) []string {
		var matches []string
		for name := range u.vars {
			if strings.HasPrefix(name, query) {
				matches = append(matches, name)
			}
		}
		return matches
	}

	for {
		line, err := readline.String(Prompt)
		if err == io.EOF {
			return
		}
		if line == "" {
			continue
		}
		readline.AddHistory(line)
		runReplLine(u, line)
	}
}

func runReplLine(u *Unit, line string) {
	tokens, err := CompileLine(line)
	if err != nil {
		fmt.Fprintf(u.Stdout, "Syntax error: %s\n", err)
		return
	}
	v, ok, err := u.evalLine(tokens)
	if err != nil {
		fmt.Fprintf(u.Stdout, "Syntax error: %s\n", err)
		return
	}
	if ok {
		fmt.Fprintf(u.Stdout, "Result >> %s\n", v.String())
	}
}

// NewDefaultUnit creates a Unit wired to os.Stdout, used by the batch
// driver (§4.7).
func NewDefaultUnit() *Unit {
	u := NewUnit()
	u.Stdout = os.Stdout
	return u
}
