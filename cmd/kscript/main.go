// Command kscript runs the kScript interpreter: with no arguments it
// opens the interactive prompt, with a single file argument it compiles
// and runs that file, and with any other argument count it prints
// usage (§6).
package main

import (
	"fmt"
	"os"

	"github.com/korri123/kScript"
)

func main() {
	switch len(os.Args) {
	case 1:
		kscript.Repl(os.Stdout)
	case 2:
		runFile(os.Args[1])
	default:
		fmt.Fprintln(os.Stderr, "usage: kscript [script]")
	}
}

func runFile(path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}

	u := kscript.NewDefaultUnit()
	if err := u.Compile(string(src)); err != nil {
		reportError("Syntax", err)
		return
	}

	if err := u.Run(); err != nil {
		reportError("Runtime", err)
	}
}

func reportError(stage string, err error) {
	if se, ok := err.(*kscript.ScriptError); ok && se.Line > 0 {
		fmt.Printf("%s error on line %d\n%s\n", stage, se.Line, se.Message)
		return
	}
	fmt.Printf("%s error\n%s\n", stage, err)
}
