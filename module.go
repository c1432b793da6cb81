package kscript

import (
	"io"
	"os"
)

// Unit is a kScript ScriptModule (§3): the compiled form of a program
// together with its runtime state. The same Unit instance compiles a
// whole file up front (batch mode) or evaluates lines one at a time
// (REPL mode), and is also the value-store owner threaded through every
// evaluation call — §9 asks for the process-wide singleton the original leans on
// to be replaced by an explicit context value, which Unit is.
type Unit struct {
	// Stdout is where `print` writes; defaults to os.Stdout but is
	// swappable so tests can capture output.
	Stdout io.Writer

	// Interactive marks a Unit driven by the REPL. Compile and Run do
	// not read it; block-opening statements are rejected in the REPL by
	// CompileLine, which always compiles in interactive mode (§4.5).
	Interactive bool

	lines    []string
	compiled [][]Token

	beginToEnd map[int]int
	endToBegin map[int]endInfo

	vars map[string]*Value

	ifResults []bool
	pc        int
}

// endInfo is what the block resolver records for a closer line: which
// opener it matches, and the action `end` should take (§4.6, §9's
// EndAction sum type — here represented as two plain fields rather than
// a tagged enum since there are only ever these two dimensions).
type endInfo struct {
	openerLine int
	owesPop    bool
	isWhile    bool
}

// NewUnit creates an empty Unit ready to compile and run kScript source.
func NewUnit() *Unit {
	return &Unit{
		Stdout:     os.Stdout,
		vars:       map[string]*Value{},
		beginToEnd: map[int]int{},
		endToBegin: map[int]endInfo{},
	}
}

func (u *Unit) pushIfResult(b bool) {
	u.ifResults = append(u.ifResults, b)
}

// popIfResult pops the top of the if-result stack. Callers only invoke
// this from run hooks reached via a successfully compiled program, where
// the block resolver guarantees a push precedes every pop (§3's
// invariants), so an empty stack here indicates an internal bug rather
// than a user-facing error.
func (u *Unit) popIfResult() bool {
	n := len(u.ifResults)
	v := u.ifResults[n-1]
	u.ifResults = u.ifResults[:n-1]
	return v
}

// lookupVariable returns the live variable named n, if any.
func (u *Unit) lookupVariable(n string) (*Value, bool) {
	v, ok := u.vars[n]
	return v, ok
}

// assign stores v under name, overwriting any prior binding (and its
// kind), and returns the (now stored) variable's address.
func (u *Unit) assign(name string, v Value) *Value {
	p, ok := u.vars[name]
	if !ok {
		p = new(Value)
		u.vars[name] = p
	}
	*p = v
	return p
}
