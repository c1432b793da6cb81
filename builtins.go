package kscript

import (
	"fmt"
	"math"
)

// runSqrt implements the `sqrt n` built-in (§6). Its numeric helper is an
// out-of-scope collaborator per §1; only the function's contract
// (one numeric argument, one numeric result) matters here.
func runSqrt(u *Unit, args []Value) (Value, error) {
	if !args[0].isNumber() {
		return Value{}, errWrongParamTypes()
	}
	return Number(math.Sqrt(args[0].Num)), nil
}

// runPrint implements the `print x` built-in (§6): writes x followed by
// a newline to the Unit's output and returns 1. Accepts either value
// kind; numbers print with six fractional digits, strings print
// unquoted (§6 of SPEC_FULL.md, recovered from the original's use of
// std::to_string).
func runPrint(u *Unit, args []Value) (Value, error) {
	fmt.Fprintln(u.Stdout, args[0].String())
	return Number(1), nil
}
