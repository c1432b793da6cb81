package kscript

// FunctionKind distinguishes plain (value-returning) built-ins from the
// block-structured control-flow statements, which additionally
// participate in the block resolver (§4.5).
type FunctionKind int

const (
	PlainFunction FunctionKind = iota
	BlockOpenFunction
	BlockCloseFunction
)

// functionPrecedence is the fixed precedence (23) every function sits at
// on the shunting-yard's operator stack (§4.3).
const functionPrecedence = 23

// Function is an immutable descriptor for a built-in callable. Arity is
// the number of operands it pops from the value stack; run implements
// its effect, including (for block-opening/closing functions) mutating
// the running Unit's program counter and if-result stack. compile is
// invoked once, at parse time, when the function's FunctionRef is
// produced, and drives the block resolver for block-structured
// functions (§4.5); it is nil for plain functions.
type Function struct {
	Name    string
	Arity   int
	Kind    FunctionKind
	compile func(c *compileState, line int)
	run     func(u *Unit, args []Value) (Value, error)
}

var functionTable = buildFunctionTable()

func buildFunctionTable() map[string]*Function {
	t := map[string]*Function{}
	reg := func(f *Function) { t[f.Name] = f }

	reg(&Function{Name: "sqrt", Arity: 1, Kind: PlainFunction, run: runSqrt})
	reg(&Function{Name: "print", Arity: 1, Kind: PlainFunction, run: runPrint})

	reg(&Function{Name: "if", Arity: 1, Kind: BlockOpenFunction, compile: compileIf, run: runIf})
	reg(&Function{Name: "elseif", Arity: 1, Kind: BlockOpenFunction, compile: compileElseif, run: runElseif})
	reg(&Function{Name: "else", Arity: 0, Kind: BlockOpenFunction, compile: compileElse, run: runElse})
	reg(&Function{Name: "while", Arity: 1, Kind: BlockOpenFunction, compile: compileWhile, run: runWhile})
	reg(&Function{Name: "end", Arity: 0, Kind: BlockCloseFunction, compile: compileEndStmt, run: runEnd})

	return t
}

// lookupFunction returns the registered descriptor for name, or nil.
func lookupFunction(name string) *Function {
	return functionTable[name]
}

// isBlockStructured reports whether a function participates in the
// block resolver, i.e. it is disallowed in interactive mode (§4.5).
func (f *Function) isBlockStructured() bool {
	return f.Kind == BlockOpenFunction || f.Kind == BlockCloseFunction
}
