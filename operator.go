package kscript

import "math"

// operation is one typed overload of an Operator: match reports whether
// this overload applies to the given operand Values (in source order),
// eval computes the result. The first operation in an Operator's list
// whose match succeeds is used (§4.2's "multi-typed dispatch").
type operation struct {
	match func(args []Value) bool
	eval  func(args []Value) (Value, error)
}

func numOp(f func(a, b float64) float64) operation {
	return operation{
		match: func(a []Value) bool { return a[0].isNumber() && a[1].isNumber() },
		eval: func(a []Value) (Value, error) {
			return Number(f(a[0].Num, a[1].Num)), nil
		},
	}
}

func numCmp(f func(a, b float64) bool) operation {
	return operation{
		match: func(a []Value) bool { return a[0].isNumber() && a[1].isNumber() },
		eval: func(a []Value) (Value, error) {
			if f(a[0].Num, a[1].Num) {
				return Number(1), nil
			}
			return Number(0), nil
		},
	}
}

func unaryNumOp(f func(a float64) float64) operation {
	return operation{
		match: func(a []Value) bool { return a[0].isNumber() },
		eval: func(a []Value) (Value, error) {
			return Number(f(a[0].Num)), nil
		},
	}
}

func boolOf(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// Operator is an immutable descriptor for one operator symbol. A symbol
// may resolve to two distinct Operator values when it is both unary and
// binary (`-`); the parser disambiguates those by context, never by
// operand kind.
type Operator struct {
	Symbol     string
	Precedence int
	Arity      int
	Unary      bool
	ops        []operation
}

// precedes reports whether a (already on the shunting-yard's working
// stack) should be popped to output before b is pushed: for a binary b,
// equal-or-higher precedence on a pops it (left-associative); for a
// unary b, only strictly higher precedence pops it, so a chain of
// same-precedence unary operators nests right-associatively instead.
func (a *Operator) precedes(b *Operator) bool {
	if b.Unary {
		return a.Precedence > b.Precedence
	}
	return a.Precedence >= b.Precedence
}

// apply runs the operator's dispatch table against args (in source
// order), returning the first matching overload's result.
func (o *Operator) apply(args []Value) (Value, error) {
	for _, op := range o.ops {
		if op.match(args) {
			return op.eval(args)
		}
	}
	return Value{}, errInvalidOperands(o.Symbol)
}

func divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, errDivByZero()
	}
	return a / b, nil
}

func modulo(a, b float64) (float64, error) {
	if b == 0 {
		return 0, errModByZero()
	}
	return math.Mod(a, b), nil
}

func bitwise(f func(a, b int32) int32) func(a, b float64) float64 {
	return func(a, b float64) float64 {
		return float64(f(toInt32(a), toInt32(b)))
	}
}

// operatorTable is the fixed, process-wide table of operator
// descriptors, keyed by symbol (§4.2, precedence table in §6). `=` is listed here for
// precedence/arity purposes only; its actual semantics are special-cased
// by the evaluator (§4.4 "Assignment semantics").
var operatorTable = buildOperatorTable()

func buildOperatorTable() map[string][]*Operator {
	t := map[string][]*Operator{}
	add := func(symbol string, prec, arity int, unary bool, ops ...operation) {
		t[symbol] = append(t[symbol], &Operator{
			Symbol: symbol, Precedence: prec, Arity: arity, Unary: unary, ops: ops,
		})
	}

	add("=", 2, 2, false) // special-cased in the evaluator
	add("||", 5, 2, false, numOp(func(a, b float64) float64 { return boolOf(a != 0 || b != 0) }))
	add("&&", 7, 2, false, numOp(func(a, b float64) float64 { return boolOf(a != 0 && b != 0) }))
	add("==", 13, 2, false, numCmp(numEqual))
	add("!=", 15, 2, false, numCmp(func(a, b float64) bool { return !numEqual(a, b) }))
	add(">", 15, 2, false, numCmp(func(a, b float64) bool { return a > b }))
	add("<", 15, 2, false, numCmp(func(a, b float64) bool { return a < b }))
	add(">=", 15, 2, false, numCmp(func(a, b float64) bool { return a >= b }))
	add("<=", 15, 2, false, numCmp(func(a, b float64) bool { return a <= b }))
	add("|", 16, 2, false, numOp(bitwise(func(a, b int32) int32 { return a | b })))
	add("&", 16, 2, false, numOp(bitwise(func(a, b int32) int32 { return a & b })))
	add("<<", 18, 2, false, numOp(func(a, b float64) float64 {
		return float64(int64(a) << uint32(toInt32(b)))
	}))
	add(">>", 18, 2, false, numOp(func(a, b float64) float64 {
		return float64(toInt32(a) >> uint32(toInt32(b)))
	}))
	add("+", 19, 2, false,
		numOp(func(a, b float64) float64 { return a + b }),
		operation{
			match: func(a []Value) bool { return a[0].isString() && a[1].isString() },
			eval:  func(a []Value) (Value, error) { return String(a[0].Str + a[1].Str), nil },
		},
	)
	add("-", 19, 2, false, numOp(func(a, b float64) float64 { return a - b }))
	add("*", 21, 2, false, numOp(func(a, b float64) float64 { return a * b }))
	add("/", 21, 2, false, operation{
		match: func(a []Value) bool { return a[0].isNumber() && a[1].isNumber() },
		eval: func(a []Value) (Value, error) {
			r, err := divide(a[0].Num, a[1].Num)
			return Number(r), err
		},
	})
	add("%", 21, 2, false, operation{
		match: func(a []Value) bool { return a[0].isNumber() && a[1].isNumber() },
		eval: func(a []Value) (Value, error) {
			r, err := modulo(a[0].Num, a[1].Num)
			return Number(r), err
		},
	})
	add("^", 23, 2, false, numOp(math.Pow))
	add("-", 25, 1, true, unaryNumOp(func(a float64) float64 { return -a }))
	add("!", 27, 1, true, unaryNumOp(func(a float64) float64 { return boolOf(a == 0) }))

	return t
}

// lookupOperators returns the registered descriptors for a symbol (there
// may be two, for a unary/binary pair like `-`), or nil if unregistered.
func lookupOperators(symbol string) []*Operator {
	return operatorTable[symbol]
}

// isGrouping reports whether a lexed operator symbol is one of the
// grouping "operators" `(`/`)`, which the shunting-yard algorithm
// special-cases and never emits to the postfix stream or operator
// registry (§9: classified as a third kind, "grouping", with no
// evaluate).
func isGrouping(symbol string) bool {
	return symbol == "(" || symbol == ")"
}
