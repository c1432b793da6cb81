package kscript

import (
	"strconv"

	"github.com/korri123/kScript/internal/lex"
)

// stackEntry is one working-stack slot of the shunting-yard parser: a
// grouping paren, an operator, or a function call.
type stackEntry struct {
	isGroupOpen bool
	op          *Operator
	fn          *Function
}

func (e stackEntry) precedence() int {
	if e.fn != nil {
		return functionPrecedence
	}
	return e.op.Precedence
}

func (e stackEntry) unary() bool {
	if e.fn != nil {
		return false
	}
	return e.op.Unary
}

// precedes decides whether e, already on the working stack, pops to
// output before incoming is pushed (§4.3). Functions have no Operator
// of their own, so this mirrors Operator.precedes directly rather than
// building a throwaway descriptor.
func (e stackEntry) precedes(incoming *Operator) bool {
	if incoming.Unary {
		return e.precedence() > incoming.Precedence
	}
	return e.precedence() >= incoming.Precedence
}

func (e stackEntry) toToken() Token {
	if e.fn != nil {
		return Token{Kind: FunctionRef, Fn: e.fn}
	}
	return Token{Kind: OperatorRef, Op: e.op}
}

// parseLine runs the shunting-yard algorithm (§4.3) over one source
// line, producing its postfix token list. line is the 0-based index of
// this line, passed through to any block-opening function's compile
// hook (§4.5). Panics with a *ScriptError on any parse failure.
func parseLine(text string, line int, cs *compileState) []Token {
	lx := newLineLexer(text)
	var out []Token
	var stack []stackEntry
	expectOperand := true // true when the next lexeme may start an operand

	pop := func() stackEntry {
		n := len(stack) - 1
		e := stack[n]
		stack = stack[:n]
		return e
	}

	for {
		lt, ok := lx.next()
		if !ok {
			break
		}
		switch lt.Kind {
		case lex.QuotedString:
			out = append(out, Token{Kind: StringConstant, Str: lt.Text[1 : len(lt.Text)-1]})
			expectOperand = false

		case lex.Operand:
			if n, err := strconv.ParseFloat(lt.Text, 64); err == nil {
				out = append(out, Token{Kind: NumericConstant, Num: n})
				expectOperand = false
				continue
			}
			if fn := lookupFunction(lt.Text); fn != nil {
				if fn.isBlockStructured() {
					fn.compile(cs, line)
				}
				stack = append(stack, stackEntry{fn: fn})
				expectOperand = true
				continue
			}
			out = append(out, Token{Kind: StringConstant, Str: lt.Text})
			expectOperand = false

		case lex.Operator:
			switch lt.Text {
			case "(":
				stack = append(stack, stackEntry{isGroupOpen: true})
				expectOperand = true
			case ")":
				for {
					if len(stack) == 0 {
						panic(errMismatchedBrackets().atLine(line + 1))
					}
					top := pop()
					if top.isGroupOpen {
						break
					}
					out = append(out, top.toToken())
				}
				expectOperand = false
			default:
				op := resolveOperator(lt.Text, expectOperand, line)
				for len(stack) > 0 {
					top := stack[len(stack)-1]
					if top.isGroupOpen || !top.precedes(op) {
						break
					}
					out = append(out, pop().toToken())
				}
				stack = append(stack, stackEntry{op: op})
				expectOperand = true
			}
		}
	}

	for len(stack) > 0 {
		top := pop()
		if top.isGroupOpen {
			panic(errMismatchedBrackets().atLine(line + 1))
		}
		out = append(out, top.toToken())
	}

	return out
}

// resolveOperator picks which registered Operator a symbol refers to
// when more than one arity/fixity is registered for it (only `-` is:
// unary and binary). expectOperand is true when the parser has not yet
// seen an operand to the left, the context that selects the unary form.
func resolveOperator(symbol string, expectOperand bool, line int) *Operator {
	ops := lookupOperators(symbol)
	if len(ops) == 0 {
		panic(errUnknownOperator(symbol).atLine(line + 1))
	}
	if len(ops) == 1 {
		return ops[0]
	}
	for _, op := range ops {
		if op.Unary == expectOperand {
			return op
		}
	}
	return ops[0]
}
