package kscript

// evalLine runs one compiled postfix line against a fresh value stack
// (§4.4). The stack holds Tokens rather than bare Values so that an
// unresolved identifier can be told apart from an already-bound
// variable when `=` is evaluated (§4.4's "Assignment semantics").
//
// Returns the line's single residual value, if it left one, and any
// evaluation error. Block statements such as `end` also leave one value:
// the 0 their run hook returns. Only an empty token list leaves none.
func (u *Unit) evalLine(tokens []Token) (Value, bool, error) {
	var stack []Token

	pop := func() Token {
		n := len(stack) - 1
		t := stack[n]
		stack = stack[:n]
		return t
	}

	for _, tok := range tokens {
		switch tok.Kind {
		case NumericConstant:
			stack = append(stack, tok)

		case StringConstant:
			if v, ok := u.lookupVariable(tok.Str); ok {
				stack = append(stack, Token{Kind: VariableRef, Var: v})
			} else {
				stack = append(stack, tok)
			}

		case OperatorRef:
			result, err := u.evalOperator(tok.Op, &stack, pop)
			if err != nil {
				return Value{}, false, err
			}
			stack = append(stack, result)

		case FunctionRef:
			result, err := u.evalFunction(tok.Fn, &stack, pop)
			if err != nil {
				return Value{}, false, err
			}
			stack = append(stack, result)
		}
	}

	switch len(stack) {
	case 0:
		return Value{}, false, nil
	case 1:
		return stack[0].Value(), true, nil
	default:
		return Value{}, false, errNotAnExpression()
	}
}

func (u *Unit) evalOperator(op *Operator, stack *[]Token, pop func() Token) (Token, error) {
	if op.Symbol == "=" {
		return u.evalAssign(stack, pop)
	}

	if len(*stack) < op.Arity {
		return Token{}, errUnderflow(op.Symbol)
	}

	var args []Value
	if op.Arity == 2 {
		right := pop().Value()
		left := pop().Value()
		args = []Value{left, right}
	} else {
		args = []Value{pop().Value()}
	}

	result, err := op.apply(args)
	if err != nil {
		return Token{}, err
	}
	return valueToken(result), nil
}

// evalAssign implements §4.4's assignment semantics: the left operand
// must be an unresolved identifier or an existing variable reference;
// the right operand is any value. The expression's result is a fresh
// reference to the (now stored) variable.
func (u *Unit) evalAssign(stack *[]Token, pop func() Token) (Token, error) {
	if len(*stack) < 2 {
		return Token{}, errUnderflow("=")
	}
	rhs := pop()
	lhs := pop()

	var target *Value
	switch lhs.Kind {
	case VariableRef:
		*lhs.Var = rhs.Value()
		target = lhs.Var
	case StringConstant:
		target = u.assign(lhs.Str, rhs.Value())
	default:
		return Token{}, errInvalidOperands("=")
	}
	return Token{Kind: VariableRef, Var: target}, nil
}

func (u *Unit) evalFunction(fn *Function, stack *[]Token, pop func() Token) (Token, error) {
	if len(*stack) < fn.Arity {
		return Token{}, errUnderflow(fn.Name)
	}
	// Pop in reverse source order, restoring the original left-to-right
	// argument order (a no-op for arity <= 1, per §4.4).
	raw := make([]Token, fn.Arity)
	for i := fn.Arity - 1; i >= 0; i-- {
		raw[i] = pop()
	}
	args := make([]Value, fn.Arity)
	for i, t := range raw {
		args[i] = t.Value()
	}

	result, err := fn.run(u, args)
	if err != nil {
		return Token{}, err
	}
	return valueToken(result), nil
}

func valueToken(v Value) Token {
	if v.Kind == NumberValue {
		return Token{Kind: NumericConstant, Num: v.Num}
	}
	return Token{Kind: StringConstant, Str: v.Str}
}

// Run executes a compiled Unit from the start (§4.6, §4.7 Batch mode).
// Jump targets set by control-flow run hooks land on u.pc directly; the
// -1 they set (§4.6) is corrected by this loop's unconditional advance.
func (u *Unit) Run() error {
	u.pc = 0
	for u.pc < len(u.compiled) {
		line := u.pc
		_, _, err := u.evalLine(u.compiled[line])
		if err != nil {
			if se, ok := err.(*ScriptError); ok {
				return se.atLine(line + 1)
			}
			return err
		}
		u.pc++
	}
	return nil
}
