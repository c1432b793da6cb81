package kscript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kindsOf(toks []Token) []TokenKind {
	ks := make([]TokenKind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func TestParseLineSimpleArithmeticPrecedence(t *testing.T) {
	cs := newCompileState(true)
	toks := parseLine("1 + 2 * 3", 0, cs)
	require.Len(t, toks, 5)
	assert.Equal(t, []TokenKind{
		NumericConstant, NumericConstant, NumericConstant, OperatorRef, OperatorRef,
	}, kindsOf(toks))
	assert.Equal(t, "*", toks[3].Op.Symbol)
	assert.Equal(t, "+", toks[4].Op.Symbol)
}

func TestParseLineParenthesesOverridePrecedence(t *testing.T) {
	cs := newCompileState(true)
	toks := parseLine("(1 + 2) * 3", 0, cs)
	require.Len(t, toks, 5)
	assert.Equal(t, "+", toks[2].Op.Symbol)
	assert.Equal(t, "*", toks[4].Op.Symbol)
}

func TestParseLineUnaryMinusBindsTighterThanBinary(t *testing.T) {
	cs := newCompileState(true)
	toks := parseLine("-1 + 2", 0, cs)
	require.Len(t, toks, 4)
	assert.Equal(t, NumericConstant, toks[0].Kind)
	assert.Equal(t, 1.0, toks[0].Num) // literal stays positive, unary applies at eval
	assert.True(t, toks[1].Op.Unary)
	assert.Equal(t, "-", toks[1].Op.Symbol)
	assert.Equal(t, "+", toks[3].Op.Symbol)
}

func TestParseLineFunctionCallPopsOnLowerPrecedence(t *testing.T) {
	cs := newCompileState(true)
	toks := parseLine("sqrt 9 + 1", 0, cs)
	require.Len(t, toks, 4)
	assert.Equal(t, NumericConstant, toks[0].Kind)
	assert.Equal(t, FunctionRef, toks[1].Kind)
	assert.Equal(t, "sqrt", toks[1].Fn.Name)
	assert.Equal(t, NumericConstant, toks[2].Kind)
	assert.Equal(t, OperatorRef, toks[3].Kind)
}

func TestParseLineMismatchedBracketsPanics(t *testing.T) {
	cs := newCompileState(true)
	assert.Panics(t, func() { parseLine("(1 + 2", 0, cs) })
	assert.Panics(t, func() { parseLine("1 + 2)", 0, cs) })
}

func TestParseLineUnknownOperatorPanics(t *testing.T) {
	cs := newCompileState(true)
	assert.Panics(t, func() { parseLine("1 @ 2", 0, cs) })
}

func TestParseLineBareIdentifierBecomesStringConstant(t *testing.T) {
	cs := newCompileState(true)
	toks := parseLine("x", 0, cs)
	require.Len(t, toks, 1)
	assert.Equal(t, StringConstant, toks[0].Kind)
	assert.Equal(t, "x", toks[0].Str)
}

func TestParseLineBlockOpenerRejectedInteractively(t *testing.T) {
	cs := newCompileState(true)
	assert.Panics(t, func() { parseLine("if 1", 0, cs) })
}
