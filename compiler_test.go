package kscript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileSkipsBlankLines(t *testing.T) {
	u := NewUnit()
	err := u.Compile("x = 1\n\n\nprint x\n")
	require.NoError(t, err)
	assert.Len(t, u.compiled, 2)
}

func TestCompileResolvesIfElseBlock(t *testing.T) {
	u := NewUnit()
	err := u.Compile("x = 3\nif x > 2\nprint 1\nelse\nprint 2\nend\n")
	require.NoError(t, err)
	// lines: 0:x=3 1:if 2:print 3:else 4:print 5:end
	assert.Equal(t, 3, u.beginToEnd[1])
	assert.Equal(t, 5, u.beginToEnd[3])
	assert.Equal(t, 3, u.endToBegin[5].openerLine)
}

func TestCompileOpenerWithoutEndErrors(t *testing.T) {
	u := NewUnit()
	err := u.Compile("if 1\nprint 1\n")
	require.Error(t, err)
	se, ok := err.(*ScriptError)
	require.True(t, ok)
	assert.Equal(t, KindStructure, se.Kind)
}

func TestCompileEndWithoutOpenerErrors(t *testing.T) {
	u := NewUnit()
	err := u.Compile("end\n")
	require.Error(t, err)
}

func TestCompileElseWithoutIfErrors(t *testing.T) {
	u := NewUnit()
	err := u.Compile("else\nend\n")
	require.Error(t, err)
}

func TestCompileElseAfterWhileIsMisplaced(t *testing.T) {
	u := NewUnit()
	err := u.Compile("while 1\nelse\nend\nend\n")
	require.Error(t, err)
	se, ok := err.(*ScriptError)
	require.True(t, ok)
	assert.Equal(t, KindStructure, se.Kind)
}

func TestCompileLineRejectsBlockOpeners(t *testing.T) {
	_, err := CompileLine("if 1")
	require.Error(t, err)
	se, ok := err.(*ScriptError)
	require.True(t, ok)
	assert.Equal(t, KindStructure, se.Kind)
}

func TestCompileLineAcceptsPlainExpression(t *testing.T) {
	toks, err := CompileLine("1 + 2")
	require.NoError(t, err)
	assert.Len(t, toks, 3)
}

func TestCompileMismatchedBracketsReportsLine(t *testing.T) {
	u := NewUnit()
	err := u.Compile("x = 1\n(1 + 2\n")
	require.Error(t, err)
	se, ok := err.(*ScriptError)
	require.True(t, ok)
	assert.Equal(t, 2, se.Line)
}
