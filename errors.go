package kscript

import "fmt"

// Kind classifies a ScriptError, mirroring the error taxonomy of §7:
// lex errors, the two parse-error families, structural (block-resolver)
// errors and the two evaluation-error families.
type Kind string

const (
	KindLex       Kind = "LEX"
	KindOperator  Kind = "PARSE_OPERATOR"
	KindBrackets  Kind = "PARSE_BRACKETS"
	KindStructure Kind = "PARSE_STRUCTURE"
	KindStack     Kind = "EVAL_STACK"
	KindArith     Kind = "EVAL_ARITHMETIC"
)

// ScriptError is the one error type kScript ever raises, whether during
// compilation or execution. Line is 1-based and zero when not yet known
// (e.g. an evaluation error, until Run annotates it, or a lexing error,
// until Compile annotates it; in the REPL neither is annotated).
type ScriptError struct {
	Kind    Kind
	Message string
	Line    int
}

func (e *ScriptError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s (line %d)", e.Message, e.Line)
	}
	return e.Message
}

func newError(k Kind, format string, args ...interface{}) *ScriptError {
	return &ScriptError{Kind: k, Message: fmt.Sprintf(format, args...)}
}

// atLine returns a copy of e with Line set, used when a compile-time error
// bubbles up out of a helper that doesn't track its own position.
func (e *ScriptError) atLine(line int) *ScriptError {
	c := *e
	c.Line = line
	return &c
}

func errMismatchedQuotes() *ScriptError {
	return newError(KindLex, "Mismatched quotation marks")
}

func errUnknownOperator(sym string) *ScriptError {
	return newError(KindOperator, "Unknown operator %q", sym)
}

func errMismatchedBrackets() *ScriptError {
	return newError(KindBrackets, "Mismatched brackets")
}

func errMisplaced(name string) *ScriptError {
	return newError(KindStructure, "Misplaced %q", name)
}

func errMissingIf(name string) *ScriptError {
	return newError(KindStructure, "%q is missing an 'if'", name)
}

func errEndWithoutOpener() *ScriptError {
	return newError(KindStructure, "'end' statement is missing a begin-type statement")
}

func errOpenerWithoutEnd(name string) *ScriptError {
	return newError(KindStructure, "Begin-type block '%s' is missing an 'end'", name)
}

func errBlockInRepl(name string) *ScriptError {
	return newError(KindStructure, "'%s' cannot be called from the interactive interpreter", name)
}

func errUnderflow(symbol string) *ScriptError {
	return newError(KindStack, "Invalid number of operands for operator %s", symbol)
}

func errInvalidOperands(symbol string) *ScriptError {
	return newError(KindStack, "Invalid operands for operator %s", symbol)
}

func errWrongParamTypes() *ScriptError {
	return newError(KindStack, "Wrong parameter types")
}

func errNotAnExpression() *ScriptError {
	return newError(KindStack, "Not a valid expression")
}

func errDivByZero() *ScriptError {
	return newError(KindArith, "Division by zero")
}

func errModByZero() *ScriptError {
	return newError(KindArith, "Modulo by zero")
}
