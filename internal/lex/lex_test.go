package lex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func genericStart(s *Source) State {
	switch r := s.Peek(); {
	case r == Eof:
		return nil
	case r == ' ':
		s.Read()
		return nil
	case r == '"':
		s.Read()
		return func(s *Source) State {
			for {
				switch s.Read() {
				case Eof:
					panic("unterminated")
				case '"':
					s.Save(QuotedString)
					return nil
				}
			}
		}
	case r >= '0' && r <= '9' || r >= 'a' && r <= 'z':
		return func(s *Source) State {
			for {
				r := s.Peek()
				if r >= '0' && r <= '9' || r >= 'a' && r <= 'z' {
					s.Read()
					continue
				}
				s.Save(Operand)
				return nil
			}
		}
	default:
		return func(s *Source) State {
			s.Read()
			s.Save(Operator)
			return nil
		}
	}
}

func lexAll(t *testing.T, line string) []Token {
	t.Helper()
	src := NewSource(line)
	var toks []Token
	for {
		tok, ok := src.Next(genericStart)
		if !ok {
			return toks
		}
		toks = append(toks, tok)
	}
}

func TestSourceReadPeek(t *testing.T) {
	s := NewSource("ab")
	assert.Equal(t, 'a', s.Peek())
	assert.Equal(t, 'a', s.Peek(), "Peek must not consume")
	assert.Equal(t, 'a', s.Read())
	assert.Equal(t, 'b', s.Read())
	assert.Equal(t, Eof, s.Read())
	assert.Equal(t, Eof, s.Read(), "Eof is sticky")
}

func TestNextSkipsWhitespace(t *testing.T) {
	toks := lexAll(t, "ab cd")
	require := []Token{{Operand, "ab"}, {Operand, "cd"}}
	assert.Equal(t, require, toks)
}

func TestNextQuotedString(t *testing.T) {
	toks := lexAll(t, `"hi there"`)
	assert.Equal(t, []Token{{QuotedString, `"hi there"`}}, toks)
}

func TestNextUnterminatedStringPanics(t *testing.T) {
	assert.Panics(t, func() { lexAll(t, `"oops`) })
}

func TestNextOperatorRun(t *testing.T) {
	toks := lexAll(t, "ab+-cd")
	assert.Equal(t, []Token{
		{Operand, "ab"}, {Operator, "+"}, {Operator, "-"}, {Operand, "cd"},
	}, toks)
}

func TestNextEmptyLineYieldsNoTokens(t *testing.T) {
	assert.Empty(t, lexAll(t, ""))
}
