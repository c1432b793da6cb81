package kscript

import "strings"

// splitLines splits source text on newlines. Blank lines (after a
// trailing "\n", or anywhere in the file) are discarded by the caller —
// §6 notes the original reader quirk that emplaces-then-getlines,
// consuming a final blank line before the EOF check; implementers are
// told to simply discard empty lines, which is what Compile does below.
func splitLines(src string) []string {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	return strings.Split(src, "\n")
}

// Compile performs the whole-file compile pass (§2 step 4, §4.5): lex
// and parse every non-blank line into its postfix token list, resolving
// every block opener against its closing `end` via the block resolver's
// nest stack. On success the Unit is ready to Run; on failure nothing
// is mutated and the returned error carries the offending line.
func (u *Unit) Compile(src string) (err error) {
	var nonBlank []string
	for _, l := range splitLines(src) {
		if strings.TrimSpace(l) == "" {
			continue
		}
		nonBlank = append(nonBlank, l)
	}

	cs := newCompileState(false)
	compiled := make([][]Token, len(nonBlank))
	cur := 0

	defer func() {
		if e := recover(); e != nil {
			se, ok := e.(*ScriptError)
			if !ok {
				panic(e)
			}
			if se.Line == 0 {
				se = se.atLine(cur + 1)
			}
			err = se
		}
	}()

	for i, l := range nonBlank {
		cur = i
		compiled[i] = parseLine(l, i, cs)
	}
	if ferr := cs.finish(); ferr != nil {
		return ferr
	}

	u.lines = nonBlank
	u.compiled = compiled
	u.beginToEnd = cs.beginToEnd
	u.endToBegin = cs.endToBegin
	u.pc = 0
	return nil
}

// CompileLine parses a single interactive-mode line (§4.7): block
// openers are rejected outright since there is no whole-file context to
// resolve their jump targets against (§4.5).
func CompileLine(text string) (tokens []Token, err error) {
	defer func() {
		if e := recover(); e != nil {
			se, ok := e.(*ScriptError)
			if !ok {
				panic(e)
			}
			err = se
		}
	}()
	cs := newCompileState(true)
	tokens = parseLine(text, 0, cs)
	return tokens, nil
}
