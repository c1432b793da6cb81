package kscript

// nestEntry is one pending block opener awaiting a matching `end`, kept
// on the block resolver's compile-time-only nest stack (§4.5, §3).
type nestEntry struct {
	name       string
	openerLine int
	owesPop    bool
	isWhile    bool
}

// compileState is the block resolver's working state for one whole-file
// compile pass (or, in interactive mode, a single line where block
// openers are simply rejected). It lives only for the duration of
// compilation; nothing here survives into the running Unit except the
// two maps it populates.
type compileState struct {
	interactive bool
	nest        []nestEntry
	beginToEnd  map[int]int
	endToBegin  map[int]endInfo
}

func newCompileState(interactive bool) *compileState {
	return &compileState{
		interactive: interactive,
		beginToEnd:  map[int]int{},
		endToBegin:  map[int]endInfo{},
	}
}

func (c *compileState) top() (nestEntry, bool) {
	if len(c.nest) == 0 {
		return nestEntry{}, false
	}
	return c.nest[len(c.nest)-1], true
}

func (c *compileState) push(e nestEntry) {
	c.nest = append(c.nest, e)
}

func (c *compileState) pop() nestEntry {
	n := len(c.nest) - 1
	e := c.nest[n]
	c.nest = c.nest[:n]
	return e
}

// finish checks that every opener this pass saw was closed (§4.5: "After
// compiling the whole file, the nest stack must be empty").
func (c *compileState) finish() error {
	if len(c.nest) > 0 {
		top := c.nest[len(c.nest)-1]
		return errOpenerWithoutEnd(top.name).atLine(top.openerLine + 1)
	}
	return nil
}

func requireNotInteractive(c *compileState, name string, line int) {
	if c.interactive {
		panic(errBlockInRepl(name).atLine(line + 1))
	}
}

func compileIf(c *compileState, line int) {
	requireNotInteractive(c, "if", line)
	c.push(nestEntry{name: "if", openerLine: line, owesPop: true})
}

func compileWhile(c *compileState, line int) {
	requireNotInteractive(c, "while", line)
	c.push(nestEntry{name: "while", openerLine: line, owesPop: true, isWhile: true})
}

func compileElseif(c *compileState, line int) {
	requireNotInteractive(c, "elseif", line)
	top, ok := c.top()
	if !ok {
		panic(errMissingIf("elseif").atLine(line + 1))
	}
	if top.name != "if" && top.name != "elseif" {
		panic(errMisplaced("elseif").atLine(line + 1))
	}
	c.beginToEnd[top.openerLine] = line
	c.pop()
	c.push(nestEntry{name: "elseif", openerLine: line, owesPop: true})
}

func compileElse(c *compileState, line int) {
	requireNotInteractive(c, "else", line)
	top, ok := c.top()
	if !ok {
		panic(errMissingIf("else").atLine(line + 1))
	}
	if top.name != "if" && top.name != "elseif" {
		panic(errMisplaced("else").atLine(line + 1))
	}
	c.beginToEnd[top.openerLine] = line
	c.pop()
	c.push(nestEntry{name: "else", openerLine: line, owesPop: false})
}

func compileEndStmt(c *compileState, line int) {
	requireNotInteractive(c, "end", line)
	top, ok := c.top()
	if !ok {
		panic(errEndWithoutOpener().atLine(line + 1))
	}
	c.pop()
	c.beginToEnd[top.openerLine] = line
	c.endToBegin[line] = endInfo{
		openerLine: top.openerLine,
		owesPop:    top.owesPop,
		isWhile:    top.isWhile,
	}
}

// Runtime control flow (§4.6). Every hook here reads/writes u.pc
// directly, relying on u.pc already equalling the line currently being
// evaluated (the outer run loop hasn't advanced it yet).

func runIf(u *Unit, args []Value) (Value, error) {
	cond := args[0].Truthy()
	u.pushIfResult(cond)
	if !cond {
		u.pc = u.beginToEnd[u.pc] - 1
	}
	return Number(0), nil
}

func runWhile(u *Unit, args []Value) (Value, error) {
	return runIf(u, args)
}

func runElseif(u *Unit, args []Value) (Value, error) {
	if u.popIfResult() {
		u.pc = u.beginToEnd[u.pc] - 1
		u.pushIfResult(true)
		return Number(0), nil
	}
	cond := args[0].Truthy()
	u.pushIfResult(cond)
	if !cond {
		u.pc = u.beginToEnd[u.pc] - 1
	}
	return Number(0), nil
}

func runElse(u *Unit, args []Value) (Value, error) {
	if u.popIfResult() {
		u.pc = u.beginToEnd[u.pc] - 1
	}
	return Number(0), nil
}

func runEnd(u *Unit, args []Value) (Value, error) {
	info := u.endToBegin[u.pc]
	if info.owesPop {
		v := u.popIfResult()
		if info.isWhile && v {
			u.pc = info.openerLine - 1
		}
	}
	return Number(0), nil
}
