/*

Package kscript implements kScript, a tiny interpreted scripting language
with numeric and string values, arithmetic/logical/bitwise operators,
user-callable built-in functions, variable assignment and block-structured
control flow.

Numbers are IEEE-754 doubles, written in source as a bare run of digits
(the lexer's operand rule keeps digits, letters and `_` together but
treats `.` as ordinary punctuation, so a literal decimal point doesn't
parse as part of one number); `print` always renders a number back out
with six fractional digits.

	0
	150
	print 2 / 4     // 0.500000

Strings are double-quoted, with no escape sequences.

	"Hello, world!"

The usual arithmetic, comparison, logical and bitwise operators are
supported; see the operator table in operator.go for precedences. `+`
additionally concatenates two strings.

	1 + 3           // 4
	"foo" + "bar"   // foobar
	5 >= 4          // 1
	5 == 4 + 2      // 0

Names are letters, digits and `_`, and must not parse as a number. Naming
a variable that has never been assigned yields the name itself treated as
a string; assigning to a name stores a value under it for the rest of the
program's run.

	x = 3
	print x + 1     // 4.000000

Block-structured control flow nests `if`/`elseif`/`else`/`while` with a
closing `end`, resolved once at compile time into a pair of jump tables
consulted by the evaluator at run time.

	if x > 2
	print "big"
	else
	print "small"
	end

	i = 0
	while i < 3
	print i
	i = i + 1
	end

A program is either a file, compiled in full before anything runs, or an
interactive prompt, where every line is parsed and evaluated as soon as
it's entered and block-opening statements are rejected for lack of file
context to resolve them against.

*/
package kscript
