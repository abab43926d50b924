// doc.go - package documentation.
// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package usage turns the "Usage:" section of a help text into a
[*pattern.Required] tree, the root of every parsed grammar.

# Extracting the usage body

[Body] isolates the text between a case-insensitive "usage:" header and
the next blank line: the doc string's "usage body".

# Lexing

[Lex] discards the program name (the usage body's first whitespace
token) and replaces any further occurrence of it with "|", so that
multiple invocation lines (one per program name repetition) read as
alternation. Metacharacters `( ) [ ] |` and the literal "..." are then
surrounded with spaces and the result is whitespace-split.

# Parsing

[Parse] is a recursive-descent parser over the lexed tokens, implementing
the grammar:

	expr ::= seq ( '|' seq )*
	seq  ::= ( atom [ '...' ] )*
	atom ::= '(' expr ')' | '[' expr ']' | '[' 'options' ']'
	       | '--' | long-option | short-stack
	       | '<' ... '>' | ALLCAPS | bare-word

Long and short options found here are resolved against the same
descriptor table used for argv (including unambiguous-prefix matching),
but an unresolved match is a developer error, not a user one: the usage
pattern is part of the program's own source, and a reference to an
option absent from the option descriptions is a bug in the program, not
a mistake by whoever ran it.
*/
package usage
