// parser.go - recursive-descent parser for usage patterns.
// SPDX-License-Identifier: GPL-3.0-or-later

package usage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bassosimone/docopt/pkg/descriptor"
	"github.com/bassosimone/docopt/pkg/pattern"
	"github.com/bassosimone/docopt/pkg/tokenstream"
)

// LanguageError is the developer-error kind: it signals that the usage
// pattern itself is malformed or contradicts the option descriptions,
// which is a defect in the program's own doc string rather than
// something the end user can be blamed for.
type LanguageError struct {
	err error
}

func (e *LanguageError) Error() string { return e.err.Error() }

// Unwrap exposes the sentinel error (ErrOptionNotDeclared and friends)
// so callers can select a specific failure kind with [errors.Is].
func (e *LanguageError) Unwrap() error { return e.err }

func languageErrorf(format string, args ...any) error {
	return &LanguageError{err: fmt.Errorf(format, args...)}
}

// ErrOptionNotDeclared is wrapped by the [*LanguageError] raised when the
// usage pattern mentions an option absent from the option descriptions.
var ErrOptionNotDeclared = errors.New("option in usage not mentioned in option description")

// ErrAmbiguousOption is wrapped by the [*LanguageError] raised when an
// option mentioned in the usage pattern prefix-matches more than one
// descriptor.
var ErrAmbiguousOption = errors.New("option in usage is not a unique prefix")

// ErrAmbiguousShortOption is wrapped by the [*LanguageError] raised
// when a short option letter in the usage pattern is declared by more
// than one option description.
var ErrAmbiguousShortOption = errors.New("short option in usage is declared by more than one option description")

// ErrOptionRequiresArgument is wrapped by the [*LanguageError] raised
// when a value-taking option at the end of the usage pattern has no
// following token to serve as its placeholder.
var ErrOptionRequiresArgument = errors.New("option in usage requires an argument")

// ErrOptionMustNotHaveArgument is wrapped by the [*LanguageError] raised
// when a boolean option is given an inline value in the usage pattern.
var ErrOptionMustNotHaveArgument = errors.New("option in usage must not have an argument")

// ErrUnmatchedBracket is wrapped by the [*LanguageError] raised when `(`
// or `[` is not closed by its counterpart.
var ErrUnmatchedBracket = errors.New("unmatched bracket")

// ErrTrailingTokens is wrapped by the [*LanguageError] raised when the
// token stream is not fully consumed by the top-level expression.
var ErrTrailingTokens = errors.New("unexpected trailing tokens in usage pattern")

// Parse runs the recursive-descent grammar described in the package doc
// over tokens (already produced by [Lex]) and returns the parsed tree
// wrapped in a [*pattern.Required], resolving options against table.
func Parse(tokens *tokenstream.Stream, table []*descriptor.Descriptor) (*pattern.Required, error) {
	nodes, err := parseExpr(tokens, table)
	if err != nil {
		return nil, err
	}
	if !tokens.Empty() {
		return nil, languageErrorf("%w: %q", ErrTrailingTokens, strings.Join(tokens.Rest(), " "))
	}
	return &pattern.Required{Children: nodes}, nil
}

// parseExpr implements: expr ::= seq ( '|' seq )* ;
func parseExpr(tokens *tokenstream.Stream, table []*descriptor.Descriptor) ([]pattern.Node, error) {
	seq, err := parseSeq(tokens, table)
	if err != nil {
		return nil, err
	}
	if tokens.Peek("") != "|" {
		return seq, nil
	}

	result := wrapIfMultiple(seq)
	for tokens.Peek("") == "|" {
		tokens.Consume("")
		seq, err := parseSeq(tokens, table)
		if err != nil {
			return nil, err
		}
		result = append(result, wrapIfMultiple(seq)...)
	}
	return []pattern.Node{&pattern.Either{Children: result}}, nil
}

func wrapIfMultiple(seq []pattern.Node) []pattern.Node {
	if len(seq) > 1 {
		return []pattern.Node{&pattern.Required{Children: seq}}
	}
	return seq
}

// parseSeq implements: seq ::= ( atom [ '...' ] )* ;
func parseSeq(tokens *tokenstream.Stream, table []*descriptor.Descriptor) ([]pattern.Node, error) {
	var result []pattern.Node
	for !isSeqTerminator(tokens.Peek("")) {
		atoms, err := parseAtom(tokens, table)
		if err != nil {
			return nil, err
		}
		if tokens.Peek("") == "..." {
			tokens.Consume("")
			atoms = []pattern.Node{&pattern.OneOrMore{Child: wrapAtoms(atoms)}}
		}
		result = append(result, atoms...)
	}
	return result, nil
}

func wrapAtoms(atoms []pattern.Node) pattern.Node {
	if len(atoms) == 1 {
		return atoms[0]
	}
	return &pattern.Required{Children: atoms}
}

func isSeqTerminator(tok string) bool {
	return tok == "" || tok == "]" || tok == ")" || tok == "|"
}

// parseAtom implements:
//
//	atom ::= '(' expr ')' | '[' expr ']' | '[' 'options' ']'
//	       | '--' | long-option | short-stack
//	       | '<' ... '>' | ALLCAPS | bare-word ;
func parseAtom(tokens *tokenstream.Stream, table []*descriptor.Descriptor) ([]pattern.Node, error) {
	tok := tokens.Consume("")

	switch {
	case tok == "(":
		children, err := parseExpr(tokens, table)
		if err != nil {
			return nil, err
		}
		if tokens.Consume("") != ")" {
			return nil, languageErrorf("%w: unmatched '('", ErrUnmatchedBracket)
		}
		return []pattern.Node{&pattern.Required{Children: children}}, nil

	case tok == "[":
		if tokens.Peek("") == "options" {
			tokens.Consume("")
			if tokens.Consume("") != "]" {
				return nil, languageErrorf("%w: unmatched '['", ErrUnmatchedBracket)
			}
			return []pattern.Node{&pattern.Optional{Children: []pattern.Node{&pattern.AnyOptions{}}}}, nil
		}
		children, err := parseExpr(tokens, table)
		if err != nil {
			return nil, err
		}
		if tokens.Consume("") != "]" {
			return nil, languageErrorf("%w: unmatched '['", ErrUnmatchedBracket)
		}
		return []pattern.Node{&pattern.Optional{Children: children}}, nil

	case tok == "--":
		// Allows "usage: prog [-o] [--] <arg>": the separator itself
		// carries no grammar meaning of its own.
		return nil, nil

	case strings.HasPrefix(tok, "--"):
		opt, err := parseLongInUsage(tok[2:], table, tokens)
		if err != nil {
			return nil, err
		}
		return []pattern.Node{opt}, nil

	case strings.HasPrefix(tok, "-") && tok != "-":
		opts, err := parseShortsInUsage(tok[1:], table, tokens)
		if err != nil {
			return nil, err
		}
		return opts, nil

	case isArgumentToken(tok):
		return []pattern.Node{&pattern.Argument{Name: tok}}, nil

	default:
		return []pattern.Node{&pattern.Command{Name: tok}}, nil
	}
}

func isArgumentToken(tok string) bool {
	if strings.HasPrefix(tok, "<") && strings.HasSuffix(tok, ">") {
		return true
	}
	return tok == strings.ToUpper(tok) && strings.ToLower(tok) != strings.ToUpper(tok)
}

func parseLongInUsage(raw string, table []*descriptor.Descriptor, tokens *tokenstream.Stream) (*pattern.Option, error) {
	name, inline, hasInline := raw, "", false
	if idx := strings.IndexByte(raw, '='); idx >= 0 {
		name, inline, hasInline = raw[:idx], raw[idx+1:], true
	}

	candidates := descriptor.MatchLongPrefix(name, table)
	switch {
	case len(candidates) == 0:
		return nil, languageErrorf("%w: --%s", ErrOptionNotDeclared, name)
	case len(candidates) > 1:
		return nil, languageErrorf("%w: --%s could be %s", ErrAmbiguousOption, name, descriptor.Names(candidates))
	}
	d := candidates[0]

	opt := &pattern.Option{Short: d.Short, Long: d.Long, ArgCount: d.ArgCount}
	switch {
	case d.ArgCount == 1 && hasInline:
		opt.Value = inline
	case d.ArgCount == 1:
		if tokens.Empty() {
			return nil, languageErrorf("%w: --%s", ErrOptionRequiresArgument, d.Name())
		}
		opt.Value = tokens.Consume("")
	case hasInline:
		return nil, languageErrorf("%w: --%s", ErrOptionMustNotHaveArgument, d.Name())
	default:
		opt.Value = true
	}
	return opt, nil
}

func parseShortsInUsage(raw string, table []*descriptor.Descriptor, tokens *tokenstream.Stream) ([]pattern.Node, error) {
	var out []pattern.Node
	for raw != "" {
		candidates := descriptor.MatchShort(raw[0], table)
		switch {
		case len(candidates) == 0:
			return nil, languageErrorf("%w: -%c", ErrOptionNotDeclared, raw[0])
		case len(candidates) > 1:
			return nil, languageErrorf("%w: -%c is declared by %s", ErrAmbiguousShortOption, raw[0], descriptor.Names(candidates))
		}
		d := candidates[0]
		opt := &pattern.Option{Short: d.Short, Long: d.Long, ArgCount: d.ArgCount}
		raw = raw[1:]

		if d.ArgCount == 0 {
			opt.Value = true
			out = append(out, opt)
			continue
		}

		if raw != "" {
			opt.Value = raw
			raw = ""
		} else {
			if tokens.Empty() {
				return nil, languageErrorf("%w: -%s", ErrOptionRequiresArgument, d.Short)
			}
			opt.Value = tokens.Consume("")
		}
		out = append(out, opt)
	}
	return out, nil
}
