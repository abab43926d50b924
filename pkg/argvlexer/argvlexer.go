// argvlexer.go - lexing of the runtime argument vector.
// SPDX-License-Identifier: GPL-3.0-or-later

package argvlexer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bassosimone/docopt/pkg/descriptor"
	"github.com/bassosimone/docopt/pkg/pattern"
	"github.com/bassosimone/docopt/pkg/tokenstream"
)

// ErrUnrecognizedOption is returned when an option token does not match
// any descriptor.
var ErrUnrecognizedOption = errors.New("unrecognized option")

// ErrAmbiguousOption is returned when a long-option prefix matches more
// than one descriptor.
var ErrAmbiguousOption = errors.New("ambiguous option prefix")

// ErrAmbiguousShortOption is returned when a short option letter is
// declared by more than one descriptor. Unlike the other errors in this
// package, this is a defect in the program's own option descriptions
// rather than in what the end user typed, so the top-level Parse
// surfaces it as a developer error.
var ErrAmbiguousShortOption = errors.New("short option declared by more than one option description")

// ErrOptionRequiresArgument is returned when a value-taking option has no
// value available, either inline or as the next token.
var ErrOptionRequiresArgument = errors.New("option requires an argument")

// ErrOptionMustNotHaveArgument is returned when a boolean option is given
// an inline value (e.g. "--verbose=yes").
var ErrOptionMustNotHaveArgument = errors.New("option must not have an argument")

// Lex converts argv into a flat sequence of [pattern.Leaf], resolving
// options against table.
//
//   - A lone "--" ends option parsing; every following token, including
//     further "--", becomes a positional [*pattern.Argument].
//   - A token starting with "--" is parsed as a long option (§ see
//     [parseLong]).
//   - A token starting with "-" other than "-" itself is parsed as one or
//     more stacked short options (§ see [parseShorts]).
//   - Anything else is a positional [*pattern.Argument].
func Lex(argv []string, table []*descriptor.Descriptor) ([]pattern.Leaf, error) {
	var leaves []pattern.Leaf
	stream := tokenstream.New(argv)

	for !stream.Empty() {
		tok := stream.Consume("")

		switch {
		case tok == "--":
			for _, rest := range stream.Rest() {
				leaves = append(leaves, &pattern.Argument{Value: rest})
			}
			return leaves, nil

		case strings.HasPrefix(tok, "--"):
			opt, err := parseLong(tok[2:], table, stream)
			if err != nil {
				return nil, err
			}
			leaves = append(leaves, opt)

		case strings.HasPrefix(tok, "-") && tok != "-":
			opts, err := parseShorts(tok[1:], table, stream)
			if err != nil {
				return nil, err
			}
			leaves = append(leaves, opts...)

		default:
			leaves = append(leaves, &pattern.Argument{Value: tok})
		}
	}

	return leaves, nil
}

// parseLong resolves a single "--name" or "--name=value" token. raw is
// the token with the leading "--" already stripped.
func parseLong(raw string, table []*descriptor.Descriptor, stream *tokenstream.Stream) (*pattern.Option, error) {
	name, inline, hasInline := raw, "", false
	if idx := strings.IndexByte(raw, '='); idx >= 0 {
		name, inline, hasInline = raw[:idx], raw[idx+1:], true
	}

	candidates := descriptor.MatchLongPrefix(name, table)
	switch {
	case len(candidates) == 0:
		return nil, fmt.Errorf("%w: --%s", ErrUnrecognizedOption, name)
	case len(candidates) > 1:
		return nil, fmt.Errorf("%w: --%s could be %s", ErrAmbiguousOption, name, descriptor.Names(candidates))
	}
	d := candidates[0]

	opt := &pattern.Option{Short: d.Short, Long: d.Long, ArgCount: d.ArgCount}
	switch {
	case d.ArgCount == 1 && hasInline:
		opt.Value = inline
	case d.ArgCount == 1:
		if stream.Empty() {
			return nil, fmt.Errorf("%w: --%s", ErrOptionRequiresArgument, d.Name())
		}
		opt.Value = stream.Consume("")
	case hasInline:
		return nil, fmt.Errorf("%w: --%s", ErrOptionMustNotHaveArgument, d.Name())
	default:
		opt.Value = true
	}
	return opt, nil
}

// parseShorts resolves a stack of short options such as "abc" in "-abc".
// raw is the token with the leading "-" already stripped.
func parseShorts(raw string, table []*descriptor.Descriptor, stream *tokenstream.Stream) ([]pattern.Leaf, error) {
	var out []pattern.Leaf
	for raw != "" {
		candidates := descriptor.MatchShort(raw[0], table)
		switch {
		case len(candidates) == 0:
			return nil, fmt.Errorf("%w: -%c", ErrUnrecognizedOption, raw[0])
		case len(candidates) > 1:
			return nil, fmt.Errorf("%w: -%c is declared by %s", ErrAmbiguousShortOption, raw[0], descriptor.Names(candidates))
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
			if stream.Empty() {
				return nil, fmt.Errorf("%w: -%s", ErrOptionRequiresArgument, d.Short)
			}
			opt.Value = stream.Consume("")
		}
		out = append(out, opt)
	}
	return out, nil
}
