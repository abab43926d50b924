// docopt.go - primary entry point.
// SPDX-License-Identifier: GPL-3.0-or-later

package docopt

import (
	"errors"
	"regexp"
	"strings"

	"github.com/bassosimone/docopt/pkg/argvlexer"
	"github.com/bassosimone/docopt/pkg/descriptor"
	"github.com/bassosimone/docopt/pkg/pattern"
	"github.com/bassosimone/docopt/pkg/result"
	"github.com/bassosimone/docopt/pkg/usage"
)

// HelpRequested is the error [Parse] returns when help is true and argv
// contains a matched `-h` or `--help`. Text is the full doc string with
// its leading and trailing newlines trimmed: the caller should print it
// and exit with status zero.
type HelpRequested struct {
	Text string
}

// Error implements error.
func (e *HelpRequested) Error() string {
	return e.Text
}

// VersionRequested is the error [Parse] returns when version is
// non-empty and argv contains a matched `--version`. Text is the
// version string the caller should print before exiting with status
// zero.
type VersionRequested struct {
	Text string
}

// Error implements error.
func (e *VersionRequested) Error() string {
	return e.Text
}

// Parse derives a grammar from doc's "Usage:" and option-description
// sections, lexes argv against it, and returns the resulting
// name-to-value map.
//
// If help is true and argv contains a matched `-h` or `--help`, Parse
// returns a [*HelpRequested] error carrying doc. If version is
// non-empty and argv contains a matched `--version`, Parse returns a
// [*VersionRequested] error carrying version. Both checks happen after
// argv lexing but before matching, per the help/version side-interface
// contract: a malformed argv is still a [*UserExit], never a help or
// version response.
//
// On any other lexing failure, or when the parsed grammar fails to
// match argv (or matches with leftover residue), Parse returns a
// [*UserExit] carrying the printable usage text.
//
// If doc itself is malformed — no "usage:" section, a usage pattern
// naming an option absent from the option descriptions, unbalanced
// brackets, or a short option letter declared by more than one option
// description — Parse returns a [*LanguageError]: a bug in the caller's
// own doc string, never shown to the end user.
func Parse(doc string, argv []string, help bool, version string) (map[string]any, error) {
	table := descriptor.Parse(doc)

	body, err := usage.Body(doc)
	if err != nil {
		return nil, languageErrorf("%w", err)
	}
	root, err := usage.Parse(usage.Lex(body), table)
	if err != nil {
		return nil, languageErrorf("%w", err)
	}
	pattern.Fix(root)

	leaves, err := argvlexer.Lex(argv, table)
	if err != nil {
		// A short letter declared by two descriptors is a defect in the
		// option descriptions, not in what the end user typed.
		if errors.Is(err, argvlexer.ErrAmbiguousShortOption) {
			return nil, languageErrorf("%w", err)
		}
		return nil, &UserExit{Usage: PrintableUsage(doc)}
	}

	if help && hasMatchedOption(leaves, "-h", "--help") {
		return nil, &HelpRequested{Text: strings.Trim(doc, "\n")}
	}
	if version != "" && hasMatchedOption(leaves, "", "--version") {
		return nil, &VersionRequested{Text: version}
	}

	matched, residue, collected := root.Match(leaves, nil)
	if !matched || len(residue) > 0 {
		return nil, &UserExit{Usage: PrintableUsage(doc)}
	}

	return result.Assemble(table, root, leaves, collected), nil
}

func hasMatchedOption(leaves []pattern.Leaf, short, long string) bool {
	for _, lf := range leaves {
		opt, ok := lf.(*pattern.Option)
		if !ok {
			continue
		}
		if (short != "" && opt.Short == short) || (long != "" && opt.Long == long) {
			return true
		}
	}
	return false
}

var usageSectionPattern = regexp.MustCompile(`(?is)usage:.*?(\r?\n\s*\r?\n|\z)`)

// PrintableUsage extracts the "Usage:" section of doc verbatim,
// including its header, for display to the end user on a [*UserExit].
func PrintableUsage(doc string) string {
	loc := usageSectionPattern.FindString(doc)
	return strings.TrimSpace(loc)
}
