// descriptor.go - option descriptor table.
// SPDX-License-Identifier: GPL-3.0-or-later

package descriptor

import (
	"regexp"
	"strings"
)

// Descriptor is one parsed option-description line.
type Descriptor struct {
	// Short is the short spelling (e.g. "-v"), or empty if none.
	Short string

	// Long is the long spelling (e.g. "--verbose"), or empty if none.
	Long string

	// ArgCount is 0 for a flag, 1 for a value-taking option.
	ArgCount int

	// Default is the option's default value: the boolean false for
	// flags and for valued options lacking a `[default: ...]` tag, or
	// the captured default text otherwise.
	Default any
}

// Name returns Long if present, else Short.
func (d *Descriptor) Name() string {
	if d.Long != "" {
		return d.Long
	}
	return d.Short
}

// defaultTagPattern matches a `[default: ...]` tag in an option
// description, case-insensitively.
var defaultTagPattern = regexp.MustCompile(`(?i)\[default: (.*?)\]`)

// optionLinePattern finds the start of each option-description line: an
// indent followed by a run of one or more "-" tokens.
var optionLinePattern = regexp.MustCompile(`(?m)^[ \t]*(-\S.*)$`)

// Parse scans the full help text for lines that begin (after indentation)
// with "-", and builds one [Descriptor] per such line.
//
// For each matching line, the options segment and the description
// segment are split on the first run of two or more consecutive spaces.
// Within the options segment, "," and "=" are normalized to whitespace
// before splitting on whitespace: tokens starting with "--" set Long,
// tokens starting with "-" set Short, and any other (bare) token implies
// ArgCount = 1 (this is how docopt spells a placeholder such as
// `--speed=<kn>` or `--speed KN` without a dedicated grammar for it).
func Parse(doc string) []*Descriptor {
	var table []*Descriptor
	for _, line := range optionLinePattern.FindAllString(doc, -1) {
		table = append(table, parseLine(strings.TrimSpace(line)))
	}
	return table
}

var twoOrMoreSpaces = regexp.MustCompile(`[ \t]{2,}`)

func parseLine(line string) *Descriptor {
	loc := twoOrMoreSpaces.FindStringIndex(line)
	options, description := line, ""
	if loc != nil {
		options, description = line[:loc[0]], line[loc[1]:]
	}

	options = strings.NewReplacer(",", " ", "=", " ").Replace(options)

	d := &Descriptor{Default: false}
	for _, tok := range strings.Fields(options) {
		switch {
		case strings.HasPrefix(tok, "--"):
			d.Long = tok
		case strings.HasPrefix(tok, "-"):
			d.Short = tok
		default:
			d.ArgCount = 1
		}
	}

	if d.ArgCount == 1 {
		if m := defaultTagPattern.FindStringSubmatch(description); m != nil {
			d.Default = m[1]
		}
	}

	return d
}
