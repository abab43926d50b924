// lexer.go - extraction and tokenization of the usage body.
// SPDX-License-Identifier: GPL-3.0-or-later

package usage

import (
	"errors"
	"regexp"
	"strings"

	"github.com/bassosimone/docopt/pkg/tokenstream"
)

// ErrNoUsageSection is returned by [Body] when doc contains no
// case-insensitive "usage:" header.
var ErrNoUsageSection = errors.New("\"usage:\" (case-insensitive) section not found")

var usageHeaderPattern = regexp.MustCompile(`(?i)usage:`)

// Body extracts the usage body: the text between a case-insensitive
// "usage:" header and the next blank line.
func Body(doc string) (string, error) {
	loc := usageHeaderPattern.FindStringIndex(doc)
	if loc == nil {
		return "", ErrNoUsageSection
	}
	rest := doc[loc[1]:]
	if idx := regexp.MustCompile(`\r?\n\s*\r?\n`).FindStringIndex(rest); idx != nil {
		rest = rest[:idx[0]]
	}
	return strings.TrimSpace(rest), nil
}

var metaCharPattern = regexp.MustCompile(`(\[|\]|\(|\)|\||\.\.\.)`)

// Lex discards the program name (the usage body's first token) and
// returns a [*tokenstream.Stream] over the remaining tokens, with any
// further occurrence of the program name replaced by "|" and every
// metacharacter surrounded by spaces so it becomes its own token.
func Lex(body string) *tokenstream.Stream {
	fields := strings.Fields(body)
	if len(fields) == 0 {
		return tokenstream.New(nil)
	}
	progName := fields[0]
	rest := strings.Join(fields[1:], " ")

	var withBar strings.Builder
	for i, tok := range strings.Fields(rest) {
		if i > 0 {
			withBar.WriteByte(' ')
		}
		if tok == progName {
			withBar.WriteString("|")
		} else {
			withBar.WriteString(tok)
		}
	}

	spaced := metaCharPattern.ReplaceAllString(withBar.String(), " $1 ")
	return tokenstream.New(strings.Fields(spaced))
}
