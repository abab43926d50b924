// tokenstream.go - cursor over a sequence of string tokens.
// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package tokenstream provides a minimal cursor over a finite sequence of
string tokens, as used by both the usage lexer and the argv lexer.

There is no suspension: [*Stream.Peek] and [*Stream.Consume] are plain
synchronous calls, and once the underlying sequence is exhausted they
keep returning the caller-supplied default indefinitely.
*/
package tokenstream

import "strings"

// Stream is a cursor over a finite sequence of string tokens.
//
// The zero value is not usable; construct with [New] or [NewFromString].
type Stream struct {
	tokens []string
}

// New creates a [*Stream] over a pre-tokenized sequence.
func New(tokens []string) *Stream {
	return &Stream{tokens: tokens}
}

// NewFromString creates a [*Stream] by splitting source on whitespace.
func NewFromString(source string) *Stream {
	return New(strings.Fields(source))
}

// Peek returns the current token without consuming it, or deflt if the
// stream is exhausted.
func (s *Stream) Peek(deflt string) string {
	if len(s.tokens) <= 0 {
		return deflt
	}
	return s.tokens[0]
}

// Consume returns the current token and advances past it, or returns
// deflt without advancing if the stream is exhausted.
func (s *Stream) Consume(deflt string) string {
	if len(s.tokens) <= 0 {
		return deflt
	}
	tok := s.tokens[0]
	s.tokens = s.tokens[1:]
	return tok
}

// Rest returns every remaining token, without consuming them.
func (s *Stream) Rest() []string {
	out := make([]string, len(s.tokens))
	copy(out, s.tokens)
	return out
}

// Empty returns true once the stream has been fully consumed.
func (s *Stream) Empty() bool {
	return len(s.tokens) <= 0
}
