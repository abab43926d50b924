// tokenstream_test.go - tests for Stream.
// SPDX-License-Identifier: GPL-3.0-or-later

package tokenstream

import "testing"

func TestStreamFromString(t *testing.T) {
	s := NewFromString("usage: prog [-v] <file>")

	want := []string{"usage:", "prog", "[-v]", "<file>"}
	for _, w := range want {
		if got := s.Peek(""); got != w {
			t.Fatalf("Peek() = %q, want %q", got, w)
		}
		if got := s.Consume(""); got != w {
			t.Fatalf("Consume() = %q, want %q", got, w)
		}
	}
	if !s.Empty() {
		t.Fatalf("expected an exhausted stream")
	}
}

func TestStreamExhaustedReturnsDefault(t *testing.T) {
	s := New(nil)

	if got := s.Peek("<eof>"); got != "<eof>" {
		t.Errorf("Peek() on empty stream = %q, want <eof>", got)
	}
	if got := s.Consume("<eof>"); got != "<eof>" {
		t.Errorf("Consume() on empty stream = %q, want <eof>", got)
	}
	// Consuming past the end must not panic or otherwise change state.
	if got := s.Consume("<eof>"); got != "<eof>" {
		t.Errorf("second Consume() = %q, want <eof>", got)
	}
}

func TestStreamRestDoesNotConsume(t *testing.T) {
	s := New([]string{"a", "b", "c"})
	s.Consume("")

	rest := s.Rest()
	if len(rest) != 2 || rest[0] != "b" || rest[1] != "c" {
		t.Fatalf("Rest() = %v, want [b c]", rest)
	}
	if got := s.Peek(""); got != "b" {
		t.Errorf("Peek() after Rest() = %q, want b (Rest must not consume)", got)
	}
}
