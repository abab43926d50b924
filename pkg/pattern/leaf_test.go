// leaf_test.go - tests for leaf matching.
// SPDX-License-Identifier: GPL-3.0-or-later

package pattern

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestArgumentMatch(t *testing.T) {
	t.Run("matches the first argument leaf", func(t *testing.T) {
		pat := &Argument{Name: "<file>"}
		left := []Leaf{&Argument{Value: "a.txt"}}

		matched, rest, collected := pat.Match(left, nil)
		if !matched {
			t.Fatalf("expected a match")
		}
		if len(rest) != 0 {
			t.Errorf("left = %v, want empty", rest)
		}
		want := []Leaf{&Argument{Name: "<file>", Value: "a.txt"}}
		if diff := cmp.Diff(want, collected); diff != "" {
			t.Errorf("collected mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("fails with no argument leaves left", func(t *testing.T) {
		pat := &Argument{Name: "<file>"}
		left := []Leaf{&Option{Short: "-v"}}

		matched, rest, collected := pat.Match(left, nil)
		if matched {
			t.Fatalf("expected no match")
		}
		if diff := cmp.Diff(left, rest); diff != "" {
			t.Errorf("left mismatch on failure (-want +got):\n%s", diff)
		}
		if collected != nil {
			t.Errorf("collected = %v, want nil", collected)
		}
	})

	t.Run("accumulates repeated matches into a list", func(t *testing.T) {
		pat := &Argument{Name: "<x>", Value: []string{}}
		left := []Leaf{&Argument{Value: "a"}, &Argument{Value: "b"}}

		matched, left, collected := pat.Match(left, nil)
		if !matched {
			t.Fatalf("expected first match to succeed")
		}
		matched, left, collected = pat.Match(left, collected)
		if !matched {
			t.Fatalf("expected second match to succeed")
		}
		if len(left) != 0 {
			t.Errorf("left = %v, want empty", left)
		}
		want := []Leaf{&Argument{Name: "<x>", Value: []string{"a", "b"}}}
		if diff := cmp.Diff(want, collected); diff != "" {
			t.Errorf("collected mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestCommandMatch(t *testing.T) {
	t.Run("matches an argument leaf with equal value", func(t *testing.T) {
		pat := &Command{Name: "ship"}
		left := []Leaf{&Argument{Value: "ship"}}

		matched, rest, collected := pat.Match(left, nil)
		if !matched {
			t.Fatalf("expected a match")
		}
		if len(rest) != 0 {
			t.Errorf("left = %v, want empty", rest)
		}
		want := []Leaf{&Command{Name: "ship", Value: true}}
		if diff := cmp.Diff(want, collected); diff != "" {
			t.Errorf("collected mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("fails when the value does not match", func(t *testing.T) {
		pat := &Command{Name: "ship"}
		left := []Leaf{&Argument{Value: "sail"}}

		matched, _, _ := pat.Match(left, nil)
		if matched {
			t.Fatalf("expected no match")
		}
	})
}

func TestOptionMatch(t *testing.T) {
	t.Run("removes the first matching option", func(t *testing.T) {
		pat := &Option{Long: "--verbose"}
		left := []Leaf{&Option{Long: "--verbose", Value: true}, &Argument{Value: "a"}}

		matched, rest, collected := pat.Match(left, nil)
		if !matched {
			t.Fatalf("expected a match")
		}
		want := []Leaf{&Argument{Value: "a"}}
		if diff := cmp.Diff(want, rest); diff != "" {
			t.Errorf("left mismatch (-want +got):\n%s", diff)
		}
		if collected != nil {
			t.Errorf("collected = %v, want nil: option matches never append", collected)
		}
	})

	t.Run("fails when no option has the same short/long pair", func(t *testing.T) {
		pat := &Option{Short: "-v"}
		left := []Leaf{&Option{Short: "-q", Value: true}}

		matched, _, _ := pat.Match(left, nil)
		if matched {
			t.Fatalf("expected no match")
		}
	})
}

func TestOptionName(t *testing.T) {
	if got := (&Option{Short: "-v", Long: "--verbose"}).Name(); got != "--verbose" {
		t.Errorf("Name() = %q, want --verbose", got)
	}
	if got := (&Option{Short: "-v"}).Name(); got != "-v" {
		t.Errorf("Name() = %q, want -v", got)
	}
}
