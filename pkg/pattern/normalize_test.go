// normalize_test.go - tests for Fix.
// SPDX-License-Identifier: GPL-3.0-or-later

package pattern

import "testing"

func TestFixIdentities(t *testing.T) {
	// prog <x> <x>: the two Argument("<x>") occurrences must become the
	// same canonical instance so that accumulation mutates both.
	root := &Required{Children: []Node{
		&Argument{Name: "<x>"},
		&Argument{Name: "<x>"},
	}}

	Fix(root)

	req := root
	first := req.Children[0].(*Argument)
	second := req.Children[1].(*Argument)
	if first != second {
		t.Fatalf("expected both <x> occurrences to share one instance")
	}
}

func TestFixListArguments(t *testing.T) {
	t.Run("flags arguments repeated within a branch", func(t *testing.T) {
		root := &Required{Children: []Node{
			&Argument{Name: "<x>"},
			&Argument{Name: "<x>"},
		}}

		Fix(root)

		arg := root.Children[0].(*Argument)
		if _, ok := arg.Value.([]string); !ok {
			t.Errorf("Value = %#v, want an empty []string marking accumulation", arg.Value)
		}
	})

	t.Run("does not flag arguments that appear once per branch", func(t *testing.T) {
		root := &Required{Children: []Node{
			&Either{Children: []Node{
				&Argument{Name: "<x>"},
				&Argument{Name: "<y>"},
			}},
		}}

		Fix(root)

		either := root.Children[0].(*Either)
		for _, child := range either.Children {
			arg := child.(*Argument)
			if arg.Value != nil {
				t.Errorf("%s.Value = %#v, want nil", arg.Name, arg.Value)
			}
		}
	})
}

func TestFixIsIdempotent(t *testing.T) {
	root := &Required{Children: []Node{
		&Argument{Name: "<x>"},
		&Argument{Name: "<x>"},
	}}

	Fix(root)
	firstPass := root.Children[0].(*Argument)

	Fix(root)
	secondPass := root.Children[0].(*Argument)

	if firstPass != secondPass {
		t.Fatalf("second Fix produced a different canonical instance")
	}
	values, ok := secondPass.Value.([]string)
	if !ok || len(values) != 0 {
		t.Errorf("Value after second Fix = %#v, want an empty []string", secondPass.Value)
	}
}

func TestEitherNormalFormInlinesOneOrMoreTwice(t *testing.T) {
	// prog <x>... should detect <x> as accumulating: the either-normal
	// form inlines OneOrMore's child twice specifically to catch this.
	root := &Required{Children: []Node{
		&OneOrMore{Child: &Argument{Name: "<x>"}},
	}}

	Fix(root)

	oneOrMore := root.Children[0].(*OneOrMore)
	arg := oneOrMore.Child.(*Argument)
	if _, ok := arg.Value.([]string); !ok {
		t.Errorf("Value = %#v, want an empty []string", arg.Value)
	}
}
