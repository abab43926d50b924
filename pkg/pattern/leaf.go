// leaf.go - atomic matchables.
// SPDX-License-Identifier: GPL-3.0-or-later

package pattern

import "fmt"

// Node is implemented by every grammar construct: the three [Leaf] types
// plus the composite nodes [*Required], [*Optional], [*OneOrMore],
// [*Either], and [*AnyOptions].
type Node interface {
	// Match attempts to match the receiver against left, the remaining
	// leaves still to be consumed. On success it returns true along with
	// the residual leaves and the updated collected accumulator. On
	// failure it returns false and left/collected unchanged.
	Match(left []Leaf, collected []Leaf) (bool, []Leaf, []Leaf)
}

// Leaf is implemented by [*Argument], [*Command], and [*Option]: the
// atomic matchables that a lexed command line is made of.
type Leaf interface {
	Node

	// Key identifies the leaf for structural-equality purposes. Two
	// leaves with the same Key are considered the same grammar position
	// and are unified onto a single canonical instance by [Fix].
	Key() string
}

// Argument is a positional `<arg>` or ALLCAPS placeholder from a usage
// pattern, or a raw positional token lexed from argv when Name is empty.
//
// Value holds a string once matched, a []string when the argument
// accumulates repeated matches (see [Fix]), or nil before any match.
type Argument struct {
	Name  string
	Value any
}

var _ Leaf = &Argument{}

// Key implements [Leaf].
func (a *Argument) Key() string {
	return "Argument:" + a.Name
}

// Match implements [Node].
//
// It consumes the first [*Argument] leaf in left. When the receiver was
// flagged as accumulating (Value is a []string), the matched value is
// appended to the [*Argument] entry of the same name already present in
// collected, creating one if none exists yet. Otherwise a fresh
// [*Argument] carrying the matched value is appended to collected.
func (a *Argument) Match(left []Leaf, collected []Leaf) (bool, []Leaf, []Leaf) {
	idx := indexOfArgument(left)
	if idx < 0 {
		return false, left, collected
	}
	matched := left[idx].(*Argument)
	rest := removeAt(left, idx)

	if _, accumulates := a.Value.([]string); accumulates {
		for i, c := range collected {
			if existing, ok := c.(*Argument); ok && existing.Name == a.Name {
				if values, ok := existing.Value.([]string); ok {
					// Replace, never mutate: the same *Argument may be
					// shared with a sibling Either branch's copy of
					// collected, and an in-place append would survive
					// that branch being discarded.
					appended := make([]string, 0, len(values)+1)
					appended = append(appended, values...)
					appended = append(appended, fmt.Sprint(matched.Value))
					out := cloneLeaves(collected)
					out[i] = &Argument{Name: a.Name, Value: appended}
					return true, rest, out
				}
			}
		}
		fresh := &Argument{Name: a.Name, Value: []string{fmt.Sprint(matched.Value)}}
		return true, rest, append(cloneLeaves(collected), fresh)
	}

	fresh := &Argument{Name: a.Name, Value: matched.Value}
	return true, rest, append(cloneLeaves(collected), fresh)
}

func indexOfArgument(left []Leaf) int {
	for i, l := range left {
		if _, ok := l.(*Argument); ok {
			return i
		}
	}
	return -1
}

// Command is a literal word appearing in the usage pattern (e.g. `ship`
// in `usage: prog ship new <name>`). Value is always boolean.
type Command struct {
	Name  string
	Value bool
}

var _ Leaf = &Command{}

// Key implements [Leaf].
func (c *Command) Key() string {
	return "Command:" + c.Name
}

// Match implements [Node].
//
// It consumes the first [*Argument] leaf in left whose Value equals the
// command name, and appends a matched [*Command] to collected.
func (c *Command) Match(left []Leaf, collected []Leaf) (bool, []Leaf, []Leaf) {
	for i, l := range left {
		arg, ok := l.(*Argument)
		if !ok {
			continue
		}
		if s, ok := arg.Value.(string); ok && s == c.Name {
			rest := removeAt(left, i)
			return true, rest, append(cloneLeaves(collected), &Command{Name: c.Name, Value: true})
		}
	}
	return false, left, collected
}

// Option is a switch, either a flag (ArgCount == 0) or a value-taking
// option (ArgCount == 1). Short and Long hold the dash-prefixed spelling
// (e.g. "-v", "--verbose"); either may be empty but not both.
type Option struct {
	Short    string
	Long     string
	ArgCount int
	Value    any
}

var _ Leaf = &Option{}

// Name returns Long if present, else Short.
func (o *Option) Name() string {
	if o.Long != "" {
		return o.Long
	}
	return o.Short
}

// Key implements [Leaf].
//
// Two Options are the same grammar position when their (Short, Long)
// pair matches, regardless of ArgCount or Value.
func (o *Option) Key() string {
	return "Option:" + o.Short + "\x00" + o.Long
}

// Match implements [Node].
//
// It removes the first leaf in left whose (Short, Long) pair matches the
// receiver's. It never adds anything to collected: the final result is
// assembled directly from the options lexed out of argv, see
// [pkg/result].
func (o *Option) Match(left []Leaf, collected []Leaf) (bool, []Leaf, []Leaf) {
	for i, l := range left {
		opt, ok := l.(*Option)
		if !ok {
			continue
		}
		if opt.Short == o.Short && opt.Long == o.Long {
			return true, removeAt(left, i), collected
		}
	}
	return false, left, collected
}

func removeAt(left []Leaf, idx int) []Leaf {
	out := make([]Leaf, 0, len(left)-1)
	out = append(out, left[:idx]...)
	out = append(out, left[idx+1:]...)
	return out
}

// Leaves returns every [Leaf] reachable from root, in depth-first order,
// including duplicate occurrences of the same grammar position.
func Leaves(root Node) []Leaf {
	return flat(root)
}

func cloneLeaves(s []Leaf) []Leaf {
	out := make([]Leaf, len(s))
	copy(out, s)
	return out
}
