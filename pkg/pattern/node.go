// node.go - composite pattern nodes.
// SPDX-License-Identifier: GPL-3.0-or-later

package pattern

// composite is implemented by every [Node] that has children, which is
// every node except the three [Leaf] types. It backs [flat] and [Fix].
type composite interface {
	Node
	childNodes() []Node
}

// Required matches its children in order; any child failure rolls the
// whole node back to its original left/collected.
type Required struct {
	Children []Node
}

var _ composite = &Required{}

func (r *Required) childNodes() []Node { return r.Children }

// Match implements [Node].
func (r *Required) Match(left []Leaf, collected []Leaf) (bool, []Leaf, []Leaf) {
	l, c := cloneLeaves(left), cloneLeaves(collected)
	for _, child := range r.Children {
		matched, nl, nc := child.Match(l, c)
		if !matched {
			return false, left, collected
		}
		l, c = nl, nc
	}
	return true, l, c
}

// Optional attempts its children in order; a child that fails to match
// leaves state unchanged and the node proceeds to the next child. The
// node itself never fails.
type Optional struct {
	Children []Node
}

var _ composite = &Optional{}

func (o *Optional) childNodes() []Node { return o.Children }

// Match implements [Node].
func (o *Optional) Match(left []Leaf, collected []Leaf) (bool, []Leaf, []Leaf) {
	l, c := cloneLeaves(left), cloneLeaves(collected)
	for _, child := range o.Children {
		if matched, nl, nc := child.Match(l, c); matched {
			l, c = nl, nc
		}
	}
	return true, l, c
}

// OneOrMore matches its single child at least once, then keeps reapplying
// it until the set of remaining leaves stops shrinking.
type OneOrMore struct {
	Child Node
}

var _ composite = &OneOrMore{}

func (m *OneOrMore) childNodes() []Node { return []Node{m.Child} }

// Match implements [Node].
func (m *OneOrMore) Match(left []Leaf, collected []Leaf) (bool, []Leaf, []Leaf) {
	l, c := cloneLeaves(left), cloneLeaves(collected)
	times := 0
	for {
		matched, nl, nc := m.Child.Match(l, c)
		if matched {
			times++
		}
		// Leaves are only ever removed by a leaf match, never added back,
		// so a stable length means the iteration made no more progress.
		unchanged := len(nl) == len(l)
		l, c = nl, nc
		if unchanged {
			break
		}
	}
	if times >= 1 {
		return true, l, c
	}
	return false, left, collected
}

// Either attempts every child against independent copies of left and
// collected, and selects the successful outcome with the smallest
// residual left (greedy consumption). Ties are broken by declaration
// order. It fails only if no child matches.
type Either struct {
	Children []Node
}

var _ composite = &Either{}

func (e *Either) childNodes() []Node { return e.Children }

// Match implements [Node].
func (e *Either) Match(left []Leaf, collected []Leaf) (bool, []Leaf, []Leaf) {
	var (
		haveOutcome bool
		bestLeft    []Leaf
		bestLen     int
		bestColl    []Leaf
	)
	for _, child := range e.Children {
		matched, nl, nc := child.Match(cloneLeaves(left), cloneLeaves(collected))
		if !matched {
			continue
		}
		if !haveOutcome || len(nl) < bestLen {
			haveOutcome, bestLeft, bestLen, bestColl = true, nl, len(nl), nc
		}
	}
	if haveOutcome {
		return true, bestLeft, bestColl
	}
	return false, left, collected
}

// AnyOptions matches (and consumes) every [*Option] leaf remaining in
// left. It is produced by the `[options]` shorthand in a usage pattern.
type AnyOptions struct{}

var _ composite = &AnyOptions{}

func (ao *AnyOptions) childNodes() []Node { return nil }

// Match implements [Node].
func (ao *AnyOptions) Match(left []Leaf, collected []Leaf) (bool, []Leaf, []Leaf) {
	kept := make([]Leaf, 0, len(left))
	removedAny := false
	for _, l := range left {
		if _, ok := l.(*Option); ok {
			removedAny = true
			continue
		}
		kept = append(kept, l)
	}
	return removedAny, kept, collected
}

// flat collects every [Leaf] reachable from n, in depth-first order,
// skipping composite nodes that carry no leaf identity of their own.
func flat(n Node) []Leaf {
	if lf, ok := n.(Leaf); ok {
		return []Leaf{lf}
	}
	if comp, ok := n.(composite); ok {
		var out []Leaf
		for _, child := range comp.childNodes() {
			out = append(out, flat(child)...)
		}
		return out
	}
	return nil
}
