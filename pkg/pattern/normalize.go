// normalize.go - post-parse normalization of the pattern tree.
// SPDX-License-Identifier: GPL-3.0-or-later

package pattern

// Fix normalizes root in place and returns it. It must be called exactly
// once on a freshly parsed tree, before any [Node.Match] call.
//
// It runs two passes:
//
//  1. Identity fixing: every [Leaf] occurrence is replaced by the single
//     canonical instance sharing its [Leaf.Key], so that a mutation
//     performed while matching one occurrence is observed at every
//     grammar position naming the same leaf.
//
//  2. List-argument detection: any [*Argument] that appears more than
//     once within some branch of the either-normal form (see
//     [eitherNormalForm]) has its canonical instance's Value initialized
//     to an empty []string, marking it as accumulating.
//
// Calling Fix on an already-fixed tree is a no-op: both passes recompute
// the same canonical assignment from the tree's current state.
func Fix(root Node) Node {
	fixIdentities(root)
	fixListArguments(root)
	return root
}

func fixIdentities(root Node) {
	uniq := make(map[string]Leaf)
	for _, lf := range flat(root) {
		if _, ok := uniq[lf.Key()]; !ok {
			uniq[lf.Key()] = lf
		}
	}
	rewriteLeaves(root, uniq)
}

// rewriteLeaves walks every composite node reachable from n, replacing
// each leaf child with its canonical instance from uniq.
func rewriteLeaves(n Node, uniq map[string]Leaf) {
	comp, ok := n.(composite)
	if !ok {
		return
	}
	switch v := comp.(type) {
	case *Required:
		for i, c := range v.Children {
			v.Children[i] = canonicalize(c, uniq)
		}
	case *Optional:
		for i, c := range v.Children {
			v.Children[i] = canonicalize(c, uniq)
		}
	case *Either:
		for i, c := range v.Children {
			v.Children[i] = canonicalize(c, uniq)
		}
	case *OneOrMore:
		v.Child = canonicalize(v.Child, uniq)
	case *AnyOptions:
		// no children
	}
}

func canonicalize(n Node, uniq map[string]Leaf) Node {
	if lf, ok := n.(Leaf); ok {
		return uniq[lf.Key()]
	}
	rewriteLeaves(n, uniq)
	return n
}

func fixListArguments(root Node) {
	for _, branch := range eitherNormalForm(root) {
		counts := make(map[string]int, len(branch))
		for _, lf := range branch {
			counts[lf.Key()]++
		}
		for _, lf := range branch {
			if counts[lf.Key()] <= 1 {
				continue
			}
			if arg, ok := lf.(*Argument); ok {
				arg.Value = []string{}
			}
		}
	}
}

// eitherNormalForm rewrites root into a flat list of branches, each a
// plain list of leaves, by worklist expansion: push the singleton group
// [root]; repeatedly pop a group and inline its highest-priority
// composite ([*Either] splits into one push per alternative; [*Required]
// and [*Optional] inline their children; [*OneOrMore] inlines its child
// twice, which suffices to detect duplication without being a semantic
// unrolling). A group with no composites left is a finished branch.
//
// This form exists only to detect which [*Argument] leaves should
// accumulate; it is never used for actual matching, which always goes
// through [Node.Match].
func eitherNormalForm(root Node) [][]Leaf {
	worklist := [][]Node{{root}}
	var branches [][]Leaf

	for len(worklist) > 0 {
		group := worklist[0]
		worklist = worklist[1:]

		if idx := indexWhere[*Either](group); idx >= 0 {
			either := group[idx].(*Either)
			rest := without(group, idx)
			for _, alt := range either.Children {
				worklist = append(worklist, prepend(alt, rest))
			}
			continue
		}

		if idx := indexWhere[*Required](group); idx >= 0 {
			required := group[idx].(*Required)
			rest := without(group, idx)
			worklist = append(worklist, append(append([]Node{}, required.Children...), rest...))
			continue
		}

		if idx := indexWhere[*Optional](group); idx >= 0 {
			optional := group[idx].(*Optional)
			rest := without(group, idx)
			worklist = append(worklist, append(append([]Node{}, optional.Children...), rest...))
			continue
		}

		if idx := indexWhere[*OneOrMore](group); idx >= 0 {
			oneOrMore := group[idx].(*OneOrMore)
			rest := without(group, idx)
			worklist = append(worklist, append([]Node{oneOrMore.Child, oneOrMore.Child}, rest...))
			continue
		}

		var leaves []Leaf
		for _, n := range group {
			if lf, ok := n.(Leaf); ok {
				leaves = append(leaves, lf)
			}
		}
		branches = append(branches, leaves)
	}

	return branches
}

// indexWhere returns the index of the first element of group whose
// dynamic type is T, or -1 if none matches.
func indexWhere[T Node](group []Node) int {
	for i, n := range group {
		if _, ok := n.(T); ok {
			return i
		}
	}
	return -1
}

func without(group []Node, idx int) []Node {
	out := make([]Node, 0, len(group)-1)
	out = append(out, group[:idx]...)
	out = append(out, group[idx+1:]...)
	return out
}

func prepend(n Node, rest []Node) []Node {
	out := make([]Node, 0, len(rest)+1)
	out = append(out, n)
	out = append(out, rest...)
	return out
}
