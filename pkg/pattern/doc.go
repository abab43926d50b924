// doc.go - package documentation.
// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package pattern implements the algebraic grammar over which a usage
message is matched against a lexed command line.

# Leaves

A [Leaf] is an atomic matchable: [*Argument], [*Command], or [*Option].
Leaves carry the value assigned to them once a command line has been
matched against the grammar.

# Composite nodes

A [Node] is either a [Leaf] or one of the composite grammar constructs:
[*Required], [*Optional], [*OneOrMore], [*Either], and [*AnyOptions].
Composite nodes implement [Node.Match] by combining the match outcomes
of their children; see each type for its combination rule.

# Normalization

[Fix] must be called once on a freshly parsed tree, before any call to
[Node.Match]. It collapses structurally equal leaves onto a single
canonical instance (so that matching mutations to one occurrence are
observed at every occurrence) and flags [*Argument] leaves that should
accumulate repeated matches into a list.
*/
package pattern
