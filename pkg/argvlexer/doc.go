// doc.go - package documentation.
// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package argvlexer converts a runtime argument vector into the flat
sequence of [pattern.Leaf] that the matcher operates on, resolving each
option token against the [descriptor.Descriptor] table extracted from the
help text.

Long options are resolved by unambiguous prefix, exactly like usage
patterns are (see package usage): `--ver` fails if both `--verbose` and
`--verify` are declared, while `--verb` resolves to `--verbose`. Short
options may be stacked (`-abc` is `-a -b -c`), with a value-taking option
consuming the rest of its own token, or else the next one.

Failures here are user errors: argv is runtime input the developer
cannot have controlled (contrast with package usage, which raises a
developer error for the equivalent situations found in the usage
pattern itself). The one exception is [ErrAmbiguousShortOption], a
short letter declared by two descriptors: that is a defect in the
option descriptions, and the top-level Parse reports it to the caller
instead of printing usage at the end user.
*/
package argvlexer
