// match.go - resolving option spellings against the table.
// SPDX-License-Identifier: GPL-3.0-or-later

package descriptor

import "strings"

// MatchLongPrefix returns every descriptor whose Long spelling, with
// the leading dashes stripped, starts with name. Both the usage parser
// and the argv lexer resolve long options this way, so a usage pattern
// spelled with an unambiguous prefix resolves to the same full form an
// abbreviated argv token would.
func MatchLongPrefix(name string, table []*Descriptor) []*Descriptor {
	var out []*Descriptor
	for _, d := range table {
		if d.Long == "" {
			continue
		}
		if strings.HasPrefix(strings.TrimPrefix(d.Long, "--"), name) {
			out = append(out, d)
		}
	}
	return out
}

// MatchShort returns every descriptor whose Short spelling, with the
// leading dash stripped, equals the single character c. More than one
// match means the option descriptions declare the same short letter
// twice, which callers must reject.
func MatchShort(c byte, table []*Descriptor) []*Descriptor {
	var out []*Descriptor
	for _, d := range table {
		if d.Short != "" && strings.TrimPrefix(d.Short, "-") == string(c) {
			out = append(out, d)
		}
	}
	return out
}

// Names renders the preferred names of the given descriptors, comma
// separated, for use in ambiguity diagnostics.
func Names(table []*Descriptor) string {
	names := make([]string, len(table))
	for i, d := range table {
		names[i] = d.Name()
	}
	return strings.Join(names, ", ")
}
