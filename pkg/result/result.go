// result.go - assembly of the final name-to-value map.
// SPDX-License-Identifier: GPL-3.0-or-later

package result

import (
	"github.com/bassosimone/docopt/pkg/descriptor"
	"github.com/bassosimone/docopt/pkg/pattern"
)

// Assemble layers table's defaults, argvLeaves (the options actually
// lexed from the command line), root's argument/command defaults, and
// collected (the leaves [pattern.Node.Match] accumulated while matching
// root against argvLeaves), in that priority order, and returns the
// resulting name-to-value map. See the package doc for the precise
// layering rules.
func Assemble(table []*descriptor.Descriptor, root *pattern.Required, argvLeaves, collected []pattern.Leaf) map[string]any {
	out := make(map[string]any)

	for _, d := range table {
		out[d.Name()] = d.Default
	}

	for _, lf := range argvLeaves {
		if opt, ok := lf.(*pattern.Option); ok {
			out[opt.Name()] = opt.Value
		}
	}

	for _, lf := range pattern.Leaves(root) {
		switch v := lf.(type) {
		case *pattern.Argument:
			if _, accumulates := v.Value.([]string); accumulates {
				out[v.Name] = []string{}
			} else if v.Name != "" {
				out[v.Name] = nil
			}
		case *pattern.Command:
			out[v.Name] = false
		}
	}

	for _, lf := range collected {
		switch v := lf.(type) {
		case *pattern.Argument:
			if v.Name != "" {
				out[v.Name] = v.Value
			}
		case *pattern.Command:
			out[v.Name] = v.Value
		}
	}

	return out
}
