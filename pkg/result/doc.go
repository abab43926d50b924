// doc.go - package documentation.
// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package result assembles the final name-to-value map returned to the
caller of [Parse], layering four sources in increasing priority:

 1. descriptor defaults ([*descriptor.Descriptor.Default], or false for
    flags and valued options lacking a `[default: ...]` tag);
 2. options actually present in argv, overriding their descriptor
    default;
 3. usage-pattern argument and command defaults (nil, or an empty
    []string for an accumulating argument, or false for a command);
 4. leaves the matcher collected, overriding everything else.

Keys are the leaf's preferred name: an option's long spelling if it has
one, else its short spelling; an argument's `<name>` or ALLCAPS text; a
command's literal word.
*/
package result
