// doc.go - package documentation.
// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package descriptor extracts the option descriptor table from a help
text: one [Descriptor] per option-description line, recording its short
and long spelling, whether it takes an argument, and its default value.

This package performs no validation: malformed descriptor lines are
accepted silently, since the input doc string is a developer-time
construct rather than end-user input.
*/
package descriptor
