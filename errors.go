// errors.go - the two error kinds raised by this package.
// SPDX-License-Identifier: GPL-3.0-or-later

package docopt

import "fmt"

// UserExit is the error [Parse] returns when argv does not match the
// usage grammar: an unrecognized option, an ambiguous prefix, a missing
// required element, or surplus tokens. Its Error method is the
// printable usage text; callers that want DocoptExit's traditional
// behavior (print usage, exit non-zero) can type-assert for it. [Must]
// does not inspect the error type: it exits with status 1 on any
// non-nil error, this one included, without printing anything.
type UserExit struct {
	// Usage is the printable usage text to show the end user.
	Usage string
}

// Error implements error.
func (e *UserExit) Error() string {
	return e.Usage
}

// LanguageError is the error [Parse] returns when the doc string itself
// is contradictory: a usage pattern names an option absent from (or
// ambiguous against) the option descriptions, or usage brackets are
// unbalanced. This is a defect in the program's own help text, not a
// mistake by whoever invoked the program, so it is never printed to the
// end user: it is returned to the caller of [Parse].
type LanguageError struct {
	err error
}

// Error implements error.
func (e *LanguageError) Error() string {
	return e.err.Error()
}

// Unwrap exposes the underlying error, so callers can select a specific
// failure kind (argvlexer.ErrAmbiguousShortOption, or one of the usage
// package's sentinels) with errors.Is.
func (e *LanguageError) Unwrap() error {
	return e.err
}

func languageErrorf(format string, args ...any) error {
	return &LanguageError{err: fmt.Errorf(format, args...)}
}
