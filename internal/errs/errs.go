// Package errs wraps errors from a named subsystem (lexer, parser, monitor,
// importer, ...) with the run's correlation id, following the same
// wrap-with-context-and-Unwrap shape the original interpreter errors used,
// generalized from "a message to show the player" to "a subsystem-prefixed
// message to show the operator".
package errs

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Kind identifies which subsystem raised an error, matching the taxonomy in
// the error handling design: lex, parse, import, monitor, io.
type Kind string

const (
	Lex     Kind = "lexer"
	Parse   Kind = "parser"
	Import  Kind = "importer"
	Monitor Kind = "monitor"
	IO      Kind = "io"
)

// subsystemError carries the offending subsystem, the run it occurred in,
// and an optionally-wrapped cause.
type subsystemError struct {
	kind  Kind
	run   string
	msg   string
	cause error
}

func (e *subsystemError) Error() string {
	if e.run == "" {
		return fmt.Sprintf("%s: %s", e.kind, e.msg)
	}
	return fmt.Sprintf("%s: %s (run %s)", e.kind, e.msg, e.run)
}

func (e *subsystemError) Unwrap() error {
	return e.cause
}

// New builds a subsystem-prefixed error with no run id attached. Used where
// no run id is at hand, such as in the lexer, parser, importer and monitor,
// which are not given one.
func New(kind Kind, format string, a ...interface{}) error {
	return &subsystemError{kind: kind, msg: fmt.Sprintf(format, a...)}
}

// Wrap builds a subsystem-prefixed error that wraps cause, attaching the
// given run correlation id for traceability across a single invocation.
func Wrap(kind Kind, run string, cause error, format string, a ...interface{}) error {
	return &subsystemError{kind: kind, run: run, msg: fmt.Sprintf(format, a...), cause: cause}
}

// Count renders n with thousands separators, for frame/match counters
// embedded in diagnostic text (e.g. "after 1,234 frames").
func Count(n int) string {
	return humanize.Comma(int64(n))
}
