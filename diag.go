// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jconf

import (
	"errors"
	"log"
)

// Diagnostics receives error reports from a failed parse. The line number is
// 1-based and the column offset is 0-based. A parse reports at most one error.
type Diagnostics interface {
	Error(msg string, line, column int)
}

// DiagnosticsFunc adapts a function to the Diagnostics interface.
type DiagnosticsFunc func(msg string, line, column int)

// Error satisfies the Diagnostics interface.
func (f DiagnosticsFunc) Error(msg string, line, column int) { f(msg, line, column) }

// LogDiagnostics returns a Diagnostics that writes reports to lg.
// If lg == nil, the default logger is used.
func LogDiagnostics(lg *log.Logger) Diagnostics {
	if lg == nil {
		lg = log.Default()
	}
	return DiagnosticsFunc(func(msg string, line, column int) {
		lg.Printf("%d:%d: %s", line, column, msg)
	})
}

// Report delivers err to d. If d == nil or err == nil, Report does nothing.
// Errors that are not a *SyntaxError are reported without a location.
func Report(d Diagnostics, err error) {
	if d == nil || err == nil {
		return
	}
	var serr *SyntaxError
	if errors.As(err, &serr) {
		d.Error(serr.Message, serr.Location.Line, serr.Location.Column)
	} else {
		d.Error(err.Error(), 0, 0)
	}
}
