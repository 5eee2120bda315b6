// Package olog is a thin structured-logging wrapper holding the one
// component-scoped zerolog.Logger the core shares. The undo journal
// uses it to trace precondition violations that are by contract quiet,
// infallible no-ops: quiet to the caller, but worth a debug breadcrumb
// for anyone diagnosing a document that silently refused to undo.
package olog

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is the package-scoped logger for the undo/document core. Tests
// and embedders may reassign it to redirect or silence output.
var Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).
	With().
	Timestamp().
	Str("component", "objdoc").
	Logger().
	Level(zerolog.WarnLevel)

// SetLevel adjusts the minimum level Logger emits. Debug is useful while
// diagnosing a document whose undo/redo calls are silently refused.
func SetLevel(level zerolog.Level) {
	Logger = Logger.Level(level)
}
