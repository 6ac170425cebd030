// Package logging defines the minimal diagnostic-tracing interface
// shared across this module's packages, so the layout cache, the
// shaping driver, and the engine facade can all accept an optional
// logger without depending on any particular logging library.
package logging

import (
	"fmt"
	"log/slog"
)

// Logger receives printf-style diagnostic traces. It is never required
// for correctness: every call site that takes one also works with Nop.
type Logger interface {
	Printf(format string, args ...any)
}

// Nop discards every message. It is the default logger everywhere in
// this module.
type Nop struct{}

// Printf implements Logger by doing nothing.
func (Nop) Printf(string, ...any) {}

// Slog adapts a *slog.Logger to Logger, so callers that already use
// structured logging elsewhere in their application can plug it
// straight in rather than stand up a second logging path.
type Slog struct {
	L *slog.Logger
}

// Printf implements Logger by formatting the message and emitting it at
// Info level.
func (s Slog) Printf(format string, args ...any) {
	s.L.Info(fmt.Sprintf(format, args...))
}
