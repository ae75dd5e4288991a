// Package ui defines the interface for chat frontends.
//
// Implementations adapt a platform (plain terminal, full-screen TUI,
// or anything else that can carry a line of text each way) to the
// session controller's turn loop. The frontend is an input source and
// a reply sink; all conversation logic stays in pkg/session.
package ui

import (
	"context"
)

///////////////////////////////////////////////////////////////////////////////
// INTERFACES

// ChatUI is implemented by every chat frontend
type ChatUI interface {
	// Receive blocks until the next input line is available, the
	// context is cancelled, or the frontend is closed. It returns
	// io.EOF when no further input will arrive.
	Receive(ctx context.Context) (string, error)

	// Reply shows a reply from the engine
	Reply(text string) error

	// System shows an out-of-band message (session banners, errors)
	System(format string, args ...any) error

	// Close releases the frontend's resources
	Close() error
}
