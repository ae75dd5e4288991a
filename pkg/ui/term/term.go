// Package term implements ui.ChatUI for plain line-oriented terminal
// sessions: a prompt on stdin, styled replies on stdout, word-wrapped
// to the terminal width.
package term

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	// Packages
	lipgloss "github.com/charmbracelet/lipgloss"
	wordwrap "github.com/muesli/reflow/wordwrap"
	term "golang.org/x/term"

	ui "github.com/dialogik/go-eliza/pkg/ui"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Terminal implements ui.ChatUI for plain terminal sessions
type Terminal struct {
	in     io.Reader
	out    io.Writer
	prompt string
	lines  chan string
	errs   chan error
}

///////////////////////////////////////////////////////////////////////////////
// STYLES

var (
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")) // blue
	replyStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")) // green
	systemStyle = lipgloss.NewStyle().Faint(true)
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a terminal frontend reading from in and writing to out.
// A background goroutine consumes input lines so Receive can honour
// context cancellation.
func New(in io.Reader, out io.Writer, prompt string) *Terminal {
	t := &Terminal{
		in:     in,
		out:    out,
		prompt: prompt,
		lines:  make(chan string),
		errs:   make(chan error, 1),
	}
	go t.read()
	return t
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Receive blocks until the next input line, context cancellation, or
// end of input (io.EOF)
func (t *Terminal) Receive(ctx context.Context) (string, error) {
	fmt.Fprint(t.out, promptStyle.Render(t.prompt))
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case err := <-t.errs:
		return "", err
	case line, ok := <-t.lines:
		if !ok {
			return "", io.EOF
		}
		return line, nil
	}
}

// Reply prints a styled, word-wrapped engine reply
func (t *Terminal) Reply(text string) error {
	_, err := fmt.Fprintln(t.out, replyStyle.Render("eliza>")+" "+t.wrap(text))
	return err
}

// System prints a dimmed out-of-band message
func (t *Terminal) System(format string, args ...any) error {
	_, err := fmt.Fprintln(t.out, systemStyle.Render(fmt.Sprintf(format, args...)))
	return err
}

// Close is a no-op for plain terminals; the input goroutine ends when
// the reader does
func (t *Terminal) Close() error {
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (t *Terminal) read() {
	scanner := bufio.NewScanner(t.in)
	for scanner.Scan() {
		t.lines <- scanner.Text()
	}
	if err := scanner.Err(); err != nil {
		t.errs <- err
	}
	close(t.lines)
}

// wrap word-wraps text to the terminal width, leaving room for the
// reply prefix
func (t *Terminal) wrap(text string) string {
	width := 80
	if f, ok := t.out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 20 {
			width = w
		}
	}
	return wordwrap.String(text, width-8)
}

///////////////////////////////////////////////////////////////////////////////
// INTERFACE ASSERTIONS

var _ ui.ChatUI = (*Terminal)(nil)
