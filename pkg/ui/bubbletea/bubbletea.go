// Package bubbletea implements ui.ChatUI as a full-screen terminal
// application using the Charm bubbletea framework: a scrollable
// conversation history, a text input prompt and a status line showing
// the active conversation language.
package bubbletea

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	// Packages
	spinner "github.com/charmbracelet/bubbles/spinner"
	textinput "github.com/charmbracelet/bubbles/textinput"
	viewport "github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	lipgloss "github.com/charmbracelet/lipgloss"
	wordwrap "github.com/muesli/reflow/wordwrap"

	eliza "github.com/dialogik/go-eliza"
	ui "github.com/dialogik/go-eliza/pkg/ui"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Terminal implements ui.ChatUI as a full-screen TUI
type Terminal struct {
	program *tea.Program
	lines   chan string // input lines from the TUI to the caller
	done    chan struct{}
	mu      sync.Mutex
	err     error
}

// model manages the TUI state
type model struct {
	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model
	history  []historyEntry
	language eliza.Lang
	width    int
	height   int
	ready    bool
	typing   bool
	quitting bool
	lines    chan<- string
}

type historyEntry struct {
	role string // "you", "eliza", "system"
	text string
}

///////////////////////////////////////////////////////////////////////////////
// MESSAGES (bubbletea internal)

type appendMsg struct {
	role string
	text string
}

type languageMsg struct {
	code eliza.Lang
}

type typingMsg struct {
	typing bool
}

///////////////////////////////////////////////////////////////////////////////
// STYLES

var (
	userStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")) // blue
	elizaStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")) // green
	systemStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")) // yellow
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates the TUI and takes over the terminal until Close is called
// or the user quits
func New() (*Terminal, error) {
	lines := make(chan string, 16)

	input := textinput.New()
	input.Placeholder = "Type a message..."
	input.Focus()
	input.CharLimit = 0

	m := &model{
		input:    input,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		language: eliza.LangEN,
		lines:    lines,
	}

	t := &Terminal{
		lines: lines,
		done:  make(chan struct{}),
	}
	t.program = tea.NewProgram(m, tea.WithAltScreen())

	go func() {
		defer close(t.done)
		if _, err := t.program.Run(); err != nil {
			t.mu.Lock()
			t.err = err
			t.mu.Unlock()
		}
		close(lines)
	}()

	return t, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - ui.ChatUI

// Receive blocks until the next input line or until the context is
// cancelled; io.EOF is returned after the user quits the TUI
func (t *Terminal) Receive(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-t.lines:
		if !ok {
			t.mu.Lock()
			err := t.err
			t.mu.Unlock()
			if err != nil {
				return "", err
			}
			return "", io.EOF
		}
		return line, nil
	}
}

// Reply appends an engine reply to the conversation history
func (t *Terminal) Reply(text string) error {
	t.program.Send(appendMsg{role: "eliza", text: text})
	return nil
}

// System appends an out-of-band message to the conversation history
func (t *Terminal) System(format string, args ...any) error {
	t.program.Send(appendMsg{role: "system", text: fmt.Sprintf(format, args...)})
	return nil
}

// Close shuts the TUI down and restores the terminal
func (t *Terminal) Close() error {
	t.program.Quit()
	<-t.done
	return nil
}

// SetLanguage updates the language shown in the status line
func (t *Terminal) SetLanguage(code eliza.Lang) {
	t.program.Send(languageMsg{code: code})
}

// SetTyping toggles the thinking spinner
func (t *Terminal) SetTyping(typing bool) {
	t.program.Send(typingMsg{typing: typing})
}

///////////////////////////////////////////////////////////////////////////////
// BUBBLETEA MODEL

func (m *model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			// The update loop must never block; if the consumer is
			// behind, the line stays in the input instead of being
			// dropped
			select {
			case m.lines <- text:
				m.input.SetValue("")
				m.history = append(m.history, historyEntry{role: "you", text: text})
				m.updateViewport()
			default:
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		const footerHeight = 2 // input + status line
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-footerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - footerHeight
		}
		m.input.Width = msg.Width - 4
		m.updateViewport()
		return m, nil

	case appendMsg:
		m.history = append(m.history, historyEntry{role: msg.role, text: msg.text})
		m.typing = false
		m.updateViewport()
		return m, nil

	case languageMsg:
		m.language = msg.code
		return m, nil

	case typingMsg:
		m.typing = msg.typing
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	// Update text input
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	// Forward navigation keys to the viewport, but block typing keys so
	// the history does not jump on each keystroke
	if keyMsg, isKey := msg.(tea.KeyMsg); isKey {
		switch keyMsg.Type {
		case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown, tea.KeyHome, tea.KeyEnd:
			m.viewport, cmd = m.viewport.Update(msg)
			cmds = append(cmds, cmd)
		}
	} else {
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "\n  Initializing..."
	}

	var status string
	if m.typing {
		status = dimStyle.Render(m.spinner.View() + " thinking...")
	} else {
		status = dimStyle.Render(fmt.Sprintf("language: %s · ctrl+c to quit", m.language.Name()))
	}

	return fmt.Sprintf("%s\n%s\n%s", m.viewport.View(), m.input.View(), status)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (m *model) updateViewport() {
	w := max(m.width-14, 20)
	var b strings.Builder
	for _, entry := range m.history {
		b.WriteString(m.styleRole(entry.role))
		b.WriteString("\n" + indent(wordwrap.String(entry.text, w)))
		b.WriteString("\n\n")
	}
	m.viewport.SetContent(b.String())
	m.viewport.GotoBottom()
}

func (m *model) styleRole(role string) string {
	switch role {
	case "you":
		return userStyle.Render(role + ":")
	case "eliza":
		return elizaStyle.Render(role + ":")
	case "system":
		return systemStyle.Render(role + ":")
	default:
		return role + ":"
	}
}

// indent gives every line a 2-space left margin
func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = "  " + line
		}
	}
	return strings.Join(lines, "\n")
}

///////////////////////////////////////////////////////////////////////////////
// INTERFACE ASSERTIONS

var _ ui.ChatUI = (*Terminal)(nil)
