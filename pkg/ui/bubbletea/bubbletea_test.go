package bubbletea

import (
	"testing"

	// Packages
	spinner "github.com/charmbracelet/bubbles/spinner"
	textinput "github.com/charmbracelet/bubbles/textinput"
	viewport "github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	eliza "github.com/dialogik/go-eliza"
)

func testModel(lines chan string) *model {
	input := textinput.New()
	input.Focus()
	m := &model{
		input:    input,
		spinner:  spinner.New(),
		language: eliza.LangEN,
		lines:    lines,
	}
	m.viewport = viewport.New(80, 20)
	m.width = 80
	m.ready = true
	return m
}

func TestUpdateEnter(t *testing.T) {
	lines := make(chan string, 1)
	m := testModel(lines)

	m.input.SetValue("hello")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if got := m.input.Value(); got != "" {
		t.Errorf("input not cleared after send: %q", got)
	}
	select {
	case line := <-lines:
		if line != "hello" {
			t.Errorf("received %q, want %q", line, "hello")
		}
	default:
		t.Fatal("no line delivered")
	}
	if len(m.history) != 1 || m.history[0].role != "you" {
		t.Errorf("history = %v, want one 'you' entry", m.history)
	}
}

func TestUpdateEnterNonBlocking(t *testing.T) {
	// A full line channel must not stall the update loop; the undrained
	// line stays in the input instead of being dropped
	lines := make(chan string, 1)
	m := testModel(lines)

	m.input.SetValue("first")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	m.input.SetValue("second")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if got := m.input.Value(); got != "second" {
		t.Errorf("input = %q, want the undelivered line kept", got)
	}
	if line := <-lines; line != "first" {
		t.Errorf("received %q, want %q", line, "first")
	}
	if len(m.history) != 1 {
		t.Errorf("history has %d entries, want 1", len(m.history))
	}
}

func TestUpdateTyping(t *testing.T) {
	m := testModel(make(chan string, 1))

	m.Update(typingMsg{typing: true})
	if !m.typing {
		t.Error("typing not set")
	}

	// A reply clears the typing state
	m.Update(appendMsg{role: "eliza", text: "How does that make you feel?"})
	if m.typing {
		t.Error("typing not cleared by reply")
	}
	if len(m.history) != 1 || m.history[0].role != "eliza" {
		t.Errorf("history = %v, want one 'eliza' entry", m.history)
	}
}

func TestUpdateLanguage(t *testing.T) {
	m := testModel(make(chan string, 1))

	m.Update(languageMsg{code: eliza.LangSV})
	if m.language != eliza.LangSV {
		t.Errorf("language = %q, want %q", m.language, eliza.LangSV)
	}
}
