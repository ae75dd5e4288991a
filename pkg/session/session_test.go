package session_test

import (
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	// Packages
	eliza "github.com/dialogik/go-eliza"
	session "github.com/dialogik/go-eliza/pkg/session"
	assert "github.com/stretchr/testify/assert"
)

func testController(t *testing.T, opts ...session.Opt) *session.Controller {
	t.Helper()
	c, err := session.New(append([]session.Opt{session.WithSeed(42)}, opts...)...)
	if err != nil {
		t.Fatalf("failed to create controller: %v", err)
	}
	return c
}

func TestNew(t *testing.T) {
	assert := assert.New(t)
	c := testController(t)

	assert.Equal(eliza.LangEN, c.Active())
	assert.False(c.Terminated())
	assert.Contains(c.Languages(), eliza.LangEN)
	assert.Contains(c.Languages(), eliza.LangSV)
}

func TestTurnReply(t *testing.T) {
	assert := assert.New(t)
	c := testController(t)

	reply, err := c.Turn("I am sad")
	assert.NoError(err)
	assert.NotNil(reply)
	assert.Equal(eliza.LangEN, reply.Lang)
	assert.False(reply.Farewell)
	assert.Contains([]string{
		"Did you come to me because you are sad?",
		"How long have you been sad?",
		"How do you feel about being sad?",
	}, reply.Text)
}

func TestTurnFormatted(t *testing.T) {
	assert := assert.New(t)
	c := testController(t)

	// Every outgoing sentence starts uppercase and ends with terminal
	// punctuation
	for _, input := range []string{"hello", "i am sad", "tell me something", "xyzzy"} {
		reply, err := c.Turn(input)
		assert.NoError(err)
		if !assert.NotNil(reply) {
			continue
		}
		first, _ := utf8.DecodeRuneInString(reply.Text)
		assert.False(unicode.IsLower(first), "reply %q starts lowercase", reply.Text)
		last, _ := utf8.DecodeLastRuneInString(reply.Text)
		assert.True(strings.ContainsRune(".!?", last), "reply %q lacks terminal punctuation", reply.Text)
	}
}

func TestTurnEmpty(t *testing.T) {
	assert := assert.New(t)
	c := testController(t)

	// Empty input is a no-op: no reply, no error, no state change
	for _, input := range []string{"", "   ", "\t"} {
		reply, err := c.Turn(input)
		assert.NoError(err)
		assert.Nil(reply)
	}
	assert.Equal(eliza.LangEN, c.Active())
	assert.False(c.Terminated())
}

func TestTurnQuitPriority(t *testing.T) {
	assert := assert.New(t)
	c := testController(t)

	// A quit word ends the session even when the rest of the input
	// would match a rule
	reply, err := c.Turn("bye why not")
	assert.NoError(err)
	assert.NotNil(reply)
	assert.True(reply.Farewell)
	assert.Equal(eliza.LangEN, reply.Lang)
	assert.True(c.Terminated())

	reply, err = c.Turn("hello again")
	assert.Nil(reply)
	assert.ErrorIs(err, eliza.ErrTerminated)
}

func TestTurnFarewellLanguage(t *testing.T) {
	assert := assert.New(t)
	c := testController(t)

	// Switch to Swedish, then quit; the farewell comes in the language
	// that was active when the quit word was spoken
	reply, err := c.Turn("Jag är trött")
	assert.NoError(err)
	assert.Equal(eliza.LangSV, reply.Lang)

	reply, err = c.Turn("hejdå")
	assert.NoError(err)
	assert.True(reply.Farewell)
	assert.Equal(eliza.LangSV, reply.Lang)
	assert.Contains(c.Languages()[eliza.LangSV].Farewells, reply.Text)
}

func TestTurnQuitWordsShared(t *testing.T) {
	assert := assert.New(t)
	c := testController(t)

	// An English quit word still ends a Swedish session, and the
	// farewell stays Swedish
	_, err := c.Turn("Jag är trött")
	assert.NoError(err)
	assert.Equal(eliza.LangSV, c.Active())

	reply, err := c.Turn("bye")
	assert.NoError(err)
	assert.True(reply.Farewell)
	assert.Equal(eliza.LangSV, reply.Lang)
}

func TestTurnSameTurnSwitch(t *testing.T) {
	assert := assert.New(t)
	c := testController(t)

	// An explicit switch takes effect before the reply is generated
	reply, err := c.Turn("switch to swedish")
	assert.NoError(err)
	assert.Equal(eliza.LangSV, reply.Lang)
	assert.Equal(eliza.LangSV, c.Active())
}

func TestTurnSticky(t *testing.T) {
	assert := assert.New(t)
	c := testController(t)

	// Neutral input never moves the active language
	reply, err := c.Turn("okay sure")
	assert.NoError(err)
	assert.Equal(eliza.LangEN, reply.Lang)

	_, err = c.Turn("Jag är trött")
	assert.NoError(err)
	assert.Equal(eliza.LangSV, c.Active())

	reply, err = c.Turn("okay sure")
	assert.NoError(err)
	assert.Equal(eliza.LangSV, reply.Lang)
	assert.Equal(eliza.LangSV, c.Active())
}

func TestReset(t *testing.T) {
	assert := assert.New(t)
	c := testController(t)

	_, err := c.Turn("Jag är trött")
	assert.NoError(err)
	_, err = c.Turn("hejdå")
	assert.NoError(err)
	assert.True(c.Terminated())

	c.Reset()
	assert.False(c.Terminated())
	assert.Equal(eliza.LangEN, c.Active())

	reply, err := c.Turn("hello")
	assert.NoError(err)
	assert.Equal(eliza.LangEN, reply.Lang)
}

func TestWithLanguage(t *testing.T) {
	assert := assert.New(t)
	c := testController(t, session.WithLanguage(eliza.LangSV))
	assert.Equal(eliza.LangSV, c.Active())

	_, err := session.New(session.WithLanguage("fr"))
	assert.ErrorIs(err, eliza.ErrNotFound)
}

func TestTurnDeterministic(t *testing.T) {
	assert := assert.New(t)
	c1 := testController(t)
	c2 := testController(t)

	script := []string{"Hello", "I am sad", "My mother bothers me", "Jag är trött", "okay", "hejdå"}
	for _, input := range script {
		r1, err1 := c1.Turn(input)
		r2, err2 := c2.Turn(input)
		assert.NoError(err1)
		assert.NoError(err2)
		assert.Equal(r1.Text, r2.Text, "input %q", input)
		assert.Equal(r1.Lang, r2.Lang, "input %q", input)
	}
}

func TestWithDebug(t *testing.T) {
	assert := assert.New(t)
	var traces []string
	c := testController(t, session.WithDebug(func(format string, args ...any) {
		traces = append(traces, format)
	}))

	_, err := c.Turn("Jag är trött")
	assert.NoError(err)
	_, err = c.Turn("hejdå")
	assert.NoError(err)
	assert.NotEmpty(traces)
}
