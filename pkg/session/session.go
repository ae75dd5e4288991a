/*
session owns the single piece of mutable conversation state: the active
language. Each turn runs the quit check, the sticky language detector
and the response engine in that order, and formats the outgoing
sentence. A quit word terminates the session with a farewell in the
language that was active when it was spoken.
*/
package session

import (
	"math/rand"
	"strings"
	"time"

	// Packages
	eliza "github.com/dialogik/go-eliza"
	detect "github.com/dialogik/go-eliza/pkg/detect"
	engine "github.com/dialogik/go-eliza/pkg/engine"
	lang "github.com/dialogik/go-eliza/pkg/lang"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Controller is the per-session state machine. It is Active in exactly
// one language until a quit word moves it to the terminated state;
// turns are strictly sequential and the zero value is not usable.
type Controller struct {
	languages  map[eliza.Lang]*lang.Language
	engines    map[eliza.Lang]*engine.Engine
	detector   *detect.Detector
	quits      map[string]bool
	active     eliza.Lang
	terminated bool
	rng        *rand.Rand
	debug      func(format string, args ...any)
}

// Reply is the outcome of one turn. Lang tags the language the text
// was produced in, so a speech collaborator can pick the right voice.
// Farewell marks the session's final reply.
type Reply struct {
	Text     string
	Lang     eliza.Lang
	Farewell bool
}

// Opt is a functional option for configuring the controller
type Opt func(*Controller) error

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a session controller from the embedded language data.
// Every session starts in English regardless of how any previous
// session ended.
func New(opts ...Opt) (*Controller, error) {
	languages, err := lang.Load()
	if err != nil {
		return nil, err
	}
	return NewWithLanguages(languages, opts...)
}

// NewWithLanguages creates a session controller over the given language
// tables, validating them and compiling one engine per language
func NewWithLanguages(languages map[eliza.Lang]*lang.Language, opts ...Opt) (*Controller, error) {
	if len(languages) == 0 {
		return nil, eliza.ErrBadParameter.With("no languages")
	}
	if _, ok := languages[eliza.LangEN]; !ok {
		return nil, eliza.ErrBadParameter.With("default language en is required")
	}

	c := &Controller{
		languages: languages,
		active:    eliza.LangEN,
		quits:     make(map[string]bool),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	// One engine per language, sharing the controller's random source
	c.engines = make(map[eliza.Lang]*engine.Engine, len(languages))
	for code, l := range languages {
		e, err := engine.New(l, engine.WithRand(c.rng))
		if err != nil {
			return nil, err
		}
		c.engines[code] = e
	}

	// A quit word in either language ends the session
	for _, l := range languages {
		for _, q := range l.Quits {
			c.quits[q] = true
		}
	}

	// Swedish markers take precedence over English ones
	ordered := make([]*lang.Language, 0, len(languages))
	if sv, ok := languages[eliza.LangSV]; ok {
		ordered = append(ordered, sv)
	}
	ordered = append(ordered, languages[eliza.LangEN])
	c.detector = detect.New(ordered...)

	return c, nil
}

// WithSeed sets a specific random seed for reproducible replies
func WithSeed(seed int64) Opt {
	return func(c *Controller) error {
		c.rng = rand.New(rand.NewSource(seed))
		return nil
	}
}

// WithRand sets the random source used for template and farewell choice
func WithRand(rng *rand.Rand) Opt {
	return func(c *Controller) error {
		c.rng = rng
		return nil
	}
}

// WithLanguage sets the starting language for this session, overriding
// the English default
func WithLanguage(code eliza.Lang) Opt {
	return func(c *Controller) error {
		if _, ok := c.languages[code]; !ok {
			return eliza.ErrNotFound.Withf("language %q", code)
		}
		c.active = code
		return nil
	}
}

// WithDebug sets a trace function for turn decisions
func WithDebug(fn func(format string, args ...any)) Opt {
	return func(c *Controller) error {
		c.debug = fn
		return nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Active returns the current session language
func (c *Controller) Active() eliza.Lang {
	return c.active
}

// Terminated returns true once a quit word has ended the session
func (c *Controller) Terminated() bool {
	return c.terminated
}

// Languages returns the language tables the controller was built over
func (c *Controller) Languages() map[eliza.Lang]*lang.Language {
	return c.languages
}

// Reset starts a fresh session: active language back to English,
// terminated cleared
func (c *Controller) Reset() {
	c.active = eliza.LangEN
	c.terminated = false
}

// Turn processes one line of input and produces at most one reply.
// Quit detection runs first, then language detection (a strong signal
// switches the language for this same turn), then the response engine.
// Empty input is a no-op returning a nil reply. Turns after
// termination return ErrTerminated.
func (c *Controller) Turn(input string) (*Reply, error) {
	if c.terminated {
		return nil, eliza.ErrTerminated.With("no further turns accepted")
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}

	// A quit word anywhere in the input halts the turn immediately,
	// before language detection or response generation
	for _, word := range engine.Tokenize(input) {
		if c.quits[word] {
			c.terminated = true
			farewells := c.languages[c.active].Farewells
			c.debugf("quit word %q, farewell in %s", word, c.active)
			return &Reply{
				Text:     engine.Format(farewells[c.rng.Intn(len(farewells))]),
				Lang:     c.active,
				Farewell: true,
			}, nil
		}
	}

	// Strong language signals switch the active language before the
	// response is generated; neutral input leaves it untouched
	if code := c.detector.Detect(input); code != eliza.LangNone && code != c.active {
		c.debugf("language switch %s -> %s", c.active, code)
		c.active = code
	}

	return &Reply{
		Text: engine.Format(c.engines[c.active].Respond(input)),
		Lang: c.active,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (c *Controller) debugf(format string, args ...any) {
	if c.debug != nil {
		c.debug(format, args...)
	}
}
