/*
engine implements the ELIZA response algorithm: the input line is
matched against the rule table in authored order, the first matching
rule wins, one of its templates is chosen at random, and the captured
fragments of the user's own words are reflected and substituted into
the template's placeholder slots.
*/
package engine

import (
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"

	// Packages
	eliza "github.com/dialogik/go-eliza"
	lang "github.com/dialogik/go-eliza/pkg/lang"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Engine generates replies for one language
type Engine struct {
	lang  *lang.Language
	rules []compiledRule
	rng   *rand.Rand
}

type compiledRule struct {
	pattern   *regexp.Regexp
	responses []string
}

// Opt is a functional option for configuring the engine
type Opt func(*Engine) error

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

var placeholderRe = regexp.MustCompile(`\{(\d+)\}`)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a response engine for the given language data. The rule
// table is compiled case-insensitively; patterns are unanchored, so a
// rule matches anywhere in the input line.
func New(l *lang.Language, opts ...Opt) (*Engine, error) {
	if l == nil {
		return nil, eliza.ErrBadParameter.With("language is required")
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		lang: l,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	// Compile rules
	e.rules = make([]compiledRule, 0, len(l.Rules))
	for _, r := range l.Rules {
		re, err := regexp.Compile(`(?i)` + r.Pattern)
		if err != nil {
			return nil, err
		}
		e.rules = append(e.rules, compiledRule{
			pattern:   re,
			responses: r.Responses,
		})
	}

	return e, nil
}

// WithSeed sets a specific random seed for reproducible template choice
func WithSeed(seed int64) Opt {
	return func(e *Engine) error {
		e.rng = rand.New(rand.NewSource(seed))
		return nil
	}
}

// WithRand sets the random source used for template choice
func WithRand(rng *rand.Rand) Opt {
	return func(e *Engine) error {
		e.rng = rng
		return nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Lang returns the language data the engine was built from
func (e *Engine) Lang() *lang.Language {
	return e.lang
}

// Respond generates one reply for one line of user input. Rules are
// tried strictly in authored order and the first match wins. Empty
// input returns the language's fixed fallback message; because the
// final rule matches any input, so does a (malformed) table with no
// matching rule.
func (e *Engine) Respond(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return e.lang.Fallback
	}

	for _, rule := range e.rules {
		idx := rule.pattern.FindStringSubmatchIndex(input)
		if idx == nil {
			continue
		}

		template := rule.responses[e.rng.Intn(len(rule.responses))]

		// Reflect the capture groups that participated in the match.
		// Alternative groups that did not participate are skipped, so
		// placeholder {0} always refers to the first participating group.
		fills := make([]string, 0, rule.pattern.NumSubexp())
		for i := 1; i <= rule.pattern.NumSubexp(); i++ {
			if idx[2*i] < 0 {
				continue
			}
			fills = append(fills, e.Reflect(input[idx[2*i]:idx[2*i+1]]))
		}

		return expand(template, fills)
	}

	return e.lang.Fallback
}

// Reflect swaps first and second person in a captured fragment. The
// fragment is tokenized into word tokens, lowercased, substituted via
// the language's reflection map (tokens without an entry pass through)
// and joined with single spaces. Original casing, punctuation and
// spacing are discarded.
func (e *Engine) Reflect(fragment string) string {
	words := tokenRe.FindAllString(strings.ToLower(fragment), -1)
	for i, word := range words {
		if reflected, ok := e.lang.Reflections[word]; ok {
			words[i] = reflected
		}
	}
	return strings.Join(words, " ")
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// expand substitutes reflected fragments into the template's {N} slots.
// An index beyond the fill list expands to the empty string; the rule
// table validation makes this unreachable for well-authored tables.
func expand(template string, fills []string) string {
	return placeholderRe.ReplaceAllStringFunc(template, func(m string) string {
		n, err := strconv.Atoi(m[1 : len(m)-1])
		if err != nil || n < 0 || n >= len(fills) {
			return ""
		}
		return fills[n]
	})
}
