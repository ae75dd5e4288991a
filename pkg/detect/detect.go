/*
detect classifies an input line as carrying a strong signal for one of
the supported languages, or no signal at all. The decision is a
priority chain: an explicit language-switch command wins outright, then
Swedish strong markers, then English ones. Neutral input yields no
signal so the caller's active language stays put (the sticky policy).
*/
package detect

import (
	"regexp"
	"strings"

	// Packages
	eliza "github.com/dialogik/go-eliza"
	lang "github.com/dialogik/go-eliza/pkg/lang"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Detector holds the per-language marker data, compiled once
type Detector struct {
	markers []*markers
	aliases map[string]eliza.Lang
}

// markers is the compiled detection data for one language, checked in
// the order the languages were given to New
type markers struct {
	code    eliza.Lang
	letters string
	starts  map[string]bool
	phrases *regexp.Regexp
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a detector. Languages are checked for strong markers in
// the order given, so the non-default language should come first.
func New(languages ...*lang.Language) *Detector {
	d := &Detector{
		aliases: make(map[string]eliza.Lang),
	}
	for _, l := range languages {
		m := &markers{
			code:    l.Code,
			letters: l.Detection.Letters,
			starts:  make(map[string]bool, len(l.Detection.StartWords)),
		}
		for _, w := range l.Detection.StartWords {
			m.starts[w] = true
		}
		if len(l.Detection.SwitchPhrases) > 0 {
			quoted := make([]string, 0, len(l.Detection.SwitchPhrases))
			for _, p := range l.Detection.SwitchPhrases {
				quoted = append(quoted, regexp.QuoteMeta(strings.ToLower(p)))
			}
			m.phrases = regexp.MustCompile(`\b(?:` + strings.Join(quoted, `|`) + `)\b`)
		}
		for _, a := range l.Detection.Aliases {
			d.aliases[strings.ToLower(a)] = l.Code
		}
		d.markers = append(d.markers, m)
	}
	return d
}

// switchRe matches phrase-level switch requests ("switch to swedish",
// "byta till engelska") anywhere in the line; the named language is
// resolved against the alias table
var switchRe = regexp.MustCompile(`\b(?:switch to|byta till)\s+([\wåäö]+)`)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Detect returns the language the input carries a strong signal for,
// or LangNone when the input is ambiguous or neutral. An explicit
// command with an unrecognized code also yields LangNone, so the
// sticky policy holds.
func (d *Detector) Detect(input string) eliza.Lang {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return eliza.LangNone
	}

	// Explicit command overrides all other signals
	if code := d.command(input); code != eliza.LangNone {
		return code
	}

	// Strong markers, first language wins
	words := strings.Fields(input)
	for _, m := range d.markers {
		if m.matches(input, words) {
			return m.code
		}
	}

	return eliza.LangNone
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// command parses an explicit "/lang xx" or "/language xx" directive at
// the start of the line, or a phrase-level switch request anywhere in it
func (d *Detector) command(input string) eliza.Lang {
	var arg string
	switch {
	case strings.HasPrefix(input, "/lang "):
		arg = strings.TrimPrefix(input, "/lang ")
	case strings.HasPrefix(input, "/language "):
		arg = strings.TrimPrefix(input, "/language ")
	}
	if fields := strings.Fields(arg); len(fields) > 0 {
		if code, ok := d.aliases[fields[0]]; ok {
			return code
		}
		// Unrecognized code: fall through to the marker checks
		return eliza.LangNone
	}
	if m := switchRe.FindStringSubmatch(input); m != nil {
		if code, ok := d.aliases[m[1]]; ok {
			return code
		}
	}
	return eliza.LangNone
}

func (m *markers) matches(input string, words []string) bool {
	if m.letters != "" && strings.ContainsAny(input, m.letters) {
		return true
	}
	if len(words) > 0 && m.starts[strings.Trim(words[0], ".,!?")] {
		return true
	}
	if m.phrases != nil && m.phrases.MatchString(input) {
		return true
	}
	return false
}
