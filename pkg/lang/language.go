/*
lang holds the static per-language data consumed by the engine: the
ordered pattern rules, the reflection map, quit words, farewell phrases
and the detection markers. The data is embedded as JSON and validated
at load time; it is never mutated at runtime.
*/
package lang

import (
	"embed"
	"encoding/json"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	// Packages
	eliza "github.com/dialogik/go-eliza"
)

//go:embed lang/*.json
var langFS embed.FS

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Language defines all the text data for one ELIZA language
type Language struct {
	Code        eliza.Lang        `json:"code"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Fallback    string            `json:"fallback"`
	Quits       []string          `json:"quits"`
	Farewells   []string          `json:"farewells"`
	Reflections map[string]string `json:"reflections"`
	Detection   Detection         `json:"detection"`
	Rules       []Rule            `json:"rules"`
}

// Rule defines a pattern-matching rule with its response templates.
// Templates may contain {0}, {1}, ... placeholders which refer to the
// pattern's capture groups, in order of participation in the match.
type Rule struct {
	Pattern   string   `json:"pattern"`
	Responses []string `json:"responses"`
}

// Detection holds the strong-marker data used by the language detector
type Detection struct {
	// Letters are language-specific characters whose presence anywhere
	// in the input is a strong signal (empty for English)
	Letters string `json:"letters"`

	// StartWords are sentinel words; input whose first word token is one
	// of these carries a strong signal
	StartWords []string `json:"startWords"`

	// SwitchPhrases are phrase-level mentions requesting this language
	SwitchPhrases []string `json:"switchPhrases"`

	// Aliases are the codes and names accepted by the explicit
	// /lang command
	Aliases []string `json:"aliases"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

var placeholderRe = regexp.MustCompile(`\{(\d+)\}`)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Load reads all embedded lang/*.json files, validates them, and returns
// them keyed by language code
func Load() (map[eliza.Lang]*Language, error) {
	entries, err := langFS.ReadDir("lang")
	if err != nil {
		return nil, err
	}

	languages := make(map[eliza.Lang]*Language, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := langFS.ReadFile(filepath.Join("lang", entry.Name()))
		if err != nil {
			return nil, err
		}
		var lang Language
		if err := json.Unmarshal(data, &lang); err != nil {
			return nil, eliza.ErrBadParameter.Withf("%s: %v", entry.Name(), err)
		}
		if err := lang.Validate(); err != nil {
			return nil, err
		}
		languages[lang.Code] = &lang
	}

	return languages, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Validate checks the closed invariants of the rule table: every rule
// compiles, has at least one response, and no template references a
// placeholder beyond the pattern's capture-group count. A violation is
// a construction error, not a runtime condition.
func (l *Language) Validate() error {
	if !l.Code.IsValid() {
		return eliza.ErrBadParameter.Withf("unknown language code %q", l.Code)
	}
	if len(l.Rules) == 0 {
		return eliza.ErrBadParameter.Withf("%s: no rules", l.Code)
	}
	for i, rule := range l.Rules {
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return eliza.ErrBadParameter.Withf("%s: rule %d: %v", l.Code, i, err)
		}
		if len(rule.Responses) == 0 {
			return eliza.ErrBadParameter.Withf("%s: rule %d (%q): no responses", l.Code, i, rule.Pattern)
		}
		for _, response := range rule.Responses {
			if max := maxPlaceholder(response); max >= re.NumSubexp() {
				return eliza.ErrBadParameter.Withf("%s: rule %d (%q): template %q references capture %d of %d", l.Code, i, rule.Pattern, response, max, re.NumSubexp())
			}
		}
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// maxPlaceholder returns the highest {N} index in the template, or -1
// if the template has no placeholders
func maxPlaceholder(template string) int {
	max := -1
	for _, m := range placeholderRe.FindAllStringSubmatch(template, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil && n > max {
			max = n
		}
	}
	return max
}
