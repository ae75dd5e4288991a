package engine

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// tokenRe matches word tokens: letters (including the Swedish vowels),
// digits and apostrophes, so possessives keep their marker
var tokenRe = regexp.MustCompile(`[\wåäöÅÄÖ']+`)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Format capitalizes the first rune of the text and appends a period
// unless it already ends in terminal punctuation. It is idempotent on
// well-formed sentences; empty input stays empty.
func Format(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(text)
	text = string(unicode.ToUpper(first)) + text[size:]
	if last, _ := utf8.DecodeLastRuneInString(text); !strings.ContainsRune(".!?", last) {
		text += "."
	}
	return text
}

// Tokenize splits text into lowercase word tokens
func Tokenize(text string) []string {
	return tokenRe.FindAllString(strings.ToLower(text), -1)
}
