/*
eliza implements a bilingual rule-based conversational engine in the
style of the classic ELIZA program created by Joseph Weizenbaum at MIT
in 1966. It matches user input against ordered pattern tables, reflects
captured fragments back at the speaker, and switches between English
and Swedish on strong language cues. The engine is pure text in, text
out; speech capture and synthesis are external adapters behind the
interfaces in pkg/speech.
*/
package eliza

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Lang identifies a supported conversation language by its two-letter code
type Lang string

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// LangNone indicates no strong language signal
	LangNone Lang = ""

	// LangEN is English, the default session language
	LangEN Lang = "en"

	// LangSV is Swedish
	LangSV Lang = "sv"
)

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// String returns the two-letter language tag
func (l Lang) String() string {
	return string(l)
}

// Name returns the language's English display name
func (l Lang) Name() string {
	switch l {
	case LangEN:
		return "English"
	case LangSV:
		return "Swedish"
	}
	return "none"
}

// IsValid returns true if the language is one of the supported codes
func (l Lang) IsValid() bool {
	return l == LangEN || l == LangSV
}
