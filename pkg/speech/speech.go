/*
speech defines the boundary to the speech collaborators: a Transcriber
turns captured audio into a line of text and a Synthesizer speaks a
reply in the language it was produced in. The dialogue core never
touches audio; it exchanges plain text with these interfaces. The
package ships a Writer synthesizer for terminal use and a Null one for
tests; real microphone and TTS adapters live outside this module.
*/
package speech

import (
	"context"
	"fmt"
	"io"

	// Packages
	eliza "github.com/dialogik/go-eliza"
)

///////////////////////////////////////////////////////////////////////////////
// INTERFACES

// Transcriber converts captured audio into a single line of text.
// The language hint selects the recognition model or vocabulary.
type Transcriber interface {
	Transcribe(ctx context.Context, audio io.Reader, code eliza.Lang) (string, error)
}

// Synthesizer speaks a reply. The language tag selects voice and
// pronunciation; implementations block until playback completes so
// turns stay strictly sequential.
type Synthesizer interface {
	Speak(ctx context.Context, text string, code eliza.Lang) error
}

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Voice is a per-language voice preference, passed to adapters at
// construction rather than held in process-wide state
type Voice struct {
	Name   string  `yaml:"name"`   // preferred voice name substring
	Rate   int     `yaml:"rate"`   // words per minute, 0 for the adapter default
	Volume float64 `yaml:"volume"` // 0.0 to 1.0, 0 for the adapter default
}

// Config carries the voice preferences for all languages
type Config struct {
	Voices map[eliza.Lang]Voice `yaml:"voices"`
}

type writer struct {
	w      io.Writer
	voices map[eliza.Lang]Voice
}

type null struct{}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewWriter returns a synthesizer that writes what it would speak,
// tagged with the language code and the configured voice for that
// language
func NewWriter(w io.Writer, cfg Config) Synthesizer {
	return &writer{w: w, voices: cfg.Voices}
}

// Null returns a synthesizer that discards everything
func Null() Synthesizer {
	return null{}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (s *writer) Speak(ctx context.Context, text string, code eliza.Lang) error {
	if voice, ok := s.voices[code]; ok && voice.Name != "" {
		_, err := fmt.Fprintf(s.w, "[%s:%s] %s\n", code, voice.Name, text)
		return err
	}
	_, err := fmt.Fprintf(s.w, "[%s] %s\n", code, text)
	return err
}

func (null) Speak(context.Context, string, eliza.Lang) error {
	return nil
}
