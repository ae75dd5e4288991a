package engine

import (
	"reflect"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"hello", "Hello."},
		{"hello!", "Hello!"},
		{"what do you mean?", "What do you mean?"},
		{"already done.", "Already done."},
		{"  spaced out  ", "Spaced out."},
		{"återseende", "Återseende."},
		{"how does that make you feel?", "How does that make you feel?"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Format(tt.input); got != tt.want {
			t.Errorf("Format(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatIdempotent(t *testing.T) {
	inputs := []string{
		"hello",
		"Hello.",
		"what?",
		"Hejdå!",
		"på återseende, hoppas allt går bra för dig!",
		"I see. And what does that tell you?",
	}

	for _, input := range inputs {
		once := Format(input)
		if twice := Format(once); twice != once {
			t.Errorf("Format not idempotent on %q: %q != %q", input, twice, once)
		}
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"Hello, World!", []string{"hello", "world"}},
		{"don't stop", []string{"don't", "stop"}},
		{"Jag är trött.", []string{"jag", "är", "trött"}},
		{"bye why not", []string{"bye", "why", "not"}},
		{"", nil},
		{"?!.", nil},
	}

	for _, tt := range tests {
		if got := Tokenize(tt.input); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
