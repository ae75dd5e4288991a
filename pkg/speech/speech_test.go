package speech_test

import (
	"bytes"
	"context"
	"testing"

	// Packages
	eliza "github.com/dialogik/go-eliza"
	speech "github.com/dialogik/go-eliza/pkg/speech"
	assert "github.com/stretchr/testify/assert"
)

func TestWriter(t *testing.T) {
	assert := assert.New(t)
	var buf bytes.Buffer

	synth := speech.NewWriter(&buf, speech.Config{})
	assert.NoError(synth.Speak(context.Background(), "Hejdå!", eliza.LangSV))
	assert.Equal("[sv] Hejdå!\n", buf.String())

	assert.NoError(synth.Speak(context.Background(), "Goodbye!", eliza.LangEN))
	assert.Equal("[sv] Hejdå!\n[en] Goodbye!\n", buf.String())
}

func TestWriterVoices(t *testing.T) {
	assert := assert.New(t)
	var buf bytes.Buffer

	// The configured voice for the reply's language tags the output;
	// languages without a voice fall back to the bare code
	synth := speech.NewWriter(&buf, speech.Config{
		Voices: map[eliza.Lang]speech.Voice{
			eliza.LangSV: {Name: "Alva", Rate: 160},
		},
	})
	assert.NoError(synth.Speak(context.Background(), "Hejdå!", eliza.LangSV))
	assert.Equal("[sv:Alva] Hejdå!\n", buf.String())

	buf.Reset()
	assert.NoError(synth.Speak(context.Background(), "Goodbye!", eliza.LangEN))
	assert.Equal("[en] Goodbye!\n", buf.String())
}

func TestNull(t *testing.T) {
	assert := assert.New(t)
	synth := speech.Null()
	assert.NoError(synth.Speak(context.Background(), "anything", eliza.LangEN))
}
