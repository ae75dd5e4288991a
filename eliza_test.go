package eliza_test

import (
	"testing"

	// Packages
	eliza "github.com/dialogik/go-eliza"
	assert "github.com/stretchr/testify/assert"
)

func TestLang(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("en", eliza.LangEN.String())
	assert.Equal("sv", eliza.LangSV.String())
	assert.Equal("English", eliza.LangEN.Name())
	assert.Equal("Swedish", eliza.LangSV.Name())

	assert.True(eliza.LangEN.IsValid())
	assert.True(eliza.LangSV.IsValid())
	assert.False(eliza.LangNone.IsValid())
	assert.False(eliza.Lang("fr").IsValid())
}

func TestErr(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("not found", eliza.ErrNotFound.Error())
	assert.Equal("session terminated", eliza.ErrTerminated.Error())

	err := eliza.ErrBadParameter.With("missing language")
	assert.ErrorIs(err, eliza.ErrBadParameter)
	assert.Contains(err.Error(), "missing language")

	err = eliza.ErrNotFound.Withf("language %q", "fr")
	assert.ErrorIs(err, eliza.ErrNotFound)
	assert.Contains(err.Error(), `"fr"`)
}
