package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("at position 4", From("at position %d", 4))
	assert.Equal("plain", From("plain"))
}

func TestUse(t *testing.T) {
	assert := assert.New(t)

	defer Use(locales()...)

	table := [][]string{
		nil,
		{"not a locale!"},
		{"fr-FR", "en-US"},
	}

	for _, tags := range table {
		Use(tags...)
		assert.Equal("plain", From("plain"), "%v", tags)
		assert.Equal("at position 4", From("at position %d", 4), "%v", tags)
	}
}

func TestValid(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]string{LOCALE_FALLBACK}, valid(nil))
	assert.Equal([]string{LOCALE_FALLBACK}, valid([]string{"not a locale!"}))
	assert.Equal([]string{"fr-FR", "en-US"}, valid([]string{"fr-FR", "??", "en-US"}))
}

func TestLocales(t *testing.T) {
	assert := assert.New(t)

	t.Setenv(LOCALE_ENV, " de-DE, ,en-GB")
	assert.Equal([]string{"de-DE", "en-GB"}, locales())

	t.Setenv(LOCALE_ENV, "")
	assert.Empty(locales())
}
