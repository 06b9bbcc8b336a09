package locale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/streamvista/localekit/core/locale"
)

func TestLanguageFromPath(t *testing.T) {
	tests := []struct {
		path string
		lang locale.LanguageCode
		ok   bool
	}{
		{"/fr/search", "fr", true},
		{"/fr", "fr", true},
		{"/FR/search", "fr", true},
		{"/search", "", false},
		{"/", "", false},
		{"", "", false},
		{"/xx/search", "", false},
		{"/english/search", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			lang, ok := locale.LanguageFromPath(tt.path)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.lang, lang)
		})
	}
}

func TestSwitchLanguageInPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		lang locale.LanguageCode
		want string
	}{
		{"replace prefix", "/en/search", "fr", "/fr/search"},
		{"replace prefix keeps sub-path", "/de/titles/123/details", "tr", "/tr/titles/123/details"},
		{"insert prefix", "/search", "fr", "/fr/search"},
		{"bare language", "/en", "de", "/de"},
		{"root", "/", "es", "/es"},
		{"empty", "", "es", "/es"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, locale.SwitchLanguageInPath(tt.path, tt.lang))
		})
	}
}
