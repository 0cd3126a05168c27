//go:build !integration

package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetTranslator_Shared(t *testing.T) {
	assert.Same(t, GetTranslator(), GetTranslator())
}

func TestTranslator_Translate(t *testing.T) {
	tr := NewTranslator()

	tests := []struct {
		name   string
		key    string
		locale string
		want   string
	}{
		{name: "english", key: ErrKeyInvalidServings, locale: "en", want: "Servings must be greater than zero"},
		{name: "portuguese", key: ErrKeyInvalidCredentials, locale: "pt", want: "Email ou senha inválidos"},
		{name: "dutch", key: ErrKeyInvalidCredentials, locale: "nl", want: "Ongeldig e-mailadres of wachtwoord"},
		{name: "unsupported locale", key: ErrKeyNotFound, locale: "fr", want: "Not found"},
		{name: "empty locale", key: ErrKeyNotFound, locale: "", want: "Not found"},
		{name: "unknown key", key: "error.nope", locale: "pt", want: "error.nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.Translate(tt.key, tt.locale))
		})
	}
}

func TestNegotiate(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"", "en"},
		{"en-US,en;q=0.9", "en"},
		{"pt-BR", "pt"},
		{"nl-BE,nl;q=0.9", "nl"},
		{"fr-FR, nl;q=0.5", "nl"},
		{"de, pt;q=0.2", "pt"},
		{"fr", "en"},
		{";;;", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, Negotiate(tt.header))
		})
	}
}

func TestGetLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/api/units", nil)
	c.Request.Header.Set(AcceptLanguageHeader, "pt-PT,pt;q=0.9,en;q=0.8")

	assert.Equal(t, "pt", GetLocale(c))
}

func TestCatalog_EveryLocaleHasEveryKey(t *testing.T) {
	messages := catalog()
	assert.Len(t, messages, len(locales))

	for _, locale := range locales {
		for key := range messages[DefaultLocale] {
			assert.NotEmpty(t, messages[locale][key], "%s is missing %s", locale, key)
		}
	}
}

func TestKeys_AreTranslated(t *testing.T) {
	keys := []string{
		ErrKeyInvalidRequest, ErrKeyInvalidRequestBody, ErrKeyInternalError, ErrKeyUnauthorized,
		ErrKeyInvalidCredentials, ErrKeyAPIKeyRequired, ErrKeyInvalidAPIKey, ErrKeyForbidden,
		ErrKeyNotFound, ErrKeyRateLimitExceeded, ErrKeyConflict, ErrKeyValidationFailed,
		ErrKeyInvalidID, ErrKeyInvalidServings, ErrKeyServiceUnavailable, ErrKeyInvalidToken,
		ErrKeyTokenRequired, ErrKeyTimeout,
	}
	tr := NewTranslator()
	for _, key := range keys {
		assert.NotEqual(t, key, tr.Translate(key, DefaultLocale))
	}
}
