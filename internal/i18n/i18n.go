// Package i18n translates user-facing error messages into the caller's
// language, chosen from the Accept-Language header.
package i18n

import (
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

const (
	// DefaultLocale answers requests whose languages are all unsupported.
	DefaultLocale = "en"
	// AcceptLanguageHeader is the request header GetLocale reads.
	AcceptLanguageHeader = "Accept-Language"
)

// locales lists the supported locales; the first is the fallback the matcher uses.
var (
	locales = []string{DefaultLocale, "pt", "nl"}
	matcher = language.NewMatcher([]language.Tag{language.English, language.Portuguese, language.Dutch})
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator looks up messages by key and locale.
type Translator struct {
	messages map[string]map[string]string
}

func NewTranslator() *Translator {
	return &Translator{messages: catalog()}
}

// GetTranslator returns the shared translator.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the message for key in locale, falling back to the
// default locale and then to the key itself.
func (t *Translator) Translate(key, locale string) string {
	if msg, ok := t.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// GetLocale picks the supported locale that best matches the request's Accept-Language.
func GetLocale(c *gin.Context) string {
	return Negotiate(c.GetHeader(AcceptLanguageHeader))
}

// Negotiate matches an Accept-Language value, quality weights included,
// against the supported locales.
func Negotiate(acceptLanguage string) string {
	if acceptLanguage == "" {
		return DefaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultLocale
	}
	return locales[index]
}

// catalog holds every message, by locale then key.
func catalog() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			"error.invalid_request":      "Invalid request",
			"error.invalid_request_body": "Invalid request body",
			"error.internal_error":       "An unexpected error occurred",
			"error.unauthorized":         "Unauthorized",
			"error.invalid_credentials":  "Invalid email or password",
			"error.api_key_required":     "API key is required",
			"error.invalid_api_key":      "Invalid API key",
			"error.forbidden":            "Forbidden",
			"error.not_found":            "Not found",
			"error.rate_limit_exceeded":  "Too many requests, please try again later",
			"error.conflict":             "Conflict",
			"error.validation_failed":    "Validation failed",
			"error.invalid_id":           "Invalid id",
			"error.invalid_servings":     "Servings must be greater than zero",
			"error.service_unavailable":  "Service temporarily unavailable",
			"error.timeout":              "Request timed out",
			"error.invalid_token":        "Invalid or expired token",
			"error.token_required":       "Authentication token is required",
		},
		"pt": {
			"error.invalid_request":      "Requisição inválida",
			"error.invalid_request_body": "Corpo da requisição inválido",
			"error.internal_error":       "Ocorreu um erro inesperado",
			"error.unauthorized":         "Não autorizado",
			"error.invalid_credentials":  "Email ou senha inválidos",
			"error.api_key_required":     "Chave de API é obrigatória",
			"error.invalid_api_key":      "Chave de API inválida",
			"error.forbidden":            "Proibido",
			"error.not_found":            "Não encontrado",
			"error.rate_limit_exceeded":  "Muitas requisições, tente novamente mais tarde",
			"error.conflict":             "Conflito",
			"error.validation_failed":    "Falha na validação",
			"error.invalid_id":           "Identificador inválido",
			"error.invalid_servings":     "O número de porções deve ser maior que zero",
			"error.service_unavailable":  "Serviço temporariamente indisponível",
			"error.timeout":              "Tempo limite da requisição esgotado",
			"error.invalid_token":        "Token inválido ou expirado",
			"error.token_required":       "Token de autenticação é obrigatório",
		},
		"nl": {
			"error.invalid_request":      "Ongeldig verzoek",
			"error.invalid_request_body": "Ongeldige aanvraag body",
			"error.internal_error":       "Er is een onverwachte fout opgetreden",
			"error.unauthorized":         "Niet geautoriseerd",
			"error.invalid_credentials":  "Ongeldig e-mailadres of wachtwoord",
			"error.api_key_required":     "API-sleutel is vereist",
			"error.invalid_api_key":      "Ongeldige API-sleutel",
			"error.forbidden":            "Verboden",
			"error.not_found":            "Niet gevonden",
			"error.rate_limit_exceeded":  "Te veel verzoeken, probeer het later opnieuw",
			"error.conflict":             "Conflict",
			"error.validation_failed":    "Validatie mislukt",
			"error.invalid_id":           "Ongeldige id",
			"error.invalid_servings":     "Aantal porties moet groter dan nul zijn",
			"error.service_unavailable":  "Dienst tijdelijk niet beschikbaar",
			"error.timeout":              "Verzoek is verlopen",
			"error.invalid_token":        "Ongeldig of verlopen token",
			"error.token_required":       "Authenticatietoken is vereist",
		},
	}
}
