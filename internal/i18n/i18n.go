package i18n

import (
	"errors"

	"github.com/Domenick1991/alkawthar/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var supported = []language.Tag{language.English, language.Arabic}

var matcher = language.NewMatcher(supported)

// Context holds the presentation preferences that used to be process-wide.
// It is built once from config and copied per request.
type Context struct {
	Locale language.Tag
	Theme  string
}

// NewContext falls back to English for locales without a catalog.
func NewContext(locale, theme string) Context {
	return Context{Locale: Match(locale, language.English), Theme: theme}
}

// Match returns the supported language closest to the Accept-Language style
// value, or fallback when nothing is close.
func Match(value string, fallback language.Tag) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(value)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return fallback
	}
	return supported[index]
}

// WithAcceptLanguage returns a copy localized for the request header.
func (c Context) WithAcceptLanguage(header string) Context {
	if header == "" {
		return c
	}
	c.Locale = Match(header, c.Locale)
	return c
}

func (c Context) IsRTL() bool {
	return c.Locale == language.Arabic
}

func (c Context) Message(key string, args ...any) string {
	return message.NewPrinter(c.Locale).Sprintf(key, args...)
}

// Localize renders validation errors in the context language. Other errors
// keep their raw text.
func (c Context) Localize(err error) string {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return c.Message(ve.Code, ve.Args...)
	}
	return err.Error()
}
