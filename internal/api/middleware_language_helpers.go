package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/aurora/internal/i18n"
)

type localizer struct {
	manager  *i18n.Manager
	language string
}

func (handler *Handler) LanguageMiddleware(c *fiber.Ctx) error {
	cookieLanguage := c.Cookies(languageCookieName)
	language := handler.i18n.DetectFromAcceptLanguage(c.Get("Accept-Language"))
	if cookieLanguage != "" {
		language = handler.i18n.NormalizeLanguage(cookieLanguage)
	}

	if cookieLanguage != "" && cookieLanguage != language {
		handler.setLanguageCookie(c, language)
	}

	c.Locals(contextLanguageKey, language)
	c.Locals(contextLocalizerKey, localizer{manager: handler.i18n, language: language})
	return c.Next()
}

func (handler *Handler) setLanguageCookie(c *fiber.Ctx, language string) {
	c.Cookie(&fiber.Cookie{
		Name:     languageCookieName,
		Value:    handler.i18n.NormalizeLanguage(language),
		Path:     "/",
		HTTPOnly: false,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().AddDate(1, 0, 0),
	})
}

func currentLanguage(c *fiber.Ctx) string {
	language, _ := c.Locals(contextLanguageKey).(string)
	return language
}

// translate falls back to the key when the language middleware did not run.
func translate(c *fiber.Ctx, key string, args ...any) string {
	current, ok := c.Locals(contextLocalizerKey).(localizer)
	if !ok || current.manager == nil {
		return key
	}
	if len(args) == 0 {
		return current.manager.Translate(current.language, key)
	}
	return current.manager.Translatef(current.language, key, args...)
}
