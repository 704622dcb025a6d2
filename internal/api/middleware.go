package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/aurora/internal/models"
	"github.com/terraincognita07/aurora/internal/services"
)

const (
	authCookieName      = "aurora_auth"
	languageCookieName  = "aurora_lang"
	flashCookieName     = "aurora_flash"
	contextUserKey      = "current_user"
	contextLanguageKey  = "current_language"
	contextLocalizerKey = "current_localizer"
)

func currentUser(c *fiber.Ctx) (*models.Profile, bool) {
	user, ok := c.Locals(contextUserKey).(*models.Profile)
	return user, ok && user != nil
}

// currentSession must only be called behind AuthRequired or SessionGate.
func currentSession(c *fiber.Ctx) services.Session {
	user, ok := currentUser(c)
	if !ok {
		return services.Session{}
	}
	return services.NewSession(*user)
}
