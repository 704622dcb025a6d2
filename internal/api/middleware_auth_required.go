package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/aurora/internal/services"
)

const (
	apiLogoutPath           = "/api/auth/logout"
	apiOnboardingPathPrefix = "/api/onboarding"
)

// AuthRequired guards JSON endpoints. Missing sessions get 401 and profiles
// that have not finished onboarding get 403 outside the onboarding endpoints.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	c.Locals(contextUserKey, user)
	session := services.NewSession(*user)
	if session.OnboardingRequired() && !onboardingExemptAPIPath(c.Path()) {
		return apiError(c, fiber.StatusForbidden, "onboarding required")
	}

	return c.Next()
}

// SessionGate guards page routes with the login and onboarding redirects.
func (handler *Handler) SessionGate(c *fiber.Ctx) error {
	var session *services.Session
	user, err := handler.authenticateRequest(c)
	switch {
	case err == nil:
		current := services.NewSession(*user)
		session = &current
		c.Locals(contextUserKey, user)
	case !errors.Is(err, errMissingAuthCookie):
		handler.clearAuthCookie(c)
	}

	decision := services.DecideSessionGate(session, c.Path())
	if !decision.Allowed() {
		return c.Redirect(decision.Location, fiber.StatusSeeOther)
	}
	return c.Next()
}

func onboardingExemptAPIPath(path string) bool {
	cleanPath := strings.TrimSpace(path)
	return cleanPath == apiLogoutPath ||
		cleanPath == apiOnboardingPathPrefix ||
		strings.HasPrefix(cleanPath, apiOnboardingPathPrefix+"/")
}
