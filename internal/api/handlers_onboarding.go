package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/aurora/internal/ai"
)

func (handler *Handler) CompleteOnboarding(c *fiber.Ctx) error {
	input := ai.OnboardingData{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	plan, err := handler.onboardingService.Complete(c.UserContext(), currentSession(c), input, handler.now(), handler.location)
	if err != nil {
		return handler.respondServiceError(c, "complete_onboarding", err)
	}
	return c.JSON(fiber.Map{
		"plan":     plan,
		"redirect": "/dashboard",
		"notice":   translate(c, "notice.plan_ready"),
	})
}
