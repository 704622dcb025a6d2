package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/aurora/internal/services"
	"go.uber.org/zap"
)

type serviceErrorMapping struct {
	err    error
	status int
	code   string
}

var serviceErrorMappings = []serviceErrorMapping{
	{err: services.ErrAuthCredentialsInvalid, status: fiber.StatusUnauthorized, code: "invalid credentials"},
	{err: services.ErrAuthEmailTaken, status: fiber.StatusConflict, code: "email already exists"},
	{err: services.ErrAuthProfileNotFound, status: fiber.StatusNotFound, code: "profile not found"},
	{err: services.ErrWeakPassword, status: fiber.StatusBadRequest, code: "weak password"},
	{err: services.ErrDiaryMoodInvalid, status: fiber.StatusBadRequest, code: "diary mood invalid"},
	{err: services.ErrDiaryNotesRequired, status: fiber.StatusBadRequest, code: "diary notes required"},
	{err: services.ErrDiaryEnergyInvalid, status: fiber.StatusBadRequest, code: "diary energy invalid"},
	{err: services.ErrDiaryStressInvalid, status: fiber.StatusBadRequest, code: "diary stress invalid"},
	{err: services.ErrDiaryEmotionInvalid, status: fiber.StatusBadRequest, code: "diary emotion invalid"},
	{err: services.ErrOnboardingGoalsRequired, status: fiber.StatusBadRequest, code: "onboarding goals required"},
	{err: services.ErrOnboardingStressInvalid, status: fiber.StatusBadRequest, code: "onboarding stress invalid"},
	{err: services.ErrOnboardingSleepInvalid, status: fiber.StatusBadRequest, code: "onboarding sleep invalid"},
	{err: services.ErrOnboardingAlreadyCompleted, status: fiber.StatusConflict, code: "onboarding already completed"},
	{err: services.ErrChatMessageRequired, status: fiber.StatusBadRequest, code: "chat message required"},
	{err: services.ErrChatMessageTooLong, status: fiber.StatusBadRequest, code: "chat message too long"},
	{err: services.ErrTaskNotFound, status: fiber.StatusNotFound, code: "task not found"},
	{err: services.ErrHabitNotFound, status: fiber.StatusNotFound, code: "habit not found"},
	{err: services.ErrHabitTitleRequired, status: fiber.StatusBadRequest, code: "habit title required"},
	{err: services.ErrHabitCategoryInvalid, status: fiber.StatusBadRequest, code: "habit category invalid"},
	{err: services.ErrHabitFrequencyInvalid, status: fiber.StatusBadRequest, code: "habit frequency invalid"},
	{err: services.ErrHabitTargetCountTooLow, status: fiber.StatusBadRequest, code: "habit target invalid"},
	{err: services.ErrTrailNotFound, status: fiber.StatusNotFound, code: "trail not found"},
	{err: services.ErrTrailNotStarted, status: fiber.StatusConflict, code: "trail not started"},
}

// respondServiceError maps known service errors to their status and logs
// everything else as an internal failure of operation.
func (handler *Handler) respondServiceError(c *fiber.Ctx, operation string, err error) error {
	for _, mapping := range serviceErrorMappings {
		if errors.Is(err, mapping.err) {
			return apiError(c, mapping.status, mapping.code)
		}
	}

	fields := []zap.Field{zap.String("operation", operation), zap.Error(err)}
	if user, ok := currentUser(c); ok {
		fields = append(fields, zap.Uint("user_id", user.ID))
	}
	handler.logger.Error("request failed", fields...)
	return apiError(c, fiber.StatusInternalServerError, "internal")
}
