package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/aurora/internal/services"
)

type habitCompletionInput struct {
	Notes string `json:"notes" form:"notes"`
}

func (handler *Handler) ListHabits(c *fiber.Ctx) error {
	handler.ensureDependencies()
	habits, err := handler.habitService.ListActive(currentSession(c))
	if err != nil {
		return handler.respondServiceError(c, "list_habits", err)
	}
	return c.JSON(habits)
}

func (handler *Handler) CreateHabit(c *fiber.Ctx) error {
	input := services.HabitInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	habit, err := handler.habitService.Create(currentSession(c), input, handler.now())
	if err != nil {
		return handler.respondServiceError(c, "create_habit", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"habit":  habit,
		"notice": translate(c, "notice.habit_created"),
	})
}

func (handler *Handler) DeleteHabit(c *fiber.Ctx) error {
	habitID, ok := parseIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	if err := handler.habitService.Deactivate(currentSession(c), habitID); err != nil {
		return handler.respondServiceError(c, "delete_habit", err)
	}
	return c.JSON(fiber.Map{"ok": true, "notice": translate(c, "notice.habit_removed")})
}

func (handler *Handler) CompleteHabit(c *fiber.Ctx) error {
	habitID, ok := parseIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	input := habitCompletionInput{}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid input")
		}
	}

	handler.ensureDependencies()
	profile, err := handler.habitService.Complete(currentSession(c), habitID, input.Notes, handler.now(), handler.location)
	if err != nil {
		return handler.respondServiceError(c, "complete_habit", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"current_streak":         profile.CurrentStreak,
		"longest_streak":         profile.LongestStreak,
		"total_habits_completed": profile.TotalHabitsCompleted,
		"notice":                 translate(c, "notice.habit_completed", profile.CurrentStreak),
	})
}
