package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/aurora/internal/services"
)

const maxDiaryListLimit = 100

func (handler *Handler) CreateDiaryEntry(c *fiber.Ctx) error {
	input := services.DiaryInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	entry, err := handler.diaryService.Submit(c.UserContext(), currentSession(c), input, handler.now())
	if err != nil {
		return handler.respondServiceError(c, "create_diary_entry", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"entry":  entry,
		"notice": translate(c, "notice.diary_saved"),
	})
}

func (handler *Handler) ListDiaryEntries(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	if limit > maxDiaryListLimit {
		limit = maxDiaryListLimit
	}

	handler.ensureDependencies()
	entries, err := handler.diaryService.ListRecent(currentSession(c), limit)
	if err != nil {
		return handler.respondServiceError(c, "list_diary_entries", err)
	}
	return c.JSON(entries)
}
