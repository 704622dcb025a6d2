package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/aurora/internal/db"
	"github.com/terraincognita07/aurora/internal/models"
)

type trailAdvanceResponse struct {
	Progress models.TrailProgress `json:"progress"`
	Award    *db.XPAward          `json:"award,omitempty"`
	Notices  []string             `json:"notices"`
}

func (handler *Handler) ListTrails(c *fiber.Ctx) error {
	handler.ensureDependencies()
	trails, err := handler.trailService.Catalog(currentSession(c))
	if err != nil {
		return handler.respondServiceError(c, "list_trails", err)
	}
	return c.JSON(trails)
}

func (handler *Handler) StartTrail(c *fiber.Ctx) error {
	trailID, ok := parseIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	progress, err := handler.trailService.Start(currentSession(c), trailID, handler.now())
	if err != nil {
		return handler.respondServiceError(c, "start_trail", err)
	}
	return c.JSON(fiber.Map{"progress": progress, "notice": translate(c, "notice.trail_started")})
}

func (handler *Handler) AdvanceTrail(c *fiber.Ctx) error {
	trailID, ok := parseIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	result, err := handler.trailService.Advance(currentSession(c), trailID, handler.now())
	if err != nil {
		return handler.respondServiceError(c, "advance_trail", err)
	}

	response := trailAdvanceResponse{Progress: result.Progress, Award: result.Award}
	if result.Award != nil {
		response.Notices = awardNotices(c, result.Award, "notice.trail_completed")
	} else {
		response.Notices = []string{translate(c, "notice.trail_advanced")}
	}
	return c.JSON(response)
}

func (handler *Handler) ListAchievements(c *fiber.Ctx) error {
	handler.ensureDependencies()
	achievements, err := handler.achievementService.List(currentSession(c))
	if err != nil {
		return handler.respondServiceError(c, "list_achievements", err)
	}
	return c.JSON(achievements)
}
