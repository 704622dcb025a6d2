package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/aurora/internal/db"
	"github.com/terraincognita07/aurora/internal/models"
	"github.com/terraincognita07/aurora/internal/services"
)

type taskToggleResponse struct {
	Task    models.DailyTask        `json:"task"`
	Award   *db.XPAward             `json:"award,omitempty"`
	Stats   services.DashboardStats `json:"stats"`
	Notices []string                `json:"notices"`
}

func (handler *Handler) GetStatsOverview(c *fiber.Ctx) error {
	handler.ensureDependencies()
	return c.JSON(handler.statsService.BuildDashboardStats(currentSession(c), handler.now(), handler.location))
}

func (handler *Handler) ListTodayTasks(c *fiber.Ctx) error {
	handler.ensureDependencies()
	tasks, err := handler.taskService.ListToday(currentSession(c), handler.now(), handler.location)
	if err != nil {
		return handler.respondServiceError(c, "list_tasks", err)
	}
	return c.JSON(tasks)
}

func (handler *Handler) ToggleTask(c *fiber.Ctx) error {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	session := currentSession(c)
	now := handler.now()
	result, err := handler.taskService.Toggle(session, taskID, now)
	if err != nil {
		return handler.respondServiceError(c, "toggle_task", err)
	}

	notices := awardNotices(c, result.Award, "notice.task_completed")
	if !result.Task.Completed {
		notices = append(notices, translate(c, "notice.task_reopened"))
	}
	return c.JSON(taskToggleResponse{
		Task:    result.Task,
		Award:   result.Award,
		Stats:   handler.statsService.BuildDashboardStats(session.WithAward(result.Award), now, handler.location),
		Notices: notices,
	})
}

func (handler *Handler) GenerateTasks(c *fiber.Ctx) error {
	handler.ensureDependencies()
	tasks, err := handler.taskService.GenerateForToday(c.UserContext(), currentSession(c), handler.now(), handler.location)
	if err != nil {
		return handler.respondServiceError(c, "generate_tasks", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"tasks":  tasks,
		"notice": translate(c, "notice.tasks_generated", len(tasks)),
	})
}

// awardNotices describes an XP award, one notice per level reached.
func awardNotices(c *fiber.Ctx, award *db.XPAward, completedKey string) []string {
	notices := make([]string, 0)
	if award == nil {
		return notices
	}
	notices = append(notices, translate(c, completedKey, award.Amount))
	for _, level := range award.LevelsReached {
		notices = append(notices, translate(c, "notice.level_up", level))
	}
	return notices
}
