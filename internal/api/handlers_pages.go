package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/aurora/internal/models"
	"github.com/terraincognita07/aurora/internal/services"
	"go.uber.org/zap"
)

// pageView is the JSON view model served by every page route.
type pageView struct {
	Page     string          `json:"page"`
	Language string          `json:"language"`
	Flash    *FlashPayload   `json:"flash,omitempty"`
	Profile  *models.Profile `json:"profile,omitempty"`
	Data     any             `json:"data,omitempty"`
}

type dashboardView struct {
	Stats services.DashboardStats `json:"stats"`
	Tasks []models.DailyTask      `json:"tasks"`
}

type diaryView struct {
	Entries  []models.MoodEntry `json:"entries"`
	Moods    []string           `json:"moods"`
	Emotions []string           `json:"emotions"`
}

type onboardingView struct {
	Completed bool `json:"completed"`
}

func (handler *Handler) renderPage(c *fiber.Ctx, page string, data any) error {
	view := pageView{
		Page:     page,
		Language: currentLanguage(c),
		Flash:    handler.popFlashCookie(c),
		Data:     data,
	}
	if user, ok := currentUser(c); ok {
		view.Profile = user
	}
	return c.JSON(view)
}

func (handler *Handler) RedirectHome(c *fiber.Ctx) error {
	return c.Redirect(services.DashboardPath, fiber.StatusSeeOther)
}

func (handler *Handler) ShowLoginPage(c *fiber.Ctx) error {
	return handler.renderPage(c, "login", nil)
}

func (handler *Handler) ShowSignupPage(c *fiber.Ctx) error {
	return handler.renderPage(c, "signup", nil)
}

func (handler *Handler) ShowForgotPasswordPage(c *fiber.Ctx) error {
	return handler.renderPage(c, "forgot_password", nil)
}

func (handler *Handler) ShowDashboard(c *fiber.Ctx) error {
	handler.ensureDependencies()
	session := currentSession(c)
	now := handler.now()

	tasks, err := handler.taskService.ListToday(session, now, handler.location)
	if err != nil {
		handler.logger.Warn("dashboard read failed",
			zap.String("operation", "dashboard_tasks"),
			zap.Uint("user_id", session.UserID()),
			zap.Error(err),
		)
		tasks = []models.DailyTask{}
	}
	return handler.renderPage(c, "dashboard", dashboardView{
		Stats: handler.statsService.BuildDashboardStats(session, now, handler.location),
		Tasks: tasks,
	})
}

func (handler *Handler) ShowDiary(c *fiber.Ctx) error {
	handler.ensureDependencies()
	entries, err := handler.diaryService.ListRecent(currentSession(c), 0)
	if err != nil {
		return handler.respondServiceError(c, "diary_page", err)
	}
	return handler.renderPage(c, "diary", diaryView{
		Entries:  entries,
		Moods:    models.Moods(),
		Emotions: models.DiaryEmotions(),
	})
}

func (handler *Handler) ShowOnboarding(c *fiber.Ctx) error {
	return handler.renderPage(c, "onboarding", onboardingView{
		Completed: !currentSession(c).OnboardingRequired(),
	})
}

func (handler *Handler) ShowChat(c *fiber.Ctx) error {
	handler.ensureDependencies()
	history, err := handler.chatService.History(currentSession(c))
	if err != nil {
		return handler.respondServiceError(c, "chat_page", err)
	}
	return handler.renderPage(c, "chat", fiber.Map{"messages": history})
}

func (handler *Handler) ShowTrails(c *fiber.Ctx) error {
	handler.ensureDependencies()
	trails, err := handler.trailService.Catalog(currentSession(c))
	if err != nil {
		return handler.respondServiceError(c, "trails_page", err)
	}
	return handler.renderPage(c, "trails", fiber.Map{"trails": trails})
}

func (handler *Handler) ShowHabits(c *fiber.Ctx) error {
	handler.ensureDependencies()
	habits, err := handler.habitService.ListActive(currentSession(c))
	if err != nil {
		return handler.respondServiceError(c, "habits_page", err)
	}
	return handler.renderPage(c, "habits", fiber.Map{"habits": habits})
}
