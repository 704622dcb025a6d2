package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/aurora/internal/services"
)

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Use(handler.LanguageMiddleware)
	registerPageRoutes(app, handler)
	registerAPIRoutes(app, handler)
	app.Use(handler.NotFound)
}

func registerPageRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)
	app.Get("/lang/:lang", handler.SetLanguage)

	app.Get(services.LoginPath, handler.SessionGate, handler.ShowLoginPage)
	app.Get(services.SignupPath, handler.SessionGate, handler.ShowSignupPage)
	app.Get(services.ForgotPath, handler.SessionGate, handler.ShowForgotPasswordPage)
	app.Get("/", handler.SessionGate, handler.RedirectHome)
	app.Get(services.DashboardPath, handler.SessionGate, handler.ShowDashboard)
	app.Get(services.OnboardingPath, handler.SessionGate, handler.ShowOnboarding)
	app.Get("/diary", handler.SessionGate, handler.ShowDiary)
	app.Get("/chat", handler.SessionGate, handler.ShowChat)
	app.Get("/trails", handler.SessionGate, handler.ShowTrails)
	app.Get("/habits", handler.SessionGate, handler.ShowHabits)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	profile := api.Group("/profile", handler.AuthRequired)
	profile.Get("", handler.GetProfile)
	profile.Patch("", handler.UpdateProfile)

	onboarding := api.Group("/onboarding", handler.AuthRequired)
	onboarding.Post("/complete", handler.CompleteOnboarding)

	stats := api.Group("/stats", handler.AuthRequired)
	stats.Get("/overview", handler.GetStatsOverview)

	tasks := api.Group("/tasks", handler.AuthRequired)
	tasks.Get("/today", handler.ListTodayTasks)
	tasks.Post("/generate", handler.GenerateTasks)
	tasks.Post("/:id/toggle", handler.ToggleTask)

	diary := api.Group("/diary", handler.AuthRequired)
	diary.Get("", handler.ListDiaryEntries)
	diary.Post("", handler.CreateDiaryEntry)

	chat := api.Group("/chat", handler.AuthRequired)
	chat.Get("", handler.GetChatHistory)
	chat.Post("", handler.SendChatMessage)

	habits := api.Group("/habits", handler.AuthRequired)
	habits.Get("", handler.ListHabits)
	habits.Post("", handler.CreateHabit)
	habits.Delete("/:id", handler.DeleteHabit)
	habits.Post("/:id/complete", handler.CompleteHabit)

	trails := api.Group("/trails", handler.AuthRequired)
	trails.Get("", handler.ListTrails)
	trails.Post("/:id/start", handler.StartTrail)
	trails.Post("/:id/advance", handler.AdvanceTrail)

	achievements := api.Group("/achievements", handler.AuthRequired)
	achievements.Get("", handler.ListAchievements)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
