package api

import (
	"github.com/terraincognita07/aurora/internal/db"
	"github.com/terraincognita07/aurora/internal/services"
)

func (handler *Handler) ensureDependencies() {
	if handler.repositories == nil {
		if handler.db == nil {
			return
		}
		handler.repositories = db.NewRepositories(handler.db)
	}
	repositories := handler.repositories

	if handler.authService == nil {
		handler.authService = services.NewAuthService(repositories.Profiles)
	}
	if handler.statsService == nil {
		handler.statsService = services.NewStatsService(repositories.Habits, repositories.HabitCompletions, handler.logger.Named("stats"))
	}
	if handler.taskService == nil {
		handler.taskService = services.NewTaskService(repositories.DailyTasks, repositories.MoodEntries, repositories.Habits, handler.coach, handler.logger.Named("tasks"))
	}
	if handler.diaryService == nil {
		handler.diaryService = services.NewDiaryService(repositories.MoodEntries, handler.coach)
	}
	if handler.onboardingService == nil {
		handler.onboardingService = services.NewOnboardingService(repositories.Profiles, handler.coach)
	}
	if handler.chatService == nil {
		handler.chatService = services.NewChatService(repositories.ChatMessages, handler.coach)
	}
	if handler.habitService == nil {
		handler.habitService = services.NewHabitService(repositories.Habits, repositories.HabitCompletions)
	}
	if handler.trailService == nil {
		handler.trailService = services.NewTrailService(repositories.Trails)
	}
	if handler.achievementService == nil {
		handler.achievementService = services.NewAchievementService(repositories.Achievements)
	}
}
