package db

import "gorm.io/gorm"

type Repositories struct {
	Profiles         *ProfileRepository
	Habits           *HabitRepository
	HabitCompletions *HabitCompletionRepository
	DailyTasks       *DailyTaskRepository
	MoodEntries      *MoodEntryRepository
	ChatMessages     *ChatMessageRepository
	Trails           *TrailRepository
	Achievements     *AchievementRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Profiles:         NewProfileRepository(database),
		Habits:           NewHabitRepository(database),
		HabitCompletions: NewHabitCompletionRepository(database),
		DailyTasks:       NewDailyTaskRepository(database),
		MoodEntries:      NewMoodEntryRepository(database),
		ChatMessages:     NewChatMessageRepository(database),
		Trails:           NewTrailRepository(database),
		Achievements:     NewAchievementRepository(database),
	}
}
