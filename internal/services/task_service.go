package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/terraincognita07/aurora/internal/db"
	"github.com/terraincognita07/aurora/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrTaskNotFound = errors.New("task not found")

type TaskRepository interface {
	ListByUserDueDate(userID uint, dueDate time.Time) ([]models.DailyTask, error)
	CreateBatch(tasks []models.DailyTask) error
	ToggleCompletion(userID uint, taskID uint, now time.Time) (db.TaskToggleResult, error)
}

type TaskMoodReader interface {
	LatestMood(userID uint) (string, bool, error)
}

type TaskHabitReader interface {
	ListActiveByUser(userID uint) ([]models.Habit, error)
}

type TaskCoach interface {
	GenerateDailyTasks(ctx context.Context, goals []string, recentMood string, habits []string) []string
}

type TaskService struct {
	tasks  TaskRepository
	moods  TaskMoodReader
	habits TaskHabitReader
	coach  TaskCoach
	logger *zap.Logger
}

func NewTaskService(tasks TaskRepository, moods TaskMoodReader, habits TaskHabitReader, coach TaskCoach, logger *zap.Logger) *TaskService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TaskService{
		tasks:  tasks,
		moods:  moods,
		habits: habits,
		coach:  coach,
		logger: logger,
	}
}

func (service *TaskService) ListToday(session Session, now time.Time, location *time.Location) ([]models.DailyTask, error) {
	return service.tasks.ListByUserDueDate(session.UserID(), DueDateFor(now, location))
}

// Toggle flips a task and awards its XP atomically on completion.
func (service *TaskService) Toggle(session Session, taskID uint, now time.Time) (db.TaskToggleResult, error) {
	result, err := service.tasks.ToggleCompletion(session.UserID(), taskID, now)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.TaskToggleResult{}, ErrTaskNotFound
	}
	return result, err
}

// GenerateForToday asks the coach for tasks tailored to the profile goals,
// the latest mood and the active habits, and stores them as due today.
func (service *TaskService) GenerateForToday(ctx context.Context, session Session, now time.Time, location *time.Location) ([]models.DailyTask, error) {
	userID := session.UserID()

	recentMood, found, err := service.moods.LatestMood(userID)
	if err != nil {
		service.logger.Warn("load latest mood failed", zap.Uint("user_id", userID), zap.Error(err))
	}
	if err != nil || !found {
		recentMood = models.MoodNeutral
	}

	habitTitles := make([]string, 0)
	habits, err := service.habits.ListActiveByUser(userID)
	if err != nil {
		service.logger.Warn("load active habits failed", zap.Uint("user_id", userID), zap.Error(err))
	}
	for _, habit := range habits {
		habitTitles = append(habitTitles, habit.Title)
	}

	titles := service.coach.GenerateDailyTasks(ctx, []string(session.Profile.WellnessGoals), recentMood, habitTitles)
	tasks := BuildDailyTasks(userID, titles, DueDateFor(now, location))
	if err := service.tasks.CreateBatch(tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func BuildDailyTasks(userID uint, titles []string, dueDate time.Time) []models.DailyTask {
	tasks := make([]models.DailyTask, 0, len(titles))
	for _, title := range titles {
		trimmed := strings.TrimSpace(title)
		if trimmed == "" {
			continue
		}
		tasks = append(tasks, models.DailyTask{
			UserID:   userID,
			Title:    trimmed,
			XPReward: models.DefaultTaskXPReward,
			DueDate:  dueDate,
		})
	}
	return tasks
}
