package services

import (
	"errors"
	"strings"
	"time"

	"github.com/terraincognita07/aurora/internal/db"
	"github.com/terraincognita07/aurora/internal/models"
	"gorm.io/gorm"
)

var (
	ErrHabitNotFound          = errors.New("habit not found")
	ErrHabitTitleRequired     = errors.New("habit title required")
	ErrHabitCategoryInvalid   = errors.New("habit category invalid")
	ErrHabitFrequencyInvalid  = errors.New("habit frequency invalid")
	ErrHabitTargetCountTooLow = errors.New("habit target count must be positive")
)

const maxHabitTitleLength = 120

type HabitRepository interface {
	ListActiveByUser(userID uint) ([]models.Habit, error)
	FindActiveByIDForUser(userID uint, habitID uint) (models.Habit, error)
	Create(habit *models.Habit) error
	Deactivate(userID uint, habitID uint) error
}

type HabitCompletionRecorder interface {
	Record(completion *models.HabitCompletion, recalculate db.StreakRecalculator) (models.Profile, error)
}

type HabitInput struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	Category    string `json:"category" form:"category"`
	Frequency   string `json:"frequency" form:"frequency"`
	TargetCount int    `json:"target_count" form:"target_count"`
	Icon        string `json:"icon" form:"icon"`
	Color       string `json:"color" form:"color"`
}

type HabitService struct {
	habits      HabitRepository
	completions HabitCompletionRecorder
}

func NewHabitService(habits HabitRepository, completions HabitCompletionRecorder) *HabitService {
	return &HabitService{habits: habits, completions: completions}
}

func (service *HabitService) ListActive(session Session) ([]models.Habit, error) {
	return service.habits.ListActiveByUser(session.UserID())
}

func (service *HabitService) Create(session Session, input HabitInput, now time.Time) (models.Habit, error) {
	habit, err := BuildHabit(input, now)
	if err != nil {
		return models.Habit{}, err
	}
	habit.UserID = session.UserID()
	if err := service.habits.Create(&habit); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

func (service *HabitService) Deactivate(session Session, habitID uint) error {
	err := service.habits.Deactivate(session.UserID(), habitID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrHabitNotFound
	}
	return err
}

// Complete appends a completion for an active habit and returns the profile
// with refreshed streak counters.
func (service *HabitService) Complete(session Session, habitID uint, notes string, now time.Time, location *time.Location) (models.Profile, error) {
	if _, err := service.habits.FindActiveByIDForUser(session.UserID(), habitID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Profile{}, ErrHabitNotFound
		}
		return models.Profile{}, err
	}

	completion := models.HabitCompletion{
		HabitID:     habitID,
		UserID:      session.UserID(),
		CompletedAt: now,
	}
	if trimmed := strings.TrimSpace(notes); trimmed != "" {
		completion.Notes = &trimmed
	}

	return service.completions.Record(&completion, func(completedAt []time.Time, longestSoFar int) (int, int) {
		return CalculateStreaks(completedAt, longestSoFar, now, location)
	})
}

func BuildHabit(input HabitInput, now time.Time) (models.Habit, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return models.Habit{}, ErrHabitTitleRequired
	}
	if len([]rune(title)) > maxHabitTitleLength {
		title = string([]rune(title)[:maxHabitTitleLength])
	}

	category := strings.ToLower(strings.TrimSpace(input.Category))
	if category == "" {
		category = models.HabitCategoryWellness
	}
	if !models.IsValidHabitCategory(category) {
		return models.Habit{}, ErrHabitCategoryInvalid
	}

	frequency := strings.ToLower(strings.TrimSpace(input.Frequency))
	if frequency == "" {
		frequency = models.HabitFrequencyDaily
	}
	if !models.IsValidHabitFrequency(frequency) {
		return models.Habit{}, ErrHabitFrequencyInvalid
	}

	targetCount := input.TargetCount
	if targetCount == 0 {
		targetCount = 1
	}
	if targetCount < 0 {
		return models.Habit{}, ErrHabitTargetCountTooLow
	}

	habit := models.Habit{
		Title:       title,
		Category:    category,
		Frequency:   frequency,
		TargetCount: targetCount,
		IsActive:    true,
		CreatedAt:   now.UTC(),
	}
	habit.Description = optionalString(input.Description)
	habit.Icon = optionalString(input.Icon)
	habit.Color = optionalString(input.Color)
	return habit, nil
}

func optionalString(raw string) *string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
