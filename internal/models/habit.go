package models

import "time"

const (
	HabitCategoryHealth       = "health"
	HabitCategoryMindfulness  = "mindfulness"
	HabitCategoryProductivity = "productivity"
	HabitCategorySocial       = "social"
	HabitCategoryLearning     = "learning"
	HabitCategoryWellness     = "wellness"

	HabitFrequencyDaily  = "daily"
	HabitFrequencyWeekly = "weekly"
	HabitFrequencyCustom = "custom"
)

type Habit struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description *string   `json:"description"`
	Category    string    `gorm:"not null" json:"category"`
	Frequency   string    `gorm:"not null;default:daily" json:"frequency"`
	TargetCount int       `gorm:"not null;default:1" json:"target_count"`
	Icon        *string   `json:"icon"`
	Color       *string   `json:"color"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

type HabitCompletion struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	HabitID     uint      `gorm:"not null;index" json:"habit_id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	CompletedAt time.Time `gorm:"not null" json:"completed_at"`
	Notes       *string   `json:"notes"`
}

func IsValidHabitCategory(category string) bool {
	switch category {
	case HabitCategoryHealth, HabitCategoryMindfulness, HabitCategoryProductivity,
		HabitCategorySocial, HabitCategoryLearning, HabitCategoryWellness:
		return true
	default:
		return false
	}
}

func IsValidHabitFrequency(frequency string) bool {
	switch frequency {
	case HabitFrequencyDaily, HabitFrequencyWeekly, HabitFrequencyCustom:
		return true
	default:
		return false
	}
}
