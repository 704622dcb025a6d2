package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	MoodExcellent = "excellent"
	MoodGood      = "good"
	MoodNeutral   = "neutral"
	MoodBad       = "bad"
	MoodTerrible  = "terrible"

	MinMoodScale = 1
	MaxMoodScale = 10
)

type MoodEntry struct {
	ID                uint                        `gorm:"primaryKey" json:"id"`
	UserID            uint                        `gorm:"not null;index" json:"user_id"`
	Mood              string                      `gorm:"not null" json:"mood"`
	EnergyLevel       int                         `gorm:"not null" json:"energy_level"`
	StressLevel       int                         `gorm:"not null" json:"stress_level"`
	Notes             *string                     `json:"notes"`
	Emotions          datatypes.JSONSlice[string] `json:"emotions"`
	AIAnalysis        *string                     `gorm:"column:ai_analysis" json:"ai_analysis"`
	AIRecommendations datatypes.JSONSlice[string] `gorm:"column:ai_recommendations" json:"ai_recommendations"`
	CreatedAt         time.Time                   `json:"created_at"`
}

func Moods() []string {
	return []string{MoodExcellent, MoodGood, MoodNeutral, MoodBad, MoodTerrible}
}

func IsValidMood(mood string) bool {
	for _, candidate := range Moods() {
		if candidate == mood {
			return true
		}
	}
	return false
}

func DiaryEmotions() []string {
	return []string{"happy", "anxious", "calm", "tired", "motivated", "stressed", "grateful", "frustrated"}
}

func IsValidDiaryEmotion(emotion string) bool {
	for _, candidate := range DiaryEmotions() {
		if candidate == emotion {
			return true
		}
	}
	return false
}
