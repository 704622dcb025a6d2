package models

import (
	"time"

	"gorm.io/datatypes"
)

type TrailLesson struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Type     string `json:"type"`
	Duration int    `json:"duration"`
}

type WellnessTrail struct {
	ID           uint                             `gorm:"primaryKey" json:"id"`
	Title        string                           `gorm:"not null" json:"title"`
	Description  *string                          `json:"description"`
	Category     string                           `gorm:"not null" json:"category"`
	Difficulty   string                           `gorm:"not null;default:beginner" json:"difficulty"`
	DurationDays int                              `gorm:"not null;default:7" json:"duration_days"`
	Icon         *string                          `json:"icon"`
	Color        *string                          `json:"color"`
	Lessons      datatypes.JSONSlice[TrailLesson] `json:"lessons"`
	XPReward     int                              `gorm:"column:xp_reward;not null;default:200" json:"xp_reward"`
	CreatedAt    time.Time                        `json:"created_at"`
}

type TrailProgress struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	UserID        uint       `gorm:"not null;uniqueIndex:uidx_trail_progress_user_trail" json:"user_id"`
	TrailID       uint       `gorm:"not null;uniqueIndex:uidx_trail_progress_user_trail" json:"trail_id"`
	CurrentLesson int        `gorm:"not null;default:0" json:"current_lesson"`
	Completed     bool       `gorm:"not null;default:false" json:"completed"`
	StartedAt     time.Time  `gorm:"not null" json:"started_at"`
	CompletedAt   *time.Time `json:"completed_at"`
}

func (TrailProgress) TableName() string {
	return "trail_progress"
}
