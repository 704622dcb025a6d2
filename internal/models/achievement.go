package models

import "time"

type Achievement struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description *string   `json:"description"`
	Icon        *string   `json:"icon"`
	XPEarned    int       `gorm:"column:xp_earned;not null;default:0" json:"xp_earned"`
	EarnedAt    time.Time `gorm:"not null" json:"earned_at"`
}
