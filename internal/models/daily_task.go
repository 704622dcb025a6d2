package models

import "time"

type DailyTask struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"not null;index" json:"user_id"`
	Title       string     `gorm:"not null" json:"title"`
	Description *string    `json:"description"`
	XPReward    int        `gorm:"column:xp_reward;not null;default:50" json:"xp_reward"`
	Completed   bool       `gorm:"not null;default:false" json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
	DueDate     time.Time  `gorm:"type:date;not null" json:"due_date"`
	CreatedAt   time.Time  `json:"created_at"`
}

// EffectiveXPReward falls back to the default reward for unset rows.
func (task DailyTask) EffectiveXPReward() int {
	if task.XPReward <= 0 {
		return DefaultTaskXPReward
	}
	return task.XPReward
}
