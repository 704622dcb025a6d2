package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	DefaultLevel        = 1
	LevelXPStep         = 1500
	DefaultTaskXPReward = 50
)

type Profile struct {
	ID                   uint                        `gorm:"primaryKey" json:"id"`
	Email                string                      `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash         string                      `gorm:"not null" json:"-"`
	FullName             *string                     `json:"full_name"`
	AvatarURL            *string                     `json:"avatar_url"`
	Level                int                         `gorm:"not null;default:1" json:"level"`
	XP                   int                         `gorm:"not null;default:0" json:"xp"`
	CurrentStreak        int                         `gorm:"not null;default:0" json:"current_streak"`
	LongestStreak        int                         `gorm:"not null;default:0" json:"longest_streak"`
	TotalHabitsCompleted int                         `gorm:"not null;default:0" json:"total_habits_completed"`
	OnboardingCompleted  bool                        `gorm:"not null;default:false" json:"onboarding_completed"`
	WellnessGoals        datatypes.JSONSlice[string] `json:"wellness_goals"`
	CreatedAt            time.Time                   `json:"created_at"`
	UpdatedAt            time.Time                   `json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}

// EffectiveLevel treats unset levels as the starting level.
func EffectiveLevel(level int) int {
	if level < DefaultLevel {
		return DefaultLevel
	}
	return level
}

func NextLevelXP(level int) int {
	return EffectiveLevel(level) * LevelXPStep
}

// ApplyXP adds gained XP and promotes the level for every threshold the new
// total reaches. XP is never reset on promotion.
func ApplyXP(level int, xp int, gained int) (int, int, []int) {
	newLevel := EffectiveLevel(level)
	newXP := xp
	if gained > 0 {
		newXP += gained
	}

	reached := make([]int, 0)
	for newXP >= NextLevelXP(newLevel) {
		newLevel++
		reached = append(reached, newLevel)
	}
	return newLevel, newXP, reached
}
