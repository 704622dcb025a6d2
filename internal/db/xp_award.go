package db

import (
	"fmt"
	"time"

	"github.com/terraincognita07/aurora/internal/models"
	"gorm.io/gorm"
)

const levelAchievementIcon = "trophy"

type XPAward struct {
	Amount        int   `json:"amount"`
	Level         int   `json:"level"`
	XP            int   `json:"xp"`
	LevelsReached []int `json:"levels_reached"`
}

// awardXPInTx increments XP with a single relative update, then promotes the
// level for every threshold crossed and records one achievement per level.
func awardXPInTx(tx *gorm.DB, userID uint, amount int, now time.Time) (XPAward, error) {
	if amount < 0 {
		amount = 0
	}

	result := tx.Model(&models.Profile{}).
		Where("id = ?", userID).
		Update("xp", gorm.Expr("xp + ?", amount))
	if result.Error != nil {
		return XPAward{}, result.Error
	}
	if result.RowsAffected == 0 {
		return XPAward{}, gorm.ErrRecordNotFound
	}

	var profile models.Profile
	if err := tx.Select("id", "level", "xp").First(&profile, userID).Error; err != nil {
		return XPAward{}, err
	}

	level, xp, reached := models.ApplyXP(profile.Level, profile.XP, 0)
	if level != profile.Level {
		if err := tx.Model(&models.Profile{}).Where("id = ?", userID).Update("level", level).Error; err != nil {
			return XPAward{}, err
		}
	}

	for _, reachedLevel := range reached {
		icon := levelAchievementIcon
		achievement := models.Achievement{
			UserID:   userID,
			Title:    fmt.Sprintf("Level %d reached", reachedLevel),
			Icon:     &icon,
			XPEarned: amount,
			EarnedAt: now.UTC(),
		}
		if err := tx.Create(&achievement).Error; err != nil {
			return XPAward{}, err
		}
	}

	return XPAward{Amount: amount, Level: level, XP: xp, LevelsReached: reached}, nil
}
