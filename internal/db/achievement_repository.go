package db

import (
	"github.com/terraincognita07/aurora/internal/models"
	"gorm.io/gorm"
)

type AchievementRepository struct {
	database *gorm.DB
}

func NewAchievementRepository(database *gorm.DB) *AchievementRepository {
	return &AchievementRepository{database: database}
}

func (repo *AchievementRepository) ListByUser(userID uint) ([]models.Achievement, error) {
	achievements := make([]models.Achievement, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("earned_at DESC, id DESC").
		Find(&achievements).Error; err != nil {
		return nil, err
	}
	return achievements, nil
}
