package db

import (
	"github.com/terraincognita07/aurora/internal/models"
	"gorm.io/gorm"
)

type MoodEntryRepository struct {
	database *gorm.DB
}

func NewMoodEntryRepository(database *gorm.DB) *MoodEntryRepository {
	return &MoodEntryRepository{database: database}
}

func (repo *MoodEntryRepository) Create(entry *models.MoodEntry) error {
	return repo.database.Create(entry).Error
}

func (repo *MoodEntryRepository) ListRecentByUser(userID uint, limit int) ([]models.MoodEntry, error) {
	entries := make([]models.MoodEntry, 0)
	query := repo.database.Where("user_id = ?", userID).Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// LatestMood returns the most recent mood and false when the user has no entries.
func (repo *MoodEntryRepository) LatestMood(userID uint) (string, bool, error) {
	var entry models.MoodEntry
	result := repo.database.
		Select("id", "mood", "created_at").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return "", false, result.Error
	}
	if result.RowsAffected == 0 {
		return "", false, nil
	}
	return entry.Mood, true, nil
}
