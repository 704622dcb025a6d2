package db

import (
	"github.com/terraincognita07/aurora/internal/models"
	"gorm.io/gorm"
)

type HabitRepository struct {
	database *gorm.DB
}

func NewHabitRepository(database *gorm.DB) *HabitRepository {
	return &HabitRepository{database: database}
}

func (repo *HabitRepository) ListActiveByUser(userID uint) ([]models.Habit, error) {
	habits := make([]models.Habit, 0)
	if err := repo.database.
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at ASC, id ASC").
		Find(&habits).Error; err != nil {
		return nil, err
	}
	return habits, nil
}

func (repo *HabitRepository) CountActiveByUser(userID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Habit{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *HabitRepository) FindActiveByIDForUser(userID uint, habitID uint) (models.Habit, error) {
	var habit models.Habit
	if err := repo.database.
		Where("id = ? AND user_id = ? AND is_active = ?", habitID, userID, true).
		First(&habit).Error; err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

func (repo *HabitRepository) Create(habit *models.Habit) error {
	return repo.database.Create(habit).Error
}

// Deactivate hides a habit without dropping its completion history.
func (repo *HabitRepository) Deactivate(userID uint, habitID uint) error {
	result := repo.database.Model(&models.Habit{}).
		Where("id = ? AND user_id = ? AND is_active = ?", habitID, userID, true).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
