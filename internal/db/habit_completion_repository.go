package db

import (
	"time"

	"github.com/terraincognita07/aurora/internal/models"
	"gorm.io/gorm"
)

type HabitCompletionRepository struct {
	database *gorm.DB
}

func NewHabitCompletionRepository(database *gorm.DB) *HabitCompletionRepository {
	return &HabitCompletionRepository{database: database}
}

// CountByUserBetween counts completions with from <= completed_at <= to.
func (repo *HabitCompletionRepository) CountByUserBetween(userID uint, from time.Time, to time.Time) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.HabitCompletion{}).
		Where("user_id = ? AND completed_at >= ? AND completed_at <= ?", userID, from.UTC(), to.UTC()).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *HabitCompletionRepository) ListByUserBetween(userID uint, from time.Time, to time.Time) ([]models.HabitCompletion, error) {
	completions := make([]models.HabitCompletion, 0)
	if err := repo.database.
		Where("user_id = ? AND completed_at >= ? AND completed_at <= ?", userID, from.UTC(), to.UTC()).
		Order("completed_at ASC, id ASC").
		Find(&completions).Error; err != nil {
		return nil, err
	}
	return completions, nil
}

// StreakRecalculator derives current and longest streaks from every
// completion instant a user has recorded, oldest first.
type StreakRecalculator func(completedAt []time.Time, longestSoFar int) (current int, longest int)

// Record appends a completion and refreshes the owner's streak counters in
// the same transaction. The returned profile reflects the new counters.
func (repo *HabitCompletionRepository) Record(completion *models.HabitCompletion, recalculate StreakRecalculator) (models.Profile, error) {
	var profile models.Profile
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		completion.CompletedAt = completion.CompletedAt.UTC()
		if err := tx.Create(completion).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Profile{}).
			Where("id = ?", completion.UserID).
			Update("total_habits_completed", gorm.Expr("total_habits_completed + ?", 1)).Error; err != nil {
			return err
		}

		if err := tx.First(&profile, completion.UserID).Error; err != nil {
			return err
		}

		var instants []time.Time
		if err := tx.Model(&models.HabitCompletion{}).
			Where("user_id = ?", completion.UserID).
			Order("completed_at ASC").
			Pluck("completed_at", &instants).Error; err != nil {
			return err
		}

		current, longest := recalculate(instants, profile.LongestStreak)
		if err := tx.Model(&models.Profile{}).Where("id = ?", completion.UserID).Updates(map[string]any{
			"current_streak": current,
			"longest_streak": longest,
		}).Error; err != nil {
			return err
		}
		profile.CurrentStreak = current
		profile.LongestStreak = longest
		return nil
	})
	if err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}
