package db

import (
	"time"

	"github.com/terraincognita07/aurora/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TrailRepository struct {
	database *gorm.DB
}

func NewTrailRepository(database *gorm.DB) *TrailRepository {
	return &TrailRepository{database: database}
}

type TrailAdvanceResult struct {
	Progress models.TrailProgress `json:"progress"`
	Award    *XPAward             `json:"award,omitempty"`
}

func (repo *TrailRepository) ListCatalog() ([]models.WellnessTrail, error) {
	trails := make([]models.WellnessTrail, 0)
	if err := repo.database.Order("id ASC").Find(&trails).Error; err != nil {
		return nil, err
	}
	return trails, nil
}

func (repo *TrailRepository) FindByID(trailID uint) (models.WellnessTrail, error) {
	var trail models.WellnessTrail
	if err := repo.database.First(&trail, trailID).Error; err != nil {
		return models.WellnessTrail{}, err
	}
	return trail, nil
}

func (repo *TrailRepository) ListProgressByUser(userID uint) ([]models.TrailProgress, error) {
	progress := make([]models.TrailProgress, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("started_at ASC, id ASC").
		Find(&progress).Error; err != nil {
		return nil, err
	}
	return progress, nil
}

// StartProgress creates the progress row when missing and returns the stored
// row either way, so starting a trail twice keeps the original position.
func (repo *TrailRepository) StartProgress(userID uint, trailID uint, now time.Time) (models.TrailProgress, error) {
	row := models.TrailProgress{
		UserID:    userID,
		TrailID:   trailID,
		StartedAt: now.UTC(),
	}
	if err := repo.database.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "trail_id"}},
			DoNothing: true,
		}).
		Create(&row).Error; err != nil {
		return models.TrailProgress{}, err
	}

	var stored models.TrailProgress
	if err := repo.database.Where("user_id = ? AND trail_id = ?", userID, trailID).First(&stored).Error; err != nil {
		return models.TrailProgress{}, err
	}
	return stored, nil
}

// AdvanceProgress moves to the next lesson. Passing the last lesson marks the
// trail completed and awards its XP once. Completed trails are left unchanged.
func (repo *TrailRepository) AdvanceProgress(userID uint, trailID uint, now time.Time) (TrailAdvanceResult, error) {
	var advanced TrailAdvanceResult
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		var trail models.WellnessTrail
		if err := tx.First(&trail, trailID).Error; err != nil {
			return err
		}

		var progress models.TrailProgress
		if err := tx.Where("user_id = ? AND trail_id = ?", userID, trailID).First(&progress).Error; err != nil {
			return err
		}
		if progress.Completed {
			advanced.Progress = progress
			return nil
		}

		nextLesson := progress.CurrentLesson + 1
		if nextLesson < len(trail.Lessons) {
			if err := tx.Model(&models.TrailProgress{}).
				Where("id = ?", progress.ID).
				Update("current_lesson", nextLesson).Error; err != nil {
				return err
			}
			progress.CurrentLesson = nextLesson
			advanced.Progress = progress
			return nil
		}

		completedAt := now.UTC()
		result := tx.Model(&models.TrailProgress{}).
			Where("id = ? AND completed = ?", progress.ID, false).
			Updates(map[string]any{
				"current_lesson": len(trail.Lessons),
				"completed":      true,
				"completed_at":   completedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		progress.CurrentLesson = len(trail.Lessons)
		progress.Completed = true
		progress.CompletedAt = &completedAt
		advanced.Progress = progress

		if result.RowsAffected == 1 {
			award, err := awardXPInTx(tx, userID, trail.XPReward, now)
			if err != nil {
				return err
			}
			advanced.Award = &award
		}
		return nil
	})
	if err != nil {
		return TrailAdvanceResult{}, err
	}
	return advanced, nil
}
