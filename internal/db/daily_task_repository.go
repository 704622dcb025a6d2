package db

import (
	"time"

	"github.com/terraincognita07/aurora/internal/models"
	"gorm.io/gorm"
)

type DailyTaskRepository struct {
	database *gorm.DB
}

func NewDailyTaskRepository(database *gorm.DB) *DailyTaskRepository {
	return &DailyTaskRepository{database: database}
}

type TaskToggleResult struct {
	Task  models.DailyTask `json:"task"`
	Award *XPAward         `json:"award,omitempty"`
}

func (repo *DailyTaskRepository) ListByUserDueDate(userID uint, dueDate time.Time) ([]models.DailyTask, error) {
	tasks := make([]models.DailyTask, 0)
	if err := repo.database.
		Where("user_id = ? AND due_date = ?", userID, dueDate).
		Order("created_at ASC, id ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (repo *DailyTaskRepository) CreateBatch(tasks []models.DailyTask) error {
	if len(tasks) == 0 {
		return nil
	}
	return repo.database.Create(&tasks).Error
}

// ToggleCompletion flips a task and, only on the incomplete to complete
// transition, awards its XP inside the same transaction. Clearing a task
// never deducts XP.
func (repo *DailyTaskRepository) ToggleCompletion(userID uint, taskID uint, now time.Time) (TaskToggleResult, error) {
	var toggled TaskToggleResult
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		var task models.DailyTask
		if err := tx.Where("id = ? AND user_id = ?", taskID, userID).First(&task).Error; err != nil {
			return err
		}

		if task.Completed {
			if err := tx.Model(&models.DailyTask{}).
				Where("id = ? AND user_id = ?", taskID, userID).
				Updates(map[string]any{"completed": false, "completed_at": nil}).Error; err != nil {
				return err
			}
		} else {
			completedAt := now.UTC()
			result := tx.Model(&models.DailyTask{}).
				Where("id = ? AND user_id = ? AND completed = ?", taskID, userID, false).
				Updates(map[string]any{"completed": true, "completed_at": completedAt})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 1 {
				award, err := awardXPInTx(tx, userID, task.EffectiveXPReward(), now)
				if err != nil {
					return err
				}
				toggled.Award = &award
			}
		}

		return tx.Where("id = ?", taskID).First(&toggled.Task).Error
	})
	if err != nil {
		return TaskToggleResult{}, err
	}
	return toggled, nil
}
