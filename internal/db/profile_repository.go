package db

import (
	"errors"

	"github.com/terraincognita07/aurora/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrAlreadyOnboarded = errors.New("profile already onboarded")

type ProfileRepository struct {
	database *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{database: database}
}

func (repo *ProfileRepository) FindByID(userID uint) (models.Profile, error) {
	var profile models.Profile
	if err := repo.database.First(&profile, userID).Error; err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

func (repo *ProfileRepository) FindByNormalizedEmail(email string) (models.Profile, error) {
	var profile models.Profile
	if err := repo.database.Where("lower(trim(email)) = ?", email).First(&profile).Error; err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

func (repo *ProfileRepository) ExistsByNormalizedEmail(email string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.Profile{}).
		Where("lower(trim(email)) = ?", email).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *ProfileRepository) Create(profile *models.Profile) error {
	return repo.database.Create(profile).Error
}

func (repo *ProfileRepository) UpdatePassword(userID uint, passwordHash string) error {
	return repo.database.Model(&models.Profile{}).Where("id = ?", userID).Update("password_hash", passwordHash).Error
}

func (repo *ProfileRepository) UpdateFullName(userID uint, fullName *string) error {
	return repo.database.Model(&models.Profile{}).Where("id = ?", userID).Update("full_name", fullName).Error
}

// CompleteOnboarding flips the onboarding flag and stores the generated habits
// and tasks in one transaction so a partial plan is never visible. The flag is
// only flipped from false, so a concurrent second submission gets
// ErrAlreadyOnboarded and inserts nothing.
func (repo *ProfileRepository) CompleteOnboarding(userID uint, goals []string, habits []models.Habit, tasks []models.DailyTask) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Profile{}).
			Where("id = ? AND onboarding_completed = ?", userID, false).
			Updates(map[string]any{
				"onboarding_completed": true,
				"wellness_goals":       datatypes.NewJSONSlice(goals),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			var existing int64
			if err := tx.Model(&models.Profile{}).Where("id = ?", userID).Count(&existing).Error; err != nil {
				return err
			}
			if existing == 0 {
				return gorm.ErrRecordNotFound
			}
			return ErrAlreadyOnboarded
		}

		for index := range habits {
			habits[index].UserID = userID
		}
		if len(habits) > 0 {
			if err := tx.Create(&habits).Error; err != nil {
				return err
			}
		}

		for index := range tasks {
			tasks[index].UserID = userID
		}
		if len(tasks) > 0 {
			if err := tx.Create(&tasks).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
