package services

import (
	"errors"
	"strings"
	"time"

	"github.com/terraincognita07/aurora/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrAuthEmailTaken      = errors.New("email already exists")
	ErrAuthProfileNotFound = errors.New("profile not found")
)

const maxFullNameLength = 120

type AuthProfileRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.Profile, error)
	FindByID(userID uint) (models.Profile, error)
	Create(profile *models.Profile) error
	UpdatePassword(userID uint, passwordHash string) error
	UpdateFullName(userID uint, fullName *string) error
}

type AuthService struct {
	profiles AuthProfileRepository
}

func NewAuthService(profiles AuthProfileRepository) *AuthService {
	return &AuthService{profiles: profiles}
}

// Register creates a profile at level 1 with zero XP. The email must already
// be normalized.
func (service *AuthService) Register(email string, password string, fullName string, now time.Time) (models.Profile, error) {
	if err := ValidatePasswordStrength(password); err != nil {
		return models.Profile{}, err
	}

	exists, err := service.profiles.ExistsByNormalizedEmail(email)
	if err != nil {
		return models.Profile{}, err
	}
	if exists {
		return models.Profile{}, ErrAuthEmailTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Profile{}, err
	}

	profile := models.Profile{
		Email:        email,
		PasswordHash: string(passwordHash),
		Level:        models.DefaultLevel,
		CreatedAt:    now.UTC(),
		UpdatedAt:    now.UTC(),
	}
	if trimmedName := strings.TrimSpace(fullName); trimmedName != "" {
		profile.FullName = &trimmedName
	}
	if err := service.profiles.Create(&profile); err != nil {
		return models.Profile{}, ErrAuthEmailTaken
	}
	return profile, nil
}

func (service *AuthService) Authenticate(email string, password string) (models.Profile, error) {
	profile, err := service.profiles.FindByNormalizedEmail(email)
	if err != nil {
		return models.Profile{}, ErrAuthCredentialsInvalid
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
		return models.Profile{}, ErrAuthCredentialsInvalid
	}
	return profile, nil
}

func (service *AuthService) FindByID(userID uint) (models.Profile, error) {
	profile, err := service.profiles.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Profile{}, ErrAuthProfileNotFound
	}
	return profile, err
}

// ResetPassword replaces the password of the profile registered under email.
func (service *AuthService) ResetPassword(email string, password string) error {
	normalized := NormalizeAuthEmail(email)
	if normalized == "" {
		return ErrAuthCredentialsInvalid
	}
	if err := ValidatePasswordStrength(password); err != nil {
		return err
	}

	profile, err := service.profiles.FindByNormalizedEmail(normalized)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrAuthProfileNotFound
	}
	if err != nil {
		return err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return service.profiles.UpdatePassword(profile.ID, string(passwordHash))
}

// UpdateFullName stores a trimmed display name. A blank name clears it.
func (service *AuthService) UpdateFullName(userID uint, fullName string) (models.Profile, error) {
	var name *string
	if trimmed := strings.TrimSpace(fullName); trimmed != "" {
		if len([]rune(trimmed)) > maxFullNameLength {
			trimmed = string([]rune(trimmed)[:maxFullNameLength])
		}
		name = &trimmed
	}
	if err := service.profiles.UpdateFullName(userID, name); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Profile{}, ErrAuthProfileNotFound
		}
		return models.Profile{}, err
	}
	return service.FindByID(userID)
}
