package api

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/terraincognita07/aurora/internal/ai"
	"github.com/terraincognita07/aurora/internal/db"
	"github.com/terraincognita07/aurora/internal/i18n"
	"github.com/terraincognita07/aurora/internal/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	i18n         *i18n.Manager
	coach        *ai.Coach
	logger       *zap.Logger
	now          func() time.Time
	loginLimiter *attemptLimiter

	repositories       *db.Repositories
	authService        *services.AuthService
	statsService       *services.StatsService
	taskService        *services.TaskService
	diaryService       *services.DiaryService
	onboardingService  *services.OnboardingService
	chatService        *services.ChatService
	habitService       *services.HabitService
	trailService       *services.TrailService
	achievementService *services.AchievementService
}

type Config struct {
	Database     *gorm.DB
	Secret       string
	Location     *time.Location
	I18n         *i18n.Manager
	Coach        *ai.Coach
	CookieSecure bool
	Logger       *zap.Logger
}

func NewHandler(config Config) (*Handler, error) {
	if config.Database == nil {
		return nil, errors.New("database is required")
	}
	if config.I18n == nil {
		return nil, errors.New("i18n manager is required")
	}
	if strings.TrimSpace(config.Secret) == "" {
		return nil, errors.New("secret key is required")
	}

	location := config.Location
	if location == nil {
		location = time.Local
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	coach := config.Coach
	if coach == nil {
		fallbackCoach, err := ai.NewCoach(nil, logger)
		if err != nil {
			return nil, fmt.Errorf("init coach: %w", err)
		}
		coach = fallbackCoach
	}

	handler := &Handler{
		db:           config.Database,
		secretKey:    []byte(config.Secret),
		location:     location,
		cookieSecure: config.CookieSecure,
		i18n:         config.I18n,
		coach:        coach,
		logger:       logger,
		now:          time.Now,
		loginLimiter: newAttemptLimiter(),
	}
	handler.ensureDependencies()
	return handler, nil
}
