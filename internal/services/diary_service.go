package services

import (
	"context"
	"time"

	"github.com/terraincognita07/aurora/internal/ai"
	"github.com/terraincognita07/aurora/internal/models"
	"gorm.io/datatypes"
)

const defaultDiaryListLimit = 30

type DiaryRepository interface {
	Create(entry *models.MoodEntry) error
	ListRecentByUser(userID uint, limit int) ([]models.MoodEntry, error)
}

type DiaryCoach interface {
	AnalyzeEmotionalDiary(ctx context.Context, entry ai.DiaryEntry) ai.DiaryAnalysis
}

type DiaryService struct {
	entries DiaryRepository
	coach   DiaryCoach
}

func NewDiaryService(entries DiaryRepository, coach DiaryCoach) *DiaryService {
	return &DiaryService{entries: entries, coach: coach}
}

// Submit validates the entry, attaches the coach's analysis and stores it.
// Invalid input is rejected before the coach is consulted.
func (service *DiaryService) Submit(ctx context.Context, session Session, input DiaryInput, now time.Time) (models.MoodEntry, error) {
	normalized, err := NormalizeDiaryInput(input)
	if err != nil {
		return models.MoodEntry{}, err
	}

	analysis := service.coach.AnalyzeEmotionalDiary(ctx, ai.DiaryEntry{
		Mood:     normalized.Mood,
		Energy:   normalized.EnergyLevel,
		Stress:   normalized.StressLevel,
		Notes:    normalized.Notes,
		Emotions: normalized.Emotions,
	})

	notes := normalized.Notes
	entry := models.MoodEntry{
		UserID:            session.UserID(),
		Mood:              normalized.Mood,
		EnergyLevel:       normalized.EnergyLevel,
		StressLevel:       normalized.StressLevel,
		Notes:             &notes,
		Emotions:          datatypes.NewJSONSlice(normalized.Emotions),
		AIAnalysis:        &analysis.Analysis,
		AIRecommendations: datatypes.NewJSONSlice(analysis.Recommendations),
		CreatedAt:         now.UTC(),
	}
	if err := service.entries.Create(&entry); err != nil {
		return models.MoodEntry{}, err
	}
	return entry, nil
}

func (service *DiaryService) ListRecent(session Session, limit int) ([]models.MoodEntry, error) {
	if limit <= 0 {
		limit = defaultDiaryListLimit
	}
	return service.entries.ListRecentByUser(session.UserID(), limit)
}
