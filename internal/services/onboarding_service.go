package services

import (
	"context"
	"errors"
	"time"

	"github.com/terraincognita07/aurora/internal/ai"
	"github.com/terraincognita07/aurora/internal/db"
	"github.com/terraincognita07/aurora/internal/models"
)

var ErrOnboardingAlreadyCompleted = errors.New("onboarding already completed")

type OnboardingProfileRepository interface {
	CompleteOnboarding(userID uint, goals []string, habits []models.Habit, tasks []models.DailyTask) error
}

type OnboardingCoach interface {
	GenerateWellnessPlan(ctx context.Context, data ai.OnboardingData) ai.WellnessPlan
}

type OnboardingService struct {
	profiles OnboardingProfileRepository
	coach    OnboardingCoach
}

func NewOnboardingService(profiles OnboardingProfileRepository, coach OnboardingCoach) *OnboardingService {
	return &OnboardingService{profiles: profiles, coach: coach}
}

// Complete validates the questionnaire, generates the plan and seeds the
// profile with its habits and one task per routine period.
func (service *OnboardingService) Complete(ctx context.Context, session Session, data ai.OnboardingData, now time.Time, location *time.Location) (ai.WellnessPlan, error) {
	if !session.OnboardingRequired() {
		return ai.WellnessPlan{}, ErrOnboardingAlreadyCompleted
	}

	normalized, err := NormalizeOnboardingData(data)
	if err != nil {
		return ai.WellnessPlan{}, err
	}

	plan := service.coach.GenerateWellnessPlan(ctx, normalized)
	habits := BuildPlanHabits(plan, now)
	tasks := BuildPlanTasks(session.UserID(), plan, DueDateFor(now, location))

	err = service.profiles.CompleteOnboarding(session.UserID(), normalized.Goals, habits, tasks)
	switch {
	case errors.Is(err, db.ErrAlreadyOnboarded):
		return ai.WellnessPlan{}, ErrOnboardingAlreadyCompleted
	case err != nil:
		return ai.WellnessPlan{}, err
	}
	return plan, nil
}

func BuildPlanHabits(plan ai.WellnessPlan, now time.Time) []models.Habit {
	habits := make([]models.Habit, 0, len(plan.Habits))
	for _, title := range plan.Habits {
		habits = append(habits, models.Habit{
			Title:       title,
			Category:    models.HabitCategoryWellness,
			Frequency:   models.HabitFrequencyDaily,
			TargetCount: 1,
			IsActive:    true,
			CreatedAt:   now.UTC(),
		})
	}
	return habits
}

// BuildPlanTasks takes the first activity of each routine period.
func BuildPlanTasks(userID uint, plan ai.WellnessPlan, dueDate time.Time) []models.DailyTask {
	titles := make([]string, 0, 3)
	for _, period := range [][]string{plan.DailyRoutine.Morning, plan.DailyRoutine.Afternoon, plan.DailyRoutine.Evening} {
		if len(period) > 0 {
			titles = append(titles, period[0])
		}
	}
	return BuildDailyTasks(userID, titles, dueDate)
}
