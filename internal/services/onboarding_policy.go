package services

import (
	"errors"
	"strings"

	"github.com/terraincognita07/aurora/internal/ai"
)

var (
	ErrOnboardingGoalsRequired = errors.New("onboarding goals required")
	ErrOnboardingStressInvalid = errors.New("onboarding stress level invalid")
	ErrOnboardingSleepInvalid  = errors.New("onboarding sleep hours invalid")
)

const (
	minOnboardingSleepHours = 0
	maxOnboardingSleepHours = 24
)

func NormalizeOnboardingData(data ai.OnboardingData) (ai.OnboardingData, error) {
	data.Goals = compactStrings(data.Goals)
	if len(data.Goals) == 0 {
		return ai.OnboardingData{}, ErrOnboardingGoalsRequired
	}
	if !isMoodScaleValue(data.StressLevel) {
		return ai.OnboardingData{}, ErrOnboardingStressInvalid
	}
	if data.SleepHours < minOnboardingSleepHours || data.SleepHours > maxOnboardingSleepHours {
		return ai.OnboardingData{}, ErrOnboardingSleepInvalid
	}

	data.Challenges = compactStrings(data.Challenges)
	data.FocusAreas = compactStrings(data.FocusAreas)
	data.ExerciseFrequency = strings.TrimSpace(data.ExerciseFrequency)
	data.PreferredTime = strings.TrimSpace(data.PreferredTime)
	return data, nil
}

func compactStrings(values []string) []string {
	compacted := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, duplicate := seen[key]; duplicate {
			continue
		}
		seen[key] = struct{}{}
		compacted = append(compacted, trimmed)
	}
	return compacted
}
