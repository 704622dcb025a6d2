package services

import (
	"errors"
	"strings"

	"github.com/terraincognita07/aurora/internal/models"
)

var (
	ErrDiaryMoodInvalid    = errors.New("diary mood invalid")
	ErrDiaryNotesRequired  = errors.New("diary notes required")
	ErrDiaryEnergyInvalid  = errors.New("diary energy invalid")
	ErrDiaryStressInvalid  = errors.New("diary stress invalid")
	ErrDiaryEmotionInvalid = errors.New("diary emotion invalid")
)

const maxDiaryNotesLength = 5000

type DiaryInput struct {
	Mood        string   `json:"mood" form:"mood"`
	EnergyLevel int      `json:"energy" form:"energy"`
	StressLevel int      `json:"stress" form:"stress"`
	Notes       string   `json:"notes" form:"notes"`
	Emotions    []string `json:"emotions" form:"emotions"`
}

// NormalizeDiaryInput validates an entry before any remote call is made.
func NormalizeDiaryInput(input DiaryInput) (DiaryInput, error) {
	input.Mood = strings.ToLower(strings.TrimSpace(input.Mood))
	if !models.IsValidMood(input.Mood) {
		return DiaryInput{}, ErrDiaryMoodInvalid
	}

	input.Notes = strings.TrimSpace(input.Notes)
	if input.Notes == "" {
		return DiaryInput{}, ErrDiaryNotesRequired
	}
	if len([]rune(input.Notes)) > maxDiaryNotesLength {
		input.Notes = string([]rune(input.Notes)[:maxDiaryNotesLength])
	}

	if !isMoodScaleValue(input.EnergyLevel) {
		return DiaryInput{}, ErrDiaryEnergyInvalid
	}
	if !isMoodScaleValue(input.StressLevel) {
		return DiaryInput{}, ErrDiaryStressInvalid
	}

	emotions := make([]string, 0, len(input.Emotions))
	seen := make(map[string]struct{}, len(input.Emotions))
	for _, raw := range input.Emotions {
		emotion := strings.ToLower(strings.TrimSpace(raw))
		if emotion == "" {
			continue
		}
		if !models.IsValidDiaryEmotion(emotion) {
			return DiaryInput{}, ErrDiaryEmotionInvalid
		}
		if _, duplicate := seen[emotion]; duplicate {
			continue
		}
		seen[emotion] = struct{}{}
		emotions = append(emotions, emotion)
	}
	input.Emotions = emotions
	return input, nil
}

func isMoodScaleValue(value int) bool {
	return value >= models.MinMoodScale && value <= models.MaxMoodScale
}
