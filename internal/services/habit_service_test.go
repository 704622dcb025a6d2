package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/terraincognita07/aurora/internal/models"
)

func TestBuildHabit(t *testing.T) {
	now := time.Date(2026, 2, 2, 8, 0, 0, 0, time.UTC)

	habit, err := BuildHabit(HabitInput{Title: "  Read  ", Icon: " book "}, now)
	require.NoError(t, err)
	assert.Equal(t, "Read", habit.Title)
	assert.Equal(t, models.HabitCategoryWellness, habit.Category)
	assert.Equal(t, models.HabitFrequencyDaily, habit.Frequency)
	assert.Equal(t, 1, habit.TargetCount)
	assert.True(t, habit.IsActive)
	require.NotNil(t, habit.Icon)
	assert.Equal(t, "book", *habit.Icon)
	assert.Nil(t, habit.Description)

	tests := []struct {
		name  string
		input HabitInput
		want  error
	}{
		{name: "blank title", input: HabitInput{Title: " "}, want: ErrHabitTitleRequired},
		{name: "unknown category", input: HabitInput{Title: "Run", Category: "sports"}, want: ErrHabitCategoryInvalid},
		{name: "unknown frequency", input: HabitInput{Title: "Run", Frequency: "hourly"}, want: ErrHabitFrequencyInvalid},
		{name: "negative target", input: HabitInput{Title: "Run", TargetCount: -2}, want: ErrHabitTargetCountTooLow},
	}
	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := BuildHabit(testCase.input, now)
			assert.ErrorIs(t, err, testCase.want)
		})
	}
}

func TestHabitServiceCompleteUpdatesStreaks(t *testing.T) {
	habits := &stubHabitRepository{habits: []models.Habit{{ID: 1, UserID: 2, Title: "Meditate", IsActive: true}}}
	recorder := &stubCompletionRecorder{
		history: []time.Time{time.Date(2026, 3, 9, 7, 0, 0, 0, time.UTC)},
		profile: models.Profile{ID: 2, LongestStreak: 1},
	}
	service := NewHabitService(habits, recorder)
	now := time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC)

	profile, err := service.Complete(sessionFor(2), 1, "  felt good ", now, time.UTC)
	require.NoError(t, err)

	assert.Equal(t, 2, profile.CurrentStreak)
	assert.Equal(t, 2, profile.LongestStreak)
	assert.Equal(t, 1, profile.TotalHabitsCompleted)
	require.Len(t, recorder.recorded, 1)
	assert.Equal(t, "felt good", *recorder.recorded[0].Notes)
	assert.Equal(t, uint(2), recorder.recorded[0].UserID)
}

func TestHabitServiceScopesToOwner(t *testing.T) {
	habits := &stubHabitRepository{habits: []models.Habit{{ID: 1, UserID: 2, Title: "Meditate", IsActive: true}}}
	recorder := &stubCompletionRecorder{}
	service := NewHabitService(habits, recorder)

	_, err := service.Complete(sessionFor(3), 1, "", time.Now(), time.UTC)
	assert.ErrorIs(t, err, ErrHabitNotFound)
	assert.Empty(t, recorder.recorded)

	assert.ErrorIs(t, service.Deactivate(sessionFor(3), 1), ErrHabitNotFound)
	assert.NoError(t, service.Deactivate(sessionFor(2), 1))
	assert.Equal(t, []uint{1}, habits.deactivated)
}

func TestHabitServiceCreate(t *testing.T) {
	habits := &stubHabitRepository{}

	habit, err := NewHabitService(habits, &stubCompletionRecorder{}).Create(sessionFor(8), HabitInput{Title: "Journal", Category: "Mindfulness"}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, uint(8), habit.UserID)
	assert.Equal(t, models.HabitCategoryMindfulness, habit.Category)
	assert.NotZero(t, habit.ID)
	assert.Len(t, habits.created, 1)
}
