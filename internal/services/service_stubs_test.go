package services

import (
	"context"
	"sync"
	"time"

	"github.com/terraincognita07/aurora/internal/ai"
	"github.com/terraincognita07/aurora/internal/db"
	"github.com/terraincognita07/aurora/internal/models"
	"gorm.io/gorm"
)

type stubHabitCounter struct {
	count int64
	err   error
}

func (stub stubHabitCounter) CountActiveByUser(uint) (int64, error) {
	return stub.count, stub.err
}

type windowCount struct {
	from  time.Time
	to    time.Time
	count int64
}

type stubCompletionCounter struct {
	mu      sync.Mutex
	windows []windowCount
	err     error
	calls   int
}

func (stub *stubCompletionCounter) CountByUserBetween(_ uint, from time.Time, to time.Time) (int64, error) {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	stub.calls++
	if stub.err != nil {
		return 0, stub.err
	}
	for _, window := range stub.windows {
		if window.from.Equal(from) && window.to.Equal(to) {
			return window.count, nil
		}
	}
	return 0, nil
}

type stubCoach struct {
	analysis     ai.DiaryAnalysis
	plan         ai.WellnessPlan
	reply        string
	tasks        []string
	diaryCalls   int
	planCalls    int
	lastHistory  []ai.Message
	lastGoals    []string
	lastMood     string
	lastHabits   []string
	lastOnboard  ai.OnboardingData
	lastDiaryReq ai.DiaryEntry
}

func (coach *stubCoach) AnalyzeEmotionalDiary(_ context.Context, entry ai.DiaryEntry) ai.DiaryAnalysis {
	coach.diaryCalls++
	coach.lastDiaryReq = entry
	return coach.analysis
}

func (coach *stubCoach) GenerateWellnessPlan(_ context.Context, data ai.OnboardingData) ai.WellnessPlan {
	coach.planCalls++
	coach.lastOnboard = data
	return coach.plan
}

func (coach *stubCoach) ChatWithAI(_ context.Context, history []ai.Message) string {
	coach.lastHistory = history
	return coach.reply
}

func (coach *stubCoach) GenerateDailyTasks(_ context.Context, goals []string, recentMood string, habits []string) []string {
	coach.lastGoals = goals
	coach.lastMood = recentMood
	coach.lastHabits = habits
	return coach.tasks
}

type stubDiaryRepository struct {
	created []models.MoodEntry
	err     error
}

func (repo *stubDiaryRepository) Create(entry *models.MoodEntry) error {
	if repo.err != nil {
		return repo.err
	}
	entry.ID = uint(len(repo.created) + 1)
	repo.created = append(repo.created, *entry)
	return nil
}

func (repo *stubDiaryRepository) ListRecentByUser(uint, int) ([]models.MoodEntry, error) {
	return repo.created, nil
}

type stubChatRepository struct {
	messages []models.ChatMessage
}

func (repo *stubChatRepository) Create(message *models.ChatMessage) error {
	message.ID = uint(len(repo.messages) + 1)
	repo.messages = append(repo.messages, *message)
	return nil
}

func (repo *stubChatRepository) ListByUser(_ uint, limit int) ([]models.ChatMessage, error) {
	if limit > 0 && len(repo.messages) > limit {
		return repo.messages[len(repo.messages)-limit:], nil
	}
	return repo.messages, nil
}

type stubOnboardingRepository struct {
	userID uint
	goals  []string
	habits []models.Habit
	tasks  []models.DailyTask
	calls  int
	err    error
}

func (repo *stubOnboardingRepository) CompleteOnboarding(userID uint, goals []string, habits []models.Habit, tasks []models.DailyTask) error {
	repo.calls++
	if repo.err != nil {
		return repo.err
	}
	repo.userID = userID
	repo.goals = goals
	repo.habits = habits
	repo.tasks = tasks
	return nil
}

type stubTaskRepository struct {
	created []models.DailyTask
	toggle  db.TaskToggleResult
	err     error
}

func (repo *stubTaskRepository) ListByUserDueDate(uint, time.Time) ([]models.DailyTask, error) {
	return repo.created, nil
}

func (repo *stubTaskRepository) CreateBatch(tasks []models.DailyTask) error {
	repo.created = append(repo.created, tasks...)
	return nil
}

func (repo *stubTaskRepository) ToggleCompletion(uint, uint, time.Time) (db.TaskToggleResult, error) {
	return repo.toggle, repo.err
}

type stubMoodReader struct {
	mood  string
	found bool
	err   error
}

func (stub stubMoodReader) LatestMood(uint) (string, bool, error) {
	return stub.mood, stub.found, stub.err
}

type stubHabitRepository struct {
	habits      []models.Habit
	created     []models.Habit
	deactivated []uint
}

func (repo *stubHabitRepository) ListActiveByUser(uint) ([]models.Habit, error) {
	return repo.habits, nil
}

func (repo *stubHabitRepository) FindActiveByIDForUser(userID uint, habitID uint) (models.Habit, error) {
	for _, habit := range repo.habits {
		if habit.ID == habitID && habit.UserID == userID && habit.IsActive {
			return habit, nil
		}
	}
	return models.Habit{}, gorm.ErrRecordNotFound
}

func (repo *stubHabitRepository) Create(habit *models.Habit) error {
	habit.ID = uint(len(repo.habits) + len(repo.created) + 1)
	repo.created = append(repo.created, *habit)
	return nil
}

func (repo *stubHabitRepository) Deactivate(userID uint, habitID uint) error {
	if _, err := repo.FindActiveByIDForUser(userID, habitID); err != nil {
		return err
	}
	repo.deactivated = append(repo.deactivated, habitID)
	return nil
}

type stubCompletionRecorder struct {
	history  []time.Time
	recorded []models.HabitCompletion
	profile  models.Profile
}

func (stub *stubCompletionRecorder) Record(completion *models.HabitCompletion, recalculate db.StreakRecalculator) (models.Profile, error) {
	stub.recorded = append(stub.recorded, *completion)
	stub.history = append(stub.history, completion.CompletedAt)
	profile := stub.profile
	profile.TotalHabitsCompleted++
	profile.CurrentStreak, profile.LongestStreak = recalculate(stub.history, profile.LongestStreak)
	stub.profile = profile
	return profile, nil
}

type stubTrailRepository struct {
	trails   []models.WellnessTrail
	progress []models.TrailProgress
	advance  db.TrailAdvanceResult
	advErr   error
}

func (repo *stubTrailRepository) ListCatalog() ([]models.WellnessTrail, error) {
	return repo.trails, nil
}

func (repo *stubTrailRepository) FindByID(trailID uint) (models.WellnessTrail, error) {
	for _, trail := range repo.trails {
		if trail.ID == trailID {
			return trail, nil
		}
	}
	return models.WellnessTrail{}, gorm.ErrRecordNotFound
}

func (repo *stubTrailRepository) ListProgressByUser(uint) ([]models.TrailProgress, error) {
	return repo.progress, nil
}

func (repo *stubTrailRepository) StartProgress(userID uint, trailID uint, now time.Time) (models.TrailProgress, error) {
	progress := models.TrailProgress{UserID: userID, TrailID: trailID, StartedAt: now}
	repo.progress = append(repo.progress, progress)
	return progress, nil
}

func (repo *stubTrailRepository) AdvanceProgress(uint, uint, time.Time) (db.TrailAdvanceResult, error) {
	return repo.advance, repo.advErr
}

func sessionFor(userID uint) Session {
	return NewSession(models.Profile{ID: userID, Level: 1, OnboardingCompleted: true})
}
