package services

import (
	"math"
	"time"

	"github.com/terraincognita07/aurora/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type StatsHabitReader interface {
	CountActiveByUser(userID uint) (int64, error)
}

type StatsCompletionReader interface {
	CountByUserBetween(userID uint, from time.Time, to time.Time) (int64, error)
}

type DashboardStats struct {
	HabitsCompleted int `json:"habitsCompleted"`
	TotalHabits     int `json:"totalHabits"`
	CurrentStreak   int `json:"currentStreak"`
	Level           int `json:"level"`
	XP              int `json:"xp"`
	NextLevelXP     int `json:"nextLevelXp"`
	WeeklyProgress  int `json:"weeklyProgress"`
}

type StatsService struct {
	habits      StatsHabitReader
	completions StatsCompletionReader
	logger      *zap.Logger
}

func NewStatsService(habits StatsHabitReader, completions StatsCompletionReader, logger *zap.Logger) *StatsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatsService{
		habits:      habits,
		completions: completions,
		logger:      logger,
	}
}

// BuildDashboardStats recomputes the snapshot from three independent reads.
// A failed read is logged and counted as zero so the dashboard still renders.
func (service *StatsService) BuildDashboardStats(session Session, now time.Time, location *time.Location) DashboardStats {
	userID := session.UserID()
	todayStart, todayEnd := TodayWindow(now, location)
	weekStart, weekEnd := TrailingWeekWindow(now)

	var totalHabits, todayCount, weekCount int64
	var group errgroup.Group
	group.Go(func() error {
		totalHabits = service.degradeCount(userID, "count_active_habits", func() (int64, error) {
			return service.habits.CountActiveByUser(userID)
		})
		return nil
	})
	group.Go(func() error {
		todayCount = service.degradeCount(userID, "count_today_completions", func() (int64, error) {
			return service.completions.CountByUserBetween(userID, todayStart, todayEnd)
		})
		return nil
	})
	group.Go(func() error {
		weekCount = service.degradeCount(userID, "count_week_completions", func() (int64, error) {
			return service.completions.CountByUserBetween(userID, weekStart, weekEnd)
		})
		return nil
	})
	_ = group.Wait()

	level := models.EffectiveLevel(session.Profile.Level)
	return DashboardStats{
		HabitsCompleted: int(todayCount),
		TotalHabits:     int(totalHabits),
		CurrentStreak:   session.Profile.CurrentStreak,
		Level:           level,
		XP:              session.Profile.XP,
		NextLevelXP:     models.NextLevelXP(level),
		WeeklyProgress:  WeeklyProgressPercent(int(weekCount), int(totalHabits)),
	}
}

func (service *StatsService) degradeCount(userID uint, operation string, read func() (int64, error)) int64 {
	count, err := read()
	if err != nil {
		service.logger.Warn("stats read failed",
			zap.Uint("user_id", userID),
			zap.String("operation", operation),
			zap.Error(err),
		)
		return 0
	}
	return count
}

// WeeklyProgressPercent assumes one completion per habit per day. It is not
// clamped, so repeated completions can push it past 100.
func WeeklyProgressPercent(weekCompletions int, totalHabits int) int {
	if totalHabits <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(weekCompletions) / float64(totalHabits*7)))
}
