package ai

import "time"

type DiaryEntry struct {
	Mood     string
	Energy   int
	Stress   int
	Notes    string
	Emotions []string
}

type DiaryAnalysis struct {
	Analysis        string   `json:"analysis"`
	Recommendations []string `json:"recommendations"`
}

type OnboardingData struct {
	Goals             []string `json:"goals"`
	Challenges        []string `json:"challenges"`
	SleepHours        float64  `json:"sleepHours"`
	ExerciseFrequency string   `json:"exerciseFrequency"`
	StressLevel       int      `json:"stressLevel"`
	FocusAreas        []string `json:"focusAreas"`
	PreferredTime     string   `json:"preferredTime"`
}

type DailyRoutine struct {
	Morning   []string `json:"morning"`
	Afternoon []string `json:"afternoon"`
	Evening   []string `json:"evening"`
}

type WellnessPlan struct {
	ID           string       `json:"id"`
	GeneratedAt  time.Time    `json:"generatedAt"`
	Goals        []string     `json:"goals"`
	DailyRoutine DailyRoutine `json:"dailyRoutine"`
	Habits       []string     `json:"habits"`
	Trails       []string     `json:"trails"`
	AIInsights   string       `json:"aiInsights"`
}
