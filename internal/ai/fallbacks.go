package ai

const (
	FallbackDiaryAnalysisText = "Thank you for sharing your feelings. Keep journaling so we can follow your journey together."
	FallbackChatReply         = "I'm here to support you. How can I help you today?"
)

// Fallbacks return fresh slices so callers may mutate the result.

func FallbackDiaryRecommendations() []string {
	return []string{
		"Practice 5 minutes of deep breathing",
		"Take a walk outdoors",
		"Connect with someone you like",
	}
}

func FallbackDiaryAnalysis() DiaryAnalysis {
	return DiaryAnalysis{
		Analysis:        FallbackDiaryAnalysisText,
		Recommendations: FallbackDiaryRecommendations(),
	}
}

func FallbackDailyTasks() []string {
	return []string{
		"Practice 10 minutes of meditation",
		"Take a 20-minute walk",
		"Write down 3 things you are grateful for",
	}
}

// DefaultWellnessPlan is the plan served whenever generation fails. It carries
// the same fields as a generated plan.
func DefaultWellnessPlan() WellnessPlan {
	return WellnessPlan{
		Goals: []string{"Improve sleep quality", "Reduce stress", "Increase energy"},
		DailyRoutine: DailyRoutine{
			Morning:   []string{"Meditation 10min", "Light exercise 20min", "Healthy breakfast"},
			Afternoon: []string{"Active break 15min", "Hydration", "Stretching"},
			Evening:   []string{"Daily reflection", "Reading 20min", "Sleep routine"},
		},
		Habits:     []string{"Meditate daily", "Exercise 3x/week", "Sleep 8h"},
		Trails:     []string{"Anxiety", "Focus", "Sleep"},
		AIInsights: "Your profile shows a need for balance between productivity and rest.",
	}
}
