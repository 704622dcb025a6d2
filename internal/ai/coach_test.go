package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubCompleter struct {
	content  string
	err      error
	requests []CompletionRequest
}

func (stub *stubCompleter) Complete(_ context.Context, request CompletionRequest) (string, error) {
	stub.requests = append(stub.requests, request)
	if stub.err != nil {
		return "", stub.err
	}
	return stub.content, nil
}

func newTestCoach(t *testing.T, client Completer) *Coach {
	t.Helper()
	coach, err := NewCoach(client, zap.NewNop())
	require.NoError(t, err)
	return coach
}

func TestAnalyzeEmotionalDiaryFallsBackOnNetworkFailure(t *testing.T) {
	entries := []DiaryEntry{
		{Mood: "good", Energy: 7, Stress: 3, Notes: "Slept well", Emotions: []string{"calm"}},
		{Mood: "terrible", Energy: 1, Stress: 10},
	}
	for _, entry := range entries {
		coach := newTestCoach(t, &stubCompleter{err: errors.New("connection refused")})
		result := coach.AnalyzeEmotionalDiary(context.Background(), entry)

		assert.Equal(t, FallbackDiaryAnalysisText, result.Analysis)
		assert.Equal(t, FallbackDiaryRecommendations(), result.Recommendations)
		assert.Len(t, result.Recommendations, 3)
	}
}

func TestAnalyzeEmotionalDiaryParsesReply(t *testing.T) {
	stub := &stubCompleter{content: "It sounds like a heavy day.\n\nYou still showed up.\nThat matters.\n- Breathe for five minutes\nSome filler line\n2. Drink water\n* Call a friend\n- Extra tip"}
	coach := newTestCoach(t, stub)

	result := coach.AnalyzeEmotionalDiary(context.Background(), DiaryEntry{Mood: "bad", Energy: 3, Stress: 8, Notes: "Long day"})

	assert.Equal(t, "It sounds like a heavy day. You still showed up. That matters.", result.Analysis)
	assert.Equal(t, []string{"- Breathe for five minutes", "2. Drink water", "* Call a friend"}, result.Recommendations)

	require.Len(t, stub.requests, 1)
	request := stub.requests[0]
	assert.InDelta(t, 0.7, request.Temperature, 1e-9)
	assert.False(t, request.JSONResponse)
	require.Len(t, request.Messages, 2)
	assert.Equal(t, RoleSystem, request.Messages[0].Role)
	assert.Contains(t, request.Messages[1].Content, "Mood: bad")
	assert.Contains(t, request.Messages[1].Content, "Stress: 8/10")
	assert.Contains(t, request.Messages[1].Content, "Emotions: Not specified")
}

func TestParseDiaryAnalysisPadsMissingRecommendations(t *testing.T) {
	result, ok := ParseDiaryAnalysis("Short reply.\nSecond line.\nThird line.\n1. Rest early")
	require.True(t, ok)

	want := []string{"1. Rest early", "Take a walk outdoors", "Connect with someone you like"}
	if diff := cmp.Diff(want, result.Recommendations); diff != "" {
		t.Fatalf("unexpected recommendations (-want +got):\n%s", diff)
	}

	_, ok = ParseDiaryAnalysis(" \n\n ")
	assert.False(t, ok)
}

func TestGenerateWellnessPlanFallsBackOnMalformedJSON(t *testing.T) {
	replies := []string{
		"{not json",
		`{"goals": ["Sleep"]}`,
		`{"goals": [], "dailyRoutine": {"morning": ["a"], "afternoon": ["b"], "evening": ["c"]}, "habits": ["h"], "trails": ["t"], "aiInsights": "x"}`,
	}
	for _, reply := range replies {
		coach := newTestCoach(t, &stubCompleter{content: reply})
		plan := coach.GenerateWellnessPlan(context.Background(), OnboardingData{Goals: []string{"Sleep"}, StressLevel: 5})

		want := DefaultWellnessPlan()
		if diff := cmp.Diff(want, plan, cmpopts.IgnoreFields(WellnessPlan{}, "ID", "GeneratedAt")); diff != "" {
			t.Fatalf("reply %q: expected default plan (-want +got):\n%s", reply, diff)
		}
		assert.NotEmpty(t, plan.ID)
		assert.False(t, plan.GeneratedAt.IsZero())
	}
}

func TestGenerateWellnessPlanUsesValidatedReply(t *testing.T) {
	stub := &stubCompleter{content: "```json\n" + `{
		"goals": [" Sleep deeper "],
		"dailyRoutine": {"morning": ["Stretch"], "afternoon": ["Walk"], "evening": ["Read"]},
		"habits": ["Journal"],
		"trails": ["Sleep"],
		"aiInsights": "Protect your evenings.",
		"extra": true
	}` + "\n```"}
	coach := newTestCoach(t, stub)

	plan := coach.GenerateWellnessPlan(context.Background(), OnboardingData{
		Goals:       []string{"Sleep"},
		Challenges:  []string{"Late screens"},
		SleepHours:  6.5,
		StressLevel: 6,
	})

	assert.Equal(t, []string{"Sleep deeper"}, plan.Goals)
	assert.Equal(t, DailyRoutine{Morning: []string{"Stretch"}, Afternoon: []string{"Walk"}, Evening: []string{"Read"}}, plan.DailyRoutine)
	assert.Equal(t, "Protect your evenings.", plan.AIInsights)

	require.Len(t, stub.requests, 1)
	assert.True(t, stub.requests[0].JSONResponse)
	assert.InDelta(t, 0.8, stub.requests[0].Temperature, 1e-9)
	assert.Contains(t, stub.requests[0].Messages[1].Content, "Sleep hours: 6.5")
}

func TestDecodeWellnessPlanReportsReason(t *testing.T) {
	_, err := DecodeWellnessPlan(`{"goals": ["a"], "dailyRoutine": {"morning": ["a"], "afternoon": [" "], "evening": ["c"]}, "habits": ["h"], "trails": ["t"], "aiInsights": "x"}`)

	var validationErr *PlanValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "dailyRoutine.afternoon[0] is blank", validationErr.Reason)
}

func TestChatWithAIForwardsHistoryBehindPersona(t *testing.T) {
	stub := &stubCompleter{content: "  Try a short walk. How does that sound?  "}
	coach := newTestCoach(t, stub)

	history := []Message{
		{Role: RoleUser, Content: "I feel restless"},
		{Role: RoleAssistant, Content: "Tell me more."},
		{Role: RoleSystem, Content: "ignored"},
		{Role: RoleUser, Content: "I can't focus"},
	}
	reply := coach.ChatWithAI(context.Background(), history)

	assert.Equal(t, "Try a short walk. How does that sound?", reply)
	require.Len(t, stub.requests, 1)
	request := stub.requests[0]
	assert.Equal(t, 200, request.MaxTokens)
	require.Len(t, request.Messages, 4)
	assert.Equal(t, RoleSystem, request.Messages[0].Role)
	assert.Equal(t, history[0], request.Messages[1])
	assert.Equal(t, history[3], request.Messages[3])
}

func TestChatWithAIFallsBack(t *testing.T) {
	failing := newTestCoach(t, &stubCompleter{err: errors.New("timeout")})
	assert.Equal(t, FallbackChatReply, failing.ChatWithAI(context.Background(), []Message{{Role: RoleUser, Content: "hi"}}))

	disabled := newTestCoach(t, nil)
	assert.False(t, disabled.Enabled())
	assert.Equal(t, FallbackChatReply, disabled.ChatWithAI(context.Background(), nil))
}

func TestGenerateDailyTasksKeepsFirstThreeLines(t *testing.T) {
	stub := &stubCompleter{content: "Drink a glass of water\n\nStretch for 5 minutes\nCall a friend\nRead 10 pages\nGo to bed early"}
	coach := newTestCoach(t, stub)

	tasks := coach.GenerateDailyTasks(context.Background(), []string{"Energy"}, "neutral", []string{"Meditate"})

	assert.Equal(t, []string{"Drink a glass of water", "Stretch for 5 minutes", "Call a friend"}, tasks)
	require.Len(t, stub.requests, 1)
	assert.Equal(t, 150, stub.requests[0].MaxTokens)
	assert.Contains(t, stub.requests[0].Messages[1].Content, "Recent mood: neutral")
}

func TestGenerateDailyTasksFallsBack(t *testing.T) {
	coach := newTestCoach(t, &stubCompleter{err: errors.New("boom")})
	assert.Equal(t, FallbackDailyTasks(), coach.GenerateDailyTasks(context.Background(), nil, "neutral", nil))

	empty := newTestCoach(t, &stubCompleter{content: "\n \n"})
	assert.Equal(t, FallbackDailyTasks(), empty.GenerateDailyTasks(context.Background(), nil, "neutral", nil))
}

func TestFallbacksReturnFreshSlices(t *testing.T) {
	first := FallbackDailyTasks()
	first[0] = "mutated"
	assert.NotEqual(t, "mutated", FallbackDailyTasks()[0])

	plan := DefaultWellnessPlan()
	plan.Goals[0] = "mutated"
	assert.NotEqual(t, "mutated", DefaultWellnessPlan().Goals[0])
}
