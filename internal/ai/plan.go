package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// PlanValidationError explains why a generated plan was rejected.
type PlanValidationError struct {
	Reason string
}

func (err *PlanValidationError) Error() string {
	return "invalid wellness plan: " + err.Reason
}

type planPayload struct {
	Goals        []string `json:"goals"`
	DailyRoutine *struct {
		Morning   []string `json:"morning"`
		Afternoon []string `json:"afternoon"`
		Evening   []string `json:"evening"`
	} `json:"dailyRoutine"`
	Habits     []string `json:"habits"`
	Trails     []string `json:"trails"`
	AIInsights *string  `json:"aiInsights"`
}

func (coach *Coach) GenerateWellnessPlan(ctx context.Context, data OnboardingData) WellnessPlan {
	plan := coach.generateWellnessPlan(ctx, data)
	plan.ID = uuid.NewString()
	plan.GeneratedAt = coach.now().UTC()
	return plan
}

func (coach *Coach) generateWellnessPlan(ctx context.Context, data OnboardingData) WellnessPlan {
	messages, err := coach.prompts.Plan.Messages(data)
	if err != nil {
		coach.logFallback("generate_plan", err)
		return DefaultWellnessPlan()
	}

	content, err := coach.complete(ctx, "generate_plan", coach.prompts.Plan, messages)
	if err != nil {
		coach.logFallback("generate_plan", err)
		return DefaultWellnessPlan()
	}

	plan, err := DecodeWellnessPlan(content)
	if err != nil {
		coach.logFallback("generate_plan", err)
		return DefaultWellnessPlan()
	}
	return plan
}

// DecodeWellnessPlan parses and validates a JSON plan. Every list must hold at
// least one non-blank entry and the insight text must be present; anything
// else yields a *PlanValidationError.
func DecodeWellnessPlan(content string) (WellnessPlan, error) {
	var payload planPayload
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &payload); err != nil {
		return WellnessPlan{}, &PlanValidationError{Reason: fmt.Sprintf("malformed json: %v", err)}
	}

	if payload.DailyRoutine == nil {
		return WellnessPlan{}, &PlanValidationError{Reason: "dailyRoutine is missing"}
	}
	if payload.AIInsights == nil || strings.TrimSpace(*payload.AIInsights) == "" {
		return WellnessPlan{}, &PlanValidationError{Reason: "aiInsights is missing"}
	}

	plan := WellnessPlan{AIInsights: strings.TrimSpace(*payload.AIInsights)}
	fields := []struct {
		name   string
		source []string
		target *[]string
	}{
		{"goals", payload.Goals, &plan.Goals},
		{"dailyRoutine.morning", payload.DailyRoutine.Morning, &plan.DailyRoutine.Morning},
		{"dailyRoutine.afternoon", payload.DailyRoutine.Afternoon, &plan.DailyRoutine.Afternoon},
		{"dailyRoutine.evening", payload.DailyRoutine.Evening, &plan.DailyRoutine.Evening},
		{"habits", payload.Habits, &plan.Habits},
		{"trails", payload.Trails, &plan.Trails},
	}
	for _, field := range fields {
		values, err := requireEntries(field.name, field.source)
		if err != nil {
			return WellnessPlan{}, err
		}
		*field.target = values
	}
	return plan, nil
}

func requireEntries(name string, values []string) ([]string, error) {
	if len(values) == 0 {
		return nil, &PlanValidationError{Reason: name + " is empty"}
	}
	cleaned := make([]string, 0, len(values))
	for index, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return nil, &PlanValidationError{Reason: fmt.Sprintf("%s[%d] is blank", name, index)}
		}
		cleaned = append(cleaned, trimmed)
	}
	return cleaned, nil
}

func stripCodeFence(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```")
	if newline := strings.Index(trimmed, "\n"); newline >= 0 {
		trimmed = trimmed[newline+1:]
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(trimmed), "```"))
}
