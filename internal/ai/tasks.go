package ai

import "context"

const dailyTaskCount = 3

type dailyTasksPrompt struct {
	Goals      []string
	RecentMood string
	Habits     []string
}

func (coach *Coach) GenerateDailyTasks(ctx context.Context, goals []string, recentMood string, habits []string) []string {
	messages, err := coach.prompts.Tasks.Messages(dailyTasksPrompt{Goals: goals, RecentMood: recentMood, Habits: habits})
	if err != nil {
		coach.logFallback("generate_tasks", err)
		return FallbackDailyTasks()
	}

	content, err := coach.complete(ctx, "generate_tasks", coach.prompts.Tasks, messages)
	if err != nil {
		coach.logFallback("generate_tasks", err)
		return FallbackDailyTasks()
	}

	tasks := ParseDailyTasks(content)
	if len(tasks) == 0 {
		coach.logFallback("generate_tasks", ErrEmptyCompletion)
		return FallbackDailyTasks()
	}
	return tasks
}

// ParseDailyTasks keeps the first three non-empty lines in reply order.
func ParseDailyTasks(content string) []string {
	lines := nonEmptyLines(content)
	if len(lines) > dailyTaskCount {
		lines = lines[:dailyTaskCount]
	}
	return lines
}
