package ai

import (
	"context"
	"regexp"
	"strings"
)

const (
	diaryAnalysisLines       = 3
	diaryRecommendationCount = 3
)

var numberedLinePattern = regexp.MustCompile(`^\d+[.)]`)

func (coach *Coach) AnalyzeEmotionalDiary(ctx context.Context, entry DiaryEntry) DiaryAnalysis {
	messages, err := coach.prompts.Diary.Messages(entry)
	if err != nil {
		coach.logFallback("analyze_diary", err)
		return FallbackDiaryAnalysis()
	}

	content, err := coach.complete(ctx, "analyze_diary", coach.prompts.Diary, messages)
	if err != nil {
		coach.logFallback("analyze_diary", err)
		return FallbackDiaryAnalysis()
	}

	analysis, ok := ParseDiaryAnalysis(content)
	if !ok {
		coach.logFallback("analyze_diary", ErrEmptyCompletion)
		return FallbackDiaryAnalysis()
	}
	return analysis
}

// ParseDiaryAnalysis joins the first three non-empty lines into the analysis
// and collects bullet or numbered lines after them as recommendations. The
// list is always three long; missing entries come from the fallbacks.
func ParseDiaryAnalysis(content string) (DiaryAnalysis, bool) {
	lines := nonEmptyLines(content)
	if len(lines) == 0 {
		return DiaryAnalysis{}, false
	}

	head := lines
	if len(head) > diaryAnalysisLines {
		head = head[:diaryAnalysisLines]
	}

	recommendations := make([]string, 0, diaryRecommendationCount)
	for _, line := range lines[len(head):] {
		if len(recommendations) == diaryRecommendationCount {
			break
		}
		if isRecommendationLine(line) {
			recommendations = append(recommendations, line)
		}
	}
	for _, fallback := range FallbackDiaryRecommendations()[len(recommendations):] {
		recommendations = append(recommendations, fallback)
	}

	return DiaryAnalysis{
		Analysis:        strings.Join(head, " "),
		Recommendations: recommendations,
	}, true
}

func isRecommendationLine(line string) bool {
	if strings.Contains(line, "-") || numberedLinePattern.MatchString(line) {
		return true
	}
	return strings.HasPrefix(line, "*") || strings.HasPrefix(line, "•")
}

func nonEmptyLines(content string) []string {
	rawLines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(rawLines))
	for _, rawLine := range rawLines {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
