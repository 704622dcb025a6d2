package services

import "time"

// CalculateStreaks counts consecutive local days with at least one
// completion. The current streak must end today or yesterday, otherwise it
// is zero. The longest streak never shrinks below longestSoFar.
func CalculateStreaks(completedAt []time.Time, longestSoFar int, now time.Time, location *time.Location) (int, int) {
	days := make(map[time.Time]struct{}, len(completedAt))
	for _, instant := range completedAt {
		days[DateAtLocation(instant, location)] = struct{}{}
	}

	longest := longestSoFar
	for day := range days {
		if _, hasPrevious := days[day.AddDate(0, 0, -1)]; hasPrevious {
			continue
		}
		run := 1
		for cursor := day.AddDate(0, 0, 1); ; cursor = cursor.AddDate(0, 0, 1) {
			if _, ok := days[cursor]; !ok {
				break
			}
			run++
		}
		if run > longest {
			longest = run
		}
	}

	today := DateAtLocation(now, location)
	anchor := today
	if _, ok := days[today]; !ok {
		anchor = today.AddDate(0, 0, -1)
		if _, ok := days[anchor]; !ok {
			return 0, longest
		}
	}

	current := 0
	for cursor := anchor; ; cursor = cursor.AddDate(0, 0, -1) {
		if _, ok := days[cursor]; !ok {
			break
		}
		current++
	}
	if current > longest {
		longest = current
	}
	return current, longest
}
