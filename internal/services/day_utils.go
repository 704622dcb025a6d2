package services

import "time"

const trailingWeek = 7 * 24 * time.Hour

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

// TodayWindow spans local midnight to 23:59:59 of the same calendar day,
// both ends inclusive.
func TodayWindow(now time.Time, location *time.Location) (time.Time, time.Time) {
	start, next := DayRange(now, location)
	return start, next.Add(-time.Second)
}

func TrailingWeekWindow(now time.Time) (time.Time, time.Time) {
	return now.Add(-trailingWeek), now
}

// DueDateFor maps the local calendar day of now onto a UTC midnight so date
// columns compare equal regardless of the server zone.
func DueDateFor(now time.Time, location *time.Location) time.Time {
	year, month, day := DateAtLocation(now, location).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
