package core

import (
	"time"
)

// CalculateFine computes the overdue fine for a loan due at dueDate and
// settled at asOf: whole calendar days late (UTC dates, truncated) times
// perDay. Returning on or before the due date is free, as is returning later
// on the due date itself.
func CalculateFine(dueDate time.Time, asOf time.Time, perDay float64) float64 {
	daysLate := wholeDaysBetween(dueDate, asOf)
	if daysLate <= 0 {
		return 0
	}

	return float64(daysLate) * perDay
}

// DaysOverdue counts the whole calendar days a loan due at dueDate is late
// as of asOf, zero when it is not late at all.
func DaysOverdue(dueDate time.Time, asOf time.Time) int {
	daysLate := wholeDaysBetween(dueDate, asOf)
	if daysLate < 0 {
		return 0
	}

	return daysLate
}

// wholeDaysBetween counts calendar days from one UTC date to another,
// ignoring the time of day on both ends.
func wholeDaysBetween(from time.Time, to time.Time) int {
	fromDate := truncateToDate(from)
	toDate := truncateToDate(to)

	return int(toDate.Sub(fromDate).Hours() / 24)
}

func truncateToDate(t time.Time) time.Time {
	utc := t.UTC()
	return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
}
