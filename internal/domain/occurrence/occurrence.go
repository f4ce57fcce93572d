// Package occurrence computes the next reminder and session instants.
// All functions are pure: they only depend on the instant passed in and
// keep its location.
package occurrence

import (
	"time"

	"github.com/diegoclair/session-planner-bot/internal/domain"
)

// NextWeekdayOnOrAfter returns the first instant after t that falls on weekday,
// keeping t's wall-clock time. When t already falls on weekday the result is
// the same weekday of the following week.
//
// Days are stepped on the calendar, not in 24h blocks, so a daylight saving
// transition never shifts the time of day.
func NextWeekdayOnOrAfter(t time.Time, weekday time.Weekday) time.Time {
	next := t
	if next.Weekday() == weekday {
		next = next.AddDate(0, 0, 1)
	}
	for next.Weekday() != weekday {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// NextReminderInstant returns the next Tuesday 10:00 strictly after now.
func NextReminderInstant(now time.Time) time.Time {
	next := atHour(NextWeekdayOnOrAfter(now, domain.ReminderWeekday), domain.ReminderHour)
	if next.After(now) {
		return next
	}
	return next.AddDate(0, 0, 1)
}

// NextSessionDate returns the Thursday 19:00 two weeks after the next Thursday.
func NextSessionDate(now time.Time) time.Time {
	thursday := NextWeekdayOnOrAfter(now, domain.SessionWeekday)
	return atHour(thursday.AddDate(0, 0, domain.SessionLeadDays), domain.SessionHour)
}

func atHour(t time.Time, hour int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, 0, 0, 0, t.Location())
}
