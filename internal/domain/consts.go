package domain

import "time"

// ReferenceTimezone is the IANA zone every schedule computation runs in
const ReferenceTimezone = "Europe/Amsterdam"

// Reminder cadence: every Tuesday at 10:00 a reminder is posted
const (
	ReminderWeekday = time.Tuesday
	ReminderHour    = 10
)

// Session cadence: the announced session is on a Thursday at 19:00,
// two weeks after the next Thursday
const (
	SessionWeekday  = time.Thursday
	SessionHour     = 19
	SessionLeadDays = 14
)

// KeepAliveInterval is the pause between two keep-alive pings
const KeepAliveInterval = 5 * time.Minute

// DateLocale is the locale session dates are written in
const DateLocale = "nl_NL"
