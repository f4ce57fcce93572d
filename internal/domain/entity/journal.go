package entity

import "time"

type SentReminder struct {
	ID          int64
	RunID       string
	ChannelID   ChannelID
	MessageTS   string
	SessionDate time.Time
	SentAt      time.Time
}

type RelayedReaction struct {
	ID          int64
	ChannelID   ChannelID
	MessageTS   string
	ReactorID   Identity
	ReactorName string
	Reaction    string
	RelayedAt   time.Time
}

// Status is a point-in-time view of the planner, rendered by the status command.
type Status struct {
	NextReminder   time.Time
	NextSession    time.Time
	LastReminder   *SentReminder
	ReactionsCount int
}
