package contract

import (
	"context"

	"github.com/diegoclair/session-planner-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Reminder() ReminderRepo
	Reaction() ReactionRepo
}

// ReminderRepo defines the contract for the sent reminder journal
type ReminderRepo interface {
	Create(reminder *entity.SentReminder) error
	GetLatest(channelID entity.ChannelID) (*entity.SentReminder, error)
}

// ReactionRepo defines the contract for the relayed reaction journal
type ReactionRepo interface {
	Create(reaction *entity.RelayedReaction) error
	CountByMessage(channelID entity.ChannelID, messageTS string) (int, error)
}
