package service

import (
	"context"
	"fmt"

	"github.com/diegoclair/session-planner-bot/internal/domain/contract"
	"github.com/diegoclair/session-planner-bot/internal/domain/entity"
	"github.com/diegoclair/session-planner-bot/internal/domain/occurrence"
)

type planner struct {
	clock     occurrence.Clock
	dm        contract.DataManager
	channelID entity.ChannelID
}

// Status reports the upcoming reminder, the session it will announce, and the
// last journaled reminder with the number of reactions relayed for it.
func (p *planner) Status(ctx context.Context) (*entity.Status, error) {
	nextReminder := occurrence.NextReminderInstant(p.clock.Now())
	status := &entity.Status{
		NextReminder: nextReminder,
		NextSession:  occurrence.NextSessionDate(nextReminder),
	}

	// both reads see the same journal snapshot
	err := p.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		latest, err := tx.Reminder().GetLatest(p.channelID)
		if err != nil {
			return fmt.Errorf("failed to get latest reminder: %w", err)
		}
		if latest == nil {
			return nil
		}

		count, err := tx.Reaction().CountByMessage(p.channelID, latest.MessageTS)
		if err != nil {
			return fmt.Errorf("failed to count reactions: %w", err)
		}

		// journal rows come back in UTC
		loc := nextReminder.Location()
		last := *latest
		last.SessionDate = latest.SessionDate.In(loc)
		last.SentAt = latest.SentAt.In(loc)
		status.LastReminder = &last
		status.ReactionsCount = count

		return nil
	})
	if err != nil {
		return nil, err
	}

	return status, nil
}
