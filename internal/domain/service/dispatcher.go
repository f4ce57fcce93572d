package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/diegoclair/session-planner-bot/internal/domain/contract"
	"github.com/diegoclair/session-planner-bot/internal/domain/entity"
	"github.com/diegoclair/session-planner-bot/internal/domain/occurrence"
	"github.com/diegoclair/session-planner-bot/internal/metrics"
)

type dispatcher struct {
	state     *BotState
	clock     occurrence.Clock
	chat      contract.ChatClient
	dm        contract.DataManager
	runner    contract.TaskRunner
	reminders *reminderScheduler
	keepAlive *keepAlive // nil when no self-ping URL is configured
	log       *zap.Logger
}

// Dispatch routes one gateway event to its handler. Any returned error is
// fatal to the process.
func (d *dispatcher) Dispatch(ctx context.Context, event entity.Event) error {
	switch event.Type {
	case entity.EventReady:
		if event.Ready == nil {
			return fmt.Errorf("%s event without payload", event.Type)
		}
		return d.onReady(ctx, *event.Ready)
	case entity.EventReactionAdded:
		if event.Reaction == nil {
			return fmt.Errorf("%s event without payload", event.Type)
		}
		return d.onReactionAdded(ctx, *event.Reaction)
	default:
		return fmt.Errorf("unsupported event type %d", event.Type)
	}
}

func (d *dispatcher) onReady(ctx context.Context, ready entity.ReadyEvent) error {
	if err := d.state.Initialize(ready.Self, ready.Owner); err != nil {
		return fmt.Errorf("failed to initialize bot state: %w", err)
	}
	d.log.Info("connected", zap.String("self", string(ready.Self)), zap.String("owner", string(ready.Owner)))

	nextReminder := occurrence.NextReminderInstant(d.clock.Now())
	text := startupText(nextReminder, occurrence.NextSessionDate(nextReminder))
	if err := d.chat.SendDirectMessage(ctx, ready.Owner, text); err != nil {
		metrics.SendErrors.WithLabelValues("startup_notice").Inc()
		return fmt.Errorf("failed to send startup notice: %w", err)
	}

	d.runner.Go(func() error { return d.reminders.Run(ctx) })
	if d.keepAlive != nil {
		d.runner.Go(func() error { return d.keepAlive.Run(ctx) })
	} else {
		d.log.Info("keep-alive disabled, no self-ping URL configured")
	}

	return nil
}

func (d *dispatcher) onReactionAdded(ctx context.Context, event entity.ReactionEvent) error {
	self, err := d.state.Self()
	if err != nil {
		return err
	}

	if event.MessageAuthor != self {
		metrics.ReactionsIgnored.Inc()
		d.log.Debug("ignoring reaction on foreign message",
			zap.String("author", string(event.MessageAuthor)),
			zap.String("ts", event.MessageTS),
		)
		return nil
	}

	owner, err := d.state.Owner()
	if err != nil {
		return err
	}

	rc, err := d.chat.FetchReactionContext(ctx, event)
	if err != nil {
		metrics.SendErrors.WithLabelValues("reaction_context").Inc()
		return fmt.Errorf("failed to fetch reaction context: %w", err)
	}

	if err := d.chat.SendDirectMessage(ctx, owner, reactionText(rc, event.Emoji)); err != nil {
		metrics.SendErrors.WithLabelValues("reaction_notice").Inc()
		return fmt.Errorf("failed to relay reaction: %w", err)
	}
	metrics.ReactionsRelayed.Inc()
	d.log.Info("reaction relayed",
		zap.String("reactor", string(event.Reactor)),
		zap.String("emoji", event.Emoji),
		zap.String("ts", event.MessageTS),
	)

	relayed := &entity.RelayedReaction{
		ChannelID:   event.ChannelID,
		MessageTS:   event.MessageTS,
		ReactorID:   event.Reactor,
		ReactorName: rc.ReactingDisplayName,
		Reaction:    event.Emoji,
		RelayedAt:   d.clock.Now(),
	}
	if err := d.dm.Reaction().Create(relayed); err != nil {
		d.log.Error("failed to journal reaction", zap.Error(err))
	}

	return nil
}
