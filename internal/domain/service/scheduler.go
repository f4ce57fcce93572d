package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/diegoclair/session-planner-bot/internal/domain/contract"
	"github.com/diegoclair/session-planner-bot/internal/domain/entity"
	"github.com/diegoclair/session-planner-bot/internal/domain/occurrence"
	"github.com/diegoclair/session-planner-bot/internal/metrics"
)

// reminderScheduler posts the session reminder every week. It alternates
// between waiting for the next reminder instant and firing the send.
type reminderScheduler struct {
	clock     occurrence.Clock
	chat      contract.ChatClient
	dm        contract.DataManager
	channelID entity.ChannelID
	log       *zap.Logger
	sleep     sleepFunc
}

func newReminderScheduler(clock occurrence.Clock, chat contract.ChatClient, dm contract.DataManager, channelID entity.ChannelID, log *zap.Logger) *reminderScheduler {
	return &reminderScheduler{
		clock:     clock,
		chat:      chat,
		dm:        dm,
		channelID: channelID,
		log:       log.Named("scheduler"),
		sleep:     sleep,
	}
}

// Run never returns under normal operation. A failed send is returned as is
// and ends the loop; ctx cancellation returns ctx.Err().
func (s *reminderScheduler) Run(ctx context.Context) error {
	s.log.Info("reminder scheduler started", zap.String("channel", string(s.channelID)))

	for {
		now := s.clock.Now()
		next := occurrence.NextReminderInstant(now)
		wait := next.Sub(now)
		metrics.NextReminderTimestamp.Set(float64(next.Unix()))

		s.log.Info("next reminder scheduled", zap.Time("at", next), zap.Duration("wait", wait))

		if err := s.sleep(ctx, wait); err != nil {
			s.log.Info("reminder scheduler stopping")
			return err
		}

		if err := s.sendReminder(ctx); err != nil {
			return err
		}
	}
}

func (s *reminderScheduler) sendReminder(ctx context.Context) error {
	runID := uuid.NewString()
	session := occurrence.NextSessionDate(s.clock.Now())
	log := s.log.With(zap.String("run_id", runID), zap.Time("session", session))

	ref, err := s.chat.SendMessage(ctx, s.channelID, reminderText(session))
	if err != nil {
		metrics.SendErrors.WithLabelValues("reminder").Inc()
		return fmt.Errorf("failed to send reminder: %w", err)
	}
	metrics.RemindersSent.Inc()
	log.Info("reminder sent", zap.String("ts", ref.Timestamp))

	// The journal is an audit trail only, the next cycle never reads it
	reminder := &entity.SentReminder{
		RunID:       runID,
		ChannelID:   s.channelID,
		MessageTS:   ref.Timestamp,
		SessionDate: session,
		SentAt:      s.clock.Now(),
	}
	if err := s.dm.Reminder().Create(reminder); err != nil {
		log.Error("failed to journal reminder", zap.Error(err))
	}

	return nil
}
