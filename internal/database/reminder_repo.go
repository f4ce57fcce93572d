package database

import (
	"database/sql"
	"fmt"

	"github.com/diegoclair/session-planner-bot/internal/domain/contract"
	"github.com/diegoclair/session-planner-bot/internal/domain/entity"
)

type reminderRepo struct {
	db dbConn
}

func newReminderRepo(db dbConn) contract.ReminderRepo {
	return &reminderRepo{db: db}
}

func (r *reminderRepo) Create(reminder *entity.SentReminder) error {
	query := `
		INSERT INTO reminders (run_id, channel_id, message_ts, session_date, sent_at)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		reminder.RunID,
		reminder.ChannelID,
		reminder.MessageTS,
		reminder.SessionDate.UTC(),
		reminder.SentAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to create reminder: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	reminder.ID = id
	return nil
}

func (r *reminderRepo) GetLatest(channelID entity.ChannelID) (*entity.SentReminder, error) {
	reminder := &entity.SentReminder{}
	query := `
		SELECT id, run_id, channel_id, message_ts, session_date, sent_at
		FROM reminders
		WHERE channel_id = ?
		ORDER BY sent_at DESC, id DESC
		LIMIT 1
	`

	err := r.db.QueryRow(query, channelID).Scan(
		&reminder.ID,
		&reminder.RunID,
		&reminder.ChannelID,
		&reminder.MessageTS,
		&reminder.SessionDate,
		&reminder.SentAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest reminder: %w", err)
	}

	return reminder, nil
}
