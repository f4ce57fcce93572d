package database

import (
	"fmt"

	"github.com/diegoclair/session-planner-bot/internal/domain/contract"
	"github.com/diegoclair/session-planner-bot/internal/domain/entity"
)

type reactionRepo struct {
	db dbConn
}

func newReactionRepo(db dbConn) contract.ReactionRepo {
	return &reactionRepo{db: db}
}

func (r *reactionRepo) Create(reaction *entity.RelayedReaction) error {
	query := `
		INSERT INTO relayed_reactions (channel_id, message_ts, reactor_id, reactor_name, reaction, relayed_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		reaction.ChannelID,
		reaction.MessageTS,
		reaction.ReactorID,
		reaction.ReactorName,
		reaction.Reaction,
		reaction.RelayedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to create relayed reaction: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	reaction.ID = id
	return nil
}

func (r *reactionRepo) CountByMessage(channelID entity.ChannelID, messageTS string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM relayed_reactions
		WHERE channel_id = ? AND message_ts = ?
	`

	var count int
	if err := r.db.QueryRow(query, channelID, messageTS).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count relayed reactions: %w", err)
	}

	return count, nil
}
