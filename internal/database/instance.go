package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/session-planner-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db           *DB
	reminderRepo contract.ReminderRepo
	reactionRepo contract.ReactionRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := &instance{
		db: db,
	}
	instance.repoInstances()
	return instance
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.reminderRepo = newReminderRepo(i.db.conn)
	i.reactionRepo = newReactionRepo(i.db.conn)
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		reminderRepo: newReminderRepo(db),
		reactionRepo: newReactionRepo(db),
	}
}

// Reminder returns the sent reminder repository
func (i *instance) Reminder() contract.ReminderRepo {
	return i.reminderRepo
}

// Reaction returns the relayed reaction repository
func (i *instance) Reaction() contract.ReactionRepo {
	return i.reactionRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
