package service

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/diegoclair/session-planner-bot/internal/domain/entity"
)

var (
	// ErrAlreadySet is returned when a write-once identity is written twice.
	ErrAlreadySet = errors.New("identity already set")
	// ErrNotInitialized is returned when an identity is read before the ready handshake.
	ErrNotInitialized = errors.New("identity read before ready")
)

// BotState holds the destination channel and the identities learned during
// the ready handshake. Each identity is written at most once and is safe to
// read from any goroutine.
type BotState struct {
	channelID entity.ChannelID
	self      atomic.Pointer[entity.Identity]
	owner     atomic.Pointer[entity.Identity]
}

func NewBotState(channelID entity.ChannelID) *BotState {
	return &BotState{channelID: channelID}
}

func (s *BotState) ChannelID() entity.ChannelID {
	return s.channelID
}

// Initialize stores both identities. It fails if either one was already set.
func (s *BotState) Initialize(self, owner entity.Identity) error {
	if err := setOnce(&s.self, "self", self); err != nil {
		return err
	}
	return setOnce(&s.owner, "owner", owner)
}

func (s *BotState) Self() (entity.Identity, error) {
	return get(&s.self, "self")
}

func (s *BotState) Owner() (entity.Identity, error) {
	return get(&s.owner, "owner")
}

func setOnce(field *atomic.Pointer[entity.Identity], name string, id entity.Identity) error {
	if id == "" {
		return fmt.Errorf("%s identity is empty", name)
	}
	if !field.CompareAndSwap(nil, &id) {
		return fmt.Errorf("%s: %w", name, ErrAlreadySet)
	}
	return nil
}

func get(field *atomic.Pointer[entity.Identity], name string) (entity.Identity, error) {
	id := field.Load()
	if id == nil {
		return "", fmt.Errorf("%s: %w", name, ErrNotInitialized)
	}
	return *id, nil
}
