package service

import (
	"go.uber.org/zap"

	"github.com/diegoclair/session-planner-bot/internal/domain"
	"github.com/diegoclair/session-planner-bot/internal/domain/contract"
	"github.com/diegoclair/session-planner-bot/internal/domain/entity"
	"github.com/diegoclair/session-planner-bot/internal/domain/occurrence"
)

// Deps groups what the services need from the outside world
type Deps struct {
	Clock       occurrence.Clock
	Chat        contract.ChatClient
	DataManager contract.DataManager
	Pinger      contract.Pinger
	Runner      contract.TaskRunner
	Logger      *zap.Logger
	ChannelID   entity.ChannelID
	SelfPingURL string
}

type Instance struct {
	State      *BotState
	Dispatcher *dispatcher
	Planner    *planner
}

func NewInstance(deps Deps) *Instance {
	state := NewBotState(deps.ChannelID)

	var ka *keepAlive
	if deps.SelfPingURL != "" {
		ka = newKeepAlive(deps.Pinger, deps.SelfPingURL, domain.KeepAliveInterval, deps.Logger)
	}

	return &Instance{
		State: state,
		Dispatcher: &dispatcher{
			state:     state,
			clock:     deps.Clock,
			chat:      deps.Chat,
			dm:        deps.DataManager,
			runner:    deps.Runner,
			reminders: newReminderScheduler(deps.Clock, deps.Chat, deps.DataManager, deps.ChannelID, deps.Logger),
			keepAlive: ka,
			log:       deps.Logger.Named("dispatcher"),
		},
		Planner: &planner{
			clock:     deps.Clock,
			dm:        deps.DataManager,
			channelID: deps.ChannelID,
		},
	}
}
