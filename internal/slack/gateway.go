package slack

import (
	"context"
	"errors"
	"fmt"

	slackapi "github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"github.com/slack-go/slack/socketmode"
	"go.uber.org/zap"

	"github.com/diegoclair/session-planner-bot/internal/domain/contract"
	"github.com/diegoclair/session-planner-bot/internal/domain/entity"
)

type acker interface {
	Ack(req socketmode.Request, payload ...interface{})
}

// Gateway turns the Socket Mode event stream into planner events. Ready is
// emitted once, on the first successful connection; reconnects are only logged.
type Gateway struct {
	api    contract.SlackClient
	socket *socketmode.Client
	ack    acker
	owner  entity.Identity
	log    *zap.Logger

	connected bool
}

func NewGateway(api *slackapi.Client, owner entity.Identity, log *zap.Logger) *Gateway {
	socket := socketmode.New(api)
	return &Gateway{
		api:    api,
		socket: socket,
		ack:    socket,
		owner:  owner,
		log:    log.Named("gateway"),
	}
}

func (g *Gateway) Run(ctx context.Context, events chan<- entity.Event) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- g.socket.RunContext(ctx)
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-errCh:
			if err == nil {
				err = errors.New("connection closed")
			}
			return fmt.Errorf("socket mode stopped: %w", err)
		case evt := <-g.socket.Events:
			if err := g.handle(ctx, evt, events); err != nil {
				return err
			}
		}
	}
}

func (g *Gateway) handle(ctx context.Context, evt socketmode.Event, events chan<- entity.Event) error {
	switch evt.Type {
	case socketmode.EventTypeConnecting:
		g.log.Info("connecting to slack")
	case socketmode.EventTypeConnectionError:
		g.log.Warn("slack connection failed, retrying")
	case socketmode.EventTypeConnected:
		if g.connected {
			g.log.Info("reconnected to slack")
			return nil
		}

		auth, err := g.api.AuthTestContext(ctx)
		if err != nil {
			return fmt.Errorf("failed to identify bot user: %w", err)
		}
		g.connected = true
		g.log.Info("connected to slack", zap.String("self", auth.UserID), zap.String("team", auth.Team))

		return send(ctx, events, entity.NewReadyEvent(entity.Identity(auth.UserID), g.owner))
	case socketmode.EventTypeEventsAPI:
		payload, ok := evt.Data.(slackevents.EventsAPIEvent)
		if !ok {
			g.log.Warn("unexpected events api payload", zap.Any("data", evt.Data))
			return nil
		}
		if evt.Request != nil {
			g.ack.Ack(*evt.Request)
		}

		return g.handleEventsAPI(ctx, payload, events)
	}

	return nil
}

func (g *Gateway) handleEventsAPI(ctx context.Context, payload slackevents.EventsAPIEvent, events chan<- entity.Event) error {
	if payload.Type != slackevents.CallbackEvent {
		return nil
	}

	switch ev := payload.InnerEvent.Data.(type) {
	case *slackevents.ReactionAddedEvent:
		if ev.Item.Type != "message" {
			return nil
		}

		return send(ctx, events, entity.NewReactionEvent(entity.ReactionEvent{
			ChannelID:     entity.ChannelID(ev.Item.Channel),
			MessageTS:     ev.Item.Timestamp,
			MessageAuthor: entity.Identity(ev.ItemUser),
			Reactor:       entity.Identity(ev.User),
			Emoji:         ev.Reaction,
		}))
	default:
		g.log.Debug("ignoring event", zap.String("type", payload.InnerEvent.Type))
	}

	return nil
}

func send(ctx context.Context, events chan<- entity.Event, evt entity.Event) error {
	select {
	case events <- evt:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
