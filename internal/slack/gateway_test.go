package slack

import (
	"context"
	"errors"
	"testing"

	slackapi "github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"github.com/slack-go/slack/socketmode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/diegoclair/session-planner-bot/internal/domain/entity"
	"github.com/diegoclair/session-planner-bot/mocks"
)

type recordingAcker struct {
	acked []string
}

func (a *recordingAcker) Ack(req socketmode.Request, payload ...interface{}) {
	a.acked = append(a.acked, req.EnvelopeID)
}

func newTestGateway(t *testing.T) (*Gateway, *mocks.MockSlackClient, *recordingAcker) {
	t.Helper()

	ctrl := gomock.NewController(t)
	api := mocks.NewMockSlackClient(ctrl)
	ack := &recordingAcker{}

	return &Gateway{
		api:   api,
		ack:   ack,
		owner: "UOWNER001",
		log:   zap.NewNop(),
	}, api, ack
}

func reactionEnvelope(envelopeID string, ev *slackevents.ReactionAddedEvent) socketmode.Event {
	return socketmode.Event{
		Type: socketmode.EventTypeEventsAPI,
		Data: slackevents.EventsAPIEvent{
			Type: slackevents.CallbackEvent,
			InnerEvent: slackevents.EventsAPIInnerEvent{
				Type: string(slackevents.ReactionAdded),
				Data: ev,
			},
		},
		Request: &socketmode.Request{EnvelopeID: envelopeID},
	}
}

func TestGateway_handle_Connected(t *testing.T) {
	g, api, _ := newTestGateway(t)
	events := make(chan entity.Event, 2)

	api.EXPECT().AuthTestContext(gomock.Any()).Return(&slackapi.AuthTestResponse{UserID: "UBOT00001", Team: "planners"}, nil).Times(1)

	err := g.handle(context.Background(), socketmode.Event{Type: socketmode.EventTypeConnected}, events)
	require.NoError(t, err)

	// a reconnect neither identifies again nor emits a second ready
	err = g.handle(context.Background(), socketmode.Event{Type: socketmode.EventTypeConnected}, events)
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.Equal(t, entity.NewReadyEvent("UBOT00001", "UOWNER001"), <-events)
}

func TestGateway_handle_ConnectedAuthError(t *testing.T) {
	g, api, _ := newTestGateway(t)
	events := make(chan entity.Event, 1)

	errAuth := errors.New("invalid_auth")
	api.EXPECT().AuthTestContext(gomock.Any()).Return(nil, errAuth).Times(1)

	err := g.handle(context.Background(), socketmode.Event{Type: socketmode.EventTypeConnected}, events)
	assert.ErrorIs(t, err, errAuth)
	assert.Empty(t, events)
}

func TestGateway_handle_ReactionAdded(t *testing.T) {
	tests := []struct {
		name  string
		event socketmode.Event
		want  []entity.Event
		acked []string
	}{
		{
			name: "Should emit a reaction event and ack the envelope",
			event: reactionEnvelope("env-1", &slackevents.ReactionAddedEvent{
				User:     "U111111111",
				Reaction: "+1",
				ItemUser: "UBOT00001",
				Item:     slackevents.Item{Type: "message", Channel: "C123456789", Timestamp: "1690876800.000100"},
			}),
			want: []entity.Event{entity.NewReactionEvent(entity.ReactionEvent{
				ChannelID:     "C123456789",
				MessageTS:     "1690876800.000100",
				MessageAuthor: "UBOT00001",
				Reactor:       "U111111111",
				Emoji:         "+1",
			})},
			acked: []string{"env-1"},
		},
		{
			name: "Should ignore reactions on files",
			event: reactionEnvelope("env-2", &slackevents.ReactionAddedEvent{
				User:     "U111111111",
				Reaction: "+1",
				Item:     slackevents.Item{Type: "file"},
			}),
			acked: []string{"env-2"},
		},
		{
			name: "Should ignore other callback events",
			event: socketmode.Event{
				Type: socketmode.EventTypeEventsAPI,
				Data: slackevents.EventsAPIEvent{
					Type: slackevents.CallbackEvent,
					InnerEvent: slackevents.EventsAPIInnerEvent{
						Type: string(slackevents.Message),
						Data: &slackevents.MessageEvent{Text: "hi"},
					},
				},
				Request: &socketmode.Request{EnvelopeID: "env-3"},
			},
			acked: []string{"env-3"},
		},
		{
			name:  "Should ignore unexpected payloads without acking",
			event: socketmode.Event{Type: socketmode.EventTypeEventsAPI, Data: "garbage"},
		},
		{
			name:  "Should ignore lifecycle events",
			event: socketmode.Event{Type: socketmode.EventTypeConnecting},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _, ack := newTestGateway(t)
			events := make(chan entity.Event, 1)

			err := g.handle(context.Background(), tt.event, events)
			require.NoError(t, err)

			close(events)
			var got []entity.Event
			for evt := range events {
				got = append(got, evt)
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.acked, ack.acked)
		})
	}
}

func TestGateway_handle_CanceledWhileEmitting(t *testing.T) {
	g, _, _ := newTestGateway(t)
	events := make(chan entity.Event) // nobody reads

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := g.handle(ctx, reactionEnvelope("env-1", &slackevents.ReactionAddedEvent{
		User:     "U111111111",
		Reaction: "+1",
		ItemUser: "UBOT00001",
		Item:     slackevents.Item{Type: "message", Channel: "C123456789", Timestamp: "1.000100"},
	}), events)
	assert.ErrorIs(t, err, context.Canceled)
}
