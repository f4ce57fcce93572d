package contract

import (
	"context"

	"github.com/slack-go/slack"

	"github.com/diegoclair/session-planner-bot/internal/domain/entity"
)

// SlackClient defines the subset of the Slack Web API the bot uses.
// This allows mocking in tests while keeping the real implementation simple
type SlackClient interface {
	// PostMessageContext sends a message to a Slack channel
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)

	// OpenConversationContext opens (or reuses) a direct message conversation
	OpenConversationContext(ctx context.Context, params *slack.OpenConversationParameters) (*slack.Channel, bool, bool, error)

	// GetUserInfoContext retrieves user information from Slack
	GetUserInfoContext(ctx context.Context, user string) (*slack.User, error)

	// GetConversationInfoContext retrieves channel information from Slack
	GetConversationInfoContext(ctx context.Context, input *slack.GetConversationInfoInput) (*slack.Channel, error)

	// AuthTestContext identifies the bot user the token belongs to
	AuthTestContext(ctx context.Context) (*slack.AuthTestResponse, error)
}

// ChatClient defines the chat operations the planner needs, independent of
// the platform
type ChatClient interface {
	// SendMessage posts a message to a channel
	SendMessage(ctx context.Context, channelID entity.ChannelID, text string) (entity.MessageRef, error)

	// SendDirectMessage posts a message to a user's direct message conversation
	SendDirectMessage(ctx context.Context, userID entity.Identity, text string) error

	// FetchReactionContext resolves the display names involved in a reaction
	FetchReactionContext(ctx context.Context, event entity.ReactionEvent) (entity.ReactionContext, error)
}

// Gateway delivers inbound events until ctx is canceled or the connection fails
type Gateway interface {
	Run(ctx context.Context, events chan<- entity.Event) error
}
