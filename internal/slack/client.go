package slack

import (
	"context"
	"fmt"

	slackapi "github.com/slack-go/slack"

	"github.com/diegoclair/session-planner-bot/internal/domain/contract"
	"github.com/diegoclair/session-planner-bot/internal/domain/entity"
)

// Client implements contract.ChatClient on top of the Slack Web API.
type Client struct {
	api contract.SlackClient
}

func NewClient(api contract.SlackClient) *Client {
	return &Client{api: api}
}

func (c *Client) SendMessage(ctx context.Context, channelID entity.ChannelID, text string) (entity.MessageRef, error) {
	channel, ts, err := c.api.PostMessageContext(ctx, string(channelID), slackapi.MsgOptionText(text, false))
	if err != nil {
		return entity.MessageRef{}, fmt.Errorf("failed to post message to %s: %w", channelID, err)
	}

	return entity.MessageRef{ChannelID: entity.ChannelID(channel), Timestamp: ts}, nil
}

func (c *Client) SendDirectMessage(ctx context.Context, userID entity.Identity, text string) error {
	channel, _, _, err := c.api.OpenConversationContext(ctx, &slackapi.OpenConversationParameters{
		Users: []string{string(userID)},
	})
	if err != nil {
		return fmt.Errorf("failed to open conversation with %s: %w", userID, err)
	}

	if _, _, err := c.api.PostMessageContext(ctx, channel.ID, slackapi.MsgOptionText(text, false)); err != nil {
		return fmt.Errorf("failed to send direct message to %s: %w", userID, err)
	}

	return nil
}

func (c *Client) FetchReactionContext(ctx context.Context, event entity.ReactionEvent) (entity.ReactionContext, error) {
	user, err := c.api.GetUserInfoContext(ctx, string(event.Reactor))
	if err != nil {
		return entity.ReactionContext{}, fmt.Errorf("failed to get user info for %s: %w", event.Reactor, err)
	}

	channel, err := c.api.GetConversationInfoContext(ctx, &slackapi.GetConversationInfoInput{
		ChannelID: string(event.ChannelID),
	})
	if err != nil {
		return entity.ReactionContext{}, fmt.Errorf("failed to get channel info for %s: %w", event.ChannelID, err)
	}

	return entity.ReactionContext{
		AuthorIdentity:      event.MessageAuthor,
		ReactingIdentity:    event.Reactor,
		ReactingDisplayName: displayName(user),
		ChannelDisplayName:  channel.Name,
	}, nil
}

func displayName(user *slackapi.User) string {
	switch {
	case user.Profile.DisplayName != "":
		return user.Profile.DisplayName
	case user.RealName != "":
		return user.RealName
	default:
		return user.Name
	}
}
