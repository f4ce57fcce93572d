package entity

// Identity is an opaque chat-platform user handle (a Slack user ID).
type Identity string

// ChannelID is an opaque chat-platform channel handle (a Slack channel ID).
type ChannelID string

// MessageRef points at a message that was posted to a channel
type MessageRef struct {
	ChannelID ChannelID
	Timestamp string
}
