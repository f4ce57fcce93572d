package entity

type EventType int

const (
	_ EventType = iota // zero value is never a valid event
	EventReady
	EventReactionAdded
)

func (t EventType) String() string {
	switch t {
	case EventReady:
		return "ready"
	case EventReactionAdded:
		return "reaction_added"
	default:
		return "unknown"
	}
}

// Event is a single inbound gateway event. Exactly one payload is set,
// matching Type.
type Event struct {
	Type     EventType
	Ready    *ReadyEvent
	Reaction *ReactionEvent
}

// ReadyEvent is emitted once the gateway connection is established.
type ReadyEvent struct {
	Self  Identity
	Owner Identity
}

// ReactionEvent describes a reaction added to a message in a channel.
type ReactionEvent struct {
	ChannelID     ChannelID
	MessageTS     string
	MessageAuthor Identity
	Reactor       Identity
	Emoji         string
}

// ReactionContext holds the display data needed to relay a reaction.
type ReactionContext struct {
	AuthorIdentity      Identity
	ReactingIdentity    Identity
	ReactingDisplayName string
	ChannelDisplayName  string
}

func NewReadyEvent(self, owner Identity) Event {
	return Event{Type: EventReady, Ready: &ReadyEvent{Self: self, Owner: owner}}
}

func NewReactionEvent(r ReactionEvent) Event {
	return Event{Type: EventReactionAdded, Reaction: &r}
}
