package music

// EventType names the asynchronous session events pushed to notifiers.
type EventType int

const (
	EventTrackStarted EventType = iota
	EventTrackAdded
	EventQueueEnded
	EventPlaybackError
)

func (t EventType) String() string {
	switch t {
	case EventTrackStarted:
		return "track-started"
	case EventTrackAdded:
		return "track-added"
	case EventQueueEnded:
		return "queue-ended"
	default:
		return "playback-error"
	}
}

// Event is delivered to notifiers outside any session lock.
type Event struct {
	Type          EventType
	GuildID       string
	TextChannelID string
	Track         *Track
	Err           error
}

// Notifier is a registered event handler: a pure function from one event to
// zero or one outbound notification. Notifiers are registered once at
// startup, before any session exists.
type Notifier func(Event)
