// Package music wraps the external media-resolution/playback engine behind
// per-guild sessions: a pending queue, the current track, a tri-state repeat
// mode and a volume level. Resolution and audio streaming stay inside the
// engine; this package only routes commands to it and reacts to its signals.
package music

import (
	"errors"
	"strings"
	"time"
)

// RepeatMode is the session's loop behavior.
type RepeatMode int

const (
	RepeatOff RepeatMode = iota
	RepeatTrack
	RepeatQueue
)

func (m RepeatMode) String() string {
	switch m {
	case RepeatTrack:
		return "Song"
	case RepeatQueue:
		return "Queue"
	default:
		return "Off"
	}
}

// Next returns the mode that follows m in the off → song → queue → off cycle.
func (m RepeatMode) Next() RepeatMode {
	switch m {
	case RepeatOff:
		return RepeatTrack
	case RepeatTrack:
		return RepeatQueue
	default:
		return RepeatOff
	}
}

// Track is one resolved playable item.
type Track struct {
	Title       string
	URL         string
	Thumbnail   string
	Duration    time.Duration
	RequestedBy string
}

var (
	ErrNoSession     = errors.New("no active playback session")
	ErrNothingQueued = errors.New("queue is empty")
	ErrOutOfRange    = errors.New("queue position out of range")
)

// IsUnsupportedSource reports whether an engine error means the query or URL
// points at a source the engine cannot handle. Those get a tailored
// user-facing message instead of the generic failure.
func IsUnsupportedSource(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "unsupported")
}
