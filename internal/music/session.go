package music

import (
	"errors"
	"math/rand"
	"sync"

	"github.com/rs/zerolog/log"
)

// Session holds the playback state of a single guild: the current track, the
// pending queue, repeat mode and volume. All mutation happens under one lock;
// events are emitted after the lock is released.
type Session struct {
	mu sync.Mutex

	guildID        string
	textChannelID  string
	voiceChannelID string

	eng     Engine
	current *Track
	queue   []Track
	repeat  RepeatMode
	volume  int

	// suppress drops the next engine signal, so explicit transitions
	// (skip, jump, stop) do not trigger a second advance.
	suppress bool

	emit func(Event)
}

func newSession(guildID, textChannelID string, volume int, factory EngineFactory, emit func(Event)) *Session {
	if volume < 0 || volume > 100 {
		volume = 50
	}
	s := &Session{
		guildID:       guildID,
		textChannelID: textChannelID,
		volume:        volume,
		emit:          emit,
	}
	s.eng = factory(guildID, s.onSignal)
	return s
}

// GuildID returns the guild this session belongs to.
func (s *Session) GuildID() string { return s.guildID }

// Enqueue resolves query, appends the results to the queue and, when nothing
// is playing, starts the first track in the given voice channel. The returned
// bool reports whether playback started as a result of this call.
func (s *Session) Enqueue(voiceChannelID, query, requester string) ([]Track, bool, error) {
	tracks, err := s.eng.Resolve(query)
	if err != nil {
		return nil, false, err
	}
	if len(tracks) == 0 {
		return nil, false, errors.New("no playable results")
	}
	for i := range tracks {
		tracks[i].RequestedBy = requester
	}

	var pending []Event
	s.mu.Lock()
	if voiceChannelID != "" {
		s.voiceChannelID = voiceChannelID
	}
	s.queue = append(s.queue, tracks...)
	started := false
	if s.current == nil {
		pending = s.advanceLocked()
		started = s.current != nil
	} else {
		pending = append(pending, Event{
			Type:          EventTrackAdded,
			GuildID:       s.guildID,
			TextChannelID: s.textChannelID,
			Track:         &tracks[0],
		})
	}
	s.mu.Unlock()

	s.flush(pending)
	return tracks, started, nil
}

// NowPlaying returns a copy of the current track, if any.
func (s *Session) NowPlaying() (Track, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return Track{}, false
	}
	return *s.current, true
}

// Queue returns a snapshot of the pending tracks.
func (s *Session) Queue() []Track {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Track, len(s.queue))
	copy(out, s.queue)
	return out
}

// Repeat reports the current repeat mode.
func (s *Session) Repeat() RepeatMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repeat
}

// SetRepeat sets the repeat mode directly.
func (s *Session) SetRepeat(m RepeatMode) {
	s.mu.Lock()
	s.repeat = m
	s.mu.Unlock()
}

// CycleRepeat advances off -> track -> queue -> off and returns the new mode.
func (s *Session) CycleRepeat() RepeatMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.repeat = s.repeat.Next()
	return s.repeat
}

// Volume reports the stored playback volume.
func (s *Session) Volume() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.volume
}

// SetVolume stores a new volume. Values outside 0..100 are rejected.
func (s *Session) SetVolume(v int) error {
	if v < 0 || v > 100 {
		return ErrOutOfRange
	}
	s.mu.Lock()
	s.volume = v
	s.mu.Unlock()
	return nil
}

// Skip stops the current track and starts the next queued one. Repeat-track
// mode is ignored for explicit skips; repeat-queue still recycles the skipped
// track to the back of the queue.
func (s *Session) Skip() (Track, error) {
	var pending []Event
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return Track{}, ErrNoSession
	}
	if len(s.queue) == 0 && s.repeat != RepeatQueue {
		s.mu.Unlock()
		return Track{}, ErrNothingQueued
	}
	if s.repeat == RepeatQueue {
		s.queue = append(s.queue, *s.current)
	}
	s.suppress = true
	if err := s.eng.Stop(false); err != nil {
		log.Warn().Err(err).Str("guild", s.guildID).Msg("skip: engine stop failed")
	}
	pending = s.advanceLocked()
	next := s.current
	s.mu.Unlock()

	s.flush(pending)
	if next == nil {
		return Track{}, ErrNothingQueued
	}
	return *next, nil
}

// Jump starts the track at 1-based queue position pos, discarding everything
// before it.
func (s *Session) Jump(pos int) (Track, error) {
	var pending []Event
	s.mu.Lock()
	if pos < 1 || pos > len(s.queue) {
		s.mu.Unlock()
		return Track{}, ErrOutOfRange
	}
	s.queue = s.queue[pos-1:]
	if s.current != nil {
		s.suppress = true
		if err := s.eng.Stop(false); err != nil {
			log.Warn().Err(err).Str("guild", s.guildID).Msg("jump: engine stop failed")
		}
	}
	pending = s.advanceLocked()
	target := s.current
	s.mu.Unlock()

	s.flush(pending)
	if target == nil {
		return Track{}, ErrNothingQueued
	}
	return *target, nil
}

// Shuffle randomises the pending queue and returns its length.
func (s *Session) Shuffle() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	rand.Shuffle(len(s.queue), func(i, j int) {
		s.queue[i], s.queue[j] = s.queue[j], s.queue[i]
	})
	return len(s.queue)
}

// Resume restarts paused playback on the engine.
func (s *Session) Resume() error {
	return s.eng.Resume()
}

// Playing reports whether the engine is actively streaming.
func (s *Session) Playing() bool {
	return s.eng.Playing()
}

// stop tears playback down and clears all state. The manager removes the
// session afterwards.
func (s *Session) stop() {
	s.mu.Lock()
	s.suppress = true
	if err := s.eng.Stop(true); err != nil {
		log.Warn().Err(err).Str("guild", s.guildID).Msg("stop: engine stop failed")
	}
	s.current = nil
	s.queue = nil
	s.mu.Unlock()
}

// onSignal handles end-of-track notifications from the engine.
func (s *Session) onSignal(sig Signal) {
	var pending []Event
	s.mu.Lock()
	if s.suppress {
		s.suppress = false
		s.mu.Unlock()
		return
	}
	switch {
	case sig.Err != nil:
		pending = append(pending, Event{
			Type:          EventPlaybackError,
			GuildID:       s.guildID,
			TextChannelID: s.textChannelID,
			Track:         s.current,
			Err:           sig.Err,
		})
		pending = append(pending, s.advanceLocked()...)
	case s.repeat == RepeatTrack && s.current != nil:
		t := *s.current
		if err := s.eng.Start(s.voiceChannelID, t); err != nil {
			log.Error().Err(err).Str("guild", s.guildID).Str("track", t.Title).Msg("repeat restart failed")
			pending = s.advanceLocked()
		}
	default:
		if s.repeat == RepeatQueue && s.current != nil {
			s.queue = append(s.queue, *s.current)
		}
		pending = s.advanceLocked()
	}
	s.mu.Unlock()

	s.flush(pending)
}

// advanceLocked pops the next queued track and starts it, collecting the
// events to emit once the lock is dropped. Tracks that fail to start are
// reported and skipped.
func (s *Session) advanceLocked() []Event {
	var pending []Event
	for len(s.queue) > 0 {
		t := s.queue[0]
		s.queue = s.queue[1:]
		if err := s.eng.Start(s.voiceChannelID, t); err != nil {
			log.Error().Err(err).Str("guild", s.guildID).Str("track", t.Title).Msg("track start failed")
			pending = append(pending, Event{
				Type:          EventPlaybackError,
				GuildID:       s.guildID,
				TextChannelID: s.textChannelID,
				Track:         &t,
				Err:           err,
			})
			continue
		}
		s.current = &t
		pending = append(pending, Event{
			Type:          EventTrackStarted,
			GuildID:       s.guildID,
			TextChannelID: s.textChannelID,
			Track:         &t,
		})
		return pending
	}
	s.current = nil
	pending = append(pending, Event{
		Type:          EventQueueEnded,
		GuildID:       s.guildID,
		TextChannelID: s.textChannelID,
	})
	return pending
}

func (s *Session) flush(events []Event) {
	for _, e := range events {
		s.emit(e)
	}
}
