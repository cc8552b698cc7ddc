package music

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Manager owns one session per guild and fans playback events out to
// subscribed notifiers.
type Manager struct {
	mu        sync.Mutex
	factory   EngineFactory
	sessions  map[string]*Session
	notifiers []Notifier
}

func NewManager(factory EngineFactory) *Manager {
	return &Manager{
		factory:  factory,
		sessions: make(map[string]*Session),
	}
}

// Subscribe registers a notifier for all future events. Not safe to call
// after sessions start handling traffic; wire notifiers during startup.
func (m *Manager) Subscribe(n Notifier) {
	m.notifiers = append(m.notifiers, n)
}

// Session returns the live session for a guild, if one exists.
func (m *Manager) Session(guildID string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[guildID]
	return s, ok
}

// Open returns the guild's session, creating one bound to textChannelID and
// seeded with the guild's configured volume when absent. The text channel of
// an existing session is updated so event messages follow the channel of the
// latest command; the volume of an existing session is left alone.
func (m *Manager) Open(guildID, textChannelID string, volume int) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[guildID]; ok {
		s.mu.Lock()
		s.textChannelID = textChannelID
		s.mu.Unlock()
		return s
	}
	s := newSession(guildID, textChannelID, volume, m.factory, m.dispatch)
	m.sessions[guildID] = s
	return s
}

// Stop tears down the guild's session and forgets it.
func (m *Manager) Stop(guildID string) error {
	m.mu.Lock()
	s, ok := m.sessions[guildID]
	if ok {
		delete(m.sessions, guildID)
	}
	m.mu.Unlock()
	if !ok {
		return ErrNoSession
	}
	s.stop()
	return nil
}

// Active returns a snapshot of all live sessions.
func (m *Manager) Active() []*Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, s)
	}
	return out
}

// Shutdown stops every session, leaving all voice channels.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()
	for _, s := range sessions {
		s.stop()
	}
}

func (m *Manager) dispatch(e Event) {
	log.Debug().Str("guild", e.GuildID).Stringer("event", e.Type).Msg("playback event")
	for _, n := range m.notifiers {
		n(e)
	}
}
