package music

// Signal is emitted by an engine when playback of the most recently started
// track ends: Err nil for a natural finish, non-nil for a playback failure.
type Signal struct {
	Err error
}

// Engine is the playback side of the external media service, scoped to one
// guild. Start returns once streaming is underway; completion arrives through
// the signal callback the engine was constructed with.
type Engine interface {
	Resolve(query string) ([]Track, error)
	Start(voiceChannelID string, t Track) error
	Resume() error
	Stop(leaveVoice bool) error
	Playing() bool
}

// EngineFactory builds a per-guild engine wired to a signal sink.
type EngineFactory func(guildID string, signal func(Signal)) Engine
