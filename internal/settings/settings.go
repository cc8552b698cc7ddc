// Package settings persists per-guild configuration as one JSON document per
// guild id inside a flat datastore file. Documents are merged over defaults
// on load and written only on explicit update; concurrent writers to the same
// guild race last-write-wins, which is acceptable for rare operator edits.
package settings

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/keshon/datastore"
)

// AutoMod groups the automatic moderation switches.
type AutoMod struct {
	Enabled     bool `json:"enabled"`
	DeleteLinks bool `json:"delete_links"`
	DeleteCaps  bool `json:"delete_caps"`
	DeleteSpam  bool `json:"delete_spam"`
}

// RoleOverrides are role-based permission overrides configured per guild.
type RoleOverrides struct {
	DJRole    string `json:"dj_role"`
	ModRole   string `json:"mod_role"`
	AdminRole string `json:"admin_role"`
}

// GuildSettings is the documented per-guild shape. Zero-value fields of a
// stored document fall back to Defaults on load.
type GuildSettings struct {
	Prefix         string            `json:"prefix"`
	WelcomeChannel string            `json:"welcome_channel"`
	WelcomeMessage string            `json:"welcome_message"`
	LeaveMessage   string            `json:"leave_message"`
	AutoRole       string            `json:"auto_role"`
	ModLogChannel  string            `json:"mod_log_channel"`
	MusicVolume    int               `json:"music_volume"`
	MusicChannel   string            `json:"music_channel"`
	AntiSpam       bool              `json:"anti_spam"`
	SlowMode       int               `json:"slow_mode"`
	LevelSystem    bool              `json:"level_system"`
	EconomySystem  bool              `json:"economy_system"`
	CustomCommands map[string]string `json:"custom_commands"`
	AutoMod        AutoMod           `json:"auto_mod"`
	Roles          RoleOverrides     `json:"permissions"`
}

// Defaults returns the documented default shape for a guild with no stored
// settings.
func Defaults() *GuildSettings {
	return &GuildSettings{
		Prefix:         "!",
		WelcomeMessage: "Welcome to {server}, {user}! 🎉",
		LeaveMessage:   "Goodbye {user}! 👋",
		MusicVolume:    50,
		LevelSystem:    true,
		CustomCommands: map[string]string{},
	}
}

// Store wraps the flat-file datastore keyed by guild id. It owns the
// lifecycle context of the datastore's autosave goroutine: Close cancels it
// before the datastore waits on it.
type Store struct {
	ds     *datastore.DataStore
	cancel context.CancelFunc
}

func NewStore(ctx context.Context, filePath string) (*Store, error) {
	// The datastore creates its file but not the directory above it.
	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create settings dir: %w", err)
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	ds, err := datastore.New(ctx, filePath,
		datastore.WithSaveInterval(time.Minute),
		// Process logs stay on zerolog; the store's slog output is dropped.
		datastore.WithLogger(slog.New(slog.DiscardHandler)),
	)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("open settings store: %w", err)
	}
	return &Store{ds: ds, cancel: cancel}, nil
}

// Close flushes and shuts the store down. The cancel must come first: the
// datastore's Close waits for the autosave goroutine, which only exits once
// its context is done.
func (s *Store) Close() error {
	s.cancel()
	return s.ds.Close()
}

// Load returns the guild's settings merged over defaults: decoding the
// stored document into a Defaults() value means stored fields win and
// missing fields keep their default. A guild with no document gets exactly
// Defaults().
func (s *Store) Load(guildID string) (*GuildSettings, error) {
	out := Defaults()

	if _, err := s.ds.Get(guildID, out); err != nil {
		return nil, fmt.Errorf("settings for guild %s: %w", guildID, err)
	}
	if out.CustomCommands == nil {
		out.CustomCommands = map[string]string{}
	}
	return out, nil
}

// Save writes the guild's document. Durability is the store's concern: the
// autosave tick and the final flush in Close persist it.
func (s *Store) Save(guildID string, gs *GuildSettings) error {
	if err := s.ds.Set(guildID, gs); err != nil {
		return fmt.Errorf("save settings for guild %s: %w", guildID, err)
	}
	return nil
}
