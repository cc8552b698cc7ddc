package settings

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(context.Background(), filepath.Join(t.TempDir(), "settings.json"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoadUnknownGuildReturnsDefaults(t *testing.T) {
	s := newTestStore(t)

	st, err := s.Load("never-seen")
	if err != nil {
		t.Fatal(err)
	}
	if st.Prefix != "!" {
		t.Errorf("prefix = %q, want !", st.Prefix)
	}
	if st.MusicVolume != 50 {
		t.Errorf("music volume = %d, want 50", st.MusicVolume)
	}
	if !st.LevelSystem {
		t.Error("level system should default on")
	}
	if st.CustomCommands == nil {
		t.Error("custom commands map must never be nil")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	st, _ := s.Load("g1")
	st.Prefix = "?"
	st.WelcomeChannel = "123"
	st.CustomCommands["site"] = "https://mlvs.me"
	if err := s.Save("g1", st); err != nil {
		t.Fatal(err)
	}

	got, err := s.Load("g1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Prefix != "?" || got.WelcomeChannel != "123" {
		t.Errorf("loaded = %+v", got)
	}
	if got.CustomCommands["site"] != "https://mlvs.me" {
		t.Errorf("custom commands = %v", got.CustomCommands)
	}
}

func TestPartialDocumentMergesOverDefaults(t *testing.T) {
	s := newTestStore(t)

	st, _ := s.Load("g1")
	st.Prefix = "$"
	if err := s.Save("g1", st); err != nil {
		t.Fatal(err)
	}

	got, _ := s.Load("g1")
	if got.Prefix != "$" {
		t.Errorf("stored prefix lost: %q", got.Prefix)
	}
	// Untouched fields keep their defaults.
	if got.WelcomeMessage != Defaults().WelcomeMessage {
		t.Errorf("welcome message = %q", got.WelcomeMessage)
	}
}

func TestCloseFlushesAndReopens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	s, err := NewStore(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	st, _ := s.Load("g1")
	st.Prefix = "%"
	if err := s.Save("g1", st); err != nil {
		t.Fatal(err)
	}
	// Close must return: it cancels the autosave goroutine before the
	// datastore waits for it, then writes the final snapshot.
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	reopened, err := NewStore(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()
	got, err := reopened.Load("g1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Prefix != "%" {
		t.Errorf("prefix after reopen = %q, want %%", got.Prefix)
	}
}

func TestGuildsAreIsolated(t *testing.T) {
	s := newTestStore(t)

	a, _ := s.Load("a")
	a.Prefix = ">"
	if err := s.Save("a", a); err != nil {
		t.Fatal(err)
	}

	b, _ := s.Load("b")
	if b.Prefix != "!" {
		t.Errorf("guild b inherited guild a's prefix: %q", b.Prefix)
	}
}
