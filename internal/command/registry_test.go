package command

import (
	"testing"
	"time"
)

func noop(ctx *Context) error { return nil }

func TestRegisterRejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(&Command{Name: "ping", Run: noop}); err != nil {
		t.Fatal(err)
	}
	if err := r.Register(&Command{Name: "Ping", Run: noop}); err == nil {
		t.Error("duplicate name (different case) must be rejected")
	}
	if err := r.Register(&Command{Name: "", Run: noop}); err == nil {
		t.Error("empty name must be rejected")
	}
	if err := r.Register(&Command{Name: "broken"}); err == nil {
		t.Error("nil handler must be rejected")
	}
}

func TestMustRegisterPanics(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(&Command{Name: "ban", Run: noop})
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	r.MustRegister(&Command{Name: "ban", Run: noop})
}

func TestLookupCaseInsensitive(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(&Command{Name: "Help", Run: noop})
	for _, name := range []string{"help", "HELP", "Help"} {
		if _, ok := r.Lookup(name); !ok {
			t.Errorf("Lookup(%q) missed", name)
		}
	}
	if _, ok := r.Lookup("nope"); ok {
		t.Error("Lookup of unknown name must miss")
	}
}

func TestByCategory(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(&Command{Name: "ban", Category: "admin", Run: noop})
	r.MustRegister(&Command{Name: "kick", Category: "admin", Run: noop})
	r.MustRegister(&Command{Name: "play", Category: "music", Run: noop})

	groups := r.ByCategory()
	if len(groups["admin"]) != 2 || len(groups["music"]) != 1 {
		t.Errorf("unexpected grouping: %+v", groups)
	}
	if groups["admin"][0].Name != "ban" {
		t.Errorf("groups must be sorted, got %q first", groups["admin"][0].Name)
	}
}

func TestCooldownGate(t *testing.T) {
	g := NewCooldownGate()

	if !g.Allow("g", "u", "roll", time.Minute) {
		t.Fatal("first use must pass")
	}
	if g.Allow("g", "u", "roll", time.Minute) {
		t.Error("immediate reuse must be throttled")
	}
	if !g.Allow("g", "u2", "roll", time.Minute) {
		t.Error("other users are not affected")
	}
	if !g.Allow("g", "u", "ping", time.Minute) {
		t.Error("other commands are not affected")
	}
	if !g.Allow("g", "u", "help", 0) {
		t.Error("zero cooldown never throttles")
	}
}
