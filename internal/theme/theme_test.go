package theme

import "testing"

func TestGetKnownThemes(t *testing.T) {
	for _, name := range Names() {
		th := Get(name)
		if th.Name != name {
			t.Errorf("Get(%q).Name = %q", name, th.Name)
		}
		if th.Color == 0 || th.Title == "" {
			t.Errorf("theme %q incomplete: %+v", name, th)
		}
	}
}

func TestGetUnknownFallsBack(t *testing.T) {
	th := Get("does-not-exist")
	if th.Name != Default {
		t.Errorf("fallback theme = %q, want %q", th.Name, Default)
	}
	if Known("does-not-exist") {
		t.Error("Known must be false for unregistered names")
	}
	if !Known("music") {
		t.Error("Known must be true for registered names")
	}
}
