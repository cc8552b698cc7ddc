package glass

import (
	"strings"
	"testing"
)

func TestEmbedThemeDefaults(t *testing.T) {
	b := NewBuilder("glassbot")

	e := b.Embed(Options{Theme: "music"})
	if e.Color != 0xC44EB5 {
		t.Errorf("color = %#x, want music theme color", e.Color)
	}
	if e.Title != "🎵 Music" {
		t.Errorf("title = %q, want theme title", e.Title)
	}
	if e.Timestamp == "" {
		t.Error("timestamp expected by default")
	}
}

func TestExplicitValuesWinOverTheme(t *testing.T) {
	b := NewBuilder("glassbot")

	e := b.Embed(Options{Theme: "error", Title: "Custom", Color: 0x123456, NoTimestamp: true})
	if e.Title != "Custom" {
		t.Errorf("title = %q", e.Title)
	}
	if e.Color != 0x123456 {
		t.Errorf("color = %#x", e.Color)
	}
	if e.Timestamp != "" {
		t.Error("NoTimestamp must suppress the timestamp")
	}
}

func TestUnknownThemeFallsBack(t *testing.T) {
	b := NewBuilder("glassbot")

	e := b.Embed(Options{Theme: "nonsense"})
	if e.Color != 0x7289DA {
		t.Errorf("color = %#x, want default theme color", e.Color)
	}
}

func TestEmptyFieldsSkipped(t *testing.T) {
	b := NewBuilder("glassbot")

	e := b.Embed(Options{Fields: []Field{
		{Name: "kept", Value: "v"},
		{Name: "", Value: "v"},
		{Name: "n", Value: ""},
	}})
	if len(e.Fields) != 1 || e.Fields[0].Name != "kept" {
		t.Errorf("fields = %+v, want only the complete one", e.Fields)
	}
}

func TestFooterIdentity(t *testing.T) {
	b := NewBuilder("glassbot")

	e := b.Embed(Options{})
	if !strings.Contains(e.Footer.Text, "glassbot") {
		t.Errorf("footer = %q", e.Footer.Text)
	}

	b.SetIdentity("MLVS Bot", "https://cdn/icon.png")
	e = b.Embed(Options{})
	if !strings.Contains(e.Footer.Text, "MLVS Bot") || e.Footer.IconURL != "https://cdn/icon.png" {
		t.Errorf("footer after identity = %+v", e.Footer)
	}

	e = b.Embed(Options{FooterText: "custom", FooterIcon: "i"})
	if e.Footer.Text != "custom" || e.Footer.IconURL != "i" {
		t.Errorf("explicit footer lost: %+v", e.Footer)
	}
}

func TestLoadingBar(t *testing.T) {
	b := NewBuilder("glassbot")

	cases := []struct {
		progress int
		filled   int
	}{
		{0, 0}, {50, 5}, {100, 10}, {-5, 0}, {150, 10},
	}
	for _, c := range cases {
		e := b.Loading("Working", c.progress)
		if got := strings.Count(e.Description, "▓"); got != c.filled {
			t.Errorf("Loading(%d): %d filled cells, want %d", c.progress, got, c.filled)
		}
	}
}
