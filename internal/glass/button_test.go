package glass

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

func TestButtonCustomIDVsURL(t *testing.T) {
	b := Button("bot_stats", "Stats", StylePrimary, "📊")
	if b.CustomID != "bot_stats" || b.URL != "" {
		t.Errorf("action button = %+v", b)
	}
	if b.Emoji == nil || b.Emoji.Name != "📊" {
		t.Errorf("emoji = %+v", b.Emoji)
	}

	link := Button("https://mlvs.me", "Website", StyleLink, "")
	if link.URL != "https://mlvs.me" || link.CustomID != "" {
		t.Errorf("link button = %+v", link)
	}
	if link.Emoji != nil {
		t.Error("empty emoji must stay nil")
	}
}

func TestStyleMapping(t *testing.T) {
	cases := []struct {
		style Style
		want  discordgo.ButtonStyle
	}{
		{StylePrimary, discordgo.PrimaryButton},
		{StyleSecondary, discordgo.SecondaryButton},
		{StyleSuccess, discordgo.SuccessButton},
		{StyleDanger, discordgo.DangerButton},
		{StyleLink, discordgo.LinkButton},
	}
	for _, c := range cases {
		if got := c.style.discord(); got != c.want {
			t.Errorf("style %v maps to %v, want %v", c.style, got, c.want)
		}
	}
}

func TestRow(t *testing.T) {
	row := Row(
		Button("a", "A", StylePrimary, ""),
		Button("b", "B", StyleSecondary, ""),
	)
	if len(row.Components) != 2 {
		t.Fatalf("components = %d, want 2", len(row.Components))
	}
	if _, ok := row.Components[0].(discordgo.Button); !ok {
		t.Error("row must hold buttons")
	}
}
