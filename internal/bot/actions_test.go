package bot

import "testing"

func TestParseAction(t *testing.T) {
	cases := []struct {
		id   string
		want action
	}{
		{"help_refresh", actionHelpRefresh},
		{"bot_stats", actionBotStats},
		{"music_queue", actionMusicQueue},
		{"avatar_view", actionAvatarView},
		{"", actionUnknown},
		{"bot_invite", actionUnknown},
		{"HELP_REFRESH", actionUnknown},
	}
	for _, c := range cases {
		if got := parseAction(c.id); got != c.want {
			t.Errorf("parseAction(%q) = %v, want %v", c.id, got, c.want)
		}
	}
}

func TestExpandPlaceholders(t *testing.T) {
	got := expand("Welcome to {server}, {user}! 🎉", "@Ana", "MLVS")
	want := "Welcome to MLVS, @Ana! 🎉"
	if got != want {
		t.Errorf("expand = %q, want %q", got, want)
	}

	if got := expand("no placeholders", "u", "s"); got != "no placeholders" {
		t.Errorf("expand without placeholders = %q", got)
	}
}
