package music

import (
	"testing"

	"github.com/bwmarrin/discordgo"

	"github.com/mlvsme/glassbot/internal/app"
	"github.com/mlvsme/glassbot/internal/command"
	"github.com/mlvsme/glassbot/internal/glass"
	musicsvc "github.com/mlvsme/glassbot/internal/music"
)

type stubEngine struct {
	playing bool
}

func (s *stubEngine) Resolve(query string) ([]musicsvc.Track, error) {
	return []musicsvc.Track{{Title: query, URL: "https://example.com/" + query}}, nil
}
func (s *stubEngine) Start(voiceChannelID string, t musicsvc.Track) error {
	s.playing = true
	return nil
}
func (s *stubEngine) Resume() error              { s.playing = true; return nil }
func (s *stubEngine) Stop(leaveVoice bool) error { s.playing = false; return nil }
func (s *stubEngine) Playing() bool              { return s.playing }

func newCtx(t *testing.T, args ...string) (*command.Context, *[]*discordgo.MessageEmbed) {
	t.Helper()
	manager := musicsvc.NewManager(func(guildID string, signal func(musicsvc.Signal)) musicsvc.Engine {
		return &stubEngine{}
	})
	dg, err := discordgo.New("Bot test")
	if err != nil {
		t.Fatal(err)
	}
	var replies []*discordgo.MessageEmbed
	ctx := &command.Context{
		Session: dg,
		App: &app.Context{
			Music: manager,
			Glass: glass.NewBuilder("glassbot"),
		},
		Event: &discordgo.MessageCreate{Message: &discordgo.Message{
			GuildID:   "g1",
			ChannelID: "c1",
			Author:    &discordgo.User{ID: "u1", Username: "User"},
		}},
		Args:   args,
		Prefix: "!",
		ReplyFunc: func(embed *discordgo.MessageEmbed, rows ...discordgo.ActionsRow) error {
			replies = append(replies, embed)
			return nil
		},
	}
	return ctx, &replies
}

func startPlayback(t *testing.T, ctx *command.Context, queries ...string) *musicsvc.Session {
	t.Helper()
	session := ctx.App.Music.Open("g1", "c1", 50)
	for _, q := range queries {
		if _, _, err := session.Enqueue("vc", q, "User"); err != nil {
			t.Fatal(err)
		}
	}
	return session
}

func TestSkipWithoutSession(t *testing.T) {
	ctx, replies := newCtx(t)
	if err := runSkip(ctx); err != nil {
		t.Fatal(err)
	}
	if len(*replies) != 1 {
		t.Fatalf("replies = %d, want 1", len(*replies))
	}
}

func TestSkipAtEndOfQueue(t *testing.T) {
	ctx, replies := newCtx(t)
	startPlayback(t, ctx, "only-track")

	if err := runSkip(ctx); err != nil {
		t.Fatal(err)
	}
	got := (*replies)[0].Title
	if got != "⚠️ End of Queue" && got != "End of Queue" {
		t.Errorf("reply title = %q", got)
	}
}

func TestSkipAdvances(t *testing.T) {
	ctx, replies := newCtx(t)
	session := startPlayback(t, ctx, "first", "second")

	if err := runSkip(ctx); err != nil {
		t.Fatal(err)
	}
	now, ok := session.NowPlaying()
	if !ok || now.Title != "second" {
		t.Errorf("now playing = %+v", now)
	}
	if len(*replies) != 1 {
		t.Errorf("replies = %d, want 1", len(*replies))
	}
}

func TestAddRequiresVoice(t *testing.T) {
	ctx, replies := newCtx(t, "another-track")
	session := startPlayback(t, ctx, "first")
	before := len(session.Queue())

	// Author is not in any voice channel, so add must refuse.
	if err := runAdd(ctx); err != nil {
		t.Fatal(err)
	}
	if len(*replies) != 1 {
		t.Fatalf("replies = %d, want 1", len(*replies))
	}
	got := (*replies)[0].Title
	if got != "⚠️ Not in Voice" && got != "Not in Voice" {
		t.Errorf("reply title = %q", got)
	}
	if len(session.Queue()) != before {
		t.Errorf("queue grew from %d to %d without a voice channel", before, len(session.Queue()))
	}
}

func TestLoopCyclesThroughAllModes(t *testing.T) {
	ctx, replies := newCtx(t)
	session := startPlayback(t, ctx, "track")

	want := []musicsvc.RepeatMode{musicsvc.RepeatTrack, musicsvc.RepeatQueue, musicsvc.RepeatOff, musicsvc.RepeatTrack}
	for i, mode := range want {
		if err := runLoop(ctx); err != nil {
			t.Fatal(err)
		}
		if session.Repeat() != mode {
			t.Errorf("invocation %d: mode = %v, want %v", i+1, session.Repeat(), mode)
		}
	}
	if len(*replies) != 4 {
		t.Errorf("replies = %d, want 4", len(*replies))
	}
}

func TestVolumeValidation(t *testing.T) {
	ctx, replies := newCtx(t, "150")
	startPlayback(t, ctx, "track")

	if err := runVolume(ctx); err != nil {
		t.Fatal(err)
	}
	if (*replies)[0].Title != "❌ Invalid Volume" && (*replies)[0].Title != "Invalid Volume" {
		t.Errorf("reply title = %q", (*replies)[0].Title)
	}

	ctx.Args = []string{"75"}
	if err := runVolume(ctx); err != nil {
		t.Fatal(err)
	}
	session, _ := ctx.App.Music.Session("g1")
	if session.Volume() != 75 {
		t.Errorf("volume = %d, want 75", session.Volume())
	}
}

func TestJumpOutOfRange(t *testing.T) {
	ctx, replies := newCtx(t, "9")
	startPlayback(t, ctx, "now", "queued")

	if err := runJump(ctx); err != nil {
		t.Fatal(err)
	}
	if len(*replies) != 1 {
		t.Fatalf("replies = %d, want 1", len(*replies))
	}

	ctx.Args = []string{"1"}
	if err := runJump(ctx); err != nil {
		t.Fatal(err)
	}
	session, _ := ctx.App.Music.Session("g1")
	now, _ := session.NowPlaying()
	if now.Title != "queued" {
		t.Errorf("now playing = %q, want queued", now.Title)
	}
}

func TestStopEndsSession(t *testing.T) {
	ctx, _ := newCtx(t)
	startPlayback(t, ctx, "track")

	if err := runStop(ctx); err != nil {
		t.Fatal(err)
	}
	if _, ok := ctx.App.Music.Session("g1"); ok {
		t.Error("session must be gone after stop")
	}

	// A second stop has nothing to act on.
	ctx2, replies := newCtx(t)
	if err := runStop(ctx2); err != nil {
		t.Fatal(err)
	}
	if len(*replies) != 1 {
		t.Errorf("replies = %d, want 1", len(*replies))
	}
}
