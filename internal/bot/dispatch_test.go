package bot

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/bwmarrin/discordgo"

	"github.com/mlvsme/glassbot/internal/app"
	"github.com/mlvsme/glassbot/internal/command"
	"github.com/mlvsme/glassbot/internal/config"
	"github.com/mlvsme/glassbot/internal/glass"
	"github.com/mlvsme/glassbot/internal/settings"
)

// newTestBot builds a dispatcher around a never-opened session, a private
// registry and a captured reply channel.
func newTestBot(t *testing.T) (*Bot, *command.Registry, *[]*discordgo.MessageEmbed) {
	t.Helper()

	dg, err := discordgo.New("Bot test")
	if err != nil {
		t.Fatal(err)
	}
	store, err := settings.NewStore(context.Background(), filepath.Join(t.TempDir(), "settings.json"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = store.Close() })

	registry := command.NewRegistry()
	b := New(dg, &app.Context{
		Config:   &config.Config{Prefix: "!"},
		Settings: store,
		Glass:    glass.NewBuilder("glassbot"),
	}, registry)

	var replies []*discordgo.MessageEmbed
	b.replyFactory = func(channelID string) func(embed *discordgo.MessageEmbed, rows ...discordgo.ActionsRow) error {
		return func(embed *discordgo.MessageEmbed, rows ...discordgo.ActionsRow) error {
			replies = append(replies, embed)
			return nil
		}
	}
	return b, registry, &replies
}

func message(content string) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{Message: &discordgo.Message{
		GuildID:   "g1",
		ChannelID: "c1",
		Content:   content,
		Author:    &discordgo.User{ID: "u1", Username: "User"},
	}}
}

func TestUnknownCommandStaysSilent(t *testing.T) {
	b, _, replies := newTestBot(t)

	b.onMessageCreate(b.dg, message("!nope"))
	b.onMessageCreate(b.dg, message("no prefix at all"))
	b.onMessageCreate(b.dg, message("!"))

	if len(*replies) != 0 {
		t.Errorf("replies = %d, want 0", len(*replies))
	}
}

func TestPanickingHandlerRepliesOnceAndRecovers(t *testing.T) {
	b, registry, replies := newTestBot(t)

	registry.MustRegister(&command.Command{
		Name: "boom",
		Run:  func(ctx *command.Context) error { panic("handler bug") },
	})
	ran := false
	registry.MustRegister(&command.Command{
		Name: "fine",
		Run: func(ctx *command.Context) error {
			ran = true
			return ctx.Reply(ctx.App.Glass.Success("OK", "still here"))
		},
	})

	b.onMessageCreate(b.dg, message("!boom"))
	if len(*replies) != 1 {
		t.Fatalf("replies after panic = %d, want 1", len(*replies))
	}
	if (*replies)[0].Title != "Something Broke" {
		t.Errorf("panic reply title = %q", (*replies)[0].Title)
	}

	// The dispatcher must keep serving after a handler panic.
	b.onMessageCreate(b.dg, message("!fine"))
	if !ran {
		t.Error("dispatcher stopped serving after a panic")
	}
	if len(*replies) != 2 {
		t.Errorf("replies = %d, want 2", len(*replies))
	}
}

func TestFailingHandlerRepliesOnce(t *testing.T) {
	b, registry, replies := newTestBot(t)

	registry.MustRegister(&command.Command{
		Name: "bad",
		Run:  func(ctx *command.Context) error { return errors.New("backend down") },
	})

	b.onMessageCreate(b.dg, message("!bad"))
	if len(*replies) != 1 {
		t.Fatalf("replies = %d, want 1", len(*replies))
	}
	if (*replies)[0].Title != "Something Broke" {
		t.Errorf("error reply title = %q", (*replies)[0].Title)
	}
}
