package utility

import (
	"github.com/mlvsme/glassbot/internal/command"
	"github.com/mlvsme/glassbot/internal/glass"
	"github.com/mlvsme/glassbot/internal/version"
)

func init() {
	command.MustRegister(&command.Command{
		Name:        "botinfo",
		Description: "About this bot",
		Category:    "utility",
		Usage:       "botinfo",
		Run:         runBotInfo,
	})
}

func runBotInfo(ctx *command.Context) error {
	inviteURL := "https://discord.com/oauth2/authorize?client_id=" +
		ctx.Session.State.User.ID + "&scope=bot&permissions=8"

	return ctx.Reply(ctx.App.Glass.Embed(glass.Options{
		Theme:       "premium",
		Title:       "✨ " + version.AppFull,
		Description: "Moderation, music and server tools with a glassmorphism look.",
		Thumbnail:   ctx.Session.State.User.AvatarURL("256"),
		Fields: []glass.Field{
			{Name: "Version", Value: version.Version, Inline: true},
			{Name: "Website", Value: version.SourceURL, Inline: true},
		},
	}), glass.Row(
		glass.Button(inviteURL, "Invite", glass.StyleLink, "➕"),
		glass.Button(version.SourceURL, "Website", glass.StyleLink, "🌐"),
		glass.Button("bot_stats", "Stats", glass.StylePrimary, "📊"),
		glass.Button("bot_updates", "Updates", glass.StyleSecondary, "📰"),
	))
}
