package community

import (
	"github.com/mlvsme/glassbot/internal/command"
	"github.com/mlvsme/glassbot/internal/glass"
)

func init() {
	command.MustRegister(&command.Command{
		Name:        "avatar",
		Description: "Show a member's avatar full size",
		Category:    "community",
		Usage:       "avatar [@user]",
		Run:         runAvatar,
	})
}

func runAvatar(ctx *command.Context) error {
	target := ctx.FirstMention()
	if target == nil {
		target = ctx.Author()
	}
	return ctx.Reply(ctx.App.Glass.Embed(glass.Options{
		Theme: "default",
		Title: target.Username + "'s Avatar",
		Image: target.AvatarURL("1024"),
	}), glass.Row(
		glass.Button(target.AvatarURL("4096"), "Open Original", glass.StyleLink, "🖼️"),
	))
}
