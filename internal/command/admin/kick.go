package admin

import (
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/mlvsme/glassbot/internal/command"
	"github.com/mlvsme/glassbot/internal/glass"
)

func init() {
	command.MustRegister(&command.Command{
		Name:        "kick",
		Description: "Kick a member from the server",
		Category:    "admin",
		Usage:       "kick @user [reason]",
		Run:         runKick,
	})
}

func runKick(ctx *command.Context) error {
	target, ok := guard(ctx, discordgo.PermissionKickMembers)
	if !ok {
		return nil
	}
	why := reason(ctx)

	serverName := ctx.GuildID()
	if guild, err := ctx.Session.State.Guild(ctx.GuildID()); err == nil {
		serverName = guild.Name
	}
	notice := ctx.App.Glass.Embed(glass.Options{
		Theme:       "warning",
		Title:       "👢 You Were Kicked",
		Description: "You were kicked from **" + serverName + "**. You can rejoin with a new invite.",
		Fields:      []glass.Field{{Name: "Reason", Value: why}},
	})
	if err := ctx.App.Moderation.Notify(target.ID, notice); err != nil {
		log.Debug().Err(err).Str("user", target.ID).Msg("kick notice undeliverable")
	}

	if err := ctx.App.Moderation.Kick(ctx.GuildID(), target.ID, why); err != nil {
		return err
	}

	return ctx.Reply(ctx.App.Glass.Embed(glass.Options{
		Theme:       "warning",
		Title:       "👢 Member Kicked",
		Description: "**" + target.Username + "** was shown the door.",
		Thumbnail:   target.AvatarURL("256"),
		Fields: []glass.Field{
			{Name: "Reason", Value: why, Inline: true},
			{Name: "By", Value: ctx.Author().Username, Inline: true},
		},
	}))
}
