package admin

import (
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/mlvsme/glassbot/internal/command"
	"github.com/mlvsme/glassbot/internal/glass"
)

func init() {
	command.MustRegister(&command.Command{
		Name:        "ban",
		Description: "Ban a member from the server",
		Category:    "admin",
		Usage:       "ban @user [reason]",
		Run:         runBan,
	})
}

func runBan(ctx *command.Context) error {
	target, ok := guard(ctx, discordgo.PermissionBanMembers)
	if !ok {
		return nil
	}
	why := reason(ctx)

	// Tell them before the ban lands; afterwards the DM can't be delivered.
	serverName := ctx.GuildID()
	if guild, err := ctx.Session.State.Guild(ctx.GuildID()); err == nil {
		serverName = guild.Name
	}
	notice := ctx.App.Glass.Embed(glass.Options{
		Theme:       "alert",
		Title:       "🔨 You Were Banned",
		Description: "You were banned from **" + serverName + "**.",
		Fields:      []glass.Field{{Name: "Reason", Value: why}},
	})
	if err := ctx.App.Moderation.Notify(target.ID, notice); err != nil {
		log.Debug().Err(err).Str("user", target.ID).Msg("ban notice undeliverable")
	}

	if err := ctx.App.Moderation.Ban(ctx.GuildID(), target.ID, why); err != nil {
		return err
	}

	return ctx.Reply(ctx.App.Glass.Embed(glass.Options{
		Theme:       "alert",
		Title:       "🔨 Member Banned",
		Description: "**" + target.Username + "** is gone.",
		Thumbnail:   target.AvatarURL("256"),
		Fields: []glass.Field{
			{Name: "Reason", Value: why, Inline: true},
			{Name: "By", Value: ctx.Author().Username, Inline: true},
		},
	}))
}
