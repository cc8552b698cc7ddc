// Package admin holds the moderation commands. All of them run through the
// same guard so a denied action never has side effects.
package admin

import (
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/mlvsme/glassbot/internal/command"
	"github.com/mlvsme/glassbot/internal/moderation"
)

// guard runs the precondition sequence shared by targeted moderation
// commands: actor permission, bot permission, target resolution, then role
// hierarchy. It replies with the specific failure and returns ok=false as
// soon as one check fails; nothing is mutated before all checks pass.
func guard(ctx *command.Context, perm int64) (*discordgo.User, bool) {
	mod := ctx.App.Moderation
	permName := moderation.Name(perm)

	has, err := mod.ActorHas(ctx.GuildID(), ctx.ChannelID(), ctx.Author().ID, perm)
	if err != nil {
		log.Error().Err(err).Str("guild", ctx.GuildID()).Msg("actor permission check failed")
		_ = ctx.Reply(ctx.App.Glass.Error("Something Broke", "Couldn't verify permissions. Try again."))
		return nil, false
	}
	if !has {
		_ = ctx.Reply(ctx.App.Glass.Error("Permission Denied",
			"You need the **"+permName+"** permission to do that."))
		return nil, false
	}

	has, err = mod.BotHas(ctx.GuildID(), ctx.ChannelID(), perm)
	if err != nil {
		log.Error().Err(err).Str("guild", ctx.GuildID()).Msg("bot permission check failed")
		_ = ctx.Reply(ctx.App.Glass.Error("Something Broke", "Couldn't verify permissions. Try again."))
		return nil, false
	}
	if !has {
		_ = ctx.Reply(ctx.App.Glass.Error("Missing Permission",
			"I need the **"+permName+"** permission to do that."))
		return nil, false
	}

	target := ctx.FirstMention()
	if target == nil {
		_ = ctx.Reply(ctx.App.Glass.Error("No Target",
			"Mention the user, or pass their ID. Usage: `"+ctx.Prefix+"ban @user [reason]`"))
		return nil, false
	}
	if target.ID == ctx.Author().ID {
		_ = ctx.Reply(ctx.App.Glass.Error("Invalid Target", "You can't do that to yourself."))
		return nil, false
	}
	if target.ID == ctx.Session.State.User.ID {
		_ = ctx.Reply(ctx.App.Glass.Error("Invalid Target", "Nice try."))
		return nil, false
	}

	actorRank, err := mod.Rank(ctx.GuildID(), ctx.Author().ID)
	if err != nil {
		log.Error().Err(err).Str("guild", ctx.GuildID()).Msg("actor rank lookup failed")
		_ = ctx.Reply(ctx.App.Glass.Error("Something Broke", "Couldn't check role hierarchy. Try again."))
		return nil, false
	}
	targetRank, err := mod.Rank(ctx.GuildID(), target.ID)
	if err != nil {
		log.Error().Err(err).Str("guild", ctx.GuildID()).Msg("target rank lookup failed")
		_ = ctx.Reply(ctx.App.Glass.Error("Something Broke", "Couldn't check role hierarchy. Try again."))
		return nil, false
	}
	if actorRank <= targetRank {
		_ = ctx.Reply(ctx.App.Glass.Error("Role Hierarchy",
			"**"+target.Username+"** has an equal or higher role than you."))
		return nil, false
	}

	return target, true
}

// reason joins everything after the target mention, with a default.
func reason(ctx *command.Context) string {
	if len(ctx.Args) < 2 {
		return "No reason provided"
	}
	out := ""
	for i, a := range ctx.Args[1:] {
		if i > 0 {
			out += " "
		}
		out += a
	}
	return out
}
