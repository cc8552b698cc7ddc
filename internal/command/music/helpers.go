// Package music holds the playback commands. Every one of them needs a live
// session or a voice channel, so the shared preconditions live here.
package music

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/mlvsme/glassbot/internal/command"
	musicsvc "github.com/mlvsme/glassbot/internal/music"
)

const voicePerms = discordgo.PermissionVoiceConnect | discordgo.PermissionVoiceSpeak

// requireVoice checks that the author is in a voice channel and that the bot
// may connect and speak there.
func requireVoice(ctx *command.Context) (string, bool) {
	vc := ctx.VoiceChannel()
	if vc == "" {
		_ = ctx.Reply(ctx.App.Glass.Warning("Not in Voice", "Join a voice channel first."))
		return "", false
	}
	has, err := ctx.App.Moderation.BotHas(ctx.GuildID(), vc, voicePerms)
	if err != nil {
		log.Error().Err(err).Str("guild", ctx.GuildID()).Msg("voice permission check failed")
		_ = ctx.Reply(ctx.App.Glass.Error("Something Broke", "Couldn't check voice permissions. Try again."))
		return "", false
	}
	if !has {
		_ = ctx.Reply(ctx.App.Glass.Error("Missing Permission",
			"I can't connect or speak in your voice channel."))
		return "", false
	}
	return vc, true
}

// requireSession returns the guild's live session, replying when there is
// none.
func requireSession(ctx *command.Context) (*musicsvc.Session, bool) {
	session, ok := ctx.App.Music.Session(ctx.GuildID())
	if !ok {
		_ = ctx.Reply(ctx.App.Glass.Warning("Nothing Playing", "Start something with `"+ctx.Prefix+"play`."))
		return nil, false
	}
	return session, ok
}

func trackLine(t musicsvc.Track) string {
	if t.URL == "" {
		return "**" + t.Title + "**"
	}
	return fmt.Sprintf("[%s](%s)", t.Title, t.URL)
}
