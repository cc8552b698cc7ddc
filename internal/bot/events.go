package bot

import (
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/mlvsme/glassbot/internal/glass"
	"github.com/mlvsme/glassbot/internal/music"
)

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.app.Glass.SetIdentity(r.User.Username, r.User.AvatarURL("128"))
	if err := s.UpdateGameStatus(0, b.app.Config.Prefix+"help | MLVS.me"); err != nil {
		log.Warn().Err(err).Msg("status update failed")
	}
	log.Info().Int("guilds", len(r.Guilds)).Msg("ready")
}

// expand fills in the {user} and {server} placeholders used by welcome and
// leave templates.
func expand(template, user, server string) string {
	out := strings.ReplaceAll(template, "{user}", user)
	return strings.ReplaceAll(out, "{server}", server)
}

func (b *Bot) onGuildMemberAdd(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	st, err := b.app.Settings.Load(m.GuildID)
	if err != nil {
		log.Error().Err(err).Str("guild", m.GuildID).Msg("settings load failed")
		return
	}

	if st.AutoRole != "" {
		if err := s.GuildMemberRoleAdd(m.GuildID, m.User.ID, st.AutoRole); err != nil {
			log.Warn().Err(err).Str("guild", m.GuildID).Str("role", st.AutoRole).Msg("auto role failed")
		}
	}

	if st.WelcomeChannel == "" {
		return
	}
	serverName := m.GuildID
	if guild, err := s.State.Guild(m.GuildID); err == nil {
		serverName = guild.Name
	}
	embed := b.app.Glass.Embed(glass.Options{
		Theme:       "event",
		Title:       "👋 Welcome!",
		Description: expand(st.WelcomeMessage, m.User.Mention(), serverName),
		Thumbnail:   m.User.AvatarURL("256"),
	})
	if _, err := s.ChannelMessageSendEmbed(st.WelcomeChannel, embed); err != nil {
		log.Warn().Err(err).Str("guild", m.GuildID).Msg("welcome message failed")
	}
}

func (b *Bot) onGuildMemberRemove(s *discordgo.Session, m *discordgo.GuildMemberRemove) {
	st, err := b.app.Settings.Load(m.GuildID)
	if err != nil || st.WelcomeChannel == "" {
		return
	}
	serverName := m.GuildID
	if guild, err := s.State.Guild(m.GuildID); err == nil {
		serverName = guild.Name
	}
	embed := b.app.Glass.Embed(glass.Options{
		Theme:       "warning",
		Description: expand(st.LeaveMessage, m.User.Username, serverName),
	})
	if _, err := s.ChannelMessageSendEmbed(st.WelcomeChannel, embed); err != nil {
		log.Warn().Err(err).Str("guild", m.GuildID).Msg("leave message failed")
	}
}

// NotifyPlayback posts playback lifecycle events to the session's text
// channel. Wired into the music manager at startup.
func (b *Bot) NotifyPlayback(e music.Event) {
	var embed *discordgo.MessageEmbed
	switch e.Type {
	case music.EventTrackStarted:
		embed = b.app.Glass.Embed(glass.Options{
			Theme:       "music",
			Title:       "▶️ Now Playing",
			Description: "[" + e.Track.Title + "](" + e.Track.URL + ")",
			Fields: []glass.Field{
				{Name: "Requested by", Value: e.Track.RequestedBy, Inline: true},
			},
		})
	case music.EventQueueEnded:
		embed = b.app.Glass.Music("Queue Finished", "That's everything. Add more with `play`.")
	case music.EventPlaybackError:
		title := "that track"
		if e.Track != nil {
			title = e.Track.Title
		}
		embed = b.app.Glass.Error("Playback Error", "Couldn't play **"+title+"**, skipping it.")
	default:
		return
	}
	if _, err := b.dg.ChannelMessageSendEmbed(e.TextChannelID, embed); err != nil {
		log.Warn().Err(err).Str("guild", e.GuildID).Msg("playback notification failed")
	}
}
