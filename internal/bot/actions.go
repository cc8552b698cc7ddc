package bot

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/mlvsme/glassbot/internal/glass"
)

// action identifies a button press. Custom IDs are parsed into this enum
// once, at the router's edge; handlers switch on the typed value.
type action int

const (
	actionUnknown action = iota
	actionHelpRefresh
	actionBotStats
	actionBotCommands
	actionBotUpdates
	actionMusicQueue
	actionMusicHelp
	actionAvatarView
	actionProfileStats
)

var actionIDs = map[string]action{
	"help_refresh":  actionHelpRefresh,
	"bot_stats":     actionBotStats,
	"bot_commands":  actionBotCommands,
	"bot_updates":   actionBotUpdates,
	"music_queue":   actionMusicQueue,
	"music_help":    actionMusicHelp,
	"avatar_view":   actionAvatarView,
	"profile_stats": actionProfileStats,
}

func parseAction(customID string) action {
	return actionIDs[customID]
}

// onInteractionCreate answers button presses with ephemeral embeds. Unknown
// custom IDs are ignored so stale messages from older builds stay harmless.
func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionMessageComponent {
		return
	}

	var embed *discordgo.MessageEmbed
	switch parseAction(i.MessageComponentData().CustomID) {
	case actionHelpRefresh:
		embed = b.helpOverview()
	case actionBotStats:
		embed = b.statsEmbed()
	case actionBotCommands:
		embed = b.commandListEmbed()
	case actionBotUpdates:
		embed = b.app.Glass.Embed(glass.Options{
			Theme:       "event",
			Title:       "📰 Latest Updates",
			Description: "Glassmorphism embeds, music queue controls and per-server settings are live.",
		})
	case actionMusicQueue:
		embed = b.queueEmbed(i.GuildID)
	case actionMusicHelp:
		embed = b.musicHelpEmbed()
	case actionAvatarView:
		embed = b.avatarEmbed(i)
	case actionProfileStats:
		embed = b.profileEmbed(i)
	default:
		return
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Warn().Err(err).Str("custom_id", i.MessageComponentData().CustomID).Msg("interaction response failed")
	}
}

func (b *Bot) helpOverview() *discordgo.MessageEmbed {
	groups := b.registry.ByCategory()
	var fields []glass.Field
	for _, cat := range []string{"admin", "music", "community", "fun", "utility"} {
		cmds := groups[cat]
		if len(cmds) == 0 {
			continue
		}
		names := make([]string, len(cmds))
		for i, c := range cmds {
			names[i] = "`" + c.Name + "`"
		}
		fields = append(fields, glass.Field{
			Name:  strings.ToUpper(cat[:1]) + cat[1:],
			Value: strings.Join(names, " "),
		})
	}
	return b.app.Glass.Embed(glass.Options{
		Theme:       "guide",
		Description: "All available commands, grouped by category.",
		Fields:      fields,
	})
}

func (b *Bot) statsEmbed() *discordgo.MessageEmbed {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	return b.app.Glass.Embed(glass.Options{
		Theme: "system",
		Fields: []glass.Field{
			{Name: "Servers", Value: fmt.Sprintf("%d", len(b.dg.State.Guilds)), Inline: true},
			{Name: "Uptime", Value: b.app.Uptime().Round(time.Second).String(), Inline: true},
			{Name: "Memory", Value: fmt.Sprintf("%d MB", mem.Alloc/1024/1024), Inline: true},
			{Name: "Go Version", Value: runtime.Version(), Inline: true},
		},
	})
}

func (b *Bot) commandListEmbed() *discordgo.MessageEmbed {
	cmds := b.registry.All()
	var sb strings.Builder
	for _, c := range cmds {
		fmt.Fprintf(&sb, "`%s` %s\n", c.Name, c.Description)
	}
	return b.app.Glass.Embed(glass.Options{
		Theme:       "guide",
		Title:       "📚 Command List",
		Description: sb.String(),
	})
}

func (b *Bot) queueEmbed(guildID string) *discordgo.MessageEmbed {
	session, ok := b.app.Music.Session(guildID)
	if !ok {
		return b.app.Glass.Warning("Nothing Playing", "There's no active music session in this server.")
	}
	var sb strings.Builder
	if now, ok := session.NowPlaying(); ok {
		fmt.Fprintf(&sb, "**Now:** [%s](%s)\n\n", now.Title, now.URL)
	}
	for i, t := range session.Queue() {
		fmt.Fprintf(&sb, "`%d.` %s\n", i+1, t.Title)
		if i >= 9 {
			fmt.Fprintf(&sb, "...and %d more\n", len(session.Queue())-10)
			break
		}
	}
	if sb.Len() == 0 {
		sb.WriteString("The queue is empty.")
	}
	return b.app.Glass.Music("🎶 Queue", sb.String())
}

func (b *Bot) musicHelpEmbed() *discordgo.MessageEmbed {
	return b.app.Glass.Music("🎧 Music Commands",
		"`play <query>` `add <query>` `skip` `stop` `queue` `nowplaying`\n"+
			"`resume` `volume <0-100>` `shuffle` `jump <position>` `loop`")
}

func (b *Bot) avatarEmbed(i *discordgo.InteractionCreate) *discordgo.MessageEmbed {
	user := interactionUser(i)
	return b.app.Glass.Embed(glass.Options{
		Theme: "default",
		Title: user.Username + "'s Avatar",
		Image: user.AvatarURL("1024"),
	})
}

func (b *Bot) profileEmbed(i *discordgo.InteractionCreate) *discordgo.MessageEmbed {
	user := interactionUser(i)
	created, _ := discordgo.SnowflakeTimestamp(user.ID)
	return b.app.Glass.Embed(glass.Options{
		Theme:     "premium",
		Title:     user.Username,
		Thumbnail: user.AvatarURL("256"),
		Fields: []glass.Field{
			{Name: "ID", Value: user.ID, Inline: true},
			{Name: "Created", Value: created.Format("Jan 2, 2006"), Inline: true},
		},
	})
}

func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil {
		return i.Member.User
	}
	return i.User
}
