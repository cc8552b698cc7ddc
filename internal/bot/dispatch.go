package bot

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/mlvsme/glassbot/internal/command"
	"github.com/mlvsme/glassbot/internal/glass"
	"github.com/mlvsme/glassbot/internal/moderation"
)

// onMessageCreate routes prefixed guild messages to their command handler.
// Messages that do not address the bot are ignored without a reply.
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}

	st, err := b.app.Settings.Load(m.GuildID)
	if err != nil {
		log.Error().Err(err).Str("guild", m.GuildID).Msg("settings load failed")
		return
	}
	prefix := st.Prefix
	if prefix == "" {
		prefix = b.app.Config.Prefix
	}
	if !strings.HasPrefix(m.Content, prefix) {
		return
	}

	fields := strings.Fields(m.Content[len(prefix):])
	if len(fields) == 0 {
		return
	}
	name := strings.ToLower(fields[0])
	args := fields[1:]

	cmd, ok := b.registry.Lookup(name)
	if !ok {
		// Unknown names fall through to the guild's custom commands.
		if resp, found := st.CustomCommands[name]; found {
			if _, err := s.ChannelMessageSend(m.ChannelID, resp); err != nil {
				log.Warn().Err(err).Str("guild", m.GuildID).Msg("custom command reply failed")
			}
		}
		return
	}

	ctx := &command.Context{
		Ctx:     context.Background(),
		App:     b.app,
		Session: s,
		Event:   m,
		Args:    args,
		Prefix:  prefix,
	}
	if b.replyFactory != nil {
		ctx.ReplyFunc = b.replyFactory(m.ChannelID)
	}

	if !b.gate.Allow(m.GuildID, m.Author.ID, cmd.Name, cmd.Cooldown) {
		embed := b.app.Glass.Embed(glass.Options{
			Theme:       "warning",
			Description: "You're using that too fast. Give it a moment.",
		})
		_ = ctx.Reply(embed)
		return
	}

	if cmd.Permission != 0 {
		has, err := b.app.Moderation.ActorHas(m.GuildID, m.ChannelID, m.Author.ID, cmd.Permission)
		if err != nil {
			log.Error().Err(err).Str("command", cmd.Name).Msg("actor permission check failed")
			return
		}
		if !has {
			embed := b.app.Glass.Error("Permission Denied",
				"You need the **"+moderation.Name(cmd.Permission)+"** permission to use this command.")
			_ = ctx.Reply(embed)
			return
		}
	}
	if cmd.BotPermission != 0 {
		has, err := b.app.Moderation.BotHas(m.GuildID, m.ChannelID, cmd.BotPermission)
		if err != nil {
			log.Error().Err(err).Str("command", cmd.Name).Msg("bot permission check failed")
			return
		}
		if !has {
			embed := b.app.Glass.Error("Missing Permission",
				"I need the **"+moderation.Name(cmd.BotPermission)+"** permission to do that.")
			_ = ctx.Reply(embed)
			return
		}
	}

	b.run(cmd, ctx)
}

// run executes a handler, containing panics so one bad command cannot take
// the gateway loop down.
func (b *Bot) run(cmd *command.Command, ctx *command.Context) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Interface("panic", r).
				Str("command", cmd.Name).
				Str("guild", ctx.GuildID()).
				Msg("command handler panicked")
			embed := b.app.Glass.Error("Something Broke", "That command hit an internal error. It's been logged.")
			_ = ctx.Reply(embed)
		}
	}()

	if err := cmd.Run(ctx); err != nil {
		log.Error().
			Err(err).
			Str("command", cmd.Name).
			Str("guild", ctx.GuildID()).
			Str("user", ctx.Author().ID).
			Msg("command failed")
		embed := b.app.Glass.Error("Something Broke", "That command hit an internal error. It's been logged.")
		_ = ctx.Reply(embed)
	}
}
