// Package bot owns the gateway session: it wires the dispatcher, the button
// router and the lifecycle event handlers onto a discordgo session and keeps
// it open until the process is told to stop.
package bot

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/mlvsme/glassbot/internal/app"
	"github.com/mlvsme/glassbot/internal/command"
)

type Bot struct {
	dg       *discordgo.Session
	app      *app.Context
	registry *command.Registry
	gate     *command.CooldownGate

	// replyFactory, when set, supplies the ReplyFunc for dispatched
	// commands. Tests use it to capture replies without a gateway.
	replyFactory func(channelID string) func(embed *discordgo.MessageEmbed, rows ...discordgo.ActionsRow) error
}

// New wraps an already-created gateway session. The session is created in
// main so the music engine factory can share it.
func New(dg *discordgo.Session, appCtx *app.Context, registry *command.Registry) *Bot {
	b := &Bot{
		dg:       dg,
		app:      appCtx,
		registry: registry,
		gate:     command.NewCooldownGate(),
	}

	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsMessageContent |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildVoiceStates

	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onMessageCreate)
	dg.AddHandler(b.onInteractionCreate)
	dg.AddHandler(b.onGuildMemberAdd)
	dg.AddHandler(b.onGuildMemberRemove)

	return b
}

// Session exposes the underlying gateway session.
func (b *Bot) Session() *discordgo.Session { return b.dg }

// Run opens the gateway connection and blocks until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	if err := b.dg.Open(); err != nil {
		return fmt.Errorf("open gateway: %w", err)
	}
	log.Info().Str("user", b.dg.State.User.Username).Msg("gateway connected")

	<-ctx.Done()

	log.Info().Msg("shutting down")
	b.app.Music.Shutdown()
	return b.dg.Close()
}
