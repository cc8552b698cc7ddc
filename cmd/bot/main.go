package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/mlvsme/glassbot/internal/app"
	"github.com/mlvsme/glassbot/internal/bot"
	"github.com/mlvsme/glassbot/internal/command"
	"github.com/mlvsme/glassbot/internal/config"
	"github.com/mlvsme/glassbot/internal/dashboard"
	"github.com/mlvsme/glassbot/internal/glass"
	"github.com/mlvsme/glassbot/internal/logging"
	"github.com/mlvsme/glassbot/internal/moderation"
	"github.com/mlvsme/glassbot/internal/music"
	"github.com/mlvsme/glassbot/internal/settings"
	"github.com/mlvsme/glassbot/internal/version"

	// Handler packages register their commands on import.
	_ "github.com/mlvsme/glassbot/internal/command/admin"
	_ "github.com/mlvsme/glassbot/internal/command/community"
	_ "github.com/mlvsme/glassbot/internal/command/fun"
	_ "github.com/mlvsme/glassbot/internal/command/music"
	_ "github.com/mlvsme/glassbot/internal/command/utility"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("configuration")
	}
	logging.Setup(cfg.LogLevel, cfg.LogFile)
	log.Info().Str("version", version.Version).Msg(version.AppName + " starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := settings.NewStore(ctx, cfg.SettingsPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.SettingsPath).Msg("settings store")
	}
	defer store.Close()

	dg, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		log.Fatal().Err(err).Msg("discord session")
	}

	appCtx := &app.Context{
		Config:     cfg,
		Settings:   store,
		Moderation: moderation.New(dg),
		Music:      music.NewManager(music.NewMelodixFactory(dg)),
		Glass:      glass.NewBuilder(version.AppName),
		StartTime:  time.Now(),
	}

	b := bot.New(dg, appCtx, command.Default)
	appCtx.Music.Subscribe(b.NotifyPlayback)

	dash := dashboard.New(cfg.DashboardAddr, func() dashboard.Stats {
		stats := dashboard.Stats{
			BotName: version.AppName,
			Version: version.Version,
			Guilds:  len(dg.State.Guilds),
			Uptime:  appCtx.Uptime().Round(time.Second),
		}
		for _, g := range dg.State.Guilds {
			stats.Users += g.MemberCount
		}
		for _, s := range appCtx.Music.Active() {
			row := dashboard.SessionStat{GuildID: s.GuildID(), QueueLen: len(s.Queue())}
			if now, ok := s.NowPlaying(); ok {
				row.NowPlaying = now.Title
			}
			stats.Sessions = append(stats.Sessions, row)
		}
		return stats
	})
	go func() {
		if err := dash.Run(ctx); err != nil {
			log.Error().Err(err).Msg("dashboard")
		}
	}()

	if err := b.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("bot")
	}
	log.Info().Msg("bye")
}
