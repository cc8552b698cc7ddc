package music

import (
	"errors"

	"github.com/mlvsme/glassbot/internal/command"
	musicsvc "github.com/mlvsme/glassbot/internal/music"
)

func init() {
	command.MustRegister(&command.Command{
		Name:        "stop",
		Description: "Stop playback, clear the queue and leave voice",
		Category:    "music",
		Usage:       "stop",
		Run:         runStop,
	})
}

func runStop(ctx *command.Context) error {
	err := ctx.App.Music.Stop(ctx.GuildID())
	if errors.Is(err, musicsvc.ErrNoSession) {
		return ctx.Reply(ctx.App.Glass.Warning("Nothing Playing", "There's no session to stop."))
	}
	if err != nil {
		return err
	}
	return ctx.Reply(ctx.App.Glass.Music("⏹️ Stopped", "Queue cleared. See you next time."))
}
