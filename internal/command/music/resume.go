package music

import (
	"github.com/mlvsme/glassbot/internal/command"
)

func init() {
	command.MustRegister(&command.Command{
		Name:        "resume",
		Description: "Resume paused playback",
		Category:    "music",
		Usage:       "resume",
		Run:         runResume,
	})
}

func runResume(ctx *command.Context) error {
	session, ok := requireSession(ctx)
	if !ok {
		return nil
	}
	if err := session.Resume(); err != nil {
		return ctx.Reply(ctx.App.Glass.Warning("Can't Resume", "Playback isn't paused."))
	}
	return ctx.Reply(ctx.App.Glass.Music("▶️ Resumed", "Back to the music."))
}
