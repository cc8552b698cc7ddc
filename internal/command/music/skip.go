package music

import (
	"errors"

	"github.com/mlvsme/glassbot/internal/command"
	musicsvc "github.com/mlvsme/glassbot/internal/music"
)

func init() {
	command.MustRegister(&command.Command{
		Name:        "skip",
		Description: "Skip to the next track in the queue",
		Category:    "music",
		Usage:       "skip",
		Run:         runSkip,
	})
}

func runSkip(ctx *command.Context) error {
	session, ok := requireSession(ctx)
	if !ok {
		return nil
	}
	next, err := session.Skip()
	switch {
	case errors.Is(err, musicsvc.ErrNothingQueued):
		return ctx.Reply(ctx.App.Glass.Warning("End of Queue",
			"There's nothing after this track. Use `"+ctx.Prefix+"stop` to end playback."))
	case errors.Is(err, musicsvc.ErrNoSession):
		return ctx.Reply(ctx.App.Glass.Warning("Nothing Playing", "Start something with `"+ctx.Prefix+"play`."))
	case err != nil:
		return err
	}
	return ctx.Reply(ctx.App.Glass.Music("⏭️ Skipped", "Now playing "+trackLine(next)))
}
