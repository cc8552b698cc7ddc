package music

import (
	"github.com/mlvsme/glassbot/internal/command"
	musicsvc "github.com/mlvsme/glassbot/internal/music"
)

func init() {
	command.MustRegister(&command.Command{
		Name:        "loop",
		Description: "Cycle the repeat mode: off, song, queue",
		Category:    "music",
		Usage:       "loop",
		Run:         runLoop,
	})
}

func runLoop(ctx *command.Context) error {
	session, ok := requireSession(ctx)
	if !ok {
		return nil
	}
	mode := session.CycleRepeat()
	desc := map[musicsvc.RepeatMode]string{
		musicsvc.RepeatOff:   "Repeat is **off**.",
		musicsvc.RepeatTrack: "Looping the **current song**.",
		musicsvc.RepeatQueue: "Looping the **whole queue**.",
	}[mode]
	return ctx.Reply(ctx.App.Glass.Music("🔁 Loop: "+mode.String(), desc))
}
