package music

import (
	"fmt"

	"github.com/mlvsme/glassbot/internal/command"
	"github.com/mlvsme/glassbot/internal/glass"
)

func init() {
	command.MustRegister(&command.Command{
		Name:        "nowplaying",
		Description: "Show the current track",
		Category:    "music",
		Usage:       "nowplaying",
		Run:         runNowPlaying,
	})
}

func runNowPlaying(ctx *command.Context) error {
	session, ok := requireSession(ctx)
	if !ok {
		return nil
	}
	now, playing := session.NowPlaying()
	if !playing {
		return ctx.Reply(ctx.App.Glass.Warning("Nothing Playing", "The queue is idle."))
	}
	return ctx.Reply(ctx.App.Glass.Embed(glass.Options{
		Theme:       "music",
		Title:       "▶️ Now Playing",
		Description: trackLine(now),
		Thumbnail:   now.Thumbnail,
		Fields: []glass.Field{
			{Name: "Requested by", Value: now.RequestedBy, Inline: true},
			{Name: "Volume", Value: fmt.Sprintf("%d%%", session.Volume()), Inline: true},
			{Name: "Loop", Value: session.Repeat().String(), Inline: true},
		},
	}))
}
