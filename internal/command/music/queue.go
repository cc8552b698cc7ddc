package music

import (
	"fmt"
	"strings"

	"github.com/mlvsme/glassbot/internal/command"
	"github.com/mlvsme/glassbot/internal/glass"
)

func init() {
	command.MustRegister(&command.Command{
		Name:        "queue",
		Description: "Show what's playing and what's next",
		Category:    "music",
		Usage:       "queue",
		Run:         runQueue,
	})
}

func runQueue(ctx *command.Context) error {
	session, ok := requireSession(ctx)
	if !ok {
		return nil
	}

	var sb strings.Builder
	if now, playing := session.NowPlaying(); playing {
		fmt.Fprintf(&sb, "**Now:** %s\n\n", trackLine(now))
	}
	queue := session.Queue()
	for i, t := range queue {
		fmt.Fprintf(&sb, "`%d.` %s · %s\n", i+1, t.Title, t.RequestedBy)
		if i >= 9 && len(queue) > 10 {
			fmt.Fprintf(&sb, "...and %d more\n", len(queue)-10)
			break
		}
	}
	if sb.Len() == 0 {
		sb.WriteString("The queue is empty.")
	}

	return ctx.Reply(ctx.App.Glass.Embed(glass.Options{
		Theme:       "music",
		Title:       "🎶 Queue",
		Description: sb.String(),
		Fields: []glass.Field{
			{Name: "Tracks", Value: fmt.Sprintf("%d", len(queue)), Inline: true},
			{Name: "Loop", Value: session.Repeat().String(), Inline: true},
		},
	}))
}
