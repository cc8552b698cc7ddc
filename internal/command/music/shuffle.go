package music

import (
	"fmt"

	"github.com/mlvsme/glassbot/internal/command"
)

func init() {
	command.MustRegister(&command.Command{
		Name:        "shuffle",
		Description: "Shuffle the pending queue",
		Category:    "music",
		Usage:       "shuffle",
		Run:         runShuffle,
	})
}

func runShuffle(ctx *command.Context) error {
	session, ok := requireSession(ctx)
	if !ok {
		return nil
	}
	n := session.Shuffle()
	if n == 0 {
		return ctx.Reply(ctx.App.Glass.Warning("Nothing to Shuffle", "The queue is empty."))
	}
	return ctx.Reply(ctx.App.Glass.Music("🔀 Shuffled",
		fmt.Sprintf("Mixed up **%d** track(s).", n)))
}
