package music

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/mlvsme/glassbot/internal/command"
	musicsvc "github.com/mlvsme/glassbot/internal/music"
)

func init() {
	command.MustRegister(&command.Command{
		Name:        "jump",
		Description: "Jump straight to a queue position",
		Category:    "music",
		Usage:       "jump <position>",
		Run:         runJump,
	})
}

func runJump(ctx *command.Context) error {
	session, ok := requireSession(ctx)
	if !ok {
		return nil
	}
	if len(ctx.Args) == 0 {
		return ctx.Reply(ctx.App.Glass.Error("Missing Position",
			"Usage: `"+ctx.Prefix+"jump <position>` (see `"+ctx.Prefix+"queue` for positions)"))
	}
	pos, err := strconv.Atoi(ctx.Args[0])
	if err != nil {
		return ctx.Reply(ctx.App.Glass.Error("Invalid Position", "That's not a queue position."))
	}
	target, err := session.Jump(pos)
	if errors.Is(err, musicsvc.ErrOutOfRange) || errors.Is(err, musicsvc.ErrNothingQueued) {
		return ctx.Reply(ctx.App.Glass.Error("Invalid Position",
			fmt.Sprintf("Pick a position between **1** and **%d**.", len(session.Queue()))))
	}
	if err != nil {
		return err
	}
	return ctx.Reply(ctx.App.Glass.Music("⏭️ Jumped", "Now playing "+trackLine(target)))
}
