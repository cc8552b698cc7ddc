package music

import (
	"fmt"
	"strconv"

	"github.com/mlvsme/glassbot/internal/command"
)

func init() {
	command.MustRegister(&command.Command{
		Name:        "volume",
		Description: "Show or set the playback volume",
		Category:    "music",
		Usage:       "volume [0-100]",
		Run:         runVolume,
	})
}

func runVolume(ctx *command.Context) error {
	session, ok := requireSession(ctx)
	if !ok {
		return nil
	}
	if len(ctx.Args) == 0 {
		return ctx.Reply(ctx.App.Glass.Music("🔊 Volume",
			fmt.Sprintf("Currently at **%d%%**.", session.Volume())))
	}
	v, err := strconv.Atoi(ctx.Args[0])
	if err != nil || session.SetVolume(v) != nil {
		return ctx.Reply(ctx.App.Glass.Error("Invalid Volume", "Give me a number from **0** to **100**."))
	}
	return ctx.Reply(ctx.App.Glass.Music("🔊 Volume",
		fmt.Sprintf("Saved at **%d%%** for this session.", v)))
}
