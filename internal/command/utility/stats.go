package utility

import (
	"fmt"
	"runtime"
	"time"

	"github.com/mlvsme/glassbot/internal/command"
	"github.com/mlvsme/glassbot/internal/glass"
)

func init() {
	command.MustRegister(&command.Command{
		Name:        "stats",
		Description: "Show runtime statistics",
		Category:    "utility",
		Usage:       "stats",
		Run:         runStats,
	})
}

func runStats(ctx *command.Context) error {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	users := 0
	for _, g := range ctx.Session.State.Guilds {
		users += g.MemberCount
	}

	return ctx.Reply(ctx.App.Glass.Embed(glass.Options{
		Theme: "system",
		Fields: []glass.Field{
			{Name: "Servers", Value: fmt.Sprintf("%d", len(ctx.Session.State.Guilds)), Inline: true},
			{Name: "Users", Value: fmt.Sprintf("%d", users), Inline: true},
			{Name: "Uptime", Value: ctx.App.Uptime().Round(time.Second).String(), Inline: true},
			{Name: "Memory", Value: fmt.Sprintf("%d MB", mem.Alloc/1024/1024), Inline: true},
			{Name: "Goroutines", Value: fmt.Sprintf("%d", runtime.NumGoroutine()), Inline: true},
			{Name: "Go", Value: runtime.Version(), Inline: true},
		},
	}))
}
