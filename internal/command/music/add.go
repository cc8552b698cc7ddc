package music

import (
	"fmt"

	"github.com/mlvsme/glassbot/internal/command"
	"github.com/mlvsme/glassbot/internal/glass"
	musicsvc "github.com/mlvsme/glassbot/internal/music"
)

func init() {
	command.MustRegister(&command.Command{
		Name:        "add",
		Description: "Add a track to an active queue",
		Category:    "music",
		Usage:       "add <url or search>",
		Run:         runAdd,
	})
}

// add only extends an existing queue; play is what creates one.
func runAdd(ctx *command.Context) error {
	if len(ctx.Args) == 0 {
		return ctx.Reply(ctx.App.Glass.Error("Nothing to Add",
			"Usage: `"+ctx.Prefix+"add <url or search>`"))
	}
	vc, ok := requireVoice(ctx)
	if !ok {
		return nil
	}
	session, ok := requireSession(ctx)
	if !ok {
		return nil
	}

	tracks, _, err := session.Enqueue(vc, ctx.ArgsText(), ctx.Author().Username)
	if err != nil {
		if musicsvc.IsUnsupportedSource(err) {
			return ctx.Reply(ctx.App.Glass.Error("Unsupported Source",
				"I can't play that link. Try a direct track URL or a search term."))
		}
		return ctx.Reply(ctx.App.Glass.Error("Resolve Failed",
			"Couldn't find anything for that. Check the link and try again."))
	}
	return ctx.Reply(ctx.App.Glass.Embed(glass.Options{
		Theme:       "music",
		Title:       "🎶 Added to Queue",
		Description: fmt.Sprintf("Queued **%d** track(s)", len(tracks)),
		Fields: []glass.Field{
			{Name: "Queue length", Value: fmt.Sprintf("%d", len(session.Queue())), Inline: true},
		},
	}))
}
