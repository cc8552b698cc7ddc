// Package utility holds the meta commands about the bot itself.
package utility

import (
	"strings"

	"github.com/mlvsme/glassbot/internal/command"
	"github.com/mlvsme/glassbot/internal/glass"
)

func init() {
	command.MustRegister(&command.Command{
		Name:        "help",
		Description: "Show all commands, or details for one",
		Category:    "utility",
		Usage:       "help [command]",
		Run:         runHelp,
	})
}

func runHelp(ctx *command.Context) error {
	if len(ctx.Args) > 0 {
		return helpFor(ctx, ctx.Args[0])
	}

	groups := command.Default.ByCategory()
	var fields []glass.Field
	for _, cat := range []string{"admin", "music", "community", "fun", "utility"} {
		cmds := groups[cat]
		if len(cmds) == 0 {
			continue
		}
		names := make([]string, len(cmds))
		for i, c := range cmds {
			names[i] = "`" + c.Name + "`"
		}
		fields = append(fields, glass.Field{
			Name:  strings.ToUpper(cat[:1]) + cat[1:],
			Value: strings.Join(names, " "),
		})
	}

	return ctx.Reply(ctx.App.Glass.Embed(glass.Options{
		Theme:       "guide",
		Description: "Use `" + ctx.Prefix + "help <command>` for usage details.",
		Fields:      fields,
	}), glass.Row(
		glass.Button("help_refresh", "Refresh", glass.StyleSecondary, "🔄"),
		glass.Button("bot_commands", "Full List", glass.StyleSecondary, "📚"),
		glass.Button("music_help", "Music", glass.StyleSecondary, "🎧"),
	))
}

func helpFor(ctx *command.Context, name string) error {
	cmd, ok := command.Default.Lookup(name)
	if !ok {
		return ctx.Reply(ctx.App.Glass.Error("Unknown Command",
			"No command called `"+name+"`. Try `"+ctx.Prefix+"help`."))
	}
	fields := []glass.Field{
		{Name: "Usage", Value: "`" + ctx.Prefix + cmd.Usage + "`"},
		{Name: "Category", Value: cmd.Category, Inline: true},
	}
	if cmd.Cooldown > 0 {
		fields = append(fields, glass.Field{Name: "Cooldown", Value: cmd.Cooldown.String(), Inline: true})
	}
	return ctx.Reply(ctx.App.Glass.Embed(glass.Options{
		Theme:       "guide",
		Title:       "📖 " + cmd.Name,
		Description: cmd.Description,
		Fields:      fields,
	}))
}
