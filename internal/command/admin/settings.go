package admin

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/mlvsme/glassbot/internal/command"
	"github.com/mlvsme/glassbot/internal/glass"
	"github.com/mlvsme/glassbot/internal/settings"
)

var settingsCategories = []string{"general", "moderation", "music", "economy", "custom"}

func init() {
	command.MustRegister(&command.Command{
		Name:        "settings",
		Description: "View and change this server's configuration",
		Category:    "admin",
		Usage:       "settings [category] | settings set <key> <value> | settings custom add|remove <name> [response]",
		Permission:  discordgo.PermissionManageServer,
		Run:         runSettings,
	})
}

func runSettings(ctx *command.Context) error {
	st, err := ctx.App.Settings.Load(ctx.GuildID())
	if err != nil {
		return err
	}

	if len(ctx.Args) == 0 {
		return ctx.Reply(overviewEmbed(ctx, st))
	}

	switch strings.ToLower(ctx.Args[0]) {
	case "set":
		return runSettingsSet(ctx, st)
	case "custom":
		return runSettingsCustom(ctx, st)
	case "general", "moderation", "music", "economy":
		return ctx.Reply(categoryEmbed(ctx, st, strings.ToLower(ctx.Args[0])))
	default:
		return ctx.Reply(ctx.App.Glass.Error("Unknown Category",
			"Pick one of: `"+strings.Join(settingsCategories, "` `")+"`"))
	}
}

func overviewEmbed(ctx *command.Context, st *settings.GuildSettings) *discordgo.MessageEmbed {
	return ctx.App.Glass.Embed(glass.Options{
		Theme:       "system",
		Title:       "⚙️ Server Settings",
		Description: "Use `" + ctx.Prefix + "settings <category>` for details and `" + ctx.Prefix + "settings set <key> <value>` to change a value.",
		Fields: []glass.Field{
			{Name: "Prefix", Value: "`" + st.Prefix + "`", Inline: true},
			{Name: "Categories", Value: strings.Join(settingsCategories, ", ")},
		},
	})
}

func categoryEmbed(ctx *command.Context, st *settings.GuildSettings, category string) *discordgo.MessageEmbed {
	channel := func(id string) string {
		if id == "" {
			return "not set"
		}
		return "<#" + id + ">"
	}
	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}

	var fields []glass.Field
	switch category {
	case "general":
		fields = []glass.Field{
			{Name: "Prefix", Value: "`" + st.Prefix + "`", Inline: true},
			{Name: "Welcome Channel", Value: channel(st.WelcomeChannel), Inline: true},
			{Name: "Auto Role", Value: valueOr(st.AutoRole, "not set"), Inline: true},
			{Name: "Welcome Message", Value: st.WelcomeMessage},
			{Name: "Leave Message", Value: st.LeaveMessage},
		}
	case "moderation":
		fields = []glass.Field{
			{Name: "Mod Log Channel", Value: channel(st.ModLogChannel), Inline: true},
			{Name: "Anti Spam", Value: onOff(st.AntiSpam), Inline: true},
			{Name: "Slow Mode", Value: slowMode(st.SlowMode), Inline: true},
			{Name: "Auto Mod", Value: onOff(st.AutoMod.Enabled), Inline: true},
		}
	case "music":
		fields = []glass.Field{
			{Name: "Default Volume", Value: fmt.Sprintf("%d%%", st.MusicVolume), Inline: true},
			{Name: "Music Channel", Value: channel(st.MusicChannel), Inline: true},
			{Name: "DJ Role", Value: valueOr(st.Roles.DJRole, "not set"), Inline: true},
		}
	case "economy":
		fields = []glass.Field{
			{Name: "Economy System", Value: onOff(st.EconomySystem), Inline: true},
			{Name: "Level System", Value: onOff(st.LevelSystem), Inline: true},
		}
	}
	return ctx.App.Glass.Embed(glass.Options{
		Theme:  "system",
		Title:  "⚙️ Settings: " + strings.ToUpper(category[:1]) + category[1:],
		Fields: fields,
	})
}

func runSettingsSet(ctx *command.Context, st *settings.GuildSettings) error {
	if len(ctx.Args) < 3 {
		return ctx.Reply(ctx.App.Glass.Error("Missing Value",
			"Usage: `"+ctx.Prefix+"settings set <key> <value>`"))
	}
	key := strings.ToLower(ctx.Args[1])
	value := strings.Join(ctx.Args[2:], " ")

	switch key {
	case "prefix":
		if len(value) > 5 {
			return ctx.Reply(ctx.App.Glass.Error("Invalid Value", "Prefixes are at most 5 characters."))
		}
		st.Prefix = value
	case "welcome_channel":
		st.WelcomeChannel = strings.Trim(value, "<#>")
	case "welcome_message":
		st.WelcomeMessage = value
	case "leave_message":
		st.LeaveMessage = value
	case "auto_role":
		st.AutoRole = strings.Trim(value, "<@&>")
	case "mod_log_channel":
		st.ModLogChannel = strings.Trim(value, "<#>")
	case "music_volume":
		v, err := strconv.Atoi(value)
		if err != nil || v < 0 || v > 100 {
			return ctx.Reply(ctx.App.Glass.Error("Invalid Value", "Volume is a number from 0 to 100."))
		}
		st.MusicVolume = v
	default:
		return ctx.Reply(ctx.App.Glass.Error("Unknown Key",
			"Settable keys: `prefix` `welcome_channel` `welcome_message` `leave_message` `auto_role` `mod_log_channel` `music_volume`"))
	}

	if err := ctx.App.Settings.Save(ctx.GuildID(), st); err != nil {
		return err
	}
	return ctx.Reply(ctx.App.Glass.Success("Setting Saved", "`"+key+"` is now `"+value+"`."))
}

func runSettingsCustom(ctx *command.Context, st *settings.GuildSettings) error {
	if len(ctx.Args) < 3 {
		if len(st.CustomCommands) == 0 {
			return ctx.Reply(ctx.App.Glass.Embed(glass.Options{
				Theme:       "system",
				Title:       "⚙️ Custom Commands",
				Description: "None yet. Add one with `" + ctx.Prefix + "settings custom add <name> <response>`.",
			}))
		}
		names := make([]string, 0, len(st.CustomCommands))
		for name := range st.CustomCommands {
			names = append(names, "`"+name+"`")
		}
		return ctx.Reply(ctx.App.Glass.Embed(glass.Options{
			Theme:       "system",
			Title:       "⚙️ Custom Commands",
			Description: strings.Join(names, " "),
		}))
	}

	name := strings.ToLower(ctx.Args[2])
	switch strings.ToLower(ctx.Args[1]) {
	case "add":
		if len(ctx.Args) < 4 {
			return ctx.Reply(ctx.App.Glass.Error("Missing Response",
				"Usage: `"+ctx.Prefix+"settings custom add <name> <response>`"))
		}
		if _, taken := command.Default.Lookup(name); taken {
			return ctx.Reply(ctx.App.Glass.Error("Name Taken", "`"+name+"` is a built-in command."))
		}
		if st.CustomCommands == nil {
			st.CustomCommands = make(map[string]string)
		}
		st.CustomCommands[name] = strings.Join(ctx.Args[3:], " ")
	case "remove":
		if _, ok := st.CustomCommands[name]; !ok {
			return ctx.Reply(ctx.App.Glass.Error("Not Found", "No custom command called `"+name+"`."))
		}
		delete(st.CustomCommands, name)
	default:
		return ctx.Reply(ctx.App.Glass.Error("Unknown Action", "Use `add` or `remove`."))
	}

	if err := ctx.App.Settings.Save(ctx.GuildID(), st); err != nil {
		return err
	}
	return ctx.Reply(ctx.App.Glass.Success("Custom Commands Updated", "Saved changes to `"+name+"`."))
}

func slowMode(seconds int) string {
	if seconds <= 0 {
		return "off"
	}
	return fmt.Sprintf("%ds", seconds)
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
