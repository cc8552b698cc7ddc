package community

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/mlvsme/glassbot/internal/command"
	"github.com/mlvsme/glassbot/internal/glass"
)

func init() {
	command.MustRegister(&command.Command{
		Name:        "serverinfo",
		Description: "Show details about this server",
		Category:    "community",
		Usage:       "serverinfo",
		Run:         runServerInfo,
	})
}

func runServerInfo(ctx *command.Context) error {
	guild, err := ctx.Session.State.Guild(ctx.GuildID())
	if err != nil {
		guild, err = ctx.Session.Guild(ctx.GuildID())
		if err != nil {
			return err
		}
	}

	created, _ := discordgo.SnowflakeTimestamp(guild.ID)
	return ctx.Reply(ctx.App.Glass.Embed(glass.Options{
		Theme:     "default",
		Title:     "🏠 " + guild.Name,
		Thumbnail: guild.IconURL("256"),
		Fields: []glass.Field{
			{Name: "Owner", Value: "<@" + guild.OwnerID + ">", Inline: true},
			{Name: "Members", Value: fmt.Sprintf("%d", guild.MemberCount), Inline: true},
			{Name: "Channels", Value: fmt.Sprintf("%d", len(guild.Channels)), Inline: true},
			{Name: "Roles", Value: fmt.Sprintf("%d", len(guild.Roles)), Inline: true},
			{Name: "Boosts", Value: fmt.Sprintf("%d", guild.PremiumSubscriptionCount), Inline: true},
			{Name: "Created", Value: created.Format("Jan 2, 2006"), Inline: true},
		},
	}))
}
