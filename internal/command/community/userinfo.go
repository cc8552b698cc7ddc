// Package community holds the member-facing lookup commands.
package community

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/mlvsme/glassbot/internal/command"
	"github.com/mlvsme/glassbot/internal/glass"
)

func init() {
	command.MustRegister(&command.Command{
		Name:        "userinfo",
		Description: "Show details about a member",
		Category:    "community",
		Usage:       "userinfo [@user]",
		Run:         runUserInfo,
	})
}

func runUserInfo(ctx *command.Context) error {
	target := ctx.FirstMention()
	if target == nil {
		target = ctx.Author()
	}

	created, _ := discordgo.SnowflakeTimestamp(target.ID)
	fields := []glass.Field{
		{Name: "ID", Value: target.ID, Inline: true},
		{Name: "Created", Value: created.Format("Jan 2, 2006"), Inline: true},
	}

	if member, err := ctx.Session.GuildMember(ctx.GuildID(), target.ID); err == nil {
		if !member.JoinedAt.IsZero() {
			fields = append(fields, glass.Field{
				Name: "Joined", Value: member.JoinedAt.Format("Jan 2, 2006"), Inline: true,
			})
		}
		if len(member.Roles) > 0 {
			mentions := make([]string, 0, len(member.Roles))
			for _, r := range member.Roles {
				mentions = append(mentions, "<@&"+r+">")
			}
			fields = append(fields, glass.Field{
				Name: fmt.Sprintf("Roles (%d)", len(mentions)), Value: strings.Join(mentions, " "),
			})
		}
	}

	return ctx.Reply(ctx.App.Glass.Embed(glass.Options{
		Theme:     "default",
		Title:     "👤 " + target.Username,
		Thumbnail: target.AvatarURL("256"),
		Fields:    fields,
	}))
}
