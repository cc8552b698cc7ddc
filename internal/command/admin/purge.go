package admin

import (
	"fmt"
	"strconv"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/mlvsme/glassbot/internal/command"
	"github.com/mlvsme/glassbot/internal/moderation"
)

func init() {
	command.MustRegister(&command.Command{
		Name:        "purge",
		Description: "Bulk delete recent messages in this channel",
		Category:    "admin",
		Usage:       "purge <1-100>",
		Run:         runPurge,
	})
}

func runPurge(ctx *command.Context) error {
	mod := ctx.App.Moderation

	has, err := mod.ActorHas(ctx.GuildID(), ctx.ChannelID(), ctx.Author().ID, discordgo.PermissionManageMessages)
	if err != nil {
		return err
	}
	if !has {
		return ctx.Reply(ctx.App.Glass.Error("Permission Denied",
			"You need the **"+moderation.Name(discordgo.PermissionManageMessages)+"** permission to do that."))
	}
	has, err = mod.BotHas(ctx.GuildID(), ctx.ChannelID(), discordgo.PermissionManageMessages)
	if err != nil {
		return err
	}
	if !has {
		return ctx.Reply(ctx.App.Glass.Error("Missing Permission",
			"I need the **"+moderation.Name(discordgo.PermissionManageMessages)+"** permission to do that."))
	}

	if len(ctx.Args) == 0 {
		return ctx.Reply(ctx.App.Glass.Error("Invalid Amount",
			"Tell me how many messages to delete. Usage: `"+ctx.Prefix+"purge <1-100>`"))
	}
	amount, err := strconv.Atoi(ctx.Args[0])
	if err != nil || amount < 1 || amount > 100 {
		return ctx.Reply(ctx.App.Glass.Error("Invalid Amount",
			"Give me a number between **1** and **100**."))
	}

	// One extra covers the purge command message itself.
	deleted, err := mod.Purge(ctx.ChannelID(), amount+1)
	if err != nil {
		return err
	}
	reported := deleted - 1
	if reported < 0 {
		reported = 0
	}

	embed := ctx.App.Glass.Success("🧹 Channel Cleaned",
		fmt.Sprintf("Deleted **%d** message(s).", reported))
	if ctx.ReplyFunc != nil {
		return ctx.ReplyFunc(embed)
	}

	msg, err := ctx.Session.ChannelMessageSendEmbed(ctx.ChannelID(), embed)
	if err != nil {
		return err
	}
	// The confirmation cleans itself up.
	mod.DeleteAfter(ctx.ChannelID(), msg.ID, 5*time.Second)
	return nil
}
