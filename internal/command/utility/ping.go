package utility

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/mlvsme/glassbot/internal/command"
)

func init() {
	command.MustRegister(&command.Command{
		Name:        "ping",
		Description: "Check gateway and message latency",
		Category:    "utility",
		Usage:       "ping",
		Run:         runPing,
	})
}

// runPing measures two latencies: the gateway heartbeat, and the round trip
// of actually posting a message, shown by editing the first reply.
func runPing(ctx *command.Context) error {
	heartbeat := ctx.Session.HeartbeatLatency()

	if ctx.ReplyFunc != nil {
		return ctx.Reply(ctx.App.Glass.Success("🏓 Pong!",
			fmt.Sprintf("Gateway: **%d ms**", heartbeat.Milliseconds())))
	}

	start := time.Now()
	loading := ctx.App.Glass.Loading("🏓 Pinging...", 50)
	msg, err := ctx.Session.ChannelMessageSendEmbed(ctx.ChannelID(), loading)
	if err != nil {
		return err
	}
	roundTrip := time.Since(start)

	final := ctx.App.Glass.Success("🏓 Pong!", fmt.Sprintf(
		"Gateway: **%d ms**\nMessage: **%d ms**",
		heartbeat.Milliseconds(), roundTrip.Milliseconds()))
	_, err = ctx.Session.ChannelMessageEditComplex(&discordgo.MessageEdit{
		ID:      msg.ID,
		Channel: ctx.ChannelID(),
		Embeds:  &[]*discordgo.MessageEmbed{final},
	})
	return err
}
