// Package fun is exactly what it says.
package fun

import (
	"math/rand"
	"time"

	"github.com/mlvsme/glassbot/internal/command"
	"github.com/mlvsme/glassbot/internal/glass"
)

var eightBallAnswers = []string{
	"It is certain.",
	"Without a doubt.",
	"Yes, definitely.",
	"Most likely.",
	"Signs point to yes.",
	"Reply hazy, try again.",
	"Ask again later.",
	"Better not tell you now.",
	"Don't count on it.",
	"My reply is no.",
	"My sources say no.",
	"Outlook not so good.",
	"Very doubtful.",
}

func init() {
	command.MustRegister(&command.Command{
		Name:        "8ball",
		Description: "Ask the magic 8-ball a question",
		Category:    "fun",
		Usage:       "8ball <question>",
		Cooldown:    3 * time.Second,
		Run:         runEightBall,
	})
}

func runEightBall(ctx *command.Context) error {
	if len(ctx.Args) == 0 {
		return ctx.Reply(ctx.App.Glass.Warning("No Question", "The 8-ball only answers questions."))
	}
	answer := eightBallAnswers[rand.Intn(len(eightBallAnswers))]
	return ctx.Reply(ctx.App.Glass.Embed(glass.Options{
		Theme: "gaming",
		Title: "🎱 Magic 8-Ball",
		Fields: []glass.Field{
			{Name: "Question", Value: ctx.ArgsText()},
			{Name: "Answer", Value: answer},
		},
	}))
}
