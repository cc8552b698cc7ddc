package fun

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/mlvsme/glassbot/internal/command"
	"github.com/mlvsme/glassbot/internal/glass"
)

func init() {
	command.MustRegister(&command.Command{
		Name:        "roll",
		Description: "Roll a die, up to a custom number of sides",
		Category:    "fun",
		Usage:       "roll [sides]",
		Cooldown:    2 * time.Second,
		Run:         runRoll,
	})

	command.MustRegister(&command.Command{
		Name:        "coinflip",
		Description: "Flip a coin",
		Category:    "fun",
		Usage:       "coinflip",
		Cooldown:    2 * time.Second,
		Run:         runCoinflip,
	})
}

func runRoll(ctx *command.Context) error {
	sides := 6
	if len(ctx.Args) > 0 {
		n, err := strconv.Atoi(ctx.Args[0])
		if err != nil || n < 2 || n > 1000 {
			return ctx.Reply(ctx.App.Glass.Error("Invalid Die", "Sides must be between 2 and 1000."))
		}
		sides = n
	}
	return ctx.Reply(ctx.App.Glass.Embed(glass.Options{
		Theme:       "gaming",
		Title:       "🎲 Roll",
		Description: fmt.Sprintf("You rolled **%d** (d%d).", rand.Intn(sides)+1, sides),
	}))
}

func runCoinflip(ctx *command.Context) error {
	side := "Heads"
	if rand.Intn(2) == 1 {
		side = "Tails"
	}
	return ctx.Reply(ctx.App.Glass.Embed(glass.Options{
		Theme:       "gaming",
		Title:       "🪙 Coinflip",
		Description: "**" + side + "**!",
	}))
}
