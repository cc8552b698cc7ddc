// Package command defines the chat command contract and the registry the
// dispatcher routes through. Handlers live in subpackages grouped by
// category and register themselves at init time.
package command

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/mlvsme/glassbot/internal/app"
)

// HandlerFunc runs one invocation of a command.
type HandlerFunc func(ctx *Context) error

// Command describes a registered chat command.
type Command struct {
	Name        string
	Description string
	Category    string
	Usage       string
	Cooldown    time.Duration

	// Permission gates the invoking member; zero means everyone.
	Permission int64
	// BotPermission is what the bot itself needs in the channel.
	BotPermission int64

	Run HandlerFunc
}

// Context is handed to a command handler for a single message.
type Context struct {
	Ctx     context.Context
	App     *app.Context
	Session *discordgo.Session
	Event   *discordgo.MessageCreate
	Args    []string
	Prefix  string

	// ReplyFunc overrides how replies are delivered. Tests inject one to
	// capture output without a gateway connection.
	ReplyFunc func(embed *discordgo.MessageEmbed, rows ...discordgo.ActionsRow) error
}

// Reply sends an embed, with optional button rows, to the channel the
// command came from.
func (c *Context) Reply(embed *discordgo.MessageEmbed, rows ...discordgo.ActionsRow) error {
	if c.ReplyFunc != nil {
		return c.ReplyFunc(embed, rows...)
	}
	msg := &discordgo.MessageSend{Embeds: []*discordgo.MessageEmbed{embed}}
	for _, row := range rows {
		msg.Components = append(msg.Components, row)
	}
	_, err := c.Session.ChannelMessageSendComplex(c.Event.ChannelID, msg)
	return err
}

// GuildID returns the guild the message came from.
func (c *Context) GuildID() string { return c.Event.GuildID }

// ChannelID returns the channel the message came from.
func (c *Context) ChannelID() string { return c.Event.ChannelID }

// Author returns the invoking user.
func (c *Context) Author() *discordgo.User { return c.Event.Author }

// FirstMention returns the first mentioned user, or the user whose ID is the
// first argument. Commands like ban and kick accept either form.
func (c *Context) FirstMention() *discordgo.User {
	if len(c.Event.Mentions) > 0 {
		return c.Event.Mentions[0]
	}
	if len(c.Args) == 0 {
		return nil
	}
	id := strings.Trim(c.Args[0], "<@!>")
	if id == "" {
		return nil
	}
	member, err := c.Session.GuildMember(c.GuildID(), id)
	if err != nil {
		return nil
	}
	return member.User
}

// VoiceChannel returns the voice channel the author is connected to, or ""
// when they are not in voice.
func (c *Context) VoiceChannel() string {
	guild, err := c.Session.State.Guild(c.GuildID())
	if err != nil {
		return ""
	}
	for _, vs := range guild.VoiceStates {
		if vs.UserID == c.Author().ID {
			return vs.ChannelID
		}
	}
	return ""
}

// ArgsText joins the arguments back into the free-form remainder of the
// message.
func (c *Context) ArgsText() string {
	return strings.Join(c.Args, " ")
}
