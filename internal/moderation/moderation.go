// Package moderation is the boundary to the chat platform's moderation
// surface: capability queries, role-hierarchy ranks, and the destructive
// member/message operations. Handlers consume the Service interface so the
// gating logic can be tested without a live session.
package moderation

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// CapabilityName maps the capabilities this bot gates on to the names shown
// in permission-denied responses.
var CapabilityName = map[int64]string{
	discordgo.PermissionBanMembers:     "Ban Members",
	discordgo.PermissionKickMembers:    "Kick Members",
	discordgo.PermissionManageMessages: "Manage Messages",
	discordgo.PermissionManageServer:   "Manage Server",
	discordgo.PermissionVoiceConnect:   "Connect",
	discordgo.PermissionVoiceSpeak:     "Speak",
}

// Name renders a capability mask for user-facing messages.
func Name(perm int64) string {
	if n, ok := CapabilityName[perm]; ok {
		return n
	}
	return fmt.Sprintf("0x%x", perm)
}

// Service is the moderation surface consumed by command handlers.
type Service interface {
	// ActorHas reports whether the member holds every capability bit in perm
	// within the channel's scope.
	ActorHas(guildID, channelID, userID string, perm int64) (bool, error)
	// BotHas is ActorHas for the bot's own user.
	BotHas(guildID, channelID string, perm int64) (bool, error)
	// Rank returns the member's highest role position; guild owners rank
	// above any role.
	Rank(guildID, userID string) (int, error)

	Ban(guildID, userID, reason string) error
	Kick(guildID, userID, reason string) error
	// Purge bulk-deletes up to count recent messages from the channel and
	// returns how many were actually removed.
	Purge(channelID string, count int) (int, error)

	// Notify best-effort DMs a user. Callers are expected to ignore errors.
	Notify(userID string, embed *discordgo.MessageEmbed) error
	// DeleteAfter removes a message after the delay, ignoring failures.
	DeleteAfter(channelID, messageID string, delay time.Duration)
}

// Discord implements Service on a discordgo session.
type Discord struct {
	s *discordgo.Session
}

func New(s *discordgo.Session) *Discord {
	return &Discord{s: s}
}

func (d *Discord) ActorHas(guildID, channelID, userID string, perm int64) (bool, error) {
	perms, err := d.s.UserChannelPermissions(userID, channelID)
	if err != nil {
		return false, fmt.Errorf("member permissions: %w", err)
	}
	if perms&discordgo.PermissionAdministrator != 0 {
		return true, nil
	}
	return perms&perm == perm, nil
}

func (d *Discord) BotHas(guildID, channelID string, perm int64) (bool, error) {
	bot := d.s.State.User
	if bot == nil {
		u, err := d.s.User("@me")
		if err != nil {
			return false, fmt.Errorf("bot user: %w", err)
		}
		bot = u
	}
	return d.ActorHas(guildID, channelID, bot.ID, perm)
}

func (d *Discord) Rank(guildID, userID string) (int, error) {
	guild, err := d.s.State.Guild(guildID)
	if err != nil {
		guild, err = d.s.Guild(guildID)
		if err != nil {
			return 0, fmt.Errorf("guild %s: %w", guildID, err)
		}
	}
	if guild.OwnerID == userID {
		// Owners outrank every role.
		return int(^uint(0) >> 1), nil
	}

	member, err := d.s.State.Member(guildID, userID)
	if err != nil {
		member, err = d.s.GuildMember(guildID, userID)
		if err != nil {
			return 0, fmt.Errorf("member %s: %w", userID, err)
		}
	}

	highest := 0
	for _, roleID := range member.Roles {
		for _, role := range guild.Roles {
			if role.ID == roleID && role.Position > highest {
				highest = role.Position
			}
		}
	}
	return highest, nil
}

func (d *Discord) Ban(guildID, userID, reason string) error {
	// Drop the target's last day of messages along with the ban.
	if err := d.s.GuildBanCreateWithReason(guildID, userID, reason, 1); err != nil {
		return fmt.Errorf("ban %s: %w", userID, err)
	}
	return nil
}

func (d *Discord) Kick(guildID, userID, reason string) error {
	if err := d.s.GuildMemberDeleteWithReason(guildID, userID, reason); err != nil {
		return fmt.Errorf("kick %s: %w", userID, err)
	}
	return nil
}

func (d *Discord) Purge(channelID string, count int) (int, error) {
	msgs, err := d.s.ChannelMessages(channelID, count, "", "", "")
	if err != nil {
		return 0, fmt.Errorf("list messages: %w", err)
	}
	ids := make([]string, 0, len(msgs))
	for _, m := range msgs {
		ids = append(ids, m.ID)
	}
	if len(ids) == 0 {
		return 0, nil
	}
	if err := d.s.ChannelMessagesBulkDelete(channelID, ids); err != nil {
		return 0, fmt.Errorf("bulk delete: %w", err)
	}
	return len(ids), nil
}

func (d *Discord) Notify(userID string, embed *discordgo.MessageEmbed) error {
	ch, err := d.s.UserChannelCreate(userID)
	if err != nil {
		return fmt.Errorf("open DM: %w", err)
	}
	if _, err := d.s.ChannelMessageSendEmbed(ch.ID, embed); err != nil {
		return fmt.Errorf("send DM: %w", err)
	}
	return nil
}

func (d *Discord) DeleteAfter(channelID, messageID string, delay time.Duration) {
	time.AfterFunc(delay, func() {
		if err := d.s.ChannelMessageDelete(channelID, messageID); err != nil {
			log.Debug().Err(err).Str("channel", channelID).Msg("courtesy delete failed")
		}
	})
}
