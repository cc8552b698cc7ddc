// Package glass builds the bot's display payloads: themed embeds and the
// button rows attached to them.
package glass

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/mlvsme/glassbot/internal/theme"
)

// Discord display limits. Validation against them is advisory only: we warn
// and let the platform clip, never truncate or refuse.
const (
	maxTitleLen       = 256
	maxDescriptionLen = 4096
	maxFields         = 25
)

type Field struct {
	Name   string
	Value  string
	Inline bool
}

// Options describes one embed. Zero values mean "take it from the theme"
// (Color, Title) or "omit" (everything else).
type Options struct {
	Theme       string
	Title       string
	Description string
	Color       int
	URL         string
	Thumbnail   string
	Image       string
	Fields      []Field
	FooterText  string
	FooterIcon  string
	NoTimestamp bool
}

// Builder renders Options into discordgo embeds, stamping the bot identity
// into the default footer. Identity is set once the gateway reports who we
// are; until then the footer carries only text.
type Builder struct {
	mu       sync.RWMutex
	name     string
	iconURL  string
	footer   string
}

func NewBuilder(botName string) *Builder {
	return &Builder{
		name:   botName,
		footer: fmt.Sprintf("%s • Powered by discordgo", botName),
	}
}

// SetIdentity updates the footer identity, typically from the ready event.
func (b *Builder) SetIdentity(name, iconURL string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.name = name
	b.iconURL = iconURL
	b.footer = fmt.Sprintf("%s • Powered by discordgo", name)
}

// Embed builds one embed. The theme resolves by name (unknown names fall
// back to the default theme); explicit Color and Title win over the theme's.
func (b *Builder) Embed(o Options) *discordgo.MessageEmbed {
	t := theme.Get(o.Theme)

	e := &discordgo.MessageEmbed{
		Title:       o.Title,
		Description: o.Description,
		Color:       o.Color,
		URL:         o.URL,
	}
	if e.Title == "" {
		e.Title = t.Title
	}
	if e.Color == 0 {
		e.Color = t.Color
	}
	if o.Thumbnail != "" {
		e.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: o.Thumbnail}
	}
	if o.Image != "" {
		e.Image = &discordgo.MessageEmbedImage{URL: o.Image}
	}
	for _, f := range o.Fields {
		if f.Name == "" || f.Value == "" {
			continue
		}
		e.Fields = append(e.Fields, &discordgo.MessageEmbedField{
			Name:   f.Name,
			Value:  f.Value,
			Inline: f.Inline,
		})
	}

	b.mu.RLock()
	footerText, footerIcon := b.footer, b.iconURL
	b.mu.RUnlock()
	if o.FooterText != "" {
		footerText = o.FooterText
	}
	if o.FooterIcon != "" {
		footerIcon = o.FooterIcon
	}
	e.Footer = &discordgo.MessageEmbedFooter{Text: footerText, IconURL: footerIcon}

	if !o.NoTimestamp {
		e.Timestamp = time.Now().Format(time.RFC3339)
	}

	validate(e)
	return e
}

// Success, Error, Warning and Music are the themed shorthands used by most
// handlers.
func (b *Builder) Success(title, description string) *discordgo.MessageEmbed {
	return b.Embed(Options{Theme: "success", Title: title, Description: description})
}

func (b *Builder) Error(title, description string) *discordgo.MessageEmbed {
	return b.Embed(Options{Theme: "error", Title: title, Description: description})
}

func (b *Builder) Warning(title, description string) *discordgo.MessageEmbed {
	return b.Embed(Options{Theme: "warning", Title: title, Description: description})
}

func (b *Builder) Music(title, description string) *discordgo.MessageEmbed {
	return b.Embed(Options{Theme: "music", Title: title, Description: description})
}

// Loading renders a progress-bar embed for long operations. progress is
// clamped to [0,100].
func (b *Builder) Loading(title string, progress int) *discordgo.MessageEmbed {
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	const width = 10
	filled := progress * width / 100
	bar := strings.Repeat("▓", filled) + strings.Repeat("░", width-filled)
	return b.Embed(Options{
		Theme:       "loading",
		Title:       title,
		Description: fmt.Sprintf("```\n[%s] %d%%\n```", bar, progress),
		FooterText:  "Please wait...",
	})
}

// validate logs advisory warnings when an embed exceeds known platform
// display limits. It never modifies the embed.
func validate(e *discordgo.MessageEmbed) {
	if n := len(e.Title); n > maxTitleLen {
		log.Warn().Int("len", n).Str("title", e.Title[:40]).Msg("embed title exceeds display limit")
	}
	if n := len(e.Description); n > maxDescriptionLen {
		log.Warn().Int("len", n).Msg("embed description exceeds display limit")
	}
	if n := len(e.Fields); n > maxFields {
		log.Warn().Int("fields", n).Msg("embed has more fields than the platform displays")
	}
}
