package glass

import "github.com/bwmarrin/discordgo"

// Style is the visual style of an action button.
type Style int

const (
	StylePrimary Style = iota
	StyleSecondary
	StyleSuccess
	StyleDanger
	StyleLink
)

func (s Style) discord() discordgo.ButtonStyle {
	switch s {
	case StyleSecondary:
		return discordgo.SecondaryButton
	case StyleSuccess:
		return discordgo.SuccessButton
	case StyleDanger:
		return discordgo.DangerButton
	case StyleLink:
		return discordgo.LinkButton
	default:
		return discordgo.PrimaryButton
	}
}

// Button builds a clickable control. For StyleLink the id is the external
// URL; for every other style it is the action id routed by the callback
// router. emoji may be empty.
func Button(id, label string, style Style, emoji string) discordgo.Button {
	b := discordgo.Button{
		Label: label,
		Style: style.discord(),
	}
	if style == StyleLink {
		b.URL = id
	} else {
		b.CustomID = id
	}
	if emoji != "" {
		b.Emoji = &discordgo.ComponentEmoji{Name: emoji}
	}
	return b
}

// Row groups buttons into one action row. The platform caps a row at five
// controls; callers keep to that, it is not enforced here.
func Row(buttons ...discordgo.Button) discordgo.ActionsRow {
	comps := make([]discordgo.MessageComponent, len(buttons))
	for i := range buttons {
		comps[i] = buttons[i]
	}
	return discordgo.ActionsRow{Components: comps}
}
