// Package theme holds the static color/title bundles behind the bot's
// "glass" look. Themes are compiled in and not mutable at runtime.
package theme

// Theme is a named constant bundle: an embed color and a default title used
// when the caller does not supply one.
type Theme struct {
	Name  string
	Color int
	Title string
}

const Default = "default"

var themes = map[string]Theme{
	"default": {Name: "default", Color: 0x7289DA, Title: "ℹ️ Information"},
	"success": {Name: "success", Color: 0x00FF87, Title: "✅ Success"},
	"error":   {Name: "error", Color: 0xFF6B6B, Title: "❌ Error"},
	"warning": {Name: "warning", Color: 0xFFA500, Title: "⚠️ Warning"},

	"music":   {Name: "music", Color: 0xC44EB5, Title: "🎵 Music"},
	"gaming":  {Name: "gaming", Color: 0x00F5FF, Title: "🎮 Gaming"},
	"premium": {Name: "premium", Color: 0xFFD700, Title: "✨ Premium"},
	"loading": {Name: "loading", Color: 0xFFA500, Title: "🔄 Loading"},
	"guide":   {Name: "guide", Color: 0x3A9ACD, Title: "📚 Guide"},
	"system":  {Name: "system", Color: 0x008CFF, Title: "🤖 System Message"},
	"alert":   {Name: "alert", Color: 0xE83E8C, Title: "🔔 Alert"},
	"event":   {Name: "event", Color: 0x7D00B3, Title: "🎉 Event"},
}

// Get resolves a theme by name, falling back to the default theme when the
// name is unknown.
func Get(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[Default]
}

// Known reports whether name is a registered theme.
func Known(name string) bool {
	_, ok := themes[name]
	return ok
}

// Names returns all registered theme names.
func Names() []string {
	out := make([]string, 0, len(themes))
	for n := range themes {
		out = append(out, n)
	}
	return out
}
