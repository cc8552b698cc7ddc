package music

import (
	"fmt"

	"github.com/mlvsme/glassbot/internal/command"
	"github.com/mlvsme/glassbot/internal/glass"
	musicsvc "github.com/mlvsme/glassbot/internal/music"
)

func init() {
	command.MustRegister(&command.Command{
		Name:        "play",
		Description: "Play a track or playlist, or queue it if something is playing",
		Category:    "music",
		Usage:       "play <url or search>",
		Run:         runPlay,
	})
}

func runPlay(ctx *command.Context) error {
	if len(ctx.Args) == 0 {
		return ctx.Reply(ctx.App.Glass.Error("Nothing to Play",
			"Give me a link or something to search for. Usage: `"+ctx.Prefix+"play <url or search>`"))
	}
	vc, ok := requireVoice(ctx)
	if !ok {
		return nil
	}

	// New sessions start at the guild's configured default volume.
	volume := 50
	if st, err := ctx.App.Settings.Load(ctx.GuildID()); err == nil {
		volume = st.MusicVolume
	}
	session := ctx.App.Music.Open(ctx.GuildID(), ctx.ChannelID(), volume)
	tracks, started, err := session.Enqueue(vc, ctx.ArgsText(), ctx.Author().Username)
	if err != nil {
		if musicsvc.IsUnsupportedSource(err) {
			return ctx.Reply(ctx.App.Glass.Error("Unsupported Source",
				"I can't play that link. Try a direct track URL or a search term."))
		}
		return ctx.Reply(ctx.App.Glass.Error("Resolve Failed",
			"Couldn't find anything for that. Check the link and try again."))
	}

	// A freshly started track announces itself through the playback events.
	if started && len(tracks) == 1 {
		return nil
	}
	desc := "Queued " + trackLine(tracks[0])
	if len(tracks) > 1 {
		desc = fmt.Sprintf("Queued **%d** tracks from the playlist", len(tracks))
	}
	return ctx.Reply(ctx.App.Glass.Embed(glass.Options{
		Theme:       "music",
		Title:       "🎶 Added to Queue",
		Description: desc,
		Fields: []glass.Field{
			{Name: "Position in queue", Value: fmt.Sprintf("%d", len(session.Queue())), Inline: true},
		},
	}))
}
