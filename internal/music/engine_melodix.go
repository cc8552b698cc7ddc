package music

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/keshon/melodix"
	"golang.org/x/time/rate"

	"github.com/mlvsme/glassbot/pkg/retry"
)

// melodixEngine adapts a melodix player to the Engine interface. It is the
// only place the melodix API is touched.
type melodixEngine struct {
	player   *melodix.Player
	resolver *melodix.SourceResolver
	limiter  *rate.Limiter
	signal   func(Signal)
}

// NewMelodixFactory returns an EngineFactory backed by melodix players on the
// given gateway session. Resolution calls share one rate limiter so playlist
// bursts do not hammer upstream sources.
func NewMelodixFactory(dg *discordgo.Session) EngineFactory {
	limiter := rate.NewLimiter(rate.Every(500*time.Millisecond), 3)
	return func(guildID string, signal func(Signal)) Engine {
		e := &melodixEngine{
			player:   melodix.NewPlayer(dg, guildID),
			resolver: melodix.NewSourceResolver(),
			limiter:  limiter,
			signal:   signal,
		}
		go e.watch()
		return e
	}
}

func (e *melodixEngine) Resolve(query string) ([]Track, error) {
	var infos []melodix.TrackInfo
	err := retry.Do(context.Background(), retry.DefaultConfig(), e.limiter, func() error {
		var rerr error
		infos, rerr = e.resolver.Resolve(query, "", "")
		return rerr
	})
	if err != nil {
		return nil, err
	}
	tracks := make([]Track, len(infos))
	for i, info := range infos {
		tracks[i] = Track{
			Title: info.Title,
			URL:   info.URL,
		}
	}
	return tracks, nil
}

func (e *melodixEngine) Start(voiceChannelID string, t Track) error {
	if err := e.player.Enqueue(t.URL, "", ""); err != nil {
		return err
	}
	return e.player.PlayNext(voiceChannelID)
}

func (e *melodixEngine) Resume() error {
	return e.player.Resume()
}

func (e *melodixEngine) Stop(leaveVoice bool) error {
	return e.player.Stop(leaveVoice)
}

func (e *melodixEngine) Playing() bool {
	return e.player.IsPlaying()
}

// watch translates player status updates into end-of-track signals.
func (e *melodixEngine) watch() {
	for status := range e.player.PlayerStatus {
		switch status {
		case melodix.StatusStopped:
			e.signal(Signal{})
		case melodix.StatusError:
			e.signal(Signal{Err: errors.New("playback failed")})
		}
	}
}
