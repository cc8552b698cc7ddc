package command

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// CooldownGate throttles command use per guild, user and command. Each
// combination gets its own limiter created on first sight.
type CooldownGate struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func NewCooldownGate() *CooldownGate {
	return &CooldownGate{limiters: make(map[string]*rate.Limiter)}
}

// Allow reports whether the user may run the command now. A zero cooldown
// always passes.
func (g *CooldownGate) Allow(guildID, userID, name string, cooldown time.Duration) bool {
	if cooldown <= 0 {
		return true
	}
	key := guildID + ":" + userID + ":" + name

	g.mu.Lock()
	lim, ok := g.limiters[key]
	if !ok {
		lim = rate.NewLimiter(rate.Every(cooldown), 1)
		g.limiters[key] = lim
	}
	g.mu.Unlock()

	return lim.Allow()
}
