// Package app carries the shared dependencies every handler needs. The
// context is built once in main and passed down explicitly, never stored in
// globals.
package app

import (
	"time"

	"github.com/mlvsme/glassbot/internal/config"
	"github.com/mlvsme/glassbot/internal/glass"
	"github.com/mlvsme/glassbot/internal/moderation"
	"github.com/mlvsme/glassbot/internal/music"
	"github.com/mlvsme/glassbot/internal/settings"
)

type Context struct {
	Config     *config.Config
	Settings   *settings.Store
	Moderation moderation.Service
	Music      *music.Manager
	Glass      *glass.Builder
	StartTime  time.Time
}

// Uptime returns how long the process has been running.
func (c *Context) Uptime() time.Duration {
	return time.Since(c.StartTime)
}
