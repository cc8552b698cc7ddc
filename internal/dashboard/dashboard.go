// Package dashboard serves a small read-only status page over HTTP: guild
// and user counts, uptime and the live music sessions.
package dashboard

import (
	"context"
	"html/template"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// SessionStat is one row of the player table.
type SessionStat struct {
	GuildID    string
	NowPlaying string
	QueueLen   int
}

// Stats is the page model, sampled fresh on every request.
type Stats struct {
	BotName  string
	Version  string
	Guilds   int
	Users    int
	Uptime   time.Duration
	Sessions []SessionStat
}

// Provider samples current stats. It is called on the request path, so it
// must be cheap and safe for concurrent use.
type Provider func() Stats

type Server struct {
	srv  *http.Server
	tmpl *template.Template
}

func New(addr string, provider Provider) *Server {
	s := &Server{
		tmpl: template.Must(template.New("index").Parse(indexHTML)),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := s.tmpl.Execute(w, provider()); err != nil {
			log.Error().Err(err).Msg("dashboard render failed")
		}
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.srv = &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return s
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.srv.Addr).Msg("dashboard listening")
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.srv.Shutdown(shutdownCtx)
}

const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.BotName}} · status</title>
<style>
body { font-family: system-ui, sans-serif; background: #1a1d29; color: #e3e5ea; max-width: 720px; margin: 2rem auto; padding: 0 1rem; }
.card { background: rgba(255,255,255,0.06); border: 1px solid rgba(255,255,255,0.12); border-radius: 12px; padding: 1rem 1.5rem; margin-bottom: 1rem; backdrop-filter: blur(8px); }
h1 { font-size: 1.4rem; } h2 { font-size: 1rem; color: #9aa0b0; }
table { width: 100%; border-collapse: collapse; }
td, th { text-align: left; padding: 0.3rem 0.5rem; border-bottom: 1px solid rgba(255,255,255,0.08); }
.stat { display: inline-block; margin-right: 2rem; }
.stat b { font-size: 1.3rem; display: block; }
</style>
</head>
<body>
<div class="card">
<h1>{{.BotName}} <small>{{.Version}}</small></h1>
<span class="stat"><b>{{.Guilds}}</b>servers</span>
<span class="stat"><b>{{.Users}}</b>users</span>
<span class="stat"><b>{{.Uptime}}</b>uptime</span>
</div>
<div class="card">
<h2>Active music sessions</h2>
{{if .Sessions}}
<table>
<tr><th>Guild</th><th>Now playing</th><th>Queued</th></tr>
{{range .Sessions}}<tr><td>{{.GuildID}}</td><td>{{.NowPlaying}}</td><td>{{.QueueLen}}</td></tr>
{{end}}
</table>
{{else}}<p>None right now.</p>{{end}}
</div>
</body>
</html>`
