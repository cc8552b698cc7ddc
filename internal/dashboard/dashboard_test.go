package dashboard

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func testServer() *Server {
	return New(":0", func() Stats {
		return Stats{
			BotName: "glassbot",
			Version: "test",
			Guilds:  3,
			Users:   120,
			Uptime:  90 * time.Second,
			Sessions: []SessionStat{
				{GuildID: "g1", NowPlaying: "some song", QueueLen: 4},
			},
		}
	})
}

func TestIndexPage(t *testing.T) {
	s := testServer()

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	s.srv.Handler.ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"glassbot", "some song", "120"} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestUnknownPathIs404(t *testing.T) {
	s := testServer()

	req := httptest.NewRequest("GET", "/nope", nil)
	rec := httptest.NewRecorder()
	s.srv.Handler.ServeHTTP(rec, req)

	if rec.Code != 404 {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHealthz(t *testing.T) {
	s := testServer()

	req := httptest.NewRequest("GET", "/healthz", nil)
	rec := httptest.NewRecorder()
	s.srv.Handler.ServeHTTP(rec, req)

	if rec.Code != 200 || rec.Body.String() != "ok" {
		t.Errorf("healthz = %d %q", rec.Code, rec.Body.String())
	}
}
