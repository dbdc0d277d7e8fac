package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pibulus/cosmic-horoscope-sub001/internal/app/output"
	"github.com/pibulus/cosmic-horoscope-sub001/internal/config"
	"github.com/pibulus/cosmic-horoscope-sub001/internal/glyph"
	"github.com/pibulus/cosmic-horoscope-sub001/internal/version"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	s := New(glyph.NewLibrary(), config.DefaultSettings())
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s error: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("ReadAll() error: %v", err)
	}
	return resp, body
}

func TestRenderEndpoint(t *testing.T) {
	_, ts := newTestServer(t)

	resp, body := get(t, ts.URL+"/api/render?text=Leo&font=plain&effect=fire&border=ascii")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body %s", resp.StatusCode, body)
	}
	if got := resp.Header.Get("Server"); got != version.ServerHeader() {
		t.Fatalf("Server header = %q", got)
	}
	var doc output.JSONResult
	if err := json.Unmarshal(body, &doc); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if doc.ASCII != "+-----+\n| Leo |\n+-----+" {
		t.Fatalf("unexpected ascii: %q", doc.ASCII)
	}
	if doc.Effect != "fire" || !strings.Contains(doc.HTML, "hsl(60, 100%, 50%)") {
		t.Fatalf("unexpected result: %+v", doc)
	}
}

func TestRenderEndpointErrors(t *testing.T) {
	_, ts := newTestServer(t)

	for _, q := range []string{
		"",
		"?text=Leo&effect=sparkle&strict=true",
		"?text=Leo&effect=none&color=zz",
	} {
		resp, body := get(t, ts.URL+"/api/render"+q)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("%q: status = %d, want 400", q, resp.StatusCode)
		}
		var doc map[string]string
		if err := json.Unmarshal(body, &doc); err != nil || doc["error"] == "" {
			t.Fatalf("%q: expected error body, got %s", q, body)
		}
	}

	resp, err := http.Post(ts.URL+"/api/render", "text/plain", strings.NewReader("Leo"))
	if err != nil {
		t.Fatalf("POST error: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("POST status = %d, want 405", resp.StatusCode)
	}
}

func TestListEndpoints(t *testing.T) {
	_, ts := newTestServer(t)

	tests := map[string]string{
		"/api/effects": "cyberpunk",
		"/api/fonts":   "block",
		"/api/borders": "double",
	}
	for path, want := range tests {
		resp, body := get(t, ts.URL+path)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("%s: status = %d", path, resp.StatusCode)
		}
		var names []string
		if err := json.Unmarshal(body, &names); err != nil {
			t.Fatalf("%s: json.Unmarshal() error: %v", path, err)
		}
		found := false
		for _, n := range names {
			if n == want {
				found = true
			}
		}
		if !found {
			t.Fatalf("%s: %q not in %v", path, want, names)
		}
	}
}

func TestIndexPage(t *testing.T) {
	_, ts := newTestServer(t)

	resp, body := get(t, ts.URL+"/?effect=ocean")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html") {
		t.Fatalf("Content-Type = %q", resp.Header.Get("Content-Type"))
	}
	page := string(body)
	if !strings.Contains(page, `<option value="ocean" selected>`) {
		t.Fatalf("selected effect missing from page")
	}
	if !strings.Contains(page, "<span style=") {
		t.Fatalf("colorized art missing from page")
	}

	resp, _ = get(t, ts.URL+"/missing")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown path status = %d, want 404", resp.StatusCode)
	}
}

func TestMetricsAndSettingsSwap(t *testing.T) {
	s, ts := newTestServer(t)

	get(t, ts.URL+"/healthz")
	get(t, ts.URL+"/api/render")
	requests, errs, _ := s.Metrics().Snapshot()
	if requests != 2 || errs != 1 {
		t.Fatalf("Snapshot() = %d requests, %d errors", requests, errs)
	}

	settings := config.DefaultSettings()
	settings.DefaultEffect = "matrix"
	s.SetSettings(settings)

	_, body := get(t, ts.URL+"/api/render?text=Leo&font=plain")
	var doc output.JSONResult
	if err := json.Unmarshal(body, &doc); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if doc.Effect != "matrix" {
		t.Fatalf("settings swap not applied, effect = %s", doc.Effect)
	}
}

func TestServeStopsOnCancel(t *testing.T) {
	s := New(glyph.NewLibrary(), config.DefaultSettings())
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen() error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, body := get(t, "http://"+ln.Addr().String()+"/healthz")
	if resp.StatusCode != http.StatusOK || string(body) != "ok" {
		t.Fatalf("healthz = %d %q", resp.StatusCode, body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Serve() error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Serve() did not return after cancel")
	}
}
