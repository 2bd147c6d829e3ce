package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"decompound/internal/platform/config"
	perr "decompound/internal/platform/errors"
	pnet "decompound/internal/platform/net"
	phttp "decompound/internal/platform/net/http"
	"decompound/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func newServer(t *testing.T) *phttp.Server {
	t.Helper()
	return phttp.NewServer(config.New().Prefix("TEST_API_"))
}

func decode(t *testing.T, body io.Reader) phttp.Envelope {
	t.Helper()
	var env phttp.Envelope
	if err := json.NewDecoder(body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return env
}

func TestNewServer_DefaultsAndEnv(t *testing.T) {
	if got := newServer(t).Addr(); got != ":8080" {
		t.Fatalf("default addr = %q", got)
	}
	t.Setenv("TEST_API_PORT", "9123")
	if got := newServer(t).Addr(); got != ":9123" {
		t.Fatalf("port addr = %q", got)
	}
	t.Setenv("TEST_API_ADDR", "127.0.0.1:9999")
	if got := newServer(t).Addr(); got != "127.0.0.1:9999" {
		t.Fatalf("addr must win over port, got %q", got)
	}

	t.Setenv("TEST_API_ADDR", "")
	t.Setenv("TEST_API_PORT", "70000")
	testkit.MustPanic(t, func() { _ = newServer(t) })
}

func TestRouter_GroupRouteUse(t *testing.T) {
	optCalled := false
	srv := phttp.NewServer(config.New(), func(*chi.Mux) { optCalled = true })
	if !optCalled {
		t.Fatalf("expected NewServer option to be called")
	}
	r := srv.Router()

	// middleware must precede routes in chi
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("X-MW", "yes")
			next.ServeHTTP(w, req)
		})
	})
	r.Group(func(g phttp.Router) {
		g.Get("/group/ping", func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, "pong") })
	})
	r.Route("/v1", func(v phttp.Router) {
		v.Post("/echo", func(w http.ResponseWriter, req *http.Request) {
			b, _ := io.ReadAll(req.Body)
			_, _ = w.Write(b)
		})
		v.Route("/nested", func(n phttp.Router) {
			n.Get("/x", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusAccepted) })
		})
	})
	r.Handle("/raw", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) }))

	cases := []struct {
		method, path, body string
		status             int
		want               string
	}{
		{"GET", "/group/ping", "", http.StatusOK, "pong"},
		{"POST", "/v1/echo", "Fußball", http.StatusOK, "Fußball"},
		{"GET", "/v1/nested/x", "", http.StatusAccepted, ""},
		{"GET", "/raw", "", http.StatusTeapot, ""},
		{"POST", "/group/ping", "", http.StatusMethodNotAllowed, ""},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		r.Mux().ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body)))
		if rec.Code != tc.status {
			t.Fatalf("%s %s: status %d want %d", tc.method, tc.path, rec.Code, tc.status)
		}
		if tc.want != "" && rec.Body.String() != tc.want {
			t.Fatalf("%s %s: body %q", tc.method, tc.path, rec.Body.String())
		}
		if rec.Header().Get("X-MW") != "yes" {
			t.Fatalf("%s %s: middleware header missing", tc.method, tc.path)
		}
	}
}

func TestServer_ServeAndGracefulStop(t *testing.T) {
	srv := newServer(t)
	srv.Router().Get("/ping", func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, "pong") })

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/ping")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	b, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if string(b) != "pong" {
		t.Fatalf("body %q", b)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Serve returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Serve did not return after cancel")
	}
}

func TestServer_Run_ReturnsListenError(t *testing.T) {
	t.Setenv("TEST_API_ADDR", "127.0.0.1:abc")
	if err := newServer(t).Run(context.Background()); err == nil {
		t.Fatalf("expected listen error")
	}
}

func TestRespondOK_And_Error(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req = req.WithContext(pnet.WithRequestID(req.Context(), "rid-1"))

	rec := httptest.NewRecorder()
	phttp.RespondOK(rec, req, []string{"Fuß", "ball"})
	if rec.Code != http.StatusOK || !strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		t.Fatalf("bad ok response: %d %q", rec.Code, rec.Header().Get("Content-Type"))
	}
	env := decode(t, rec.Body)
	if env.RequestID != "rid-1" || env.Status != "OK" {
		t.Fatalf("bad envelope: %+v", env)
	}

	rec = httptest.NewRecorder()
	phttp.RespondError(rec, req, perr.TooLargef("word exceeds %d runes", 4))
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("error status %d", rec.Code)
	}
	env = decode(t, rec.Body)
	if env.Code != perr.ErrorCodeTooLarge || env.Error != "word exceeds 4 runes" || env.RequestID != "rid-1" {
		t.Fatalf("bad error envelope: %+v", env)
	}
}

func TestHandle_ResponseVariants(t *testing.T) {
	cases := []struct {
		name   string
		resp   phttp.Response
		status int
		header string
	}{
		{"ok", phttp.OK("x"), http.StatusOK, ""},
		{"zero status", phttp.Response{Body: "x"}, http.StatusOK, ""},
		{"no content", phttp.Response{Status: http.StatusNoContent}, http.StatusNoContent, ""},
		{"error body", phttp.Error(perr.InvalidArgf("nope")), http.StatusUnprocessableEntity, ""},
		{"foreign error", phttp.Error(errors.New("boom")), http.StatusInternalServerError, ""},
		{"headers", phttp.Response{Status: http.StatusOK, Header: http.Header{"X-Run": {"r1"}}}, http.StatusOK, "r1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			phttp.Handle(func(*http.Request) phttp.Response { return tc.resp })(rec, httptest.NewRequest("GET", "/", nil))
			if rec.Code != tc.status {
				t.Fatalf("status %d want %d", rec.Code, tc.status)
			}
			if tc.header != "" && rec.Header().Get("X-Run") != tc.header {
				t.Fatalf("header lost")
			}
			if tc.status == http.StatusNoContent && rec.Body.Len() != 0 {
				t.Fatalf("204 must not carry a body")
			}
		})
	}
}

func TestPostJSON_And_GetJSON(t *testing.T) {
	type in struct {
		Word string `json:"word" validate:"required"`
	}
	r := newServer(t).Router()
	phttp.PostJSON(r, "/split", func(_ *http.Request, p in) (any, error) {
		if p.Word == "fail" {
			return nil, perr.Unavailablef("lexicon down")
		}
		return []string{p.Word}, nil
	})
	phttp.GetJSON(r, "/health", func(*http.Request) (any, error) { return map[string]string{"status": "ok"}, nil })
	phttp.GetJSON(r, "/broken", func(*http.Request) (any, error) { return nil, errors.New("x") })

	cases := []struct {
		method, path, body string
		status             int
	}{
		{"POST", "/split", `{"word":"ball"}`, http.StatusOK},
		{"POST", "/split", `{"word":""}`, http.StatusBadRequest},
		{"POST", "/split", `{"word":"fail"}`, http.StatusServiceUnavailable},
		{"POST", "/split", `nope`, http.StatusBadRequest},
		{"GET", "/health", "", http.StatusOK},
		{"GET", "/broken", "", http.StatusInternalServerError},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		r.Mux().ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body)))
		if rec.Code != tc.status {
			t.Fatalf("%s %s %s: status %d want %d", tc.method, tc.path, tc.body, rec.Code, tc.status)
		}
		_ = decode(t, rec.Body)
	}
}

func TestMountProfiler(t *testing.T) {
	on := newServer(t).Router()
	phttp.MountProfiler(on, "/debug", true)
	rec := httptest.NewRecorder()
	on.Mux().ServeHTTP(rec, httptest.NewRequest("GET", "/debug/pprof/cmdline", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 at /debug/pprof/cmdline, got %d", rec.Code)
	}

	off := newServer(t).Router()
	phttp.MountProfiler(off, "/debug", false)
	rec = httptest.NewRecorder()
	off.Mux().ServeHTTP(rec, httptest.NewRequest("GET", "/debug/pprof/", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 when disabled, got %d", rec.Code)
	}
}

func TestMountSwagger(t *testing.T) {
	doc := func() string { return `{"swagger":"2.0","paths":{}}` }

	on := newServer(t).Router()
	phttp.MountSwagger(on, "/docs", true, doc)

	rec := httptest.NewRecorder()
	on.Mux().ServeHTTP(rec, httptest.NewRequest("GET", "/docs/doc.json", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != doc() {
		t.Fatalf("doc.json: %d %q", rec.Code, rec.Body.String())
	}
	rec = httptest.NewRecorder()
	on.Mux().ServeHTTP(rec, httptest.NewRequest("GET", "/docs", nil))
	if rec.Code != http.StatusPermanentRedirect || rec.Header().Get("Location") != "/docs/" {
		t.Fatalf("redirect: %d %q", rec.Code, rec.Header().Get("Location"))
	}
	rec = httptest.NewRecorder()
	on.Mux().ServeHTTP(rec, httptest.NewRequest("GET", "/docs/index.html", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 at /docs/index.html, got %d", rec.Code)
	}

	off := newServer(t).Router()
	phttp.MountSwagger(off, "/docs", false, doc)
	rec = httptest.NewRecorder()
	off.Mux().ServeHTTP(rec, httptest.NewRequest("GET", "/docs/doc.json", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 when disabled, got %d", rec.Code)
	}
}
