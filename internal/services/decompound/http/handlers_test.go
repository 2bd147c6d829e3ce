package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"decompound/internal/core/lexicon"
	phttp "decompound/internal/platform/net/http"
	dechttp "decompound/internal/services/decompound/http"
	"decompound/internal/services/decompound/service"

	"github.com/go-chi/chi/v5"
)

type envelope struct {
	StatusCode int             `json:"status_code"`
	Code       string          `json:"code"`
	Error      string          `json:"error"`
	Field      string          `json:"field"`
	Data       json.RawMessage `json:"data"`
}

func newMux(t *testing.T) http.Handler {
	t.Helper()
	svc, err := service.New(service.Static(lexicon.NewSet("Fuß", "ball", "Mauer", "Blümchen").Contains), service.Config{MaxBatch: 3}, nil)
	if err != nil {
		t.Fatal(err)
	}
	r := phttp.AdaptChi(chi.NewMux())
	r.Route("/v1", func(v1 phttp.Router) { dechttp.Register(v1, svc) })
	return r.Mux()
}

func post(t *testing.T, h http.Handler, path, body string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	var env envelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s: bad body %q: %v", path, rr.Body.String(), err)
	}
	return rr.Code, env
}

func TestDecompound_Split(t *testing.T) {
	status, env := post(t, newMux(t), "/v1/decompound", `{"word":"Mauerblümchen","options":["try-titlecase-suffix"]}`)
	if status != http.StatusOK {
		t.Fatalf("status %d: %+v", status, env)
	}
	var res struct {
		Outcome      string   `json:"outcome"`
		Constituents []string `json:"constituents"`
	}
	if err := json.Unmarshal(env.Data, &res); err != nil {
		t.Fatal(err)
	}
	if res.Outcome != "split" || strings.Join(res.Constituents, "|") != "Mauer|Blümchen" {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestDecompound_ErrorMapping(t *testing.T) {
	mux := newMux(t)

	cases := []struct {
		name   string
		body   string
		status int
		code   string
		field  string
	}{
		{"strict single word", `{"word":"Mauer","strict":true}`, http.StatusUnprocessableEntity, "single_word", ""},
		{"strict none", `{"word":"Kartoffel","strict":true}`, http.StatusUnprocessableEntity, "no_decomposition", ""},
		{"unknown option", `{"word":"Fußball","options":["explode"]}`, http.StatusBadRequest, "validation", "options[0]"},
		{"missing word", `{}`, http.StatusBadRequest, "validation", "word"},
		{"unknown field", `{"word":"x","lang":"de"}`, http.StatusBadRequest, "json", ""},
		{"too long", `{"word":"` + strings.Repeat("a", 300) + `"}`, http.StatusRequestEntityTooLarge, "too_large", "word"},
	}
	for _, c := range cases {
		status, env := post(t, mux, "/v1/decompound", c.body)
		if status != c.status || env.Code != c.code || env.Field != c.field {
			t.Fatalf("%s: got %d %q field=%q (%s), want %d %q field=%q",
				c.name, status, env.Code, env.Field, env.Error, c.status, c.code, c.field)
		}
	}
}

func TestDecompound_Batch(t *testing.T) {
	mux := newMux(t)

	status, env := post(t, mux, "/v1/decompound/batch", `{"words":["Fußball","Mauer","xyz"]}`)
	if status != http.StatusOK {
		t.Fatalf("status %d: %+v", status, env)
	}
	var res struct {
		Results []struct {
			Word    string `json:"word"`
			Outcome string `json:"outcome"`
		} `json:"results"`
	}
	if err := json.Unmarshal(env.Data, &res); err != nil {
		t.Fatal(err)
	}
	got := make([]string, 0, len(res.Results))
	for _, r := range res.Results {
		got = append(got, r.Word+"="+r.Outcome)
	}
	if strings.Join(got, ",") != "Fußball=split,Mauer=single_word,xyz=none" {
		t.Fatalf("unexpected batch %v", got)
	}

	status, env = post(t, mux, "/v1/decompound/batch", `{"words":["a","b","c","d"]}`)
	if status != http.StatusRequestEntityTooLarge || env.Field != "words" {
		t.Fatalf("oversized batch: %d %+v", status, env)
	}
}

func TestDecompound_BatchEmptyWordIsPerItem(t *testing.T) {
	status, env := post(t, newMux(t), "/v1/decompound/batch", `{"words":["Fußball",""]}`)
	if status != http.StatusOK {
		t.Fatalf("status %d: %+v", status, env)
	}
	var res struct {
		Results []struct {
			Outcome string `json:"outcome"`
			Error   string `json:"error"`
		} `json:"results"`
	}
	if err := json.Unmarshal(env.Data, &res); err != nil {
		t.Fatal(err)
	}
	if len(res.Results) != 2 || res.Results[0].Outcome != "split" {
		t.Fatalf("unexpected batch %+v", res.Results)
	}
	if res.Results[1].Outcome != "error" || res.Results[1].Error == "" {
		t.Fatalf("empty word: %+v", res.Results[1])
	}
}

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func TestMeta(t *testing.T) {
	newMeta := func(pg dechttp.Pinger) http.Handler {
		r := phttp.AdaptChi(chi.NewMux())
		dechttp.RegisterMeta(r, dechttp.MetaDeps{
			ServiceName: "decompound-api",
			StartedAt:   time.Now().Add(-time.Minute),
			Lexicon:     "file",
			Words:       4,
			PG:          pg,
		})
		return r.Mux()
	}

	rr := httptest.NewRecorder()
	newMeta(nil).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), `"service":"decompound-api"`) {
		t.Fatalf("healthz: %d %s", rr.Code, rr.Body.String())
	}

	cases := []struct {
		pg     dechttp.Pinger
		status int
		want   string
	}{
		{nil, http.StatusOK, `"status":"skipped"`},
		{pinger{}, http.StatusOK, `"status":"ok"`},
		{pinger{err: errors.New("refused")}, http.StatusServiceUnavailable, `"error":"refused"`},
	}
	for _, c := range cases {
		rr := httptest.NewRecorder()
		newMeta(c.pg).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		if rr.Code != c.status || !strings.Contains(rr.Body.String(), c.want) {
			t.Fatalf("readyz: %d %s", rr.Code, rr.Body.String())
		}
	}
}
