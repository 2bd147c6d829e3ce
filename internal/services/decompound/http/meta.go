package http

import (
	"context"
	stdhttp "net/http"
	"time"

	"decompound/internal/core/version"
	phttp "decompound/internal/platform/net/http"
)

// Pinger is satisfied by backends that can report readiness
type Pinger interface {
	Ping(context.Context) error
}

// MetaDeps are the meta handler dependencies
type MetaDeps struct {
	ServiceName string
	StartedAt   time.Time
	Lexicon     string // source name reported in health
	Words       int    // lexicon size, counted once for live lookups
	PG          Pinger // nil when the lexicon is not in postgres
}

// HealthResponse is the liveness payload
type HealthResponse struct {
	OK      bool              `json:"ok"`
	Service string            `json:"service"`
	Lexicon string            `json:"lexicon"`
	Words   int               `json:"words,omitempty"`
	Started string            `json:"started"`
	Uptime  int64             `json:"uptime"`
	Build   version.BuildInfo `json:"build"`
}

// ReadyCheck describes one dependency check
type ReadyCheck struct {
	Name   string `json:"name"`
	Status string `json:"status"` // ok fail skipped
	Error  string `json:"error,omitempty"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status"`
	Checks []ReadyCheck `json:"checks"`
}

// RegisterMeta mounts /healthz and /readyz
func RegisterMeta(r phttp.Router, d MetaDeps) {
	h := &meta{deps: d}
	phttp.GetJSON(r, "/healthz", h.health)
	r.Get("/readyz", h.ready)
}

type meta struct{ deps MetaDeps }

// swagger:route GET /healthz Meta healthz
// @Summary Liveness with build and lexicon info
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /healthz [get]
func (h *meta) health(_ *stdhttp.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Lexicon: h.deps.Lexicon,
		Words:   h.deps.Words,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(time.Since(h.deps.StartedAt) / time.Second),
		Build:   version.Info(h.deps.ServiceName),
	}, nil
}

// ready answers 503 when postgres is configured and does not ping
//
// swagger:route GET /readyz Meta readyz
// @Summary Readiness of the lexicon backend
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Failure 503 {object} ReadyResponse "postgres unreachable"
// @Router /readyz [get]
func (h *meta) ready(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	check := ReadyCheck{Name: "pg", Status: "skipped"}
	if h.deps.PG != nil {
		check.Status = "ok"
		if err := h.deps.PG.Ping(ctx); err != nil {
			check.Status, check.Error = "fail", err.Error()
		}
	}

	resp := ReadyResponse{Status: "ok", Checks: []ReadyCheck{check}}
	status := stdhttp.StatusOK
	if check.Status == "fail" {
		resp.Status, status = "fail", stdhttp.StatusServiceUnavailable
	}
	phttp.Handle(func(*stdhttp.Request) phttp.Response {
		return phttp.Response{Status: status, Body: resp}
	})(w, r)
}
