// Package http provides the decompound HTTP transport
package http

import (
	stdhttp "net/http"

	phttp "decompound/internal/platform/net/http"
	"decompound/internal/platform/net/http/bind"
	"decompound/internal/services/decompound/domain"
)

// MaxBodyBytes caps request bodies; batch bodies are bounded by the service limit too
const MaxBodyBytes = 256 << 10

// Register mounts the decompound endpoints on r
func Register(r phttp.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	opts := bind.JSONOptions{MaxBytes: MaxBodyBytes, DisallowUnknown: true}
	phttp.PostJSON(r, "/decompound", h.one, opts)
	phttp.PostJSON(r, "/decompound/batch", h.batch, opts)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route POST /v1/decompound Decompound decompoundOne
// @Summary Split one compound word
// @Tags Decompound
// @Accept json
// @Produce json
// @Param payload body domain.Request true "Word and options"
// @Success 200 {object} domain.Result "ok"
// @Failure 422 {object} phttp.Envelope "strict single_word or no_decomposition"
// @Router /v1/decompound [post]
func (h *handlers) one(r *stdhttp.Request, in domain.Request) (any, error) {
	return h.svc.Decompose(r.Context(), in)
}

// swagger:route POST /v1/decompound/batch Decompound decompoundBatch
// @Summary Split many words with shared options
// @Tags Decompound
// @Accept json
// @Produce json
// @Param payload body domain.BatchRequest true "Words and options"
// @Success 200 {object} domain.BatchResult "results in request order"
// @Failure 413 {object} phttp.Envelope "batch too large"
// @Router /v1/decompound/batch [post]
func (h *handlers) batch(r *stdhttp.Request, in domain.BatchRequest) (any, error) {
	return h.svc.DecomposeBatch(r.Context(), in)
}
