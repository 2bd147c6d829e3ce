package http

import (
	stdhttp "net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// MountSwagger mounts the swagger UI under prefix if enabled by caller.
// doc returns the spec JSON served at prefix/doc.json
func MountSwagger(r Router, prefix string, enabled bool, doc func() string) {
	if !enabled || doc == nil {
		return
	}
	r.Get(prefix, func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
		stdhttp.Redirect(w, req, prefix+"/", stdhttp.StatusPermanentRedirect)
	})
	r.Get(prefix+"/doc.json", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write([]byte(doc()))
	})
	r.Handle(prefix+"/*", httpSwagger.Handler(httpSwagger.URL(prefix+"/doc.json")))
}
