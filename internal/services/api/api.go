// Package api assembles the HTTP surface: middleware stack, metrics, CORS,
// profiler, swagger UI and the decompound module routes
package api

import (
	"time"

	"decompound/internal/platform/config"
	phttp "decompound/internal/platform/net/http"
	"decompound/internal/platform/net/middleware"
	"decompound/internal/services/api/docs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Mounter is anything that mounts routes, the decompound module in practice
type Mounter interface {
	MountRoutes(r phttp.Router)
}

// Options are the API options
type Options struct {
	Config   config.Conf // API_ scoped
	Registry *prometheus.Registry
	Modules  []Mounter
}

// Settings are the knobs Mount reads from Options.Config
type Settings struct {
	Timeout        time.Duration
	SlowRequest    time.Duration
	ThrottleLimit  int
	ThrottleQueue  int
	CORSOrigins    []string
	EnableProfiler bool
	EnableMetrics  bool
	EnableSwagger  bool
}

// SettingsFrom reads API_* keys from c
func SettingsFrom(c config.Conf) Settings {
	return Settings{
		Timeout:        c.MayDuration("REQUEST_TIMEOUT", 15*time.Second),
		SlowRequest:    c.MayDuration("SLOW_REQUEST", 500*time.Millisecond),
		ThrottleLimit:  c.MayInt("THROTTLE_LIMIT", 0),
		ThrottleQueue:  c.MayInt("THROTTLE_BACKLOG", 0),
		CORSOrigins:    c.MayCSV("CORS_ORIGINS", nil),
		EnableProfiler: c.MayBool("PPROF", false),
		EnableMetrics:  c.MayBool("METRICS", true),
		EnableSwagger:  c.MayBool("ENABLE_SWAGGER", false),
	}
}

// Mount installs the middleware stack and routes on r. Middleware must be
// mounted before any route
func Mount(r phttp.Router, opt Options) {
	s := SettingsFrom(opt.Config)

	if len(s.CORSOrigins) > 0 {
		r.Use(middleware.CORS(middleware.CORSOptions{AllowedOrigins: s.CORSOrigins}))
	}
	if s.EnableMetrics && opt.Registry != nil {
		r.Use(middleware.NewHTTPMetrics(opt.Registry).Handler)
	}
	r.Use(middleware.Defaults(s.Timeout)...)
	r.Use(middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: s.SlowRequest}))
	r.Use(middleware.Throttle(s.ThrottleLimit, s.ThrottleQueue, s.Timeout))

	if s.EnableMetrics && opt.Registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(opt.Registry, promhttp.HandlerOpts{Registry: opt.Registry}))
	}
	phttp.MountProfiler(r, "/debug", s.EnableProfiler)
	phttp.MountSwagger(r, "/docs", s.EnableSwagger, docs.SwaggerInfo.ReadDoc)

	r.Group(func(g phttp.Router) {
		g.Use(middleware.AllowContentType("application/json"))
		for _, m := range opt.Modules {
			m.MountRoutes(g)
		}
	})
}
