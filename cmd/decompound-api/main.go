// Command decompound-api serves decompounding over HTTP
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"decompound/internal/platform/config"
	"decompound/internal/platform/logger"
	phttp "decompound/internal/platform/net/http"
	"decompound/internal/services/api"
	"decompound/internal/services/decompound/module"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	root := config.New()
	apiCfg := root.Prefix("API_")

	l := logger.Get()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// lexicon and service (DECOMPOUND_*), file source unless configured
	mod, err := module.New(ctx, module.Deps{
		Cfg:           root,
		Name:          "decompound-api",
		Registerer:    reg,
		DefaultSource: module.SourceFile,
	})
	if err != nil {
		l.Panic().Err(err).Msg("decompound module failed")
	}
	defer func() {
		cctx, ccancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer ccancel()
		if err := mod.Close(cctx); err != nil {
			l.Error().Err(err).Msg("failed to close lexicon store")
		}
	}()

	// http server (reads API_ADDR or API_PORT and timeouts)
	srv := phttp.NewServer(apiCfg)

	api.Mount(srv.Router(), api.Options{
		Config:   apiCfg,
		Registry: reg,
		Modules:  []api.Mounter{mod},
	})

	if err := srv.Run(ctx); err != nil {
		l.Error().Err(err).Msg("http server stopped")
		return
	}
	l.Info().Msg("bye")
}
