// Package module wires a lexicon source, the decompound service and its HTTP
// routes from configuration
package module

import (
	"context"
	"io"
	"os"
	"time"

	"decompound/internal/adapters/lexicon/pglex"
	"decompound/internal/core/lexicon"
	"decompound/internal/platform/config"
	perr "decompound/internal/platform/errors"
	"decompound/internal/platform/logger"
	phttp "decompound/internal/platform/net/http"
	"decompound/internal/platform/store"
	"decompound/internal/services/decompound/domain"
	dechttp "decompound/internal/services/decompound/http"
	"decompound/internal/services/decompound/service"

	"github.com/prometheus/client_golang/prometheus"
)

// Deps are what the module needs from the process
type Deps struct {
	// Cfg is the root config; the module reads DECOMPOUND_*, DECOMPOUND_LEXICON_*
	// and DECOMPOUND_PG_* from it
	Cfg config.Conf
	// Name is the service name used for logs, health and application_name
	Name string
	// Stdin feeds SourceStdin
	Stdin io.Reader
	// Registerer receives service metrics, nil skips them
	Registerer prometheus.Registerer
	// DefaultSource applies when DECOMPOUND_LEXICON_SOURCE is unset
	DefaultSource Source
}

// Module owns the lexicon backend and the service built on it
type Module struct {
	Svc *service.Svc

	name    string
	started time.Time
	lexCfg  LexiconConfig
	words   int
	st      *store.Store
}

var openStore = store.Open

// New opens the configured lexicon and builds the service
func New(ctx context.Context, d Deps) (*Module, error) {
	if d.DefaultSource == "" {
		d.DefaultSource = SourceFile
	}
	lexCfg := LexiconConfigFrom(d.Cfg.Prefix("DECOMPOUND_LEXICON_"), d.DefaultSource)
	m := &Module{name: d.Name, started: time.Now(), lexCfg: lexCfg}
	log := logger.Named("lexicon")

	var lex domain.Lexicon
	switch lexCfg.Source {
	case SourcePG:
		l, err := m.openPG(ctx, d)
		if err != nil {
			_ = m.Close(ctx)
			return nil, err
		}
		lex = l
	case SourceStdin:
		in := d.Stdin
		if in == nil {
			in = os.Stdin
		}
		set, err := lexicon.ReadSet(in)
		if err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "read lexicon from stdin")
		}
		m.words = set.Len()
		lex = service.Static(set.Contains)
	case SourceFile:
		set, err := readFile(lexCfg.Path)
		if err != nil {
			return nil, err
		}
		m.words = set.Len()
		lex = service.Static(set.Contains)
	}
	log.Info().Str("source", string(lexCfg.Source)).Int("words", m.words).Msg("lexicon ready")

	svc, err := service.New(lex, serviceConfig(d.Cfg, lexCfg), service.NewMetrics(d.Registerer))
	if err != nil {
		_ = m.Close(ctx)
		return nil, err
	}
	m.Svc = svc
	return m, nil
}

// serviceConfig reads DECOMPOUND_*. Only live lookups get the shared cache;
// set lookups are cheaper than the cache, even for an empty set
func serviceConfig(c config.Conf, lc LexiconConfig) service.Config {
	cfg := service.ConfigFrom(c.Prefix("DECOMPOUND_"))
	if !lc.Live() {
		cfg.MemoSize = 0
	}
	return cfg
}

func readFile(path string) (lexicon.Set, error) {
	if path == "" {
		return nil, perr.WithField(perr.InvalidArgf("lexicon path is required for the file source"), "DECOMPOUND_LEXICON_PATH")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeNotFound, "open lexicon %s", path)
	}
	defer f.Close()
	set, err := lexicon.ReadSet(f)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "read lexicon %s", path)
	}
	return set, nil
}

func (m *Module) openPG(ctx context.Context, d Deps) (domain.Lexicon, error) {
	stCfg := store.FromConf(d.Name, d.Cfg.Prefix("DECOMPOUND_PG_"))
	if !stCfg.PG.Enabled() {
		return nil, perr.WithField(perr.InvalidArgf("postgres lexicon needs a URL"), "DECOMPOUND_PG_URL")
	}
	st, err := openStore(ctx, stCfg, store.WithLogger(*logger.Named("store")))
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "open lexicon store")
	}
	m.st = st

	src, err := pglex.New(st.PG, m.lexCfg.Table, m.lexCfg.Column)
	if err != nil {
		return nil, err
	}
	if m.lexCfg.Live() {
		n, err := src.Count(ctx)
		if err != nil {
			return nil, err
		}
		m.words = n
		return service.LexiconFunc(func(ctx context.Context) domain.Lookup { return src.Predicate(ctx) }), nil
	}
	set, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	m.words = set.Len()
	return service.Static(set.Contains), nil
}

// MountRoutes mounts meta routes at the root and the service under /v1
func (m *Module) MountRoutes(r phttp.Router) {
	meta := dechttp.MetaDeps{
		ServiceName: m.name,
		StartedAt:   m.started,
		Lexicon:     string(m.lexCfg.Source),
		Words:       m.words,
	}
	if m.st != nil && m.st.PG != nil {
		meta.PG = pingFunc(m.st.Guard)
	}
	dechttp.RegisterMeta(r, meta)
	r.Route("/v1", func(v1 phttp.Router) { dechttp.Register(v1, m.Svc) })
}

type pingFunc func(context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

// Words is the lexicon size. Live lookups count the table once at startup
func (m *Module) Words() int { return m.words }

// Close releases the lexicon store, if any
func (m *Module) Close(ctx context.Context) error {
	if m == nil || m.st == nil {
		return nil
	}
	return m.st.Close(ctx)
}
