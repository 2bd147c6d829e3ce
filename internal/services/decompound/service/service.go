// Package service runs decompound requests against a lexicon with per word
// limits, a shared answer cache and metrics
package service

import (
	"context"
	"time"
	"unicode/utf8"

	"decompound/internal/core/decompound"
	"decompound/internal/core/lexicon"
	"decompound/internal/platform/config"
	perr "decompound/internal/platform/errors"
	"decompound/internal/platform/logger"
	"decompound/internal/services/decompound/domain"

	"golang.org/x/sync/errgroup"
)

// Config bounds the work done per request
type Config struct {
	MaxRunes int // longest accepted word
	MaxBatch int // most words per batch
	Budget   int // lexicon lookups per word, 0 is unlimited
	MemoSize int // shared answer cache entries, 0 disables
	Workers  int // batch concurrency
}

// DefaultConfig is what ConfigFrom falls back to
func DefaultConfig() Config {
	return Config{
		MaxRunes: decompound.MaxRecommendedRunes,
		MaxBatch: 100,
		Budget:   100_000,
		MemoSize: lexicon.DefaultMemoSize,
		Workers:  4,
	}
}

// ConfigFrom reads limits from c, normally scoped to DECOMPOUND_
func ConfigFrom(c config.Conf) Config {
	d := DefaultConfig()
	return Config{
		MaxRunes: c.MayInt("MAX_RUNES", d.MaxRunes),
		MaxBatch: c.MayInt("MAX_BATCH", d.MaxBatch),
		Budget:   c.MayInt("LEXICON_BUDGET", d.Budget),
		MemoSize: c.MayInt("LEXICON_MEMO_SIZE", d.MemoSize),
		Workers:  c.MayInt("BATCH_WORKERS", d.Workers),
	}
}

// Service defines the service contract for decompounding
type Service interface{ domain.ServicePort }

// Svc implements Service
type Svc struct {
	lex   domain.Lexicon
	cfg   Config
	cache *lexicon.Cache
	m     *Metrics
}

// New builds a service over lex. m may be nil
func New(lex domain.Lexicon, cfg Config, m *Metrics) (*Svc, error) {
	if lex == nil {
		return nil, perr.InvalidArgf("decompound service requires a lexicon")
	}
	d := DefaultConfig()
	if cfg.MaxRunes <= 0 {
		cfg.MaxRunes = d.MaxRunes
	}
	if cfg.MaxBatch <= 0 {
		cfg.MaxBatch = d.MaxBatch
	}
	if cfg.Workers <= 0 {
		cfg.Workers = d.Workers
	}
	s := &Svc{lex: lex, cfg: cfg, m: m}
	if cfg.MemoSize > 0 {
		c, err := lexicon.NewCache(cfg.MemoSize)
		if err != nil {
			return nil, err
		}
		s.cache = c
	}
	return s, nil
}

// Decompose splits one word. Single word and no split outcomes are results
// unless in.Strict is set
func (s *Svc) Decompose(ctx context.Context, in domain.Request) (domain.Result, error) {
	opts, err := decompound.ParseOptions(in.Options...)
	if err != nil {
		return domain.Result{}, perr.WithField(perr.Wrap(err, perr.ErrorCodeInvalidArgument, err.Error()), "options")
	}

	res, err := s.run(ctx, in.Word, opts)
	if err != nil {
		s.m.outcome(domain.OutcomeError)
		return domain.Result{}, err
	}
	s.m.outcome(res.Outcome)

	if in.Strict {
		switch res.Outcome {
		case domain.OutcomeSingleWord:
			return res, perr.FromDecompound(&decompound.SingleWordError{Word: in.Word})
		case domain.OutcomeNone:
			return res, perr.FromDecompound(decompound.ErrNoValidDecomposition)
		}
	}
	return res, nil
}

// DecomposeBatch runs words concurrently with shared options. Input errors
// are reported per item; a lexicon backend failure fails the whole batch
func (s *Svc) DecomposeBatch(ctx context.Context, in domain.BatchRequest) (domain.BatchResult, error) {
	if len(in.Words) == 0 {
		return domain.BatchResult{}, perr.WithField(perr.InvalidArgf("no words given"), "words")
	}
	if len(in.Words) > s.cfg.MaxBatch {
		return domain.BatchResult{}, perr.WithField(
			perr.TooLargef("batch of %d exceeds the limit of %d words", len(in.Words), s.cfg.MaxBatch), "words")
	}
	opts, err := decompound.ParseOptions(in.Options...)
	if err != nil {
		return domain.BatchResult{}, perr.WithField(perr.Wrap(err, perr.ErrorCodeInvalidArgument, err.Error()), "options")
	}

	out := make([]domain.Result, len(in.Words))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Workers)
	for i, w := range in.Words {
		g.Go(func() error {
			res, err := s.run(gctx, w, opts)
			switch {
			case err == nil:
			case isBackend(err):
				return err
			default:
				res = domain.Result{Word: w, Outcome: domain.OutcomeError, Error: perr.WireFrom(err).Message}
			}
			s.m.outcome(res.Outcome)
			out[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.m.outcome(domain.OutcomeError)
		return domain.BatchResult{}, err
	}
	return domain.BatchResult{Results: out}, nil
}

// run does one search and classifies the core result
func (s *Svc) run(ctx context.Context, word string, opts decompound.Options) (domain.Result, error) {
	if word == "" {
		return domain.Result{}, perr.WithField(perr.InvalidArgf("word is required"), "word")
	}
	if !utf8.ValidString(word) {
		return domain.Result{}, perr.WithField(perr.InvalidArgf("word is not valid UTF-8"), "word")
	}
	if n := utf8.RuneCountInString(word); n > s.cfg.MaxRunes {
		return domain.Result{}, perr.WithField(perr.TooLargef("word has %d characters, limit is %d", n, s.cfg.MaxRunes), "word")
	}
	if err := ctx.Err(); err != nil {
		return domain.Result{}, perr.Wrap(err, perr.ErrorCodeUnavailable, "request canceled")
	}

	ctx = logger.WithWord(ctx, word)
	lookup := s.lex.Lookup(ctx)

	pred := lexicon.Predicate(lookup.Valid)
	if s.cache != nil {
		pred = s.cache.Wrap(pred, func() bool { return lookup.Err() == nil })
	}
	pred = lexicon.Observe(pred, s.m.lookup)
	budget := lexicon.Budget(pred, s.cfg.Budget)

	start := time.Now()
	parts, err := decompound.Decompound(word, budget.Valid, opts)
	s.m.observe(time.Since(start).Seconds())

	if lerr := lookup.Err(); lerr != nil {
		return domain.Result{}, perr.WrapIf(lerr, perr.ErrorCodeUnavailable, "lexicon lookup failed")
	}
	if budget.Exhausted() {
		logger.C(ctx).Warn().Int("budget", s.cfg.Budget).Msg("lookup budget exhausted")
		return domain.Result{}, perr.TooLargef("search needed more than %d lexicon lookups", s.cfg.Budget)
	}

	res := domain.Result{Word: word, Lookups: int64(budget.Calls())}
	switch _, single := decompound.SingleWord(err); {
	case err == nil:
		res.Outcome = domain.OutcomeSplit
		res.Constituents = parts
	case single:
		res.Outcome = domain.OutcomeSingleWord
	default:
		res.Outcome = domain.OutcomeNone
	}
	logger.C(ctx).Debug().Str("outcome", string(res.Outcome)).Int64("lookups", res.Lookups).Msg("decompounded")
	return res, nil
}

func isBackend(err error) bool {
	switch perr.CodeOf(err) {
	case perr.ErrorCodeUnavailable, perr.ErrorCodeDB, perr.ErrorCodeNotFound:
		return true
	}
	return false
}
