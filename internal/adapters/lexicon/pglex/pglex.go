// Package pglex reads a word list out of a postgres table. It can load the
// whole column into a lexicon.Set or answer membership one query per word
package pglex

import (
	"context"
	"strings"

	"decompound/internal/core/lexicon"
	perr "decompound/internal/platform/errors"
	"decompound/internal/platform/logger"
	"decompound/internal/platform/store"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Source is one table and column holding lexicon words
type Source struct {
	q      store.Querier
	table  string
	column string
}

// New validates and quotes the identifiers. table may be schema qualified
// ("public.lexicon")
func New(q store.Querier, table, column string) (*Source, error) {
	if q == nil {
		return nil, perr.InvalidArgf("pglex: nil querier")
	}
	table, column = strings.TrimSpace(table), strings.TrimSpace(column)
	if table == "" || column == "" {
		return nil, perr.InvalidArgf("pglex: table and column are required")
	}
	parts := strings.Split(table, ".")
	for _, p := range parts {
		if p == "" {
			return nil, perr.InvalidArgf("pglex: bad table name %q", table)
		}
	}
	return &Source{
		q:      q,
		table:  pgx.Identifier(parts).Sanitize(),
		column: pgx.Identifier{column}.Sanitize(),
	}, nil
}

func (s *Source) selectAll() (string, []any, error) {
	return psql.Select(s.column).
		From(s.table).
		Where(sq.NotEq{s.column: nil}).
		ToSql()
}

func (s *Source) selectExists(word string) (string, []any, error) {
	return psql.Select("1").
		From(s.table).
		Where(sq.Eq{s.column: word}).
		Limit(1).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
}

func (s *Source) selectCount() (string, []any, error) {
	return psql.Select("count(*)").
		From(s.table).
		Where(sq.NotEq{s.column: nil}).
		ToSql()
}

// loadAttempts bounds retries of a transient load failure
const loadAttempts = 3

// Load reads every non-null word into a Set. Entries are trimmed and blanks
// skipped, matching lexicon.ReadSet. Serialization failures and dropped
// connections are retried
func (s *Source) Load(ctx context.Context) (lexicon.Set, error) {
	query, args, err := s.selectAll()
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "pglex: build query")
	}

	var set lexicon.Set
	for attempt := 1; ; attempt++ {
		set, err = s.load(ctx, query, args)
		if err == nil || attempt == loadAttempts || !perr.Retryable(err) {
			break
		}
		logger.C(ctx).Warn().Err(err).Int("attempt", attempt).Msg("lexicon load failed, retrying")
	}
	if err != nil {
		return nil, s.mapErr(err, "pglex: load lexicon")
	}

	logger.C(ctx).Debug().Str("table", s.table).Int("words", set.Len()).Msg("lexicon loaded")
	return set, nil
}

func (s *Source) load(ctx context.Context, query string, args []any) (lexicon.Set, error) {
	words, err := store.Many(ctx, s.q, scanWord, query, args...)
	if err != nil {
		return nil, err
	}
	set := lexicon.NewSet()
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			set.Add(w)
		}
	}
	return set, nil
}

// Count returns the number of non-null rows. A live lookup calls it once at
// startup, so a missing table fails there instead of on the first request
func (s *Source) Count(ctx context.Context) (int, error) {
	query, args, err := s.selectCount()
	if err != nil {
		return 0, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "pglex: build query")
	}
	n, err := store.Scalar[int64](ctx, s.q, query, args...)
	if err != nil {
		return 0, s.mapErr(err, "pglex: count lexicon")
	}
	return int(n), nil
}

func (s *Source) mapErr(err error, msg string) error {
	if perr.IsUndefinedRelation(err) {
		return perr.FromPostgresf(err, "pglex: %s.%s does not exist", s.table, s.column)
	}
	return perr.FromPostgresWithField(err, msg)
}

// Contains asks postgres whether word is in the table
func (s *Source) Contains(ctx context.Context, word string) (bool, error) {
	query, args, err := s.selectExists(word)
	if err != nil {
		return false, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "pglex: build query")
	}
	ok, err := store.One(ctx, s.q, scanBool, query, args...)
	if err != nil {
		return false, perr.FromPostgresWithField(err, "pglex: lookup")
	}
	return ok, nil
}

func scanWord(r store.Row) (string, error) {
	var w string
	err := r.Scan(&w)
	return w, err
}

func scanBool(r store.Row) (bool, error) {
	var ok bool
	err := r.Scan(&ok)
	return ok, err
}

// Predicate adapts Contains to lexicon.Predicate bound to ctx. A failed
// lookup is logged and answers false so the search keeps going; callers that
// need to surface failures should check Err after the search
func (s *Source) Predicate(ctx context.Context) *Lookup {
	return &Lookup{src: s, ctx: ctx}
}

// Lookup is a Predicate backed by per-word queries
type Lookup struct {
	src *Source
	ctx context.Context
	err error
}

// Valid satisfies lexicon.Predicate
func (l *Lookup) Valid(word string) bool {
	if l.err != nil {
		return false
	}
	ok, err := l.src.Contains(l.ctx, word)
	if err != nil {
		l.err = err
		logger.C(l.ctx).Warn().Err(err).Str("candidate", word).Msg("lexicon lookup failed")
		return false
	}
	return ok
}

// Err returns the first lookup failure, if any
func (l *Lookup) Err() error { return l.err }
