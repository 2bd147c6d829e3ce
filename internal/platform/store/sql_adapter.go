package store

import (
	"context"
	"errors"
	"time"

	"decompound/internal/platform/store/pg"

	"github.com/jackc/pgx/v5"
)

// pool is the slice of *pgxpool.Pool the adapter needs
type pool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

// pgAdapter implements Querier over a pool and emits trace events when a
// tracer is configured
type pgAdapter struct {
	pool   pool
	tracer pg.QueryTracer
	slowMs int
	close  func()
}

func newPGAdapter(p pool, tracer pg.QueryTracer, slowMs int, closeFn func()) *pgAdapter {
	return &pgAdapter{pool: p, tracer: tracer, slowMs: slowMs, close: closeFn}
}

func (a *pgAdapter) Ping(ctx context.Context) error {
	if a == nil || a.pool == nil {
		return errors.New("pg: nil adapter")
	}
	return a.pool.Ping(ctx)
}

func (a *pgAdapter) Close() error {
	if a != nil && a.close != nil {
		a.close()
	}
	return nil
}

func (a *pgAdapter) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	start := time.Now()
	rs, err := a.pool.Query(ctx, sql, args...)
	a.emit(ctx, sql, args, start, err)
	if err != nil {
		return nil, err
	}
	return rows{r: rs}, nil
}

func (a *pgAdapter) QueryRow(ctx context.Context, sql string, args ...any) Row {
	start := time.Now()
	r := a.pool.QueryRow(ctx, sql, args...)
	// emit after Scan so the scan error is captured
	return row{
		r: r,
		after: func(scanErr error) {
			a.emit(ctx, sql, args, start, scanErr)
		},
	}
}

func (a *pgAdapter) emit(ctx context.Context, sql string, args []any, start time.Time, err error) {
	if a.tracer == nil {
		return
	}
	elapsedUS := time.Since(start).Microseconds()
	a.tracer.OnQuery(ctx, pg.QueryEvent{
		SQL:       sql,
		Args:      args,
		ElapsedUS: elapsedUS,
		Err:       err,
		Slow:      a.slowMs >= 0 && elapsedUS >= int64(a.slowMs)*1000,
	})
}

type row struct {
	r     pgx.Row
	after func(error)
}

func (x row) Scan(dst ...any) error {
	err := x.r.Scan(dst...)
	if x.after != nil {
		x.after(err)
	}
	return err
}

type rows struct{ r pgx.Rows }

func (x rows) Next() bool            { return x.r.Next() }
func (x rows) Scan(dst ...any) error { return x.r.Scan(dst...) }
func (x rows) Err() error            { return x.r.Err() }
func (x rows) Close()                { x.r.Close() }
func (x rows) Columns() []string {
	f := x.r.FieldDescriptions()
	out := make([]string, len(f))
	for i := range f {
		out[i] = f[i].Name
	}
	return out
}
