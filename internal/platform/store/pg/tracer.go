package pg

import (
	"context"
	"strings"

	"decompound/internal/platform/logger"
	pstrings "decompound/internal/platform/strings"

	"github.com/rs/zerolog"
)

// maxArgRunes caps string args in trace lines; lexicon lookups pass whole
// candidate words which can be long
const maxArgRunes = 64

// QueryEvent is one traced statement
type QueryEvent struct {
	SQL       string
	Args      []any
	ElapsedUS int64
	Err       error
	Slow      bool
}

// QueryTracer receives an event per statement
type QueryTracer interface {
	OnQuery(ctx context.Context, ev QueryEvent)
}

// Tracer logs every statement regardless of the root level, warn when slow
func Tracer(root logger.Logger) QueryTracer {
	ll := root.Level(zerolog.DebugLevel).With().Str("component", "pg").Logger()
	return &zlTracer{log: ll}
}

type zlTracer struct{ log logger.Logger }

func (z *zlTracer) OnQuery(_ context.Context, ev QueryEvent) {
	evt := z.log.Info()
	if ev.Slow {
		evt = z.log.Warn()
	}
	evt.Float64("elapsed_ms", float64(ev.ElapsedUS)/1000.0).
		Bool("slow", ev.Slow).
		Str("sql", compact(ev.SQL)).
		Interface("args", clipArgs(ev.Args)).
		Err(ev.Err).
		Msg("pg query")
}

func clipArgs(args []any) []any {
	out := make([]any, len(args))
	for i, a := range args {
		if s, ok := a.(string); ok {
			a = pstrings.TruncateRunes(s, maxArgRunes)
		}
		out[i] = a
	}
	return out
}

// compact folds whitespace runs into single spaces
func compact(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
