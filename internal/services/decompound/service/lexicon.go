package service

import (
	"context"

	"decompound/internal/core/lexicon"
	"decompound/internal/services/decompound/domain"
)

// LexiconFunc adapts a function to domain.Lexicon
type LexiconFunc func(ctx context.Context) domain.Lookup

// Lookup implements domain.Lexicon
func (f LexiconFunc) Lookup(ctx context.Context) domain.Lookup { return f(ctx) }

type staticLookup struct{ pred lexicon.Predicate }

func (s staticLookup) Valid(word string) bool { return s.pred(word) }
func (staticLookup) Err() error               { return nil }

// Static serves an in-memory predicate that cannot fail
func Static(pred lexicon.Predicate) domain.Lexicon {
	l := staticLookup{pred: pred}
	return LexiconFunc(func(context.Context) domain.Lookup { return l })
}
