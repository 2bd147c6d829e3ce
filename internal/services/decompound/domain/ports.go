package domain

import "context"

// Lookup is the membership test for one request. Err reports the first
// backend failure seen while answering, nil for in-memory lexicons
type Lookup interface {
	Valid(word string) bool
	Err() error
}

// Lexicon hands out a Lookup bound to ctx
type Lexicon interface {
	Lookup(ctx context.Context) Lookup
}

// ServicePort defines the service contract for decompounding
type ServicePort interface {
	Decompose(ctx context.Context, in Request) (Result, error)
	DecomposeBatch(ctx context.Context, in BatchRequest) (BatchResult, error)
}
