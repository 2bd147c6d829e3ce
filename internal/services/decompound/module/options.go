package module

import (
	"decompound/internal/platform/config"
)

// Source names where the lexicon comes from
type Source string

const (
	SourceStdin Source = "stdin"
	SourceFile  Source = "file"
	SourcePG    Source = "pg"
)

// PG access modes: load reads the table once, lookup queries per word
const (
	PGModeLoad   = "load"
	PGModeLookup = "lookup"
)

// LexiconConfig selects and locates the lexicon
type LexiconConfig struct {
	Source Source
	Path   string
	Table  string
	Column string
	PGMode string
}

// LexiconConfigFrom reads DECOMPOUND_LEXICON_* style keys from c. def is the
// source used when none is configured
func LexiconConfigFrom(c config.Conf, def Source) LexiconConfig {
	return LexiconConfig{
		Source: Source(c.MayEnum("SOURCE", string(def), string(SourceStdin), string(SourceFile), string(SourcePG))),
		Path:   c.MayString("PATH", ""),
		Table:  c.MayString("TABLE", "lexicon"),
		Column: c.MayString("COLUMN", "word"),
		PGMode: c.MayEnum("PG_MODE", PGModeLoad, PGModeLoad, PGModeLookup),
	}
}

// Live reports whether lookups go to postgres per word instead of an
// in-memory set
func (c LexiconConfig) Live() bool {
	return c.Source == SourcePG && c.PGMode == PGModeLookup
}
