// Package config handles application configuration via environment variables
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"decompound/internal/platform/logger"
	pstrings "decompound/internal/platform/strings"
)

// Conf is a namespaced view over environment variables (e.g., "DECOMPOUND_", "API_").
// Use New() for global access, or Prefix("API_") for module scopes
type Conf struct{ prefix string }

// New creates a root Conf (no prefix)
func New() Conf { return Conf{} }

// Prefix creates a child Conf with an additional prefix, e.g. cfg.Prefix("PG_")
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// key composes the fully-qualified env var name
func (c Conf) key(k string) string { return c.prefix + k }

// val returns the trimmed value of key and the full env name
func (c Conf) val(key string) (string, string) {
	k := c.key(key)
	return strings.TrimSpace(os.Getenv(k)), k
}

// MayPort returns a net/http addr like ":8080" after validating 1..65535.
// def applies when the key is empty; an invalid port panics
func (c Conf) MayPort(key, def string) string {
	s, k := c.val(key)
	if s == "" {
		return ":" + def
	}
	if !validPort(s) {
		logger.Get().Panic().Str("key", k).Str("value", s).Msg("invalid TCP port; expected 1..65535")
	}
	return ":" + s
}

func validPort(s string) bool {
	p, err := strconv.Atoi(s)
	return err == nil && p >= 1 && p <= 65535
}

// MayString returns the value or def if missing/empty
func (c Conf) MayString(key, def string) string {
	if v, _ := c.val(key); v != "" {
		return v
	}
	return def
}

// MayInt returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayInt(key string, def int) int {
	s, k := c.val(key)
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	logger.Get().Warn().Str("key", k).Str("value", s).Int("default", def).Msg("invalid int; using default")
	return def
}

// MayBool returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayBool(key string, def bool) bool {
	s, k := c.val(key)
	if s == "" {
		return def
	}
	if v, err := strconv.ParseBool(s); err == nil {
		return v
	}
	logger.Get().Warn().Str("key", k).Str("value", s).Bool("default", def).Msg("invalid bool; using default")
	return def
}

// MayDuration returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	s, k := c.val(key)
	if s == "" {
		return def
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	logger.Get().Warn().Str("key", k).Str("value", s).Dur("default", def).Msg("invalid duration; using default")
	return def
}

// MayCSV splits a comma-separated value, dropping empty items; def if nothing remains
func (c Conf) MayCSV(key string, def []string) []string {
	s, _ := c.val(key)
	return pstrings.IfEmpty(pstrings.NonBlank(strings.Split(s, ",")), def)
}

// MayEnum returns the matching allowed value (in its allowed spelling), def if
// empty, and panics otherwise
func (c Conf) MayEnum(key, def string, allowed ...string) string {
	v := c.MayString(key, def)
	if v == "" {
		return ""
	}
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return strings.ToLower(a)
		}
	}
	logger.Get().Panic().Str("key", c.key(key)).Str("value", v).Strs("allowed", allowed).Msg("invalid enum value")
	return ""
}
