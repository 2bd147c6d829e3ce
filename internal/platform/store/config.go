package store

import (
	"time"

	"decompound/internal/platform/config"
)

// Config aggregates per backend configuration
type Config struct {
	AppName string

	PG PGConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	// boot knobs, zero means the defaults below
	ConnectRetries int
	PingTimeout    time.Duration
}

const (
	defaultConnectRetries = 6
	defaultPingTimeout    = 3 * time.Second
)

// Enabled reports whether a postgres URL is configured
func (c PGConfig) Enabled() bool { return c.URL != "" }

func (c PGConfig) retries() int {
	if c.ConnectRetries > 0 {
		return c.ConnectRetries
	}
	return defaultConnectRetries
}

func (c PGConfig) pingTimeout() time.Duration {
	if c.PingTimeout > 0 {
		return c.PingTimeout
	}
	return defaultPingTimeout
}

// FromConf reads the PG section from c, which callers scope with a prefix
// such as DECOMPOUND_PG_. A missing URL leaves postgres disabled
func FromConf(appName string, c config.Conf) Config {
	return Config{
		AppName: appName,
		PG: PGConfig{
			URL:            c.MayString("URL", ""),
			MaxConns:       int32(c.MayInt("MAX_CONNS", 4)),
			LogSQL:         c.MayBool("LOG_SQL", false),
			SlowQueryMs:    c.MayInt("SLOW_MS", 200),
			ConnectRetries: c.MayInt("CONNECT_RETRIES", defaultConnectRetries),
			PingTimeout:    c.MayDuration("PING_TIMEOUT", defaultPingTimeout),
		},
	}
}
