package store

import "time"

// Config aggregates per backend configuration
type Config struct {
	AppName string

	PG     PGConfig
	CH     CHConfig
	NATS   NATSConfig
	RDS    RedisConfig
	Corpus CorpusConfig
}

// CorpusConfig configures the embedded n-gram corpus database
type CorpusConfig struct {
	Enabled      bool
	Path         string
	ReadOnly     bool
	MaxOpenConns int
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	// Guard/boot knobs. openPG does not read these: it always makes up to 20
	// ping attempts with a 3s timeout each and a 150ms..2s backoff
	ConnectRetries int
	PingTimeout    time.Duration
}

// CHConfig configures clickhouse connectivity
type CHConfig struct {
	Enabled bool
	URL     string
}

// NATSConfig configures nats connectivity
type NATSConfig struct {
	Enabled   bool
	URL       string
	JetStream bool
}

// RedisConfig configures redis connectivity
type RedisConfig struct {
	Enabled bool
	Addr    string
	DB      int
}
