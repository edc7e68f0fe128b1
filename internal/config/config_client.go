package config

import "time"

// ClientConfig is the top-level configuration container for the field-agent
// client.
type ClientConfig struct {
	// Adapter holds the connection settings for the remote audit API.
	Adapter AdapterConfig `envPrefix:"ADAPTER_"`

	// Storage holds the on-device SQLite settings for the durable queue.
	Storage ClientStorage `envPrefix:"STORAGE_"`

	// Workers holds intervals for the background sync, heartbeat, and
	// retention jobs.
	Workers WorkersConfig `envPrefix:"WORKERS_"`

	// Agent optionally holds credentials for non-interactive login.
	Agent AgentConfig `envPrefix:"AGENT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	JSONFilePath string `env:"CONFIG" json:"-"`
}

// AdapterConfig holds the remote API endpoint settings.
type AdapterConfig struct {
	// BaseURL of the audit server (e.g. "https://audit.example.com").
	// Env: ADAPTER_SERVER_URL
	BaseURL string `env:"SERVER_URL" json:"base_url"`

	// Timeout bounds a single outbound request. One sync pass performs one
	// request per pending record, so this also bounds how long a single
	// record can hold up the drain loop.
	// Env: ADAPTER_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT" json:"timeout"`
}

// ClientStorage groups the client persistence settings.
type ClientStorage struct {
	DB ClientDB `envPrefix:"DB_"`
}

// ClientDB holds the SQLite file location of the durable queue.
type ClientDB struct {
	// DSN is the path to the SQLite database file.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN" json:"dsn"`
}

// WorkersConfig holds intervals for the client background jobs.
type WorkersConfig struct {
	// SyncInterval is how often the periodic sync pass runs in addition to
	// connectivity-restored and manual triggers.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL" json:"sync_interval"`

	// HeartbeatInterval is how often the connectivity monitor probes the
	// server to validate reachability.
	// Env: WORKERS_HEARTBEAT_INTERVAL
	HeartbeatInterval time.Duration `env:"HEARTBEAT_INTERVAL" json:"heartbeat_interval"`

	// RetentionAge is how long already-synced records are kept in the local
	// queue before compaction removes them.
	// Env: WORKERS_RETENTION_AGE
	RetentionAge time.Duration `env:"RETENTION_AGE" json:"retention_age"`

	// RetentionInterval is how often the compaction pass runs.
	// Env: WORKERS_RETENTION_INTERVAL
	RetentionInterval time.Duration `env:"RETENTION_INTERVAL" json:"retention_interval"`
}

// AgentConfig holds optional non-interactive credentials.
type AgentConfig struct {
	// Env: AGENT_LOGIN
	Login string `env:"LOGIN" json:"login"`
	// Env: AGENT_PASSWORD
	Password string `env:"PASSWORD" json:"password"`
	// Env: AGENT_NAME
	Name string `env:"NAME" json:"name"`
}

// GetClientConfig loads, merges, and validates the client configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder[ClientConfig]().
		withEnv().
		with(parseClientFlags()).
		withJSON(func(c *ClientConfig) string { return c.JSONFilePath }).
		build()
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *ClientConfig) applyDefaults() {
	if c.Adapter.BaseURL == "" {
		c.Adapter.BaseURL = "http://localhost:8080"
	}
	if c.Adapter.Timeout <= 0 {
		c.Adapter.Timeout = 15 * time.Second
	}
	if c.Storage.DB.DSN == "" {
		c.Storage.DB.DSN = "park-audit.db"
	}
	if c.Workers.SyncInterval <= 0 {
		c.Workers.SyncInterval = 2 * time.Minute
	}
	if c.Workers.HeartbeatInterval <= 0 {
		c.Workers.HeartbeatInterval = 30 * time.Second
	}
	if c.Workers.RetentionAge <= 0 {
		c.Workers.RetentionAge = 7 * 24 * time.Hour
	}
	if c.Workers.RetentionInterval <= 0 {
		c.Workers.RetentionInterval = time.Hour
	}
}
