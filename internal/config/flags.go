package config

import (
	"flag"
	"os"
)

// parseServerFlags reads the server command-line flags into a partially
// populated config. A dedicated FlagSet keeps flag parsing re-entrant.
func parseServerFlags() *StructuredConfig {
	fs := flag.NewFlagSet("park-audit-server", flag.ContinueOnError)

	cfg := &StructuredConfig{}
	fs.StringVar(&cfg.Server.HTTPAddress, "a", "", "HTTP listen address (host:port)")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "PostgreSQL connection string")
	fs.StringVar(&cfg.App.TokenSignKey, "k", "", "JWT token signing key")
	fs.DurationVar(&cfg.Server.RequestTimeout, "t", 0, "request timeout")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "path to JSON config file")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "path to JSON config file")

	_ = fs.Parse(os.Args[1:])

	return cfg
}

// parseClientFlags reads the client command-line flags.
func parseClientFlags() *ClientConfig {
	fs := flag.NewFlagSet("park-audit-client", flag.ContinueOnError)

	cfg := &ClientConfig{}
	fs.StringVar(&cfg.Adapter.BaseURL, "s", "", "audit server base URL")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "path to local queue database file")
	fs.DurationVar(&cfg.Workers.SyncInterval, "sync-interval", 0, "periodic sync interval")
	fs.DurationVar(&cfg.Workers.HeartbeatInterval, "heartbeat-interval", 0, "connectivity heartbeat interval")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "path to JSON config file")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "path to JSON config file")

	_ = fs.Parse(os.Args[1:])

	return cfg
}
