package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// parseJSON reads the configuration file at path into a fresh *T.
func parseJSON[T any](path string) (*T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	cfg := new(T)
	if err = json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error decoding config file %s: %w", path, err)
	}

	return cfg, nil
}
