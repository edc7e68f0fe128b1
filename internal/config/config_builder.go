package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder accumulates partially populated configs from the individual
// sources and merges them into one value. The same builder serves both the
// server and the client config types.
type configBuilder[T any] struct {
	configs []*T
	err     error
}

func newConfigBuilder[T any]() *configBuilder[T] {
	return &configBuilder[T]{
		configs: make([]*T, 0, 4),
	}
}

func (b *configBuilder[T]) build() (*T, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(T)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, nil
}

func (b *configBuilder[T]) withEnv() *configBuilder[T] {
	envCfg := new(T)
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder[T]) with(cfg *T) *configBuilder[T] {
	b.configs = append(b.configs, cfg)
	return b
}

func (b *configBuilder[T]) withJSON(path func(*T) string) *configBuilder[T] {
	var jsonPath string
	for _, cfg := range b.configs {
		if p := path(cfg); p != "" {
			jsonPath = p
		}
	}

	if jsonPath != "" {
		jsonCfg, err := parseJSON[T](jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}
