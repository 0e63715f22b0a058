package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder accumulates configuration layers in precedence order.
// Merging fills only fields still at their zero value, so the earliest
// layer that sets a field wins.
type configBuilder struct {
	layers []*Config
	err    error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{layers: make([]*Config, 0, 3)}
}

func (b *configBuilder) withOverrides(overrides Config) *configBuilder {
	b.layers = append(b.layers, &overrides)
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &Config{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.layers = append(b.layers, envCfg)
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	defaults := Default()
	b.layers = append(b.layers, &defaults)
	return b
}

func (b *configBuilder) build() (*Config, error) {
	if b.err != nil {
		return nil, fmt.Errorf("build config: %w", b.err)
	}

	cfg := new(Config)
	for _, layer := range b.layers {
		if err := mergo.Merge(cfg, layer); err != nil {
			return nil, fmt.Errorf("merge config layers: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
