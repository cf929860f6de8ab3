package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects configuration layers in priority order and merges
// them into one StructuredConfig. Later layers only fill fields the earlier
// ones left at their zero value (mergo's non-override merge), so environment
// variables win over flags, and flags over the JSON file.
type configBuilder struct {
	layers []*StructuredConfig
	err    error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		layers: make([]*StructuredConfig, 0, 3),
	}
}

func (b *configBuilder) add(layer *StructuredConfig) *configBuilder {
	b.layers = append(b.layers, layer)
	return b
}

// withEnv collects the deployment contract's environment surface (PORT,
// NODE_ENV, JWT_SECRET, VERCEL_*, FRONTEND_URL, RATE_LIMIT_*, CONFIG).
func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	return b.add(envCfg)
}

// withFlags collects the command-line overrides.
func (b *configBuilder) withFlags() *configBuilder {
	return b.add(ParseFlags())
}

// withJSON collects the optional JSON file layer. The file path is resolved
// from the layers gathered so far (the CONFIG env var or the -c/-config
// flag, whichever came last); when none of them name a file, the layer is
// skipped entirely.
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, layer := range b.layers {
		if layer.JSONFilePath != "" {
			jsonPath = layer.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	return b.add(jsonCfg)
}

// build merges the collected layers and validates the result.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error collecting config sources: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, layer := range b.layers {
		if err := mergo.Merge(config, layer); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}
