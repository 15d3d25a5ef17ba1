package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder accumulates partial configurations from independent sources
// and merges them into one validated StructuredConfig. Source errors are
// collected rather than aborting, so build reports all failures at once.
type configBuilder struct {
	layers []*StructuredConfig
	errs   []error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{}
}

// build merges the collected layers in the order they were added. Merging
// only fills zero-valued fields, so earlier layers take precedence. The
// merged result is validated before being returned.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if err := errors.Join(b.errs...); err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", err)
	}

	merged := new(StructuredConfig)
	for _, layer := range b.layers {
		if err := mergo.Merge(merged, layer); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return merged, merged.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	layer := new(StructuredConfig)
	if err := parseEnv(layer); err != nil {
		b.errs = append(b.errs, err)
		return b
	}

	b.layers = append(b.layers, layer)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	b.layers = append(b.layers, ParseFlags())
	return b
}

// withJSON adds the JSON file layer when any earlier layer supplied a path.
// It must therefore run after withEnv and withFlags.
func (b *configBuilder) withJSON() *configBuilder {
	jsonPath := ""
	for _, layer := range b.layers {
		if layer.JSONFilePath != "" {
			jsonPath = layer.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	layer, err := parseJSON(jsonPath)
	if err != nil {
		b.errs = append(b.errs, err)
		return b
	}

	b.layers = append(b.layers, layer)
	return b
}
