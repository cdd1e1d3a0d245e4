package main

import (
	"fmt"

	"github.com/mattbriggs/faqbench/internal/config"
	"github.com/mattbriggs/faqbench/internal/store/graph"
	"github.com/mattbriggs/faqbench/internal/store/vector"
)

// resolveConfig builds the effective configuration: values from the config
// file (when given) take priority over environment variables. Flag overrides
// are applied by each command afterwards, so precedence is flags over file
// over environment.
func resolveConfig(path string) (config.Config, error) {
	var cfg config.Config

	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	return cfg.MergeWithDefaults(config.FromEnv()), nil
}

func graphConfigFrom(cfg config.Config) graph.Config {
	return graph.Config{
		URI:      cfg.Neo4j.URI,
		Username: cfg.Neo4j.Username,
		Password: cfg.Neo4j.Password,
		Database: cfg.Neo4j.Database,
	}
}

func vectorConfigFrom(cfg config.Config) vector.Config {
	return vector.Config{
		Host:         cfg.Weaviate.Host,
		Scheme:       cfg.Weaviate.Scheme,
		OpenAIAPIKey: cfg.Embeddings.OpenAIAPIKey,
	}
}
