// Package config provides configuration loading and validation for the CLI.
// Precedence is flags over config file over environment defaults; the merge
// helpers here implement the file and environment layers.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config is the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided
// via CLI flags.
type Config struct {
	// Input/output paths
	JSONLDDir  string `json:"jsonld_dir,omitempty"`
	HTMLDir    string `json:"html_dir,omitempty"`
	GoldenFile string `json:"golden_file,omitempty"`

	// Extraction
	Selector     string `json:"selector,omitempty"`
	TermStrategy string `json:"term_strategy,omitempty" validate:"omitempty,oneof=whitespace stopword"`

	// Which retrieval backend to exercise
	Backend string `json:"backend,omitempty" validate:"omitempty,oneof=graph vector"`

	Verbose bool `json:"verbose,omitempty"`

	// Optional run-history store
	DatabaseURL string `json:"database_url,omitempty"`

	Neo4j      Neo4jConfig      `json:"neo4j,omitempty"`
	Weaviate   WeaviateConfig   `json:"weaviate,omitempty"`
	Embeddings EmbeddingsConfig `json:"embeddings,omitempty"`
}

// Neo4jConfig holds graph backend connection settings.
type Neo4jConfig struct {
	URI      string `json:"uri,omitempty" validate:"omitempty,uri"`
	Username string `json:"username,omitempty"`
	Password string `json:"-"`
	Database string `json:"database,omitempty"`
}

// WeaviateConfig holds vector backend connection settings.
type WeaviateConfig struct {
	Host   string `json:"host,omitempty"`
	Scheme string `json:"scheme,omitempty" validate:"omitempty,oneof=http https"`
}

// EmbeddingsConfig selects the provider used by the semantic similarity
// scorer. API keys come from the environment, never the config file.
type EmbeddingsConfig struct {
	Provider      string `json:"provider,omitempty" validate:"omitempty,oneof=openai gemini ollama hash"`
	Model         string `json:"model,omitempty"`
	OpenAIAPIKey  string `json:"-"`
	GeminiAPIKey  string `json:"-"`
	OllamaBaseURL string `json:"ollama_base_url,omitempty"`
	Dimension     int    `json:"dimension,omitempty" validate:"gte=0"`
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv returns the environment-default layer of the configuration.
func FromEnv() Config {
	return Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Neo4j: Neo4jConfig{
			URI:      os.Getenv("NEO4J_URI"),
			Username: os.Getenv("NEO4J_USERNAME"),
			Password: os.Getenv("NEO4J_PASSWORD"),
			Database: os.Getenv("NEO4J_DATABASE"),
		},
		Weaviate: WeaviateConfig{
			Host:   os.Getenv("WEAVIATE_HOST"),
			Scheme: os.Getenv("WEAVIATE_SCHEME"),
		},
		Embeddings: EmbeddingsConfig{
			OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
			GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
			OllamaBaseURL: os.Getenv("OLLAMA_BASE_URL"),
		},
	}
}

// Validate checks that the configuration has valid values. Required fields
// are checked later, after flag merging, by the command that needs them.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.JSONLDDir != "" {
		if _, err := os.Stat(c.JSONLDDir); os.IsNotExist(err) {
			return fmt.Errorf("config error: jsonld_dir not found: %s", c.JSONLDDir)
		}
	}
	if c.HTMLDir != "" {
		if _, err := os.Stat(c.HTMLDir); os.IsNotExist(err) {
			return fmt.Errorf("config error: html_dir not found: %s", c.HTMLDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Used to apply environment values as defaults for config file
// fields, and config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.JSONLDDir == "" {
		result.JSONLDDir = defaults.JSONLDDir
	}
	if result.HTMLDir == "" {
		result.HTMLDir = defaults.HTMLDir
	}
	if result.GoldenFile == "" {
		result.GoldenFile = defaults.GoldenFile
	}
	if result.Selector == "" {
		result.Selector = defaults.Selector
	}
	if result.TermStrategy == "" {
		result.TermStrategy = defaults.TermStrategy
	}
	if result.Backend == "" {
		result.Backend = defaults.Backend
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if result.Neo4j.URI == "" {
		result.Neo4j.URI = defaults.Neo4j.URI
	}
	if result.Neo4j.Username == "" {
		result.Neo4j.Username = defaults.Neo4j.Username
	}
	if result.Neo4j.Password == "" {
		result.Neo4j.Password = defaults.Neo4j.Password
	}
	if result.Neo4j.Database == "" {
		result.Neo4j.Database = defaults.Neo4j.Database
	}

	if result.Weaviate.Host == "" {
		result.Weaviate.Host = defaults.Weaviate.Host
	}
	if result.Weaviate.Scheme == "" {
		result.Weaviate.Scheme = defaults.Weaviate.Scheme
	}

	if result.Embeddings.Provider == "" {
		result.Embeddings.Provider = defaults.Embeddings.Provider
	}
	if result.Embeddings.Model == "" {
		result.Embeddings.Model = defaults.Embeddings.Model
	}
	if result.Embeddings.OpenAIAPIKey == "" {
		result.Embeddings.OpenAIAPIKey = defaults.Embeddings.OpenAIAPIKey
	}
	if result.Embeddings.GeminiAPIKey == "" {
		result.Embeddings.GeminiAPIKey = defaults.Embeddings.GeminiAPIKey
	}
	if result.Embeddings.OllamaBaseURL == "" {
		result.Embeddings.OllamaBaseURL = defaults.Embeddings.OllamaBaseURL
	}
	if result.Embeddings.Dimension == 0 {
		result.Embeddings.Dimension = defaults.Embeddings.Dimension
	}

	// Bool fields cannot distinguish unset from false, so CLI flags always
	// win for those.

	return result
}
