// Package vector is the Weaviate retrieval backend: FAQ pairs and whole HTML
// documents are stored with server-side embeddings and queried by nearest
// neighbor search.
package vector

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/weaviate/weaviate-go-client/v4/weaviate"
)

// DefaultQueryLimit caps the candidate answers returned per query.
const DefaultQueryLimit = 3

// Config holds the connection settings for the vector backend. The OpenAI
// key is forwarded to the server for its text2vec-openai vectorizer module;
// no embedding is computed client-side.
type Config struct {
	Host         string `json:"host" validate:"required"`
	Scheme       string `json:"scheme" validate:"required,oneof=http https"`
	OpenAIAPIKey string `json:"-"`
	QueryLimit   int    `json:"query_limit" validate:"gte=1,lte=25"`
}

// Validate checks the config before any connection is attempted.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid vector backend config: %w", err)
	}
	return nil
}

func (c Config) withDefaults() Config {
	if c.Scheme == "" {
		c.Scheme = "http"
	}
	if c.QueryLimit == 0 {
		c.QueryLimit = DefaultQueryLimit
	}
	return c
}

// ConnectionError represents an unreachable or not-ready backend. Fatal for
// the operation that triggered it.
type ConnectionError struct {
	Message string
	Cause   error
}

func (e *ConnectionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("vector backend connection error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("vector backend connection error: %s", e.Message)
}

func (e *ConnectionError) Unwrap() error {
	return e.Cause
}

// Store wraps an explicit client handle owned by the caller.
type Store struct {
	client     *weaviate.Client
	queryLimit int
}

// Connect validates the config, builds a client, and requires the readiness
// endpoint to answer before anything else runs.
func Connect(ctx context.Context, cfg Config) (*Store, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	headers := map[string]string{}
	if cfg.OpenAIAPIKey != "" {
		headers["X-OpenAI-Api-Key"] = cfg.OpenAIAPIKey
	}

	client := weaviate.New(weaviate.Config{
		Host:    cfg.Host,
		Scheme:  cfg.Scheme,
		Headers: headers,
	})

	ready, err := client.Misc().ReadyChecker().Do(ctx)
	if err != nil {
		return nil, &ConnectionError{Message: fmt.Sprintf("readiness check failed for %s://%s", cfg.Scheme, cfg.Host), Cause: err}
	}
	if !ready {
		return nil, &ConnectionError{Message: fmt.Sprintf("backend at %s://%s is not ready", cfg.Scheme, cfg.Host)}
	}

	return &Store{client: client, queryLimit: cfg.QueryLimit}, nil
}
