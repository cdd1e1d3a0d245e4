// Package graph is the Neo4j retrieval backend: FAQ pairs become Content
// nodes with a Term keyword index, queried by substring containment.
package graph

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// DefaultQueryLimit caps the candidate answers returned per query.
const DefaultQueryLimit = 3

// Config holds the connection settings for the graph backend.
type Config struct {
	URI        string `json:"uri" validate:"required,uri"`
	Username   string `json:"username" validate:"required"`
	Password   string `json:"password" validate:"required"`
	Database   string `json:"database"`
	QueryLimit int    `json:"query_limit" validate:"gte=1,lte=25"`
}

// Validate checks the config before any connection is attempted.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid graph backend config: %w", err)
	}
	return nil
}

func (c Config) withDefaults() Config {
	if c.QueryLimit == 0 {
		c.QueryLimit = DefaultQueryLimit
	}
	return c
}

// ConnectionError represents an unreachable or rejecting backend. It is fatal
// for the operation that triggered it; no retry policy exists.
type ConnectionError struct {
	Message string
	Cause   error
}

func (e *ConnectionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("graph backend connection error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("graph backend connection error: %s", e.Message)
}

func (e *ConnectionError) Unwrap() error {
	return e.Cause
}

// Store wraps an explicit driver handle. Callers own the Store and pass it to
// load/query operations; nothing here is process-global.
type Store struct {
	driver     neo4j.DriverWithContext
	database   string
	queryLimit int
}

// Connect validates the config, opens a driver, and verifies connectivity.
func Connect(ctx context.Context, cfg Config) (*Store, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.Username, cfg.Password, ""))
	if err != nil {
		return nil, &ConnectionError{Message: "failed to create driver", Cause: err}
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, &ConnectionError{Message: fmt.Sprintf("backend unreachable at %s", cfg.URI), Cause: err}
	}

	return &Store{
		driver:     driver,
		database:   cfg.Database,
		queryLimit: cfg.QueryLimit,
	}, nil
}

// Close releases the driver.
func (s *Store) Close(ctx context.Context) error {
	if s.driver != nil {
		return s.driver.Close(ctx)
	}
	return nil
}

// EnsureSchema creates the uniqueness constraints for all node kinds the
// model defines. Safe to call repeatedly.
func (s *Store) EnsureSchema(ctx context.Context) error {
	constraints := []string{
		"CREATE CONSTRAINT content_id_unique IF NOT EXISTS FOR (c:Content) REQUIRE c.id IS UNIQUE",
		"CREATE CONSTRAINT term_name_unique IF NOT EXISTS FOR (t:Term) REQUIRE t.name IS UNIQUE",
		"CREATE CONSTRAINT concept_name_unique IF NOT EXISTS FOR (cn:Concept) REQUIRE cn.name IS UNIQUE",
		"CREATE CONSTRAINT supercategory_name_unique IF NOT EXISTS FOR (sc:SuperCategory) REQUIRE sc.name IS UNIQUE",
	}

	session := s.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: s.database})
	defer session.Close(ctx)

	for _, constraint := range constraints {
		_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
			_, err := tx.Run(ctx, constraint, nil)
			return nil, err
		})
		if err != nil {
			return fmt.Errorf("failed to create constraint: %w", err)
		}
	}

	return nil
}
