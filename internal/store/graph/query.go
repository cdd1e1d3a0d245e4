package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Query returns up to the configured limit of candidate answers whose stored
// question contains the given text, case-insensitive, in backend natural
// order. Read-only; an empty slice means no match.
func (s *Store) Query(ctx context.Context, question string) ([]string, error) {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{
		DatabaseName: s.database,
		AccessMode:   neo4j.AccessModeRead,
	})
	defer session.Close(ctx)

	answers, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, `
			MATCH (c:Content)
			WHERE toLower(c.question) CONTAINS toLower($question)
			RETURN c.answer AS answer
			LIMIT $limit
		`, map[string]any{"question": question, "limit": s.queryLimit})
		if err != nil {
			return nil, err
		}

		records, err := result.Collect(ctx)
		if err != nil {
			return nil, err
		}

		collected := make([]string, 0, len(records))
		for _, record := range records {
			value, found := record.Get("answer")
			if !found {
				continue
			}
			if answer, ok := value.(string); ok {
				collected = append(collected, answer)
			}
		}
		return collected, nil
	})
	if err != nil {
		return nil, fmt.Errorf("graph query failed: %w", err)
	}

	return answers.([]string), nil
}
