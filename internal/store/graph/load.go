package graph

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/mattbriggs/faqbench/internal/faq"
	"github.com/mattbriggs/faqbench/internal/terms"
)

// ContentID derives a node identity from the question text. Reloading the
// same corpus merges onto the same nodes instead of growing the graph.
func ContentID(question string) string {
	sum := sha256.Sum256([]byte(question))
	return hex.EncodeToString(sum[:])
}

// LoadPairs upserts every pair as a Content node in one batch. Last writer
// wins per content id, so the final graph state matches sequential upserts.
func (s *Store) LoadPairs(ctx context.Context, pairs []faq.Pair) error {
	if len(pairs) == 0 {
		return nil
	}

	session := s.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: s.database})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		_, err := tx.Run(ctx, `
			UNWIND $rows AS faq
			MERGE (c:Content {id: faq.id})
			SET c.question = faq.question, c.answer = faq.answer
		`, map[string]any{"rows": contentRows(pairs)})
		return nil, err
	})
	if err != nil {
		return fmt.Errorf("failed to load %d pairs: %w", len(pairs), err)
	}

	return nil
}

// LinkTerms tokenizes each question with the given strategy and links every
// term node to its content node.
func (s *Store) LinkTerms(ctx context.Context, pairs []faq.Pair, tokenizer terms.Tokenizer) error {
	rows := termRows(pairs, tokenizer)
	if len(rows) == 0 {
		return nil
	}

	session := s.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: s.database})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		_, err := tx.Run(ctx, `
			UNWIND $rows AS row
			MATCH (c:Content {id: row.id})
			UNWIND row.terms AS term
			MERGE (t:Term {name: term})
			MERGE (c)-[:RELATED_TO]->(t)
		`, map[string]any{"rows": rows})
		return nil, err
	})
	if err != nil {
		return fmt.Errorf("failed to link terms: %w", err)
	}

	return nil
}

func contentRows(pairs []faq.Pair) []map[string]any {
	rows := make([]map[string]any, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, map[string]any{
			"id":       ContentID(p.Question),
			"question": p.Question,
			"answer":   p.Answer,
		})
	}
	return rows
}

func termRows(pairs []faq.Pair, tokenizer terms.Tokenizer) []map[string]any {
	rows := make([]map[string]any, 0, len(pairs))
	for _, p := range pairs {
		seen := make(map[string]struct{})
		tokens := make([]string, 0)
		for _, token := range tokenizer.Tokens(p.Question) {
			if token == "" {
				continue
			}
			if _, dup := seen[token]; dup {
				continue
			}
			seen[token] = struct{}{}
			tokens = append(tokens, token)
		}
		if len(tokens) == 0 {
			continue
		}
		rows = append(rows, map[string]any{
			"id":    ContentID(p.Question),
			"terms": tokens,
		})
	}
	return rows
}
