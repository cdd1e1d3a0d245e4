package vector

import (
	"context"
	"fmt"

	"github.com/weaviate/weaviate-go-client/v4/weaviate/graphql"
)

// Query returns up to the configured limit of candidate answers from the FAQ
// collection, nearest first. Read-only; an empty slice means no match.
func (s *Store) Query(ctx context.Context, question string) ([]string, error) {
	return s.nearText(ctx, "FAQ", "answer", question)
}

// QueryDocuments returns the text of the nearest HTMLDocument records.
func (s *Store) QueryDocuments(ctx context.Context, question string) ([]string, error) {
	return s.nearText(ctx, "HTMLDocument", "text", question)
}

func (s *Store) nearText(ctx context.Context, class, field, question string) ([]string, error) {
	nearText := s.client.GraphQL().NearTextArgBuilder().WithConcepts([]string{question})

	response, err := s.client.GraphQL().Get().
		WithClassName(class).
		WithFields(graphql.Field{Name: field}).
		WithNearText(nearText).
		WithLimit(s.queryLimit).
		Do(ctx)
	if err != nil {
		return nil, &ConnectionError{Message: fmt.Sprintf("near-text query on %s failed", class), Cause: err}
	}
	if len(response.Errors) > 0 {
		return nil, fmt.Errorf("near-text query on %s returned error: %s", class, response.Errors[0].Message)
	}

	get, ok := response.Data["Get"].(map[string]any)
	if !ok {
		return []string{}, nil
	}
	hits, ok := get[class].([]any)
	if !ok {
		return []string{}, nil
	}

	answers := make([]string, 0, len(hits))
	for _, hit := range hits {
		properties, ok := hit.(map[string]any)
		if !ok {
			continue
		}
		if value, ok := properties[field].(string); ok {
			answers = append(answers, value)
		}
	}

	return answers, nil
}
