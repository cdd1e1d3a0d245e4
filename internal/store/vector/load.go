package vector

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	"github.com/weaviate/weaviate/entities/models"

	"github.com/mattbriggs/faqbench/internal/faq"
)

var idNamespace = uuid.NewSHA1(uuid.NameSpaceDNS, []byte("faqbench.local"))

// ObjectID derives a deterministic object identity from the class name and
// the object's natural key, so re-running a load upserts in place instead of
// inserting duplicates.
func ObjectID(class string, key ...string) strfmt.UUID {
	joined := strings.Join(append([]string{class}, key...), "\x00")
	return strfmt.UUID(uuid.NewSHA1(idNamespace, []byte(joined)).String())
}

// Document is one whole-page record for the HTMLDocument collection.
type Document struct {
	Title  string `json:"title"`
	Text   string `json:"text"`
	Source string `json:"source"`
}

// LoadPairs batch-upserts pairs into the FAQ collection. Identity is the
// question text; the batch end state equals sequential upserts.
func (s *Store) LoadPairs(ctx context.Context, pairs []faq.Pair) error {
	if len(pairs) == 0 {
		return nil
	}

	objects := make([]*models.Object, 0, len(pairs))
	for _, p := range pairs {
		objects = append(objects, &models.Object{
			Class: "FAQ",
			ID:    ObjectID("FAQ", p.Question),
			Properties: map[string]any{
				"question": p.Question,
				"answer":   p.Answer,
			},
		})
	}

	return s.batchUpsert(ctx, objects)
}

// LoadDocuments batch-upserts whole-page documents into the HTMLDocument
// collection. Identity is source file plus title.
func (s *Store) LoadDocuments(ctx context.Context, docs []Document) error {
	if len(docs) == 0 {
		return nil
	}

	objects := make([]*models.Object, 0, len(docs))
	for _, doc := range docs {
		objects = append(objects, &models.Object{
			Class: "HTMLDocument",
			ID:    ObjectID("HTMLDocument", doc.Source, doc.Title),
			Properties: map[string]any{
				"title":  doc.Title,
				"text":   doc.Text,
				"source": doc.Source,
			},
		})
	}

	return s.batchUpsert(ctx, objects)
}

func (s *Store) batchUpsert(ctx context.Context, objects []*models.Object) error {
	responses, err := s.client.Batch().ObjectsBatcher().WithObjects(objects...).Do(ctx)
	if err != nil {
		return &ConnectionError{Message: fmt.Sprintf("batch upsert of %d objects failed", len(objects)), Cause: err}
	}

	for _, response := range responses {
		if response.Result == nil || response.Result.Errors == nil {
			continue
		}
		for _, objErr := range response.Result.Errors.Error {
			if objErr != nil {
				return fmt.Errorf("failed to upsert object %s: %s", response.ID, objErr.Message)
			}
		}
	}

	return nil
}
