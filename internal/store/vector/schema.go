package vector

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/weaviate/weaviate/entities/models"
)

// ClassSchema declares a collection with enumerated fields. The schema sent
// to the backend is built from this struct, never from ad hoc nested maps,
// and is validated before submission.
type ClassSchema struct {
	Class       string           `validate:"required"`
	Description string
	Vectorizer  string           `validate:"required"`
	Properties  []PropertySchema `validate:"required,min=1,dive"`
}

// PropertySchema declares one property of a class.
type PropertySchema struct {
	Name        string `validate:"required"`
	DataType    string `validate:"required,oneof=text int number boolean date"`
	Description string
}

// Validate checks the schema before it is submitted to the backend.
func (s *ClassSchema) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid class schema: %w", err)
	}
	return nil
}

// Model converts the schema into the wire representation.
func (s *ClassSchema) Model() *models.Class {
	properties := make([]*models.Property, 0, len(s.Properties))
	for _, p := range s.Properties {
		properties = append(properties, &models.Property{
			Name:        p.Name,
			DataType:    []string{p.DataType},
			Description: p.Description,
		})
	}
	return &models.Class{
		Class:       s.Class,
		Description: s.Description,
		Vectorizer:  s.Vectorizer,
		Properties:  properties,
	}
}

// FAQSchema is the collection for question/answer pairs.
func FAQSchema() ClassSchema {
	return ClassSchema{
		Class:       "FAQ",
		Description: "Frequently asked questions with their canonical answers",
		Vectorizer:  "text2vec-openai",
		Properties: []PropertySchema{
			{Name: "question", DataType: "text", Description: "The question text"},
			{Name: "answer", DataType: "text", Description: "The canonical answer"},
		},
	}
}

// HTMLDocumentSchema is the collection for whole-page document loads.
func HTMLDocumentSchema() ClassSchema {
	return ClassSchema{
		Class:       "HTMLDocument",
		Description: "Full HTML page text with title and source file",
		Vectorizer:  "text2vec-openai",
		Properties: []PropertySchema{
			{Name: "title", DataType: "text", Description: "The page title"},
			{Name: "text", DataType: "text", Description: "The extracted page text"},
			{Name: "source", DataType: "text", Description: "The source file name"},
		},
	}
}

// EnsureClass creates the class when it does not exist yet. Safe to call
// repeatedly.
func (s *Store) EnsureClass(ctx context.Context, schema ClassSchema) error {
	if err := schema.Validate(); err != nil {
		return err
	}

	exists, err := s.client.Schema().ClassExistenceChecker().WithClassName(schema.Class).Do(ctx)
	if err != nil {
		return &ConnectionError{Message: fmt.Sprintf("failed to check class %s", schema.Class), Cause: err}
	}
	if exists {
		return nil
	}

	if err := s.client.Schema().ClassCreator().WithClass(schema.Model()).Do(ctx); err != nil {
		return fmt.Errorf("failed to create class %s: %w", schema.Class, err)
	}

	return nil
}
