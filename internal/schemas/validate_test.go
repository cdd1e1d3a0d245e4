package schemas

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateGoldenFile_Valid(t *testing.T) {
	path := writeTempFile(t, "golden_questions.json", `[
		{"question": "What is the return policy?", "expected_answer": "Returns are accepted within 30 days."},
		{"question": "Do you ship internationally?", "expected_answer": "Yes, to over 40 countries."}
	]`)

	assert.NoError(t, ValidateGoldenFile(path))
}

func TestValidateGoldenFile_EmptyArrayIsValid(t *testing.T) {
	path := writeTempFile(t, "golden_questions.json", `[]`)

	assert.NoError(t, ValidateGoldenFile(path))
}

func TestValidateGoldenFile_MissingExpectedAnswer(t *testing.T) {
	path := writeTempFile(t, "golden_questions.json", `[
		{"question": "What is the return policy?"}
	]`)

	err := ValidateGoldenFile(path)
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, err.Error(), "expected_answer")
}

func TestValidateGoldenFile_EmptyQuestion(t *testing.T) {
	path := writeTempFile(t, "golden_questions.json", `[
		{"question": "", "expected_answer": "Something."}
	]`)

	var validationErr *ValidationError
	require.True(t, errors.As(ValidateGoldenFile(path), &validationErr))
}

func TestValidateGoldenFile_UnknownFieldRejected(t *testing.T) {
	path := writeTempFile(t, "golden_questions.json", `[
		{"question": "Q?", "expected_answer": "A.", "score": 1.0}
	]`)

	var validationErr *ValidationError
	require.True(t, errors.As(ValidateGoldenFile(path), &validationErr))
}

func TestValidateGoldenFile_NotAnArray(t *testing.T) {
	path := writeTempFile(t, "golden_questions.json", `{"question": "Q?", "expected_answer": "A."}`)

	err := ValidateGoldenFile(path)
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, err.Error(), "(root)")
}

func TestValidateGoldenFile_FileNotFound(t *testing.T) {
	err := ValidateGoldenFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read golden file")
}

func TestValidateJSON_FileBased(t *testing.T) {
	schemaPath := writeTempFile(t, "schema.json", `{
		"type": "object",
		"required": ["name"],
		"properties": {"name": {"type": "string"}}
	}`)
	validPath := writeTempFile(t, "valid.json", `{"name": "faq"}`)
	invalidPath := writeTempFile(t, "invalid.json", `{"name": 42}`)

	assert.NoError(t, ValidateJSON(schemaPath, validPath))

	var validationErr *ValidationError
	require.True(t, errors.As(ValidateJSON(schemaPath, invalidPath), &validationErr))
}

func TestValidateJSON_MissingSchemaFile(t *testing.T) {
	jsonPath := writeTempFile(t, "doc.json", `{}`)

	err := ValidateJSON(filepath.Join(t.TempDir(), "nope.schema.json"), jsonPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema file not found")
}

func TestValidateJSONString_MalformedDocument(t *testing.T) {
	err := ValidateJSONString(`{"type": "array"}`, `not json`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	require.True(t, errors.As(err, &loadErr))
}
