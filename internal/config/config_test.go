package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_FullFile(t *testing.T) {
	path := writeConfig(t, `{
		"jsonld_dir": "/data/JSONLD",
		"html_dir": "/data/HTML",
		"golden_file": "golden_questions.json",
		"backend": "graph",
		"term_strategy": "stopword",
		"neo4j": {"uri": "bolt://localhost:7687", "username": "neo4j"},
		"weaviate": {"host": "localhost:8080", "scheme": "http"},
		"embeddings": {"provider": "openai", "model": "text-embedding-3-small"}
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/JSONLD", cfg.JSONLDDir)
	assert.Equal(t, "graph", cfg.Backend)
	assert.Equal(t, "stopword", cfg.TermStrategy)
	assert.Equal(t, "bolt://localhost:7687", cfg.Neo4j.URI)
	assert.Equal(t, "localhost:8080", cfg.Weaviate.Host)
	assert.Equal(t, "openai", cfg.Embeddings.Provider)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	require.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, "{ not json")
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestValidate_RejectsUnknownBackend(t *testing.T) {
	cfg := Config{Backend: "elasticsearch"}
	require.Error(t, cfg.Validate())
}

func TestValidate_RejectsUnknownTermStrategy(t *testing.T) {
	cfg := Config{TermStrategy: "lemmatize"}
	require.Error(t, cfg.Validate())
}

func TestValidate_RejectsUnknownEmbeddingsProvider(t *testing.T) {
	cfg := Config{Embeddings: EmbeddingsConfig{Provider: "bert"}}
	require.Error(t, cfg.Validate())
}

func TestValidate_RejectsMissingInputDirs(t *testing.T) {
	cfg := Config{JSONLDDir: filepath.Join(t.TempDir(), "nope")}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jsonld_dir not found")
}

func TestValidate_EmptyConfigIsValid(t *testing.T) {
	cfg := Config{}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_CompleteConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		JSONLDDir:    dir,
		Backend:      "vector",
		TermStrategy: "whitespace",
		Weaviate:     WeaviateConfig{Host: "localhost:8080", Scheme: "http"},
		Embeddings:   EmbeddingsConfig{Provider: "hash", Dimension: 64},
	}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults_EmptyFieldsFilled(t *testing.T) {
	cfg := Config{Backend: "graph"}
	defaults := Config{
		Backend:    "vector",
		GoldenFile: "golden_questions.json",
		Neo4j:      Neo4jConfig{URI: "bolt://localhost:7687", Username: "neo4j", Password: "secret"},
		Embeddings: EmbeddingsConfig{Provider: "openai", OpenAIAPIKey: "sk-test"},
	}

	merged := cfg.MergeWithDefaults(defaults)
	assert.Equal(t, "graph", merged.Backend) // existing value wins
	assert.Equal(t, "golden_questions.json", merged.GoldenFile)
	assert.Equal(t, "bolt://localhost:7687", merged.Neo4j.URI)
	assert.Equal(t, "secret", merged.Neo4j.Password)
	assert.Equal(t, "sk-test", merged.Embeddings.OpenAIAPIKey)
}

func TestMergeWithDefaults_DoesNotOverwriteSetFields(t *testing.T) {
	cfg := Config{
		Neo4j:      Neo4jConfig{URI: "bolt://db.internal:7687"},
		Embeddings: EmbeddingsConfig{Provider: "ollama", OllamaBaseURL: "http://localhost:11434"},
	}
	defaults := Config{
		Neo4j:      Neo4jConfig{URI: "bolt://localhost:7687"},
		Embeddings: EmbeddingsConfig{Provider: "openai"},
	}

	merged := cfg.MergeWithDefaults(defaults)
	assert.Equal(t, "bolt://db.internal:7687", merged.Neo4j.URI)
	assert.Equal(t, "ollama", merged.Embeddings.Provider)
}

func TestFromEnv_ReadsBackendVariables(t *testing.T) {
	t.Setenv("NEO4J_URI", "bolt://envhost:7687")
	t.Setenv("NEO4J_USERNAME", "neo4j")
	t.Setenv("NEO4J_PASSWORD", "envpass")
	t.Setenv("WEAVIATE_HOST", "envhost:8080")
	t.Setenv("WEAVIATE_SCHEME", "https")
	t.Setenv("OPENAI_API_KEY", "sk-env")
	t.Setenv("DATABASE_URL", "postgres://localhost/faqbench")

	cfg := FromEnv()
	assert.Equal(t, "bolt://envhost:7687", cfg.Neo4j.URI)
	assert.Equal(t, "envpass", cfg.Neo4j.Password)
	assert.Equal(t, "envhost:8080", cfg.Weaviate.Host)
	assert.Equal(t, "https", cfg.Weaviate.Scheme)
	assert.Equal(t, "sk-env", cfg.Embeddings.OpenAIAPIKey)
	assert.Equal(t, "postgres://localhost/faqbench", cfg.DatabaseURL)
}

func TestConfigJSON_SecretsNeverSerialized(t *testing.T) {
	cfg := Config{
		Neo4j:      Neo4jConfig{URI: "bolt://localhost:7687", Password: "hunter2"},
		Embeddings: EmbeddingsConfig{OpenAIAPIKey: "sk-hunter2", GeminiAPIKey: "g-hunter2"},
	}

	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hunter2")
}
