package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalCommand_RequiresBackend(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "eval", "--golden", "golden_questions.json")
	cmd.Dir = t.TempDir()
	cmd.Env = minimalEnv()
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "--backend is required")
}

func TestEvalCommand_RequiresGoldenFile(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "eval", "--backend", "graph")
	cmd.Dir = t.TempDir()
	cmd.Env = minimalEnv()
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "--golden is required")
}

func TestEvalCommand_DocumentCollectionNeedsVectorBackend(t *testing.T) {
	binaryPath := getBinaryPath(t)

	dir := t.TempDir()
	goldenFile := filepath.Join(dir, "golden_questions.json")
	require.NoError(t, os.WriteFile(goldenFile, []byte(`[{"question": "Q?", "expected_answer": "A."}]`), 0644))

	cmd := exec.Command(binaryPath, "eval", "--backend", "graph", "--collection", "document", "--golden", goldenFile)
	cmd.Dir = dir
	cmd.Env = minimalEnv()
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "requires the vector backend")
}

func TestEvalCommand_RejectsInvalidGoldenFile(t *testing.T) {
	binaryPath := getBinaryPath(t)

	dir := t.TempDir()
	goldenFile := filepath.Join(dir, "golden_questions.json")
	require.NoError(t, os.WriteFile(goldenFile, []byte(`[{"question": "Q?"}]`), 0644))

	cmd := exec.Command(binaryPath, "eval", "--backend", "graph", "--golden", goldenFile)
	cmd.Dir = dir
	cmd.Env = minimalEnv()
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "schema validation")
}
