package main

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunCommand_RejectsUnknownBackend(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "run", "--backend", "sqlite")
	cmd.Dir = t.TempDir()
	cmd.Env = minimalEnv()
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "Backend")
}

func TestRunCommand_MissingInputDirs(t *testing.T) {
	binaryPath := getBinaryPath(t)

	// Defaults point at data/JSONLD and data/HTML, which do not exist in an
	// empty working directory.
	cmd := exec.Command(binaryPath, "run", "--backend", "graph")
	cmd.Dir = t.TempDir()
	cmd.Env = minimalEnv()
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "Error")
}
