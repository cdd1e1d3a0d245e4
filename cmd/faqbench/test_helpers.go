package main

import (
	"os"
	"path/filepath"
	"testing"
)

// getBinaryPath returns the path to the faqbench binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "faqbench"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'make build'", binaryPath)
	}

	return binaryPath
}

// minimalEnv returns an environment with all faqbench configuration
// variables stripped, so tests exercise flag validation without ambient
// settings leaking in.
func minimalEnv() []string {
	return []string{
		"PATH=" + os.Getenv("PATH"),
		"HOME=" + os.Getenv("HOME"),
	}
}
