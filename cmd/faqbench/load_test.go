package main

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadCommand_FlagsValidation(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{
			name:        "Missing --backend flag",
			args:        []string{"load", "--jsonld", "data/JSONLD", "--html", "data/HTML"},
			errorString: "--backend is required",
		},
		{
			name:        "Missing input directories",
			args:        []string{"load", "--backend", "graph"},
			errorString: "--jsonld and --html are required",
		},
		{
			name:        "Rejects unknown config file",
			args:        []string{"load", "--config", "no_such_config.json"},
			errorString: "failed to load config",
		},
	}

	binaryPath := getBinaryPath(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binaryPath, tt.args...)
			cmd.Dir = t.TempDir()
			cmd.Env = minimalEnv()
			output, err := cmd.CombinedOutput()

			assert.Error(t, err)
			assert.Contains(t, string(output), tt.errorString)
		})
	}
}
