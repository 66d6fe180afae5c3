package main

import (
	"os"
	"path/filepath"
	"testing"
)

// getBinaryPath returns the path to the resume_craft binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "resume_craft"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/resume_craft ./cmd/resume_craft'", binaryPath)
	}

	return binaryPath
}

// useLocalSession points the session flags at a fresh data directory with no
// remote and restores them when the test ends.
func useLocalSession(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	prevConfig, prevDir, prevToken, prevVerbose := configFile, dataDir, userToken, verbose
	t.Cleanup(func() {
		configFile, dataDir, userToken, verbose = prevConfig, prevDir, prevToken, prevVerbose
	})
	configFile, dataDir, userToken, verbose = "", dir, "", false

	t.Setenv("RESUME_TOKEN", "")
	t.Setenv("RESUME_REMOTE", "")
	t.Setenv("RESUME_DEBOUNCE_MS", "")
	return dir
}
