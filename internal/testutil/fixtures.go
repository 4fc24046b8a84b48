package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// LoadFixture reads a recorded API response from testdata/fixtures.
func LoadFixture(t *testing.T, name string) []byte {
	t.Helper()

	// Get path relative to this file
	_, filename, _, _ := runtime.Caller(0)
	baseDir := filepath.Dir(filepath.Dir(filepath.Dir(filename))) // up to module root

	path := filepath.Join(baseDir, "testdata", "fixtures", name)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to load fixture %s: %v", name, err)
	}

	return data
}
