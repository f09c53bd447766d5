package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// FixturePath returns the on-disk path of a JSON fixture for the given
// source package, for APIs that take a filename rather than contents.
func FixturePath(t *testing.T, source, name string) string {
	t.Helper()

	// Get path relative to this file
	_, filename, _, _ := runtime.Caller(0)
	baseDir := filepath.Dir(filepath.Dir(filename)) // up to importer/

	return filepath.Join(baseDir, source, "testdata", "fixtures", name+".json")
}

// LoadFixture reads a JSON fixture file for the given source package.
func LoadFixture(t *testing.T, source, name string) []byte {
	t.Helper()

	path := FixturePath(t, source, name)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to load fixture %s/%s: %v", source, name, err)
	}
	return data
}
