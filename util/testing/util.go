package testing_util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func MkdirTemp(t *testing.T, prefix string) (path string, cleanup func()) {
	out, err := os.MkdirTemp(os.TempDir(), prefix)
	if err != nil {
		t.Fatalf("failed to create temporary directory: %v", err)
	}

	if err := os.Chmod(out, 0o777); err != nil {
		t.Fatalf("failed to make temporary directory accessible: %s", err)
	}

	return out, func() {
		os.RemoveAll(out)
	}
}

// WriteLines writes one line per entry to dir/name and returns the file path.
func WriteLines(t *testing.T, dir, name string, lines ...string) string {
	path := filepath.Join(dir, name)
	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %q: %v", path, err)
	}

	return path
}
