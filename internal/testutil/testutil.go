// Package testutil provides helper functions for testing jreader components
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// SmallJavaSource declares runTask (complexity 1) and Bad_name (complexity
// 0), so half of its methods are not camelCase
var SmallJavaSource = strings.Join([]string{
	"public class Small {",
	"    public void runTask(int x) {",
	"        if (x > 0) {",
	"            x--;",
	"        }",
	"    }",
	"    public void Bad_name() {",
	"        System.out.println(1);",
	"    }",
	"}",
}, "\n") + "\n"

// OtherJavaSource declares processAll with complexity 2
var OtherJavaSource = strings.Join([]string{
	"public class Other {",
	"    public void processAll(int n) {",
	"        for (int i = 0; i < n; i++) {",
	"            if (i > 2) {",
	"                n--;",
	"            }",
	"        }",
	"    }",
	"}",
}, "\n") + "\n"

// WriteSourceTree writes files, keyed by slash-separated relative path,
// under a fresh temp directory and returns that directory
func WriteSourceTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create directory for %s: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", rel, err)
		}
	}
	return root
}

// FixturePath returns the absolute path of a file in the analyzer testdata
func FixturePath(t *testing.T, name string) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to locate testutil source")
	}
	return filepath.Join(filepath.Dir(file), "..", "analyzer", "testdata", name)
}

// ReadFixture returns the content of an analyzer testdata file
func ReadFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(FixturePath(t, name))
	if err != nil {
		t.Fatalf("Failed to read fixture %s: %v", name, err)
	}
	return string(data)
}
