package app

import (
	"path/filepath"
	"testing"

	"github.com/ludo-technologies/jreader/domain"
	"github.com/ludo-technologies/jreader/internal/testutil"
)

var javaExt = []string{".java"}

func TestFileHelperCollectSourceFiles(t *testing.T) {
	tempDir := testutil.WriteSourceTree(t, map[string]string{
		"B.java":       "class B {}",
		"A.java":       "class A {}",
		"notes.txt":    "text",
		"A.java.bak":   "backup",
		"sub/C.java":   "class C {}",
		"Readme.JAVA":  "upper case suffix",
		"sub/d/D.java": "class D {}",
	})

	helper := NewFileHelper()

	files, err := helper.CollectSourceFiles(tempDir, false, javaExt, nil)
	if err != nil {
		t.Fatalf("CollectSourceFiles failed: %v", err)
	}

	// Top level only, lexical order
	expected := []string{filepath.Join(tempDir, "A.java"), filepath.Join(tempDir, "B.java")}
	if len(files) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, files)
	}
	for i := range expected {
		if files[i] != expected[i] {
			t.Errorf("Expected %s at %d, got %s", expected[i], i, files[i])
		}
	}
}

func TestFileHelperCollectSourceFiles_Recursive(t *testing.T) {
	tempDir := testutil.WriteSourceTree(t, map[string]string{
		"A.java":       "class A {}",
		"sub/C.java":   "class C {}",
		"sub/d/D.java": "class D {}",
	})

	files, err := NewFileHelper().CollectSourceFiles(tempDir, true, javaExt, nil)
	if err != nil {
		t.Fatalf("CollectSourceFiles failed: %v", err)
	}
	if len(files) != 3 {
		t.Errorf("Expected 3 files, got %d: %v", len(files), files)
	}
}

func TestFileHelperCollectSourceFiles_InvalidDirectory(t *testing.T) {
	helper := NewFileHelper()
	tempDir := testutil.WriteSourceTree(t, map[string]string{"A.java": "class A {}"})
	file := filepath.Join(tempDir, "A.java")

	for _, dir := range []string{"", "   ", filepath.Join(tempDir, "missing"), file} {
		_, err := helper.CollectSourceFiles(dir, false, javaExt, nil)
		if err == nil {
			t.Errorf("Expected error for %q", dir)
			continue
		}
		if !domain.HasCode(err, domain.ErrCodeInvalidInput) {
			t.Errorf("Expected INVALID_INPUT for %q, got %v", dir, err)
		}
	}
}

func TestFileHelperCollectSourceFiles_EmptyDirectory(t *testing.T) {
	files, err := NewFileHelper().CollectSourceFiles(t.TempDir(), false, javaExt, nil)
	if err != nil {
		t.Fatalf("CollectSourceFiles failed: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("Expected no files, got %v", files)
	}
}

func TestFileHelperExcludePatterns(t *testing.T) {
	tempDir := testutil.WriteSourceTree(t, map[string]string{
		"src/App.java":            "class App {}",
		"build/Gen.java":          "class Gen {}",
		"target/classes/Out.java": "class Out {}",
		"src/AppTest.java":        "class AppTest {}",
		"src/generated/Stub.java": "class Stub {}",
	})

	excludePatterns := []string{"build/", "target", "*Test.java", "generated/"}
	files, err := NewFileHelper().CollectSourceFiles(tempDir, true, javaExt, excludePatterns)
	if err != nil {
		t.Fatalf("CollectSourceFiles failed: %v", err)
	}

	if len(files) != 1 || filepath.Base(files[0]) != "App.java" {
		t.Errorf("Expected only App.java, got %v", files)
	}
}

func TestFileHelperGitignore(t *testing.T) {
	tempDir := testutil.WriteSourceTree(t, map[string]string{
		".gitignore":   "Ignored.java\nout/\n",
		"Kept.java":    "class Kept {}",
		"Ignored.java": "class Ignored {}",
		"out/X.java":   "class X {}",
	})

	files, err := NewFileHelper().CollectSourceFiles(tempDir, true, javaExt, nil)
	if err != nil {
		t.Fatalf("CollectSourceFiles failed: %v", err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "Kept.java" {
		t.Errorf("Expected only Kept.java, got %v", files)
	}

	helper := &FileHelper{RespectGitignore: false}
	files, err = helper.CollectSourceFiles(tempDir, true, javaExt, nil)
	if err != nil {
		t.Fatalf("CollectSourceFiles failed: %v", err)
	}
	if len(files) != 3 {
		t.Errorf("Expected 3 files with .gitignore disabled, got %v", files)
	}
}

func TestFileHelperIsSourceFile(t *testing.T) {
	helper := NewFileHelper()

	tests := []struct {
		path       string
		extensions []string
		expected   bool
	}{
		{"Test.java", javaExt, true},
		{"dir/Test.java", javaExt, true},
		{"Test.JAVA", javaExt, false},
		{"Test.java.orig", javaExt, false},
		{"Test.kt", javaExt, false},
		{"Test.kt", []string{".java", ".kt"}, true},
		{"Test.java", nil, false},
		{"Test.java", []string{""}, false},
	}

	for _, tt := range tests {
		result := helper.IsSourceFile(tt.path, tt.extensions)
		if result != tt.expected {
			t.Errorf("IsSourceFile(%s, %v) = %v, expected %v", tt.path, tt.extensions, result, tt.expected)
		}
	}
}

func TestFileHelperFileExists(t *testing.T) {
	helper := NewFileHelper()
	tempDir := testutil.WriteSourceTree(t, map[string]string{"A.java": "class A {}"})

	exists, err := helper.FileExists(filepath.Join(tempDir, "A.java"))
	if err != nil {
		t.Fatalf("FileExists failed: %v", err)
	}
	if !exists {
		t.Error("Expected file to exist")
	}

	exists, err = helper.FileExists("/nonexistent/file.java")
	if err != nil {
		t.Fatalf("FileExists failed: %v", err)
	}
	if exists {
		t.Error("Expected file to not exist")
	}

	exists, _ = helper.FileExists(tempDir)
	if exists {
		t.Error("A directory is not a file")
	}
}

func TestFileHelperReadContent(t *testing.T) {
	tempDir := testutil.WriteSourceTree(t, map[string]string{
		"unix.java":    "a\nb\n",
		"windows.java": "a\r\nb\r\n",
		"classic.java": "a\rb",
		"noeol.java":   "a\nb",
		"empty.java":   "",
		"blanks.java":  "a\n\n\nb",
	})

	tests := map[string]string{
		"unix.java":    "a\nb\n",
		"windows.java": "a\nb\n",
		"classic.java": "a\nb\n",
		"noeol.java":   "a\nb\n",
		"empty.java":   "",
		"blanks.java":  "a\n\n\nb\n",
	}

	helper := NewFileHelper()
	for name, expected := range tests {
		content, err := helper.ReadContent(filepath.Join(tempDir, name))
		if err != nil {
			t.Fatalf("ReadContent(%s) failed: %v", name, err)
		}
		if content != expected {
			t.Errorf("ReadContent(%s) = %q, expected %q", name, content, expected)
		}
	}
}

func TestFileHelperReadContent_Missing(t *testing.T) {
	_, err := NewFileHelper().ReadContent(filepath.Join(t.TempDir(), "Missing.java"))
	if !domain.HasCode(err, domain.ErrCodeFileNotFound) {
		t.Errorf("Expected FILE_NOT_FOUND, got %v", err)
	}
}

func TestResolveFilePaths(t *testing.T) {
	tempDir := testutil.WriteSourceTree(t, map[string]string{
		"A.java":    "class A {}",
		"notes.txt": "text",
	})
	helper := NewFileHelper()

	files, err := ResolveFilePaths(helper, filepath.Join(tempDir, "A.java"), false, javaExt, nil)
	if err != nil {
		t.Fatalf("ResolveFilePaths failed: %v", err)
	}
	if len(files) != 1 {
		t.Errorf("Expected 1 file, got %d", len(files))
	}

	files, err = ResolveFilePaths(helper, tempDir, false, javaExt, nil)
	if err != nil {
		t.Fatalf("ResolveFilePaths failed: %v", err)
	}
	if len(files) != 1 {
		t.Errorf("Expected 1 file, got %d", len(files))
	}

	_, err = ResolveFilePaths(helper, filepath.Join(tempDir, "notes.txt"), false, javaExt, nil)
	if !domain.HasCode(err, domain.ErrCodeInvalidInput) {
		t.Errorf("Expected INVALID_INPUT for a non source file, got %v", err)
	}
}
