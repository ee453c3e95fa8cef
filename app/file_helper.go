package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/ludo-technologies/jreader/domain"
	"github.com/ludo-technologies/jreader/internal/constants"
)

// FileHelper lists and reads source files
type FileHelper struct {
	// RespectGitignore skips paths matched by the .gitignore at the root
	// of the listed directory
	RespectGitignore bool
}

// NewFileHelper creates a new FileHelper honoring .gitignore
func NewFileHelper() *FileHelper {
	return &FileHelper{RespectGitignore: true}
}

// CollectSourceFiles lists the files of dir whose name ends with one of
// extensions. Only the top level is listed unless recursive is set.
// Entries come back in lexical order.
func (h *FileHelper) CollectSourceFiles(dir string, recursive bool, extensions, excludePatterns []string) ([]string, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, domain.NewInvalidInputError("directory path cannot be empty", nil)
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("cannot access directory: %s", dir), err)
	}
	if !info.IsDir() {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("not a directory: %s", dir), nil)
	}

	matchers, err := h.ignoreMatchers(dir, excludePatterns)
	if err != nil {
		return nil, err
	}
	ignored := func(rel string) bool {
		for _, m := range matchers {
			if m.MatchesPath(rel) {
				return true
			}
		}
		return false
	}

	var files []string
	if !recursive {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, domain.NewInvalidInputError(fmt.Sprintf("cannot list directory: %s", dir), err)
		}
		for _, entry := range entries {
			if entry.IsDir() || !h.IsSourceFile(entry.Name(), extensions) || ignored(entry.Name()) {
				continue
			}
			files = append(files, filepath.Join(dir, entry.Name()))
		}
		return files, nil
	}

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == dir {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			// A trailing slash lets "build/" patterns match the directory itself
			if ignored(rel + "/") {
				return filepath.SkipDir
			}
			return nil
		}
		if h.IsSourceFile(path, extensions) && !ignored(rel) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("cannot walk directory: %s", dir), err)
	}

	return files, nil
}

// ignoreMatchers compiles the exclude patterns and, when enabled, the
// .gitignore of dir
func (h *FileHelper) ignoreMatchers(dir string, excludePatterns []string) ([]*ignore.GitIgnore, error) {
	var matchers []*ignore.GitIgnore

	if len(excludePatterns) > 0 {
		matchers = append(matchers, ignore.CompileIgnoreLines(excludePatterns...))
	}

	if h.RespectGitignore {
		path := filepath.Join(dir, constants.GitignoreFile)
		if _, err := os.Stat(path); err == nil {
			gi, err := ignore.CompileIgnoreFile(path)
			if err != nil {
				return nil, domain.NewInvalidInputError(fmt.Sprintf("cannot read %s", path), err)
			}
			matchers = append(matchers, gi)
		}
	}

	return matchers, nil
}

// ReadContent reads a file as text. "\r\n" and "\r" become "\n" and the
// last line is newline terminated.
func (h *FileHelper) ReadContent(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", domain.NewFileNotFoundError(path, err)
		}
		return "", domain.NewAnalysisError(fmt.Sprintf("failed to read %s", path), err)
	}

	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return content, nil
}

// IsSourceFile checks the file name against extensions, case-sensitively
func (h *FileHelper) IsSourceFile(path string, extensions []string) bool {
	name := filepath.Base(path)
	for _, ext := range extensions {
		if ext != "" && strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// FileExists checks if a regular file exists
func (h *FileHelper) FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}

// ResolveFilePaths returns target itself when it is a source file,
// otherwise the source files collected from the target directory
func ResolveFilePaths(
	reader domain.SourceFileReader,
	target string,
	recursive bool,
	extensions []string,
	excludePatterns []string,
) ([]string, error) {
	exists, err := reader.FileExists(target)
	if err == nil && exists {
		if !reader.IsSourceFile(target, extensions) {
			return nil, domain.NewInvalidInputError(
				fmt.Sprintf("not a source file (extensions %s): %s", strings.Join(extensions, ", "), target), nil)
		}
		return []string{target}, nil
	}

	return reader.CollectSourceFiles(target, recursive, extensions, excludePatterns)
}
