package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/ludo-technologies/jreader/internal/constants"
)

// LoadDotEnv loads the .env file of dir into the process environment.
// Variables already set are kept. A missing file is not an error.
func LoadDotEnv(dir string) (string, error) {
	path := filepath.Join(dir, constants.DotEnvFile)
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to load %s: %w", path, err)
	}
	return path, nil
}
