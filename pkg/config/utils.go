package config

import (
	"os"
	"path/filepath"
)

// FindEnvFile walks up from the working directory looking for filename.
// If filename is empty, it searches for .env.
func FindEnvFile(filename string) (string, error) {
	if filename == "" {
		filename = ".env"
	}
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err != nil {
			return "", err
		}
		return filename, nil
	}
	curr, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(curr, filename)
		if _, err = os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(curr)
		if parent == curr {
			break
		}
		curr = parent
	}
	return "", os.ErrNotExist
}
