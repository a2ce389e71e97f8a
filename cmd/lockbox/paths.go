package main

import (
	"os"
	"path/filepath"
)

// lockboxHome returns the path to the lockbox data directory (~/.password).
func lockboxHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".password"), nil
}
