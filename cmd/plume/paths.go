package main

import (
	"os"
	"path/filepath"
)

// plumeDir resolves the per-user data directory. PLUME_HOME overrides the
// default, which tests rely on.
func plumeDir() (string, error) {
	if dir := os.Getenv("PLUME_HOME"); dir != "" {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".plume"), nil
}

func defaultRegistryPath() (string, error) {
	dir, err := plumeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "registry.json"), nil
}

func defaultPacksDir() (string, error) {
	dir, err := plumeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "packs"), nil
}
