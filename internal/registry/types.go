package registry

import (
	"time"
)

// ThemePack is one installed collection of theme files.
type ThemePack struct {
	// Name identifies the pack; unique within the registry.
	Name string `json:"name"`
	// Path is the directory holding the pack's theme YAML files.
	Path string `json:"path"`
	// Source records where the pack came from: a git URL or "local".
	Source string `json:"source"`
	// InstalledAt is when the pack was registered.
	InstalledAt time.Time `json:"installed_at"`
}

// registryFile is the persisted shape.
type registryFile struct {
	Version string      `json:"version"`
	Packs   []ThemePack `json:"packs"`
}
