// Package registry tracks installed theme packs. The registry file lives in
// the user's plume directory and records, per pack, where its theme files sit
// on disk and where they came from.
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	plumeerrors "github.com/laststance/plume/pkg/errors"
)

// Registry manages theme pack persistence.
type Registry struct {
	path  string
	mu    sync.RWMutex
	packs []ThemePack
}

// New creates a Registry backed by the given file, loading it when present.
func New(path string) (*Registry, error) {
	r := &Registry{path: path}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create registry directory: %w", err)
	}

	if err := r.load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry) load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		return err
	}

	var file registryFile
	if err := json.Unmarshal(data, &file); err != nil {
		return plumeerrors.NewParseError(r.path, 0, err)
	}
	r.packs = file.Packs
	return nil
}

// Save writes the registry to disk atomically.
func (r *Registry) Save() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	file := registryFile{Version: "1.0", Packs: r.packs}
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal registry: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write registry: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace registry: %w", err)
	}
	return nil
}

// List returns the installed packs sorted by name.
func (r *Registry) List() []ThemePack {
	r.mu.RLock()
	defer r.mu.RUnlock()

	packs := make([]ThemePack, len(r.packs))
	copy(packs, r.packs)
	sort.Slice(packs, func(i, j int) bool { return packs[i].Name < packs[j].Name })
	return packs
}

// Get returns the pack with the given name.
func (r *Registry) Get(name string) (ThemePack, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, pack := range r.packs {
		if pack.Name == name {
			return pack, nil
		}
	}
	return ThemePack{}, plumeerrors.NewThemePackError(name, fmt.Errorf("not installed"))
}

// Add registers a pack. Registering a name twice is an error; remove first.
func (r *Registry) Add(pack ThemePack) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.packs {
		if existing.Name == pack.Name {
			return plumeerrors.NewThemePackError(pack.Name, fmt.Errorf("already installed"))
		}
	}
	if pack.InstalledAt.IsZero() {
		pack.InstalledAt = time.Now()
	}
	r.packs = append(r.packs, pack)
	return nil
}

// Remove drops the pack with the given name. Removing a pack that is not
// installed is an error.
func (r *Registry) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, pack := range r.packs {
		if pack.Name == name {
			r.packs = append(r.packs[:i], r.packs[i+1:]...)
			return nil
		}
	}
	return plumeerrors.NewThemePackError(name, fmt.Errorf("not installed"))
}

// Len returns the number of installed packs.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.packs)
}
