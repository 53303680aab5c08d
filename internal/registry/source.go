package registry

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	git "github.com/go-git/go-git/v5"

	"github.com/laststance/plume/internal/config"
	"github.com/laststance/plume/internal/ui/components"
	plumeerrors "github.com/laststance/plume/pkg/errors"
)

// Installer fetches theme packs into a local packs directory and registers
// them.
type Installer struct {
	registry *Registry
	packsDir string
}

// NewInstaller creates an installer that stores fetched packs under packsDir.
func NewInstaller(registry *Registry, packsDir string) *Installer {
	return &Installer{registry: registry, packsDir: packsDir}
}

// InstallFromGit shallow-clones a theme pack repository and registers it
// under the given name.
func (in *Installer) InstallFromGit(ctx context.Context, name, url string) (ThemePack, error) {
	dest := filepath.Join(in.packsDir, name)
	if _, err := os.Stat(dest); err == nil {
		return ThemePack{}, plumeerrors.NewThemePackError(name, fmt.Errorf("destination %s already exists", dest))
	}

	_, err := git.PlainCloneContext(ctx, dest, false, &git.CloneOptions{
		URL:   url,
		Depth: 1,
	})
	if err != nil {
		os.RemoveAll(dest)
		return ThemePack{}, plumeerrors.NewThemePackError(name, fmt.Errorf("clone %s: %w", url, err))
	}

	pack := ThemePack{Name: name, Path: dest, Source: url, InstalledAt: time.Now()}
	if err := in.register(pack); err != nil {
		os.RemoveAll(dest)
		return ThemePack{}, err
	}
	return pack, nil
}

// InstallFromDir registers a pack already on disk without copying it.
func (in *Installer) InstallFromDir(name, dir string) (ThemePack, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return ThemePack{}, plumeerrors.NewThemePackError(name, fmt.Errorf("%s is not a directory", dir))
	}

	pack := ThemePack{Name: name, Path: dir, Source: "local", InstalledAt: time.Now()}
	if err := in.register(pack); err != nil {
		return ThemePack{}, err
	}
	return pack, nil
}

// register validates the pack contents before committing it to the registry.
func (in *Installer) register(pack ThemePack) error {
	themes, err := LoadThemes(pack)
	if err != nil {
		return err
	}
	if len(themes) == 0 {
		return plumeerrors.NewThemePackError(pack.Name, fmt.Errorf("no theme files found in %s", pack.Path))
	}
	if err := in.registry.Add(pack); err != nil {
		return err
	}
	return in.registry.Save()
}

// Uninstall removes a pack from the registry and deletes its directory when
// the installer fetched it (local packs are only deregistered).
func (in *Installer) Uninstall(name string) error {
	pack, err := in.registry.Get(name)
	if err != nil {
		return err
	}
	if err := in.registry.Remove(name); err != nil {
		return err
	}
	if err := in.registry.Save(); err != nil {
		return err
	}
	if pack.Source != "local" && strings.HasPrefix(pack.Path, in.packsDir) {
		return os.RemoveAll(pack.Path)
	}
	return nil
}

// LoadThemes parses every theme YAML file in a pack's directory.
func LoadThemes(pack ThemePack) ([]components.Theme, error) {
	entries, err := os.ReadDir(pack.Path)
	if err != nil {
		return nil, plumeerrors.NewThemePackError(pack.Name, err)
	}

	var themes []components.Theme
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		file, err := config.ParseThemeFile(filepath.Join(pack.Path, entry.Name()))
		if err != nil {
			return nil, plumeerrors.NewThemePackError(pack.Name, err)
		}
		themes = append(themes, file.Theme())
	}
	return themes, nil
}

// ResolveTheme finds a named theme across every installed pack. Built-in
// names ("light", "dark") resolve without touching the registry.
func ResolveTheme(reg *Registry, name string) (components.Theme, error) {
	switch name {
	case "", "light":
		return components.LightTheme(), nil
	case "dark":
		return components.DarkTheme(), nil
	}

	for _, pack := range reg.List() {
		themes, err := LoadThemes(pack)
		if err != nil {
			return components.Theme{}, err
		}
		for _, theme := range themes {
			if theme.Name == name {
				return theme, nil
			}
		}
	}
	return components.Theme{}, plumeerrors.NewThemePackError(name, fmt.Errorf("theme not found in any installed pack"))
}
