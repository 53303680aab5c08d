package main

import (
	"fmt"

	"github.com/laststance/plume/internal/registry"
	"github.com/laststance/plume/internal/ui/components"
)

// openRegistry loads the theme-pack registry from the user's plume directory.
func openRegistry() (*registry.Registry, error) {
	path, err := defaultRegistryPath()
	if err != nil {
		return nil, fmt.Errorf("failed to determine registry path: %w", err)
	}
	reg, err := registry.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load theme registry: %w", err)
	}
	return reg, nil
}

// resolveTheme turns the --theme flag into a concrete theme. Built-in names
// never touch the registry, so gallery and demo work without a plume dir.
func resolveTheme(name string) (components.Theme, error) {
	switch name {
	case "", "light":
		return components.LightTheme(), nil
	case "dark":
		return components.DarkTheme(), nil
	}

	reg, err := openRegistry()
	if err != nil {
		return components.Theme{}, err
	}
	return registry.ResolveTheme(reg, name)
}
