package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/laststance/plume/internal/registry"
)

func newThemeCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Manage installed theme packs",
	}

	cmd.AddCommand(newThemeListCmd())
	cmd.AddCommand(newThemeAddCmd())
	cmd.AddCommand(newThemeRemoveCmd())

	return cmd
}

func newThemeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List built-in themes and installed packs",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "built-in:")
			fmt.Fprintln(out, "  light")
			fmt.Fprintln(out, "  dark")

			reg, err := openRegistry()
			if err != nil {
				return err
			}
			packs := reg.List()
			if len(packs) == 0 {
				fmt.Fprintln(out, "\nno theme packs installed")
				return nil
			}

			fmt.Fprintln(out, "\ninstalled packs:")
			for _, pack := range packs {
				themes, err := registry.LoadThemes(pack)
				if err != nil {
					fmt.Fprintf(out, "  %s (unreadable: %v)\n", pack.Name, err)
					continue
				}
				names := make([]string, len(themes))
				for i, theme := range themes {
					names[i] = theme.Name
				}
				fmt.Fprintf(out, "  %s: %s\n", pack.Name, strings.Join(names, ", "))
			}
			return nil
		},
	}
}

func newThemeAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <source>",
		Short: "Install a theme pack from a git URL or a local directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, source := args[0], args[1]

			installer, err := newInstaller()
			if err != nil {
				return err
			}

			var pack registry.ThemePack
			if isGitSource(source) {
				pack, err = installer.InstallFromGit(cmd.Context(), name, source)
			} else {
				pack, err = installer.InstallFromDir(name, source)
			}
			if err != nil {
				return err
			}

			themes, err := registry.LoadThemes(pack)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "installed %s (%d theme(s))\n", pack.Name, len(themes))
			return nil
		},
	}
}

func newThemeRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Uninstall a theme pack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			installer, err := newInstaller()
			if err != nil {
				return err
			}
			if err := installer.Uninstall(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
			return nil
		},
	}
}

func newInstaller() (*registry.Installer, error) {
	reg, err := openRegistry()
	if err != nil {
		return nil, err
	}
	packsDir, err := defaultPacksDir()
	if err != nil {
		return nil, err
	}
	return registry.NewInstaller(reg, packsDir), nil
}

// isGitSource distinguishes clone URLs from local paths.
func isGitSource(source string) bool {
	return strings.Contains(source, "://") ||
		strings.HasPrefix(source, "git@") ||
		strings.HasSuffix(source, ".git")
}
