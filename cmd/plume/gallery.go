package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/laststance/plume/internal/stories"
	"github.com/laststance/plume/internal/tui/gallery"
)

func newGalleryCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Browse every component story interactively",
		Long:  `Launch the story gallery: pick a story on the left, see it rendered under the active theme on the right.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(flags)
		},
	}

	return cmd
}

func runGallery(flags *rootFlags) error {
	log, err := buildLogger(flags)
	if err != nil {
		return err
	}

	theme, err := resolveTheme(flags.theme)
	if err != nil {
		return err
	}

	m := gallery.NewModel(stories.Builtin(), log).WithTheme(theme)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run gallery: %w", err)
	}
	return nil
}
