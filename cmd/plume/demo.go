package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/laststance/plume/internal/tui/demo"
	"github.com/laststance/plume/internal/uistate"
)

func newDemoCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the chirper demo application",
		Long:  `Launch chirper, a small micro-blog built from the component kit. It exercises modals, toasts, the sidebar and theme switching against a live state store.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(flags)
		},
	}

	return cmd
}

func runDemo(flags *rootFlags) error {
	log, err := buildLogger(flags)
	if err != nil {
		return err
	}

	store := uistate.New()
	if flags.theme == "dark" {
		store.SetThemeMode(uistate.ThemeDark)
	}

	m := demo.NewModel(store, log)
	p := tea.NewProgram(m, tea.WithAltScreen())

	// Toast timers fire off the bubbletea loop; wake the program so the
	// dismissal is drawn.
	store.Subscribe(func(state uistate.UIState) {
		p.Send(demo.StateChangedMsg{State: state})
	})

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run demo: %w", err)
	}
	return nil
}
