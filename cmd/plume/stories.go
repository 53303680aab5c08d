package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/laststance/plume/internal/catalog"
	"github.com/laststance/plume/internal/stories"
	"github.com/laststance/plume/internal/ui/components"
)

func newStoriesCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stories",
		Short: "List or run component stories headlessly",
	}

	cmd.AddCommand(newStoriesListCmd())
	cmd.AddCommand(newStoriesRunCmd(flags))

	return cmd
}

func newStoriesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every registered story",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := stories.Builtin()
			for _, story := range registry.List() {
				kind := "static"
				if story.Interactive() {
					kind = "interactive"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-40s %s\n", story.ID(), kind)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d stories across %d components\n",
				registry.Len(), len(registry.Components()))
			return nil
		},
	}
}

func newStoriesRunCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Render every story under each theme and report failures",
		Long:  `Run every story headlessly: static stories must render non-empty output, interactive stories are driven through their scripts, and each theme's palette is checked for readable contrast.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := buildLogger(flags)
			if err != nil {
				return err
			}

			var themes []components.Theme
			if flags.theme != "" {
				theme, err := resolveTheme(flags.theme)
				if err != nil {
					return err
				}
				themes = append(themes, theme)
			}

			runner := catalog.NewRunner(log, themes...)
			results := runner.Run(stories.Builtin())

			out := cmd.OutOrStdout()
			for _, result := range results {
				mark := "ok"
				if !result.Passed() {
					mark = "FAIL"
				}
				fmt.Fprintf(out, "%-4s %-40s theme=%s\n", mark, result.Story.ID(), result.Theme)
			}

			failures := catalog.Failures(results)
			fmt.Fprintf(out, "\n%d run, %d failed\n", len(results), len(failures))
			if len(failures) > 0 {
				return fmt.Errorf("%d of %d story runs failed", len(failures), len(results))
			}
			return nil
		},
	}
}
