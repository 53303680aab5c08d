package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/laststance/plume/internal/logger"
)

type rootFlags struct {
	verbose   bool
	logFormat string
	theme     string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "plume",
		Short:         "Plume is a themeable terminal component kit with a story gallery",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare invocation launches the gallery.
			if len(args) == 0 {
				return runGallery(flags)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "auto", "Log output format: auto, pretty or json")
	cmd.PersistentFlags().StringVar(&flags.theme, "theme", "", "Theme to start with (built-in or installed pack theme)")

	cmd.AddCommand(newGalleryCmd(flags))
	cmd.AddCommand(newDemoCmd(flags))
	cmd.AddCommand(newStoriesCmd(flags))
	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// buildLogger constructs the process logger from the persistent flags. The
// auto format picks pretty output only when stderr is a terminal, so piped
// output stays machine-readable.
func buildLogger(flags *rootFlags) (*logger.Logger, error) {
	level := "info"
	if flags.verbose {
		level = "debug"
	}

	pretty := false
	switch flags.logFormat {
	case "pretty":
		pretty = true
	case "json":
		pretty = false
	default:
		pretty = term.IsTerminal(int(os.Stderr.Fd()))
	}

	return logger.New(logger.Options{Level: level, Pretty: pretty})
}
