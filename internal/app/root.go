package app

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/andyballingall/deltaenv/internal/env"
	"github.com/andyballingall/deltaenv/internal/osenv"
	"github.com/andyballingall/deltaenv/internal/pager"
)

// Version is the current version of deltaenv, set at build time.
var Version = "dev"

var LongDescription = `
deltaenv captures the environment variables that drive a git diff pager
(DELTA_*, BAT_THEME, COLORTERM, GIT_PREFIX, PAGER, ...) together with the
working directory into a single snapshot, taken once at startup.
Use it to see exactly what a run would observe and which pager it would invoke.
`

// NewRootCmd creates the root command and wires up dependencies.
func NewRootCmd(lazy *LazyManager, ll *slog.LevelVar, stderr io.Writer, envProvider osenv.Provider) *cobra.Command {
	var debug bool
	var noColour bool
	var logFile string

	rootCmd := &cobra.Command{
		Use:           "deltaenv",
		Short:         "Inspect the environment snapshot of a diff pager run",
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Long:          LongDescription,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for help and completion commands
			if cmd.Name() == "help" || isCompletionCommand(cmd) {
				return nil
			}

			// 1. Setup Logging
			if debug {
				ll.Set(slog.LevelDebug)
			}

			// Skip if already initialised (e.g., in tests)
			if lazy.HasInner() {
				return nil
			}

			logger, closer, err := setupLogger(stderr, ll, logFile)
			if err != nil {
				logger.Warn("logging to file disabled", "error", err)
			}
			if closer != nil {
				lazy.SetCloser(closer)
			}

			// 2. Take the one snapshot for this run
			resolver := pager.NewResolver(envProvider)
			snapshot := env.Capture(envProvider, resolver)
			if dir, ok := snapshot.CurrentDir(); ok {
				logger.Debug("captured environment", "cwd", dir)
			} else {
				logger.Debug("captured environment without working directory")
			}

			// 3. Hydrate the Lazy Wrapper
			lazy.SetInner(NewCLIManager(logger, snapshot, resolver))

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also write structured JSON logs to this file")

	rootCmd.PersistentFlags().BoolVarP(&noColour, "nocolour", "c", false, "Disable colour in output")
	// Support alternate spellings
	rootCmd.PersistentFlags().BoolVar(&noColour, "nocolor", false, "")
	rootCmd.PersistentFlags().BoolVar(&noColour, "noColor", false, "")
	rootCmd.PersistentFlags().BoolVar(&noColour, "noColour", false, "")
	_ = rootCmd.PersistentFlags().MarkHidden("nocolor")
	_ = rootCmd.PersistentFlags().MarkHidden("noColor")
	_ = rootCmd.PersistentFlags().MarkHidden("noColour")

	// Subcommands
	rootCmd.AddCommand(NewShowCmd(lazy, &noColour))
	rootCmd.AddCommand(NewPagerCmd(lazy))

	return rootCmd
}

// isCompletionCommand returns true if the command or any of its parents is the "completion" command.
func isCompletionCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "completion" {
			return true
		}
	}
	return false
}
