package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/andyballingall/deltaenv/internal/osenv"
)

// Run executes the CLI. All ambient state is read through envProvider; a nil
// provider reads the real process environment.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer, envProvider osenv.Provider) error {
	logLevel := &slog.LevelVar{}
	logLevel.Set(slog.LevelInfo)

	// Local lazy instance ensures t.Parallel() safety
	lazy := &LazyManager{}
	defer func() { _ = lazy.Close() }()

	if envProvider == nil {
		envProvider = osenv.NewProvider()
	}

	rootCmd := NewRootCmd(lazy, logLevel, stderr, envProvider)
	rootCmd.SetArgs(args[1:]) // Skip the program name
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Print error to stderr for script tests and CLI users (SilenceErrors is set)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return err
	}

	return nil
}
