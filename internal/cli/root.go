// Package cli wires the valvenet commands: solve a puzzle input and generate
// synthetic networks.
package cli

import (
	"context"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Execute is the entry point of the valvenet binary.
func Execute(ctx context.Context, version string) {
	if err := NewRootCommand(ctx, version).Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCommand builds the command tree.
func NewRootCommand(ctx context.Context, version string) *cobra.Command {
	root := &cobra.Command{
		Use:          "valvenet",
		Short:        "Find the most pressure one or two agents can release from a valve network.",
		Version:      version,
		SilenceUsage: true,
	}
	root.SetContext(ctx)
	root.AddCommand(newSolveCommand(), newGenCommand())
	return root
}

// setupLogging points the standard logger at w and picks the level.
func setupLogging(w io.Writer, verbose bool) *log.Logger {
	l := log.StandardLogger()
	l.SetOutput(w)
	l.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if verbose {
		l.SetLevel(log.DebugLevel)
	} else {
		l.SetLevel(log.InfoLevel)
	}
	return l
}
