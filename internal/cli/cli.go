// Package cli implements the sparsecanvas command-line interface.
//
// Commands read a point file (JSON or TOML, see package io), apply one
// canvas operation, and either print the resulting points or write them to
// the file named by --output:
//   - info: point count, row count and x range
//   - slice: points inside a rectangle, or just their count
//   - shift, rotate, magnify: geometric transforms
//   - completion: shell completion scripts
//
// The root command attaches the CLI logger to the command context; commands
// fetch it with loggerFromContext.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sparsecanvas/pkg/buildinfo"
)

// appName is the binary name used in help text.
const appName = "sparsecanvas"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI whose logger writes to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Sparsecanvas slices and transforms sparse 2D point sets",
		Long: `Sparsecanvas loads a sparse set of points from a JSON or TOML point file,
answers rectangle queries against it, and applies shift, rotate and magnify
transforms. Results are printed as "x y" lines or written to another point file.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.infoCommand())
	root.AddCommand(c.sliceCommand())
	root.AddCommand(c.shiftCommand())
	root.AddCommand(c.rotateCommand())
	root.AddCommand(c.magnifyCommand())
	root.AddCommand(c.completionCommand())

	return root
}
