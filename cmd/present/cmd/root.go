// Package cmd implements the present CLI commands.
//
// The root command resolves present.yaml once and hands the result to the
// subcommands (simulate, preview, config, version).
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-drift/present/internal/config"
	"github.com/go-drift/present/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

var (
	projectDir string
	logLevel   string
	verbose    bool
)

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "present",
		Short: "Simulate and preview modal presentation transitions",
		Long: `present drives the presentation engine outside an app.

"present simulate" runs a scripted scenario on a simulated clock and prints
every transition. "present preview" opens an interactive terminal view where
sheets and toasts can be presented, dragged and dismissed.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&projectDir, "dir", "", "project directory (default: nearest present.yaml or go.mod)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the configured log level")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(
		newSimulateCommand(),
		newPreviewCommand(),
		newConfigCommand(),
		newVersionCommand(),
	)
	return root
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// resolve loads the configuration for the selected project directory.
func resolve() (*config.Resolved, error) {
	dir := projectDir
	if dir == "" {
		root, err := config.FindProjectRoot()
		if err != nil {
			if root, err = os.Getwd(); err != nil {
				return nil, fmt.Errorf("failed to determine working directory: %w", err)
			}
		}
		dir = root
	}
	return config.Resolve(dir)
}

// newLogger writes text logs to stderr at the configured level, raised or
// lowered by the global flags. Engine error reports go to the same logger.
func newLogger(cmd *cobra.Command, r *config.Resolved) (*slog.Logger, error) {
	level := r.LogLevel
	if logLevel != "" {
		if err := level.UnmarshalText([]byte(logLevel)); err != nil {
			return nil, fmt.Errorf("--log-level: %w", err)
		}
	}
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	errors.SetHandler(&errors.LogHandler{Logger: logger, Verbose: verbose})
	return logger, nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "present version %s (built %s)\n", Version, BuildTime)
		},
	}
}
