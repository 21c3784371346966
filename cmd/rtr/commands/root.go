/*
Package commands implements the CLI command structure for rtr.
The root command renders the directory tree of its optional path argument;
the version subcommand reports build information.
*/
package commands

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/teunvw14/rtr/cmd/rtr/app"
	"github.com/teunvw14/rtr/internal/config"
	"github.com/teunvw14/rtr/pkg/logger"
)

// Options holds the collaborators shared by all commands
type Options struct {
	// Fs is the filesystem trees are read from
	Fs afero.Fs

	// Getwd resolves the working directory when no path is given
	Getwd func() (string, error)
}

// NewRootCommand creates the root command for the application
func NewRootCommand() *cobra.Command {
	return newRootCommand(&Options{})
}

func newRootCommand(opts *Options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rtr [flags] [path]",
		Short: "Print the directory tree of a folder",
		Long: `rtr prints the directory tree rooted at path, or at the current
directory when no path is given. Branches are colored by depth.

Environment Variables:
  RTR_SHOW_FILES   Show files inside folders
  RTR_ASCII        Use ASCII characters
  RTR_NO_COLOR     Disable colored output
  RTR_PALETTE      Comma-separated branch colors
  RTR_VERBOSE      Verbosity level (number or number of 'v's)`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runTree(cmd, path, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	config.RegisterFlags(rootCmd.Flags())

	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func runTree(cmd *cobra.Command, path string, opts *Options) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.NewLogger(logger.Config{
		Verbosity: cfg.Verbose,
		Output:    cmd.ErrOrStderr(),
	})

	log.WithFields(logger.Fields{
		"path":      path,
		"verbosity": cfg.Verbose,
		"command":   cmd.Name(),
	}).Debug("Initializing command")

	application := app.New(&cfg, app.Options{
		Fs:    opts.Fs,
		Out:   cmd.OutOrStdout(),
		Log:   log,
		Getwd: opts.Getwd,
	})

	return application.Run(path)
}
