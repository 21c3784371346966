/*
Package app wires configuration, filesystem, palette and renderer together and
runs one tree rendering for a target path.

Usage:

	application := app.New(&cfg, app.Options{Log: log})
	if err := application.Run(path); err != nil {
	    return err
	}
*/
package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"golang.org/x/term"

	"github.com/teunvw14/rtr/internal/config"
	"github.com/teunvw14/rtr/pkg/logger"
	"github.com/teunvw14/rtr/pkg/palette"
	"github.com/teunvw14/rtr/pkg/tree"
)

// Options carries the collaborators of an App. Zero fields fall back to the
// real filesystem, standard output, a no-op logger and os.Getwd.
type Options struct {
	Fs    afero.Fs
	Out   io.Writer
	Log   logger.Logger
	Getwd func() (string, error)
}

// App renders directory trees according to a fixed configuration.
type App struct {
	config *config.Config
	log    logger.Logger
	fs     afero.Fs
	out    io.Writer
	getwd  func() (string, error)
}

// New creates a new application instance
func New(cfg *config.Config, opts Options) *App {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Log == nil {
		opts.Log = logger.NewNop()
	}
	if opts.Getwd == nil {
		opts.Getwd = os.Getwd
	}

	return &App{
		config: cfg,
		log:    opts.Log,
		fs:     opts.Fs,
		out:    opts.Out,
		getwd:  opts.Getwd,
	}
}

// Run prints the header, the root name and the tree below path. A missing
// path is an error; a path that is not a directory produces no output.
func (a *App) Run(path string) error {
	dir, err := a.resolvePath(path)
	if err != nil {
		return err
	}

	a.log.WithFields(logger.Fields{
		"path":   dir,
		"config": a.config.String(),
	}).Debug("Starting tree render")

	info, err := a.fs.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			a.log.WithFields(logger.Fields{
				"path": dir,
			}).Error("Path does not exist")
			return &tree.PathNotFoundError{Path: dir}
		}
		return fmt.Errorf("failed to access path: %w", err)
	}

	if !info.IsDir() {
		a.log.WithFields(logger.Fields{
			"path":  dir,
			"error": (&tree.NotDirectoryError{Path: dir}).Error(),
		}).Warn("Target is not a directory")
		return nil
	}

	pal, err := palette.New(a.config.Palette, a.colorEnabled())
	if err != nil {
		return fmt.Errorf("invalid palette: %w", err)
	}

	root := rootName(dir)
	if _, err := fmt.Fprintf(a.out, "Showing tree of directory '%s':\n\n%s\n", root, root); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	renderer := tree.NewRenderer(
		tree.NewLister(a.fs),
		a.out,
		tree.Options{
			ShowFiles: a.config.ShowFiles,
			ASCII:     a.config.ASCII,
		},
		pal,
		a.log,
	)

	if err := renderer.Render(dir); err != nil {
		return fmt.Errorf("failed to render %s: %w", dir, err)
	}

	a.log.WithFields(logger.Fields{
		"path": dir,
	}).Debug("Tree render completed")

	return nil
}

// resolvePath maps an empty path and "." to the working directory.
func (a *App) resolvePath(path string) (string, error) {
	if path != "" && path != "." {
		return path, nil
	}

	wd, err := a.getwd()
	if err != nil {
		a.log.WithFields(logger.Fields{
			"error": err,
		}).Error("Failed to determine current directory")
		return "", fmt.Errorf("failed to determine current directory: %w", err)
	}
	return wd, nil
}

// colorEnabled honors --no-color, the NO_COLOR convention and non-terminal output.
func (a *App) colorEnabled() bool {
	if a.config.NoColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return a.isTerminal()
}

// isTerminal checks if the output is going to a terminal
func (a *App) isTerminal() bool {
	f, ok := a.out.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// rootName is the last element of the absolute, cleaned path.
func rootName(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return filepath.Base(dir)
	}
	return filepath.Base(abs)
}
