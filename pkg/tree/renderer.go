/*
Package tree renders a directory hierarchy as an indented, colored tree.

The renderer walks depth-first, printing each qualifying entry as soon as it is
reached, and keeps an OpenDepths record of ancestors that still have siblings
below. That record decides, column by column, whether a row gets a vertical
continuation glyph or blank padding.

Basic usage:

	r := tree.NewRenderer(tree.NewLister(afero.NewOsFs()), os.Stdout,
		tree.Options{ShowFiles: true}, palette.Default(true), log)

	if err := r.Render("/path/to/dir"); err != nil {
		return err
	}
*/
package tree

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/teunvw14/rtr/pkg/glyph"
	"github.com/teunvw14/rtr/pkg/logger"
	"github.com/teunvw14/rtr/pkg/palette"
)

const (
	// openPadding follows a vertical glyph in an open ancestor column.
	openPadding = "     "

	// closedPadding fills a closed ancestor column.
	closedPadding = "      "
)

// Renderer prints the children of a directory, recursively.
type Renderer struct {
	lister  Lister
	out     io.Writer
	opts    Options
	glyphs  glyph.Set
	palette palette.Palette
	log     logger.Logger
	stats   Stats
}

// Stats counts what the last Render printed.
type Stats struct {
	Dirs    int
	Files   int
	Skipped int
}

// NewRenderer creates a renderer that writes rows to out.
func NewRenderer(lister Lister, out io.Writer, opts Options, pal palette.Palette, log logger.Logger) *Renderer {
	return &Renderer{
		lister:  lister,
		out:     out,
		opts:    opts,
		glyphs:  glyph.Select(opts.ASCII),
		palette: pal,
		log:     log,
	}
}

// Render prints the tree below root, starting at depth 0 with nothing open.
// The root line itself is the caller's concern.
func (r *Renderer) Render(root string) error {
	r.log.WithFields(logger.Fields{
		"path":      root,
		"showFiles": r.opts.ShowFiles,
		"ascii":     r.opts.ASCII,
	}).Debug("Rendering tree")

	r.stats = Stats{}
	open := NewOpenDepths()
	if err := r.renderDir(root, 0, open); err != nil {
		return err
	}

	r.log.WithFields(logger.Fields{
		"dirs":    r.stats.Dirs,
		"files":   r.stats.Files,
		"skipped": r.stats.Skipped,
	}).Debug("Tree rendered")
	return nil
}

// Stats returns the counts gathered by the most recent Render.
func (r *Renderer) Stats() Stats {
	return r.stats
}

// renderDir prints every qualifying child of path at depth and descends into
// child directories. Directories that cannot be listed render as empty.
func (r *Renderer) renderDir(path string, depth int, open *OpenDepths) error {
	entries, err := r.lister.List(path)
	if err != nil {
		var listErr *ListError
		if errors.As(err, &listErr) {
			r.log.WithFields(logger.Fields{
				"path":  path,
				"depth": depth,
				"error": listErr.Err,
			}).Debug("Skipping unreadable directory")
			r.stats.Skipped++
			return nil
		}
		return err
	}

	total := r.countQualifying(entries)
	if total == 0 {
		return nil
	}

	r.log.WithFields(logger.Fields{
		"path":    path,
		"depth":   depth,
		"entries": total,
	}).Trace("Opening depth")

	open.Open(depth)

	printed := 0
	for _, entry := range entries {
		if !r.opts.qualifies(entry) {
			continue
		}
		printed++

		if err := r.printRow(depth, open, entry, printed == total); err != nil {
			return err
		}

		if entry.IsDir {
			if err := r.renderDir(filepath.Join(path, entry.Name), depth+1, open); err != nil {
				return err
			}
		}
	}

	return nil
}

func (r *Renderer) countQualifying(entries []Entry) int {
	count := 0
	for _, entry := range entries {
		if r.opts.qualifies(entry) {
			count++
		}
	}
	return count
}

// printRow writes one entry line. When isLast is true, depth is closed after
// the line has been written.
func (r *Renderer) printRow(depth int, open *OpenDepths, entry Entry, isLast bool) error {
	var b strings.Builder

	for i := 0; i < depth; i++ {
		if open.IsOpen(i) {
			b.WriteString(r.palette.Paint(r.glyphs.Vertical, r.palette.Branch(i)))
			b.WriteString(openPadding)
		} else {
			b.WriteString(closedPadding)
		}
	}

	b.WriteString(r.palette.Paint(r.glyphs.Connector(isLast), r.palette.Branch(depth)))
	b.WriteString(" ")
	b.WriteString(r.palette.Paint(entry.Name, r.palette.Entry(entry.IsDir)))
	b.WriteString("\n")

	if _, err := io.WriteString(r.out, b.String()); err != nil {
		return fmt.Errorf("failed to write tree row: %w", err)
	}

	if entry.IsDir {
		r.stats.Dirs++
	} else {
		r.stats.Files++
	}

	if isLast {
		open.Close(depth)
	}
	return nil
}
