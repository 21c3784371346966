/*
Package palette maps tree depths and entry kinds to terminal colors.

Branch colors cycle through a fixed, ordered list: depth d is drawn with
Branches[d mod len(Branches)]. Directory and file names use their own colors,
independent of depth.

Basic usage:

	p := palette.Default(true)
	line := p.Paint("├────", p.Branch(depth)) + " " + p.Paint(name, p.Entry(isDir))
*/
package palette

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
)

// Palette is an immutable color table. The zero value is not usable; build
// one with Default or New.
type Palette struct {
	branches []color.Attribute
	dir      color.Attribute
	file     color.Attribute
	enabled  bool
}

// DefaultBranchNames is the branch color cycle used when none is configured.
var DefaultBranchNames = []string{"cyan", "magenta", "red", "yellow", "green"}

var colorsByName = map[string]color.Attribute{
	"black":   color.FgBlack,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
}

// Default returns the standard palette: cyan, magenta, red, yellow, green
// for branches, blue for directories and white for files.
func Default(enabled bool) Palette {
	p, _ := New(DefaultBranchNames, enabled)
	return p
}

// New builds a palette whose branch colors follow names, in order.
func New(names []string, enabled bool) (Palette, error) {
	branches, err := ParseNames(names)
	if err != nil {
		return Palette{}, err
	}

	return Palette{
		branches: branches,
		dir:      color.FgBlue,
		file:     color.FgWhite,
		enabled:  enabled,
	}, nil
}

// ParseNames resolves color names to attributes. Names are case-insensitive
// and surrounding whitespace is ignored.
func ParseNames(names []string) ([]color.Attribute, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("palette must contain at least one color")
	}

	attrs := make([]color.Attribute, 0, len(names))
	for _, name := range names {
		attr, ok := colorsByName[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("unknown color %q: must be one of %v", name, KnownNames())
		}
		attrs = append(attrs, attr)
	}
	return attrs, nil
}

// KnownNames lists the accepted color names in alphabetical order.
func KnownNames() []string {
	names := make([]string, 0, len(colorsByName))
	for name := range colorsByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of branch colors in the cycle.
func (p Palette) Len() int {
	return len(p.branches)
}

// Branch returns the color of the branch drawn at depth.
func (p Palette) Branch(depth int) color.Attribute {
	return p.branches[depth%len(p.branches)]
}

// Entry returns the name color for a directory or a file.
func (p Palette) Entry(isDir bool) color.Attribute {
	if isDir {
		return p.dir
	}
	return p.file
}

// Enabled reports whether Paint emits escape sequences.
func (p Palette) Enabled() bool {
	return p.enabled
}

// Paint wraps s in the escape sequence for attr, or returns it unchanged
// when the palette is disabled.
func (p Palette) Paint(s string, attr color.Attribute) string {
	c := color.New(attr)
	if p.enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}
