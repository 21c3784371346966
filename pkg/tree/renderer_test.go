package tree

import (
	"bytes"
	"errors"
	"fmt"
	"path"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teunvw14/rtr/pkg/glyph"
	"github.com/teunvw14/rtr/pkg/logger"
	"github.com/teunvw14/rtr/pkg/palette"
)

// mockLogger implements logger.Logger interface for testing
type mockLogger struct {
	logs []string
}

func (m *mockLogger) Info(msg string)                               { m.logs = append(m.logs, "INFO: "+msg) }
func (m *mockLogger) Debug(msg string)                              { m.logs = append(m.logs, "DEBUG: "+msg) }
func (m *mockLogger) Error(msg string)                              { m.logs = append(m.logs, "ERROR: "+msg) }
func (m *mockLogger) Warn(msg string)                               { m.logs = append(m.logs, "WARN: "+msg) }
func (m *mockLogger) Trace(msg string)                              { m.logs = append(m.logs, "TRACE: "+msg) }
func (m *mockLogger) WithFields(fields logger.Fields) logger.Logger { return m }

// nestedFS is:
//
//	/A
//	├── B
//	│   ├── D
//	│   └── e.txt
//	├── C
//	│   └── E
//	└── f.txt
func nestedFS(t *testing.T) afero.Fs {
	return setupTestFS(t,
		[]string{"/A/B/D", "/A/C/E"},
		[]string{"/A/B/e.txt", "/A/f.txt"},
	)
}

func render(t *testing.T, fs afero.Fs, root string, opts Options) string {
	t.Helper()

	var buf bytes.Buffer
	r := NewRenderer(NewLister(fs), &buf, opts, palette.Default(false), &mockLogger{})
	require.NoError(t, r.Render(root))
	return buf.String()
}

func TestRenderer(t *testing.T) {
	tests := []struct {
		name     string
		dirs     []string
		files    []string
		opts     Options
		expected string
	}{
		{
			name:  "directories only skips files",
			dirs:  []string{"/A/B", "/A/C"},
			files: []string{"/A/f.txt"},
			opts:  Options{ShowFiles: false},
			expected: "├──── B\n" +
				"└──── C\n",
		},
		{
			name:  "files are listed as leaves",
			dirs:  []string{"/A/B", "/A/C"},
			files: []string{"/A/f.txt"},
			opts:  Options{ShowFiles: true},
			expected: "├──── B\n" +
				"├──── C\n" +
				"└──── f.txt\n",
		},
		{
			name:  "directory holding only files renders as a leaf",
			dirs:  []string{"/A/B", "/A/C"},
			files: []string{"/A/f.txt", "/A/B/g.txt"},
			opts:  Options{ShowFiles: false},
			expected: "├──── B\n" +
				"└──── C\n",
		},
		{
			name:  "open ancestor gets a vertical glyph, closed one gets padding",
			dirs:  []string{"/A/B/D", "/A/C/E"},
			files: []string{"/A/B/e.txt", "/A/f.txt"},
			opts:  Options{ShowFiles: false},
			expected: "├──── B\n" +
				"│     └──── D\n" +
				"└──── C\n" +
				"      └──── E\n",
		},
		{
			name:  "nested with files",
			dirs:  []string{"/A/B/D", "/A/C/E"},
			files: []string{"/A/B/e.txt", "/A/f.txt"},
			opts:  Options{ShowFiles: true},
			expected: "├──── B\n" +
				"│     ├──── D\n" +
				"│     └──── e.txt\n" +
				"├──── C\n" +
				"│     └──── E\n" +
				"└──── f.txt\n",
		},
		{
			name:  "ascii connectors",
			dirs:  []string{"/A/B/D", "/A/C/E"},
			files: []string{"/A/B/e.txt", "/A/f.txt"},
			opts:  Options{ShowFiles: false, ASCII: true},
			expected: "+--- B\n" +
				"|     \\--- D\n" +
				"\\--- C\n" +
				"      \\--- E\n",
		},
		{
			name:     "empty root prints nothing",
			dirs:     []string{"/A"},
			opts:     Options{ShowFiles: true},
			expected: "",
		},
		{
			name:     "root with only files and files hidden prints nothing",
			dirs:     []string{"/A"},
			files:    []string{"/A/x.txt", "/A/y.txt"},
			opts:     Options{ShowFiles: false},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := setupTestFS(t, tt.dirs, tt.files)
			assert.Equal(t, tt.expected, render(t, fs, "/A", tt.opts))
		})
	}
}

func TestRenderDirWithoutQualifyingEntries(t *testing.T) {
	fs := setupTestFS(t,
		[]string{"/empty", "/files"},
		[]string{"/files/a.txt"},
	)

	for _, root := range []string{"/empty", "/files"} {
		var buf bytes.Buffer
		r := NewRenderer(NewLister(fs), &buf, Options{}, palette.Default(false), &mockLogger{})

		open := NewOpenDepths()
		open.Open(0)
		require.NoError(t, r.renderDir(root, 1, open))

		assert.Empty(t, buf.String(), root)
		assert.Equal(t, []int{0}, open.Depths(), root)
	}
}

// snapshotWriter records the open depths at the moment each row is written.
type snapshotWriter struct {
	open   *OpenDepths
	lines  []string
	states [][]int
}

func (w *snapshotWriter) Write(p []byte) (int, error) {
	w.lines = append(w.lines, string(p))
	w.states = append(w.states, w.open.Depths())
	return len(p), nil
}

func TestOpenDepthsDuringRender(t *testing.T) {
	open := NewOpenDepths()
	w := &snapshotWriter{open: open}
	r := NewRenderer(NewLister(nestedFS(t)), w, Options{ShowFiles: false}, palette.Default(false), &mockLogger{})

	require.NoError(t, r.renderDir("/A", 0, open))

	require.Len(t, w.lines, 4)
	assert.Equal(t, [][]int{
		{0},    // B
		{0, 1}, // B/D, last under B
		{0},    // C, last under A
		{1},    // C/E, depth 0 already closed
	}, w.states)
	assert.Equal(t, 0, open.Len())
}

func TestConnectorFollowsPosition(t *testing.T) {
	var dirs []string
	for i := 0; i < 6; i++ {
		dirs = append(dirs, fmt.Sprintf("/A/d%d", i))
	}
	fs := setupTestFS(t, dirs, nil)

	lines := strings.Split(strings.TrimSuffix(render(t, fs, "/A", Options{}), "\n"), "\n")
	require.Len(t, lines, 6)

	for i, line := range lines {
		if i == len(lines)-1 {
			assert.True(t, strings.HasPrefix(line, "└────"), line)
		} else {
			assert.True(t, strings.HasPrefix(line, "├────"), line)
		}
	}
}

func TestBranchColorsCycle(t *testing.T) {
	pal := palette.Default(true)
	glyphs := glyph.Select(false)

	depth := 3 * pal.Len()
	dir := "/root"
	for i := 0; i < depth; i++ {
		dir = path.Join(dir, fmt.Sprintf("l%d", i))
	}
	fs := setupTestFS(t, []string{dir}, nil)

	var buf bytes.Buffer
	r := NewRenderer(NewLister(fs), &buf, Options{}, pal, &mockLogger{})
	require.NoError(t, r.Render("/root"))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, depth)

	for d, line := range lines {
		// Each level has a single child, so every ancestor column is closed.
		expected := strings.Repeat(closedPadding, d) +
			pal.Paint(glyphs.Last, pal.Branch(d)) + " " +
			pal.Paint(fmt.Sprintf("l%d", d), pal.Entry(true))
		assert.Equal(t, expected, line, "depth %d", d)
	}
}

func TestRowColors(t *testing.T) {
	pal := palette.Default(true)
	glyphs := glyph.Select(false)

	var buf bytes.Buffer
	r := NewRenderer(NewLister(nestedFS(t)), &buf, Options{ShowFiles: true}, pal, &mockLogger{})
	require.NoError(t, r.Render("/A"))

	lines := strings.Split(buf.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 3)

	// ├──── B at depth 0
	assert.Equal(t,
		pal.Paint(glyphs.Mid, pal.Branch(0))+" "+pal.Paint("B", pal.Entry(true)),
		lines[0])
	// │     ├──── D at depth 1, column 0 open
	assert.Equal(t,
		pal.Paint(glyphs.Vertical, pal.Branch(0))+openPadding+
			pal.Paint(glyphs.Mid, pal.Branch(1))+" "+pal.Paint("D", pal.Entry(true)),
		lines[1])
	// │     └──── e.txt, file color
	assert.Equal(t,
		pal.Paint(glyphs.Vertical, pal.Branch(0))+openPadding+
			pal.Paint(glyphs.Last, pal.Branch(1))+" "+pal.Paint("e.txt", pal.Entry(false)),
		lines[2])
}

func TestASCIIMatchesUnicodeStructure(t *testing.T) {
	fs := nestedFS(t)

	for _, showFiles := range []bool{false, true} {
		unicode := render(t, fs, "/A", Options{ShowFiles: showFiles})
		ascii := render(t, fs, "/A", Options{ShowFiles: showFiles, ASCII: true})

		u, a := glyph.Select(false), glyph.Select(true)
		replaced := strings.NewReplacer(
			u.Mid, a.Mid,
			u.Last, a.Last,
			u.Vertical, a.Vertical,
		).Replace(unicode)

		assert.Equal(t, ascii, replaced)
	}
}

func TestRendererSkipsUnreadableDirectory(t *testing.T) {
	base := nestedFS(t)
	fs := &faultyFs{Fs: base, unlistable: map[string]bool{"/A/B": true}}
	log := &mockLogger{}

	var buf bytes.Buffer
	r := NewRenderer(NewLister(fs), &buf, Options{ShowFiles: false}, palette.Default(false), log)
	require.NoError(t, r.Render("/A"))

	assert.Equal(t,
		"├──── B\n"+
			"└──── C\n"+
			"      └──── E\n",
		buf.String())
	assert.Contains(t, log.logs, "DEBUG: Skipping unreadable directory")
	assert.Equal(t, Stats{Dirs: 3, Skipped: 1}, r.Stats())
}

func TestRendererStats(t *testing.T) {
	fs := nestedFS(t)

	var buf bytes.Buffer
	r := NewRenderer(NewLister(fs), &buf, Options{ShowFiles: true}, palette.Default(false), &mockLogger{})

	require.NoError(t, r.Render("/A"))
	assert.Equal(t, Stats{Dirs: 4, Files: 2}, r.Stats())

	require.NoError(t, r.Render("/A/C"))
	assert.Equal(t, Stats{Dirs: 1}, r.Stats())
}

func TestRendererUnreadableRoot(t *testing.T) {
	base := nestedFS(t)
	fs := &faultyFs{Fs: base, unlistable: map[string]bool{"/A": true}}

	assert.Empty(t, render(t, fs, "/A", Options{ShowFiles: true}))
}

func TestRendererMetadataFailureIsFatal(t *testing.T) {
	base := nestedFS(t)
	fs := &faultyFs{Fs: base, unstatable: map[string]bool{"/A/C/E": true}}

	var buf bytes.Buffer
	r := NewRenderer(NewLister(fs), &buf, Options{}, palette.Default(false), &mockLogger{})
	err := r.Render("/A")

	var metaErr *MetadataError
	require.True(t, errors.As(err, &metaErr))
	assert.Equal(t, "/A/C/E", metaErr.Path)
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestRendererWriteFailure(t *testing.T) {
	r := NewRenderer(NewLister(nestedFS(t)), failingWriter{}, Options{}, palette.Default(false), &mockLogger{})

	err := r.Render("/A")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
}
