package tree

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// fsLister lists directories through an afero filesystem.
type fsLister struct {
	fs afero.Fs
}

// NewLister returns a Lister backed by fs. Children are reported in the order
// the filesystem enumerates them and symbolic links are not followed.
func NewLister(fs afero.Fs) Lister {
	return &fsLister{fs: fs}
}

func (l *fsLister) List(path string) ([]Entry, error) {
	names, err := l.readNames(path)
	if err != nil {
		return nil, &ListError{Path: path, Err: err}
	}

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		childPath := filepath.Join(path, name)
		info, err := l.lstat(childPath)
		if err != nil {
			return nil, &MetadataError{Path: childPath, Err: err}
		}
		entries = append(entries, Entry{
			Name:  name,
			IsDir: info.IsDir(),
		})
	}

	return entries, nil
}

// readNames drains the directory and releases its handle before returning.
func (l *fsLister) readNames(path string) ([]string, error) {
	dir, err := l.fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer dir.Close()

	return dir.Readdirnames(-1)
}

func (l *fsLister) lstat(path string) (os.FileInfo, error) {
	if lstater, ok := l.fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(path)
		return info, err
	}
	return l.fs.Stat(path)
}
