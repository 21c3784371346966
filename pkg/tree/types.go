package tree

// Entry is one immediate child of a directory.
type Entry struct {
	Name  string
	IsDir bool
}

// Lister enumerates the immediate children of a directory.
type Lister interface {
	// List returns the children of path in enumeration order. A *ListError
	// means the directory itself could not be read; a *MetadataError means a
	// listed child could not be inspected.
	List(path string) ([]Entry, error)
}

// Options selects what is rendered and how.
type Options struct {
	// ShowFiles lists files as leaves. When false only directories are shown.
	ShowFiles bool

	// ASCII draws branches with plain ASCII connectors.
	ASCII bool
}

// qualifies reports whether e is rendered under opts.
func (o Options) qualifies(e Entry) bool {
	return e.IsDir || o.ShowFiles
}
