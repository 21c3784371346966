package tree

import "slices"

// OpenDepths records which depths still have siblings left to print. A depth
// is opened before the first child of a non-empty directory is printed and
// closed right after its last child is printed; it is never reopened while
// that directory is being rendered.
//
// Depths are opened in increasing order and closed in reverse, so the record
// is kept as a stack.
type OpenDepths struct {
	stack []int
}

// NewOpenDepths returns an empty record.
func NewOpenDepths() *OpenDepths {
	return &OpenDepths{}
}

// Open marks depth as having siblings left.
func (o *OpenDepths) Open(depth int) {
	o.stack = append(o.stack, depth)
}

// Close removes depth from the record. Closing a depth that is not open is a
// no-op.
func (o *OpenDepths) Close(depth int) {
	for i := len(o.stack) - 1; i >= 0; i-- {
		if o.stack[i] == depth {
			o.stack = append(o.stack[:i], o.stack[i+1:]...)
			return
		}
	}
}

// IsOpen reports whether depth is currently open.
func (o *OpenDepths) IsOpen(depth int) bool {
	return slices.Contains(o.stack, depth)
}

// Len returns the number of open depths.
func (o *OpenDepths) Len() int {
	return len(o.stack)
}

// Depths returns a copy of the open depths, oldest first.
func (o *OpenDepths) Depths() []int {
	return slices.Clone(o.stack)
}
