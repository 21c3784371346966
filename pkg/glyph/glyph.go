// Package glyph selects the connector strings used to draw tree branches.
package glyph

// Set holds the three connectors needed to draw one row of a tree.
type Set struct {
	// Vertical continues an ancestor branch that still has siblings below it.
	Vertical string

	// Mid connects an entry that is followed by further siblings.
	Mid string

	// Last connects the final entry of a directory.
	Last string
}

var (
	unicodeSet = Set{
		Vertical: "│",
		Mid:      "├────",
		Last:     "└────",
	}

	asciiSet = Set{
		Vertical: "|",
		Mid:      "+---",
		Last:     `\---`,
	}
)

// Select returns the ASCII set when ascii is true, the box-drawing set otherwise.
func Select(ascii bool) Set {
	if ascii {
		return asciiSet
	}
	return unicodeSet
}

// Connector returns Last for the final entry and Mid for every other one.
func (s Set) Connector(isLast bool) string {
	if isLast {
		return s.Last
	}
	return s.Mid
}
