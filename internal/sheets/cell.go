package sheets

// Cell is the normalized view of one grid cell: the entered and formatted
// values plus the one piece of formatting the pipeline cares about.
// Parsers operate on this shape, never on raw API payloads.
type Cell struct {
	Value         string `json:"value,omitempty"`
	Formatted     string `json:"formatted,omitempty"`
	StruckThrough bool   `json:"struckThrough,omitempty"`
}

// Text returns the display text of the cell, preferring the formatted
// value over the entered one.
func (c Cell) Text() string {
	if c.Formatted != "" {
		return c.Formatted
	}
	return c.Value
}

// Empty reports whether the cell has no usable text.
func (c Cell) Empty() bool { return c.Text() == "" }
