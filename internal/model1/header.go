package model1

import (
	"fmt"
	"reflect"
)

// Align represents a column text alignment.
type Align int

const (
	// AlignStart aligns cell text to the leading edge.
	AlignStart Align = iota

	// AlignCenter centers cell text.
	AlignCenter

	// AlignEnd aligns cell text to the trailing edge.
	AlignEnd
)

// ParseAlign converts start/center/end into an Align.
func ParseAlign(s string) (Align, error) {
	switch s {
	case "", "start":
		return AlignStart, nil
	case "center":
		return AlignCenter, nil
	case "end":
		return AlignEnd, nil
	default:
		return AlignStart, fmt.Errorf("invalid alignment %q", s)
	}
}

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	default:
		return "start"
	}
}

// Attrs represents column attributes
type Attrs struct {
	RowHeader bool  // Labels the row
	Resizable bool  // Width may be changed by the user
	Sortable  bool  // Column offers sorting
	Width     int   // Default width, 0 for auto
	MinWidth  int   // Minimum width, 0 for none
	Align     Align // Cell alignment
	Divider   bool  // Draw a divider after the column
	Kind      Kind  // Value kind for coercion, KindNull accepts anything
	Natural   bool  // Natural string ordering
	Decorator DecoratorFunc
}

// DecoratorFunc formats a cell value for display.
type DecoratorFunc func(Value) string

// Column describes a single table column.
type Column struct {
	ID   string
	Name string
	Attrs
}

func (c Column) String() string {
	return fmt.Sprintf("%s(%s) [%s::%t::%t]", c.Name, c.ID, c.Align, c.Sortable, c.RowHeader)
}

// Header represents a table header (slice of columns)
type Header []Column

func (h Header) Clone() Header {
	he := make(Header, len(h))
	copy(he, h)
	return he
}

func (h Header) Diff(header Header) bool {
	if len(h) != len(header) {
		return true
	}
	return !reflect.DeepEqual(h, header)
}

// IndexOf returns the position of the column with the given id.
func (h Header) IndexOf(id string) (int, bool) {
	for i, c := range h {
		if c.ID == id {
			return i, true
		}
	}
	return -1, false
}

// Column returns the column with the given id.
func (h Header) Column(id string) (Column, bool) {
	idx, ok := h.IndexOf(id)
	if !ok {
		return Column{}, false
	}
	return h[idx], true
}

// RowHeader returns the column labelling each row, falling back to the first.
func (h Header) RowHeader() (Column, bool) {
	if len(h) == 0 {
		return Column{}, false
	}
	for _, c := range h {
		if c.RowHeader {
			return c, true
		}
	}
	return h[0], true
}

// IDs returns the column ids in order.
func (h Header) IDs() []string {
	if len(h) == 0 {
		return nil
	}
	ids := make([]string, 0, len(h))
	for _, c := range h {
		ids = append(ids, c.ID)
	}
	return ids
}

// ColumnNames returns the display names in order.
func (h Header) ColumnNames() []string {
	if len(h) == 0 {
		return nil
	}
	cc := make([]string, 0, len(h))
	for _, c := range h {
		cc = append(cc, c.Name)
	}
	return cc
}

// Sortable returns the columns that allow sorting.
func (h Header) Sortable() Header {
	var out Header
	for _, c := range h {
		if c.Sortable {
			out = append(out, c)
		}
	}
	return out
}

// Validate checks that column ids are present and unique.
func (h Header) Validate() error {
	seen := make(map[string]struct{}, len(h))
	for i, c := range h {
		if c.ID == "" {
			return fmt.Errorf("column %d: %w", i, ErrEmptyColumnID)
		}
		if _, ok := seen[c.ID]; ok {
			return fmt.Errorf("column %q: %w", c.ID, ErrDuplicateColumn)
		}
		seen[c.ID] = struct{}{}
	}
	return nil
}
