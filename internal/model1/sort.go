package model1

import (
	"fmt"
	"sort"
)

// Direction represents a sort direction.
type Direction int

const (
	// Ascending sorts smallest first. It is the zero value.
	Ascending Direction = iota

	// Descending sorts largest first.
	Descending
)

// ParseDirection converts ascending/descending into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "", "ascending", "asc":
		return Ascending, nil
	case "descending", "desc":
		return Descending, nil
	default:
		return Ascending, fmt.Errorf("invalid sort direction %q", s)
	}
}

func (d Direction) String() string {
	if d == Descending {
		return "descending"
	}
	return "ascending"
}

// Toggle returns the opposite direction.
func (d Direction) Toggle() Direction {
	if d == Descending {
		return Ascending
	}
	return Descending
}

// SortDescriptor represents the requested ordering. An empty column means unsorted.
type SortDescriptor struct {
	Column    string
	Direction Direction
}

// IsSorted returns true if a column is set.
func (s SortDescriptor) IsSorted() bool {
	return s.Column != ""
}

func (s SortDescriptor) String() string {
	if !s.IsSorted() {
		return "unsorted"
	}
	return s.Column + " " + s.Direction.String()
}

// Resolve fills in defaults: the row header column when none is given.
func (s SortDescriptor) Resolve(h Header) (SortDescriptor, error) {
	if s.Column == "" {
		c, ok := h.RowHeader()
		if !ok {
			return s, fmt.Errorf("empty header: %w", ErrUnknownColumn)
		}
		s.Column = c.ID
	}
	if _, ok := h.IndexOf(s.Column); !ok {
		return s, fmt.Errorf("sort by %q: %w", s.Column, ErrUnknownColumn)
	}
	return s, nil
}

// SortRecords returns a new, stably sorted collection. Descending negates the
// comparison so equal values keep their original relative order.
func SortRecords(rr Records, h Header, desc SortDescriptor) (Records, error) {
	col, ok := h.Column(desc.Column)
	if !ok {
		return nil, fmt.Errorf("sort by %q: %w", desc.Column, ErrUnknownColumn)
	}

	cmp := Compare
	if col.Natural {
		cmp = CompareNatural
	}

	out := rr.Clone()
	sort.SliceStable(out, func(i, j int) bool {
		a, _ := out[i].Get(col.ID)
		b, _ := out[j].Get(col.ID)
		c := cmp(a, b)
		if desc.Direction == Descending {
			c = -c
		}
		return c < 0
	})

	return out, nil
}
