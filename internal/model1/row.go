package model1

import "slices"

// Fields holds the rendered cells of a row, one per header column.
type Fields []string

// Clone returns a copy of the cells.
func (f Fields) Clone() Fields {
	return slices.Clone(f)
}

// Row is a record rendered for display, identified by the record key.
type Row struct {
	ID     string
	Fields Fields
}

// Clone returns a deep copy.
func (r Row) Clone() Row {
	return Row{ID: r.ID, Fields: r.Fields.Clone()}
}

// Len returns the number of cells.
func (r Row) Len() int {
	return len(r.Fields)
}
