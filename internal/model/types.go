package model

import (
	"context"

	"github.com/tabula/tabula/internal/model1"
)

// TableListener represents a table model listener.
type TableListener interface {
	// TableNoData notifies listener no data was found.
	TableNoData(*model1.TableData)

	// TableDataChanged notifies the model data changed.
	TableDataChanged(*model1.TableData)

	// TableLoadFailed notifies the load failed.
	TableLoadFailed(error)
}

// TableModel defines the interface renderers use to drive an async table.
type TableModel interface {
	// Header returns the table header.
	Header() model1.Header

	// Peek returns a snapshot of the current data.
	Peek() *model1.TableData

	// FetchMore loads the next page, if any.
	FetchMore(context.Context) (bool, error)

	// Reload drops all records and loads the first page.
	Reload(context.Context) error

	// Sort reorders the records.
	Sort(model1.SortDescriptor) error

	// Remove deletes records by key.
	Remove(keys ...string) int

	// ToggleSelected flips the selection of a key.
	ToggleSelected(key string)

	// SelectedKeys returns the selected keys.
	SelectedKeys() []string

	// AddListener registers a table listener.
	AddListener(TableListener)

	// RemoveListener unregisters a table listener.
	RemoveListener(TableListener)
}

// SelectionMode restricts how many rows may be selected.
type SelectionMode int

const (
	SelectionNone SelectionMode = iota
	SelectionSingle
	SelectionMultiple
)

func (m SelectionMode) String() string {
	switch m {
	case SelectionSingle:
		return "single"
	case SelectionMultiple:
		return "multiple"
	default:
		return "none"
	}
}

// SortFunc reorders records for a descriptor. It must not mutate its input.
type SortFunc func(model1.Records, model1.Header, model1.SortDescriptor) (model1.Records, error)

// KeyFunc extracts the identity of a record.
type KeyFunc func(model1.Record) string
