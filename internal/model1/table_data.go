package model1

import "sync"

// TableData is a snapshot of an async table handed to renderers.
type TableData struct {
	header    Header
	rowEvents *RowEvents
	sort      SortDescriptor
	state     LoadingState
	cursor    string
	errMsg    string
	selected  map[string]struct{}
	disabled  map[string]struct{}
	mx        sync.RWMutex
}

// NewTableData returns a new table.
func NewTableData(h Header) *TableData {
	return &TableData{
		header:    h,
		rowEvents: NewRowEvents(10),
		selected:  make(map[string]struct{}),
		disabled:  make(map[string]struct{}),
	}
}

// Header returns the table header.
func (t *TableData) Header() Header {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.header
}

// RowEvents returns the row events.
func (t *TableData) RowEvents() *RowEvents {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.rowEvents
}

// SetRowEvents replaces the row events.
func (t *TableData) SetRowEvents(re *RowEvents) {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.rowEvents = re
}

// SortDescriptor returns the applied ordering.
func (t *TableData) SortDescriptor() SortDescriptor {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.sort
}

// SetSortDescriptor sets the applied ordering.
func (t *TableData) SetSortDescriptor(s SortDescriptor) {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.sort = s
}

// State returns the loading state.
func (t *TableData) State() LoadingState {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.state
}

// SetState sets the loading state.
func (t *TableData) SetState(s LoadingState) {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.state = s
}

// Cursor returns the next page cursor, empty when no pages remain.
func (t *TableData) Cursor() string {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.cursor
}

// SetCursor sets the next page cursor.
func (t *TableData) SetCursor(c string) {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.cursor = c
}

// SetSelected replaces the selected keys.
func (t *TableData) SetSelected(keys []string) {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.selected = toSet(keys)
}

// IsSelected returns true if the row key is selected.
func (t *TableData) IsSelected(key string) bool {
	t.mx.RLock()
	defer t.mx.RUnlock()
	_, ok := t.selected[key]
	return ok
}

// SetDisabled replaces the disabled keys.
func (t *TableData) SetDisabled(keys []string) {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.disabled = toSet(keys)
}

// IsDisabled returns true if the row key is disabled.
func (t *TableData) IsDisabled(key string) bool {
	t.mx.RLock()
	defer t.mx.RUnlock()
	_, ok := t.disabled[key]
	return ok
}

// Empty returns true if no data is available.
func (t *TableData) Empty() bool {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.rowEvents.Empty()
}

// RowCount returns the number of rows.
func (t *TableData) RowCount() int {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.rowEvents.Len()
}

// SetError sets an error message to display instead of data.
func (t *TableData) SetError(msg string) {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.errMsg = msg
}

// Error returns the error message, if any.
func (t *TableData) Error() string {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.errMsg
}

// HasError returns true if there's an error message.
func (t *TableData) HasError() bool {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.errMsg != ""
}

func toSet(keys []string) map[string]struct{} {
	m := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		m[k] = struct{}{}
	}
	return m
}
