package model

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/tabula/tabula/internal/dao"
	"github.com/tabula/tabula/internal/model1"
	"github.com/tabula/tabula/internal/render"
)

// ErrNotFound is returned when no record matches a key.
var ErrNotFound = errors.New("record not found")

// AsyncList holds a paginated, sortable record collection fed by a source.
// At most one fetch is in flight at any time; the loading state guards it.
type AsyncList struct {
	header    model1.Header
	source    dao.Source
	keyFn     KeyFunc
	sortFn    SortFunc
	mode      SelectionMode
	log       *slog.Logger
	items     model1.Records
	cursor    string
	loaded    bool
	state     model1.LoadingState
	err       error
	sort      model1.SortDescriptor
	selected  []string
	disabled  []string
	added     map[string]struct{}
	patches   map[string]model1.Delta
	cancelFn  context.CancelFunc
	gen       uint64
	listeners []TableListener
	mx        sync.RWMutex
}

// NewAsyncList returns an idle list with no records and no cursor.
func NewAsyncList(h model1.Header, src dao.Source, opts ...Option) (*AsyncList, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("async list: no source")
	}

	l := AsyncList{
		header: h.Clone(),
		source: src,
		keyFn:  DefaultKey,
		sortFn: model1.SortRecords,
		mode:   SelectionMultiple,
		log:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&l)
	}

	if l.sort.IsSorted() {
		desc, err := l.sort.Resolve(l.header)
		if err != nil {
			return nil, err
		}
		l.sort = desc
	}

	return &l, nil
}

// Header returns the table header.
func (l *AsyncList) Header() model1.Header {
	return l.header
}

// Items returns the current records in display order.
func (l *AsyncList) Items() model1.Records {
	l.mx.RLock()
	defer l.mx.RUnlock()
	return l.items.Clone()
}

// Len returns the number of records.
func (l *AsyncList) Len() int {
	l.mx.RLock()
	defer l.mx.RUnlock()
	return len(l.items)
}

// Cursor returns the next page cursor, empty when absent.
func (l *AsyncList) Cursor() string {
	l.mx.RLock()
	defer l.mx.RUnlock()
	return l.cursor
}

// HasMore returns true if another page may be fetched.
func (l *AsyncList) HasMore() bool {
	l.mx.RLock()
	defer l.mx.RUnlock()
	return !l.loaded || l.cursor != ""
}

// State returns the loading state.
func (l *AsyncList) State() model1.LoadingState {
	l.mx.RLock()
	defer l.mx.RUnlock()
	return l.state
}

// Err returns the last load error, if the list is in the error state.
func (l *AsyncList) Err() error {
	l.mx.RLock()
	defer l.mx.RUnlock()
	return l.err
}

// SortDescriptor returns the last applied ordering.
func (l *AsyncList) SortDescriptor() model1.SortDescriptor {
	l.mx.RLock()
	defer l.mx.RUnlock()
	return l.sort
}

// FetchMore loads the next page and appends it. It returns false without
// fetching while another fetch is in flight or once the last page is in.
// A cancelled fetch leaves the list untouched and reports no error.
func (l *AsyncList) FetchMore(ctx context.Context) (bool, error) {
	l.mx.Lock()
	if l.state.IsLoading() {
		l.mx.Unlock()
		l.log.Debug("fetch rejected, already loading")
		return false, nil
	}
	if l.loaded && l.cursor == "" {
		l.mx.Unlock()
		return false, nil
	}

	target := model1.StateLoadingMore
	if !l.loaded {
		target = model1.StateLoading
	}
	prev, prevErr := l.state, l.err
	next, err := l.state.Transition(target)
	if err != nil {
		l.mx.Unlock()
		return false, err
	}
	l.state, l.err = next, nil

	fctx, cancel := context.WithCancel(ctx)
	l.cancelFn = cancel
	gen, cursor := l.gen, l.cursor
	l.mx.Unlock()

	l.fireChanged()
	l.log.Debug("fetching page", "cursor", cursor, "state", next)

	page, err := l.source.Load(fctx, cursor)
	aborted := errors.Is(fctx.Err(), context.Canceled)
	cancel()

	l.mx.Lock()
	if gen != l.gen {
		l.mx.Unlock()
		l.log.Debug("dropping superseded page", "cursor", cursor)
		return false, nil
	}
	l.cancelFn = nil

	if err != nil {
		if aborted || errors.Is(err, context.Canceled) {
			l.state, l.err = prev, prevErr
			l.mx.Unlock()
			l.log.Debug("fetch cancelled", "cursor", cursor)
			l.fireChanged()
			return false, nil
		}

		l.state, l.err = model1.StateError, err
		l.mx.Unlock()
		l.log.Error("fetch failed", "cursor", cursor, "error", err)
		l.fireLoadFailed(err)
		return false, err
	}

	items := append(l.items.Clone(), page.Items...)
	if l.sort.IsSorted() {
		sorted, err := l.sortFn(items, l.header, l.sort)
		if err != nil {
			l.log.Warn("unable to sort fetched page", "sort", l.sort, "error", err)
		} else {
			items = sorted
		}
	}

	l.added = make(map[string]struct{}, len(page.Items))
	for _, r := range page.Items {
		l.added[l.keyFn(r)] = struct{}{}
	}
	l.patches = nil
	l.items, l.cursor, l.loaded = items, page.Cursor, true
	l.state, l.err = model1.StateIdle, nil
	l.mx.Unlock()

	l.log.Debug("page committed", "items", len(page.Items), "total", len(items), "next", page.Cursor)
	l.fireChanged()

	return true, nil
}

// Abort cancels the in-flight fetch, if any.
func (l *AsyncList) Abort() {
	l.mx.RLock()
	cancel := l.cancelFn
	l.mx.RUnlock()

	if cancel != nil {
		cancel()
	}
}

// Reload aborts any fetch, drops all records and loads the first page.
func (l *AsyncList) Reload(ctx context.Context) error {
	l.mx.Lock()
	if l.cancelFn != nil {
		l.cancelFn()
		l.cancelFn = nil
	}
	l.gen++
	l.items, l.cursor, l.loaded = nil, "", false
	l.state, l.err = model1.StateIdle, nil
	l.added, l.patches, l.selected = nil, nil, nil
	l.mx.Unlock()

	if inv, ok := l.source.(dao.Invalidator); ok {
		inv.Invalidate()
	}

	_, err := l.FetchMore(ctx)
	return err
}

// Sort reorders all records. An empty column sorts by the row header column.
// The cursor and loading state are left alone.
func (l *AsyncList) Sort(desc model1.SortDescriptor) error {
	l.mx.Lock()
	desc, err := desc.Resolve(l.header)
	if err != nil {
		l.mx.Unlock()
		return err
	}

	if len(l.items) > 0 {
		sorted, err := l.sortFn(l.items, l.header, desc)
		if err != nil {
			l.mx.Unlock()
			return err
		}
		l.items = sorted
	}
	l.sort = desc
	l.added, l.patches = nil, nil
	l.mx.Unlock()

	l.log.Debug("sorted", "sort", desc)
	l.fireChanged()

	return nil
}

// Remove deletes the records matching keys and returns how many went away.
func (l *AsyncList) Remove(keys ...string) int {
	victims := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		victims[k] = struct{}{}
	}

	l.mx.Lock()
	kept := make(model1.Records, 0, len(l.items))
	for _, r := range l.items {
		if _, ok := victims[l.keyFn(r)]; ok {
			continue
		}
		kept = append(kept, r)
	}
	n := len(l.items) - len(kept)
	if n > 0 {
		l.items = kept
		l.selected = without(l.selected, victims)
	}
	l.mx.Unlock()

	if n > 0 {
		l.log.Debug("removed records", "count", n)
		l.fireChanged()
	}

	return n
}

// Update replaces the record matching key wholesale.
func (l *AsyncList) Update(key string, r model1.Record) error {
	l.mx.Lock()
	idx := l.items.IndexOf(key, l.keyFn)
	if idx < 0 {
		l.mx.Unlock()
		return fmt.Errorf("update %q: %w", key, ErrNotFound)
	}

	old := l.items[idx]
	items := l.items.Clone()
	items[idx] = r
	l.items = items

	if l.patches == nil {
		l.patches = make(map[string]model1.Delta)
	}
	patch, err := model1.NewDelta(old, r)
	if err != nil {
		l.log.Warn("unable to diff record", "key", key, "error", err)
	}
	l.patches[l.keyFn(r)] = patch
	l.mx.Unlock()

	l.log.Debug("record updated", "key", key, "patch", patch.String())
	l.fireChanged()

	return nil
}

// Peek returns a snapshot of the current data for renderers.
func (l *AsyncList) Peek() *model1.TableData {
	l.mx.RLock()
	defer l.mx.RUnlock()

	return l.snapshot()
}

func (l *AsyncList) snapshot() *model1.TableData {
	data := model1.NewTableData(l.header)
	data.SetSortDescriptor(l.sort)
	data.SetState(l.state)
	data.SetCursor(l.cursor)
	data.SetSelected(l.selected)
	data.SetDisabled(l.disabled)
	if l.err != nil {
		data.SetError(l.err.Error())
	}

	kinds := make(map[string]model1.ResEvent, len(l.added))
	for k := range l.added {
		kinds[k] = model1.EventAdd
	}
	rows, err := render.RowEvents(l.items, l.header, l.keyFn, kinds, l.patches)
	if err != nil {
		data.SetError(err.Error())
		return data
	}
	data.SetRowEvents(rows)

	return data
}

// AddListener registers a table listener.
func (l *AsyncList) AddListener(tl TableListener) {
	l.mx.Lock()
	defer l.mx.Unlock()
	l.listeners = append(l.listeners, tl)
}

// RemoveListener unregisters a table listener.
func (l *AsyncList) RemoveListener(tl TableListener) {
	l.mx.Lock()
	defer l.mx.Unlock()

	for i, listener := range l.listeners {
		if listener == tl {
			l.listeners = append(l.listeners[:i], l.listeners[i+1:]...)
			return
		}
	}
}

func (l *AsyncList) fireChanged() {
	l.mx.RLock()
	data := l.snapshot()
	noData := len(l.items) == 0 && !l.state.IsLoading()
	listeners := make([]TableListener, len(l.listeners))
	copy(listeners, l.listeners)
	l.mx.RUnlock()

	for _, tl := range listeners {
		if noData {
			tl.TableNoData(data)
		} else {
			tl.TableDataChanged(data)
		}
	}
}

func (l *AsyncList) fireLoadFailed(err error) {
	l.mx.RLock()
	listeners := make([]TableListener, len(l.listeners))
	copy(listeners, l.listeners)
	l.mx.RUnlock()

	for _, tl := range listeners {
		tl.TableLoadFailed(err)
	}
}

func without(keys []string, victims map[string]struct{}) []string {
	out := keys[:0:0]
	for _, k := range keys {
		if _, ok := victims[k]; !ok {
			out = append(out, k)
		}
	}
	return out
}
