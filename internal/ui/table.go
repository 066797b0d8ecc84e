// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tabula

package ui

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
	"github.com/tabula/tabula/internal/model"
	"github.com/tabula/tabula/internal/model1"
	"github.com/tabula/tabula/internal/render"
)

const (
	// TitleFmt formats the table title with story, state and row count.
	TitleFmt = " <%s>[%s][%d] "

	dividerMark = " │"
	focusMark   = "▸"
	defaultCol  = 10
)

// Table represents a tview table bound to an async table model.
type Table struct {
	*tview.Table

	name      string
	actions   *KeyActions
	model     model.TableModel
	data      *model1.TableData
	colorerFn model1.ColorerFunc
	widths    map[string]int
	focusCol  int
	ctx       context.Context
	cancelFn  context.CancelFunc
	updateFn  UpdateFunc
	errFn     func(error)
	confirmFn ConfirmFunc
	log       *slog.Logger
	mx        sync.RWMutex
}

// NewTable returns a new table instance.
func NewTable(name string) *Table {
	return &Table{
		Table:     tview.NewTable(),
		name:      name,
		actions:   NewKeyActions(),
		colorerFn: (&render.Base{}).ColorerFunc(),
		widths:    make(map[string]int),
		updateFn:  func(f func()) { f() },
		log:       slog.New(slog.DiscardHandler),
	}
}

// Init initializes the table component.
func (t *Table) Init(ctx context.Context) error {
	t.ctx, t.cancelFn = context.WithCancel(ctx)

	t.SetFixed(1, 0)
	t.SetBorder(true)
	t.SetBorderAttributes(tcell.AttrBold)
	t.SetBorderPadding(0, 0, 1, 1)
	t.SetSelectable(true, false)
	t.SetBackgroundColor(tcell.ColorDefault)
	t.SetBorderColor(tcell.ColorWhite)
	t.SetTitle(fmt.Sprintf(TitleFmt, t.name, model1.StateIdle, 0))
	t.SetInputCapture(t.keyboard)

	t.bindKeys()
	return nil
}

// Name returns the table name.
func (t *Table) Name() string {
	return t.name
}

// Start loads the first page unless data is already in.
func (t *Table) Start() {
	m := t.GetModel()
	if m == nil {
		return
	}
	if data := m.Peek(); data.Empty() && !data.State().IsLoading() {
		t.loadMore()
		return
	}
	t.TableDataChanged(m.Peek())
}

// Stop cancels in flight loads issued by the table.
func (t *Table) Stop() {
	if t.cancelFn != nil {
		t.cancelFn()
	}
}

// SetUpdater routes listener driven redraws through fn.
func (t *Table) SetUpdater(fn UpdateFunc) {
	if fn != nil {
		t.updateFn = fn
	}
}

// SetErrorFn sets the callback reporting load failures.
func (t *Table) SetErrorFn(fn func(error)) {
	t.errFn = fn
}

// SetConfirmFn sets the confirmation asked before rows are removed.
func (t *Table) SetConfirmFn(fn ConfirmFunc) {
	t.confirmFn = fn
}

// SetLogger sets the table logger.
func (t *Table) SetLogger(log *slog.Logger) {
	if log != nil {
		t.log = log
	}
}

// SetModel binds the table to a model.
func (t *Table) SetModel(m model.TableModel) {
	t.mx.Lock()
	if t.model != nil {
		t.model.RemoveListener(t)
	}
	t.model = m
	t.data = nil
	clear(t.widths)
	t.focusCol = 0
	if m != nil {
		for _, c := range m.Header() {
			if c.Width > 0 {
				t.widths[c.ID] = c.Width
			}
		}
	}
	t.mx.Unlock()

	if m != nil {
		m.AddListener(t)
	}
}

// GetModel returns the current table model.
func (t *Table) GetModel() model.TableModel {
	t.mx.RLock()
	defer t.mx.RUnlock()

	return t.model
}

// Actions returns the key actions.
func (t *Table) Actions() *KeyActions {
	return t.actions
}

// Hints returns menu hints for key bindings.
func (t *Table) Hints() MenuHints {
	return t.actions.Hints()
}

// ColumnWidth returns the current width of a column, 0 for auto.
func (t *Table) ColumnWidth(id string) int {
	t.mx.RLock()
	defer t.mx.RUnlock()

	return t.widths[id]
}

// SelectedKey returns the key of the row under the cursor.
func (t *Table) SelectedKey() string {
	row, _ := t.GetSelection()
	return t.keyAt(row)
}

func (t *Table) keyAt(row int) string {
	if row < 1 {
		return ""
	}
	cell := t.GetCell(row, 0)
	if cell == nil {
		return ""
	}
	key, _ := cell.GetReference().(string)
	return key
}

func (t *Table) bindKeys() {
	t.actions.Bulk(KeyMap{
		KeyS:           NewKeyAction("Sort", t.sortCmd, true),
		KeyShiftS:      NewKeyAction("Flip Sort", t.flipSortCmd, true),
		KeyL:           NewKeyAction("Load More", t.loadMoreCmd, true),
		KeySpace:       NewKeyAction("Select", t.toggleCmd, true),
		KeyLess:        NewKeyAction("Shrink", t.resizeCmd(-1), true),
		KeyMore:        NewKeyAction("Grow", t.resizeCmd(1), true),
		KeyH:           NewKeyAction("Prev Column", t.focusCmd(-1), false),
		KeyLowerL:      NewKeyAction("Next Column", t.focusCmd(1), false),
		tcell.KeyLeft:  NewKeyAction("Prev Column", t.focusCmd(-1), false),
		tcell.KeyRight: NewKeyAction("Next Column", t.focusCmd(1), false),
		tcell.KeyCtrlD: NewKeyAction("Remove", t.removeCmd, true),
		tcell.KeyCtrlR: NewKeyAction("Reload", t.reloadCmd, true),
	})
}

// keyboard handles navigation, then dispatches to bound actions.
func (t *Table) keyboard(evt *tcell.EventKey) *tcell.EventKey {
	row, col := t.GetSelection()
	last := t.lastDataRow()

	switch AsKey(evt) {
	case tcell.KeyDown, KeyJ:
		if row >= last {
			t.loadMore()
			return nil
		}
		t.Select(row+1, col)
		return nil
	case tcell.KeyUp, KeyK:
		if row > 1 {
			t.Select(row-1, col)
		}
		return nil
	case tcell.KeyHome, KeyG:
		if last >= 1 {
			t.Select(1, col)
		}
		return nil
	case tcell.KeyEnd, KeyShiftG:
		if last >= 1 {
			t.Select(last, col)
		}
		return nil
	}

	if a, ok := t.actions.Get(AsKey(evt)); ok {
		return a.Action(evt)
	}

	return evt
}

func (t *Table) lastDataRow() int {
	t.mx.RLock()
	defer t.mx.RUnlock()

	if t.data == nil {
		return 0
	}
	return t.data.RowCount()
}

func (t *Table) sortCmd(*tcell.EventKey) *tcell.EventKey {
	m := t.GetModel()
	if m == nil {
		return nil
	}
	cols := m.Header().Sortable()
	if len(cols) == 0 {
		t.report(fmt.Errorf("%s: no sortable columns", t.name))
		return nil
	}

	current := m.Peek().SortDescriptor()
	next := 0
	for i, c := range cols {
		if c.ID == current.Column {
			next = (i + 1) % len(cols)
			break
		}
	}
	desc := model1.SortDescriptor{Column: cols[next].ID, Direction: current.Direction}
	if err := m.Sort(desc); err != nil {
		t.report(err)
	}

	return nil
}

func (t *Table) flipSortCmd(*tcell.EventKey) *tcell.EventKey {
	m := t.GetModel()
	if m == nil {
		return nil
	}
	if len(m.Header().Sortable()) == 0 {
		t.report(fmt.Errorf("%s: no sortable columns", t.name))
		return nil
	}

	desc := m.Peek().SortDescriptor()
	desc.Direction = desc.Direction.Toggle()
	if err := m.Sort(desc); err != nil {
		t.report(err)
	}

	return nil
}

func (t *Table) loadMoreCmd(*tcell.EventKey) *tcell.EventKey {
	t.loadMore()
	return nil
}

func (t *Table) loadMore() {
	m := t.GetModel()
	if m == nil {
		return
	}
	ctx := t.context()
	go func() {
		if _, err := m.FetchMore(ctx); err != nil {
			t.log.Warn("load more failed", "table", t.name, "error", err)
		}
	}()
}

func (t *Table) toggleCmd(*tcell.EventKey) *tcell.EventKey {
	m := t.GetModel()
	if m == nil {
		return nil
	}
	if key := t.SelectedKey(); key != "" {
		m.ToggleSelected(key)
	}

	return nil
}

func (t *Table) removeCmd(*tcell.EventKey) *tcell.EventKey {
	m := t.GetModel()
	if m == nil {
		return nil
	}

	keys := m.SelectedKeys()
	if len(keys) == 0 {
		if key := t.SelectedKey(); key != "" {
			keys = []string{key}
		}
	}
	if len(keys) == 0 {
		return nil
	}
	remove := func() {
		n := m.Remove(keys...)
		t.log.Debug("removed rows", "table", t.name, "count", n)
	}
	if t.confirmFn == nil {
		remove()
		return nil
	}
	t.confirmFn(fmt.Sprintf("Remove %d row(s)?", len(keys)), remove)

	return nil
}

func (t *Table) reloadCmd(*tcell.EventKey) *tcell.EventKey {
	m := t.GetModel()
	if m == nil {
		return nil
	}
	ctx := t.context()
	go func() {
		if err := m.Reload(ctx); err != nil {
			t.log.Warn("reload failed", "table", t.name, "error", err)
		}
	}()

	return nil
}

func (t *Table) focusCmd(delta int) ActionHandler {
	return func(*tcell.EventKey) *tcell.EventKey {
		m := t.GetModel()
		if m == nil {
			return nil
		}
		n := len(m.Header())
		if n == 0 {
			return nil
		}

		t.mx.Lock()
		t.focusCol = (t.focusCol + delta + n) % n
		t.mx.Unlock()
		t.redraw()

		return nil
	}
}

func (t *Table) resizeCmd(delta int) ActionHandler {
	return func(*tcell.EventKey) *tcell.EventKey {
		m := t.GetModel()
		if m == nil {
			return nil
		}
		h := m.Header()

		t.mx.Lock()
		if t.focusCol >= len(h) {
			t.mx.Unlock()
			return nil
		}
		c := h[t.focusCol]
		if !c.Resizable {
			t.mx.Unlock()
			t.report(fmt.Errorf("column %q is not resizable", c.Name))
			return nil
		}
		t.widths[c.ID] = resize(c, t.widths[c.ID], delta)
		t.mx.Unlock()
		t.redraw()

		return nil
	}
}

// resize returns the new width of c, never below its minimum.
func resize(c model1.Column, width, delta int) int {
	if width <= 0 {
		width = max(len(c.Name), defaultCol)
	}
	return max(width+delta, c.MinWidth, 1)
}

func (t *Table) context() context.Context {
	if t.ctx == nil {
		return context.Background()
	}
	return t.ctx
}

func (t *Table) report(err error) {
	if t.errFn != nil {
		t.errFn(err)
		return
	}
	t.log.Warn("table error", "table", t.name, "error", err)
}

func (t *Table) redraw() {
	t.mx.RLock()
	data := t.data
	t.mx.RUnlock()

	if data != nil {
		t.UpdateUI(data)
	}
}

// UpdateUI renders a table snapshot.
func (t *Table) UpdateUI(data *model1.TableData) {
	t.mx.Lock()
	t.data = data
	t.mx.Unlock()

	row, _ := t.GetSelection()
	t.Clear()

	h := data.Header()
	t.buildHeader(h, data.SortDescriptor())

	data.RowEvents().Range(func(i int, re model1.RowEvent) bool {
		t.buildRow(i+1, h, re, data)
		return true
	})

	count := data.RowCount()
	if status := render.FooterText(data); status != "" {
		t.showStatus(count+1, status, data.HasError())
	}
	t.SetTitle(fmt.Sprintf(TitleFmt, t.name, data.State(), count))

	switch {
	case count == 0:
	case row < 1:
		t.Select(1, 0)
	case row > count:
		t.Select(count, 0)
	default:
		t.Select(row, 0)
	}
}

func (t *Table) buildHeader(h model1.Header, sort model1.SortDescriptor) {
	t.mx.RLock()
	focus := t.focusCol
	t.mx.RUnlock()

	for col, c := range h {
		text := render.HeaderText(c, sort)
		if col == focus {
			text = focusMark + text
		}
		if c.Divider {
			text += dividerMark
		}

		cell := tview.NewTableCell(text)
		cell.SetTextColor(tcell.ColorYellow)
		cell.SetBackgroundColor(tcell.ColorDefault)
		cell.SetAlign(asAlign(c.Align))
		cell.SetSelectable(false)
		if c.ID == sort.Column {
			cell.SetAttributes(tcell.AttrBold)
		}
		t.sizeCell(cell, c)

		t.SetCell(0, col, cell)
	}
}

func (t *Table) buildRow(r int, h model1.Header, re model1.RowEvent, data *model1.TableData) {
	disabled := data.IsDisabled(re.Row.ID)
	color := t.colorerFn(h, &re, disabled)
	selected := data.IsSelected(re.Row.ID)
	if selected {
		color = model1.HighlightColor
	}

	for col, field := range re.Row.Fields {
		if col >= len(h) {
			break
		}
		c := h[col]
		if c.Divider {
			field += dividerMark
		}

		cell := tview.NewTableCell(field)
		cell.SetTextColor(color)
		cell.SetBackgroundColor(tcell.ColorDefault)
		cell.SetAlign(asAlign(c.Align))
		if selected {
			cell.SetAttributes(tcell.AttrBold)
		}
		t.sizeCell(cell, c)
		if col == 0 {
			cell.SetReference(re.Row.ID)
		}

		t.SetCell(r, col, cell)
	}
}

func (t *Table) sizeCell(cell *tview.TableCell, c model1.Column) {
	t.mx.RLock()
	w := t.widths[c.ID]
	t.mx.RUnlock()

	if w <= 0 {
		cell.SetExpansion(1)
		return
	}
	cell.SetMaxWidth(max(w, c.MinWidth))
}

func (t *Table) showStatus(row int, msg string, failed bool) {
	cell := tview.NewTableCell(msg)
	cell.SetTextColor(tcell.ColorGray)
	if failed {
		cell.SetTextColor(model1.ErrColor)
	}
	cell.SetSelectable(false)
	t.SetCell(row, 0, cell)
}

// TableDataChanged implements model.TableListener.
func (t *Table) TableDataChanged(data *model1.TableData) {
	t.updateFn(func() {
		t.UpdateUI(data)
	})
}

// TableNoData implements model.TableListener.
func (t *Table) TableNoData(data *model1.TableData) {
	t.updateFn(func() {
		t.UpdateUI(data)
	})
}

// TableLoadFailed implements model.TableListener.
func (t *Table) TableLoadFailed(err error) {
	t.updateFn(func() {
		if m := t.GetModel(); m != nil {
			t.UpdateUI(m.Peek())
		}
	})
	t.report(err)
}

func asAlign(a model1.Align) int {
	switch a {
	case model1.AlignCenter:
		return tview.AlignCenter
	case model1.AlignEnd:
		return tview.AlignRight
	default:
		return tview.AlignLeft
	}
}
