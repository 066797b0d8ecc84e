// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tabula

package view

import (
	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
	"github.com/tabula/tabula/internal/ui"
)

// HelpBind represents a single keybinding.
type HelpBind struct {
	Key  string
	Desc string
}

var (
	generalBinds = []HelpBind{
		{"<:>", "Jump to Story"},
		{"<tab>", "Switch Pane"},
		{"<?>", "Help"},
		{"<esc>", "Close"},
		{"<q>", "Quit"},
	}

	navigationBinds = []HelpBind{
		{"<j>", "Down"},
		{"<k>", "Up"},
		{"<g>", "Top"},
		{"<G>", "Bottom"},
		{"<h>", "Prev Column"},
		{"<l>", "Next Column"},
	}
)

// Help displays the key bindings of the app and the story table.
type Help struct {
	*tview.Table
	closeFn func()
}

// NewHelp creates a new help view.
func NewHelp() *Help {
	h := &Help{
		Table: tview.NewTable(),
	}
	h.SetBorder(true)
	h.SetTitle(" Help ")
	h.SetTitleAlign(tview.AlignCenter)
	h.SetBorderColor(tcell.ColorYellow)
	h.SetBackgroundColor(tcell.ColorDefault)
	h.SetSelectable(false, false)
	h.SetInputCapture(h.keyboard)

	return h
}

// SetCloseFn sets the callback when help is closed.
func (h *Help) SetCloseFn(fn func()) {
	h.closeFn = fn
}

func (h *Help) keyboard(evt *tcell.EventKey) *tcell.EventKey {
	switch {
	case evt.Key() == tcell.KeyEsc, evt.Key() == tcell.KeyEnter, evt.Rune() == '?', evt.Rune() == 'q':
		if h.closeFn != nil {
			h.closeFn()
		}
		return nil
	}
	return evt
}

// Populate lays out general, navigation and table bindings side by side.
func (h *Help) Populate(hints ui.MenuHints) {
	h.Clear()

	table := make([]HelpBind, 0, len(hints))
	for _, hint := range hints {
		if hint.Visible {
			table = append(table, HelpBind{Key: "<" + hint.Mnemonic + ">", Desc: hint.Description})
		}
	}

	columns := [][]HelpBind{generalBinds, navigationBinds, table}
	headers := []string{"GENERAL", "NAVIGATION", "TABLE"}

	var maxRows int
	for _, col := range columns {
		maxRows = max(maxRows, len(col))
	}

	// Each logical column spans key, description and spacer cells.
	const colWidth = 3
	for colIdx, col := range columns {
		base := colIdx * colWidth
		h.SetCell(0, base, tview.NewTableCell(headers[colIdx]).
			SetTextColor(tcell.ColorAqua).
			SetAttributes(tcell.AttrBold).
			SetSelectable(false))

		for i, bind := range col {
			h.SetCell(i+1, base, tview.NewTableCell(bind.Key).
				SetTextColor(tcell.ColorYellow).
				SetSelectable(false))
			h.SetCell(i+1, base+1, tview.NewTableCell(bind.Desc).
				SetTextColor(tcell.ColorWhite).
				SetSelectable(false).
				SetExpansion(1))
		}
	}

	h.SetCell(maxRows+2, 0, tview.NewTableCell("<esc> to close").
		SetTextColor(tcell.ColorGray).
		SetSelectable(false))
}
