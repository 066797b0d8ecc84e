// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tabula

package ui

import (
	"fmt"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
)

const (
	menuFmt = " [yellow::b]<%s>[white::-] %s "
	maxRows = 2
)

// Menu presents the key bindings of the focused component.
type Menu struct {
	*tview.Table
}

// NewMenu returns a new menu.
func NewMenu() *Menu {
	m := &Menu{
		Table: tview.NewTable(),
	}
	m.SetBackgroundColor(tcell.ColorDefault)
	m.SetBorderPadding(0, 0, 1, 1)

	return m
}

// HydrateMenu lays out the visible hints column by column.
func (m *Menu) HydrateMenu(hh MenuHints) {
	m.Clear()
	hh.Sort()

	var row, col int
	for _, h := range hh {
		if !h.Visible || h.IsBlank() {
			continue
		}
		c := tview.NewTableCell(fmt.Sprintf(menuFmt, h.Mnemonic, h.Description))
		c.SetBackgroundColor(tcell.ColorDefault)
		m.SetCell(row, col, c)

		row++
		if row >= maxRows {
			row, col = 0, col+1
		}
	}
}
