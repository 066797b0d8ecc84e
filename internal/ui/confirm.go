// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tabula

package ui

import (
	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
)

const confirmPage = "confirm"

// ConfirmFunc asks the user to confirm msg before running ack.
type ConfirmFunc func(msg string, ack func())

// Confirm represents a yes/no dialog shown over pages.
type Confirm struct {
	*tview.Modal

	pages     *Pages
	onConfirm func()
	onDone    func()
}

// NewConfirm creates a new confirmation dialog.
func NewConfirm(pages *Pages) *Confirm {
	c := Confirm{
		Modal: tview.NewModal(),
		pages: pages,
	}
	c.SetBackgroundColor(tcell.ColorDefault)
	c.SetTextColor(tcell.ColorRed)
	c.SetButtonBackgroundColor(tcell.ColorRed)
	c.SetButtonTextColor(tcell.ColorWhite)
	c.AddButtons([]string{"Yes", "No"})
	c.SetDoneFunc(c.handleButton)

	return &c
}

// SetDoneFn sets the callback run once the dialog closes either way.
func (c *Confirm) SetDoneFn(fn func()) *Confirm {
	c.onDone = fn
	return c
}

// Ask shows msg and runs ack if the user picks Yes.
func (c *Confirm) Ask(msg string, ack func()) {
	c.onConfirm = ack
	c.SetText(msg)
	c.SetFocus(1)
	c.pages.Push(confirmPage, c)
}

// IsOpen returns true while the dialog is shown.
func (c *Confirm) IsOpen() bool {
	return c.pages.Current() == confirmPage
}

func (c *Confirm) handleButton(idx int, _ string) {
	if !c.IsOpen() {
		return
	}
	c.pages.Pop()

	if idx == 0 && c.onConfirm != nil {
		c.onConfirm()
	}
	c.onConfirm = nil
	if c.onDone != nil {
		c.onDone()
	}
}
