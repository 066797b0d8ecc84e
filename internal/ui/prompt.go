package ui

import (
	"strings"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
)

// Prompt represents a command input field with name completion.
type Prompt struct {
	*tview.InputField

	active    bool
	names     func() []string
	activeFn  func(bool)
	executeFn func(string)
}

// NewPrompt returns a new prompt completing from names.
func NewPrompt(icon rune, names func() []string) *Prompt {
	p := Prompt{
		InputField: tview.NewInputField(),
		names:      names,
	}
	p.SetLabel(string(icon) + " ")
	p.SetFieldBackgroundColor(tcell.ColorDefault)
	p.SetBackgroundColor(tcell.ColorDefault)
	p.SetAutocompleteFunc(p.Suggest)
	p.SetDoneFunc(p.done)

	return &p
}

// Suggest returns the names starting with text.
func (p *Prompt) Suggest(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" || p.names == nil {
		return nil
	}

	var out []string
	for _, n := range p.names() {
		if strings.HasPrefix(n, text) && n != text {
			out = append(out, n)
		}
	}
	return out
}

// IsActive returns true while the prompt takes input.
func (p *Prompt) IsActive() bool {
	return p.active
}

// Activate activates the prompt
func (p *Prompt) Activate() {
	p.active = true
	p.SetText("")
	if p.activeFn != nil {
		p.activeFn(true)
	}
}

// Deactivate deactivates the prompt
func (p *Prompt) Deactivate() {
	p.active = false
	p.SetText("")
	if p.activeFn != nil {
		p.activeFn(false)
	}
}

// SetActiveFn sets activation callback
func (p *Prompt) SetActiveFn(fn func(bool)) {
	p.activeFn = fn
}

// SetExecuteFn sets the callback receiving the entered command.
func (p *Prompt) SetExecuteFn(fn func(string)) {
	p.executeFn = fn
}

func (p *Prompt) done(key tcell.Key) {
	cmd := strings.TrimSpace(p.GetText())
	p.Deactivate()

	if key == tcell.KeyEnter && cmd != "" && p.executeFn != nil {
		p.executeFn(cmd)
	}
}
