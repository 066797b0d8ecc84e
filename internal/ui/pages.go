package ui

import (
	"slices"

	"github.com/derailed/tview"
)

// Pages stacks named primitives, showing the top one.
type Pages struct {
	*tview.Pages
	stack   []string
	pageMap map[string]tview.Primitive
}

// NewPages returns a new pages manager
func NewPages() *Pages {
	return &Pages{
		Pages:   tview.NewPages(),
		pageMap: make(map[string]tview.Primitive),
	}
}

// Push shows page on top of the stack, replacing any page of the same name.
func (p *Pages) Push(name string, page tview.Primitive) {
	if _, ok := p.pageMap[name]; ok {
		p.remove(name)
	}
	p.stack = append(p.stack, name)
	p.pageMap[name] = page
	p.AddPage(name, page, true, true)
}

// Pop removes the top page and returns the name of the new top.
func (p *Pages) Pop() (string, bool) {
	if len(p.stack) == 0 {
		return "", false
	}
	p.remove(p.stack[len(p.stack)-1])

	return p.Current(), true
}

func (p *Pages) remove(name string) {
	if i := slices.Index(p.stack, name); i >= 0 {
		p.stack = slices.Delete(p.stack, i, i+1)
	}
	delete(p.pageMap, name)
	p.RemovePage(name)

	if top := p.Current(); top != "" {
		p.SwitchToPage(top)
	}
}

// Current returns the current page name
func (p *Pages) Current() string {
	if len(p.stack) == 0 {
		return ""
	}
	return p.stack[len(p.stack)-1]
}

// CurrentPage returns the current page primitive
func (p *Pages) CurrentPage() tview.Primitive {
	return p.pageMap[p.Current()]
}

// StackSize returns the stack depth
func (p *Pages) StackSize() int {
	return len(p.stack)
}

// ClearStack clears all pages
func (p *Pages) ClearStack() {
	for _, name := range p.stack {
		p.RemovePage(name)
	}
	p.stack = p.stack[:0]
	clear(p.pageMap)
}
