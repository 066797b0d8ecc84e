package ui

import (
	"context"
	"slices"
	"strings"

	"github.com/derailed/tview"
)

// MenuHint represents a keyboard mnemonic.
type MenuHint struct {
	Mnemonic    string
	Description string
	Visible     bool
}

// IsBlank checks if menu hint is a placeholder.
func (m MenuHint) IsBlank() bool {
	return m.Mnemonic == "" && m.Description == "" && !m.Visible
}

// MenuHints represents a collection of hints.
type MenuHints []MenuHint

// Sort orders single key mnemonics first, then by description.
func (h MenuHints) Sort() {
	slices.SortStableFunc(h, func(a, b MenuHint) int {
		sa, sb := len(a.Mnemonic) == 1, len(b.Mnemonic) == 1
		switch {
		case sa && !sb:
			return -1
		case sb && !sa:
			return 1
		}
		return strings.Compare(strings.ToLower(a.Description), strings.ToLower(b.Description))
	})
}

// Hinter represent a menu mnemonic provider.
type Hinter interface {
	// Hints returns a collection of menu hints.
	Hints() MenuHints
}

// Primitive represents a UI primitive.
type Primitive interface {
	tview.Primitive

	// Name returns the view name.
	Name() string
}

// Igniter represents a runnable view.
type Igniter interface {
	// Init initializes a component.
	Init(ctx context.Context) error

	// Start starts a component.
	Start()

	// Stop terminates a component.
	Stop()
}

// Component represents a ui component.
type Component interface {
	Primitive
	Igniter
	Hinter
}

// UpdateFunc runs a ui mutation on the draw loop.
type UpdateFunc func(func())
