package model1

import (
	"github.com/derailed/tcell/v2"
)

// Error represents a table model error.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrUnknownColumn     = Error("unknown column")
	ErrDuplicateColumn   = Error("duplicate column id")
	ErrEmptyColumnID     = Error("empty column id")
	ErrIllegalTransition = Error("illegal loading state transition")
)

// ResEvent represents a row event type
type ResEvent int

const (
	EventUnchanged ResEvent = 1 << iota
	EventAdd
	EventUpdate
	EventDelete
)

// ColorerFunc represents a row colorer
type ColorerFunc func(h Header, re *RowEvent, disabled bool) tcell.Color
