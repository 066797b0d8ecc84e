package dao

import (
	"context"

	"github.com/tabula/tabula/internal/model1"
)

// Page represents one batch of records fetched from a source.
type Page struct {
	Items model1.Records

	// Cursor marks the next page. Empty means there are no more pages.
	Cursor string
}

// Source fetches successive pages of records.
type Source interface {
	// Load fetches the page at cursor. An empty cursor requests the first page.
	Load(ctx context.Context, cursor string) (Page, error)
}

// Invalidator is implemented by sources holding stale state across reloads.
type Invalidator interface {
	Invalidate()
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context, cursor string) (Page, error)

// Load implements Source.
func (f SourceFunc) Load(ctx context.Context, cursor string) (Page, error) {
	return f(ctx, cursor)
}

// Error represents a data source error.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrBadStatus    = Error("unexpected response status")
	ErrInvalidJSON  = Error("invalid JSON payload")
	ErrInvalidPage  = Error("invalid page cursor")
	ErrNoURL        = Error("no endpoint URL configured")
	ErrNoBucket     = Error("no bucket configured")
	ErrMissingItems = Error("items not found in payload")
)
