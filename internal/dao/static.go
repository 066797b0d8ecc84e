package dao

import (
	"context"
	"fmt"
	"strconv"

	"github.com/tabula/tabula/internal/model1"
)

// StaticSource pages through an in-memory collection.
type StaticSource struct {
	items    model1.Records
	pageSize int
	pendAt   int
}

// NewStaticSource returns a source serving items in pages of pageSize.
// A pageSize of 0 serves everything as a single page.
func NewStaticSource(items model1.Records, pageSize int) *StaticSource {
	return &StaticSource{
		items:    items.Clone(),
		pageSize: pageSize,
		pendAt:   -1,
	}
}

// PendAt makes the load of the given page (0 based) block until cancelled.
func (s *StaticSource) PendAt(page int) *StaticSource {
	s.pendAt = page
	return s
}

// Load implements Source. The cursor is the offset of the next page.
func (s *StaticSource) Load(ctx context.Context, cursor string) (Page, error) {
	offset := 0
	if cursor != "" {
		n, err := strconv.Atoi(cursor)
		if err != nil || n < 0 || n > len(s.items) {
			return Page{}, fmt.Errorf("cursor %q: %w", cursor, ErrInvalidPage)
		}
		offset = n
	}

	if s.pendAt >= 0 && s.pageIndex(offset) >= s.pendAt {
		<-ctx.Done()
		return Page{}, ctx.Err()
	}

	end := len(s.items)
	if s.pageSize > 0 && offset+s.pageSize < end {
		end = offset + s.pageSize
	}

	page := Page{Items: s.items[offset:end].Clone()}
	if end < len(s.items) || (s.pendAt >= 0 && s.pageIndex(end) >= s.pendAt) {
		page.Cursor = strconv.Itoa(end)
	}
	return page, nil
}

func (s *StaticSource) pageIndex(offset int) int {
	if s.pageSize <= 0 {
		if offset == 0 {
			return 0
		}
		return 1
	}
	return offset / s.pageSize
}
