package model

import (
	"log/slog"

	"github.com/tabula/tabula/internal/model1"
)

// Option configures an AsyncList.
type Option func(*AsyncList)

// WithKeyFunc sets the record identity rule used by Remove, Update and selection.
func WithKeyFunc(fn KeyFunc) Option {
	return func(l *AsyncList) {
		if fn != nil {
			l.keyFn = fn
		}
	}
}

// WithSortFunc replaces the default column comparison sort.
func WithSortFunc(fn SortFunc) Option {
	return func(l *AsyncList) {
		if fn != nil {
			l.sortFn = fn
		}
	}
}

// WithLogger sets the list logger.
func WithLogger(log *slog.Logger) Option {
	return func(l *AsyncList) {
		if log != nil {
			l.log = log
		}
	}
}

// WithInitialSort applies a descriptor to every page as it arrives.
func WithInitialSort(desc model1.SortDescriptor) Option {
	return func(l *AsyncList) {
		l.sort = desc
	}
}

// WithDisabledKeys marks rows that cannot be selected.
func WithDisabledKeys(keys ...string) Option {
	return func(l *AsyncList) {
		l.disabled = append([]string(nil), keys...)
	}
}

// WithSelectionMode restricts selection.
func WithSelectionMode(m SelectionMode) Option {
	return func(l *AsyncList) {
		l.mode = m
	}
}
