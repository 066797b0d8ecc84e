package model1

import (
	"fmt"
	"slices"
)

// RowEvent tracks what happened to a row since the previous snapshot.
type RowEvent struct {
	Kind  ResEvent
	Row   Row
	Patch Delta
}

func NewRowEvent(kind ResEvent, row Row) RowEvent {
	return RowEvent{
		Kind: kind,
		Row:  row,
	}
}

func NewRowEventWithPatch(row Row, patch Delta) RowEvent {
	return RowEvent{
		Kind:  EventUpdate,
		Row:   row,
		Patch: patch,
	}
}

func (r RowEvent) Clone() RowEvent {
	return RowEvent{
		Kind:  r.Kind,
		Row:   r.Row.Clone(),
		Patch: r.Patch.Clone(),
	}
}

// RowEvents a collection of row events
type RowEvents struct {
	events []RowEvent
	index  map[string]int
}

func NewRowEvents(size int) *RowEvents {
	return &RowEvents{
		events: make([]RowEvent, 0, size),
		index:  make(map[string]int, size),
	}
}

func (r *RowEvents) reindex() {
	clear(r.index)
	for i, e := range r.events {
		r.index[e.Row.ID] = i
	}
}

func (r *RowEvents) At(i int) (RowEvent, bool) {
	if i < 0 || i >= len(r.events) {
		return RowEvent{}, false
	}
	return r.events[i], true
}

func (r *RowEvents) Add(re RowEvent) {
	r.events = append(r.events, re)
	r.index[re.Row.ID] = len(r.events) - 1
}

func (r *RowEvents) Len() int {
	return len(r.events)
}

func (r *RowEvents) Empty() bool {
	return len(r.events) == 0
}

func (r *RowEvents) Get(id string) (RowEvent, bool) {
	i, ok := r.index[id]
	if !ok {
		return RowEvent{}, false
	}
	return r.At(i)
}

func (r *RowEvents) FindIndex(id string) (int, bool) {
	i, ok := r.index[id]
	return i, ok
}

func (r *RowEvents) Delete(id string) error {
	victim, ok := r.FindIndex(id)
	if !ok {
		return fmt.Errorf("unable to delete row with id: %q", id)
	}
	r.events = slices.Delete(r.events, victim, victim+1)
	r.reindex()
	return nil
}

func (r *RowEvents) Clone() *RowEvents {
	out := NewRowEvents(len(r.events))
	for _, e := range r.events {
		out.Add(e.Clone())
	}
	return out
}

func (r *RowEvents) Range(f func(int, RowEvent) bool) {
	for i, e := range r.events {
		if !f(i, e) {
			return
		}
	}
}
