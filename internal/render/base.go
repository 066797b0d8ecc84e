package render

import (
	"fmt"

	"github.com/tabula/tabula/internal/model1"
)

// Renderer converts records into display rows.
type Renderer interface {
	Render(r model1.Record, h model1.Header, row *model1.Row) error
	ColorerFunc() model1.ColorerFunc
}

// Base provides a base renderer implementation
type Base struct{}

// ColorerFunc returns the default colorer
func (*Base) ColorerFunc() model1.ColorerFunc {
	return model1.DefaultColorer
}

// Render renders a record in header order, applying column decorators.
func (*Base) Render(r model1.Record, h model1.Header, row *model1.Row) error {
	if r.Schema() == nil {
		return fmt.Errorf("record %q has no schema", r.Key())
	}

	row.ID = r.Key()
	row.Fields = make(model1.Fields, len(h))
	for i, c := range h {
		v, ok := r.Get(c.ID)
		if !ok {
			return fmt.Errorf("record %q column %q: %w", r.Key(), c.ID, model1.ErrUnknownColumn)
		}
		row.Fields[i] = Cell(c, v)
	}
	return nil
}

// Cell formats a single value for its column.
func Cell(c model1.Column, v model1.Value) string {
	if c.Decorator != nil {
		return c.Decorator(v)
	}
	return v.String()
}

// RowEvents renders records into row events keyed by keyFn. Kinds overrides
// the event kind per key; unlisted rows are unchanged.
func RowEvents(rr model1.Records, h model1.Header, keyFn func(model1.Record) string, kinds map[string]model1.ResEvent, patches map[string]model1.Delta) (*model1.RowEvents, error) {
	if keyFn == nil {
		keyFn = model1.Record.Key
	}

	var r Base
	out := model1.NewRowEvents(len(rr))
	for _, rec := range rr {
		var row model1.Row
		if err := r.Render(rec, h, &row); err != nil {
			return nil, err
		}
		row.ID = keyFn(rec)

		kind, ok := kinds[row.ID]
		if !ok {
			kind = model1.EventUnchanged
		}
		re := model1.NewRowEvent(kind, row)
		if p, ok := patches[row.ID]; ok {
			re = model1.NewRowEventWithPatch(row, p)
		}
		out.Add(re)
	}

	return out, nil
}
