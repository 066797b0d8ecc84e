package model1

import (
	"fmt"
)

// Schema binds records to a header so that cell access is checked by column id.
type Schema struct {
	header Header
	index  map[string]int
}

// NewSchema validates the header and returns a schema for it.
func NewSchema(h Header) (*Schema, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	idx := make(map[string]int, len(h))
	for i, c := range h {
		idx[c.ID] = i
	}
	return &Schema{header: h.Clone(), index: idx}, nil
}

// MustSchema is NewSchema for static headers; it panics on invalid input.
func MustSchema(h Header) *Schema {
	s, err := NewSchema(h)
	if err != nil {
		panic(err)
	}
	return s
}

// Header returns the schema columns.
func (s *Schema) Header() Header {
	return s.header
}

// Has returns true if the column id is part of the schema.
func (s *Schema) Has(id string) bool {
	_, ok := s.index[id]
	return ok
}

// NewRecord builds a record, rejecting fields for columns the header does not
// declare. Absent columns are null.
func (s *Schema) NewRecord(key string, fields map[string]Value) (Record, error) {
	values := make([]Value, len(s.header))
	for id, v := range fields {
		i, ok := s.index[id]
		if !ok {
			return Record{}, fmt.Errorf("record %q field %q: %w", key, id, ErrUnknownColumn)
		}
		if k := s.header[i].Kind; k != KindNull {
			v = v.As(k)
		}
		values[i] = v
	}

	return Record{key: key, values: values, schema: s}, nil
}

// MustRecord is NewRecord for static sample data; it panics on mismatch.
func (s *Schema) MustRecord(key string, fields map[string]Value) Record {
	r, err := s.NewRecord(key, fields)
	if err != nil {
		panic(err)
	}
	return r
}

// Record represents an immutable keyed row of values.
type Record struct {
	key    string
	values []Value
	raw    []byte
	schema *Schema
}

// Key returns the record identifier.
func (r Record) Key() string {
	return r.key
}

// Schema returns the record schema.
func (r Record) Schema() *Schema {
	return r.schema
}

// Get returns the value held for a column.
func (r Record) Get(id string) (Value, bool) {
	if r.schema == nil {
		return Value{}, false
	}
	i, ok := r.schema.index[id]
	if !ok {
		return Value{}, false
	}
	return r.values[i], true
}

// Values returns a copy of the values in header order.
func (r Record) Values() []Value {
	out := make([]Value, len(r.values))
	copy(out, r.values)
	return out
}

// Raw returns the source payload the record was decoded from, if any.
func (r Record) Raw() []byte {
	return r.raw
}

// WithRaw returns a copy of the record carrying the given payload.
func (r Record) WithRaw(raw []byte) Record {
	out := r
	out.raw = append([]byte(nil), raw...)
	return out
}

// WithKey returns a copy of the record using another key.
func (r Record) WithKey(key string) Record {
	out := r
	out.key = key
	return out
}

// Fields returns the record as a column id keyed map.
func (r Record) Fields() map[string]Value {
	if r.schema == nil {
		return nil
	}
	m := make(map[string]Value, len(r.values))
	for i, c := range r.schema.header {
		m[c.ID] = r.values[i]
	}
	return m
}

// Records represents a collection of records.
type Records []Record

// Clone returns a shallow copy; records are immutable so this is enough.
func (rr Records) Clone() Records {
	out := make(Records, len(rr))
	copy(out, rr)
	return out
}

// IndexOf returns the position of the first record matching key.
func (rr Records) IndexOf(key string, keyFn func(Record) string) int {
	if keyFn == nil {
		keyFn = Record.Key
	}
	for i, r := range rr {
		if keyFn(r) == key {
			return i
		}
	}
	return -1
}
