package model

import (
	"github.com/tabula/tabula/internal/model1"
	"github.com/tidwall/gjson"
)

// DefaultKey uses the record's own key.
func DefaultKey(r model1.Record) string {
	return r.Key()
}

// KeyPath reads the key from a nested field of the record payload, falling
// back to the record key when the payload lacks it.
func KeyPath(path string) KeyFunc {
	return func(r model1.Record) string {
		if raw := r.Raw(); raw != nil {
			if v := gjson.GetBytes(raw, path); v.Exists() && v.String() != "" {
				return v.String()
			}
		}
		return r.Key()
	}
}

// KeyColumn uses the display text of a column as the key, falling back to
// the record key when the column is null.
func KeyColumn(id string) KeyFunc {
	return func(r model1.Record) string {
		if v, ok := r.Get(id); ok && !v.IsNull() {
			return v.String()
		}
		return r.Key()
	}
}
