package model1

import (
	"encoding/json"
	"fmt"

	"github.com/wI2L/jsondiff"
)

// Delta is an RFC 6902 patch between two record payloads.
type Delta jsondiff.Patch

// NewDelta diffs two records. Raw payloads are compared when both carry one,
// otherwise the column values are.
func NewDelta(o, n Record) (Delta, error) {
	if o.Raw() != nil && n.Raw() != nil {
		patch, err := jsondiff.CompareJSON(o.Raw(), n.Raw())
		if err != nil {
			return nil, fmt.Errorf("failed to diff %q: %w", n.Key(), err)
		}
		return Delta(patch), nil
	}

	patch, err := jsondiff.Compare(displayMap(o), displayMap(n))
	if err != nil {
		return nil, fmt.Errorf("failed to diff %q: %w", n.Key(), err)
	}
	return Delta(patch), nil
}

func displayMap(r Record) map[string]any {
	fields := r.Fields()
	m := make(map[string]any, len(fields))
	for id, v := range fields {
		switch v.Kind() {
		case KindNumber:
			n, _ := v.Number()
			m[id] = n
		case KindString:
			m[id] = v.String()
		default:
			m[id] = nil
		}
	}
	return m
}

// IsBlank returns true if nothing changed.
func (d Delta) IsBlank() bool {
	return len(d) == 0
}

func (d Delta) Clone() Delta {
	if d == nil {
		return nil
	}
	out := make(Delta, len(d))
	copy(out, d)
	return out
}

// String returns the patch as a JSON document.
func (d Delta) String() string {
	if d.IsBlank() {
		return "[]"
	}
	bb, err := json.Marshal(jsondiff.Patch(d))
	if err != nil {
		return "[]"
	}
	return string(bb)
}
