package model1

import (
	"testing"

	"github.com/derailed/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestDefaultColorer(t *testing.T) {
	patched := Delta{{Type: "replace", Path: "/a", Value: 2}}

	uu := map[string]struct {
		re       *RowEvent
		disabled bool
		e        tcell.Color
	}{
		"unchanged": {re: &RowEvent{Kind: EventUnchanged}, e: StdColor},
		"added":     {re: &RowEvent{Kind: EventAdd}, e: AddColor},
		"updated":   {re: &RowEvent{Kind: EventUpdate}, e: ModColor},
		"deleted":   {re: &RowEvent{Kind: EventDelete}, e: KillColor},
		"disabled":  {re: &RowEvent{Kind: EventAdd}, disabled: true, e: KillColor},
		"patched":   {re: &RowEvent{Kind: EventUnchanged, Patch: patched}, e: ModColor},
		"nil":       {e: StdColor},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			assert.Equal(t, u.e, DefaultColorer(nil, u.re, u.disabled))
		})
	}
}
