package ui

import (
	"testing"

	"github.com/derailed/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyActions(t *testing.T) {
	aa := NewKeyActions()
	aa.Bulk(KeyMap{
		KeyS:           NewKeyAction("Sort", nil, true),
		tcell.KeyCtrlR: NewKeyAction("Reload", nil, true),
		KeyH:           NewKeyAction("Prev Column", nil, false),
	})
	aa.Add(KeySpace, NewKeyAction("Select", nil, true))
	assert.Equal(t, 4, aa.Len())

	a, ok := aa.Get(KeyS)
	require.True(t, ok)
	assert.Equal(t, "Sort", a.Description)

	aa.Delete(KeyH, KeyL)
	assert.Equal(t, 3, aa.Len())
	_, ok = aa.Get(KeyH)
	assert.False(t, ok)
}

func TestKeyActions_Hints(t *testing.T) {
	aa := NewKeyActions()
	aa.Bulk(KeyMap{
		tcell.KeyCtrlR: NewKeyAction("Reload", nil, true),
		KeyS:           NewKeyAction("Sort", nil, true),
		KeyL:           NewKeyAction("Load More", nil, true),
		KeySpace:       NewKeyAction("Select", nil, true),
	})

	hh := aa.Hints()
	require.Len(t, hh, 4)
	assert.Equal(t, MenuHint{Mnemonic: "L", Description: "Load More", Visible: true}, hh[0])
	assert.Equal(t, "s", hh[1].Mnemonic)
	assert.Equal(t, "Ctrl-R", hh[2].Mnemonic)
	assert.Equal(t, "space", hh[3].Mnemonic)
}

func TestAsKey(t *testing.T) {
	assert.Equal(t, KeyS, AsKey(tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone)))
	assert.Equal(t, KeyShiftG, AsKey(tcell.NewEventKey(tcell.KeyRune, 'G', tcell.ModNone)))
	assert.Equal(t, tcell.KeyCtrlD, AsKey(tcell.NewEventKey(tcell.KeyCtrlD, 0, tcell.ModCtrl)))
}

func TestKeyName(t *testing.T) {
	assert.Equal(t, "space", KeyName(KeySpace))
	assert.Equal(t, "<", KeyName(KeyLess))
	assert.Equal(t, "Ctrl-D", KeyName(tcell.KeyCtrlD))
}
