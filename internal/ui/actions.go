// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tabula

package ui

import (
	"sync"

	"github.com/derailed/tcell/v2"
)

// Rune keys used by the table bindings.
const (
	KeyS tcell.Key = 's'
	KeyL tcell.Key = 'L'
	KeyJ tcell.Key = 'j'
	KeyK tcell.Key = 'k'
	KeyG tcell.Key = 'g'

	KeyShiftS tcell.Key = 'S'
	KeyShiftG tcell.Key = 'G'
	KeySpace  tcell.Key = ' '
	KeyLess   tcell.Key = '<'
	KeyMore   tcell.Key = '>'
	KeyH      tcell.Key = 'h'
	KeyLowerL tcell.Key = 'l'
)

var keyNames = map[tcell.Key]string{
	KeySpace:  "space",
	KeyShiftS: "shift-s",
	KeyShiftG: "shift-g",
}

// ActionHandler handles a keyboard command.
type ActionHandler func(*tcell.EventKey) *tcell.EventKey

// KeyAction represents a keyboard action.
type KeyAction struct {
	Description string
	Action      ActionHandler
	Visible     bool
}

// KeyMap tracks key to action mappings.
type KeyMap map[tcell.Key]KeyAction

// NewKeyAction returns a new keyboard action.
func NewKeyAction(d string, a ActionHandler, visible bool) KeyAction {
	return KeyAction{Description: d, Action: a, Visible: visible}
}

// KeyActions tracks the bindings of a component.
type KeyActions struct {
	actions KeyMap
	mx      sync.RWMutex
}

// NewKeyActions returns an empty binding set.
func NewKeyActions() *KeyActions {
	return &KeyActions{actions: make(KeyMap)}
}

// Add binds a key.
func (a *KeyActions) Add(k tcell.Key, action KeyAction) {
	a.mx.Lock()
	defer a.mx.Unlock()

	a.actions[k] = action
}

// Bulk binds several keys at once.
func (a *KeyActions) Bulk(km KeyMap) {
	a.mx.Lock()
	defer a.mx.Unlock()

	for k, v := range km {
		a.actions[k] = v
	}
}

// Get returns the action bound to k.
func (a *KeyActions) Get(k tcell.Key) (KeyAction, bool) {
	a.mx.RLock()
	defer a.mx.RUnlock()

	v, ok := a.actions[k]
	return v, ok
}

// Delete unbinds keys.
func (a *KeyActions) Delete(kk ...tcell.Key) {
	a.mx.Lock()
	defer a.mx.Unlock()

	for _, k := range kk {
		delete(a.actions, k)
	}
}

// Len returns the number of bindings.
func (a *KeyActions) Len() int {
	a.mx.RLock()
	defer a.mx.RUnlock()

	return len(a.actions)
}

// Hints returns menu hints for the bindings.
func (a *KeyActions) Hints() MenuHints {
	a.mx.RLock()
	defer a.mx.RUnlock()

	hh := make(MenuHints, 0, len(a.actions))
	for k, v := range a.actions {
		hh = append(hh, MenuHint{
			Mnemonic:    KeyName(k),
			Description: v.Description,
			Visible:     v.Visible,
		})
	}
	hh.Sort()

	return hh
}

// KeyName returns a display name for k.
func KeyName(k tcell.Key) string {
	if n, ok := keyNames[k]; ok {
		return n
	}
	if n, ok := tcell.KeyNames[k]; ok {
		return n
	}
	return string(rune(k))
}

// AsKey converts an event into a binding key, mapping runes onto keys.
func AsKey(evt *tcell.EventKey) tcell.Key {
	if evt.Key() != tcell.KeyRune {
		return evt.Key()
	}
	return tcell.Key(evt.Rune())
}
