package model

import "slices"

// SelectionMode returns the selection restriction.
func (l *AsyncList) SelectionMode() SelectionMode {
	return l.mode
}

// SelectedKeys returns the selected keys in selection order.
func (l *AsyncList) SelectedKeys() []string {
	l.mx.RLock()
	defer l.mx.RUnlock()
	return slices.Clone(l.selected)
}

// SetSelectedKeys replaces the selection. Disabled keys are ignored and
// single mode keeps the last key only. The keys are not checked against
// the records.
func (l *AsyncList) SetSelectedKeys(keys ...string) {
	l.mx.Lock()
	l.selected = l.admit(keys)
	l.mx.Unlock()

	l.fireChanged()
}

// ToggleSelected flips the selection of key.
func (l *AsyncList) ToggleSelected(key string) {
	l.mx.Lock()
	if i := slices.Index(l.selected, key); i >= 0 {
		l.selected = slices.Delete(slices.Clone(l.selected), i, i+1)
	} else {
		l.selected = l.admit(append(slices.Clone(l.selected), key))
	}
	l.mx.Unlock()

	l.fireChanged()
}

// IsDisabled returns true if key cannot be selected.
func (l *AsyncList) IsDisabled(key string) bool {
	return slices.Contains(l.disabled, key)
}

func (l *AsyncList) admit(keys []string) []string {
	if l.mode == SelectionNone {
		return nil
	}

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if l.IsDisabled(k) || slices.Contains(out, k) {
			continue
		}
		out = append(out, k)
	}
	if l.mode == SelectionSingle && len(out) > 1 {
		out = out[len(out)-1:]
	}

	return out
}
