package model1

import "github.com/derailed/tcell/v2"

// Row palette.
var (
	ModColor       tcell.Color = tcell.ColorYellow
	AddColor       tcell.Color = tcell.ColorBlue
	StdColor       tcell.Color = tcell.ColorWhite
	HighlightColor tcell.Color = tcell.ColorAqua
	KillColor      tcell.Color = tcell.ColorGray
	ErrColor       tcell.Color = tcell.ColorRed
)

// eventColor maps a row event to its palette entry. Entries are pointers so
// overriding a palette var is picked up.
var eventColor = map[ResEvent]*tcell.Color{
	EventAdd:    &AddColor,
	EventUpdate: &ModColor,
	EventDelete: &KillColor,
}

// DefaultColorer paints disabled rows gray, patched or updated rows yellow
// and freshly fetched rows blue.
func DefaultColorer(_ Header, re *RowEvent, disabled bool) tcell.Color {
	switch {
	case disabled:
		return KillColor
	case re == nil:
		return StdColor
	case !re.Patch.IsBlank():
		return ModColor
	}
	if c, ok := eventColor[re.Kind]; ok {
		return *c
	}

	return StdColor
}
