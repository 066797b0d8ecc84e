package story

import (
	"context"
	"fmt"

	"github.com/tabula/tabula/internal/dao"
	"github.com/tabula/tabula/internal/model"
	"github.com/tabula/tabula/internal/model1"
)

func init() {
	Register(&Story{
		Name:          "sortable",
		Title:         "Sortable table",
		Description:   "Every column sorts, name by default",
		Header:        sortHeader,
		SelectionMode: model.SelectionMultiple,
		Build:         sortSource(sortHeader),
	})
	Register(&Story{
		Name:        "resizing-only",
		Title:       "Resizing table",
		Description: "Resizable columns without sorting",
		Header:      resizeHeader,
		Build:       sortSource(resizeHeader),
	})
	Register(&Story{
		Name:        "resizing-sortable",
		Title:       "Resizing and sortable table",
		Description: "Resizable and sortable columns",
		Header:      sortResizeHeader,
		Build:       sortSource(sortResizeHeader),
	})
}

var (
	sortHeader = model1.Header{
		{ID: "name", Name: "Name", Attrs: model1.Attrs{RowHeader: true, Sortable: true}},
		{ID: "height", Name: "Height", Attrs: model1.Attrs{Sortable: true, Kind: model1.KindNumber}},
		{ID: "weight", Name: "Weight", Attrs: model1.Attrs{Sortable: true, Kind: model1.KindNumber}},
	}

	resizeHeader = model1.Header{
		{ID: "name", Name: "Name", Attrs: model1.Attrs{RowHeader: true, Resizable: true, Divider: true, Align: model1.AlignEnd}},
		{ID: "height", Name: "Height", Attrs: model1.Attrs{Align: model1.AlignCenter, Kind: model1.KindNumber}},
		{ID: "weight", Name: "Weight", Attrs: model1.Attrs{Resizable: true, Align: model1.AlignCenter, Kind: model1.KindNumber}},
	}

	sortResizeHeader = model1.Header{
		{ID: "name", Name: "Name", Attrs: model1.Attrs{RowHeader: true, Resizable: true, Divider: true, Sortable: true}},
		{ID: "height", Name: "Height", Attrs: model1.Attrs{Sortable: true, Kind: model1.KindNumber}},
		{ID: "weight", Name: "Weight", Attrs: model1.Attrs{Resizable: true, Sortable: true, Kind: model1.KindNumber}},
	}
)

// sortRows returns twenty rows A..T with heights 1..20 and cycling weights.
func sortRows() []map[string]string {
	weights := []int{3, 1, 4, 2}
	rows := make([]map[string]string, 0, 20)
	for i := range 20 {
		rows = append(rows, map[string]string{
			"id":     fmt.Sprint(i + 1),
			"name":   string(rune('A' + i)),
			"height": fmt.Sprint(i + 1),
			"weight": fmt.Sprint(weights[i%len(weights)]),
		})
	}
	return rows
}

func sortSource(h model1.Header) BuildFunc {
	return func(_ context.Context, _ *Env) (dao.Source, error) {
		s := Story{Header: h}
		return staticSource(&s, sortRows(), -1)
	}
}
