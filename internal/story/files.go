package story

import (
	"context"

	"github.com/tabula/tabula/internal/dao"
	"github.com/tabula/tabula/internal/model"
	"github.com/tabula/tabula/internal/model1"
)

func init() {
	Register(&Story{
		Name:          "example",
		Title:         "Files",
		Description:   "Static table with multiple selection",
		Header:        fileHeader,
		SelectionMode: model.SelectionMultiple,
		Build:         filesSource(-1),
	})
	Register(&Story{
		Name:          "disabled-rows",
		Title:         "Files",
		Description:   "Static table with row 2 disabled",
		Header:        fileHeader,
		SelectionMode: model.SelectionMultiple,
		DisabledKeys:  []string{"2"},
		Build:         filesSource(-1),
	})
	Register(&Story{
		Name:          "loading-static-items",
		Title:         "Files",
		Description:   "Static rows with a page that never arrives",
		Header:        fileHeader,
		SelectionMode: model.SelectionMultiple,
		Build:         filesSource(1),
	})
}

const longCell = "Long long long long long long long cell"

var fileHeader = model1.Header{
	{ID: "name", Name: "Name", Attrs: model1.Attrs{RowHeader: true}},
	{ID: "type", Name: "Type"},
	{ID: "date", Name: "Date Modified"},
	{ID: "a", Name: "A"},
	{ID: "b", Name: "B"},
}

var fileRows = []map[string]string{
	{"id": "1", "name": "Games", "type": "File folder", "date": "6/7/2020", "a": "Dummy content", "b": longCell},
	{"id": "2", "name": "Program Files", "type": "File folder", "date": "4/7/2021", "a": "Dummy content", "b": longCell},
	{"id": "3", "name": "bootmgr", "type": "System file", "date": "11/20/2010", "a": "Dummy content", "b": longCell},
}

func filesSource(pendAt int) BuildFunc {
	return func(_ context.Context, _ *Env) (dao.Source, error) {
		s := Story{Header: fileHeader}
		return staticSource(&s, fileRows, pendAt)
	}
}
