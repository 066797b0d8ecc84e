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
		Name:          "dynamic",
		Title:         "Dynamic table",
		Description:   "Generated rows keyed by Foo, with Foo 5 disabled",
		Header:        itemHeader(model1.Attrs{Width: 15, MinWidth: 15}),
		SelectionMode: model.SelectionMultiple,
		DisabledKeys:  []string{"Foo 5"},
		KeyFunc:       model.KeyColumn("foo"),
		Build:         itemsSource(itemRows(), -1),
	})
	Register(&Story{
		Name:          "empty-state",
		Title:         "Empty state",
		Description:   "Table without rows",
		Header:        itemHeader(model1.Attrs{Width: 20, MinWidth: 20}),
		SelectionMode: model.SelectionMultiple,
		Build:         itemsSource(nil, -1),
	})
	Register(&Story{
		Name:          "loading-no-items",
		Title:         "Empty state",
		Description:   "First page never arrives",
		Header:        itemHeader(model1.Attrs{Width: 20, MinWidth: 20}),
		SelectionMode: model.SelectionMultiple,
		Build:         itemsSource(nil, 0),
	})
	Register(&Story{
		Name:          "loading-with-items",
		Title:         "Dynamic table",
		Description:   "Rows shown while the next page is loading",
		Header:        itemHeader(model1.Attrs{Width: 15, MinWidth: 15}),
		SelectionMode: model.SelectionMultiple,
		Build:         itemsSource(itemRows(), 1),
	})
	Register(&Story{
		Name:          "show-dividers",
		Title:         "Show Dividers table",
		Description:   "Dividers after Foo and Baz",
		Header:        dividerHeader,
		SelectionMode: model.SelectionMultiple,
		Build:         itemsSource(itemRows(), -1),
	})
	Register(&Story{
		Name:          "text-align",
		Title:         "Text align table",
		Description:   "Start, center and end aligned columns",
		Header:        alignHeader,
		SelectionMode: model.SelectionMultiple,
		Build:         itemsSource(itemRows(), -1),
	})
}

var (
	dividerHeader = model1.Header{
		{ID: "foo", Name: "Foo", Attrs: model1.Attrs{RowHeader: true, Divider: true, Width: 15}},
		{ID: "bar", Name: "Bar", Attrs: model1.Attrs{Width: 15}},
		{ID: "baz", Name: "Baz", Attrs: model1.Attrs{Divider: true, Width: 15}},
		{ID: "yah", Name: "Yah", Attrs: model1.Attrs{Width: 15}},
	}

	alignHeader = model1.Header{
		{ID: "foo", Name: "Foo", Attrs: model1.Attrs{RowHeader: true}},
		{ID: "bar", Name: "Bar", Attrs: model1.Attrs{Align: model1.AlignCenter}},
		{ID: "baz", Name: "Baz", Attrs: model1.Attrs{Align: model1.AlignEnd}},
		{ID: "yah", Name: "Yah", Attrs: model1.Attrs{Align: model1.AlignEnd}},
	}
)

// itemHeader returns the Foo/Bar/Baz/Yah columns sharing attrs.
func itemHeader(attrs model1.Attrs) model1.Header {
	h := make(model1.Header, 0, 4)
	for _, id := range []string{"foo", "bar", "baz", "yah"} {
		c := model1.Column{ID: id, Name: title(id), Attrs: attrs}
		c.RowHeader = id == "foo"
		h = append(h, c)
	}
	return h
}

func itemRows() []map[string]string {
	rows := make([]map[string]string, 0, 10)
	for i := 1; i <= 10; i++ {
		rows = append(rows, map[string]string{
			"id":  fmt.Sprint(i),
			"foo": fmt.Sprintf("Foo %d", i),
			"bar": fmt.Sprintf("Bar %d", i),
			"baz": fmt.Sprintf("Baz %d", i),
			"yah": fmt.Sprintf("Yah long long long %d", i),
		})
	}
	return rows
}

func itemsSource(rows []map[string]string, pendAt int) BuildFunc {
	return func(_ context.Context, _ *Env) (dao.Source, error) {
		s := Story{Header: itemHeader(model1.Attrs{})}
		return staticSource(&s, rows, pendAt)
	}
}

func title(id string) string {
	if id == "" {
		return id
	}
	return string(id[0]-'a'+'A') + id[1:]
}
