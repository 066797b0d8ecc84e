package story

import (
	"context"
	"fmt"

	"github.com/tabula/tabula/internal/dao"
	"github.com/tabula/tabula/internal/model"
	"github.com/tabula/tabula/internal/model1"
)

// Many items table dimensions.
const (
	ManyRows    = 1000
	ManyColumns = 100
)

func init() {
	Register(&Story{
		Name:          "many-items",
		Title:         "Many items table",
		Description:   "1000 rows by 100 columns",
		Header:        manyHeader(),
		SelectionMode: model.SelectionMultiple,
		Build:         manySource,
	})
}

func manyHeader() model1.Header {
	h := make(model1.Header, 0, ManyColumns)
	for j := range ManyColumns {
		h = append(h, model1.Column{
			ID:   fmt.Sprintf("C%d", j),
			Name: fmt.Sprintf("Column %d", j),
			Attrs: model1.Attrs{
				RowHeader: j == 1,
				Width:     10,
				MinWidth:  10,
				Natural:   true,
			},
		})
	}
	return h
}

func manySource(_ context.Context, _ *Env) (dao.Source, error) {
	schema, err := model1.NewSchema(manyHeader())
	if err != nil {
		return nil, err
	}

	rr := make(model1.Records, 0, ManyRows)
	for i := range ManyRows {
		fields := make(map[string]model1.Value, ManyColumns)
		for j := range ManyColumns {
			fields[fmt.Sprintf("C%d", j)] = model1.Str(fmt.Sprintf("%d, %d", i, j))
		}
		r, err := schema.NewRecord(fmt.Sprintf("R%d", i), fields)
		if err != nil {
			return nil, err
		}
		rr = append(rr, r)
	}

	return dao.NewStaticSource(rr, 0), nil
}
