package story

import (
	"context"
	"sort"

	"github.com/tabula/tabula/internal/aws"
	"github.com/tabula/tabula/internal/dao"
	"github.com/tabula/tabula/internal/model"
	"github.com/tabula/tabula/internal/model1"
	"github.com/tabula/tabula/internal/render"
	"github.com/tidwall/gjson"
)

func init() {
	Register(&Story{
		Name:          "async-loading",
		Title:         "Load more table",
		Description:   "Star Wars characters, one page at a time",
		Header:        swapiHeader,
		SelectionMode: model.SelectionMultiple,
		KeyPath:       "name",
		Remote:        true,
		Build: func(_ context.Context, env *Env) (dao.Source, error) {
			return httpSource(&Story{Name: "async-loading", Header: swapiHeader}, env, env.Swapi)
		},
	})
	Register(&Story{
		Name:          "reddit",
		Title:         "Reddit table",
		Description:   "Resizable, sortable posts from r/upliftingnews",
		Header:        redditHeader,
		SelectionMode: model.SelectionMultiple,
		KeyPath:       "data.id",
		Remote:        true,
		SortFunc:      PayloadSort("data."),
		Build: func(_ context.Context, env *Env) (dao.Source, error) {
			return httpSource(&Story{Name: "reddit", Header: redditHeader}, env, env.Reddit)
		},
	})
	Register(&Story{
		Name:          "s3-objects",
		Title:         "S3 objects",
		Description:   "Objects of the configured bucket",
		Header:        s3Header,
		SelectionMode: model.SelectionSingle,
		Remote:        true,
		Build:         s3Source,
	})
}

var (
	swapiHeader = model1.Header{
		{ID: "name", Name: "Name", Attrs: model1.Attrs{RowHeader: true, Sortable: true}},
		{ID: "height", Name: "Height", Attrs: model1.Attrs{Sortable: true, Kind: model1.KindNumber, Align: model1.AlignEnd}},
		{ID: "mass", Name: "Mass", Attrs: model1.Attrs{Sortable: true, Kind: model1.KindNumber, Align: model1.AlignEnd}},
		{ID: "birth_year", Name: "Birth Year", Attrs: model1.Attrs{Sortable: true, Natural: true}},
	}

	redditHeader = model1.Header{
		{ID: "score", Name: "Score", Attrs: model1.Attrs{Width: 10, Resizable: true, Sortable: true, Kind: model1.KindNumber}},
		{ID: "title", Name: "Title", Attrs: model1.Attrs{RowHeader: true, Width: 60, Resizable: true, Sortable: true}},
		{ID: "author", Name: "Author", Attrs: model1.Attrs{Width: 20, Resizable: true, Sortable: true}},
		{ID: "num_comments", Name: "Comments", Attrs: model1.Attrs{Width: 10, Resizable: true, Sortable: true, Kind: model1.KindNumber}},
	}

	s3Header = model1.Header{
		{ID: dao.S3ColKey, Name: "Key", Attrs: model1.Attrs{RowHeader: true, Sortable: true, Natural: true}},
		{ID: dao.S3ColSize, Name: "Size", Attrs: model1.Attrs{Sortable: true, Kind: model1.KindNumber, Align: model1.AlignEnd, Decorator: render.Bytes}},
		{ID: dao.S3ColStorageClass, Name: "Storage Class", Attrs: model1.Attrs{Sortable: true}},
		{ID: dao.S3ColModified, Name: "Age", Attrs: model1.Attrs{Sortable: true, Decorator: render.Age}},
	}
)

// PayloadSort orders records by the raw payload field prefix+column rather
// than by the decoded cell, falling back to the cell when there is no payload.
func PayloadSort(prefix string) model.SortFunc {
	return func(rr model1.Records, h model1.Header, desc model1.SortDescriptor) (model1.Records, error) {
		desc, err := desc.Resolve(h)
		if err != nil {
			return nil, err
		}

		value := func(r model1.Record) model1.Value {
			if raw := r.Raw(); raw != nil {
				return dao.ToValue(gjson.GetBytes(raw, prefix+desc.Column))
			}
			v, _ := r.Get(desc.Column)
			return v
		}

		out := rr.Clone()
		sort.SliceStable(out, func(i, j int) bool {
			c := model1.Compare(value(out[i]), value(out[j]))
			if desc.Direction == model1.Descending {
				c = -c
			}
			return c < 0
		})

		return out, nil
	}
}

func s3Source(ctx context.Context, env *Env) (dao.Source, error) {
	schema, err := model1.NewSchema(s3Header)
	if err != nil {
		return nil, err
	}

	client, err := aws.NewS3Client(ctx, aws.ClientConfig{
		Profile:  env.S3.Profile,
		Region:   env.S3.Region,
		Endpoint: env.S3.Endpoint,
		Timeout:  env.Timeout,
	}, aws.NewProfileDiscovery())
	if err != nil {
		return nil, err
	}

	return dao.NewS3Source(client, schema, env.S3.Bucket, env.S3.Prefix, env.S3.PageSize)
}
