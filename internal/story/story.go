// Package story defines the catalog of sample tables.
package story

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/tabula/tabula/internal/config"
	"github.com/tabula/tabula/internal/config/data"
	"github.com/tabula/tabula/internal/dao"
	"github.com/tabula/tabula/internal/model"
	"github.com/tabula/tabula/internal/model1"
)

// BuildFunc creates the data source backing a story.
type BuildFunc func(ctx context.Context, env *Env) (dao.Source, error)

// Story describes a sample table: its columns, its data and its behavior.
type Story struct {
	Name          string
	Title         string
	Description   string
	Header        model1.Header
	SelectionMode model.SelectionMode
	DisabledKeys  []string
	KeyPath       string
	KeyFunc       model.KeyFunc
	Remote        bool
	Build         BuildFunc
	SortFunc      model.SortFunc
	InitialSort   model1.SortDescriptor
}

// Env carries the settings and shared clients stories build sources from.
type Env struct {
	Swapi   data.HTTPSource
	Reddit  data.HTTPSource
	S3      data.S3Source
	Timeout time.Duration
	Delay   time.Duration
	Client  *http.Client
	Cache   *dao.PageCache
	Logger  *slog.Logger
}

// NewEnv derives an environment from the app settings.
func NewEnv(cfg *config.Tabula, log *slog.Logger) *Env {
	if cfg == nil {
		cfg = config.NewTabula()
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &Env{
		Swapi:   cfg.Sources.Swapi,
		Reddit:  cfg.Sources.Reddit,
		S3:      cfg.Sources.S3,
		Timeout: cfg.Timeout(),
		Delay:   cfg.Delay(),
		Client:  &http.Client{},
		Cache:   dao.NewPageCache(cfg.TTL()),
		Logger:  log,
	}
}

// Schema returns the record schema for the story columns.
func (s *Story) Schema() (*model1.Schema, error) {
	return model1.NewSchema(s.Header)
}

// NewList builds the story source and binds it to a fresh async list.
func (s *Story) NewList(ctx context.Context, env *Env) (*model.AsyncList, error) {
	if s.Build == nil {
		return nil, fmt.Errorf("story %q: no data source", s.Name)
	}
	if env == nil {
		env = NewEnv(nil, nil)
	}

	src, err := s.Build(ctx, env)
	if err != nil {
		return nil, fmt.Errorf("story %q: %w", s.Name, err)
	}
	if s.Remote && env.Cache != nil {
		src = dao.NewCachedSource(s.Name, src, env.Cache)
	}

	opts := []model.Option{
		model.WithSelectionMode(s.SelectionMode),
		model.WithDisabledKeys(s.DisabledKeys...),
		model.WithLogger(env.Logger.With("story", s.Name)),
		model.WithSortFunc(s.SortFunc),
	}
	switch {
	case s.KeyFunc != nil:
		opts = append(opts, model.WithKeyFunc(s.KeyFunc))
	case s.KeyPath != "":
		opts = append(opts, model.WithKeyFunc(model.KeyPath(s.KeyPath)))
	}
	if s.InitialSort.IsSorted() {
		opts = append(opts, model.WithInitialSort(s.InitialSort))
	}

	return model.NewAsyncList(s.Header, src, opts...)
}

// httpSource builds an HTTP backed source for a story.
func httpSource(s *Story, env *Env, src data.HTTPSource) (dao.Source, error) {
	schema, err := s.Schema()
	if err != nil {
		return nil, err
	}

	return dao.NewHTTPSource(schema, dao.HTTPOptions{
		URL:         src.URL,
		ItemsPath:   src.ItemsPath,
		CursorPath:  src.CursorPath,
		CursorParam: src.CursorParam,
		KeyPath:     src.KeyPath,
		FieldPrefix: src.FieldPrefix,
		Delay:       env.Delay,
		Timeout:     env.Timeout,
		Client:      env.Client,
		Logger:      env.Logger.With("story", s.Name),
	})
}

// staticSource serves rows as a single page, optionally pending at a page.
func staticSource(s *Story, rows []map[string]string, pendAt int) (dao.Source, error) {
	schema, err := s.Schema()
	if err != nil {
		return nil, err
	}

	rr, err := records(schema, rows)
	if err != nil {
		return nil, err
	}
	src := dao.NewStaticSource(rr, 0)
	if pendAt >= 0 {
		src.PendAt(pendAt)
	}

	return src, nil
}

// records converts string rows into records. The "id" entry is the key.
func records(schema *model1.Schema, rows []map[string]string) (model1.Records, error) {
	rr := make(model1.Records, 0, len(rows))
	for _, row := range rows {
		fields := make(map[string]model1.Value, len(row))
		for k, v := range row {
			if k == "id" && !schema.Has(k) {
				continue
			}
			fields[k] = model1.Str(v)
		}
		r, err := schema.NewRecord(row["id"], fields)
		if err != nil {
			return nil, fmt.Errorf("row %q: %w", row["id"], err)
		}
		rr = append(rr, r)
	}

	return rr, nil
}
