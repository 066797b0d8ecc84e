package dao

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"time"

	"github.com/tabula/tabula/internal/model1"
	"github.com/tidwall/gjson"
)

// DefaultHTTPTimeout bounds a single page request.
const DefaultHTTPTimeout = 30 * time.Second

var insecureSchemeRX = regexp.MustCompile(`(?i)^http://`)

// HTTPOptions configures a paginated JSON endpoint.
type HTTPOptions struct {
	// URL is the first page endpoint.
	URL string

	// ItemsPath locates the item array in a response, e.g. "results".
	ItemsPath string

	// CursorPath locates the next cursor in a response, e.g. "next".
	CursorPath string

	// CursorParam names the query parameter carrying the cursor. When empty,
	// the cursor is itself the URL of the next page.
	CursorParam string

	// KeyPath locates the record key within an item, e.g. "data.id".
	KeyPath string

	// FieldPrefix is prepended to column ids to locate values, e.g. "data.".
	FieldPrefix string

	// Delay holds off each request.
	Delay time.Duration

	// Timeout bounds each request.
	Timeout time.Duration

	Client *http.Client
	Logger *slog.Logger
}

// HTTPSource fetches pages of records from a JSON API.
type HTTPSource struct {
	opts   HTTPOptions
	schema *model1.Schema
	client *http.Client
	log    *slog.Logger
}

// NewHTTPSource returns a source decoding items into records of schema.
func NewHTTPSource(schema *model1.Schema, opts HTTPOptions) (*HTTPSource, error) {
	if opts.URL == "" {
		return nil, ErrNoURL
	}
	if _, err := url.Parse(opts.URL); err != nil {
		return nil, fmt.Errorf("invalid endpoint %q: %w", opts.URL, err)
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultHTTPTimeout
	}

	s := HTTPSource{
		opts:   opts,
		schema: schema,
		client: opts.Client,
		log:    opts.Logger,
	}
	if s.client == nil {
		s.client = http.DefaultClient
	}
	if s.log == nil {
		s.log = slog.New(slog.DiscardHandler)
	}

	return &s, nil
}

// NormalizeCursor upgrades a cursor using an insecure scheme to https.
func NormalizeCursor(cursor string) string {
	return insecureSchemeRX.ReplaceAllString(cursor, "https://")
}

// RequestURL returns the URL fetched for cursor.
func (s *HTTPSource) RequestURL(cursor string) (string, error) {
	if cursor == "" {
		return s.opts.URL, nil
	}
	cursor = NormalizeCursor(cursor)
	if s.opts.CursorParam == "" {
		return cursor, nil
	}

	u, err := url.Parse(s.opts.URL)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint %q: %w", s.opts.URL, err)
	}
	q := u.Query()
	q.Add(s.opts.CursorParam, cursor)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// Load implements Source.
func (s *HTTPSource) Load(ctx context.Context, cursor string) (Page, error) {
	if err := s.wait(ctx); err != nil {
		return Page{}, err
	}

	target, err := s.RequestURL(cursor)
	if err != nil {
		return Page{}, err
	}

	body, err := s.fetch(ctx, target)
	if err != nil {
		return Page{}, err
	}

	page, err := s.decode(body, cursor)
	if err != nil {
		return Page{}, fmt.Errorf("decode %s: %w", target, err)
	}
	s.log.Debug("page loaded", "url", target, "items", len(page.Items), "next", page.Cursor)

	return page, nil
}

func (s *HTTPSource) wait(ctx context.Context) error {
	if s.opts.Delay <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(s.opts.Delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (s *HTTPSource) fetch(ctx context.Context, target string) ([]byte, error) {
	reqCtx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("GET %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("GET %s: %w: %s", target, ErrBadStatus, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("failed to read %s: %w", target, err)
	}

	return body, nil
}

func (s *HTTPSource) decode(body []byte, cursor string) (Page, error) {
	if !gjson.ValidBytes(body) {
		return Page{}, ErrInvalidJSON
	}

	items := gjson.ParseBytes(body)
	if s.opts.ItemsPath != "" {
		items = items.Get(s.opts.ItemsPath)
	}
	if !items.IsArray() {
		return Page{}, fmt.Errorf("%q: %w", s.opts.ItemsPath, ErrMissingItems)
	}

	var page Page
	for i, item := range items.Array() {
		rec, err := s.record(item, cursor, i)
		if err != nil {
			return Page{}, err
		}
		page.Items = append(page.Items, rec)
	}

	if s.opts.CursorPath != "" {
		if next := gjson.GetBytes(body, s.opts.CursorPath); next.Exists() && next.Type != gjson.Null {
			page.Cursor = next.String()
		}
	}

	return page, nil
}

func (s *HTTPSource) record(item gjson.Result, cursor string, i int) (model1.Record, error) {
	h := s.schema.Header()
	fields := make(map[string]model1.Value, len(h))
	for _, c := range h {
		fields[c.ID] = ToValue(item.Get(s.opts.FieldPrefix + c.ID))
	}

	key := ""
	if s.opts.KeyPath != "" {
		key = item.Get(s.opts.KeyPath).String()
	}
	if key == "" {
		key = cursor + "#" + strconv.Itoa(i)
	}

	rec, err := s.schema.NewRecord(key, fields)
	if err != nil {
		return model1.Record{}, err
	}

	return rec.WithRaw([]byte(item.Raw)), nil
}

// ToValue converts a JSON result into a cell value.
func ToValue(r gjson.Result) model1.Value {
	switch r.Type {
	case gjson.Number:
		return model1.Num(r.Float())
	case gjson.String, gjson.True, gjson.False:
		return model1.Str(r.String())
	case gjson.JSON:
		return model1.Str(r.Raw)
	default:
		return model1.Null()
	}
}
