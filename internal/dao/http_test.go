package dao

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tabula/tabula/internal/model1"
	"github.com/tabula/tabula/internal/testutil"
	"github.com/tidwall/gjson"
)

var peopleSchema = model1.MustSchema(model1.Header{
	{ID: "name", Name: "Name", Attrs: model1.Attrs{RowHeader: true}},
	{ID: "height", Name: "Height", Attrs: model1.Attrs{Kind: model1.KindNumber}},
})

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	assert.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNormalizeCursor(t *testing.T) {
	uu := map[string]struct {
		cursor, want string
	}{
		"insecure": {
			cursor: "http://swapi.py4e.com/api/people/?page=2",
			want:   "https://swapi.py4e.com/api/people/?page=2",
		},
		"upper": {
			cursor: "HTTP://swapi.py4e.com/api/people/?page=2",
			want:   "https://swapi.py4e.com/api/people/?page=2",
		},
		"secure": {
			cursor: "https://swapi.py4e.com/api/people/?page=2",
			want:   "https://swapi.py4e.com/api/people/?page=2",
		},
		"token": {
			cursor: "t3_1abcd",
			want:   "t3_1abcd",
		},
		"embedded": {
			cursor: "next=http://example.com",
			want:   "next=http://example.com",
		},
		"empty": {},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			assert.Equal(t, u.want, NormalizeCursor(u.cursor))
		})
	}
}

func TestHTTPSource_RequestURL(t *testing.T) {
	s, err := NewHTTPSource(peopleSchema, HTTPOptions{
		URL:         "https://www.reddit.com/r/upliftingnews.json",
		CursorParam: "after",
	})
	require.NoError(t, err)

	u, err := s.RequestURL("")
	require.NoError(t, err)
	assert.Equal(t, "https://www.reddit.com/r/upliftingnews.json", u)

	u, err = s.RequestURL("t3_abc")
	require.NoError(t, err)
	assert.Equal(t, "https://www.reddit.com/r/upliftingnews.json?after=t3_abc", u)

	s, err = NewHTTPSource(peopleSchema, HTTPOptions{URL: "https://swapi.py4e.com/api/people/"})
	require.NoError(t, err)

	u, err = s.RequestURL("http://swapi.py4e.com/api/people/?page=2")
	require.NoError(t, err)
	assert.Equal(t, "https://swapi.py4e.com/api/people/?page=2", u)
}

func TestNewHTTPSource_NoURL(t *testing.T) {
	_, err := NewHTTPSource(peopleSchema, HTTPOptions{})
	assert.ErrorIs(t, err, ErrNoURL)
}

func TestHTTPSource_LoadUpgradesCursor(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/people":
			writeJSON(t, w, map[string]any{
				"next": "http://" + r.Host + "/people2",
				"results": []map[string]any{
					{"name": "Luke Skywalker", "height": "172"},
					{"name": "C-3PO", "height": "167"},
				},
			})
		case "/people2":
			writeJSON(t, w, map[string]any{
				"next": nil,
				"results": []map[string]any{
					{"name": "R2-D2", "height": "96"},
				},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	s, err := NewHTTPSource(peopleSchema, HTTPOptions{
		URL:        srv.URL + "/people",
		ItemsPath:  "results",
		CursorPath: "next",
		KeyPath:    "name",
		Client:     srv.Client(),
		Logger:     testutil.NewTestLogger(t),
	})
	require.NoError(t, err)

	page, err := s.Load(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Luke Skywalker", page.Items[0].Key())
	h, _ := page.Items[0].Get("height")
	assert.Equal(t, model1.Num(172), h)
	assert.Equal(t, "http://"+srv.Listener.Addr().String()+"/people2", page.Cursor)

	page, err = s.Load(context.Background(), page.Cursor)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "R2-D2", page.Items[0].Key())
	assert.Equal(t, "", page.Cursor)
}

func TestHTTPSource_LoadCursorParam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		after := r.URL.Query().Get("after")
		next := any("t3_b")
		id := "t3_a"
		if after == "t3_b" {
			next, id = nil, "t3_c"
		}
		writeJSON(t, w, map[string]any{
			"data": map[string]any{
				"after": next,
				"children": []map[string]any{
					{"data": map[string]any{"id": id, "name": "post " + id, "height": 3}},
				},
			},
		})
	}))
	defer srv.Close()

	s, err := NewHTTPSource(peopleSchema, HTTPOptions{
		URL:         srv.URL + "/r/upliftingnews.json",
		ItemsPath:   "data.children",
		CursorPath:  "data.after",
		CursorParam: "after",
		KeyPath:     "data.id",
		FieldPrefix: "data.",
		Client:      srv.Client(),
	})
	require.NoError(t, err)

	page, err := s.Load(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "t3_b", page.Cursor)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "t3_a", page.Items[0].Key())
	assert.JSONEq(t, `{"data":{"id":"t3_a","name":"post t3_a","height":3}}`, string(page.Items[0].Raw()))

	page, err = s.Load(context.Background(), page.Cursor)
	require.NoError(t, err)
	assert.Equal(t, "", page.Cursor)
	require.Len(t, page.Items, 1)
	n, _ := page.Items[0].Get("name")
	assert.Equal(t, "post t3_c", n.String())
}

func TestHTTPSource_LoadFallbackKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, []map[string]any{{"name": "Yoda"}, {"name": "Leia"}})
	}))
	defer srv.Close()

	s, err := NewHTTPSource(peopleSchema, HTTPOptions{URL: srv.URL, Client: srv.Client()})
	require.NoError(t, err)

	page, err := s.Load(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "#1", page.Items[1].Key())
	h, _ := page.Items[1].Get("height")
	assert.True(t, h.IsNull())
}

func TestHTTPSource_LoadErrors(t *testing.T) {
	uu := map[string]struct {
		status int
		body   string
		err    error
	}{
		"bad status": {
			status: http.StatusInternalServerError,
			body:   `{}`,
			err:    ErrBadStatus,
		},
		"bad json": {
			status: http.StatusOK,
			body:   `{"results": [`,
			err:    ErrInvalidJSON,
		},
		"no items": {
			status: http.StatusOK,
			body:   `{"count": 0}`,
			err:    ErrMissingItems,
		},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(u.status)
				fmt.Fprint(w, u.body)
			}))
			defer srv.Close()

			s, err := NewHTTPSource(peopleSchema, HTTPOptions{
				URL:       srv.URL,
				ItemsPath: "results",
				Client:    srv.Client(),
			})
			require.NoError(t, err)

			_, err = s.Load(context.Background(), "")
			assert.ErrorIs(t, err, u.err)
		})
	}
}

func TestHTTPSource_LoadCancelledDuringDelay(t *testing.T) {
	s, err := NewHTTPSource(peopleSchema, HTTPOptions{
		URL:   "https://swapi.py4e.com/api/people/",
		Delay: time.Hour,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = s.Load(ctx, "")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestToValue(t *testing.T) {
	assert.Equal(t, model1.Num(1.5), ToValue(gjson.Parse(`1.5`)))
	assert.Equal(t, model1.Str("x"), ToValue(gjson.Parse(`"x"`)))
	assert.Equal(t, model1.Str("true"), ToValue(gjson.Parse(`true`)))
	assert.Equal(t, model1.Str(`[1,2]`), ToValue(gjson.Parse(`[1,2]`)))
	assert.True(t, ToValue(gjson.Parse(`null`)).IsNull())
}
