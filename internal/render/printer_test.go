package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tabula/tabula/internal/model1"
)

var testHeader = model1.Header{
	{ID: "name", Name: "Name", Attrs: model1.Attrs{RowHeader: true, Sortable: true}},
	{ID: "height", Name: "Height", Attrs: model1.Attrs{Sortable: true, Kind: model1.KindNumber, Align: model1.AlignEnd}},
}

func snapshot(t *testing.T, state model1.LoadingState, names ...string) *model1.TableData {
	t.Helper()

	s := model1.MustSchema(testHeader)
	rr := make(model1.Records, 0, len(names))
	for i, n := range names {
		rr = append(rr, s.MustRecord(n, map[string]model1.Value{
			"name":   model1.Str(n),
			"height": model1.Num(float64(100 + i)),
		}))
	}
	rows, err := RowEvents(rr, testHeader, nil, nil, nil)
	require.NoError(t, err)

	data := model1.NewTableData(testHeader)
	data.SetRowEvents(rows)
	data.SetState(state)
	return data
}

func printed(t *testing.T, data *model1.TableData) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, "People").Print(data))
	return strings.ToUpper(buf.String())
}

func TestPrinter_Print(t *testing.T) {
	data := snapshot(t, model1.StateIdle, "Luke", "Leia")
	data.SetSortDescriptor(model1.SortDescriptor{Column: "height", Direction: model1.Descending})

	out := printed(t, data)
	assert.Contains(t, out, "PEOPLE")
	assert.Contains(t, out, "HEIGHT "+DescIndicator)
	assert.Contains(t, out, "LUKE")
	assert.Contains(t, out, "101")
	assert.NotContains(t, out, strings.ToUpper(NoResultsText))
}

func TestPrinter_PrintStates(t *testing.T) {
	uu := map[string]struct {
		data *model1.TableData
		want string
	}{
		"empty": {
			data: snapshot(t, model1.StateIdle),
			want: NoResultsText,
		},
		"loading": {
			data: snapshot(t, model1.StateLoading),
			want: LoadingText,
		},
		"loading more": {
			data: snapshot(t, model1.StateLoadingMore, "Luke"),
			want: LoadingMoreText,
		},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			assert.Contains(t, printed(t, u.data), strings.ToUpper(u.want))
		})
	}
}

func TestPrinter_PrintError(t *testing.T) {
	data := snapshot(t, model1.StateError)
	data.SetError("boom")

	assert.Contains(t, printed(t, data), "ERROR: BOOM")
	assert.Error(t, NewPrinter(&bytes.Buffer{}, "").Print(model1.NewTableData(nil)))
}

func TestHeaderText(t *testing.T) {
	c := testHeader[0]

	assert.Equal(t, "Name", HeaderText(c, model1.SortDescriptor{}))
	assert.Equal(t, "Name "+AscIndicator, HeaderText(c, model1.SortDescriptor{Column: "name"}))
	assert.Equal(t, "Name", HeaderText(c, model1.SortDescriptor{Column: "height"}))
}

func TestRowEvents(t *testing.T) {
	s := model1.MustSchema(testHeader)
	rr := model1.Records{
		s.MustRecord("1", map[string]model1.Value{"name": model1.Str("Luke"), "height": model1.Num(172)}),
		s.MustRecord("2", map[string]model1.Value{"name": model1.Str("Leia")}),
	}
	keyFn := func(r model1.Record) string {
		v, _ := r.Get("name")
		return v.String()
	}

	rows, err := RowEvents(rr, testHeader, keyFn, map[string]model1.ResEvent{"Leia": model1.EventAdd}, nil)
	require.NoError(t, err)
	require.Equal(t, 2, rows.Len())

	re, ok := rows.Get("Luke")
	require.True(t, ok)
	assert.Equal(t, model1.Fields{"Luke", "172"}, re.Row.Fields)
	assert.Equal(t, model1.EventUnchanged, re.Kind)

	re, ok = rows.Get("Leia")
	require.True(t, ok)
	assert.Equal(t, model1.Fields{"Leia", ""}, re.Row.Fields)
	assert.Equal(t, model1.EventAdd, re.Kind)
}

func TestDecorators(t *testing.T) {
	assert.Equal(t, "2.0 KiB", Bytes(model1.Num(2048)))
	assert.Equal(t, "512 B", Bytes(model1.Num(512)))
	assert.Equal(t, NAValue, Bytes(model1.Null()))
	assert.Equal(t, NAValue, Age(model1.Null()))
	assert.Equal(t, "bad", Age(model1.Str("bad")))
	assert.Equal(t, "5d", HumanDuration(5*24*time.Hour))
	assert.Equal(t, "ab...", Truncate("abcdefgh", 5))
}
