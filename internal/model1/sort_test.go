package model1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var peopleHeader = Header{
	{ID: "name", Name: "Name", Attrs: Attrs{RowHeader: true, Sortable: true}},
	{ID: "height", Name: "Height", Attrs: Attrs{Sortable: true, Kind: KindNumber}},
	{ID: "weight", Name: "Weight", Attrs: Attrs{Sortable: true, Kind: KindNumber}},
}

func people(t *testing.T, rows ...[3]string) Records {
	t.Helper()

	s, err := NewSchema(peopleHeader)
	require.NoError(t, err)

	rr := make(Records, 0, len(rows))
	for _, r := range rows {
		rec, err := s.NewRecord(r[0], map[string]Value{
			"name":   Str(r[0]),
			"height": Str(r[1]),
			"weight": Str(r[2]),
		})
		require.NoError(t, err)
		rr = append(rr, rec)
	}
	return rr
}

func keys(rr Records) []string {
	out := make([]string, 0, len(rr))
	for _, r := range rr {
		out = append(out, r.Key())
	}
	return out
}

func TestSortRecords_Descending(t *testing.T) {
	rr := people(t, [3]string{"a", "1", "0"}, [3]string{"c", "3", "0"}, [3]string{"b", "2", "0"})

	out, err := SortRecords(rr, peopleHeader, SortDescriptor{Column: "height", Direction: Descending})
	require.NoError(t, err)

	assert.Equal(t, []string{"c", "b", "a"}, keys(out))
	assert.Equal(t, []string{"a", "c", "b"}, keys(rr), "input must not be mutated")
}

func TestSortRecords_Numeric(t *testing.T) {
	rr := people(t, [3]string{"a", "10", "0"}, [3]string{"b", "9", "0"}, [3]string{"c", "100", "0"})

	out, err := SortRecords(rr, peopleHeader, SortDescriptor{Column: "height"})
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "a", "c"}, keys(out))
}

func TestSortRecords_NaN(t *testing.T) {
	rr := people(t,
		[3]string{"a", "5", "0"},
		[3]string{"b", "NaN", "0"},
		[3]string{"c", "1", "0"},
		[3]string{"d", "3", "0"},
		[3]string{"e", "nan", "0"},
		[3]string{"f", "2", "0"},
	)

	asc, err := SortRecords(rr, peopleHeader, SortDescriptor{Column: "height"})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "f", "d", "a", "b", "e"}, keys(asc))

	again, err := SortRecords(asc, peopleHeader, SortDescriptor{Column: "height"})
	require.NoError(t, err)
	assert.Equal(t, keys(asc), keys(again))

	desc, err := SortRecords(rr, peopleHeader, SortDescriptor{Column: "height", Direction: Descending})
	require.NoError(t, err)
	assert.Equal(t, []string{"e", "b", "a", "d", "f", "c"}, keys(desc))
}

func TestSortRecords_Stable(t *testing.T) {
	rr := people(t,
		[3]string{"A", "1", "3"},
		[3]string{"B", "2", "1"},
		[3]string{"C", "3", "3"},
		[3]string{"D", "4", "1"},
		[3]string{"E", "5", "3"},
	)

	asc, err := SortRecords(rr, peopleHeader, SortDescriptor{Column: "weight"})
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "D", "A", "C", "E"}, keys(asc))

	desc, err := SortRecords(rr, peopleHeader, SortDescriptor{Column: "weight", Direction: Descending})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "E", "B", "D"}, keys(desc))
}

func TestSortRecords_Idempotent(t *testing.T) {
	rr := people(t, [3]string{"x", "2", "1"}, [3]string{"y", "1", "1"}, [3]string{"z", "2", "1"})
	desc := SortDescriptor{Column: "height", Direction: Descending}

	once, err := SortRecords(rr, peopleHeader, desc)
	require.NoError(t, err)
	twice, err := SortRecords(once, peopleHeader, desc)
	require.NoError(t, err)

	assert.Equal(t, keys(once), keys(twice))
	assert.Equal(t, []string{"x", "z", "y"}, keys(once))
}

func TestSortRecords_UnknownColumn(t *testing.T) {
	rr := people(t, [3]string{"a", "1", "1"})

	_, err := SortRecords(rr, peopleHeader, SortDescriptor{Column: "mass"})
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestSortDescriptor_Resolve(t *testing.T) {
	desc, err := SortDescriptor{Direction: Descending}.Resolve(peopleHeader)
	require.NoError(t, err)
	assert.Equal(t, SortDescriptor{Column: "name", Direction: Descending}, desc)

	_, err = SortDescriptor{Column: "nope"}.Resolve(peopleHeader)
	assert.ErrorIs(t, err, ErrUnknownColumn)

	_, err = SortDescriptor{}.Resolve(nil)
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestDirection(t *testing.T) {
	d, err := ParseDirection("desc")
	require.NoError(t, err)
	assert.Equal(t, Descending, d)
	assert.Equal(t, Ascending, d.Toggle())
	assert.Equal(t, "descending", d.String())

	_, err = ParseDirection("sideways")
	assert.Error(t, err)
}
