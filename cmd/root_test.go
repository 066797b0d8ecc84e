package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tabula/tabula/internal/model1"
	"github.com/tabula/tabula/internal/story"
	"github.com/tabula/tabula/internal/testutil"
)

func TestFetchPages(t *testing.T) {
	s, err := story.Get("example")
	require.NoError(t, err)
	list, err := s.NewList(context.Background(), story.NewEnv(nil, testutil.NewTestLogger(t)))
	require.NoError(t, err)

	data, err := fetchPages(context.Background(), list, 3, time.Second)
	require.NoError(t, err)
	assert.Equal(t, 3, data.RowCount())
	assert.Equal(t, model1.StateIdle, data.State())
}

func TestFetchPages_Pending(t *testing.T) {
	s, err := story.Get("loading-with-items")
	require.NoError(t, err)
	list, err := s.NewList(context.Background(), story.NewEnv(nil, testutil.NewTestLogger(t)))
	require.NoError(t, err)

	data, err := fetchPages(context.Background(), list, 2, 50*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, 10, data.RowCount())
	assert.Equal(t, model1.StateLoadingMore, data.State())
	assert.Equal(t, model1.StateIdle, list.State())
}

func TestFetchPages_ImmediateTimeout(t *testing.T) {
	s, err := story.Get("loading-no-items")
	require.NoError(t, err)

	for range 50 {
		list, err := s.NewList(context.Background(), story.NewEnv(nil, testutil.NewTestLogger(t)))
		require.NoError(t, err)

		done := make(chan error, 1)
		go func() {
			_, err := fetchPages(context.Background(), list, 1, 0)
			done <- err
		}()

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("fetchPages hung on a pending page")
		}
		assert.Equal(t, 0, list.Len())
		assert.False(t, list.State().IsLoading())
	}
}

func TestListStories(t *testing.T) {
	var buf bytes.Buffer
	storiesCmd.SetOut(&buf)
	defer storiesCmd.SetOut(nil)

	require.NoError(t, listStories(storiesCmd, nil))
	assert.Contains(t, buf.String(), "async-loading")
	assert.Contains(t, buf.String(), "Many items table")
}
