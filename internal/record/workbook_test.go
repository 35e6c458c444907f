package record

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeblew999/plat-survey/internal/survey"
)

func TestWorkbookAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "responses.xlsx")
	w := NewWorkbook(path, "Responses")

	require.NoError(t, w.Append(context.Background(), []string{"t1", "Dana", "dana@example.com"}))
	require.NoError(t, w.Append(context.Background(), []string{"t2", "Sam", "sam@example.com"}))

	rows, err := w.readRows()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, survey.Columns, rows[0])
	assert.Equal(t, []string{"t1", "Dana", "dana@example.com"}, rows[1])
	assert.Equal(t, []string{"t2", "Sam", "sam@example.com"}, rows[2])

	recent, err := w.Recent(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"t2", "Sam", "sam@example.com"}}, recent)

	n, err := w.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestWorkbookRecentMissingFile(t *testing.T) {
	w := NewWorkbook(filepath.Join(t.TempDir(), "none.xlsx"), "Responses")
	rows, err := w.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestWorkbookConcurrentAppends(t *testing.T) {
	w := NewWorkbook(filepath.Join(t.TempDir(), "responses.xlsx"), "Responses")

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, w.Append(context.Background(), []string{"row"}))
		}()
	}
	wg.Wait()

	n, err := w.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
}

func TestWorkbookCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewWorkbook(filepath.Join(t.TempDir(), "r.xlsx"), "Responses").Append(ctx, []string{"x"})
	assert.ErrorIs(t, err, context.Canceled)
}
