package record

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeblew999/plat-survey/internal/model"
	"github.com/joeblew999/plat-survey/pkg/db"
)

func TestSQLAppend(t *testing.T) {
	database, err := db.Open(db.DriverSQLite, filepath.Join(t.TempDir(), "survey.db"))
	require.NoError(t, err)
	defer database.Close()

	m := model.NewResponsesModel(database.SqlConn())
	rec := NewSQL(m, "Responses!A:V")

	row := []string{"2024-05-01T14:30:00.000Z", "Dana", "", "paperwork;cash-flow", "yes"}
	require.NoError(t, rec.Append(context.Background(), row))
	require.NoError(t, rec.Append(context.Background(), row))

	n, err := rec.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	stored, err := m.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, "Responses!A:V", stored[0].SheetRange)
	assert.NotEqual(t, stored[0].Id, stored[1].Id)

	rows, err := rec.Recent(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, [][]string{row}, rows)
}

func TestSQLRecentNewestFirst(t *testing.T) {
	database, err := db.Open(db.DriverSQLite, filepath.Join(t.TempDir(), "survey.db"))
	require.NoError(t, err)
	defer database.Close()

	rec := NewSQL(model.NewResponsesModel(database.SqlConn()), "Responses!A:V")
	clock := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	rec.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	for _, name := range []string{"first", "second", "third"} {
		require.NoError(t, rec.Append(context.Background(), []string{name}))
	}

	rows, err := rec.Recent(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"third"}, {"second"}}, rows)
}
