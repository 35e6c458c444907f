package record

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeblew999/plat-survey/internal/config"
)

func TestSheetName(t *testing.T) {
	assert.Equal(t, "Responses", SheetName("Responses!A:V"))
	assert.Equal(t, "My Tab", SheetName("'My Tab'!A1:B2"))
	assert.Equal(t, "Sheet1", SheetName("A:V"))
	assert.Equal(t, "Sheet1", SheetName(""))
}

func TestOpenBackends(t *testing.T) {
	dir := t.TempDir()

	sink, err := Open(context.Background(), config.SheetsConfig{
		Backend:  config.BackendXLSX,
		Range:    "Responses!A:V",
		XLSXPath: filepath.Join(dir, "r.xlsx"),
	})
	require.NoError(t, err)
	assert.Equal(t, config.BackendXLSX, sink.Name)
	assert.IsType(t, &Workbook{}, sink.Recorder)
	assert.NoError(t, sink.Close())

	sink, err = Open(context.Background(), config.SheetsConfig{
		Backend: config.BackendSQL,
		Range:   "Responses!A:V",
		SQL:     config.SQLConfig{Driver: "sqlite", DataSource: filepath.Join(dir, "r.db")},
	})
	require.NoError(t, err)
	assert.IsType(t, &SQL{}, sink.Recorder)
	require.NoError(t, sink.Append(context.Background(), []string{"x"}))

	reader, err := sink.Reader()
	require.NoError(t, err)
	rows, err := reader.Recent(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"x"}}, rows)
	assert.NoError(t, sink.Close())
}

func TestSinkReaderAppendOnly(t *testing.T) {
	sink := &Sink{Recorder: &GoogleSheets{}, Name: config.BackendGoogle}
	_, err := sink.Reader()
	assert.ErrorIs(t, err, ErrNotReadable)
}

func TestOpenErrors(t *testing.T) {
	_, err := Open(context.Background(), config.SheetsConfig{Backend: "csv"})
	assert.ErrorContains(t, err, "unknown sheets backend")

	_, err = Open(context.Background(), config.SheetsConfig{Backend: config.BackendGoogle})
	assert.ErrorContains(t, err, "SpreadsheetID is required")

	_, err = Open(context.Background(), config.SheetsConfig{Backend: config.BackendGoogle, SpreadsheetID: "abc"})
	assert.ErrorContains(t, err, "no service account credentials")
}
