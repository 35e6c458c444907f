package record

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/tealeg/xlsx/v3"

	"github.com/joeblew999/plat-survey/internal/survey"
)

// Workbook appends rows to a local .xlsx file. The file is created with a
// header row on first use.
type Workbook struct {
	mu    sync.Mutex
	path  string
	sheet string
}

// NewWorkbook creates a Workbook writing to the named tab of path.
func NewWorkbook(path, sheet string) *Workbook {
	return &Workbook{path: path, sheet: sheet}
}

// Append implements Recorder. The whole file is rewritten on each call.
func (w *Workbook) Append(ctx context.Context, row []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	wb, err := w.open()
	if err != nil {
		return err
	}
	defer func() {
		for _, sh := range wb.Sheets {
			sh.Close()
		}
	}()

	sheet, ok := wb.Sheet[w.sheet]
	if !ok {
		sheet, err = wb.AddSheet(w.sheet)
		if err != nil {
			return fmt.Errorf("add sheet %s: %w", w.sheet, err)
		}
		writeRow(sheet, survey.Columns)
	}
	writeRow(sheet, row)

	if err := wb.Save(w.path); err != nil {
		return fmt.Errorf("save %s: %w", w.path, err)
	}
	return nil
}

func (w *Workbook) open() (*xlsx.File, error) {
	if _, err := os.Stat(w.path); err == nil {
		wb, err := xlsx.OpenFile(w.path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", w.path, err)
		}
		return wb, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return nil, fmt.Errorf("create workbook directory: %w", err)
	}
	return xlsx.NewFile(), nil
}

func writeRow(sheet *xlsx.Sheet, values []string) {
	r := sheet.AddRow()
	for _, v := range values {
		r.AddCell().SetString(v)
	}
}

// Recent implements Reader. Rows come back newest first, without the header.
func (w *Workbook) Recent(ctx context.Context, limit int) ([][]string, error) {
	rows, err := w.dataRows(ctx)
	if err != nil {
		return nil, err
	}
	slices.Reverse(rows)
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

// Count implements Reader.
func (w *Workbook) Count(ctx context.Context) (int64, error) {
	rows, err := w.dataRows(ctx)
	return int64(len(rows)), err
}

func (w *Workbook) dataRows(ctx context.Context) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, err := w.readRows()
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return rows[1:], nil
}

// readRows returns every row of the tab, header included.
func (w *Workbook) readRows() ([][]string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := os.Stat(w.path); err != nil {
		return nil, err
	}
	wb, err := xlsx.OpenFile(w.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", w.path, err)
	}
	sheet, ok := wb.Sheet[w.sheet]
	if !ok {
		return nil, fmt.Errorf("sheet %s not found", w.sheet)
	}
	defer sheet.Close()

	var rows [][]string
	err = sheet.ForEachRow(func(r *xlsx.Row) error {
		var cells []string
		err := r.ForEachCell(func(c *xlsx.Cell) error {
			cells = append(cells, c.String())
			return nil
		})
		rows = append(rows, cells)
		return err
	})
	return rows, err
}
