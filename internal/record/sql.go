package record

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/joeblew999/plat-survey/internal/model"
)

// SQL stores each row as a JSON array in the responses table.
type SQL struct {
	model model.ResponsesModel
	rng   string
	now   func() time.Time
}

// NewSQL creates a SQL recorder. rng is stored with each row so rows can be
// replayed into the spreadsheet later.
func NewSQL(m model.ResponsesModel, rng string) *SQL {
	return &SQL{model: m, rng: rng, now: time.Now}
}

// Append implements Recorder.
func (s *SQL) Append(ctx context.Context, row []string) error {
	values, err := model.EncodeValues(row)
	if err != nil {
		return err
	}

	_, err = s.model.Insert(ctx, &model.Responses{
		Id:         uuid.NewString(),
		SheetRange: s.rng,
		RowValues:  values,
		CreatedAt:  s.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("insert response: %w", err)
	}
	return nil
}

// Recent implements Reader, newest first.
func (s *SQL) Recent(ctx context.Context, limit int) ([][]string, error) {
	stored, err := s.model.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list responses: %w", err)
	}

	rows := make([][]string, 0, len(stored))
	for _, r := range stored {
		values, err := r.DecodeValues()
		if err != nil {
			return nil, err
		}
		rows = append(rows, values)
	}
	return rows, nil
}

// Count implements Reader.
func (s *SQL) Count(ctx context.Context) (int64, error) {
	return s.model.Count(ctx)
}
