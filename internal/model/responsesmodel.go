package model

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ ResponsesModel = (*customResponsesModel)(nil)

type (
	// ResponsesModel is an interface to be customized, add more methods here,
	// and implement the added methods in customResponsesModel.
	ResponsesModel interface {
		responsesModel
		withSession(session sqlx.Session) ResponsesModel
		Count(ctx context.Context) (int64, error)
		ListRecent(ctx context.Context, limit int) ([]*Responses, error)
	}

	customResponsesModel struct {
		*defaultResponsesModel
	}
)

// NewResponsesModel returns a model for the database table.
func NewResponsesModel(conn sqlx.SqlConn) ResponsesModel {
	return &customResponsesModel{
		defaultResponsesModel: newResponsesModel(conn),
	}
}

func (m *customResponsesModel) withSession(session sqlx.Session) ResponsesModel {
	return NewResponsesModel(sqlx.NewSqlConnFromSession(session))
}

// Count returns the number of stored rows.
func (m *customResponsesModel) Count(ctx context.Context) (int64, error) {
	var n int64
	query := fmt.Sprintf("select count(*) from %s", m.table)
	if err := m.conn.QueryRowCtx(ctx, &n, query); err != nil {
		return 0, err
	}
	return n, nil
}

// ListRecent returns the newest rows first.
func (m *customResponsesModel) ListRecent(ctx context.Context, limit int) ([]*Responses, error) {
	var resp []*Responses
	query := fmt.Sprintf("select %s from %s order by `created_at` desc limit ?", responsesRows, m.table)
	if err := m.conn.QueryRowsCtx(ctx, &resp, query, limit); err != nil {
		return nil, err
	}
	return resp, nil
}

// EncodeValues serialises a row for the row_values column.
func EncodeValues(values []string) (string, error) {
	b, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeValues is the inverse of EncodeValues.
func (r *Responses) DecodeValues() ([]string, error) {
	var values []string
	if err := json.Unmarshal([]byte(r.RowValues), &values); err != nil {
		return nil, fmt.Errorf("decode row %s: %w", r.Id, err)
	}
	return values, nil
}
