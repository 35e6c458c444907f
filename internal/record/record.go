// Package record appends mapped survey rows to a spreadsheet-like sink.
package record

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/joeblew999/plat-survey/internal/config"
	"github.com/joeblew999/plat-survey/internal/model"
	"github.com/joeblew999/plat-survey/pkg/db"
)

// Recorder appends one row.
type Recorder interface {
	Append(ctx context.Context, row []string) error
}

// Reader lists rows already recorded. Local sinks implement it; the Google
// Sheets sink is append-only.
type Reader interface {
	Recent(ctx context.Context, limit int) ([][]string, error)
	Count(ctx context.Context) (int64, error)
}

// ErrNotReadable is returned when the sink cannot read rows back.
var ErrNotReadable = errors.New("sink does not support reading rows back")

// Sink is a Recorder with resources to release on shutdown.
type Sink struct {
	Recorder
	Name  string
	close func() error
}

// Close releases the sink's resources.
func (s *Sink) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// Reader returns the sink's Reader, or ErrNotReadable.
func (s *Sink) Reader() (Reader, error) {
	r, ok := s.Recorder.(Reader)
	if !ok {
		return nil, fmt.Errorf("%s: %w", s.Name, ErrNotReadable)
	}
	return r, nil
}

// Open builds the sink selected by c.Backend.
func Open(ctx context.Context, c config.SheetsConfig) (*Sink, error) {
	switch c.Backend {
	case config.BackendGoogle, "":
		g, err := NewGoogleSheetsFromConfig(ctx, c)
		if err != nil {
			return nil, err
		}
		return &Sink{Recorder: g, Name: config.BackendGoogle}, nil

	case config.BackendXLSX:
		return &Sink{Recorder: NewWorkbook(c.XLSXPath, SheetName(c.Range)), Name: config.BackendXLSX}, nil

	case config.BackendSQL:
		database, err := db.Open(c.SQL.Driver, c.SQL.DataSource)
		if err != nil {
			return nil, fmt.Errorf("open %s sink: %w", c.SQL.Driver, err)
		}
		rec := NewSQL(model.NewResponsesModel(database.SqlConn()), c.Range)
		return &Sink{Recorder: rec, Name: config.BackendSQL, close: database.Close}, nil

	default:
		return nil, fmt.Errorf("unknown sheets backend %q", c.Backend)
	}
}

// SheetName extracts the tab name from an A1 range such as "'My Tab'!A:V".
// Ranges without a tab yield "Sheet1".
func SheetName(rng string) string {
	name, _, found := strings.Cut(rng, "!")
	if !found || name == "" {
		return "Sheet1"
	}
	return strings.Trim(name, "'")
}
