package record

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/joeblew999/plat-survey/internal/config"
)

const (
	spreadsheetsScope = "https://www.googleapis.com/auth/spreadsheets"
	valueInputRaw     = "RAW"
)

// GoogleSheets appends rows to a Google spreadsheet.
type GoogleSheets struct {
	srv           *sheets.Service
	spreadsheetID string
	rng           string
}

// NewGoogleSheets uses an existing Sheets client.
func NewGoogleSheets(srv *sheets.Service, spreadsheetID, rng string) *GoogleSheets {
	return &GoogleSheets{srv: srv, spreadsheetID: spreadsheetID, rng: rng}
}

// NewGoogleSheetsFromConfig authenticates as the configured service account.
func NewGoogleSheetsFromConfig(ctx context.Context, c config.SheetsConfig) (*GoogleSheets, error) {
	if c.SpreadsheetID == "" {
		return nil, fmt.Errorf("google sheets: SpreadsheetID is required")
	}

	jwtConfig, err := serviceAccount(c)
	if err != nil {
		return nil, fmt.Errorf("google sheets: %w", err)
	}

	srv, err := sheets.NewService(ctx, option.WithHTTPClient(jwtConfig.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("google sheets: %w", err)
	}
	return NewGoogleSheets(srv, c.SpreadsheetID, c.Range), nil
}

// Append implements Recorder.
func (g *GoogleSheets) Append(ctx context.Context, row []string) error {
	values := make([]interface{}, len(row))
	for i, v := range row {
		values[i] = v
	}

	vr := &sheets.ValueRange{Values: [][]interface{}{values}}
	_, err := g.srv.Spreadsheets.Values.Append(g.spreadsheetID, g.rng, vr).
		ValueInputOption(valueInputRaw).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append to %s: %w", g.rng, err)
	}
	return nil
}

func serviceAccount(c config.SheetsConfig) (*jwt.Config, error) {
	switch {
	case c.CredentialsFile != "":
		b, err := os.ReadFile(c.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("read credentials: %w", err)
		}
		return google.JWTConfigFromJSON(b, spreadsheetsScope)

	case c.Credentials != "":
		b, err := decodeCredentials(c.Credentials)
		if err != nil {
			return nil, err
		}
		return google.JWTConfigFromJSON(b, spreadsheetsScope)

	case c.ServiceAccountEmail != "" && c.PrivateKey != "":
		return &jwt.Config{
			Email:      c.ServiceAccountEmail,
			PrivateKey: []byte(strings.ReplaceAll(c.PrivateKey, `\n`, "\n")),
			Scopes:     []string{spreadsheetsScope},
			TokenURL:   google.JWTTokenURL,
		}, nil

	default:
		return nil, fmt.Errorf("no service account credentials configured")
	}
}

// decodeCredentials accepts a JSON key either raw or base64 encoded.
func decodeCredentials(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "{") {
		return []byte(s), nil
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode credentials: %w", err)
	}
	return b, nil
}
