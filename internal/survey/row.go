package survey

import (
	"strings"
	"time"
)

// ListDelimiter separates tokens of a multi-select answer inside one cell.
const ListDelimiter = ";"

// ColumnTimestamp is the first column of every row.
const ColumnTimestamp = "timestamp"

// DefaultRange is the sheet range rows are appended to, one column per entry in Columns.
const DefaultRange = "Responses!A:V"

// Columns is the fixed column order of the responses sheet. Existing sheets
// depend on it; append new columns at the end only.
var Columns = []string{
	ColumnTimestamp,
	"name",
	"email",
	"phone",
	"role",
	"business",
	"employees",
	"timeWasterExists",
	"problemsHappen",
	"thingsFallThrough",
	"coordinationHard",
	"stressfulMoments",
	"lastMinuteChanges",
	"hardToTrack",
	"worriedAboutLegal",
	"hadLegalIssue",
	"hadLaborComplaint",
	"usesWhatsApp",
	"hasLanguageBarriers",
	"wantsDocumentation",
	FieldBiggestProblems,
	"interestedInCall",
}

// TimestampLayout matches the millisecond UTC ISO-8601 stamps already in the sheet.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Row maps r onto Columns. Missing answers become empty strings.
func Row(r Response, now time.Time) []string {
	row := make([]string, len(Columns))
	for i, col := range Columns {
		if col == ColumnTimestamp {
			row[i] = now.UTC().Format(TimestampLayout)
			continue
		}
		row[i] = r.Field(col)
	}
	return row
}

// JoinList flattens a token list into one cell.
func JoinList(tokens []string) string {
	return strings.Join(tokens, ListDelimiter)
}

// SplitList is the inverse of JoinList. An empty cell is an empty list.
func SplitList(cell string) []string {
	if cell == "" {
		return nil
	}
	return strings.Split(cell, ListDelimiter)
}
