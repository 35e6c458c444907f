package ui

import "github.com/joeblew999/plat-survey/internal/survey"

// formSignals is the client state posted by Datastar. Survey answers live at
// the top level under their JSON field names.
type formSignals struct {
	survey.Response

	ShowSurvey  bool   `json:"showSurvey"`
	EmailError  string `json:"emailError"`
	Submitting  bool   `json:"submitting"`
	Submitted   bool   `json:"submitted"`
	SubmitError string `json:"submitError"`
}

func initialSignals() map[string]any {
	signals := map[string]any{
		"showSurvey":  false,
		"emailError":  "",
		"submitting":  false,
		"submitted":   false,
		"submitError": "",
	}
	for _, col := range survey.Columns {
		switch col {
		case survey.ColumnTimestamp:
		case survey.FieldBiggestProblems:
			signals[col] = []string{}
		default:
			signals[col] = ""
		}
	}
	return signals
}
