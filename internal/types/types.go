// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

import "github.com/joeblew999/plat-survey/internal/survey"

type SubmitFormRequest = survey.Response

type SubmitFormResponse struct {
	Success bool `json:"success"`
}

type SchemaRequest struct {
	Role string `form:"role,optional"`
}

type SchemaQuestion struct {
	Field    string         `json:"field"`
	Prompt   string         `json:"prompt"`
	Summary  string         `json:"summary"`
	Kind     string         `json:"kind"`
	Section  string         `json:"section"`
	Options  []SchemaOption `json:"options,omitempty"`
	Required bool           `json:"required,omitempty"`
}

type SchemaOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type SchemaResponse struct {
	Role      string           `json:"role"`
	Questions []SchemaQuestion `json:"questions"`
	Columns   []string         `json:"columns"`
}
