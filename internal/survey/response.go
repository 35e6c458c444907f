// Package survey holds the customer-discovery record, the question schema shared by
// the UI and the notification, and the mapping of a record into a spreadsheet row.
package survey

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// Roles a respondent can pick.
const (
	RoleOwner    = "owner"
	RoleEmployee = "employee"
)

// Yes/no answer tokens.
const (
	Yes = "yes"
	No  = "no"
)

// Response is one visitor's survey submission. Every field is optional on the wire.
type Response struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	Business  string `json:"business"`
	Employees string `json:"employees"`

	// Owner operations
	TimeWasterExists  string `json:"timeWasterExists"`
	ProblemsHappen    string `json:"problemsHappen"`
	ThingsFallThrough string `json:"thingsFallThrough"`
	CoordinationHard  string `json:"coordinationHard"`

	// Employee operations
	StressfulMoments  string `json:"stressfulMoments"`
	LastMinuteChanges string `json:"lastMinuteChanges"`
	HardToTrack       string `json:"hardToTrack"`

	// Legal & compliance (owner)
	WorriedAboutLegal string `json:"worriedAboutLegal"`
	HadLegalIssue     string `json:"hadLegalIssue"`
	HadLaborComplaint string `json:"hadLaborComplaint"`

	// Communication
	UsesWhatsApp        string `json:"usesWhatsApp"`
	HasLanguageBarriers string `json:"hasLanguageBarriers"`
	WantsDocumentation  string `json:"wantsDocumentation"`

	BiggestProblems  Tokens `json:"biggestProblems"`
	InterestedInCall string `json:"interestedInCall"`
}

// Tokens is a multi-select answer. It decodes from a JSON array, null, or a
// single string, which becomes a one-token list.
type Tokens []string

// UnmarshalJSON implements json.Unmarshaler.
func (t *Tokens) UnmarshalJSON(b []byte) error {
	var list []string
	if err := json.Unmarshal(b, &list); err == nil {
		if err := checkListTokens(list...); err != nil {
			return err
		}
		*t = list
		return nil
	}

	var single string
	if err := json.Unmarshal(b, &single); err != nil {
		return fmt.Errorf("tokens: expected array or string: %w", err)
	}
	if single == "" {
		*t = nil
		return nil
	}
	if err := checkListTokens(single); err != nil {
		return err
	}
	*t = Tokens{single}
	return nil
}

func checkListTokens(tokens ...string) error {
	for _, token := range tokens {
		if token == "" || strings.Contains(token, ListDelimiter) {
			return fmt.Errorf("%w: %q", ErrBadListToken, token)
		}
	}
	return nil
}

// MarshalJSON always emits an array so clients never see null.
func (t Tokens) MarshalJSON() ([]byte, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(t))
}

// Field names that carry a list instead of a single token.
const FieldBiggestProblems = "biggestProblems"

var scalarFields = map[string]func(*Response) *string{
	"name":                func(r *Response) *string { return &r.Name },
	"email":               func(r *Response) *string { return &r.Email },
	"phone":               func(r *Response) *string { return &r.Phone },
	"role":                func(r *Response) *string { return &r.Role },
	"business":            func(r *Response) *string { return &r.Business },
	"employees":           func(r *Response) *string { return &r.Employees },
	"timeWasterExists":    func(r *Response) *string { return &r.TimeWasterExists },
	"problemsHappen":      func(r *Response) *string { return &r.ProblemsHappen },
	"thingsFallThrough":   func(r *Response) *string { return &r.ThingsFallThrough },
	"coordinationHard":    func(r *Response) *string { return &r.CoordinationHard },
	"stressfulMoments":    func(r *Response) *string { return &r.StressfulMoments },
	"lastMinuteChanges":   func(r *Response) *string { return &r.LastMinuteChanges },
	"hardToTrack":         func(r *Response) *string { return &r.HardToTrack },
	"worriedAboutLegal":   func(r *Response) *string { return &r.WorriedAboutLegal },
	"hadLegalIssue":       func(r *Response) *string { return &r.HadLegalIssue },
	"hadLaborComplaint":   func(r *Response) *string { return &r.HadLaborComplaint },
	"usesWhatsApp":        func(r *Response) *string { return &r.UsesWhatsApp },
	"hasLanguageBarriers": func(r *Response) *string { return &r.HasLanguageBarriers },
	"wantsDocumentation":  func(r *Response) *string { return &r.WantsDocumentation },
	"interestedInCall":    func(r *Response) *string { return &r.InterestedInCall },
}

// Field returns the flattened value of a named field. List fields are joined with
// ListDelimiter; unknown names yield "".
func (r Response) Field(name string) string {
	if name == FieldBiggestProblems {
		return JoinList(r.BiggestProblems)
	}
	if get, ok := scalarFields[name]; ok {
		return *get(&r)
	}
	return ""
}

// Set overwrites a single-valued field.
func (r *Response) Set(name, value string) error {
	get, ok := scalarFields[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	*get(r) = value
	return nil
}

// Toggle adds token to a list field, or removes it when already present.
func (r *Response) Toggle(name, token string) error {
	if name != FieldBiggestProblems {
		return fmt.Errorf("%w: %q is not a multi-select field", ErrUnknownField, name)
	}
	if err := checkListTokens(token); err != nil {
		return err
	}
	if i := slices.Index(r.BiggestProblems, token); i >= 0 {
		r.BiggestProblems = slices.Delete(slices.Clone(r.BiggestProblems), i, i+1)
		return nil
	}
	r.BiggestProblems = append(slices.Clone(r.BiggestProblems), token)
	return nil
}

// IsOwner reports whether the respondent picked the owner role. Anything else
// is treated as an employee, including an empty role.
func (r Response) IsOwner() bool {
	return r.Role == RoleOwner
}

// RoleLabel is the plain role name used in subjects and logs.
func (r Response) RoleLabel() string {
	if r.IsOwner() {
		return "Business Owner"
	}
	return "Employee"
}

// WantsCall reports whether the respondent asked to be contacted.
func (r Response) WantsCall() bool {
	return r.InterestedInCall == Yes
}
