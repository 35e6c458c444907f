package mail

import (
	"fmt"
	"regexp"
	"strings"
)

// ClipSize is the body size above which Gmail hides the rest of a message
// behind "View entire message".
const ClipSize = 102 * 1024

// Rules reported by CheckHTML.
const (
	RuleDoctype    = "doctype"
	RuleOutlook    = "outlook"
	RuleFlexbox    = "flexbox"
	RuleScript     = "script"
	RuleStylesheet = "stylesheet"
	RuleClipped    = "clipped"
)

// Issue is one email-client compatibility problem in an HTML body.
type Issue struct {
	Rule    string
	Message string
}

func (i Issue) String() string {
	return i.Rule + ": " + i.Message
}

var (
	flexRe       = regexp.MustCompile(`display\s*:\s*(inline-)?(flex|grid)`)
	scriptRe     = regexp.MustCompile(`(?i)<script[\s>]`)
	stylesheetRe = regexp.MustCompile(`(?i)<link[^>]+rel=["']?stylesheet`)
)

// CheckHTML inspects a rendered notification for markup that operator mail
// clients drop or mangle. MJML output normally passes; a hand-edited
// template directory is the usual source of issues.
func CheckHTML(body string) []Issue {
	var issues []Issue
	add := func(rule, format string, args ...any) {
		issues = append(issues, Issue{Rule: rule, Message: fmt.Sprintf(format, args...)})
	}

	if !strings.Contains(strings.ToLower(body), "<!doctype html") {
		add(RuleDoctype, "missing DOCTYPE declaration")
	}
	if !strings.Contains(body, "<!--[if mso") {
		add(RuleOutlook, "no Outlook conditional comments; layout tables may collapse in Outlook")
	}
	if m := flexRe.FindString(body); m != "" {
		add(RuleFlexbox, "%q is ignored by Outlook and Gmail", m)
	}
	if scriptRe.MatchString(body) {
		add(RuleScript, "script tags are stripped by every mail client")
	}
	if stylesheetRe.MatchString(body) {
		add(RuleStylesheet, "external stylesheets are not loaded")
	}
	if len(body) > ClipSize {
		add(RuleClipped, "%d bytes exceeds %d, Gmail will clip the message", len(body), ClipSize)
	}
	return issues
}

// Rules returns the rule names of issues.
func Rules(issues []Issue) []string {
	rules := make([]string, len(issues))
	for i, issue := range issues {
		rules[i] = issue.Rule
	}
	return rules
}
