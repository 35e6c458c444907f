package survey

import "regexp"

// EmailPattern is the shape check shared with the browser. It only asks for
// something@something.tld and is evaluated by both Go and JavaScript.
const EmailPattern = `^[^\s@]+@[^\s@]+\.[^\s@]+$`

var emailRe = regexp.MustCompile(EmailPattern)

// ValidEmail reports whether s looks like local@domain.tld.
func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}
