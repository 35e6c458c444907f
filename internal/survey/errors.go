package survey

import "errors"

var (
	// ErrUnknownField is returned when a field name is not part of the schema.
	ErrUnknownField = errors.New("unknown survey field")
	// ErrInvalidEmail blocks submission when the email does not look like local@domain.tld.
	ErrInvalidEmail = errors.New("please enter a valid email address")
	// ErrNameRequired blocks submission without a name.
	ErrNameRequired = errors.New("please enter your name")
	// ErrInvalidToken is returned when a choice token is not offered by the question.
	ErrInvalidToken = errors.New("invalid choice")
	// ErrBadListToken is returned for list tokens that could not survive a
	// JoinList/SplitList round trip: empty, or containing ListDelimiter.
	ErrBadListToken = errors.New("list token is empty or contains " + ListDelimiter)
)
