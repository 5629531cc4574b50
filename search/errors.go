package search

import (
	"errors"
	"fmt"
)

var (
	ErrRateLimit    = errors.New("rate limit exceeded")
	ErrInvalidQuery = errors.New("invalid search query")
	ErrUpstream     = errors.New("upstream api error")
	ErrNetwork      = errors.New("network error")
)

type Kind int

const (
	KindRateLimited Kind = iota + 1
	KindInvalidQuery
	KindUpstream
	KindNetwork
)

func (k Kind) String() string {
	switch k {
	case KindRateLimited:
		return "rate_limited"
	case KindInvalidQuery:
		return "invalid_query"
	case KindUpstream:
		return "upstream_error"
	case KindNetwork:
		return "network_error"
	}
	return "unknown"
}

func (k Kind) sentinel() error {
	switch k {
	case KindRateLimited:
		return ErrRateLimit
	case KindInvalidQuery:
		return ErrInvalidQuery
	case KindUpstream:
		return ErrUpstream
	case KindNetwork:
		return ErrNetwork
	}
	return nil
}

const (
	msgRateLimited  = "API rate limit exceeded. Please try again later."
	msgInvalidQuery = "Invalid search query. Please check your search terms."
	msgNetwork      = "Network error. Please check your internet connection."
)

// Error is a user-facing search failure. Error() returns the message meant
// for the end user; the transport cause, if any, is available via Unwrap.
type Error struct {
	Kind       Kind
	StatusCode int
	StatusText string
	Err        error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindRateLimited:
		return msgRateLimited
	case KindInvalidQuery:
		return msgInvalidQuery
	case KindNetwork:
		return msgNetwork
	default:
		return fmt.Sprintf("GitHub API error: %d %s", e.StatusCode, e.StatusText)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrRateLimit) and friends match by kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && s == target
}

func RateLimited() *Error { return &Error{Kind: KindRateLimited} }

func InvalidQuery() *Error { return &Error{Kind: KindInvalidQuery} }

func Upstream(statusCode int, statusText string) *Error {
	return &Error{Kind: KindUpstream, StatusCode: statusCode, StatusText: statusText}
}

func Network(cause error) *Error { return &Error{Kind: KindNetwork, Err: cause} }

// KindOf reports the kind of a search failure. ok is false for errors
// outside the taxonomy.
func KindOf(err error) (kind Kind, ok bool) {
	var se *Error
	if !errors.As(err, &se) {
		return 0, false
	}
	return se.Kind, true
}
