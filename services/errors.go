package services

import (
	"errors"
	"strings"
)

// MissingInputError is returned when a plan request lacks required keys.
// No upstream call is made in that case.
type MissingInputError struct {
	Fields []string
}

func (e *MissingInputError) Error() string {
	if len(e.Fields) == 0 {
		return "missing data"
	}
	return "missing data: " + strings.Join(e.Fields, ", ")
}

// UpstreamError wraps a failed model call or an unparseable model reply
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	if e.Err == nil {
		return "model API error"
	}
	return "model API error: " + e.Err.Error()
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// IsMissingInput reports whether err is or wraps a MissingInputError
func IsMissingInput(err error) bool {
	var target *MissingInputError
	return errors.As(err, &target)
}

// IsUpstream reports whether err is or wraps an UpstreamError
func IsUpstream(err error) bool {
	var target *UpstreamError
	return errors.As(err, &target)
}
