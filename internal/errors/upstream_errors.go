package errors

import (
	stderrors "errors"
	"fmt"
)

var (
	ErrMissingServiceKey = stderrors.New("API key not configured")
	ErrFetchFailed       = stderrors.New("trade feed fetch failed")
	ErrParseFailed       = stderrors.New("trade feed parse failed")
	ErrInvalidRegion     = stderrors.New("unknown region")
	ErrInvalidPeriod     = stderrors.New("invalid year-month")
	ErrInvalidParameters = stderrors.New("invalid parameters")
	ErrZoneNotFound      = stderrors.New("zone not found")
)

// UpstreamError describes a failed trade feed request for one region and
// month. Kind is ErrFetchFailed or ErrParseFailed.
type UpstreamError struct {
	Kind       error
	Region     string
	Period     string
	StatusCode int
	Excerpt    string
	Err        error
}

func (e *UpstreamError) Error() string {
	msg := fmt.Sprintf("%v (region=%s period=%s", e.Kind, e.Region, e.Period)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" status=%d", e.StatusCode)
	}
	msg += ")"
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Excerpt != "" {
		msg += fmt.Sprintf(" body=%q", e.Excerpt)
	}
	return msg
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Is matches the error's kind so errors.Is(err, ErrFetchFailed) works even
// when Err does not wrap the sentinel.
func (e *UpstreamError) Is(target error) bool {
	return target == e.Kind
}

// KindLabel returns the error code that matches the kind.
func (e *UpstreamError) KindLabel() string {
	if e.Kind == ErrParseFailed {
		return ErrCodeParseFailed
	}
	return ErrCodeFetchFailed
}
