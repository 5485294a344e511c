package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		code   string
		status int
	}{
		{"missing key", fmt.Errorf("fetch: %w", ErrMissingServiceKey), ErrCodeConfiguration, http.StatusInternalServerError},
		{"fetch failed", &UpstreamError{Kind: ErrFetchFailed, Region: "11680", Period: "202501", StatusCode: 503}, ErrCodeFetchFailed, http.StatusBadGateway},
		{"parse failed", &UpstreamError{Kind: ErrParseFailed, Err: stderrors.New("unexpected EOF")}, ErrCodeParseFailed, http.StatusBadGateway},
		{"invalid region", fmt.Errorf("%w: 99999", ErrInvalidRegion), ErrCodeInvalidParameters, http.StatusBadRequest},
		{"zone", ErrZoneNotFound, ErrCodeNotFound, http.StatusNotFound},
		{"unknown", stderrors.New("boom"), ErrCodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := MapError(tt.err)
			assert.Equal(t, tt.code, appErr.Code)
			assert.Equal(t, tt.status, appErr.HTTPStatus)
			assert.Equal(t, tt.err.Error(), appErr.TechnicalMessage)
		})
	}
}

func TestMapErrorPassesThroughAppError(t *testing.T) {
	orig := NewAppError("tech", "user", ErrCodeRateLimited, http.StatusTooManyRequests, nil)
	assert.Same(t, orig, MapError(fmt.Errorf("wrapped: %w", orig)))
	assert.Nil(t, MapError(nil))
}

func TestUpstreamErrorMatchesKind(t *testing.T) {
	err := &UpstreamError{Kind: ErrParseFailed, Region: "11680", Period: "202501", Excerpt: "<html>", Err: stderrors.New("syntax error")}

	assert.True(t, stderrors.Is(err, ErrParseFailed))
	assert.False(t, stderrors.Is(err, ErrFetchFailed))
	assert.Equal(t, ErrCodeParseFailed, err.KindLabel())
	assert.Contains(t, err.Error(), "region=11680 period=202501")
	assert.Contains(t, err.Error(), `body="<html>"`)
}
