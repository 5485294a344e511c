package errors

import (
	stderrors "errors"
	"net/http"
)

// MapError converts a technical error into a user-friendly AppError.
func MapError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	technicalMessage := err.Error()

	switch {
	case stderrors.Is(err, ErrMissingServiceKey):
		return NewAppError(technicalMessage, MsgMissingServiceKey, ErrCodeConfiguration, http.StatusInternalServerError, err)
	case stderrors.Is(err, ErrParseFailed):
		return NewAppError(technicalMessage, MsgParseFailed, ErrCodeParseFailed, http.StatusBadGateway, err)
	case stderrors.Is(err, ErrFetchFailed):
		return NewAppError(technicalMessage, MsgFetchFailed, ErrCodeFetchFailed, http.StatusBadGateway, err)
	case stderrors.Is(err, ErrInvalidRegion),
		stderrors.Is(err, ErrInvalidPeriod),
		stderrors.Is(err, ErrInvalidParameters):
		return NewAppError(technicalMessage, MsgInvalidParameters, ErrCodeInvalidParameters, http.StatusBadRequest, err)
	case stderrors.Is(err, ErrZoneNotFound):
		return NewAppError(technicalMessage, MsgNotFound, ErrCodeNotFound, http.StatusNotFound, err)
	default:
		return NewAppError(technicalMessage, MsgInternalError, ErrCodeInternal, http.StatusInternalServerError, err)
	}
}
