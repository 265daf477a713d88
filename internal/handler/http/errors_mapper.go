package http

import (
	"errors"

	"github.com/MKhiriev/go-user-api/internal/service"
	"github.com/MKhiriev/go-user-api/internal/store"
)

var errorKindMap = map[error]errorKind{
	service.ErrInvalidDataProvided:     kindValidation,
	service.ErrWrongPassword:           kindUnauthorized,
	service.ErrTokenIsExpired:          kindUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: kindUnauthorized,
	service.ErrTokenCreationFailed:     kindInternal,

	store.ErrEmailAlreadyExists: kindConflict,
	store.ErrUserNotFound:       kindNotFound,

	store.ErrBuildingSQLQuery: kindInternal,
	store.ErrExecutingQuery:   kindInternal,
	store.ErrScanningRow:      kindInternal,
	store.ErrScanningRows:     kindInternal,

	ErrEmptyAuthorizationHeader:   kindUnauthorized,
	ErrInvalidAuthorizationHeader: kindUnauthorized,
	ErrEmptyToken:                 kindUnauthorized,
}

// classifyError maps any error returned by a handler to its errorKind and the
// message that may be shown to the client. An *apiError passes through with
// its own classification; known sentinels are matched with errors.Is; anything
// else is internal.
func classifyError(err error) (errorKind, string) {
	var apiErr *apiError
	if errors.As(err, &apiErr) {
		return apiErr.kind, apiErr.message
	}

	for target, kind := range errorKindMap {
		if errors.Is(err, target) {
			return kind, err.Error()
		}
	}

	return kindInternal, err.Error()
}
