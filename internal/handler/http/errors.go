// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but does not carry a "Bearer <token>" value.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// errorKind classifies every failure the API can report. Each kind maps to
// exactly one HTTP status and one machine-readable code, so the response
// envelope and the status line can never disagree.
type errorKind int

const (
	kindInternal errorKind = iota
	kindValidation
	kindParse
	kindNotFound
	kindConflict
	kindUnauthorized
	kindPayloadTooLarge
	kindRateLimit
)

// Status returns the HTTP status code associated with the kind.
func (k errorKind) Status() int {
	switch k {
	case kindValidation, kindParse:
		return http.StatusBadRequest
	case kindNotFound:
		return http.StatusNotFound
	case kindConflict:
		return http.StatusConflict
	case kindUnauthorized:
		return http.StatusUnauthorized
	case kindPayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	case kindRateLimit:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// Code returns the machine-readable code placed in the error envelope.
func (k errorKind) Code() string {
	switch k {
	case kindValidation:
		return "VALIDATION"
	case kindParse:
		return "PARSE"
	case kindNotFound:
		return "NOT_FOUND"
	case kindConflict:
		return "CONFLICT"
	case kindUnauthorized:
		return "UNAUTHORIZED"
	case kindPayloadTooLarge:
		return "PAYLOAD_TOO_LARGE"
	case kindRateLimit:
		return "RATE_LIMIT_EXCEEDED"
	default:
		return "INTERNAL"
	}
}

// apiError is an error carrying its classification and a client-safe message.
// Handlers return it when they already know how a failure should be reported;
// everything else is classified by classifyError.
type apiError struct {
	kind    errorKind
	message string
	err     error
}

func (e *apiError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.message, e.err)
	}
	return e.message
}

func (e *apiError) Unwrap() error { return e.err }

func newAPIError(kind errorKind, message string) *apiError {
	return &apiError{kind: kind, message: message}
}

func wrapAPIError(kind errorKind, message string, err error) *apiError {
	return &apiError{kind: kind, message: message, err: err}
}
