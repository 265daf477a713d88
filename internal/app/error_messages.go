// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-user-api server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSONBody is returned when the request body cannot be decoded
	// as JSON.
	MsgInvalidJSONBody = "invalid JSON body"

	// MsgInvalidEmailPassword is returned when the supplied email/password
	// combination does not match any existing user record. The same message
	// covers unknown emails and wrong passwords so that login responses do
	// not reveal whether an email is registered.
	MsgInvalidEmailPassword = "invalid email or password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve. In production mode it
	// replaces the real error message entirely.
	MsgInternalServerError = "internal server error"

	// MsgRouteNotFound is returned for requests that match no registered
	// route. Unsupported methods on known routes get the same message.
	MsgRouteNotFound = "route not found"

	// MsgRateLimitExceeded is returned when the caller has exhausted the
	// current fixed rate-limit window.
	MsgRateLimitExceeded = "rate limit exceeded, retry later"

	// MsgInvalidGzipBody is returned when a request declares gzip content
	// encoding but its body is not valid gzip data.
	MsgInvalidGzipBody = "invalid gzip request body"
)
