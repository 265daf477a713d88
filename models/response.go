// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Response is the uniform envelope wrapping every JSON body the API returns.
//
// Exactly one of the two variants is populated per response:
//   - success: Success is true, Data is set, Error is nil;
//   - failure: Success is false, Error is set, Data is nil.
//
// Meta is present only on paginated list responses. The HTTP status code of
// the response always agrees with the variant (a failure envelope is never
// paired with a 2xx status).
type Response struct {
	// Success reports the logical outcome of the request.
	Success bool `json:"success"`

	// Data carries the operation result for successful responses.
	Data any `json:"data,omitempty"`

	// Meta carries pagination information for list responses.
	Meta *Meta `json:"meta,omitempty"`

	// Error carries failure details for unsuccessful responses.
	Error *ResponseError `json:"error,omitempty"`
}

// Meta describes the pagination window of a list response.
type Meta struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// ResponseError is the failure payload of the envelope.
type ResponseError struct {
	// Message is a human-readable description of the failure.
	Message string `json:"message"`

	// Code is a stable machine-readable identifier of the failure kind
	// (e.g. "NOT_FOUND", "RATE_LIMIT_EXCEEDED").
	Code string `json:"code"`

	// RequestID echoes the request identifier bound at chain entry,
	// when one is present.
	RequestID string `json:"requestId,omitempty"`

	// Details carries optional structured context, such as per-field
	// validation failures.
	Details any `json:"details,omitempty"`
}

// OK builds a success envelope around data.
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// Paginated builds a success envelope around a page of items.
func Paginated(data any, page, limit, total int) Response {
	return Response{
		Success: true,
		Data:    data,
		Meta:    &Meta{Page: page, Limit: limit, Total: total},
	}
}

// Fail builds a failure envelope with the given message and machine code.
func Fail(message, code, requestID string) Response {
	return Response{
		Success: false,
		Error: &ResponseError{
			Message:   message,
			Code:      code,
			RequestID: requestID,
		},
	}
}
