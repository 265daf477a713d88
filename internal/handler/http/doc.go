// Package http implements the HTTP transport layer of the application.
// It provides the middleware pipeline, route handlers, and the uniform
// response envelope of the REST API. Security headers, CORS, compression,
// request identification, rate limiting, authentication, and error
// normalization are all handled at this layer before requests are forwarded
// to the service layer.
package http
