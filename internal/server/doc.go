// Package server wires and runs the application's transport server.
//
// It provides orchestration for the HTTP server lifecycle together with the
// background workers: startup, signal handling, and graceful shutdown that
// drains in-flight requests and releases every attached resource.
package server
