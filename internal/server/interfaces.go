package server

// Server defines the lifecycle contract of the transport server managed by
// this package.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested and to release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	// A non-nil error means the shutdown sequence did not complete cleanly
	// and the process should exit non-zero.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources,
	// reporting every resource that failed to release.
	Shutdown() error
}
