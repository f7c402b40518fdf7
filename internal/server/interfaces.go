package server

// Server is the lifecycle contract of the notelink API server as seen from
// main: start it, and stop it when a shutdown signal arrives.
//
// RunServer blocks until the server stops; Shutdown drains in-flight
// requests before releasing the listener, so a note write that already
// passed the auth middleware is never cut off mid-response.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
