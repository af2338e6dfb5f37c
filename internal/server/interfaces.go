package server

// Server is the lifecycle contract of a transport server.
type Server interface {
	// RunServer starts serving and blocks until the server has shut down.
	RunServer()

	// Shutdown stops the server gracefully, draining in-flight requests.
	Shutdown()
}
