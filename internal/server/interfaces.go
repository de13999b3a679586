package server

// Server is the lifecycle contract of the HTTP front end.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives, then shuts
	// down gracefully and returns nil. A server that stops on its own, for
	// example because the address is taken, makes it return the error.
	RunServer() error

	// Shutdown stops accepting requests and waits for in-flight ones.
	Shutdown()
}
