package server

// Server is the lifecycle contract of the transport layer.
type Server interface {
	// RunServer serves requests and blocks until a stop signal arrives and
	// graceful shutdown completes.
	RunServer()

	// Shutdown stops accepting new requests and drains in-flight ones.
	Shutdown()
}
