package server

// Server is the development backend process.
type Server interface {
	// RunServer serves until an interrupt signal arrives, then drains open
	// connections. It returns early with the listener error if the address
	// cannot be bound.
	RunServer() error

	Shutdown()
}
