package service

// Service is a long-lived subsystem outside the tick loop: content, audio, terminal
//
// Lifecycle:
//  1. Register with a Hub
//  2. Init(args...) in dependency order, args are shared by every service
//  3. Start() after every service initialized
//  4. Stop() in reverse start order, must be idempotent
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must Init before this one
	Dependencies() []string

	// Init configures the service, typically from *config.Config in args[0]
	Init(args ...any) error

	// Start begins service operation
	Start() error

	// Stop halts service operation and releases resources
	Stop() error
}
