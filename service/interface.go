// Package service manages lifecycles of the collaborators around the simulation
package service

// Service defines the lifecycle interface for process collaborators
// Services own long-lived resources: the speaker, the status API listener, metric reporting
//
// Lifecycle:
//  1. Construction
//  2. Init(args...) - late configuration (e.g. mute flag)
//  3. Start() - open devices, launch goroutines
//  4. [runtime operation]
//  5. Stop() - halt goroutines, release resources
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must start before this one
	Dependencies() []string

	// Init configures the service from optional args
	Init(args ...any) error

	// Start begins service operation
	// Called after all services have initialized
	Start() error

	// Stop halts service operation and releases resources
	// Must be idempotent
	Stop() error
}
