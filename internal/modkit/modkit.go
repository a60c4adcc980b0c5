package modkit

// Module is the common surface for modules that mount routes and expose ports.
// The fixer module mounts nothing; the api modules mount under /api/v1
type Module interface {
	MountRoutes(r Router)
	// Ports returns the module's port set for cross wiring, or nil
	Ports() any
	Name() string
}

// Builder constructs a Module from shared deps and options
type Builder func(Deps, ...Option) Module
