package services

// ServiceContainer holds instances of all the application services.
// Presentation layers (CLI commands and HTTP handlers) depend on it.
type ServiceContainer struct {
	Bookkeeping BookkeepingSvcFacade
}
