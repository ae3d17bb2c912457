package services

import (
	portsrepo "github.com/SscSPs/bookkeeper/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeper/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Bookkeeping: NewBookkeepingService(repos.TransactionRepo),
	}
}
