package repositories

import (
	"context"

	"github.com/SscSPs/bookkeeper/internal/core/domain"
)

// TransactionReader defines read operations for the transaction log.
type TransactionReader interface {
	// FindAll returns every stored transaction in insertion order.
	FindAll(ctx context.Context) ([]domain.Transaction, error)

	// FindByAccount returns the transactions whose debit or credit account
	// equals accountName, in insertion order.
	FindByAccount(ctx context.Context, accountName string) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for the transaction log.
type TransactionWriter interface {
	// Add appends a transaction. If it has no ID one is assigned; the stored
	// value is returned.
	Add(ctx context.Context, transaction domain.Transaction) (domain.Transaction, error)
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
