package services

import (
	"context"

	"github.com/SscSPs/bookkeeper/internal/core/domain"
)

// TransactionWriterSvc records new postings.
type TransactionWriterSvc interface {
	// AddTransaction persists an already validated transaction and returns
	// the stored value, including its assigned ID.
	AddTransaction(ctx context.Context, transaction domain.Transaction) (*domain.Transaction, error)
}

// JournalReaderSvc defines read operations for the journal.
type JournalReaderSvc interface {
	// ListJournal returns every transaction in recorded order.
	ListJournal(ctx context.Context) ([]domain.Transaction, error)

	// ListJournalByAccount returns the transactions touching one account.
	ListJournalByAccount(ctx context.Context, accountName string) ([]domain.Transaction, error)
}

// LedgerReaderSvc derives per-account ledgers.
type LedgerReaderSvc interface {
	// ViewLedger returns the running-balance ledger for accountName.
	// An unknown account yields an empty ledger, not an error.
	ViewLedger(ctx context.Context, accountName string) ([]domain.LedgerEntry, error)
}

// BookkeepingSvcFacade combines all bookkeeping use cases.
type BookkeepingSvcFacade interface {
	TransactionWriterSvc
	JournalReaderSvc
	LedgerReaderSvc
}
