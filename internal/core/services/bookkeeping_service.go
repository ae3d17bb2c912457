package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/bookkeeper/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeper/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeper/internal/core/ports/services"
	"github.com/SscSPs/bookkeeper/internal/utils/accounting"
)

// bookkeepingService implements the add / journal / ledger use cases on top
// of a transaction repository. Repository errors are returned unchanged.
type bookkeepingService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
}

// NewBookkeepingService creates a new BookkeepingSvcFacade.
func NewBookkeepingService(transactionRepo portsrepo.TransactionRepositoryFacade) portssvc.BookkeepingSvcFacade {
	return &bookkeepingService{
		transactionRepo: transactionRepo,
	}
}

var _ portssvc.BookkeepingSvcFacade = (*bookkeepingService)(nil)

// AddTransaction stores a transaction. The entity validated itself on
// construction, so nothing is checked here.
func (s *bookkeepingService) AddTransaction(ctx context.Context, transaction domain.Transaction) (*domain.Transaction, error) {
	stored, err := s.transactionRepo.Add(ctx, transaction)
	if err != nil {
		s.LogError(ctx, err, "Failed to add transaction",
			slog.String("debit_account", transaction.DebitAccount()),
			slog.String("credit_account", transaction.CreditAccount()))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction added",
		slog.String("transaction_id", stored.ID()),
		slog.String("date", stored.DateString()),
		slog.String("amount", stored.Amount().String()))
	return &stored, nil
}

// ListJournal returns all transactions in recorded order.
func (s *bookkeepingService) ListJournal(ctx context.Context) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.FindAll(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal")
		return nil, err
	}
	if err := accounting.ValidateJournalBalance(transactions); err != nil {
		s.GetLogger(ctx).Warn("Journal integrity check failed", slog.String("error", err.Error()))
	}
	s.LogDebug(ctx, "Journal listed", slog.Int("count", len(transactions)))
	return transactions, nil
}

// ListJournalByAccount returns the transactions touching accountName.
func (s *bookkeepingService) ListJournalByAccount(ctx context.Context, accountName string) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.FindByAccount(ctx, accountName)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal by account", slog.String("account", accountName))
		return nil, err
	}
	return transactions, nil
}

// ViewLedger loads the full journal and derives the ledger of accountName.
func (s *bookkeepingService) ViewLedger(ctx context.Context, accountName string) ([]domain.LedgerEntry, error) {
	transactions, err := s.transactionRepo.FindAll(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for ledger", slog.String("account", accountName))
		return nil, err
	}

	entries := GenerateLedger(transactions, accountName)
	s.LogDebug(ctx, "Ledger generated",
		slog.String("account", accountName),
		slog.Int("entries", len(entries)))
	return entries, nil
}
