package mapping

import (
	"fmt"
	"time"

	"github.com/SscSPs/bookkeeper/internal/core/domain"
	"github.com/SscSPs/bookkeeper/internal/models"
	"github.com/SscSPs/bookkeeper/internal/utils"
	"github.com/shopspring/decimal"
)

// ToModelTransaction converts a domain Transaction to its storage record.
func ToModelTransaction(d domain.Transaction) models.TransactionRecord {
	return models.TransactionRecord{
		ID:            d.ID(),
		Date:          d.DateString(),
		DebitAccount:  d.DebitAccount(),
		DebitAmount:   utils.ExactDecimalString(d.DebitAmount()),
		CreditAccount: d.CreditAccount(),
		CreditAmount:  utils.ExactDecimalString(d.CreditAmount()),
		Description:   d.Description(),
		Note:          d.Note(),
		EvidencePath:  d.EvidencePath(),
	}
}

// ToDomainTransaction rebuilds a domain Transaction from a storage record.
// The record goes through domain.NewTransaction, so a corrupted row fails
// validation instead of producing an invalid value.
func ToDomainTransaction(m models.TransactionRecord) (domain.Transaction, error) {
	date, err := time.Parse(time.DateOnly, m.Date)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("invalid date %q: %w", m.Date, err)
	}
	debitAmount, err := decimal.NewFromString(m.DebitAmount)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("invalid debit_amount %q: %w", m.DebitAmount, err)
	}
	creditAmount, err := decimal.NewFromString(m.CreditAmount)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("invalid credit_amount %q: %w", m.CreditAmount, err)
	}

	txn, err := domain.NewTransaction(
		date,
		m.DebitAccount,
		debitAmount,
		m.CreditAccount,
		creditAmount,
		m.Description,
		domain.WithID(m.ID),
		domain.WithNote(m.Note),
		domain.WithEvidencePath(m.EvidencePath),
	)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("record %q: %w", m.ID, err)
	}
	return txn, nil
}

// ToDomainTransactionSlice converts a slice of records, stopping at the first bad one.
func ToDomainTransactionSlice(ms []models.TransactionRecord) ([]domain.Transaction, error) {
	ds := make([]domain.Transaction, 0, len(ms))
	for i, m := range ms {
		d, err := ToDomainTransaction(m)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		ds = append(ds, d)
	}
	return ds, nil
}
