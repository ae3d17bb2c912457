package services

import (
	"github.com/SscSPs/bookkeeper/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GenerateLedger folds transactions into the running-balance ledger of one
// account. Debits to the account add to the balance and credits subtract,
// regardless of the account's normal side. Transactions that do not touch
// the account produce no entry.
//
// Input order is kept as is; the slice is not sorted or modified.
func GenerateLedger(transactions []domain.Transaction, accountName string) []domain.LedgerEntry {
	entries := make([]domain.LedgerEntry, 0)
	balance := decimal.Zero

	for _, txn := range transactions {
		var debitAmt, creditAmt *decimal.Decimal

		if txn.DebitAccount() == accountName {
			amt := txn.DebitAmount()
			debitAmt = &amt
			balance = balance.Add(amt)
		}

		// Not an else: a posting from an account to itself matches both sides.
		if txn.CreditAccount() == accountName {
			amt := txn.CreditAmount()
			creditAmt = &amt
			balance = balance.Sub(amt)
		}

		if debitAmt == nil && creditAmt == nil {
			continue
		}

		entries = append(entries, domain.LedgerEntry{
			Date:         txn.DateString(),
			Description:  txn.Description(),
			DebitAmount:  debitAmt,
			CreditAmount: creditAmt,
			Balance:      balance,
		})
	}

	return entries
}

// ClosingBalance returns the balance after the last entry, or zero for an empty ledger.
func ClosingBalance(entries []domain.LedgerEntry) decimal.Decimal {
	if len(entries) == 0 {
		return decimal.Zero
	}
	return entries[len(entries)-1].Balance
}
