package accounting

import (
	"fmt"

	"github.com/SscSPs/bookkeeper/internal/core/domain"
	"github.com/shopspring/decimal"
)

// NaturalBalance reorients a debit-minus-credit balance to the account's normal side.
// ASSET/EXPENSE keep the sign; LIABILITY/EQUITY/REVENUE are negated, so a
// healthy revenue account reads positive.
func NaturalBalance(balance decimal.Decimal, accountType domain.AccountType) (decimal.Decimal, error) {
	switch accountType {
	case domain.Asset, domain.Expense:
		return balance, nil
	case domain.Liability, domain.Equity, domain.Revenue:
		return balance.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown account type '%s'", accountType)
	}
}

// ValidateJournalBalance checks that total debits equal total credits across the journal.
// Each stored transaction is balanced on its own, so a mismatch means corrupted storage.
func ValidateJournalBalance(transactions []domain.Transaction) error {
	debits, credits := decimal.Zero, decimal.Zero
	for _, txn := range transactions {
		if !txn.DebitAmount().IsPositive() || !txn.CreditAmount().IsPositive() {
			return fmt.Errorf("transaction amount must be positive for transaction ID %s", txn.ID())
		}
		debits = debits.Add(txn.DebitAmount())
		credits = credits.Add(txn.CreditAmount())
	}

	if !debits.Equal(credits) {
		return fmt.Errorf("journal does not balance: debits %s, credits %s", debits.String(), credits.String())
	}
	return nil
}
