package domain

import "github.com/shopspring/decimal"

// LedgerEntry is one row of an account ledger.
// DebitAmount and CreditAmount are nil when the account did not appear on that side.
type LedgerEntry struct {
	Date         string           `json:"date"`
	Description  string           `json:"description"`
	DebitAmount  *decimal.Decimal `json:"debitAmount,omitempty"`
	CreditAmount *decimal.Decimal `json:"creditAmount,omitempty"`
	Balance      decimal.Decimal  `json:"balance"` // after applying this transaction
}
