package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single double-entry posting: one debit line and one
// credit line of equal amount. Values are only obtainable through
// NewTransaction and are never modified afterwards.
type Transaction struct {
	id            string
	date          time.Time
	debitAccount  string
	debitAmount   decimal.Decimal
	creditAccount string
	creditAmount  decimal.Decimal
	description   string
	note          string
	evidencePath  string
}

// TransactionOption sets an optional field during construction.
type TransactionOption func(*Transaction)

// WithID sets the identifier. Storage adapters assign one when it is empty.
func WithID(id string) TransactionOption {
	return func(t *Transaction) { t.id = id }
}

// WithNote attaches a free-text note.
func WithNote(note string) TransactionOption {
	return func(t *Transaction) { t.note = note }
}

// WithEvidencePath attaches a reference to a receipt or invoice file.
func WithEvidencePath(path string) TransactionOption {
	return func(t *Transaction) { t.evidencePath = path }
}

// NewTransaction validates the inputs and returns an immutable Transaction.
// The date is truncated to a calendar day in UTC. Amounts written with a
// positive exponent, such as 1e3, are stored at scale 0.
//
// Checks run in this order and the first failure is returned:
// blank debit account, blank credit account, blank description,
// non-positive amount, unbalanced amounts.
func NewTransaction(
	date time.Time,
	debitAccount string,
	debitAmount decimal.Decimal,
	creditAccount string,
	creditAmount decimal.Decimal,
	description string,
	opts ...TransactionOption,
) (Transaction, error) {
	if strings.TrimSpace(debitAccount) == "" {
		return Transaction{}, &BlankAccountError{Side: DebitSide}
	}
	if strings.TrimSpace(creditAccount) == "" {
		return Transaction{}, &BlankAccountError{Side: CreditSide}
	}
	if strings.TrimSpace(description) == "" {
		return Transaction{}, &BlankDescriptionError{}
	}
	if !debitAmount.IsPositive() {
		return Transaction{}, &NonPositiveAmountError{Side: DebitSide, Amount: debitAmount}
	}
	if !creditAmount.IsPositive() {
		return Transaction{}, &NonPositiveAmountError{Side: CreditSide, Amount: creditAmount}
	}
	if !debitAmount.Equal(creditAmount) {
		return Transaction{}, &UnbalancedEntryError{DebitAmount: debitAmount, CreditAmount: creditAmount}
	}

	debitAmount, creditAmount = integerScale(debitAmount), integerScale(creditAmount)

	y, m, d := date.Date()
	txn := Transaction{
		date:          time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		debitAccount:  debitAccount,
		debitAmount:   debitAmount,
		creditAccount: creditAccount,
		creditAmount:  creditAmount,
		description:   description,
	}
	for _, opt := range opts {
		opt(&txn)
	}
	return txn, nil
}

func (t Transaction) ID() string                    { return t.id }
func (t Transaction) Date() time.Time               { return t.date }
func (t Transaction) DebitAccount() string          { return t.debitAccount }
func (t Transaction) DebitAmount() decimal.Decimal  { return t.debitAmount }
func (t Transaction) CreditAccount() string         { return t.creditAccount }
func (t Transaction) CreditAmount() decimal.Decimal { return t.creditAmount }
func (t Transaction) Description() string           { return t.description }
func (t Transaction) Note() string                  { return t.note }
func (t Transaction) EvidencePath() string          { return t.evidencePath }

// DateString returns the date in ISO 8601 form (YYYY-MM-DD).
func (t Transaction) DateString() string {
	return t.date.Format(time.DateOnly)
}

// Amount is the posting amount. Debit and credit are equal by construction.
func (t Transaction) Amount() decimal.Decimal {
	return t.debitAmount
}

// Touches reports whether the account appears on either side.
func (t Transaction) Touches(accountName string) bool {
	return t.debitAccount == accountName || t.creditAccount == accountName
}

// WithAssignedID returns a copy carrying the given identifier.
func (t Transaction) WithAssignedID(id string) Transaction {
	t.id = id
	return t
}

// Equal compares every field. Amounts must match in value and in scale,
// so 1234.50 and 1234.5 are different.
func (t Transaction) Equal(other Transaction) bool {
	return t.id == other.id &&
		t.date.Equal(other.date) &&
		t.debitAccount == other.debitAccount &&
		sameDecimal(t.debitAmount, other.debitAmount) &&
		t.creditAccount == other.creditAccount &&
		sameDecimal(t.creditAmount, other.creditAmount) &&
		t.description == other.description &&
		t.note == other.note &&
		t.evidencePath == other.evidencePath
}

func sameDecimal(a, b decimal.Decimal) bool {
	return a.Equal(b) && a.Exponent() == b.Exponent()
}

func integerScale(d decimal.Decimal) decimal.Decimal {
	if d.Exponent() > 0 {
		return decimal.NewFromBigInt(d.BigInt(), 0)
	}
	return d
}
