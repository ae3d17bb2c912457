package domain

import (
	"fmt"

	"github.com/SscSPs/bookkeeper/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Side names one half of a double-entry posting.
type Side string

const (
	DebitSide  Side = "debit"
	CreditSide Side = "credit"
)

// BlankAccountError reports an account name that is empty after trimming.
type BlankAccountError struct {
	Side Side
}

func (e *BlankAccountError) Error() string {
	return fmt.Sprintf("%s account must not be blank", e.Side)
}

func (e *BlankAccountError) Unwrap() error { return apperrors.ErrValidation }

// BlankDescriptionError reports a description that is empty after trimming.
type BlankDescriptionError struct{}

func (e *BlankDescriptionError) Error() string {
	return "description must not be blank"
}

func (e *BlankDescriptionError) Unwrap() error { return apperrors.ErrValidation }

// NonPositiveAmountError reports a debit or credit amount that is zero or negative.
type NonPositiveAmountError struct {
	Side   Side
	Amount decimal.Decimal
}

func (e *NonPositiveAmountError) Error() string {
	return fmt.Sprintf("%s amount must be positive: %s", e.Side, e.Amount.String())
}

func (e *NonPositiveAmountError) Unwrap() error { return apperrors.ErrValidation }

// UnbalancedEntryError reports a posting whose debit and credit amounts differ.
type UnbalancedEntryError struct {
	DebitAmount  decimal.Decimal
	CreditAmount decimal.Decimal
}

func (e *UnbalancedEntryError) Error() string {
	return fmt.Sprintf("debit amount (%s) and credit amount (%s) do not match",
		e.DebitAmount.String(), e.CreditAmount.String())
}

func (e *UnbalancedEntryError) Unwrap() error { return apperrors.ErrValidation }
