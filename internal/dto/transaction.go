package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/bookkeeper/internal/apperrors"
	"github.com/SscSPs/bookkeeper/internal/core/domain"
	"github.com/SscSPs/bookkeeper/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// Amounts travel as strings so their scale is kept exactly.
type CreateTransactionRequest struct {
	Date          string `json:"date" binding:"required,datetime=2006-01-02"`
	DebitAccount  string `json:"debitAccount" binding:"required"`
	DebitAmount   string `json:"debitAmount" binding:"required,positive_amount"`
	CreditAccount string `json:"creditAccount" binding:"required"`
	CreditAmount  string `json:"creditAmount" binding:"omitempty,positive_amount"` // Optional, defaults to debitAmount
	Description   string `json:"description" binding:"required"`
	Note          string `json:"note"`
	EvidencePath  string `json:"evidencePath"`
}

// ToDomain builds a validated domain.Transaction from the request.
// Every failure wraps apperrors.ErrValidation.
func (r CreateTransactionRequest) ToDomain() (domain.Transaction, error) {
	date, err := time.Parse(time.DateOnly, r.Date)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, r.Date)
	}
	debitAmount, err := decimal.NewFromString(r.DebitAmount)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("%w: invalid debit amount %q", apperrors.ErrValidation, r.DebitAmount)
	}
	creditAmount := debitAmount
	if r.CreditAmount != "" {
		creditAmount, err = decimal.NewFromString(r.CreditAmount)
		if err != nil {
			return domain.Transaction{}, fmt.Errorf("%w: invalid credit amount %q", apperrors.ErrValidation, r.CreditAmount)
		}
	}

	return domain.NewTransaction(
		date,
		r.DebitAccount,
		debitAmount,
		r.CreditAccount,
		creditAmount,
		r.Description,
		domain.WithNote(r.Note),
		domain.WithEvidencePath(r.EvidencePath),
	)
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	ID            string `json:"id"`
	Date          string `json:"date"`
	DebitAccount  string `json:"debitAccount"`
	DebitAmount   string `json:"debitAmount"`
	CreditAccount string `json:"creditAccount"`
	CreditAmount  string `json:"creditAmount"`
	Description   string `json:"description"`
	Note          string `json:"note,omitempty"`
	EvidencePath  string `json:"evidencePath,omitempty"`
}

// JournalResponse wraps a list of transactions with its count.
type JournalResponse struct {
	Transactions  []TransactionResponse `json:"transactions"`
	Count         int                   `json:"count"`
	NextPageToken string                `json:"nextPageToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(t domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            t.ID(),
		Date:          t.DateString(),
		DebitAccount:  t.DebitAccount(),
		DebitAmount:   utils.ExactDecimalString(t.DebitAmount()),
		CreditAccount: t.CreditAccount(),
		CreditAmount:  utils.ExactDecimalString(t.CreditAmount()),
		Description:   t.Description(),
		Note:          t.Note(),
		EvidencePath:  t.EvidencePath(),
	}
}

// ToJournalResponse converts a slice of transactions; never nil.
func ToJournalResponse(txns []domain.Transaction) JournalResponse {
	list := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		list[i] = ToTransactionResponse(t)
	}
	return JournalResponse{Transactions: list, Count: len(list)}
}
