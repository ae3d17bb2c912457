package dto_test

import (
	"testing"

	"github.com/SscSPs/bookkeeper/internal/apperrors"
	"github.com/SscSPs/bookkeeper/internal/core/domain"
	"github.com/SscSPs/bookkeeper/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTransactionRequest_ToDomain(t *testing.T) {
	req := dto.CreateTransactionRequest{
		Date:          "2024-01-15",
		DebitAccount:  "現金",
		DebitAmount:   "1000.50",
		CreditAccount: "売上",
		Description:   "商品販売",
		Note:          "memo",
	}

	txn, err := req.ToDomain()
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", txn.DateString())
	assert.True(t, txn.CreditAmount().Equal(decimal.RequireFromString("1000.50")))
	assert.Equal(t, "memo", txn.Note())

	resp := dto.ToTransactionResponse(txn)
	assert.Equal(t, "1000.50", resp.DebitAmount)
	assert.Equal(t, "1000.50", resp.CreditAmount)
}

func TestCreateTransactionRequest_ToDomainErrors(t *testing.T) {
	base := dto.CreateTransactionRequest{
		Date: "2024-01-15", DebitAccount: "現金", DebitAmount: "10",
		CreditAccount: "売上", Description: "x",
	}

	tests := map[string]func(r *dto.CreateTransactionRequest){
		"bad date":      func(r *dto.CreateTransactionRequest) { r.Date = "15/01/2024" },
		"bad debit":     func(r *dto.CreateTransactionRequest) { r.DebitAmount = "abc" },
		"bad credit":    func(r *dto.CreateTransactionRequest) { r.CreditAmount = "abc" },
		"unbalanced":    func(r *dto.CreateTransactionRequest) { r.CreditAmount = "11" },
		"blank account": func(r *dto.CreateTransactionRequest) { r.DebitAccount = "   " },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			req := base
			mutate(&req)
			_, err := req.ToDomain()
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestToLedgerResponse(t *testing.T) {
	debit := decimal.RequireFromString("500")
	entries := []domain.LedgerEntry{
		{Date: "2024-01-01", Description: "in", DebitAmount: &debit, Balance: decimal.RequireFromString("500")},
	}

	resp := dto.ToLedgerResponse("現金", entries)
	assert.Equal(t, domain.Asset, resp.AccountType)
	assert.Equal(t, "500", resp.ClosingBalance)
	assert.Equal(t, "500", resp.NaturalBalance)
	require.Len(t, resp.Entries, 1)
	require.NotNil(t, resp.Entries[0].DebitAmount)
	assert.Equal(t, "500", *resp.Entries[0].DebitAmount)
	assert.Nil(t, resp.Entries[0].CreditAmount)

	empty := dto.ToLedgerResponse("謎", []domain.LedgerEntry{})
	assert.Empty(t, empty.AccountType)
	assert.Empty(t, empty.NaturalBalance)
	assert.NotNil(t, empty.Entries)
	assert.Equal(t, "0", empty.ClosingBalance)
}

func TestToLedgerResponse_RevenueNaturalBalance(t *testing.T) {
	credit := decimal.RequireFromString("1000")
	entries := []domain.LedgerEntry{
		{Date: "2024-01-01", Description: "sale", CreditAmount: &credit, Balance: decimal.RequireFromString("-1000")},
	}

	resp := dto.ToLedgerResponse("売上", entries)
	assert.Equal(t, "-1000", resp.ClosingBalance)
	assert.Equal(t, "1000", resp.NaturalBalance)
}
