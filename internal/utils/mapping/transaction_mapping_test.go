package mapping_test

import (
	"testing"
	"time"

	"github.com/SscSPs/bookkeeper/internal/apperrors"
	"github.com/SscSPs/bookkeeper/internal/core/domain"
	"github.com/SscSPs/bookkeeper/internal/models"
	"github.com/SscSPs/bookkeeper/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionMapping_RoundTrip(t *testing.T) {
	amount := decimal.RequireFromString("1234.50")
	txn, err := domain.NewTransaction(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		"普通預金", amount, "売掛金", amount, "入金",
		domain.WithID("6f1c"), domain.WithNote("invoice 42"), domain.WithEvidencePath("evidence/42.pdf"))
	require.NoError(t, err)

	record := mapping.ToModelTransaction(txn)
	assert.Equal(t, models.TransactionRecord{
		ID:            "6f1c",
		Date:          "2024-02-29",
		DebitAccount:  "普通預金",
		DebitAmount:   "1234.50",
		CreditAccount: "売掛金",
		CreditAmount:  "1234.50",
		Description:   "入金",
		Note:          "invoice 42",
		EvidencePath:  "evidence/42.pdf",
	}, record)

	back, err := mapping.ToDomainTransaction(record)
	require.NoError(t, err)
	assert.True(t, txn.Equal(back))
	assert.Equal(t, record, mapping.ToModelTransaction(back))
}

func TestTransactionMapping_RoundTripPositiveExponent(t *testing.T) {
	txn, err := domain.NewTransaction(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		"現金", decimal.New(1, 3), "売上", decimal.New(1, 3), "sale")
	require.NoError(t, err)

	record := mapping.ToModelTransaction(txn)
	assert.Equal(t, "1000", record.DebitAmount)

	back, err := mapping.ToDomainTransaction(record)
	require.NoError(t, err)
	assert.True(t, txn.Equal(back))
}

func TestToDomainTransaction_Errors(t *testing.T) {
	valid := models.TransactionRecord{
		ID: "x", Date: "2024-01-01", DebitAccount: "現金", DebitAmount: "10",
		CreditAccount: "売上", CreditAmount: "10", Description: "sale",
	}

	badDate := valid
	badDate.Date = "01/02/2024"
	_, err := mapping.ToDomainTransaction(badDate)
	assert.ErrorContains(t, err, "invalid date")

	badAmount := valid
	badAmount.DebitAmount = "ten"
	_, err = mapping.ToDomainTransaction(badAmount)
	assert.ErrorContains(t, err, "invalid debit_amount")

	unbalanced := valid
	unbalanced.CreditAmount = "11"
	_, err = mapping.ToDomainTransaction(unbalanced)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestToDomainTransactionSlice_ReportsRow(t *testing.T) {
	rows := []models.TransactionRecord{
		{Date: "2024-01-01", DebitAccount: "現金", DebitAmount: "1", CreditAccount: "売上", CreditAmount: "1", Description: "a"},
		{Date: "2024-01-02", DebitAccount: "", DebitAmount: "1", CreditAccount: "売上", CreditAmount: "1", Description: "b"},
	}

	_, err := mapping.ToDomainTransactionSlice(rows)
	assert.ErrorContains(t, err, "row 2")
}
