package format

import (
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/bookkeeper/internal/core/domain"
	"github.com/SscSPs/bookkeeper/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txn(t *testing.T, day int, debit, credit, amount, desc string) domain.Transaction {
	t.Helper()
	a := decimal.RequireFromString(amount)
	tx, err := domain.NewTransaction(time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC), debit, a, credit, a, desc)
	require.NoError(t, err)
	return tx
}

func TestDisplayWidth(t *testing.T) {
	assert.Equal(t, 4, displayWidth("現金"))
	assert.Equal(t, 5, displayWidth("abcde"))
	assert.Equal(t, 6, displayWidth("a現金b"))
	assert.Equal(t, "現金  ", padRight("現金", 6))
	assert.Equal(t, "  1,000", padLeft("1,000", 7))
	assert.Equal(t, "toolong", padRight("toolong", 3))
}

func TestFormatJournal_Empty(t *testing.T) {
	assert.Equal(t, "仕訳がありません。", FormatJournal(nil))
}

func TestFormatJournal(t *testing.T) {
	out := FormatJournal([]domain.Transaction{
		txn(t, 15, "現金", "売上", "1000", "商品販売"),
		txn(t, 16, "消耗品費", "現金", "1234.50", "文具"),
	})
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 7)
	assert.Equal(t, strings.Repeat("=", 120), lines[0])
	assert.Contains(t, lines[3], "2024-01-15")
	assert.Contains(t, lines[3], "1,000")
	assert.Contains(t, lines[4], "1,234.50")
	assert.Equal(t, "合計: 2 件", lines[6])

	// The debit amount column ends at the same display column in header and rows.
	headerEnd := strings.Index(lines[1], "借方金額") + len("借方金額")
	rowEnd := strings.Index(lines[3], "1,000") + len("1,000")
	want := dateCol + 1 + accountCol + 1 + amountCol
	assert.Equal(t, want, displayWidth(lines[1][:headerEnd]))
	assert.Equal(t, want, displayWidth(lines[3][:rowEnd]))
}

func TestFormatLedger(t *testing.T) {
	txns := []domain.Transaction{
		txn(t, 1, "普通預金", "売上", "500", "入金"),
		txn(t, 2, "消耗品費", "普通預金", "200", "支払"),
	}
	out := FormatLedger("普通預金", services.GenerateLedger(txns, "普通預金"))
	lines := strings.Split(out, "\n")

	assert.Equal(t, "【普通預金 元帳】", lines[1])
	assert.Contains(t, lines[5], "500")
	assert.Contains(t, lines[6], "300")
	assert.Equal(t, "期末残高: 300", lines[len(lines)-1])
}

func TestFormatLedger_Empty(t *testing.T) {
	assert.Equal(t, "「未払金」の取引がありません。", FormatLedger("未払金", []domain.LedgerEntry{}))
}

func TestFormatAccounts(t *testing.T) {
	out := FormatAccounts(domain.KnownAccounts())
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 2+len(domain.KnownAccounts()))
	assert.True(t, strings.HasPrefix(lines[2], "現金"))
	assert.True(t, strings.HasSuffix(lines[2], "資産"))
}
