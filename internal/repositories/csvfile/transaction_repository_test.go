package csvfile_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/bookkeeper/internal/apperrors"
	"github.com/SscSPs/bookkeeper/internal/core/domain"
	"github.com/SscSPs/bookkeeper/internal/repositories/csvfile"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTxn(t *testing.T, day int, debit, credit, amount, desc string, opts ...domain.TransactionOption) domain.Transaction {
	t.Helper()
	a := decimal.RequireFromString(amount)
	txn, err := domain.NewTransaction(time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC), debit, a, credit, a, desc, opts...)
	require.NoError(t, err)
	return txn
}

func newRepo(t *testing.T) (*csvfile.TransactionRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "transactions.csv")
	repo, err := csvfile.NewTransactionRepository(path)
	require.NoError(t, err)
	return repo, path
}

func TestTransactionRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, path := newRepo(t)

	first := newTxn(t, 5, "現金", "売上", "1234.50", "売上計上, 店頭",
		domain.WithNote("line1\nline2"), domain.WithEvidencePath("receipts/a.pdf"))
	stored, err := repo.Add(ctx, first)
	require.NoError(t, err)
	assert.NotEmpty(t, stored.ID())

	second, err := repo.Add(ctx, newTxn(t, 6, "消耗品費", "現金", "300", "文具", domain.WithID("fixed-id")))
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", second.ID())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.SplitN(string(raw), "\n", 2)
	assert.Equal(t, "id,date,debit_account,debit_amount,credit_account,credit_amount,description,note,evidence_path", lines[0])
	assert.Contains(t, string(raw), "1234.50")

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.True(t, stored.Equal(all[0]))
	assert.True(t, second.Equal(all[1]))
	assert.Equal(t, "1234.50", all[0].DebitAmount().StringFixed(2))
	assert.Equal(t, int32(-2), all[0].DebitAmount().Exponent())
}

func TestTransactionRepository_FindByAccount(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepo(t)

	_, err := repo.Add(ctx, newTxn(t, 1, "現金", "売上", "1000", "sale"))
	require.NoError(t, err)
	_, err = repo.Add(ctx, newTxn(t, 2, "消耗品費", "普通預金", "200", "supplies"))
	require.NoError(t, err)
	_, err = repo.Add(ctx, newTxn(t, 3, "普通預金", "現金", "500", "deposit"))
	require.NoError(t, err)

	cash, err := repo.FindByAccount(ctx, "現金")
	require.NoError(t, err)
	require.Len(t, cash, 2)
	assert.Equal(t, "sale", cash[0].Description())
	assert.Equal(t, "deposit", cash[1].Description())

	none, err := repo.FindByAccount(ctx, "未払金")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestTransactionRepository_MissingAndEmptyFile(t *testing.T) {
	ctx := context.Background()
	repo, path := newRepo(t)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	require.NoError(t, os.WriteFile(path, nil, 0o644))
	all, err = repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	_, err = repo.Add(ctx, newTxn(t, 1, "現金", "売上", "1", "first"))
	require.NoError(t, err)
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "id,date,"))
}

func TestTransactionRepository_LegacyFileWithoutID(t *testing.T) {
	ctx := context.Background()
	repo, path := newRepo(t)
	legacy := "date,debit_account,debit_amount,credit_account,credit_amount,description\n" +
		"2024-03-01,現金,10.00,売上,10.00,legacy\n"
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "", all[0].ID())
	assert.Equal(t, "2024-03-01", all[0].DateString())
	assert.Equal(t, "legacy", all[0].Description())
}

func TestTransactionRepository_AppendToLegacyFile(t *testing.T) {
	ctx := context.Background()
	repo, path := newRepo(t)
	legacy := "date,debit_account,debit_amount,credit_account,credit_amount,description,note,evidence_path\n" +
		"2024-01-01,現金,10.00,売上,10.00,legacy,memo,\n"
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))

	added, err := repo.Add(ctx, newTxn(t, 2, "現金", "売上", "5", "new"))
	require.NoError(t, err)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "", all[0].ID())
	assert.Equal(t, "legacy", all[0].Description())
	assert.Equal(t, "memo", all[0].Note())
	assert.Equal(t, "10.00", all[0].DebitAmount().StringFixed(2))
	assert.True(t, added.Equal(all[1]))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "id,date,debit_account,"))
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))

	_, err = repo.Add(ctx, newTxn(t, 3, "普通預金", "現金", "7", "third"))
	require.NoError(t, err)
	all, err = repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "third", all[2].Description())
}

func TestTransactionRepository_AppendFollowsHeaderOrder(t *testing.T) {
	ctx := context.Background()
	repo, path := newRepo(t)
	header := "description,id,date,debit_account,debit_amount,credit_account,credit_amount,note,evidence_path\n"
	require.NoError(t, os.WriteFile(path, []byte(header), 0o644))

	added, err := repo.Add(ctx, newTxn(t, 4, "現金", "売上", "3.5", "reordered"))
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), header))
	assert.Contains(t, string(raw), "reordered,"+added.ID()+",2024-01-04,")

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, added.Equal(all[0]))
}

func TestTransactionRepository_CorruptedRow(t *testing.T) {
	ctx := context.Background()
	repo, path := newRepo(t)
	bad := "id,date,debit_account,debit_amount,credit_account,credit_amount,description,note,evidence_path\n" +
		"a,2024-03-01,現金,10,売上,11,bad,,\n"
	require.NoError(t, os.WriteFile(path, []byte(bad), 0o644))

	_, err := repo.FindAll(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrStorage)
}

func TestTransactionRepository_MissingColumn(t *testing.T) {
	repo, path := newRepo(t)
	require.NoError(t, os.WriteFile(path, []byte("date,description\n2024-01-01,x\n"), 0o644))

	_, err := repo.FindAll(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrStorage)
	assert.ErrorContains(t, err, "debit_account")
}

func TestNewTransactionRepository_EmptyPath(t *testing.T) {
	_, err := csvfile.NewTransactionRepository("")
	assert.Error(t, err)
}
