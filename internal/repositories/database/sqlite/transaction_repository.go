package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/SscSPs/bookkeeper/internal/apperrors"
	"github.com/SscSPs/bookkeeper/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeper/internal/core/ports/repositories"
	"github.com/SscSPs/bookkeeper/internal/models"
	"github.com/SscSPs/bookkeeper/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
)

var selectColumns = strings.Join(models.TransactionColumns, ", ")

// TransactionRepository persists transactions in the transactions table.
// Amounts are stored as TEXT so their scale survives the round trip.
type TransactionRepository struct {
	conn *Connection
}

// NewTransactionRepository creates a repository on an open connection.
func NewTransactionRepository(conn *Connection) *TransactionRepository {
	return &TransactionRepository{conn: conn}
}

var _ portsrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)

// Add inserts txn, assigning an id when it has none.
func (r *TransactionRepository) Add(ctx context.Context, txn domain.Transaction) (domain.Transaction, error) {
	if txn.ID() == "" {
		txn = txn.WithAssignedID(uuid.NewString())
	}
	rec := mapping.ToModelTransaction(txn)

	query := `
		INSERT INTO transactions (` + selectColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err := r.conn.GetDB().ExecContext(ctx, query, toArgs(rec.Values())...)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return domain.Transaction{}, apperrors.NewAppError(409, "transaction id already exists: "+rec.ID, apperrors.ErrDuplicate)
		}
		return domain.Transaction{}, apperrors.NewStorageError("failed to insert transaction", err)
	}
	return txn, nil
}

// FindAll returns every transaction in insertion order.
func (r *TransactionRepository) FindAll(ctx context.Context) ([]domain.Transaction, error) {
	query := `SELECT ` + selectColumns + ` FROM transactions ORDER BY seq;`
	return r.query(ctx, query)
}

// FindByAccount returns the transactions that debit or credit accountName.
func (r *TransactionRepository) FindByAccount(ctx context.Context, accountName string) ([]domain.Transaction, error) {
	query := `
		SELECT ` + selectColumns + `
		FROM transactions
		WHERE debit_account = ? OR credit_account = ?
		ORDER BY seq;
	`
	return r.query(ctx, query, accountName, accountName)
}

func (r *TransactionRepository) query(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.conn.GetDB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to query transactions", err)
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to scan transaction row", err)
	}
	txns, err := mapping.ToDomainTransactionSlice(records)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to decode transactions", err)
	}
	return txns, nil
}

func scanRecords(rows *sql.Rows) ([]models.TransactionRecord, error) {
	records := make([]models.TransactionRecord, 0)
	for rows.Next() {
		var rec models.TransactionRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.Date,
			&rec.DebitAccount,
			&rec.DebitAmount,
			&rec.CreditAccount,
			&rec.CreditAmount,
			&rec.Description,
			&rec.Note,
			&rec.EvidencePath,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func toArgs(values []string) []any {
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}
	return args
}
