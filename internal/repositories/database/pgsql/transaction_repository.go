package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/bookkeeper/internal/apperrors"
	"github.com/SscSPs/bookkeeper/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeper/internal/core/ports/repositories"
	"github.com/SscSPs/bookkeeper/internal/models"
	"github.com/SscSPs/bookkeeper/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the Postgres SQLSTATE for a unique constraint failure.
const uniqueViolation = "23505"

// Amounts and dates are selected as text so NUMERIC scale is kept exactly.
const selectTransactionColumns = `
	id, date::text, debit_account, debit_amount::text, credit_account,
	credit_amount::text, description, note, evidence_path`

type PgxTransactionRepository struct {
	BaseRepository
}

// NewPgxTransactionRepository creates a repository backed by the transactions table.
func NewPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// Add inserts txn inside a database transaction, assigning an id when it has none.
func (r *PgxTransactionRepository) Add(ctx context.Context, txn domain.Transaction) (domain.Transaction, error) {
	if txn.ID() == "" {
		txn = txn.WithAssignedID(uuid.NewString())
	}
	rec := mapping.ToModelTransaction(txn)

	tx, err := r.Begin(ctx)
	if err != nil {
		return domain.Transaction{}, err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	query := `
		INSERT INTO transactions (id, date, debit_account, debit_amount, credit_account, credit_amount, description, note, evidence_path)
		VALUES ($1, $2::date, $3, $4::numeric, $5, $6::numeric, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, query,
		rec.ID,
		rec.Date,
		rec.DebitAccount,
		rec.DebitAmount,
		rec.CreditAccount,
		rec.CreditAmount,
		rec.Description,
		rec.Note,
		rec.EvidencePath,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.Transaction{}, apperrors.NewAppError(409, "transaction id already exists: "+rec.ID, apperrors.ErrDuplicate)
		}
		return domain.Transaction{}, apperrors.NewStorageError("failed to insert transaction", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return domain.Transaction{}, err
	}
	return txn, nil
}

// FindAll returns every transaction in insertion order.
func (r *PgxTransactionRepository) FindAll(ctx context.Context) ([]domain.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + ` FROM transactions ORDER BY seq;`
	return r.query(ctx, query)
}

// FindByAccount returns the transactions that debit or credit accountName.
func (r *PgxTransactionRepository) FindByAccount(ctx context.Context, accountName string) ([]domain.Transaction, error) {
	query := `
		SELECT ` + selectTransactionColumns + `
		FROM transactions
		WHERE debit_account = $1 OR credit_account = $1
		ORDER BY seq;
	`
	return r.query(ctx, query, accountName)
}

func (r *PgxTransactionRepository) query(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to query transactions", err)
	}

	records, err := pgx.CollectRows(rows, scanTransactionRecord)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to scan transaction row", err)
	}

	txns, err := mapping.ToDomainTransactionSlice(records)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to decode transactions", err)
	}
	return txns, nil
}

func scanTransactionRecord(row pgx.CollectableRow) (models.TransactionRecord, error) {
	var rec models.TransactionRecord
	err := row.Scan(
		&rec.ID,
		&rec.Date,
		&rec.DebitAccount,
		&rec.DebitAmount,
		&rec.CreditAccount,
		&rec.CreditAmount,
		&rec.Description,
		&rec.Note,
		&rec.EvidencePath,
	)
	return rec, err
}
