// Package csvfile stores transactions in a single CSV file with a header row.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/SscSPs/bookkeeper/internal/apperrors"
	"github.com/SscSPs/bookkeeper/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeper/internal/core/ports/repositories"
	"github.com/SscSPs/bookkeeper/internal/models"
	"github.com/SscSPs/bookkeeper/internal/utils/mapping"
	"github.com/google/uuid"
)

// TransactionRepository appends and reads transactions from a CSV file.
// The file is created with a header row on first write.
type TransactionRepository struct {
	mu   sync.Mutex
	path string
}

// NewTransactionRepository creates a CSV backed repository at path.
// The parent directory is created if missing.
func NewTransactionRepository(path string) (*TransactionRepository, error) {
	if path == "" {
		return nil, fmt.Errorf("csv path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, apperrors.NewStorageError("failed to create data directory", err)
	}
	return &TransactionRepository{path: path}, nil
}

var _ portsrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)

// Path returns the backing file path.
func (r *TransactionRepository) Path() string {
	return r.path
}

// Add appends txn to the file, assigning an id when it has none. The row is
// written in the column order of the existing header. A file whose header
// lacks optional columns is rewritten with the full header first.
func (r *TransactionRepository) Add(ctx context.Context, txn domain.Transaction) (domain.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return domain.Transaction{}, err
	}
	if txn.ID() == "" {
		txn = txn.WithAssignedID(uuid.NewString())
	}
	record := mapping.ToModelTransaction(txn)

	r.mu.Lock()
	defer r.mu.Unlock()

	header, rows, err := r.readRaw()
	if err != nil {
		return domain.Transaction{}, err
	}
	switch {
	case header == nil:
		err = r.rewrite(models.TransactionColumns, [][]string{record.Values()})
	case hasColumns(header, models.TransactionColumns):
		err = r.appendRow(orderedValues(header, record))
	default:
		upgraded := make([][]string, 0, len(rows)+1)
		for _, row := range rows {
			upgraded = append(upgraded, reorderRow(header, row, models.TransactionColumns))
		}
		upgraded = append(upgraded, record.Values())
		err = r.rewrite(models.TransactionColumns, upgraded)
	}
	if err != nil {
		return domain.Transaction{}, err
	}
	return txn, nil
}

func (r *TransactionRepository) appendRow(values []string) error {
	f, err := os.OpenFile(r.path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return apperrors.NewStorageError("failed to open transactions file", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(values); err != nil {
		return apperrors.NewStorageError("failed to append transaction", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return apperrors.NewStorageError("failed to append transaction", err)
	}
	return nil
}

// rewrite replaces the file through a temporary sibling so a failed write
// leaves the previous contents in place.
func (r *TransactionRepository) rewrite(header []string, rows [][]string) error {
	tmp := r.path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return apperrors.NewStorageError("failed to create transactions file", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		os.Remove(tmp)
		return apperrors.NewStorageError("failed to write csv header", err)
	}
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		os.Remove(tmp)
		return apperrors.NewStorageError("failed to write transactions", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return apperrors.NewStorageError("failed to write transactions", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		os.Remove(tmp)
		return apperrors.NewStorageError("failed to replace transactions file", err)
	}
	return nil
}

// FindAll returns every stored transaction in file order.
// A missing or empty file yields an empty slice.
func (r *TransactionRepository) FindAll(ctx context.Context) ([]domain.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	records, err := r.readRecords()
	r.mu.Unlock()
	if err != nil {
		return nil, err
	}

	txns, err := mapping.ToDomainTransactionSlice(records)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to decode transactions file", err)
	}
	return txns, nil
}

// FindByAccount returns the transactions that debit or credit accountName.
func (r *TransactionRepository) FindByAccount(ctx context.Context, accountName string) ([]domain.Transaction, error) {
	all, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]domain.Transaction, 0)
	for _, txn := range all {
		if txn.Touches(accountName) {
			matched = append(matched, txn)
		}
	}
	return matched, nil
}

// readRaw returns the header and data rows as stored. A missing or empty
// file yields a nil header.
func (r *TransactionRepository) readRaw() ([]string, [][]string, error) {
	f, err := os.Open(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, apperrors.NewStorageError("failed to open transactions file", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, apperrors.NewStorageError("failed to read csv header", err)
	}
	for _, required := range requiredColumns {
		if !slices.Contains(header, required) {
			return nil, nil, apperrors.NewStorageError("invalid transactions file",
				fmt.Errorf("missing column %q", required))
		}
	}

	rows := make([][]string, 0)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, apperrors.NewStorageError("failed to read csv row", err)
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}

// readRecords maps columns by header name so files written before the id
// column existed still load.
func (r *TransactionRepository) readRecords() ([]models.TransactionRecord, error) {
	header, rows, err := r.readRaw()
	if err != nil {
		return nil, err
	}
	records := make([]models.TransactionRecord, 0, len(rows))
	for _, row := range rows {
		values := reorderRow(header, row, models.TransactionColumns)
		records = append(records, models.TransactionRecord{
			ID:            values[0],
			Date:          values[1],
			DebitAccount:  values[2],
			DebitAmount:   values[3],
			CreditAccount: values[4],
			CreditAmount:  values[5],
			Description:   values[6],
			Note:          values[7],
			EvidencePath:  values[8],
		})
	}
	return records, nil
}

// requiredColumns are the columns every transactions file must carry.
// id, note and evidence_path are absent from older files.
var requiredColumns = []string{
	"date", "debit_account", "debit_amount", "credit_account", "credit_amount", "description",
}

func hasColumns(header, want []string) bool {
	for _, name := range want {
		if !slices.Contains(header, name) {
			return false
		}
	}
	return true
}

// reorderRow returns row's values laid out in the order of to. Columns
// missing from from, or cells missing from a short row, become empty.
func reorderRow(from, row, to []string) []string {
	out := make([]string, len(to))
	for i, name := range to {
		j := slices.Index(from, name)
		if j >= 0 && j < len(row) {
			out[i] = row[j]
		}
	}
	return out
}

func orderedValues(header []string, record models.TransactionRecord) []string {
	return reorderRow(models.TransactionColumns, record.Values(), header)
}
