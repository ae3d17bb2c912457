// Package prompt collects a transaction interactively from a terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/SscSPs/bookkeeper/internal/apperrors"
	"github.com/SscSPs/bookkeeper/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ErrAborted is returned when input ends before every field was answered.
var ErrAborted = errors.New("入力が中断されました")

type session struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func (s *session) ask(label string) (string, error) {
	fmt.Fprint(s.out, label)
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", ErrAborted
	}
	return strings.TrimSpace(s.scanner.Text()), nil
}

// ReadTransaction asks for each field in turn and builds a validated transaction.
// An empty date means today; an empty credit amount copies the debit amount.
func ReadTransaction(in io.Reader, out io.Writer, today time.Time) (domain.Transaction, error) {
	s := &session{scanner: bufio.NewScanner(in), out: out}

	fmt.Fprintln(out, "=== 仕訳追加 ===")
	fmt.Fprintln(out)

	dateStr, err := s.ask("日付 (YYYY-MM-DD, 空欄で今日): ")
	if err != nil {
		return domain.Transaction{}, err
	}
	date := today
	if dateStr != "" {
		date, err = time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return domain.Transaction{}, fmt.Errorf("%w: 日付の形式が正しくありません: %s", apperrors.ErrValidation, dateStr)
		}
	}

	debitAccount, err := s.ask("借方勘定科目: ")
	if err != nil {
		return domain.Transaction{}, err
	}
	debitAmount, err := askAmount(s, "借方金額: ", nil)
	if err != nil {
		return domain.Transaction{}, err
	}

	creditAccount, err := s.ask("貸方勘定科目: ")
	if err != nil {
		return domain.Transaction{}, err
	}
	creditAmount, err := askAmount(s, "貸方金額 (空欄で借方と同額): ", &debitAmount)
	if err != nil {
		return domain.Transaction{}, err
	}

	description, err := s.ask("摘要: ")
	if err != nil {
		return domain.Transaction{}, err
	}
	note, err := s.ask("備考 (任意): ")
	if err != nil {
		return domain.Transaction{}, err
	}
	evidencePath, err := s.ask("証憑パス (任意): ")
	if err != nil {
		return domain.Transaction{}, err
	}

	return domain.NewTransaction(
		date,
		debitAccount,
		debitAmount,
		creditAccount,
		creditAmount,
		description,
		domain.WithNote(note),
		domain.WithEvidencePath(evidencePath),
	)
}

// askAmount parses a decimal answer. A blank answer returns fallback when set.
func askAmount(s *session, label string, fallback *decimal.Decimal) (decimal.Decimal, error) {
	raw, err := s.ask(label)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if raw == "" && fallback != nil {
		return *fallback, nil
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: 金額の形式が正しくありません: %q", apperrors.ErrValidation, raw)
	}
	return amount, nil
}
