// Package format renders journals, ledgers and the account chart as plain-text tables.
package format

import (
	"fmt"
	"strings"

	"github.com/SscSPs/bookkeeper/internal/core/domain"
	"github.com/SscSPs/bookkeeper/internal/core/services"
	"github.com/SscSPs/bookkeeper/internal/utils"
)

const (
	journalRuleWidth = 120
	ledgerRuleWidth  = 100

	dateCol        = 12
	accountCol     = 15
	amountCol      = 12
	journalDescCol = 20
	ledgerDescCol  = 30
)

// FormatJournal renders transactions as the journal table followed by a count line.
func FormatJournal(transactions []domain.Transaction) string {
	if len(transactions) == 0 {
		return "仕訳がありません。"
	}

	rule := strings.Repeat("=", journalRuleWidth)
	lines := []string{
		rule,
		joinCols(
			padRight("日付", dateCol),
			padRight("借方科目", accountCol),
			padLeft("借方金額", amountCol),
			padRight("貸方科目", accountCol),
			padLeft("貸方金額", amountCol),
			padRight("摘要", journalDescCol),
		),
		rule,
	}
	for _, txn := range transactions {
		lines = append(lines, joinCols(
			padRight(txn.DateString(), dateCol),
			padRight(txn.DebitAccount(), accountCol),
			padLeft(utils.FormatAmount(txn.DebitAmount()), amountCol),
			padRight(txn.CreditAccount(), accountCol),
			padLeft(utils.FormatAmount(txn.CreditAmount()), amountCol),
			padRight(txn.Description(), journalDescCol),
		))
	}
	lines = append(lines, rule, fmt.Sprintf("合計: %d 件", len(transactions)))

	return strings.Join(lines, "\n")
}

// FormatLedger renders the ledger of accountName with a closing balance line.
func FormatLedger(accountName string, entries []domain.LedgerEntry) string {
	if len(entries) == 0 {
		return fmt.Sprintf("「%s」の取引がありません。", accountName)
	}

	rule := strings.Repeat("=", ledgerRuleWidth)
	lines := []string{
		rule,
		fmt.Sprintf("【%s 元帳】", accountName),
		rule,
		joinCols(
			padRight("日付", dateCol),
			padRight("摘要", ledgerDescCol),
			padLeft("借方", amountCol),
			padLeft("貸方", amountCol),
			padLeft("残高", amountCol),
		),
		rule,
	}
	for _, e := range entries {
		debit, credit := "", ""
		if e.DebitAmount != nil {
			debit = utils.FormatAmount(*e.DebitAmount)
		}
		if e.CreditAmount != nil {
			credit = utils.FormatAmount(*e.CreditAmount)
		}
		lines = append(lines, joinCols(
			padRight(e.Date, dateCol),
			padRight(e.Description, ledgerDescCol),
			padLeft(debit, amountCol),
			padLeft(credit, amountCol),
			padLeft(utils.FormatAmount(e.Balance), amountCol),
		))
	}
	lines = append(lines, rule, "期末残高: "+utils.FormatAmount(services.ClosingBalance(entries)))

	return strings.Join(lines, "\n")
}

// FormatAccounts renders the account chart grouped in table order.
func FormatAccounts(accounts []domain.AccountClassification) string {
	lines := []string{joinCols(padRight("勘定科目", accountCol), "区分")}
	lines = append(lines, strings.Repeat("-", accountCol+8))
	for _, a := range accounts {
		lines = append(lines, joinCols(padRight(a.Name, accountCol), a.Type.Label()))
	}
	return strings.Join(lines, "\n")
}

func joinCols(cols ...string) string {
	return strings.TrimRight(strings.Join(cols, " "), " ")
}
