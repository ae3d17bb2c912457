package dto

import (
	"github.com/SscSPs/bookkeeper/internal/core/domain"
	"github.com/SscSPs/bookkeeper/internal/core/services"
	"github.com/SscSPs/bookkeeper/internal/utils"
	"github.com/SscSPs/bookkeeper/internal/utils/accounting"
)

// LedgerEntryResponse is one ledger line. Only the side that touched the
// account is present.
type LedgerEntryResponse struct {
	Date         string  `json:"date"`
	Description  string  `json:"description"`
	DebitAmount  *string `json:"debitAmount,omitempty"`
	CreditAmount *string `json:"creditAmount,omitempty"`
	Balance      string  `json:"balance"`
}

// LedgerResponse is the ledger of a single account.
type LedgerResponse struct {
	Account        string                `json:"account"`
	AccountType    domain.AccountType    `json:"accountType,omitempty"`
	Entries        []LedgerEntryResponse `json:"entries"`
	ClosingBalance string                `json:"closingBalance"`
	// NaturalBalance is the closing balance read from the account's normal side.
	NaturalBalance string `json:"naturalBalance,omitempty"`
}

// AccountTypeResponse reports the classification of an account name.
type AccountTypeResponse struct {
	Name  string             `json:"name"`
	Type  domain.AccountType `json:"type"`
	Label string             `json:"label"`
}

// ToLedgerResponse converts derived ledger entries for accountName.
func ToLedgerResponse(accountName string, entries []domain.LedgerEntry) LedgerResponse {
	closing := services.ClosingBalance(entries)
	resp := LedgerResponse{
		Account:        accountName,
		Entries:        make([]LedgerEntryResponse, len(entries)),
		ClosingBalance: utils.ExactDecimalString(closing),
	}
	if accountType, ok := domain.ClassifyAccount(accountName); ok {
		resp.AccountType = accountType
		if natural, err := accounting.NaturalBalance(closing, accountType); err == nil {
			resp.NaturalBalance = utils.ExactDecimalString(natural)
		}
	}
	for i, e := range entries {
		line := LedgerEntryResponse{
			Date:        e.Date,
			Description: e.Description,
			Balance:     utils.ExactDecimalString(e.Balance),
		}
		if e.DebitAmount != nil {
			s := utils.ExactDecimalString(*e.DebitAmount)
			line.DebitAmount = &s
		}
		if e.CreditAmount != nil {
			s := utils.ExactDecimalString(*e.CreditAmount)
			line.CreditAmount = &s
		}
		resp.Entries[i] = line
	}
	return resp
}

// ToAccountTypeResponse converts a classification entry.
func ToAccountTypeResponse(c domain.AccountClassification) AccountTypeResponse {
	return AccountTypeResponse{Name: c.Name, Type: c.Type, Label: c.Type.Label()}
}
