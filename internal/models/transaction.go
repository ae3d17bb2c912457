package models

// TransactionRecord is the storage shape of a transaction: one flat row with
// the date in ISO form and amounts as exact decimal text.
// The column names double as the CSV header.
type TransactionRecord struct {
	ID            string `json:"id"`
	Date          string `json:"date"`
	DebitAccount  string `json:"debit_account"`
	DebitAmount   string `json:"debit_amount"`
	CreditAccount string `json:"credit_account"`
	CreditAmount  string `json:"credit_amount"`
	Description   string `json:"description"`
	Note          string `json:"note"`
	EvidencePath  string `json:"evidence_path"`
}

// TransactionColumns lists the persisted field names in storage order.
var TransactionColumns = []string{
	"id",
	"date",
	"debit_account",
	"debit_amount",
	"credit_account",
	"credit_amount",
	"description",
	"note",
	"evidence_path",
}

// Values returns the record's fields in TransactionColumns order.
func (r TransactionRecord) Values() []string {
	return []string{
		r.ID,
		r.Date,
		r.DebitAccount,
		r.DebitAmount,
		r.CreditAccount,
		r.CreditAmount,
		r.Description,
		r.Note,
		r.EvidencePath,
	}
}
