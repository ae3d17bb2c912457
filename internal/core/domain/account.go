package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

var accountTypeLabels = map[AccountType]string{
	Asset:     "資産",
	Liability: "負債",
	Equity:    "資本",
	Revenue:   "収益",
	Expense:   "費用",
}

// Label returns the Japanese category name used on printed reports.
func (t AccountType) Label() string {
	if label, ok := accountTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

// AccountClassification pairs a known account name with its type.
type AccountClassification struct {
	Name string
	Type AccountType
}

// chartOfAccounts is ordered by category so listings stay stable.
var chartOfAccounts = []AccountClassification{
	{Name: "現金", Type: Asset},
	{Name: "普通預金", Type: Asset},
	{Name: "当座預金", Type: Asset},
	{Name: "売掛金", Type: Asset},
	{Name: "買掛金", Type: Liability},
	{Name: "未払金", Type: Liability},
	{Name: "事業主借", Type: Equity}, // private money put into the business
	{Name: "事業主貸", Type: Equity}, // business money used privately
	{Name: "売上", Type: Revenue},
	{Name: "消耗品費", Type: Expense},
	{Name: "通信費", Type: Expense},
	{Name: "旅費交通費", Type: Expense},
	{Name: "新聞図書費", Type: Expense},
	{Name: "地代家賃", Type: Expense},
	{Name: "外注工賃", Type: Expense},
}

var accountTypeByName = func() map[string]AccountType {
	m := make(map[string]AccountType, len(chartOfAccounts))
	for _, c := range chartOfAccounts {
		m[c.Name] = c.Type
	}
	return m
}()

// ClassifyAccount looks up the type of a known account name.
// The second return value is false for names outside the static table;
// that is an ordinary outcome, not an error.
func ClassifyAccount(accountName string) (AccountType, bool) {
	t, ok := accountTypeByName[accountName]
	return t, ok
}

// KnownAccounts returns a copy of the static classification table.
func KnownAccounts() []AccountClassification {
	out := make([]AccountClassification, len(chartOfAccounts))
	copy(out, chartOfAccounts)
	return out
}
