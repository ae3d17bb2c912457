package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ExactDecimalString renders amount keeping its scale, so "1234.50" stays
// "1234.50". decimal.Decimal.String would print "1234.5".
func ExactDecimalString(amount decimal.Decimal) string {
	if exp := amount.Exponent(); exp < 0 {
		return amount.StringFixed(-exp)
	}
	return amount.String()
}

// FormatAmount formats an amount with thousands separators and its original scale.
// Example: 1234567.50 returns "1,234,567.50"
// Example: -1000 returns "-1,000"
func FormatAmount(amount decimal.Decimal) string {
	s := ExactDecimalString(amount)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	b.WriteString(sign)
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}
