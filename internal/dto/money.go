package dto

import "github.com/shopspring/decimal"

// FormatCents renders a cent amount as a fixed two-decimal string, e.g. -1.50.
func FormatCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}
