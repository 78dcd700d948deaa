// Package types provides common type aliases and utilities.
package types

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary value with full precision.
// Uses decimal.Decimal to avoid floating-point errors.
type Money = decimal.Decimal

// DisplayPlaces is the number of fractional digits shown to users.
const DisplayPlaces int32 = 2

// RupeeSymbol prefixes every amount printed on invoices.
const RupeeSymbol = "₹"

// NewMoneyFromInt creates a Money value from a whole amount.
func NewMoneyFromInt(v int64) Money {
	return decimal.NewFromInt(v)
}

// MustMoney creates a Money value from a string, panics on error.
// Use only for constants.
func MustMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Zero returns zero Money value.
func Zero() Money {
	return decimal.Zero
}

// Percent returns v * percent / 100 without intermediate rounding.
func Percent(v Money, percent int) Money {
	return v.Mul(decimal.NewFromInt(int64(percent))).Div(decimal.NewFromInt(100))
}

// FormatMoney renders m with two fractional digits, rounding half away from zero.
func FormatMoney(m Money) string {
	return m.StringFixed(DisplayPlaces)
}

// FormatRupees renders m as "₹1234.50".
func FormatRupees(m Money) string {
	return RupeeSymbol + FormatMoney(m)
}
